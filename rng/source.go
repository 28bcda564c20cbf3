// Package rng supplies the random source the modulator library draws from.
//
// Newtonian, ShiftRegister, and ScalarGoalFollower all need uniform draws
// (speed/accel/decel parameters, bucket regeneration, goal regions, pause
// durations). Rather than reaching for math/rand directly, each constructor
// accepts a Source through the modulators.WithSource option so callers can
// seed for deterministic tests; without that option a package-level,
// time-seeded Source is used.
package rng

import "math/rand"

// Source is the random collaborator the modulator package consumes.
type Source interface {
	// Float32 returns a value in [0, 1).
	Float32() float32
	// RangeFloat32 returns a value in [lo, hi). If hi <= lo, lo is returned.
	RangeFloat32(lo, hi float32) float32
	// RangeUint64 returns a value in [lo, hi). If hi <= lo, lo is returned.
	RangeUint64(lo, hi uint64) uint64
}

// mathRand wraps a *rand.Rand as a Source.
type mathRand struct {
	r *rand.Rand
}

// New returns a Source backed by math/rand, seeded with seed.
func New(seed int64) Source {
	return &mathRand{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRand) Float32() float32 {
	return m.r.Float32()
}

func (m *mathRand) RangeFloat32(lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + m.r.Float32()*(hi-lo)
}

func (m *mathRand) RangeUint64(lo, hi uint64) uint64 {
	if hi <= lo {
		return lo
	}
	return lo + uint64(m.r.Int63n(int64(hi-lo)))
}
