package modulators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/cbegin/modulators-go/rng"
)

// fixedBucketSource feeds a scripted sequence of draws so ShiftRegister's
// four initial buckets come out as exactly [0.1, 0.2, 0.3, 0.4].
type fixedBucketSource struct {
	draws []float32
	i     int
}

func (f *fixedBucketSource) Float32() float32 { return 1 } // never trigger regeneration
func (f *fixedBucketSource) RangeFloat32(lo, hi float32) float32 {
	v := f.draws[f.i]
	f.i++
	return v
}
func (f *fixedBucketSource) RangeUint64(lo, hi uint64) uint64 { return lo }

var _ rng.Source = (*fixedBucketSource)(nil)

func newScriptedShiftRegister(interp Interp) *Modulator {
	src := &fixedBucketSource{draws: []float32{0.1, 0.2, 0.3, 0.4}}
	return NewShiftRegister("sr", 4, ValueRange{Min: 0, Max: 1}, 0, 1.0, interp, WithSource(src))
}

func TestShiftRegisterNoneInterpolation(t *testing.T) {
	sr := newScriptedShiftRegister(InterpNone)
	sr.Advance(0)
	assert.InDelta(t, 0.1, float64(sr.Value()), 1e-6)

	sr.Advance(250_000)
	assert.InDelta(t, 0.2, float64(sr.Value()), 1e-6)

	sr.Advance(500_000)
	assert.InDelta(t, 0.4, float64(sr.Value()), 1e-6)
}

func TestShiftRegisterLinearInterpolation(t *testing.T) {
	sr := newScriptedShiftRegister(InterpLinear)
	sr.Advance(125_000)
	assert.InDelta(t, 0.15, float64(sr.Value()), 1e-6)
}

func TestShiftRegisterOddsZeroNeverRegenerates(t *testing.T) {
	sr := newScriptedShiftRegister(InterpNone)
	// Float32() never returns < 0 so no regeneration occurs regardless of
	// how many crossings happen.
	for i := 0; i < 20; i++ {
		sr.Advance(300_000)
	}
	ages := sr.shiftRegister.valueAges
	for _, a := range ages {
		assert.Greater(t, a, uint32(0))
	}
}

type alwaysRegenSource struct{ v float32 }

func (a *alwaysRegenSource) Float32() float32                     { return 0 }
func (a *alwaysRegenSource) RangeFloat32(lo, hi float32) float32   { return a.v }
func (a *alwaysRegenSource) RangeUint64(lo, hi uint64) uint64      { return lo }

func TestShiftRegisterOddsOneRegeneratesEveryCrossing(t *testing.T) {
	src := &alwaysRegenSource{v: 0.5}
	sr := NewShiftRegister("sr", 4, ValueRange{Min: 0, Max: 1}, 1, 1.0, InterpNone, WithSource(src))
	sr.Advance(1_000_000) // one full period = 4 crossings
	for _, b := range sr.shiftRegister.buckets {
		assert.Equal(t, float32(0.5), b)
	}
	for _, a := range sr.shiftRegister.valueAges {
		assert.Equal(t, uint32(0), a)
	}
}

func TestShiftRegisterBucketAgeLengthsMatch(t *testing.T) {
	sr := NewShiftRegister("sr", 6, ValueRange{Min: 0, Max: 1}, 0.3, 1.0, InterpNone, WithSource(rng.New(5)))
	assert.Equal(t, len(sr.shiftRegister.buckets), len(sr.shiftRegister.valueAges))
	sr.Advance(2_000_000)
	assert.Equal(t, len(sr.shiftRegister.buckets), len(sr.shiftRegister.valueAges))
}

func TestShiftRegisterValueStaysWithinRange(t *testing.T) {
	sr := NewShiftRegister("sr", 5, ValueRange{Min: -2, Max: 3}, 0.4, 0.2, InterpQuadratic, WithSource(rng.New(8)))
	for i := 0; i < 200; i++ {
		sr.Advance(13_000)
		v := sr.Value()
		assert.True(t, v >= -2.01 && v <= 3.01)
	}
}

func TestShiftRegisterRangeReturnsValueRange(t *testing.T) {
	vr := ValueRange{Min: 2, Max: 9}
	sr := NewShiftRegister("sr", 3, vr, 0.1, 1, InterpNone)
	assert.Equal(t, vr, sr.Range())
}

func TestShiftRegisterZeroBucketsPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewShiftRegister("sr", 0, ValueRange{Min: 0, Max: 1}, 0, 1, InterpNone)
	})
}

func TestShiftRegisterGoalIsInertAlias(t *testing.T) {
	sr := newScriptedShiftRegister(InterpNone)
	before := sr.Value()
	sr.SetGoal(42)
	assert.Equal(t, before, sr.Goal())
}
