package modulators

import "github.com/cbegin/modulators-go/rng"

// Interp selects how ShiftRegister produces a value between bucket centers.
type Interp int

const (
	InterpLinear Interp = iota
	InterpQuadratic
	InterpNone
)

// ageRange holds the aging window in visit counts. {Max32, Max32} disables
// aging; it is the zero-equivalent set explicitly by NewShiftRegister.
type ageRange struct {
	min uint32
	max uint32
}

const agingDisabledSentinel uint32 = 1<<32 - 1

func agingDisabled() ageRange {
	return ageRange{min: agingDisabledSentinel, max: agingDisabledSentinel}
}

// shiftRegisterPayload models a cyclic array of value buckets. The
// playhead cycles through buckets with period period seconds; each full
// cycle, a bucket may be replaced by a fresh draw with probability biased
// by its age.
type shiftRegisterPayload struct {
	buckets    []float32
	valueAges  []uint32
	valueRange ValueRange
	ages       ageRange
	odds       float32
	periodSecs float32
	interp     Interp
	time       uint64
	value      float32

	source rng.Source
}

// NewShiftRegister constructs a ShiftRegister with n buckets, each
// initialized by a uniform draw from valueRange. odds is the base
// regeneration probability per visited bucket per cycle (clamped to
// [0,1] at use); period is the full cycle length in seconds; interp
// selects the between-bucket interpolation. Aging-weighted regeneration is
// disabled until SetAgeRange is called. n must be at least 1.
func NewShiftRegister(name string, n int, valueRange ValueRange, odds, period float32, interp Interp, opts ...Option) *Modulator {
	if n < 1 {
		panic("modulators: ShiftRegister requires at least one bucket")
	}
	cfg := resolveConfig(opts)
	buckets := make([]float32, n)
	for i := range buckets {
		buckets[i] = cfg.source.RangeFloat32(valueRange.Min, valueRange.Max)
	}
	cfg.logger.Debug().Str("name", name).Str("kind", KindShiftRegister.String()).
		Int("buckets", n).Float32("odds", odds).Float32("period", period).Msg("modulator constructed")
	return &Modulator{
		name:    name,
		kind:    KindShiftRegister,
		enabled: cfg.enabled,
		shiftRegister: &shiftRegisterPayload{
			buckets:    buckets,
			valueAges:  make([]uint32, n),
			valueRange: valueRange,
			ages:       agingDisabled(),
			odds:       odds,
			periodSecs: period,
			interp:     interp,
			value:      buckets[0],
			source:     cfg.source,
		},
	}
}

// SetAgeRange enables aging-weighted regeneration: once a bucket's age
// (visits since last regeneration) reaches min, its effective odds ramp
// linearly from odds to 1 as age approaches max. It panics if m is not a
// ShiftRegister.
func (m *Modulator) SetAgeRange(min, max uint32) {
	if m.kind != KindShiftRegister {
		panic("modulators: SetAgeRange called on non-ShiftRegister modulator")
	}
	m.shiftRegister.ages = ageRange{min: min, max: max}
}

func (sr *shiftRegisterPayload) agingEnabled() bool {
	return sr.ages.min < sr.ages.max
}

func (sr *shiftRegisterPayload) n() int { return len(sr.buckets) }

func (sr *shiftRegisterPayload) totalPeriodUs() uint64 {
	return SecsToMicros(sr.periodSecs)
}

func (sr *shiftRegisterPayload) bucketPeriodUs() uint64 {
	n := sr.n()
	if n == 0 {
		return 0
	}
	return sr.totalPeriodUs() / uint64(n)
}

// nextBucket advances with wrap-around to 0.
func (sr *shiftRegisterPayload) nextBucket(i int) int {
	n := sr.n()
	if n == 0 {
		panic("modulators: nextBucket on empty ShiftRegister")
	}
	if i >= n-1 {
		return 0
	}
	return i + 1
}

// previousBucket decrements with wrap-around to n-1.
func (sr *shiftRegisterPayload) previousBucket(i int) int {
	n := sr.n()
	if n == 0 {
		panic("modulators: previousBucket on empty ShiftRegister")
	}
	if i > 0 && i < n {
		return i - 1
	}
	return n - 1
}

func (sr *shiftRegisterPayload) advance(dtUs uint64) {
	n := sr.n()
	p := sr.totalPeriodUs()
	bp := sr.bucketPeriodUs()
	if n == 0 || p == 0 || bp == 0 {
		return
	}

	pt := sr.time % p
	bi := int(pt / bp)
	if bi > n-1 {
		bi = n - 1
	}
	bt := pt - bp*uint64(bi)
	crossings := (bt + dtUs) / bp

	for i := uint64(0); i < crossings; i++ {
		bh := sr.previousBucket(bi)
		odds := clamp01(sr.odds)

		if sr.agingEnabled() && sr.valueAges[bh] >= sr.ages.min {
			span := float32(sr.ages.max - sr.ages.min)
			t := float32(sr.valueAges[bh]-sr.ages.min) / span
			if t > 1 {
				t = 1
			}
			odds = odds + (1-odds)*t
		}

		if sr.source.Float32() < odds {
			sr.buckets[bh] = sr.source.RangeFloat32(sr.valueRange.Min, sr.valueRange.Max)
			sr.valueAges[bh] = 0
		} else {
			sr.valueAges[bh]++
		}

		bi = sr.nextBucket(bi)
	}

	sr.time += dtUs

	pt = sr.time % p
	bi = int(pt / bp)
	if bi > n-1 {
		bi = n - 1
	}
	bt = pt - bp*uint64(bi)

	switch sr.interp {
	case InterpNone:
		sr.value = sr.buckets[bi]
	case InterpLinear:
		v0 := sr.buckets[bi]
		v1 := sr.buckets[sr.nextBucket(bi)]
		frac := float32(bt) / float32(bp)
		sr.value = v0 + (v1-v0)*frac
	case InterpQuadratic:
		bh := sr.previousBucket(bi)
		bj := sr.nextBucket(bi)
		v1 := sr.buckets[bi]
		v0 := (sr.buckets[bh] + v1) * 0.5
		v2 := (sr.buckets[bj] + v1) * 0.5
		tt := float32(bt) / float32(bp)
		a0 := v0 + (v1-v0)*tt
		a1 := v1 + (v2-v1)*tt
		sr.value = a0 + (a1-a0)*tt
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
