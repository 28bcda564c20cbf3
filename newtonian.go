package modulators

import (
	"math"

	"github.com/cbegin/modulators-go/rng"
)

// newtonianNearZero guards against dividing by an acceleration or
// deceleration drawn arbitrarily close to 0. It is a round 1e-7, slightly
// below C's FLT_EPSILON (about 1.19e-7) used for the same guard in the source.
const newtonianNearZero = 1e-7

// phaseTime holds the three cumulative boundary times (seconds, relative to
// the start of the current move) for Newtonian's accelerate/sustain/
// decelerate trajectory. Components are non-negative and monotonically
// non-decreasing: acceleration <= sustain <= deceleration.
type phaseTime struct {
	acceleration float32
	sustain      float32
	deceleration float32
}

// newtonianPayload drives value from f to goal over three phases with
// randomized speed limit s, acceleration a, and deceleration d, drawn fresh
// on every SetGoal.
type newtonianPayload struct {
	speedLimitRange    ValueRange
	accelerationRange  ValueRange
	decelerationRange  ValueRange

	s, a, d float32
	f       float32
	value   float32
	goal    float32
	time    uint64
	phase   phaseTime

	source rng.Source
}

// NewNewtonian constructs a Newtonian modulator at value/goal initial, with
// s/a/d drawn uniformly from speedLimitRange/accelerationRange/
// decelerationRange on every SetGoal.
func NewNewtonian(name string, speedLimitRange, accelerationRange, decelerationRange ValueRange, initial float32, opts ...Option) *Modulator {
	cfg := resolveConfig(opts)
	cfg.logger.Debug().Str("name", name).Str("kind", KindNewtonian.String()).
		Float32("initial", initial).Msg("modulator constructed")
	return &Modulator{
		name:    name,
		kind:    KindNewtonian,
		enabled: cfg.enabled,
		newtonian: &newtonianPayload{
			speedLimitRange:   speedLimitRange,
			accelerationRange: accelerationRange,
			decelerationRange: decelerationRange,
			value:             initial,
			goal:              initial,
			f:                 initial,
			source:            cfg.source,
		},
	}
}

// Reset forces value, goal, and the trajectory origin to v and zeros all
// phase boundaries. It panics if m is not Newtonian.
func (m *Modulator) Reset(v float32) {
	if m.kind != KindNewtonian {
		panic("modulators: Reset called on non-Newtonian modulator")
	}
	n := m.newtonian
	n.value = v
	n.goal = v
	n.s, n.a, n.d = 0, 0, 0
	n.f = v
	n.phase = phaseTime{}
}

func genValue(r ValueRange, source rng.Source) float32 {
	return source.RangeFloat32(r.Min, r.Max)
}

// moveTo redraws s/a/d, resets the trajectory clock, and re-solves the
// three phase boundaries for a move from the current value to goal.
func (n *newtonianPayload) moveTo(goal float32) {
	n.time = 0
	n.goal = goal
	n.f = n.value
	n.s = genValue(n.speedLimitRange, n.source)
	n.a = genValue(n.accelerationRange, n.source)
	n.d = genValue(n.decelerationRange, n.source)
	n.calculateEvents()
}

// calculateEvents solves T_a, T_s, T_d and signs s/a/d per the direction of
// travel. The sign convention, including the strict goal > f comparison, is
// preserved exactly as specified: when traveling upward (goal > f), d is
// negated and s/a stay positive; otherwise (including the degenerate
// goal == f case) s and a are negated but d stays positive. This asymmetry
// comes straight from the source and is intentionally not "fixed".
func (n *newtonianPayload) calculateEvents() {
	x := float32(math.Abs(float64(n.goal - n.f)))

	a := n.a
	if a < newtonianNearZero {
		a = 1e6
	}
	d := n.d
	if d < newtonianNearZero {
		d = 1e6
	}
	r := a / d

	ta := float32(math.Sqrt(float64(x * 2 / (a * (1 + r)))))

	v := a * ta
	if v > n.s {
		v = n.s
		ta = n.s / a
	} else {
		n.s = v
	}

	tdDur := ta * r
	d0 := ta * ta * a * 0.5
	d2 := tdDur * tdDur * d * 0.5
	sustainDur := (x - d0 - d2) / v

	if n.goal > n.f {
		n.a = a
		n.d = -d
	} else {
		n.s = -n.s
		n.a = -a
		n.d = d
	}

	n.phase.acceleration = ta
	n.phase.sustain = ta + sustainDur
	n.phase.deceleration = n.phase.sustain + tdDur
}

func accelerate(k, t float32) float32 {
	return 0.5 * k * t * t
}

func forward(s, t float32) float32 {
	return s * t
}

func (n *newtonianPayload) advance(dtUs uint64) {
	n.time += dtUs
	t := MicrosToSecs(n.time)
	a := n.phase.acceleration
	s := n.phase.sustain
	d := n.phase.deceleration

	n.value = n.f + accelerate(n.a, minFloat32(t, a))
	if t > a {
		n.value += forward(n.s, minFloat32(t, d)-a)
		if t > s {
			n.value += accelerate(n.d, minFloat32(t, d)-s)
		}
	}
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
