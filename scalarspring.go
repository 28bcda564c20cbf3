package modulators

import "math"

// scalarSpringPayload is a critically-damped second-order spring toward
// goal, extended with an undamping term.
type scalarSpringPayload struct {
	smooth  float32 // response time, seconds
	undamp  float32 // undamping coefficient
	goal    float32
	value   float32
	vel     float32
	time    uint64
}

// NewScalarSpring constructs a ScalarSpring modulator at value/goal
// initial, with response time smooth (seconds) and undamping coefficient
// undamp.
func NewScalarSpring(name string, smooth, undamp, initial float32, opts ...Option) *Modulator {
	cfg := resolveConfig(opts)
	cfg.logger.Debug().Str("name", name).Str("kind", KindScalarSpring.String()).
		Float32("smooth", smooth).Float32("undamp", undamp).Float32("initial", initial).
		Msg("modulator constructed")
	return &Modulator{
		name:    name,
		kind:    KindScalarSpring,
		enabled: cfg.enabled,
		scalarSpring: &scalarSpringPayload{
			smooth: smooth,
			undamp: undamp,
			goal:   initial,
			value:  initial,
		},
	}
}

const scalarSpringSnapThreshold = 1e-4

func (s *scalarSpringPayload) advance(dtUs uint64) {
	s.time += dtUs
	if s.smooth < scalarSpringSnapThreshold {
		s.value = s.goal
		s.vel = 0
		return
	}

	dtSec := MicrosToSecs(dtUs)
	omega := 2 / s.smooth
	x := omega * dtSec
	ex := float32(1 / math.Exp(float64(x)))
	ud := dtSec * s.undamp

	d := s.value - s.goal
	v := s.vel
	t := (v + omega*d) * dtSec

	s.vel = (v-omega*t)*ex + v*ud
	s.value = s.goal + (d+t)*ex
}

// JumpTo snaps value and goal to g immediately, zeroing velocity. It panics
// if m is not a ScalarSpring.
func (m *Modulator) JumpTo(g float32) {
	if m.kind != KindScalarSpring {
		panic("modulators: JumpTo called on non-ScalarSpring modulator")
	}
	m.scalarSpring.goal = g
	m.scalarSpring.value = g
	m.scalarSpring.vel = 0
}
