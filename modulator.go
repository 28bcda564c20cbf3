package modulators

// Modulator is a tagged variant over the five supported kinds. Exactly one
// payload field is non-nil, selected by kind at construction; Advance and
// the other contract methods dispatch on kind rather than through a
// per-kind interface or function table, since the set of kinds is closed.
type Modulator struct {
	name string
	kind Kind

	enabled bool

	wave               *wavePayload
	scalarSpring       *scalarSpringPayload
	scalarGoalFollower *scalarGoalFollowerPayload
	newtonian          *newtonianPayload
	shiftRegister      *shiftRegisterPayload
}

// Name returns the modulator's immutable identifier.
func (m *Modulator) Name() string { return m.name }

// Kind returns the discriminant selecting the active payload.
func (m *Modulator) Kind() Kind { return m.kind }

// Value returns the last-computed output.
func (m *Modulator) Value() float32 {
	switch m.kind {
	case KindWave:
		return m.wave.value
	case KindScalarSpring:
		return m.scalarSpring.value
	case KindScalarGoalFollower:
		return m.scalarGoalFollower.follower.Value()
	case KindNewtonian:
		return m.newtonian.value
	case KindShiftRegister:
		return m.shiftRegister.value
	default:
		panic("modulators: unknown kind")
	}
}

// Range returns the kind-specific output bound. Wave and ShiftRegister have
// a meaningful bound; ScalarGoalFollower returns the union of its regions
// ({0,0} when it has none); ScalarSpring and Newtonian return a degenerate
// {0,0}, matching the source.
func (m *Modulator) Range() ValueRange {
	switch m.kind {
	case KindWave:
		return ValueRange{Min: -m.wave.amplitude, Max: m.wave.amplitude}
	case KindScalarSpring:
		return ValueRange{}
	case KindScalarGoalFollower:
		return m.scalarGoalFollower.rangeUnion()
	case KindNewtonian:
		return ValueRange{}
	case KindShiftRegister:
		return m.shiftRegister.valueRange
	default:
		panic("modulators: unknown kind")
	}
}

// Goal returns the current target. For Wave and ShiftRegister, which have
// no target semantics, Goal aliases Value.
func (m *Modulator) Goal() float32 {
	switch m.kind {
	case KindWave:
		return m.wave.value
	case KindScalarSpring:
		return m.scalarSpring.goal
	case KindScalarGoalFollower:
		return m.scalarGoalFollower.follower.Goal()
	case KindNewtonian:
		return m.newtonian.goal
	case KindShiftRegister:
		return m.shiftRegister.value
	default:
		panic("modulators: unknown kind")
	}
}

// SetGoal sets the current target. Wave and ShiftRegister ignore it (no
// target semantics); ScalarSpring retargets without discontinuity;
// Newtonian redraws s/a/d and re-solves the trajectory; ScalarGoalFollower
// forwards to its inner follower.
func (m *Modulator) SetGoal(goal float32) {
	switch m.kind {
	case KindWave:
		// no-op: Wave has no target semantics.
	case KindScalarSpring:
		m.scalarSpring.goal = goal
	case KindScalarGoalFollower:
		m.scalarGoalFollower.follower.SetGoal(goal)
	case KindNewtonian:
		m.newtonian.moveTo(goal)
	case KindShiftRegister:
		// no-op: ShiftRegister has no target semantics.
	default:
		panic("modulators: unknown kind")
	}
}

// ElapsedUs returns the microseconds accumulated since construction (or,
// for Newtonian, since the last SetGoal, which resets its trajectory
// clock). ScalarGoalFollower reports its inner follower's own accumulator.
func (m *Modulator) ElapsedUs() uint64 {
	switch m.kind {
	case KindWave:
		return m.wave.time
	case KindScalarSpring:
		return m.scalarSpring.time
	case KindScalarGoalFollower:
		return m.scalarGoalFollower.follower.ElapsedUs()
	case KindNewtonian:
		return m.newtonian.time
	case KindShiftRegister:
		return m.shiftRegister.time
	default:
		panic("modulators: unknown kind")
	}
}

// Enabled returns the advisory enabled flag.
func (m *Modulator) Enabled() bool { return m.enabled }

// SetEnabled sets the advisory enabled flag. It does not itself gate
// Advance; the library treats it as advisory, matching the source.
func (m *Modulator) SetEnabled(enabled bool) { m.enabled = enabled }

// Advance integrates dtUs microseconds of elapsed time, updating Value and
// the modulator's own time accumulator.
func (m *Modulator) Advance(dtUs uint64) {
	switch m.kind {
	case KindWave:
		m.wave.advance(dtUs)
	case KindScalarSpring:
		m.scalarSpring.advance(dtUs)
	case KindScalarGoalFollower:
		m.scalarGoalFollower.advance(dtUs)
	case KindNewtonian:
		m.newtonian.advance(dtUs)
	case KindShiftRegister:
		m.shiftRegister.advance(dtUs)
	default:
		panic("modulators: unknown kind")
	}
}
