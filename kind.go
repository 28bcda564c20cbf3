package modulators

// Kind discriminates the five modulator payloads a Modulator can carry.
// The set is closed: dispatch is a single switch over Kind rather than a
// per-instance function table or interface-per-kind, since no new kind is
// ever registered at runtime (see Non-goals).
type Kind int

const (
	KindWave Kind = iota
	KindScalarSpring
	KindScalarGoalFollower
	KindNewtonian
	KindShiftRegister
)

func (k Kind) String() string {
	switch k {
	case KindWave:
		return "Wave"
	case KindScalarSpring:
		return "ScalarSpring"
	case KindScalarGoalFollower:
		return "ScalarGoalFollower"
	case KindNewtonian:
		return "Newtonian"
	case KindShiftRegister:
		return "ShiftRegister"
	default:
		return "Unknown"
	}
}
