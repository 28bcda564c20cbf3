// Package modulators provides time-driven scalar modulators: small state
// machines that, advanced by elapsed microseconds, produce a time-varying
// float32 output. Consumers are animation, audio/control synthesis, and
// simulation code that needs smooth or stochastic motion between targets.
package modulators

// ValueRange is a closed interval [Min, Max]. It doubles as a parameter
// distribution (Newtonian's speed/accel/decel ranges, ShiftRegister's
// value range) and, reinterpreted as microseconds, as a pause
// duration (ScalarGoalFollower's pause_range).
type ValueRange struct {
	Min float32
	Max float32
}

// microsPerSecond converts between the library's microsecond time base and
// the float seconds the per-kind math is expressed in.
const microsPerSecond = 1e6

// MicrosToSecs converts a duration in microseconds to seconds.
func MicrosToSecs(us uint64) float32 {
	return float32(us) / microsPerSecond
}

// SecsToMicros converts a duration in seconds to microseconds, truncating.
func SecsToMicros(secs float32) uint64 {
	if secs <= 0 {
		return 0
	}
	return uint64(secs * microsPerSecond)
}
