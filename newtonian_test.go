package modulators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/cbegin/modulators-go/rng"
)

func TestNewtonianTrajectoryScenario(t *testing.T) {
	unit := ValueRange{Min: 1, Max: 1}
	n := NewNewtonian("n", unit, unit, unit, 0.0, WithSource(rng.New(1)))
	n.SetGoal(2.0)

	n.Advance(3_000_000)
	assert.InDelta(t, 2.0, float64(n.Value()), 1e-4)
}

func TestNewtonianPhasesMonotonic(t *testing.T) {
	speed := ValueRange{Min: 0.5, Max: 2}
	accel := ValueRange{Min: 0.1, Max: 1}
	decel := ValueRange{Min: 0.1, Max: 1}
	n := NewNewtonian("n", speed, accel, decel, 0, WithSource(rng.New(7)))
	n.SetGoal(5)

	p := n.newtonian.phase
	assert.LessOrEqual(t, p.acceleration, p.sustain)
	assert.LessOrEqual(t, p.sustain, p.deceleration)
}

func TestNewtonianArrivesAtGoalAfterDeceleration(t *testing.T) {
	speed := ValueRange{Min: 1, Max: 1}
	accel := ValueRange{Min: 2, Max: 2}
	decel := ValueRange{Min: 2, Max: 2}
	n := NewNewtonian("n", speed, accel, decel, 0, WithSource(rng.New(3)))
	n.SetGoal(10)

	d := n.newtonian.phase.deceleration
	n.Advance(SecsToMicros(d) + 1_000_000) // well past arrival
	assert.InDelta(t, 10.0, float64(n.Value()), 1e-3)
}

func TestNewtonianReset(t *testing.T) {
	unit := ValueRange{Min: 1, Max: 1}
	n := NewNewtonian("n", unit, unit, unit, 0, WithSource(rng.New(9)))
	n.SetGoal(4)
	n.Advance(500_000)

	n.Reset(2.5)
	assert.Equal(t, float32(2.5), n.Value())
	assert.Equal(t, float32(2.5), n.Goal())
	assert.Equal(t, float32(2.5), n.newtonian.f)
	assert.Equal(t, phaseTime{}, n.newtonian.phase)
}

func TestNewtonianZeroAdvanceLeavesValueUnchanged(t *testing.T) {
	unit := ValueRange{Min: 1, Max: 1}
	n := NewNewtonian("n", unit, unit, unit, 0, WithSource(rng.New(11)))
	n.SetGoal(3)
	n.Advance(200_000)
	v := n.Value()
	n.Advance(0)
	assert.Equal(t, v, n.Value())
}

func TestNewtonianRangeIsDegenerate(t *testing.T) {
	unit := ValueRange{Min: 1, Max: 1}
	n := NewNewtonian("n", unit, unit, unit, 0)
	assert.Equal(t, ValueRange{}, n.Range())
}
