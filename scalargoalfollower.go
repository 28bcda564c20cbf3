package modulators

import "github.com/cbegin/modulators-go/rng"

// scalarGoalFollowerPayload composes an inner follower modulator and
// repeatedly drives it between randomly-chosen goals within a list of
// regions, pausing between arrivals.
type scalarGoalFollowerPayload struct {
	regions      []ValueRange
	randomRegion bool
	threshold    float32
	velThreshold float32
	pauseRange   ValueRange // interpreted as microseconds
	follower     *Modulator
	currentRegion int
	pausedLeft   uint64

	source rng.Source
}

// NewScalarGoalFollower constructs a ScalarGoalFollower that owns follower.
// follower must not be registered separately; this modulator drives it for
// its entire lifetime. Regions, pause range, and thresholds default to the
// source's defaults (no regions, threshold 0.01, vel_threshold 0.0001,
// zero pause) and are set with SetRegions/SetPauseRange/SetThresholds.
func NewScalarGoalFollower(name string, follower *Modulator, opts ...Option) *Modulator {
	cfg := resolveConfig(opts)
	cfg.logger.Debug().Str("name", name).Str("kind", KindScalarGoalFollower.String()).
		Str("follower", follower.Name()).Msg("modulator constructed")
	return &Modulator{
		name:    name,
		kind:    KindScalarGoalFollower,
		enabled: cfg.enabled,
		scalarGoalFollower: &scalarGoalFollowerPayload{
			threshold:    0.01,
			velThreshold: 0.0001,
			follower:     follower,
			source:       cfg.source,
		},
	}
}

// SetRegions replaces the candidate goal regions. If randomRegion is true,
// the next region is drawn uniformly at random each cycle; otherwise
// regions are visited in cyclic order. It panics if m is not a
// ScalarGoalFollower.
func (m *Modulator) SetRegions(regions []ValueRange, randomRegion bool) {
	if m.kind != KindScalarGoalFollower {
		panic("modulators: SetRegions called on non-ScalarGoalFollower modulator")
	}
	m.scalarGoalFollower.regions = regions
	m.scalarGoalFollower.randomRegion = randomRegion
	m.scalarGoalFollower.currentRegion = 0
}

// SetPauseRange sets the pause duration drawn (in microseconds) once the
// follower arrives at its goal, before a new goal is picked. It panics if m
// is not a ScalarGoalFollower.
func (m *Modulator) SetPauseRange(pauseRangeUs ValueRange) {
	if m.kind != KindScalarGoalFollower {
		panic("modulators: SetPauseRange called on non-ScalarGoalFollower modulator")
	}
	m.scalarGoalFollower.pauseRange = pauseRangeUs
}

// SetThresholds sets the arrival position and velocity thresholds. It
// panics if m is not a ScalarGoalFollower.
func (m *Modulator) SetThresholds(threshold, velThreshold float32) {
	if m.kind != KindScalarGoalFollower {
		panic("modulators: SetThresholds called on non-ScalarGoalFollower modulator")
	}
	m.scalarGoalFollower.threshold = threshold
	m.scalarGoalFollower.velThreshold = velThreshold
}

func (g *scalarGoalFollowerPayload) rangeUnion() ValueRange {
	if len(g.regions) == 0 {
		return ValueRange{}
	}
	r := g.regions[0]
	for _, it := range g.regions[1:] {
		if it.Min < r.Min {
			r.Min = it.Min
		}
		if it.Max > r.Max {
			r.Max = it.Max
		}
	}
	return r
}

func minUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func (g *scalarGoalFollowerPayload) advance(dtUs uint64) {
	if g.pausedLeft > 0 {
		g.pausedLeft -= minUint64(g.pausedLeft, dtUs)
	} else {
		p0 := g.follower.Value()
		g.follower.Advance(dtUs)
		p1 := g.follower.Value()

		secs := MicrosToSecs(dtUs)
		var vel float32
		if secs > flt32Min {
			vel = (p1 - p0) / secs
		}

		// Arrival test preserved verbatim from the source: compares
		// p1 - |goal| to threshold, missing the absolute value that would
		// make this a true distance-to-goal check. Do not "fix" this; it
		// is flagged as an intentional open question.
		goalVal := g.follower.Goal()
		absGoal := goalVal
		if absGoal < 0 {
			absGoal = -absGoal
		}
		if p1-absGoal > g.threshold || absFloat32(vel) > g.velThreshold {
			return // still moving towards goal
		}

		if g.pauseRange.Max > g.pauseRange.Min {
			g.pausedLeft = g.source.RangeUint64(uint64(g.pauseRange.Min), uint64(g.pauseRange.Max))
		} else {
			g.pausedLeft = uint64(g.pauseRange.Min)
		}
	}

	if g.pausedLeft == 0 {
		g.setNewGoal()
	}
}

func (g *scalarGoalFollowerPayload) setNewGoal() {
	n := len(g.regions)
	if n == 0 {
		return
	}
	if g.randomRegion {
		g.currentRegion = int(g.source.RangeUint64(0, uint64(n)))
	} else {
		g.currentRegion = (g.currentRegion + 1) % n
	}

	region := g.regions[g.currentRegion]
	var goal float32
	if region.Max > region.Min {
		goal = g.source.RangeFloat32(region.Min, region.Max)
	} else {
		goal = region.Min
	}
	g.follower.SetGoal(goal)
}

func absFloat32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// flt32Min mirrors C's FLT_MIN: the smallest positive normal float32, used
// as the threshold below which an elapsed duration is treated as "no time
// passed" for velocity estimation.
const flt32Min = 1.1754943508222875e-38
