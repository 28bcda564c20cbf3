package audio

import (
	"math"

	modulators "github.com/cbegin/modulators-go"
)

// ModulatorTone is a SampleSource that renders a fixed-pitch sine tone whose
// gain tracks a modulator's Value() once per audio buffer. It couples the
// generic streaming plumbing in this package to a live modulator so a demo
// can hear a modulator's motion directly, without a separate control-rate
// goroutine driving gain by hand.
type ModulatorTone struct {
	sampleRate int
	toneHz     float64
	phase      float64
	gain       *modulators.Modulator
	tickUs     uint64
}

// NewModulatorTone builds a tone source at toneHz that advances gain by
// tickUs microseconds of modulator time per Process call.
func NewModulatorTone(sampleRate int, toneHz float64, gain *modulators.Modulator, tickUs uint64) *ModulatorTone {
	return &ModulatorTone{
		sampleRate: sampleRate,
		toneHz:     toneHz,
		gain:       gain,
		tickUs:     tickUs,
	}
}

func (t *ModulatorTone) Process(dst []float32) {
	t.gain.Advance(t.tickUs)
	g := t.gain.Value()
	if g < 0 {
		g = -g
	}
	if g > 1 {
		g = 1
	}

	step := t.toneHz / float64(t.sampleRate)
	for i := 0; i+1 < len(dst); i += 2 {
		s := g * float32(math.Sin(2*math.Pi*t.phase))
		t.phase += step
		if t.phase >= 1 {
			t.phase -= 1
		}
		dst[i] = s
		dst[i+1] = s
	}
}
