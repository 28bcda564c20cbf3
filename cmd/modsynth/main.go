// Command modsynth builds a single modulator and uses its Value() to ride
// the gain of a live audio tone, so the motion a modulator produces becomes
// audible.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/cbegin/modulators-go"
	"github.com/cbegin/modulators-go/internal/audio"
	"github.com/cbegin/modulators-go/internal/effects"
)

const toneHz = 220.0

// effectsTone wraps a ModulatorTone with an EQ band, a chorus, and a delay,
// keeping internal/effects exercised by the same demo.
type effectsTone struct {
	tone  *audio.ModulatorTone
	chain *effects.Chain
}

func newEffectsTone(sampleRate int, gain *modulators.Modulator, tickUs uint64) *effectsTone {
	eq := effects.NewEQ5Band(sampleRate)
	eq.SetGain(0, 3)
	chorus := effects.NewChorus(sampleRate, 10, 0.2, 4, 0.8, 0.35)
	delay := effects.NewDelay(sampleRate, 180, 0.3, 0.2, 0.25)
	return &effectsTone{
		tone:  audio.NewModulatorTone(sampleRate, toneHz, gain, tickUs),
		chain: effects.NewChain(eq, chorus, delay),
	}
}

func (t *effectsTone) Process(dst []float32) {
	t.tone.Process(dst)
	for i := 0; i+1 < len(dst); i += 2 {
		l, r := t.chain.Process(dst[i], dst[i+1])
		dst[i] = l
		dst[i+1] = r
	}
}

func buildModulator(kind string) *modulators.Modulator {
	switch kind {
	case "wave":
		return modulators.NewWave("demo", 1, 0.5)
	case "spring":
		m := modulators.NewScalarSpring("demo", 0.3, 0, 0)
		m.SetGoal(1)
		return m
	case "newtonian":
		rng := modulators.ValueRange{Min: 0.5, Max: 1}
		m := modulators.NewNewtonian("demo", rng, rng, rng, 0)
		m.SetGoal(1)
		return m
	case "shiftregister":
		return modulators.NewShiftRegister("demo", 8, modulators.ValueRange{Min: 0, Max: 1}, 0.2, 0.5, modulators.InterpQuadratic)
	default:
		log.Fatalf("unknown -kind %q (want wave|spring|newtonian|shiftregister)", kind)
		return nil
	}
}

func main() {
	var (
		sampleRate = flag.Int("sample-rate", 44100, "output sample rate")
		kind       = flag.String("kind", "wave", "modulator kind: wave|spring|newtonian|shiftregister")
		seconds    = flag.Float64("seconds", 5, "how long to play, in seconds")
	)
	flag.Parse()

	registry := modulators.NewRegistry()
	m := buildModulator(*kind)
	registry.AddModulator("demo-env", m)

	const tickUs = 1_000_000 / 44100 * 64 // one audio-buffer tick's worth of modulator time
	source := newEffectsTone(*sampleRate, m, tickUs)
	player, err := audio.NewPlayer(*sampleRate, source)
	if err != nil {
		log.Fatal(err)
	}
	player.Play()
	defer player.Stop()

	time.Sleep(time.Duration(*seconds * float64(time.Second)))
}
