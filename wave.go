package modulators

import "math"

// wavePayload produces a sinusoid: value = amplitude * sin(2*pi*frequency*t).
// It has no target semantics: Goal aliases Value and SetGoal is a no-op.
type wavePayload struct {
	amplitude float32
	frequency float32
	time      uint64
	value     float32
}

// NewWave constructs a Wave modulator. amplitude sets the output bound
// [-amplitude, +amplitude]; frequency is in Hz.
func NewWave(name string, amplitude, frequency float32, opts ...Option) *Modulator {
	cfg := resolveConfig(opts)
	cfg.logger.Debug().Str("name", name).Str("kind", KindWave.String()).
		Float32("amplitude", amplitude).Float32("frequency", frequency).Msg("modulator constructed")
	return &Modulator{
		name:    name,
		kind:    KindWave,
		enabled: cfg.enabled,
		wave: &wavePayload{
			amplitude: amplitude,
			frequency: frequency,
		},
	}
}

func (w *wavePayload) advance(dtUs uint64) {
	w.time += dtUs
	tSec := MicrosToSecs(w.time)
	w.value = w.amplitude * float32(math.Sin(2*math.Pi*float64(w.frequency)*float64(tSec)))
}
