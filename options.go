package modulators

import (
	"github.com/rs/zerolog"

	"github.com/cbegin/modulators-go/rng"
)

// modConfig holds the fields every constructor accepts through variadic
// Options.
type modConfig struct {
	source  rng.Source
	logger  zerolog.Logger
	enabled bool
}

func defaultModConfig() modConfig {
	return modConfig{
		source:  defaultSource,
		logger:  zerolog.Nop(),
		enabled: true,
	}
}

// Option configures optional fields on a modulator at construction time.
type Option func(*modConfig)

// WithSource overrides the random source used by constructors that draw
// random values (Newtonian, ShiftRegister, ScalarGoalFollower). Tests that
// need deterministic output should always supply one.
func WithSource(s rng.Source) Option {
	return func(c *modConfig) {
		c.source = s
	}
}

// WithLogger attaches a structured logger; construction is logged at debug
// level. The logger is not kept on the modulator, so goal and region
// transitions are not logged and Advance never logs. The default is a
// no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *modConfig) {
		c.logger = l
	}
}

// WithEnabled sets the initial Enabled() state. Modulators are enabled by
// default.
func WithEnabled(enabled bool) Option {
	return func(c *modConfig) {
		c.enabled = enabled
	}
}

func resolveConfig(opts []Option) modConfig {
	cfg := defaultModConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
