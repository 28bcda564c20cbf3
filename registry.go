package modulators

import (
	"sync"

	"github.com/rs/zerolog"
)

// Environment is a named collection of uniquely-named modulators. An
// environment exclusively owns the modulators inserted into it.
type Environment struct {
	name       string
	modulators map[string]*Modulator
}

// Registry is an explicit, caller-constructed collection of named
// Environments. The source used a single process-wide map; this package
// re-architects that as a value the consumer constructs and passes around,
// avoiding module-level mutable state (see design notes).
type Registry struct {
	mu     sync.Mutex
	envs   map[string]*Environment
	logger zerolog.Logger
}

// RegistryOption configures a Registry at construction.
type RegistryOption func(*Registry)

// WithRegistryLogger attaches a structured logger that records environment
// creation and modulator registration/replacement at debug level. The
// default is a no-op logger.
func WithRegistryLogger(l zerolog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = l
	}
}

// NewRegistry constructs an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		envs:   make(map[string]*Environment),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddModulator inserts m into the named environment, creating the
// environment if it does not already exist. A modulator already present in
// the environment under the same name is replaced.
//
// It is safe to call AddModulator and the read-only lookups concurrently
// from different goroutines once the advance loop is driving modulators
// registered here, since every Registry method holds the registry's mutex;
// it does not itself synchronize access to a single Modulator.
func (r *Registry) AddModulator(envName string, m *Modulator) {
	r.mu.Lock()
	defer r.mu.Unlock()

	env, ok := r.envs[envName]
	if !ok {
		env = &Environment{name: envName, modulators: make(map[string]*Modulator)}
		r.envs[envName] = env
		r.logger.Debug().Str("environment", envName).Msg("environment created")
	}
	_, replaced := env.modulators[m.Name()]
	env.modulators[m.Name()] = m
	r.logger.Debug().Str("environment", envName).Str("modulator", m.Name()).
		Bool("replaced", replaced).Msg("modulator registered")
}

// Lookup returns the modulator named modName in environment envName, or nil
// if either does not exist.
func (r *Registry) Lookup(envName, modName string) *Modulator {
	r.mu.Lock()
	defer r.mu.Unlock()

	env, ok := r.envs[envName]
	if !ok {
		return nil
	}
	return env.modulators[modName]
}

// Environments returns the names of all registered environments, in
// unspecified order.
func (r *Registry) Environments() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.envs))
	for name := range r.envs {
		names = append(names, name)
	}
	return names
}

// Modulators returns the names of all modulators registered in envName, in
// unspecified order. It returns nil if the environment does not exist.
func (r *Registry) Modulators(envName string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	env, ok := r.envs[envName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(env.modulators))
	for name := range env.modulators {
		names = append(names, name)
	}
	return names
}
