package jpath

import (
	"fmt"
	"sync"

	"github.com/go-json-experiment/json/jsontext"
)

// Directive decodes the value of a directive object ({"$<name>": <value>})
// into a Go value. The decoder is positioned at the value; the directive
// must consume exactly that value.
type Directive func(dec *jsontext.Decoder) (any, error)

// Registry maps directive names (without the "$" prefix) to their decoders.
// Registration normally happens once at startup; Register serializes
// concurrent mutation anyway so shared registries stay safe.
type Registry struct {
	mu         sync.RWMutex
	directives map[string]Directive
}

func newRegistry() *Registry {
	return &Registry{directives: make(map[string]Directive)}
}

// NewRegistry constructs a new registry and applies the provided
// registrations.
func NewRegistry(regs ...Registration) (*Registry, error) {
	r := newRegistry()
	if err := Apply(r, regs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds a named directive. Registering a name twice is an error.
func (r *Registry) Register(name string, d Directive) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.directives[name]; exists {
		return fmt.Errorf("directive %q already registered", name)
	}
	if d == nil {
		return fmt.Errorf("directive %q is nil", name)
	}
	r.directives[name] = d
	return nil
}

// Decode dispatches to the directive registered under name.
func (r *Registry) Decode(name string, dec *jsontext.Decoder) (any, error) {
	r.mu.RLock()
	d, ok := r.directives[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("directive %q not registered", name)
	}
	v, err := d(dec)
	if err != nil {
		return nil, fmt.Errorf("directive %q execution: %w", name, err)
	}
	return v, nil
}

// Registration is a deferred directive registration. Packages that define
// directives expose values of this type so callers opt in explicitly instead
// of relying on import side-effects (init functions).
//
// For example, in a package "dateop":
//
//	var Date = jpath.NewDirective("date", func(dec *jsontext.Decoder) (time.Time, error) { ... })
//
// Usage:
//
//	r, _ := jpath.NewRegistry(dateop.Date /* , other directives... */)
//
// This keeps dependencies explicit and avoids global mutation at import time.
type Registration func(r *Registry) error

// NewDirective wraps a typed decode function as a Registration so that
// dependent packages can expose named directives without performing side
// effects at import time.
func NewDirective[T any](name string, fn func(dec *jsontext.Decoder) (T, error)) Registration {
	return func(r *Registry) error {
		return r.Register(name, func(dec *jsontext.Decoder) (any, error) {
			out, err := fn(dec)
			if err != nil {
				return nil, err
			}
			return out, nil
		})
	}
}

// Group groups multiple registrations into one, e.g.:
//
//	jpath.NewRegistry(jpath.Group(jpath.TimeDirective, jpath.DurationDirective), custom)
func Group(regs ...Registration) Registration {
	return func(r *Registry) error { return Apply(r, regs...) }
}

// Apply applies one or more registrations to an existing registry. Stops at
// the first error and returns it.
func Apply(r *Registry, regs ...Registration) error {
	for _, reg := range regs {
		if err := reg(r); err != nil {
			return err
		}
	}
	return nil
}
