package recording

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// ErrUnknownBackend is returned by NewBackend for names nobody registered.
var ErrUnknownBackend = errors.New("recording: unknown backend")

// BackendFactory creates a new, not yet begun, backend instance.
type BackendFactory func() Backend

// registry maps output names to backend factories.
type registry struct {
	mu        sync.RWMutex
	factories map[string]BackendFactory
}

var outputs = &registry{factories: map[string]BackendFactory{}}

func (r *registry) add(name string, factory BackendFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch _, taken := r.factories[name]; {
	case factory == nil:
		panic("recording: nil factory for backend " + name)
	case taken:
		panic("recording: backend " + name + " registered twice")
	}
	r.factories[name] = factory
}

func (r *registry) remove(name string) {
	r.mu.Lock()
	delete(r.factories, name)
	r.mu.Unlock()
}

func (r *registry) factory(name string) (BackendFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.factories))
}

// Register makes a backend available under name. Backend packages call it
// from init(), so importing one for its side effect is enough:
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return svgcanvas.New()
//	    })
//	}
//
// Register panics if factory is nil or name is already taken.
func Register(name string, factory BackendFactory) {
	outputs.add(name, factory)
}

// Unregister removes a backend from the registry. Mostly useful in tests.
func Unregister(name string) {
	outputs.remove(name)
}

// NewBackend creates a backend by name. The error wraps ErrUnknownBackend
// and hints at a missing blank import.
func NewBackend(name string) (Backend, error) {
	f, ok := outputs.factory(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return f(), nil
}

// MustBackend is NewBackend that panics on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	return outputs.names()
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	_, ok := outputs.factory(name)
	return ok
}
