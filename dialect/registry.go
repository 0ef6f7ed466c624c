package dialect

import (
	"fmt"
	"sync"
)

// Registry is a process-wide name -> dialect map, matching spec.md §5/§9's
// "simple name -> dialect map with register/lookup/unregister" note.
//
// Registration is expected to happen at program start-up; the guard mutex
// is cheap insurance against a concurrent read racing a late registration,
// not a promise that this type is suited to high-frequency mutation.
type Registry struct {
	mu       sync.RWMutex
	dialects map[string]*Dialect
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{dialects: make(map[string]*Dialect)}
}

// Register adds d under name. It returns an error if name is already taken.
func (r *Registry) Register(name string, d *Dialect) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.dialects[name]; exists {
		return fmt.Errorf("dialect: %q is already registered", name)
	}
	r.dialects[name] = d
	return nil
}

// Get looks up a dialect by name.
func (r *Registry) Get(name string) (*Dialect, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.dialects[name]
	if !ok {
		return nil, fmt.Errorf("dialect: no such dialect %q", name)
	}
	return d, nil
}

// Unregister removes name from the registry, if present.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.dialects, name)
}

// DefaultRegistry is the package-level registry pre-seeded with "default".
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.dialects["default"] = Default()
	return r
}
