package provider

import (
	"fmt"

	"github.com/rios0rios0/vcsbus/domain"
)

// Registry manages all registered platform strategy implementations.
type Registry struct {
	strategies map[string]Factory
}

// Factory is a constructor function that creates a Strategy for an endpoint.
type Factory func(endpoint domain.Endpoint) domain.Strategy

// NewRegistry creates an empty strategy registry.
func NewRegistry() *Registry {
	return &Registry{
		strategies: make(map[string]Factory),
	}
}

// Register adds a strategy factory under the given name (e.g. "github").
func (r *Registry) Register(name string, factory Factory) {
	r.strategies[name] = factory
}

// Get returns a configured strategy instance for the given name and endpoint.
func (r *Registry) Get(name string, endpoint domain.Endpoint) (domain.Strategy, error) {
	factory, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider type: %q", name)
	}
	return factory(endpoint), nil
}

// Names returns the list of registered provider names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	return names
}
