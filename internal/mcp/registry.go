package mcp

import (
	"context"
	"sort"
)

// HandlerFunc executes one operation against its Op bundle. Handlers
// validate first, then mutate, and never persist anything themselves.
type HandlerFunc func(ctx context.Context, op *Op) error

// Registration declares one client-invocable operation.
type Registration struct {
	Name string
	// Secondaries lists every profile id the handler may pull in besides
	// the primary. The dispatcher locks them up front, in canonical order.
	Secondaries []string
	Handler     HandlerFunc
}

// Registry is the set of known operations.
type Registry struct {
	ops map[string]Registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Registration)}
}

// Register adds an operation. Re-registering a name panics; duplicate
// operation names are a wiring bug.
func (r *Registry) Register(reg Registration) {
	if _, exists := r.ops[reg.Name]; exists {
		panic("operation registered twice: " + reg.Name)
	}
	r.ops[reg.Name] = reg
}

// Get looks up an operation by name.
func (r *Registry) Get(name string) (Registration, bool) {
	reg, ok := r.ops[name]
	return reg, ok
}

// Names returns the registered operation names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
