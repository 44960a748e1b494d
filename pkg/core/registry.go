package core

import "fmt"

// Registry is the standard Factory implementation: a table of constructors
// keyed by source-type name. It also implements Resolver, so restored state
// can skip tokens that no longer resolve.
type Registry struct {
	ctors map[string]func() Page
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]func() Page)}
}

// Register associates a constructor with a source-type name. Re-registering
// a name replaces the previous constructor.
func (r *Registry) Register(sourceType string, ctor func() Page) {
	r.ctors[sourceType] = ctor
}

// Create implements Factory.
func (r *Registry) Create(sourceType string) (Page, error) {
	ctor, ok := r.ctors[sourceType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPageType, sourceType)
	}
	return ctor(), nil
}

// Resolves implements Resolver.
func (r *Registry) Resolves(sourceType string) bool {
	_, ok := r.ctors[sourceType]
	return ok
}

var _ Factory = (*Registry)(nil)
var _ Resolver = (*Registry)(nil)
