package shapes

import (
	"sort"
	"strings"

	"github.com/JCGoran/data-morph/pkg/dataset"
	"github.com/JCGoran/data-morph/pkg/errors"
)

// Factory builds a shape sized and positioned for a dataset.
type Factory func(name string, ds *dataset.Dataset) Shape

// Registry maps shape names to factories. It is an explicit object so
// tests can substitute a reduced or fake catalog without touching
// shared state.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces a factory under name.
func (r *Registry) Register(name string, f Factory) {
	r.factories[strings.ToLower(name)] = f
}

// Names returns the registered shape names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[strings.ToLower(name)]
	return ok
}

// Build constructs the named shape for ds.
func (r *Registry) Build(name string, ds *dataset.Dataset) (Shape, error) {
	f, ok := r.factories[strings.ToLower(name)]
	if !ok {
		return nil, errors.New(errors.ErrCodeShapeNotFound, "unknown target shape %q", name)
	}
	return f(strings.ToLower(name), ds), nil
}

// Resolve builds the requested shapes for ds, keeping valid names in
// request order and skipping unknown ones. An empty request, or the
// name "all" anywhere in it, resolves the full catalog in registry
// order. If no name resolves, Resolve fails with a single error rather
// than per-name failures.
func (r *Registry) Resolve(names []string, ds *dataset.Dataset) ([]Shape, error) {
	if len(names) == 0 {
		names = r.Names()
	}
	for _, name := range names {
		if strings.EqualFold(name, "all") {
			names = r.Names()
			break
		}
	}
	resolved := make([]Shape, 0, len(names))
	for _, name := range names {
		shape, err := r.Build(name, ds)
		if err != nil {
			continue
		}
		resolved = append(resolved, shape)
	}
	if len(resolved) == 0 {
		return nil, errors.New(errors.ErrCodeShapeNotFound, "No valid target shapes were provided.")
	}
	return resolved, nil
}
