package chart

import (
	"github.com/matzehuels/barfly/pkg/config"
	"github.com/matzehuels/barfly/pkg/core/surface"
)

// Registry tracks at most one chart per container. Containers are used as
// map keys and must be comparable, which pointer types are.
//
// Like a chart, a Registry is not safe for concurrent use.
type Registry struct {
	charts map[surface.Container]*Chart
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{charts: make(map[surface.Container]*Chart)}
}

// Attach creates a chart in container unless one is already attached, in
// which case the existing chart is returned unchanged and opts are ignored.
// The boolean reports whether a chart was created.
func (r *Registry) Attach(container surface.Container, opts Options, settings config.Settings) (*Chart, bool, error) {
	if c, ok := r.charts[container]; ok {
		return c, false, nil
	}
	c, err := New(container, opts, settings)
	if err != nil {
		return nil, false, err
	}
	r.charts[container] = c
	return c, true, nil
}

// Lookup returns the chart attached to container.
func (r *Registry) Lookup(container surface.Container) (*Chart, bool) {
	c, ok := r.charts[container]
	return c, ok
}

// Detach closes and forgets the chart attached to container.
func (r *Registry) Detach(container surface.Container) bool {
	c, ok := r.charts[container]
	if !ok {
		return false
	}
	c.Close()
	delete(r.charts, container)
	return true
}

// Len returns the number of attached charts.
func (r *Registry) Len() int { return len(r.charts) }
