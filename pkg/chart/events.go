package chart

import "github.com/matzehuels/barfly/pkg/observability"

// Listener receives chart lifecycle events.
type Listener interface {
	OnAdded(datasetID string)
	OnActivated(datasetID string)
	OnDrawn(datasetID string, animated bool)
}

// ListenerFuncs adapts plain functions to [Listener]. Nil fields are
// skipped.
type ListenerFuncs struct {
	Added     func(datasetID string)
	Activated func(datasetID string)
	Drawn     func(datasetID string, animated bool)
}

func (f ListenerFuncs) OnAdded(id string) {
	if f.Added != nil {
		f.Added(id)
	}
}

func (f ListenerFuncs) OnActivated(id string) {
	if f.Activated != nil {
		f.Activated(id)
	}
}

func (f ListenerFuncs) OnDrawn(id string, animated bool) {
	if f.Drawn != nil {
		f.Drawn(id, animated)
	}
}

// events forwards store and draw notifications to the chart's listener and
// the registered observability hooks.
type events struct {
	c *Chart
}

func (e events) OnAdded(id string) {
	e.c.logger.Debug("dataset added", "dataset", id)
	if e.c.listener != nil {
		e.c.listener.OnAdded(id)
	}
	observability.Chart().OnAdded(e.c.ctx, e.c.id, id)
}

func (e events) OnActivated(id string) {
	e.c.logger.Debug("dataset activated", "dataset", id)
	if e.c.listener != nil {
		e.c.listener.OnActivated(id)
	}
	observability.Chart().OnActivated(e.c.ctx, e.c.id, id)
}

func (e events) OnDrawn(id string, animated bool) {
	if e.c.listener != nil {
		e.c.listener.OnDrawn(id, animated)
	}
	observability.Chart().OnDrawn(e.c.ctx, e.c.id, id, animated)
}
