package cli

import (
	"context"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/barfly/pkg/chart"
	"github.com/matzehuels/barfly/pkg/config"
	"github.com/matzehuels/barfly/pkg/core/surface"
	"github.com/matzehuels/barfly/pkg/core/transition"
	"github.com/matzehuels/barfly/pkg/document"
	"github.com/matzehuels/barfly/pkg/errors"
)

// instantTweener completes every tween in a single frame. Offline renders
// use it so transitions are recorded without waiting for them to play.
type instantTweener struct{}

func (instantTweener) Tween(ctx context.Context, _, to []float64, _ transition.Animation, step func([]float64)) *transition.Task {
	return transition.Go(ctx, func(context.Context) error {
		step(to)
		return nil
	})
}

// buildOpts controls how a document becomes a chart.
type buildOpts struct {
	activations []string
	// static disables animation entirely.
	static bool
	// live plays animations in real time instead of completing them at once.
	live bool
}

// buildChart draws doc on a fresh canvas and applies the activations in
// order. The caller owns the returned chart and must close it.
func buildChart(doc *document.Document, settings config.Settings, logger *log.Logger, opts buildOpts) (*chart.Chart, *surface.Canvas, error) {
	canvas := doc.Canvas()
	o := doc.Options
	o.Logger = logger
	if !opts.live {
		o.Tweener = instantTweener{}
	}
	if opts.static {
		o.Animation = chart.NoAnimation()
	}

	c, err := chart.New(canvas, o, settings)
	if err != nil {
		return nil, nil, err
	}
	for _, id := range opts.activations {
		if _, ok := c.Activate(id); ok {
			continue
		}
		if !slices.Contains(c.ListData(), id) {
			c.Close()
			return nil, nil, errors.New(errors.ErrCodeDatasetNotFound, "dataset %q not found (have %v)", id, c.ListData())
		}
		logger.Warn("activation ignored", "dataset", id)
	}
	if !opts.live {
		if err := c.Wait(); err != nil {
			c.Close()
			return nil, nil, err
		}
	}
	return c, canvas, nil
}
