// Package chart implements a bar chart bound to a host container.
//
// A chart owns its datasets, value range and styles, and lays its bars out
// inside a [surface.Container] on first draw. Switching the active dataset
// redraws the bars, animating heights when an animation is configured.
//
//	c, err := chart.New(canvas, chart.Options{
//	    Data:   dataset.KeyedMap(map[string][]float64{"a": {1, 2}, "b": {3, 4}}),
//	    Active: "b",
//	}, config.Default())
//	...
//	c.Activate("a")
//
// A chart is not safe for concurrent use; callers serialize access.
package chart

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/barfly/pkg/config"
	"github.com/matzehuels/barfly/pkg/core/boxmodel"
	"github.com/matzehuels/barfly/pkg/core/dataset"
	"github.com/matzehuels/barfly/pkg/core/layout"
	"github.com/matzehuels/barfly/pkg/core/scale"
	"github.com/matzehuels/barfly/pkg/core/style"
	"github.com/matzehuels/barfly/pkg/core/surface"
	"github.com/matzehuels/barfly/pkg/core/transition"
)

var defaultProbe = boxmodel.NewCSSProbe(boxmodel.DefaultMemoSize)

// Chart is one bar chart attached to a container.
type Chart struct {
	id        string
	ctx       context.Context
	cancel    context.CancelFunc
	container surface.Container
	settings  config.Settings

	store     *dataset.Store
	rng       scale.Resolver
	styles    style.Resolver
	dataStyle style.DataStyle
	spacing   int

	probe  boxmodel.Probe
	engine layout.Engine
	driver *transition.Driver

	listener Listener
	logger   *log.Logger
}

// New creates a chart in container and draws it. settings is copied; later
// changes to it do not affect the chart.
//
// Input with a dataset of the wrong length, or a duplicate or invalid id,
// fails construction before any added or activated event is emitted.
func New(container surface.Container, opts Options, settings config.Settings) (*Chart, error) {
	opts.setDefaults()
	if err := dataset.Validate(opts.Data); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &Chart{
		id:        uuid.NewString(),
		ctx:       ctx,
		cancel:    cancel,
		container: container,
		settings:  settings.Snapshot(),
		listener:  opts.Listener,
	}
	c.logger = opts.Logger.With("chart", c.id[:8])
	c.store = dataset.NewStore(dataset.WithListener(events{c}), dataset.WithObserver(&c.rng))

	c.driver = transition.NewDriver(opts.Animation.resolve(c.settings.Animation), opts.Tweener, c.logger)
	if opts.Range != nil {
		c.rng.SetRange(*opts.Range)
	}
	if !opts.Data.IsZero() {
		if _, err := c.store.AddData(opts.Data); err != nil {
			cancel()
			return nil, err
		}
	}
	if opts.Active != "" {
		c.store.SetActive(opts.Active)
	}
	c.spacing = opts.BarSpacing
	c.styles = style.Resolver{
		DefaultBar:   c.settings.BarStyle,
		DefaultChart: c.settings.ChartStyle,
		UserBar:      opts.BarStyle,
		UserChart:    opts.ChartStyle,
	}
	c.dataStyle = opts.DataStyle
	c.probe = c.pickProbe(opts.Probe)

	c.Draw()
	return c, nil
}

func (c *Chart) pickProbe(p boxmodel.Probe) boxmodel.Probe {
	if p != nil {
		return p
	}
	if p, ok := c.container.(boxmodel.Probe); ok {
		return p
	}
	return defaultProbe
}

// ID returns the chart's unique id.
func (c *Chart) ID() string { return c.id }

// Container returns the container the chart draws into.
func (c *Chart) Container() surface.Container { return c.container }

// Activate makes id the active dataset and redraws. It returns false, and
// does nothing, for a single-set chart, an unknown id or the id already
// active.
func (c *Chart) Activate(id string) (string, bool) {
	got, ok := c.store.Activate(id)
	if !ok {
		return "", false
	}
	c.Draw()
	return got, true
}

// AddData adds datasets to the chart and returns the ids added. Input of the
// other shape than the chart's is ignored. The chart is not redrawn.
func (c *Chart) AddData(in dataset.Input) ([]string, error) {
	return c.store.AddData(in)
}

// ListData returns the dataset ids in insertion order.
func (c *Chart) ListData() []string { return c.store.IDs() }

// Draw lays out and draws the active dataset. It returns false when there
// is no active dataset or no value range yet. The drawn event fires
// immediately; a configured animation keeps running afterwards.
func (c *Chart) Draw() bool {
	active, ok := c.store.Active()
	if !ok {
		c.logger.Debug("draw skipped: no active dataset")
		return false
	}
	r, ok := c.rng.Range()
	if !ok {
		c.logger.Debug("draw skipped: range not ready")
		return false
	}

	barStyle := c.barStyle(active)
	if c.engine.State() == layout.Uninitialized {
		if err := c.setup(barStyle); err != nil {
			c.logger.Error("draw failed", "error", err)
			return false
		}
	}

	heights := c.engine.Heights(c.container, c.store.ActiveValues(), r)
	animated := c.driver.Apply(c.ctx, c.engine.Elements(), barStyle, heights)
	c.logger.Debug("drawn", "dataset", active, "range", r, "animated", animated)
	events{c}.OnDrawn(active, animated)
	return true
}

// setup styles the container and creates the bars on first draw.
func (c *Chart) setup(barStyle style.Style) error {
	c.container.AddClass(layout.ChartClass)
	c.container.ApplyStyle(c.styles.Chart())
	w, h := c.container.Size()
	if w == 0 || h == 0 {
		if w == 0 {
			w = c.settings.ChartWidth
		}
		if h == 0 {
			h = c.settings.ChartHeight
		}
		c.container.SetSize(w, h)
	}

	pad, err := c.probe.Measure(style.Merge(barStyle, style.New("left", "0", "width", "0", "height", "0")))
	if err != nil {
		return err
	}
	n := len(c.store.ActiveValues())
	c.engine.Setup(c.container, n, c.spacing, pad, barStyle)
	c.logger.Debug("laid out", "bars", n, "padding", pad, "spacing", c.spacing)
	return nil
}

// barStyle is the resolved bar style with the active dataset's overlay.
func (c *Chart) barStyle(active string) style.Style {
	return c.styles.Data(c.dataStyle.For(active, c.store.Multiset()))
}

// Active returns the active dataset id.
func (c *Chart) Active() (string, bool) { return c.store.Active() }

// Multiset reports whether the chart holds keyed datasets.
func (c *Chart) Multiset() bool { return c.store.Multiset() }

// Values returns the values of dataset id.
func (c *Chart) Values(id string) ([]float64, bool) { return c.store.Values(id) }

// Range returns the current value range.
func (c *Chart) Range() (scale.Range, bool) { return c.rng.Range() }

// Padding returns the measured bar padding. It is zero before first draw.
func (c *Chart) Padding() boxmodel.Padding { return c.engine.Padding() }

// Geometry returns the current geometry of every bar, or nil before the
// first draw.
func (c *Chart) Geometry() []layout.Bar {
	if c.engine.State() != layout.LaidOut {
		return nil
	}
	return c.engine.Geometry()
}

// Animation returns the chart's animation, or nil when disabled.
func (c *Chart) Animation() *transition.Animation { return c.driver.Animation() }

// LastTransition returns the heights change applied by the latest draw.
func (c *Chart) LastTransition() transition.Transition { return c.driver.Last() }

// Wait blocks until the running animation, if any, completes.
func (c *Chart) Wait() error { return c.driver.Wait() }

// Close stops any animation and removes the chart's bars from its
// container.
func (c *Chart) Close() {
	c.driver.Stop()
	c.engine.Teardown(c.container)
	c.cancel()
}
