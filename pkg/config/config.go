// Package config holds the process-wide chart defaults.
//
// Charts never read these defaults directly: a chart takes a [Settings]
// value at construction and keeps its own [Settings.Snapshot], so changing
// the defaults later only affects charts created afterwards.
package config

import (
	"github.com/matzehuels/barfly/pkg/core/style"
	"github.com/matzehuels/barfly/pkg/core/transition"
	"github.com/matzehuels/barfly/pkg/errors"
)

// Default container size applied when a container measures zero.
const (
	DefaultChartWidth  = 400
	DefaultChartHeight = 100
)

// Settings are the defaults applied to every chart.
type Settings struct {
	// ChartStyle is layered between the base chart style and a chart's
	// own style.
	ChartStyle style.Style
	// BarStyle is layered between the base bar style and a chart's own
	// bar style.
	BarStyle style.Style
	// ChartWidth and ChartHeight are applied when the container measures
	// zero in that dimension.
	ChartWidth  int
	ChartHeight int
	// Animation used by charts that do not configure their own. Nil
	// disables animation by default.
	Animation *transition.Animation
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		ChartStyle: style.New(
			"backgroundColor", "#eeeeee",
			"borderWidth", "1px",
			"borderColor", "#666666",
			"borderStyle", "solid",
		),
		BarStyle: style.New(
			"backgroundColor", "#999999",
			"borderWidth", "1px",
			"borderColor", "#666666",
			"borderStyle", "solid",
		),
		ChartWidth:  DefaultChartWidth,
		ChartHeight: DefaultChartHeight,
		Animation:   transition.Default(),
	}
}

// Snapshot returns a deep copy of s.
func (s Settings) Snapshot() Settings {
	return Settings{
		ChartStyle:  s.ChartStyle.Clone(),
		BarStyle:    s.BarStyle.Clone(),
		ChartWidth:  s.ChartWidth,
		ChartHeight: s.ChartHeight,
		Animation:   s.Animation.Clone(),
	}
}

// Validate reports settings a chart cannot use.
func (s Settings) Validate() error {
	if err := errors.ValidateDimension("chart_width", s.ChartWidth); err != nil {
		return err
	}
	if err := errors.ValidateDimension("chart_height", s.ChartHeight); err != nil {
		return err
	}
	if s.Animation != nil && s.Animation.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidSettings, "animation duration must not be negative")
	}
	return nil
}
