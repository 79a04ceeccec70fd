package chart

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/barfly/pkg/core/boxmodel"
	"github.com/matzehuels/barfly/pkg/core/dataset"
	"github.com/matzehuels/barfly/pkg/core/scale"
	"github.com/matzehuels/barfly/pkg/core/style"
	"github.com/matzehuels/barfly/pkg/core/transition"
)

// Options configures a chart. The zero value is a valid, empty chart that
// draws nothing until data is added.
type Options struct {
	// Data is the initial data: a sequence for a single-set chart or keyed
	// sets for a multi-set chart.
	Data dataset.Input
	// Range fixes the value range. Nil infers it from the data.
	Range *scale.Spec
	// Active selects the initially active dataset. Empty keeps the first.
	Active string
	// BarSpacing is the gap in pixels on each side of every bar.
	BarSpacing int

	ChartStyle style.Style
	BarStyle   style.Style
	DataStyle  style.DataStyle

	// Animation overrides the process-wide animation default.
	Animation AnimationOption

	// Listener receives lifecycle events. Optional.
	Listener Listener
	// Logger for debug output. Nil discards.
	Logger *log.Logger
	// Probe measures bar padding. Nil uses the container when it
	// implements boxmodel.Probe, else the CSS box model.
	Probe boxmodel.Probe
	// Tweener runs animations. Nil uses transition.TickerTweener.
	Tweener transition.Tweener
}

func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

type animationMode int

const (
	animationInherit animationMode = iota
	animationOff
	animationCustom
)

// AnimationOption selects a chart's animation. The zero value inherits the
// process-wide default.
type AnimationOption struct {
	mode animationMode
	anim transition.Animation
}

// NoAnimation disables animation for a chart.
func NoAnimation() AnimationOption { return AnimationOption{mode: animationOff} }

// WithAnimation sets a chart's animation. A zero duration or empty easing
// falls back to the package defaults.
func WithAnimation(a transition.Animation) AnimationOption {
	return AnimationOption{mode: animationCustom, anim: a}
}

// resolve returns the animation a chart uses given the process default.
func (o AnimationOption) resolve(def *transition.Animation) *transition.Animation {
	switch o.mode {
	case animationOff:
		return nil
	case animationCustom:
		a := o.anim
		if a.Duration == 0 {
			a.Duration = transition.DefaultDuration
		}
		if a.Easing == "" {
			a.Easing = transition.DefaultEasing
		}
		return &a
	default:
		return def.Clone()
	}
}

// ParseSpacing reads a bar spacing value leniently: integers are used as
// is, floats are truncated, and strings contribute their leading integer
// ("12px" is 12). Anything else is 0.
func ParseSpacing(v any) int {
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return int(x)
	case string:
		return leadingInt(x)
	default:
		return 0
	}
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
