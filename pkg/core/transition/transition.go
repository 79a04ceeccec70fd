// Package transition moves bars from their current heights to new ones,
// either at once or as a cancellable animation.
//
// At most one animation runs per [Driver]: starting a new transition cancels
// the one in flight, leaving bars wherever that animation had moved them,
// and tweens onward from there.
package transition

import (
	"context"
	"io"
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/barfly/pkg/core/style"
	"github.com/matzehuels/barfly/pkg/core/surface"
)

// Default animation parameters.
const (
	DefaultDuration = 500 * time.Millisecond
	DefaultEasing   = "linear"
)

// Animation configures an animated transition. A nil *Animation disables
// animation.
type Animation struct {
	Duration time.Duration
	Easing   string
}

// Default returns the default animation.
func Default() *Animation {
	return &Animation{Duration: DefaultDuration, Easing: DefaultEasing}
}

// EasingFunc returns the animation's easing, falling back to linear.
func (a Animation) EasingFunc() EasingFunc {
	f, _ := Easing(a.Easing)
	return f
}

// Clone returns a copy of a, or nil.
func (a *Animation) Clone() *Animation {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// Transition records one height change applied by a [Driver].
type Transition struct {
	From      []int
	To        []int
	Animation *Animation
}

// Animated reports whether the transition was tweened.
func (t Transition) Animated() bool { return t.Animation != nil }

// Driver applies per-draw styling and heights to bar elements.
type Driver struct {
	anim    *Animation
	tweener Tweener
	logger  *log.Logger
	task    *Task
	last    Transition
}

// NewDriver returns a driver animating with anim, or snapping when anim is
// nil. A nil tweener uses [TickerTweener]; a nil logger discards.
func NewDriver(anim *Animation, tweener Tweener, logger *log.Logger) *Driver {
	if tweener == nil {
		tweener = TickerTweener{}
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if anim != nil {
		if _, ok := Easing(anim.Easing); !ok {
			logger.Debug("unknown easing, using linear", "easing", anim.Easing)
		}
	}
	return &Driver{anim: anim.Clone(), tweener: tweener, logger: logger}
}

// Animation returns the configured animation, or nil.
func (d *Driver) Animation() *Animation { return d.anim.Clone() }

// Apply cancels any running animation, applies st to every element and
// moves the elements to heights. It reports whether the move is animated.
// Apply does not wait for the animation to finish.
func (d *Driver) Apply(ctx context.Context, elems []surface.Element, st style.Style, heights []int) bool {
	d.Stop()

	from := make([]int, len(elems))
	for i, el := range elems {
		el.ApplyStyle(st)
		from[i] = el.Height()
	}
	to := slices.Clone(heights[:min(len(heights), len(elems))])
	d.last = Transition{From: from, To: to, Animation: d.anim.Clone()}

	if d.anim == nil {
		for i, h := range to {
			elems[i].SetHeight(h)
		}
		return false
	}

	d.logger.Debug("tweening bars", "bars", len(to), "duration", d.anim.Duration, "easing", d.anim.Easing)
	d.task = d.tweener.Tween(ctx, toFloats(from), toFloats(to), *d.anim, func(frame []float64) {
		for i, v := range frame {
			elems[i].SetHeight(int(math.Round(v)))
		}
	})
	return true
}

// Stop cancels the running animation, if any, leaving bars where it left
// them.
func (d *Driver) Stop() {
	if d.task != nil {
		d.task.Cancel()
		d.task = nil
	}
}

// Wait blocks until the running animation, if any, completes.
func (d *Driver) Wait() error {
	if d.task == nil {
		return nil
	}
	return d.task.Wait()
}

// Task returns the running animation, or nil.
func (d *Driver) Task() *Task { return d.task }

// Last returns the most recent transition.
func (d *Driver) Last() Transition { return d.last }

func toFloats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
