package layout

import (
	"fmt"
	"slices"

	"github.com/matzehuels/barfly/pkg/core/boxmodel"
	"github.com/matzehuels/barfly/pkg/core/scale"
	"github.com/matzehuels/barfly/pkg/core/style"
	"github.com/matzehuels/barfly/pkg/core/surface"
)

// Class names applied to bar elements.
const (
	BarClass   = "barflyBar"
	ChartClass = "barflyChart"
)

// State is the lifecycle of an [Engine].
type State int

const (
	// Uninitialized means no bar elements exist yet.
	Uninitialized State = iota
	// LaidOut means bar elements exist and are horizontally placed.
	LaidOut
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case LaidOut:
		return "laid-out"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Engine owns the bar elements of one chart. Elements are created once by
// [Engine.Setup] and live until [Engine.Teardown].
type Engine struct {
	state State
	elems []surface.Element
	bars  []Bar
	pad   boxmodel.Padding
}

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Padding returns the box padding the layout was computed with.
func (e *Engine) Padding() boxmodel.Padding { return e.pad }

// Elements returns the bar element handles.
func (e *Engine) Elements() []surface.Element { return e.elems }

// Bars returns the horizontal geometry computed at setup.
func (e *Engine) Bars() []Bar { return slices.Clone(e.bars) }

// Setup creates n bars inside c and places them. barStyle is the resolved
// per-bar style applied before the geometry. Calling Setup on an engine that
// is already laid out does nothing and returns false.
func (e *Engine) Setup(c surface.Container, n, spacing int, pad boxmodel.Padding, barStyle style.Style) bool {
	if e.state == LaidOut {
		return false
	}
	innerW, _ := c.InnerSize()
	e.pad = pad
	e.bars = Place(innerW, n, spacing, pad)
	e.elems = c.AppendBars(n)
	for i, el := range e.elems {
		b := e.bars[i]
		el.ApplyStyle(barStyle)
		el.AddClass(BarClass, fmt.Sprintf("%s%d", BarClass, i))
		el.SetBox(b.Left, b.Bottom, b.Width)
	}
	e.state = LaidOut
	return true
}

// Heights computes the content height of every bar for values against r,
// using the container's current inner height.
func (e *Engine) Heights(c surface.Container, values []float64, r scale.Range) []int {
	_, innerH := c.InnerSize()
	return Heights(values, r, innerH, e.pad.Height)
}

// Geometry returns the full geometry of every bar using the elements'
// current heights.
func (e *Engine) Geometry() []Bar {
	out := e.Bars()
	for i := range out {
		out[i].Height = e.elems[i].Height()
	}
	return out
}

// Teardown removes the bars from c and resets the engine.
func (e *Engine) Teardown(c surface.Container) {
	if e.state == Uninitialized {
		return
	}
	c.RemoveBars()
	*e = Engine{}
}
