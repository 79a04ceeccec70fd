package surface

import (
	"math"
	"slices"
	"sync"

	"github.com/matzehuels/barfly/pkg/core/boxmodel"
	"github.com/matzehuels/barfly/pkg/core/style"
)

// Canvas is an in-memory [Container]. All element writes go through one
// mutex, so a tween running on its own goroutine can be observed with
// [Canvas.Snapshot] at any time.
type Canvas struct {
	mu      sync.Mutex
	width   int
	height  int
	classes []string
	style   style.Style
	bars    []*bar
}

// NewCanvas returns a canvas with the given content size. A zero dimension
// lets the chart apply its configured default.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: max(0, width), height: max(0, height)}
}

func (c *Canvas) AddClass(names ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.classes = addClasses(c.classes, names)
}

func (c *Canvas) ApplyStyle(st style.Style) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.style = style.Merge(c.style, st)
}

func (c *Canvas) Size() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}

func (c *Canvas) SetSize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width, c.height = max(0, width), max(0, height)
}

func (c *Canvas) InnerSize() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.innerSize()
}

func (c *Canvas) innerSize() (int, int) {
	p := boxmodel.PaddingWidths(c.style)
	return c.width + int(math.Round(p.Horizontal())), c.height + int(math.Round(p.Vertical()))
}

func (c *Canvas) AppendBars(n int) []Element {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Element, 0, max(0, n))
	for range n {
		b := &bar{canvas: c, index: len(c.bars)}
		c.bars = append(c.bars, b)
		out = append(out, b)
	}
	return out
}

func (c *Canvas) RemoveBars() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, b := range c.bars {
		b.removed = true
	}
	c.bars = nil
}

// Bars returns the current number of bar elements.
func (c *Canvas) Bars() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.bars)
}

// Scene is a point-in-time copy of a canvas.
type Scene struct {
	Width       int
	Height      int
	InnerWidth  int
	InnerHeight int
	Classes     []string
	Style       style.Style
	Bars        []BarShape
}

// BarShape is a point-in-time copy of one bar element.
type BarShape struct {
	Index   int
	Classes []string
	Style   style.Style
	Left    int
	Bottom  int
	Width   int
	Height  int
}

// Snapshot copies the current state of the canvas.
func (c *Canvas) Snapshot() Scene {
	c.mu.Lock()
	defer c.mu.Unlock()
	iw, ih := c.innerSize()
	sc := Scene{
		Width:       c.width,
		Height:      c.height,
		InnerWidth:  iw,
		InnerHeight: ih,
		Classes:     slices.Clone(c.classes),
		Style:       c.style.Clone(),
		Bars:        make([]BarShape, len(c.bars)),
	}
	for i, b := range c.bars {
		sc.Bars[i] = BarShape{
			Index:   b.index,
			Classes: slices.Clone(b.classes),
			Style:   b.style.Clone(),
			Left:    b.left,
			Bottom:  b.bottom,
			Width:   b.width,
			Height:  b.height,
		}
	}
	return sc
}

// bar is a Canvas element. Writes after RemoveBars are dropped.
type bar struct {
	canvas  *Canvas
	index   int
	removed bool
	classes []string
	style   style.Style
	left    int
	bottom  int
	width   int
	height  int
}

func (b *bar) AddClass(names ...string) {
	b.canvas.mu.Lock()
	defer b.canvas.mu.Unlock()
	if !b.removed {
		b.classes = addClasses(b.classes, names)
	}
}

func (b *bar) ApplyStyle(st style.Style) {
	b.canvas.mu.Lock()
	defer b.canvas.mu.Unlock()
	if !b.removed {
		b.style = style.Merge(b.style, st)
	}
}

func (b *bar) SetBox(left, bottom, width int) {
	b.canvas.mu.Lock()
	defer b.canvas.mu.Unlock()
	if !b.removed {
		b.left, b.bottom, b.width = left, bottom, max(0, width)
	}
}

func (b *bar) SetHeight(h int) {
	b.canvas.mu.Lock()
	defer b.canvas.mu.Unlock()
	if !b.removed {
		b.height = max(0, h)
	}
}

func (b *bar) Height() int {
	b.canvas.mu.Lock()
	defer b.canvas.mu.Unlock()
	return b.height
}

func addClasses(have, names []string) []string {
	for _, n := range names {
		if n != "" && !slices.Contains(have, n) {
			have = append(have, n)
		}
	}
	return have
}

var _ Container = (*Canvas)(nil)
