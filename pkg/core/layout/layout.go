// Package layout converts dataset values and container dimensions into
// pixel-exact bar geometry.
//
// Horizontal placement uses successive floor differences: every bar's left
// edge is floored independently and its width is the distance to the next
// floored edge. Bars therefore tile the container without gaps or overlaps;
// individual widths may differ by one pixel.
package layout

import (
	"math"

	"github.com/matzehuels/barfly/pkg/core/boxmodel"
	"github.com/matzehuels/barfly/pkg/core/scale"
)

// Bar is the geometry of one bar. Width is clamped to be non-negative;
// RawWidth keeps the unclamped value.
type Bar struct {
	Index    int
	Left     int
	Width    int
	RawWidth int
	Bottom   int
	Height   int
}

// Right returns the bar's right edge including its padding.
func (b Bar) Right(pad boxmodel.Padding) int { return b.Left + b.Width + pad.Width }

// VerticalScale returns pixels per value unit. A degenerate range yields 0,
// so every bar renders at zero height.
func VerticalScale(innerHeight int, r scale.Range) float64 {
	if r.Degenerate() {
		return 0
	}
	return float64(innerHeight) / r.Span()
}

// Height returns the content height of a bar showing v in a chart whose
// padding box is innerHeight tall. Values at or below the range minimum, NaN
// values and degenerate ranges yield 0. A value equal to the maximum fills
// exactly the inner height less padH.
func Height(v float64, r scale.Range, innerHeight, padH int) int {
	if r.Degenerate() || math.IsNaN(v) {
		return 0
	}
	h := math.Floor((v-r.Min)*float64(innerHeight)/r.Span() - float64(padH))
	if v == r.Max {
		h = float64(innerHeight - padH)
	}
	if h <= 0 {
		return 0
	}
	if math.IsInf(h, 1) || h > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(h)
}

// Heights returns the content height of every value.
func Heights(values []float64, r scale.Range, innerHeight, padH int) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = Height(v, r, innerHeight, padH)
	}
	return out
}

// Bottom returns the vertical anchor shared by every bar: half the measured
// padding hangs below the baseline.
func Bottom(padH int) int {
	if padH > 0 {
		return -(padH / 2)
	}
	return 0
}

// Place computes the horizontal geometry of n bars across innerWidth pixels
// with spacing pixels of gap on each side of every bar.
func Place(innerWidth, n, spacing int, pad boxmodel.Padding) []Bar {
	if n <= 0 {
		return nil
	}
	scaleX := float64(innerWidth) / float64(n)
	s := float64(spacing)
	bottom := Bottom(pad.Height)

	bars := make([]Bar, n)
	for i := range bars {
		left := int(math.Floor(float64(i)*scaleX + s))
		next := int(math.Floor(float64(i+1)*scaleX + s))
		raw := next - left - pad.Width - 2*spacing
		bars[i] = Bar{
			Index:    i,
			Left:     left,
			Width:    max(0, raw),
			RawWidth: raw,
			Bottom:   bottom,
		}
	}
	return bars
}
