// Package boxmodel measures the pixel footprint that border and padding
// styling add around a bar's content box.
//
// The layout engine subtracts this footprint from every computed width and
// height so bars land on exact pixels. A host surface that can measure
// rendered elements implements [Probe] itself; everything else falls back to
// [CSSProbe], which evaluates the CSS box model on the style dictionary.
package boxmodel

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/barfly/pkg/core/style"
)

// Padding is the extra footprint of a bar beyond its content box.
type Padding struct {
	Width  int
	Height int
}

// Probe measures the outer size of a bar styled with st and given an
// explicit zero content size.
type Probe interface {
	Measure(st style.Style) (Padding, error)
}

// Sides holds a per-side measurement in pixels.
type Sides struct {
	Top, Right, Bottom, Left float64
}

// Horizontal returns Left + Right.
func (s Sides) Horizontal() float64 { return s.Left + s.Right }

// Vertical returns Top + Bottom.
func (s Sides) Vertical() float64 { return s.Top + s.Bottom }

// Outer returns the rounded outer size of a zero-sized content box:
// border plus padding on each axis.
func Outer(st style.Style) Padding {
	b, p := BorderWidths(st), PaddingWidths(st)
	return Padding{
		Width:  int(math.Round(b.Horizontal() + p.Horizontal())),
		Height: int(math.Round(b.Vertical() + p.Vertical())),
	}
}

var sideNames = [4]string{"top", "right", "bottom", "left"}

// medium is the initial CSS border width.
const medium = 3.0

var borderStyles = map[string]bool{
	"none": true, "hidden": true, "dotted": true, "dashed": true, "solid": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

var widthKeywords = map[string]float64{"thin": 1, "medium": medium, "thick": 5}

// border accumulates the cascaded border state of four sides.
type border struct {
	style [4]string
	width [4]float64
	color [4]string
}

func newBorder() border {
	return border{
		style: [4]string{"none", "none", "none", "none"},
		width: [4]float64{medium, medium, medium, medium},
	}
}

// shorthand applies a "border" or "border-<side>" value to the given sides.
// Omitted components reset to their initial values, as in CSS.
func (b *border) shorthand(value string, sides []int) {
	st, w, c := "none", medium, ""
	for _, tok := range strings.Fields(value) {
		tok = strings.ToLower(tok)
		switch {
		case borderStyles[tok]:
			st = tok
		case isWidth(tok):
			w = width(tok)
		default:
			c = tok
		}
	}
	for _, i := range sides {
		b.style[i], b.width[i], b.color[i] = st, w, c
	}
}

func (b *border) effective() Sides {
	var out [4]float64
	for i := range out {
		if b.style[i] != "none" && b.style[i] != "hidden" {
			out[i] = b.width[i]
		}
	}
	return Sides{Top: out[0], Right: out[1], Bottom: out[2], Left: out[3]}
}

func cascadeBorder(st style.Style) border {
	b := newBorder()
	all := []int{0, 1, 2, 3}
	for _, key := range st.Keys() {
		v, _ := st.Get(key)
		switch key {
		case "border":
			b.shorthand(v, all)
		case "border-style":
			for i, tok := range expand(v) {
				b.style[i] = strings.ToLower(tok)
			}
		case "border-width":
			for i, tok := range expand(v) {
				b.width[i] = width(tok)
			}
		case "border-color":
			for i, tok := range expand(v) {
				b.color[i] = tok
			}
		default:
			side, prop, ok := sideProperty(key, "border")
			if !ok {
				continue
			}
			switch prop {
			case "":
				b.shorthand(v, []int{side})
			case "style":
				b.style[side] = strings.ToLower(strings.TrimSpace(v))
			case "width":
				b.width[side] = width(v)
			case "color":
				b.color[side] = strings.TrimSpace(v)
			}
		}
	}
	return b
}

// BorderWidths returns the effective border width of each side. Sides whose
// border style is none or hidden contribute nothing.
func BorderWidths(st style.Style) Sides {
	b := cascadeBorder(st)
	return b.effective()
}

// BorderColor returns the top border color, or "" if none was given.
func BorderColor(st style.Style) string {
	b := cascadeBorder(st)
	return b.color[0]
}

// PaddingWidths returns the padding of each side.
func PaddingWidths(st style.Style) Sides {
	var out [4]float64
	for _, key := range st.Keys() {
		v, _ := st.Get(key)
		if key == "padding" {
			for i, tok := range expand(v) {
				out[i], _ = ParseLength(tok)
			}
			continue
		}
		if side, prop, ok := sideProperty(key, "padding"); ok && prop == "" {
			out[side], _ = ParseLength(v)
		}
	}
	return Sides{Top: out[0], Right: out[1], Bottom: out[2], Left: out[3]}
}

// sideProperty splits "border-left-width" into (3, "width").
func sideProperty(key, prefix string) (int, string, bool) {
	rest, ok := strings.CutPrefix(key, prefix+"-")
	if !ok {
		return 0, "", false
	}
	sideName, prop, _ := strings.Cut(rest, "-")
	for i, name := range sideNames {
		if name == sideName {
			return i, prop, true
		}
	}
	return 0, "", false
}

// expand applies the CSS one-to-four value rule.
func expand(value string) [4]string {
	toks := strings.Fields(value)
	switch len(toks) {
	case 0:
		return [4]string{}
	case 1:
		return [4]string{toks[0], toks[0], toks[0], toks[0]}
	case 2:
		return [4]string{toks[0], toks[1], toks[0], toks[1]}
	case 3:
		return [4]string{toks[0], toks[1], toks[2], toks[1]}
	default:
		return [4]string{toks[0], toks[1], toks[2], toks[3]}
	}
}

func isWidth(tok string) bool {
	if _, ok := widthKeywords[tok]; ok {
		return true
	}
	_, ok := ParseLength(tok)
	return ok
}

func width(tok string) float64 {
	tok = strings.ToLower(strings.TrimSpace(tok))
	if w, ok := widthKeywords[tok]; ok {
		return w
	}
	w, _ := ParseLength(tok)
	return w
}

// ParseLength parses a CSS length in px or pt, or a unitless number taken as
// pixels. Other units and malformed values yield (0, false). Negative lengths
// clamp to 0.
func ParseLength(v string) (float64, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	pt := false
	switch {
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	case strings.HasSuffix(v, "pt"):
		v = strings.TrimSuffix(v, "pt")
		pt = true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if pt {
		f = f * 4 / 3
	}
	return math.Max(0, f), true
}
