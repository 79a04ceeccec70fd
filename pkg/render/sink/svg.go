package sink

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/matzehuels/barfly/pkg/core/boxmodel"
	"github.com/matzehuels/barfly/pkg/core/style"
	"github.com/matzehuels/barfly/pkg/core/surface"
	"github.com/matzehuels/barfly/pkg/core/transition"
)

// DefaultIDPrefix prefixes element ids when no prefix is configured.
const DefaultIDPrefix = "barfly"

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	prefix     string
	transition *transition.Transition
}

// WithIDPrefix sets the prefix of every element id, so several charts can
// share one document.
func WithIDPrefix(p string) SVGOption { return func(r *svgRenderer) { r.prefix = p } }

// WithTransition adds a SMIL animation that replays tr. Transitions without
// an animation are ignored.
func WithTransition(tr transition.Transition) SVGOption {
	return func(r *svgRenderer) {
		if tr.Animated() && tr.Animation.Duration > 0 {
			r.transition = &tr
		}
	}
}

// splines maps easing names to SMIL keySplines approximating them.
var splines = map[string]string{
	"swing":     "0.45 0 0.55 1",
	"easeIn":    "0.42 0 1 1",
	"easeOut":   "0 0 0.58 1",
	"easeInOut": "0.42 0 0.58 1",
}

// RenderSVG draws the scene as an SVG document. The chart and every bar
// become rects in CSS box-model geometry: borders are drawn as strokes and
// bars are positioned from the bottom of the chart's padding box.
func RenderSVG(sc surface.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{prefix: DefaultIDPrefix}
	for _, opt := range opts {
		opt(&r)
	}

	f := newFrame(sc)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(f.width), num(f.height), num(f.width), num(f.height))

	chartBox := box{x: 0, y: 0, w: f.width, h: f.height}
	writeRect(&buf, "  ", r.id("chart"), sc.Classes, chartBox, sc.Style, "")

	fmt.Fprintf(&buf, `  <g id="%s">`+"\n", r.id("bars"))
	for _, b := range sc.Bars {
		var anim string
		if r.transition != nil {
			anim = r.animate(f, b)
		}
		writeRect(&buf, "    ", r.id(fmt.Sprintf("bar-%d", b.Index)), b.Classes, f.bar(b, b.Height), b.Style, anim)
	}
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) id(name string) string {
	if r.prefix == "" {
		return name
	}
	return r.prefix + "-" + name
}

// animate returns animate elements moving bar b from its transition start
// height to its end height.
func (r *svgRenderer) animate(f frame, b surface.BarShape) string {
	tr := r.transition
	if b.Index >= len(tr.From) || b.Index >= len(tr.To) {
		return ""
	}
	from, to := f.bar(b, tr.From[b.Index]), f.bar(b, tr.To[b.Index])

	ms := tr.Animation.Duration.Milliseconds()
	timing := fmt.Sprintf(`dur="%dms" fill="freeze" calcMode="linear"`, ms)
	if ks, ok := splines[tr.Animation.Easing]; ok {
		timing = fmt.Sprintf(`dur="%dms" fill="freeze" calcMode="spline" keyTimes="0;1" keySplines="%s"`, ms, ks)
	}

	sw := strokeWidth(b.Style)
	var s strings.Builder
	fmt.Fprintf(&s, `      <animate attributeName="height" from="%s" to="%s" %s/>`+"\n",
		num(max(0, from.h-sw)), num(max(0, to.h-sw)), timing)
	fmt.Fprintf(&s, `      <animate attributeName="y" from="%s" to="%s" %s/>`+"\n",
		num(from.y+sw/2), num(to.y+sw/2), timing)
	return s.String()
}

// frame is the outer geometry of the chart.
type frame struct {
	width, height float64
	// originX, originY locate the chart's padding box.
	originX, originY float64
	innerHeight      float64
}

type box struct{ x, y, w, h float64 }

func newFrame(sc surface.Scene) frame {
	bw := boxmodel.BorderWidths(sc.Style)
	return frame{
		width:       float64(sc.InnerWidth) + bw.Horizontal(),
		height:      float64(sc.InnerHeight) + bw.Vertical(),
		originX:     bw.Left,
		originY:     bw.Top,
		innerHeight: float64(sc.InnerHeight),
	}
}

// bar returns the border box of b with the given content height.
func (f frame) bar(b surface.BarShape, height int) box {
	o := boxmodel.Outer(b.Style)
	w := float64(b.Width + o.Width)
	h := float64(height + o.Height)
	return box{
		x: f.originX + float64(b.Left),
		y: f.originY + f.innerHeight - float64(b.Bottom) - h,
		w: w,
		h: h,
	}
}

func strokeWidth(st style.Style) float64 { return boxmodel.BorderWidths(st).Top }

func writeRect(buf *bytes.Buffer, indent, id string, classes []string, b box, st style.Style, children string) {
	fill, ok := st.Get("background-color")
	if !ok || fill == "" {
		fill = "none"
	}
	sw := strokeWidth(st)

	fmt.Fprintf(buf, `%s<rect id="%s"`, indent, html.EscapeString(id))
	if len(classes) > 0 {
		fmt.Fprintf(buf, ` class="%s"`, html.EscapeString(strings.Join(classes, " ")))
	}
	fmt.Fprintf(buf, ` x="%s" y="%s" width="%s" height="%s" fill="%s"`,
		num(b.x+sw/2), num(b.y+sw/2), num(max(0, b.w-sw)), num(max(0, b.h-sw)), html.EscapeString(fill))
	if sw > 0 {
		color := boxmodel.BorderColor(st)
		if color == "" {
			color = "currentColor"
		}
		fmt.Fprintf(buf, ` stroke="%s" stroke-width="%s"`, html.EscapeString(color), num(sw))
	}
	if children == "" {
		buf.WriteString("/>\n")
		return
	}
	buf.WriteString(">\n")
	buf.WriteString(children)
	fmt.Fprintf(buf, "%s</rect>\n", indent)
}

// num formats a coordinate with at most one decimal.
func num(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
