// Package sink renders chart scenes to output formats.
//
// A "sink" takes a [surface.Scene], the point-in-time copy of a
// [surface.Canvas], and produces a final artifact:
//
//   - SVG: the chart and its bars as rects, optionally animated
//   - JSON: scene geometry for external tools
//   - PDF and PNG: converted from SVG (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] maps the CSS box model onto SVG: borders become strokes,
// background colors become fills, and bars are placed from the bottom of the
// chart's padding box. [WithTransition] replays a recorded
// [transition.Transition] as SMIL animate elements, so the SVG shows the
// same tween the chart ran:
//
//	svg := sink.RenderSVG(canvas.Snapshot(),
//	    sink.WithIDPrefix(c.ID()[:8]),
//	    sink.WithTransition(c.LastTransition()),
//	)
//
// # Dispatch
//
// [Render] selects the renderer by [Format] and reports each render to
// [observability.RenderHooks].
//
// [surface.Scene]: github.com/matzehuels/barfly/pkg/core/surface#Scene
// [surface.Canvas]: github.com/matzehuels/barfly/pkg/core/surface#Canvas
// [transition.Transition]: github.com/matzehuels/barfly/pkg/core/transition#Transition
// [observability.RenderHooks]: github.com/matzehuels/barfly/pkg/observability#RenderHooks
package sink
