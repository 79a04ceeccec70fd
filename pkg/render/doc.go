// Package render turns chart canvases into output artifacts.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert an SVG document using the external
// rsvg-convert tool (from librsvg):
//
//	svg := sink.RenderSVG(scene)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// # Sinks
//
// The [sink] subpackage renders a [surface.Scene] as SVG (static or with a
// SMIL animation of the last transition), JSON, PNG or PDF. The [term]
// subpackage draws a scene with terminal block characters.
//
// [sink]: github.com/matzehuels/barfly/pkg/render/sink
// [term]: github.com/matzehuels/barfly/pkg/render/term
// [surface.Scene]: github.com/matzehuels/barfly/pkg/core/surface#Scene
package render
