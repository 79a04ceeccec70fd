package sink

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/barfly/pkg/core/surface"
	"github.com/matzehuels/barfly/pkg/errors"
	"github.com/matzehuels/barfly/pkg/observability"
)

// Format is an output format.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatSVG, FormatJSON, FormatPNG, FormatPDF}

// ParseFormat validates a format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Formats, f) {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q (supported: svg, json, png, pdf)", s)
	}
	return f, nil
}

// Options carries per-format options for [Render].
type Options struct {
	SVG   []SVGOption
	JSON  []JSONOption
	Scale float64 // PNG scale; zero means DefaultPNGScale
}

// Render renders the scene in the given format and reports the render to
// the registered [observability.RenderHooks].
func Render(ctx context.Context, f Format, sc surface.Scene, opts Options) (out []byte, err error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, string(f))
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, string(f), len(out), time.Since(start), err)
	}()

	switch f {
	case FormatSVG:
		return RenderSVG(sc, opts.SVG...), nil
	case FormatJSON:
		return RenderJSON(sc, opts.JSON...)
	case FormatPNG:
		pngOpts := []PNGOption{WithPNGSVGOptions(opts.SVG...)}
		if opts.Scale > 0 {
			pngOpts = append(pngOpts, WithScale(opts.Scale))
		}
		return RenderPNG(ctx, sc, pngOpts...)
	case FormatPDF:
		return RenderPDF(ctx, sc, WithPDFSVGOptions(opts.SVG...))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", f)
	}
}
