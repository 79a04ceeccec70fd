package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/barfly/pkg/cache"
	"github.com/matzehuels/barfly/pkg/chart"
	"github.com/matzehuels/barfly/pkg/document"
	"github.com/matzehuels/barfly/pkg/errors"
	"github.com/matzehuels/barfly/pkg/render"
	"github.com/matzehuels/barfly/pkg/render/sink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // output file; defaults to the document path with the format's extension
	format      string   // svg, json, png or pdf
	activations []string // datasets to activate in order after the first draw
	animate     bool     // embed the last transition as a SMIL animation
	scale       float64  // PNG scale factor
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: string(sink.FormatSVG), scale: sink.DefaultPNGScale}

	cmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Render a chart document to SVG, JSON, PNG or PDF",
		Long: `Render lays out a chart document and writes the drawn chart.

Each --activate switches the active dataset in order, exactly as a user
clicking through the datasets would. With --animate the SVG replays the
last transition (or the initial grow-in when nothing was activated).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.runRender(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, json, png, pdf")
	cmd.Flags().StringArrayVar(&opts.activations, "activate", nil, "activate a dataset after the first draw (repeatable)")
	cmd.Flags().BoolVar(&opts.animate, "animate", false, "animate the last transition (svg, json)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

// runRender renders the document at path and returns the output file.
func (c *CLI) runRender(ctx context.Context, w io.Writer, path string, opts renderOpts) (string, error) {
	logger := loggerFromContext(ctx)

	format, err := sink.ParseFormat(opts.format)
	if err != nil {
		return "", err
	}
	if (format == sink.FormatPNG || format == sink.FormatPDF) && !render.Available() {
		return "", errors.New(errors.ErrCodeUnsupported, "%s output requires rsvg-convert", format)
	}
	doc, err := document.Load(path)
	if err != nil {
		return "", err
	}
	out := opts.output
	if out == "" {
		out = outputPath(path, format)
	}

	store, err := c.openCache(ctx)
	if err != nil {
		return "", fmt.Errorf("open cache: %w", err)
	}
	defer store.Close()

	keyOpts := cache.ArtifactKeyOpts{
		Format:       string(format),
		Activations:  opts.activations,
		Animate:      opts.animate,
		SettingsHash: c.settingsHash,
	}
	if format == sink.FormatPNG {
		keyOpts.Scale = opts.scale
	}
	key := keyer().ArtifactKey(cache.Hash(doc.Raw), keyOpts)

	data, hit, err := store.Get(ctx, key)
	if err != nil {
		logger.Warn("cache lookup failed", "err", err)
	}
	if !hit {
		prog := newProgress(logger)
		if data, err = c.renderDocument(ctx, doc, format, opts); err != nil {
			return "", err
		}
		if err := store.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			logger.Warn("cache store failed", "err", err)
		}
		prog.done("Rendered " + out)
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	printSuccess(w, "Rendered %s", filepath.Base(path))
	printFile(w, out)
	printRenderStats(w, string(format), len(data), hit)
	printNextStep(w, "Browse it in the terminal", "barfly view "+path)
	return out, nil
}

func (c *CLI) renderDocument(ctx context.Context, doc *document.Document, format sink.Format, opts renderOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)
	ch, canvas, err := buildChart(doc, c.settings, logger, buildOpts{
		activations: opts.activations,
		static:      !opts.animate,
	})
	if err != nil {
		return nil, err
	}
	defer ch.Close()

	sinkOpts := sink.Options{
		SVG:   []sink.SVGOption{sink.WithIDPrefix(ch.ID()[:8])},
		JSON:  jsonOptions(ch),
		Scale: opts.scale,
	}
	if opts.animate {
		last := ch.LastTransition()
		if !last.Animated() {
			logger.Warn("document disables animation, nothing to animate")
		}
		sinkOpts.SVG = append(sinkOpts.SVG, sink.WithTransition(last))
		sinkOpts.JSON = append(sinkOpts.JSON, sink.WithJSONTransition(last))
	}

	if format != sink.FormatPNG && format != sink.FormatPDF {
		return sink.Render(ctx, format, canvas.Snapshot(), sinkOpts)
	}

	name := strings.ToUpper(string(format))
	spin := newSpinner(ctx, os.Stderr, "Converting to "+name+"...")
	spin.Start()
	data, err := sink.Render(ctx, format, canvas.Snapshot(), sinkOpts)
	switch {
	case spin.Cancelled():
		spin.Stop()
		return nil, ctx.Err()
	case err != nil:
		spin.StopWithError("Conversion to " + name + " failed")
		return nil, err
	}
	spin.StopWithSuccess("Converted to " + name)
	return data, nil
}

func jsonOptions(ch *chart.Chart) []sink.JSONOption {
	opts := []sink.JSONOption{sink.WithJSONDatasets(ch.ListData())}
	if id, ok := ch.Active(); ok {
		opts = append(opts, sink.WithJSONActive(id))
	}
	if r, ok := ch.Range(); ok {
		opts = append(opts, sink.WithJSONRange(r))
	}
	return opts
}

// outputPath swaps the document extension for the format's.
func outputPath(path string, format sink.Format) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + string(format)
}
