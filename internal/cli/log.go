// Package cli implements the barfly command-line interface.
//
// The CLI loads chart documents (TOML, HCL or XLSX), lays them out on an
// in-memory canvas, and renders them to files or to the terminal. It is
// built on cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - render: write SVG, JSON, PNG or PDF, optionally animating the
//     activation of further datasets
//   - view: browse the datasets of a document in the terminal
//   - inspect: print datasets, range and bar geometry
//   - cache: manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs every chart, render and cache event. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w with centisecond timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one step of a command.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rendered chart.svg elapsed=12ms".
func (p *progress) done(msg string) {
	p.logger.Info(msg, "elapsed", p.elapsed())
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

type ctxKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger. Without one
// it returns a logger that discards everything, so library calls made
// outside a command stay quiet.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}
