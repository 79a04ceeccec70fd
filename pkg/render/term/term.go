// Package term draws chart scenes with terminal block characters.
//
// Each bar is scaled onto a grid of character cells. Its top edge is drawn
// at one-eighth cell resolution using the lower block elements, and its
// background color becomes the foreground color of its cells.
package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/barfly/pkg/core/boxmodel"
	"github.com/matzehuels/barfly/pkg/core/surface"
)

// Default grid size.
const (
	DefaultColumns = 60
	DefaultRows    = 12
)

var levels = []rune(" ▁▂▃▄▅▆▇█")

// Options configures [Render].
type Options struct {
	// Columns and Rows size the grid in cells. Zero uses the defaults.
	Columns int
	Rows    int
	// Frame draws a rounded border around the grid.
	Frame bool
}

type cell struct {
	level int
	color string
}

// Render draws sc on a Columns by Rows grid.
func Render(sc surface.Scene, opts Options) string {
	cols, rows := opts.Columns, opts.Rows
	if cols <= 0 {
		cols = DefaultColumns
	}
	if rows <= 0 {
		rows = DefaultRows
	}

	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
	}
	if sc.InnerWidth > 0 && sc.InnerHeight > 0 {
		for _, b := range sc.Bars {
			plot(grid, sc, b)
		}
	}

	lines := make([]string, rows)
	for r, row := range grid {
		lines[r] = renderRow(row)
	}
	body := strings.Join(lines, "\n")
	if opts.Frame {
		return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Render(body)
	}
	return body
}

func plot(grid [][]cell, sc surface.Scene, b surface.BarShape) {
	rows, cols := len(grid), len(grid[0])
	o := boxmodel.Outer(b.Style)

	right := b.Left + b.Width + o.Width
	c0 := b.Left * cols / sc.InnerWidth
	c1 := right * cols / sc.InnerWidth
	if right > b.Left && c1 <= c0 {
		c1 = c0 + 1
	}
	top := b.Bottom + b.Height + o.Height
	eighths := int(math.Round(float64(top*rows*8) / float64(sc.InnerHeight)))

	color, _ := b.Style.Get("background-color")
	for c := max(0, c0); c < min(cols, c1); c++ {
		for r := range rows {
			level := min(8, max(0, eighths-(rows-1-r)*8))
			if level > grid[r][c].level {
				grid[r][c] = cell{level: level, color: color}
			}
		}
	}
}

// renderRow writes runs of equally colored cells through one style each.
func renderRow(row []cell) string {
	var out strings.Builder
	var run strings.Builder
	color := ""
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if color == "" {
			out.WriteString(run.String())
		} else {
			out.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(run.String()))
		}
		run.Reset()
	}
	for _, c := range row {
		cc := c.color
		if c.level == 0 {
			cc = ""
		}
		if cc != color {
			flush()
			color = cc
		}
		run.WriteRune(levels[c.level])
	}
	flush()
	return out.String()
}
