package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/barfly/pkg/chart"
	"github.com/matzehuels/barfly/pkg/core/surface"
	"github.com/matzehuels/barfly/pkg/core/transition"
	"github.com/matzehuels/barfly/pkg/document"
	"github.com/matzehuels/barfly/pkg/render/term"
)

var (
	viewActiveStyle = StyleTitle.Underline(true)
	viewTabStyle    = StyleDim
)

func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view [document]",
		Short: "Browse a chart document's datasets in the terminal",
		Long: `View draws the chart with block characters and animates transitions
between datasets as you switch them.

Keys:
  ←/h →/l  previous or next dataset
  1-9      select a dataset by position
  q        quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runView(ctx context.Context, path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	// The alternate screen hides log output, so keep only debug logging.
	logger := log.NewWithOptions(io.Discard, log.Options{})
	if c.Logger.GetLevel() <= log.DebugLevel {
		logger = c.Logger
	}

	ch, canvas, err := buildChart(doc, c.settings, logger, buildOpts{live: true})
	if err != nil {
		return err
	}
	defer ch.Close()

	p := tea.NewProgram(newViewModel(doc.Source, ch, canvas), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// frameMsg asks the view to repaint while an animation plays.
type frameMsg time.Time

// viewModel is the bubbletea model for the view command.
type viewModel struct {
	source string
	chart  *chart.Chart
	canvas *surface.Canvas
	ids    []string

	width, height int
	// animating until this instant, repainting every frame.
	until time.Time
	now   func() time.Time
}

func newViewModel(source string, ch *chart.Chart, canvas *surface.Canvas) viewModel {
	m := viewModel{
		source: source,
		chart:  ch,
		canvas: canvas,
		ids:    ch.ListData(),
		width:  term.DefaultColumns + 2,
		height: term.DefaultRows + 6,
		now:    time.Now,
	}
	m.startAnimation()
	return m
}

func (m viewModel) Init() tea.Cmd {
	if m.animating() {
		return frame()
	}
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			return m.step(-1)
		case "right", "l", "tab":
			return m.step(1)
		default:
			if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.ids) {
				return m.activate(m.ids[n-1])
			}
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case frameMsg:
		if m.animating() {
			return m, frame()
		}
	}
	return m, nil
}

// step moves the active dataset by delta, wrapping around.
func (m viewModel) step(delta int) (tea.Model, tea.Cmd) {
	if len(m.ids) < 2 {
		return m, nil
	}
	i := m.cursor()
	i = ((i+delta)%len(m.ids) + len(m.ids)) % len(m.ids)
	return m.activate(m.ids[i])
}

func (m viewModel) activate(id string) (tea.Model, tea.Cmd) {
	if _, ok := m.chart.Activate(id); !ok {
		return m, nil
	}
	m.startAnimation()
	if m.animating() {
		return m, frame()
	}
	return m, nil
}

func (m viewModel) cursor() int {
	active, _ := m.chart.Active()
	for i, id := range m.ids {
		if id == active {
			return i
		}
	}
	return 0
}

func (m *viewModel) startAnimation() {
	if anim := m.chart.Animation(); anim != nil {
		m.until = m.now().Add(anim.Duration + 2*transition.DefaultFrameInterval)
	}
}

func (m viewModel) animating() bool { return m.now().Before(m.until) }

func frame() tea.Cmd {
	return tea.Tick(transition.DefaultFrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.source))
	if m.chart.Multiset() {
		active, _ := m.chart.Active()
		tabs := make([]string, len(m.ids))
		for i, id := range m.ids {
			label := fmt.Sprintf("%d %s", i+1, id)
			if id == active {
				tabs[i] = viewActiveStyle.Render(iconActive + " " + label)
			} else {
				tabs[i] = viewTabStyle.Render("  " + label)
			}
		}
		b.WriteString("  ")
		b.WriteString(strings.Join(tabs, " "))
	}
	b.WriteString("\n\n")

	b.WriteString(term.Render(m.canvas.Snapshot(), term.Options{
		Columns: max(10, m.width-2),
		Rows:    max(3, m.height-6),
		Frame:   true,
	}))
	b.WriteString("\n")

	help := "q quit"
	if m.chart.Multiset() {
		help = "←/→ switch  1-9 select  q quit"
	}
	b.WriteString(StyleDim.Render(help))
	return b.String()
}
