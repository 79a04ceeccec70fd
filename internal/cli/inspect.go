package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/barfly/pkg/document"
)

func (c *CLI) inspectCommand() *cobra.Command {
	var activate string

	cmd := &cobra.Command{
		Use:   "inspect [document]",
		Short: "Print datasets, value range and bar geometry of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), cmd.OutOrStdout(), args[0], activate)
		},
	}
	cmd.Flags().StringVar(&activate, "activate", "", "inspect this dataset instead of the initial one")
	return cmd
}

func (c *CLI) runInspect(ctx context.Context, w io.Writer, path, activate string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	var activations []string
	if activate != "" {
		activations = []string{activate}
	}
	ch, canvas, err := buildChart(doc, c.settings, loggerFromContext(ctx), buildOpts{activations: activations, static: true})
	if err != nil {
		return err
	}
	defer ch.Close()

	active, _ := ch.Active()
	width, height := canvas.Size()

	printKeyValue(w, "Source", doc.Source)
	printKeyValue(w, "Format", string(doc.Format))
	printKeyValue(w, "Container", fmt.Sprintf("%dx%d", width, height))
	if ch.Multiset() {
		ids := ch.ListData()
		for i, id := range ids {
			if id == active {
				ids[i] = StyleHighlight.Render(iconActive + " " + id)
			}
		}
		printKeyValue(w, "Datasets", strings.Join(ids, ", "))
	}
	if r, ok := ch.Range(); ok {
		printKeyValue(w, "Range", fmt.Sprintf("%s .. %s", formatValue(r.Min), formatValue(r.Max)))
	}
	pad := ch.Padding()
	printKeyValue(w, "Bar padding", fmt.Sprintf("%dx%d", pad.Width, pad.Height))
	fmt.Fprintln(w)

	values, _ := ch.Values(active)
	rows := [][]string{}
	for _, b := range ch.Geometry() {
		v := ""
		if b.Index < len(values) {
			v = formatValue(values[b.Index])
		}
		rows = append(rows, []string{
			strconv.Itoa(b.Index), v,
			strconv.Itoa(b.Left), strconv.Itoa(b.Width),
			strconv.Itoa(b.Bottom), strconv.Itoa(b.Height),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Value", "Left", "Width", "Bottom", "Height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		})
	fmt.Fprintln(w, t.Render())
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
