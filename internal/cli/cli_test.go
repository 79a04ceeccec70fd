package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/barfly/pkg/config"
	"github.com/matzehuels/barfly/pkg/core/transition"
	"github.com/matzehuels/barfly/pkg/document"
	"github.com/matzehuels/barfly/pkg/errors"
)

const testDocument = `
width = 100
height = 50

[data]
a = [1, 2]
b = [2, 1]
`

// writeDocument writes a chart document into a fresh directory.
func writeDocument(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	for _, name := range []string{"render", "view", "inspect", "cache", "completion"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := root.Find([]string{name})
			if err != nil || cmd.Name() != name {
				t.Errorf("Find(%q) = %v, %v", name, cmd, err)
			}
		})
	}
	if root.Version == "" {
		t.Error("root command has no version")
	}
}

func TestRenderSVG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	path := writeDocument(t, "chart.toml", testDocument)

	out, err := execute(t, "render", path)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	svgPath := strings.TrimSuffix(path, ".toml") + ".svg"
	data, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("<svg")) {
		t.Errorf("output is not SVG: %.40s", data)
	}
	if got := strings.Count(string(data), "<rect"); got != 3 {
		t.Errorf("rect count = %d, want 3", got)
	}
	if !strings.Contains(out, "fresh") {
		t.Errorf("first render should be fresh: %q", out)
	}

	out, err = execute(t, "render", path)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !strings.Contains(out, "cached") {
		t.Errorf("second render should hit the cache: %q", out)
	}
}

func TestRenderJSONActivate(t *testing.T) {
	path := writeDocument(t, "chart.toml", testDocument)
	target := filepath.Join(filepath.Dir(path), "out.json")

	if _, err := execute(t, "--no-cache", "render", path, "-f", "json", "-o", target, "--activate", "b", "--animate"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}

	var got struct {
		Active     string   `json:"active"`
		Datasets   []string `json:"datasets"`
		Transition *struct {
			Animated bool `json:"animated"`
		} `json:"transition"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got.Active != "b" {
		t.Errorf("active = %q, want b", got.Active)
	}
	if len(got.Datasets) != 2 {
		t.Errorf("datasets = %v, want [a b]", got.Datasets)
	}
	if got.Transition == nil || !got.Transition.Animated {
		t.Errorf("transition = %+v, want animated", got.Transition)
	}
}

func TestRenderErrors(t *testing.T) {
	path := writeDocument(t, "chart.toml", testDocument)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown dataset", []string{"render", path, "--activate", "zzz"}, errors.ErrCodeDatasetNotFound},
		{"bad format", []string{"render", path, "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"missing document", []string{"render", path + ".missing.toml"}, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"--no-cache"}, tt.args...)...)
			if errors.GetCode(err) != tt.code {
				t.Errorf("render error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	if got := outputPath("dir/chart.toml", "png"); got != "dir/chart.png" {
		t.Errorf("outputPath() = %q, want dir/chart.png", got)
	}
}

func TestInspect(t *testing.T) {
	path := writeDocument(t, "chart.toml", testDocument)

	out, err := execute(t, "inspect", path, "--activate", "b")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"100x50", "1 .. 2", iconActive + " b", "Height"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func testViewModel(t *testing.T) viewModel {
	t.Helper()
	doc, err := document.Parse([]byte(testDocument), document.FormatTOML, "chart.toml")
	if err != nil {
		t.Fatal(err)
	}
	logger := log.NewWithOptions(&bytes.Buffer{}, log.Options{})
	ch, canvas, err := buildChart(doc, config.Default(), logger, buildOpts{static: true})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(ch.Close)
	return newViewModel("chart.toml", ch, canvas)
}

func TestViewKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want string
	}{
		{"initial", nil, "a"},
		{"right", []tea.KeyMsg{{Type: tea.KeyRight}}, "b"},
		{"wraps", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyRight}}, "a"},
		{"left wraps", []tea.KeyMsg{{Type: tea.KeyLeft}}, "b"},
		{"number", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'2'}}}, "b"},
		{"out of range", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'9'}}}, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = testViewModel(t)
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			got, _ := m.(viewModel).chart.Active()
			if got != tt.want {
				t.Errorf("active = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestViewQuit(t *testing.T) {
	m := testViewModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q command = %T, want tea.QuitMsg", cmd())
	}
}

func TestViewRender(t *testing.T) {
	var m tea.Model = testViewModel(t)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 22, Height: 12})

	view := m.View()
	for _, want := range []string{"chart.toml", iconActive + " 1 a", "█", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestInstantTweener(t *testing.T) {
	var got []float64
	task := instantTweener{}.Tween(context.Background(), []float64{0}, []float64{5}, *transition.Default(), func(v []float64) {
		got = v
	})
	if err := task.Wait(); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
	if len(got) != 1 || got[0] != 5 {
		t.Errorf("step values = %v, want [5]", got)
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := execute(t, "completion", shell)
			if err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out, "barfly") {
				t.Errorf("completion %s output does not mention barfly", shell)
			}
		})
	}
}
