package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/barfly/pkg/core/transition"
	"github.com/matzehuels/barfly/pkg/errors"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.ChartWidth != 400 || s.ChartHeight != 100 {
		t.Errorf("size = %dx%d, want 400x100", s.ChartWidth, s.ChartHeight)
	}
	if diff := cmp.Diff(transition.Default(), s.Animation); diff != "" {
		t.Errorf("Animation mismatch (-want +got):\n%s", diff)
	}
	if v, _ := s.BarStyle.Get("background-color"); v != "#999999" {
		t.Errorf("bar background = %q, want #999999", v)
	}
	if v, _ := s.ChartStyle.Get("border-style"); v != "solid" {
		t.Errorf("chart border style = %q, want solid", v)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := Default()
	snap := s.Snapshot()

	s.BarStyle.Set("backgroundColor", "red")
	s.Animation.Duration = time.Second
	s.ChartWidth = 10

	if v, _ := snap.BarStyle.Get("background-color"); v != "#999999" {
		t.Errorf("snapshot bar background = %q, want #999999", v)
	}
	if snap.Animation.Duration != transition.DefaultDuration {
		t.Errorf("snapshot duration = %v, want %v", snap.Animation.Duration, transition.DefaultDuration)
	}
	if snap.ChartWidth != 400 {
		t.Errorf("snapshot width = %d, want 400", snap.ChartWidth)
	}
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`
chart_width = 300

[bar_style]
border-width = 2
backgroundColor = "steelblue"
border-style = "solid"

[animation]
duration = 250
easing = "swing"
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.ChartWidth != 300 || s.ChartHeight != DefaultChartHeight {
		t.Errorf("size = %dx%d, want 300x%d", s.ChartWidth, s.ChartHeight, DefaultChartHeight)
	}
	if got, want := s.BarStyle.String(), "border-width: 2px; background-color: steelblue; border-style: solid;"; got != want {
		t.Errorf("BarStyle = %q, want %q", got, want)
	}
	if got := s.ChartStyle.String(); got != Default().ChartStyle.String() {
		t.Errorf("ChartStyle = %q, want default", got)
	}
	want := &transition.Animation{Duration: 250 * time.Millisecond, Easing: "swing"}
	if diff := cmp.Diff(want, s.Animation); diff != "" {
		t.Errorf("Animation mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAnimation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    *transition.Animation
		wantErr bool
	}{
		{"disabled", "animation = false", nil, false},
		{"enabled", "animation = true", transition.Default(), false},
		{"duration string", "[animation]\nduration = \"1.5s\"", &transition.Animation{Duration: 1500 * time.Millisecond, Easing: "linear"}, false},
		{"bad duration", "[animation]\nduration = \"soon\"", nil, true},
		{"negative duration", "[animation]\nduration = -5", nil, true},
		{"bad easing type", "[animation]\neasing = 3", nil, true},
		{"bad type", "animation = 5", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidSettings) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSettings)
				}
				return
			}
			if diff := cmp.Diff(tt.want, s.Animation); diff != "" {
				t.Errorf("Animation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for name, doc := range map[string]string{
		"syntax":         "chart_width = ",
		"negative width": "chart_width = -1",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); !errors.Is(err, errors.ErrCodeInvalidSettings) {
				t.Errorf("Parse() error = %v, want %v", err, errors.ErrCodeInvalidSettings)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "barfly.toml")
	if err := os.WriteFile(path, []byte("chart_height = 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.ChartHeight != 50 {
		t.Errorf("ChartHeight = %d, want 50", s.ChartHeight)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}
