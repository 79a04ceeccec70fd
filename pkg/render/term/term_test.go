package term

import (
	"strings"
	"testing"

	"github.com/matzehuels/barfly/pkg/core/surface"
)

func scene() surface.Scene {
	return surface.Scene{
		InnerWidth:  4,
		InnerHeight: 8,
		Bars: []surface.BarShape{
			{Index: 0, Left: 0, Width: 2, Height: 8},
			{Index: 1, Left: 2, Width: 2, Height: 4},
		},
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		rows int
		want string
	}{
		{"one row", 1, "██▄▄"},
		{"two rows", 2, "██  \n████"},
		{"four rows", 4, "██  \n██  \n████\n████"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(scene(), Options{Columns: 4, Rows: tt.rows})
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderScalesColumns(t *testing.T) {
	got := Render(scene(), Options{Columns: 8, Rows: 1})
	if want := "████▄▄▄▄"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderEmptyScene(t *testing.T) {
	got := Render(surface.Scene{}, Options{Columns: 3, Rows: 2})
	if want := "   \n   "; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderDefaultsAndFrame(t *testing.T) {
	got := Render(scene(), Options{})
	lines := strings.Split(got, "\n")
	if len(lines) != DefaultRows {
		t.Errorf("rows = %d, want %d", len(lines), DefaultRows)
	}
	if n := len([]rune(lines[0])); n != DefaultColumns {
		t.Errorf("columns = %d, want %d", n, DefaultColumns)
	}

	framed := Render(scene(), Options{Columns: 4, Rows: 1, Frame: true})
	if !strings.Contains(framed, "╭") || !strings.Contains(framed, "██▄▄") {
		t.Errorf("framed Render() = %q", framed)
	}
}
