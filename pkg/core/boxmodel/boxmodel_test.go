package boxmodel

import (
	"testing"

	"github.com/matzehuels/barfly/pkg/core/style"
)

func TestOuter(t *testing.T) {
	tests := []struct {
		name string
		st   style.Style
		want Padding
	}{
		{"empty", style.Style{}, Padding{}},
		{"width without style", style.New("borderWidth", "2px"), Padding{}},
		{"default bar", style.New("borderWidth", "1px", "borderStyle", "solid"), Padding{2, 2}},
		{"medium default width", style.New("borderStyle", "solid"), Padding{6, 6}},
		{"hidden", style.New("borderStyle", "hidden", "borderWidth", "4px"), Padding{}},
		{"shorthand", style.New("border", "2px solid #666"), Padding{4, 4}},
		{"shorthand keyword", style.New("border", "thick dashed"), Padding{10, 10}},
		{"shorthand without style", style.New("border", "2px red"), Padding{}},
		{"per side", style.New("borderLeft", "1px solid", "borderTop", "3px solid"), Padding{1, 3}},
		{"two value width", style.New("borderStyle", "solid", "borderWidth", "1px 2px"), Padding{4, 2}},
		{"padding", style.New("padding", "1px 2px 3px"), Padding{4, 4}},
		{"padding side", style.New("paddingTop", "5px"), Padding{0, 5}},
		{"pt units", style.New("padding", "3pt"), Padding{8, 8}},
		{"unitless", style.New("padding", "2"), Padding{4, 4}},
		{"unknown unit", style.New("padding", "1em"), Padding{}},
		{"later wins", style.New("borderStyle", "solid", "borderWidth", "1px", "borderLeftWidth", "4px"), Padding{5, 2}},
		{"shorthand resets", style.New("borderWidth", "5px", "border", "solid"), Padding{6, 6}},
		{"border and padding", style.New("border", "1px solid", "padding", "2px"), Padding{6, 6}},
		{"margin ignored", style.New("margin", "10px"), Padding{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Outer(tt.st); got != tt.want {
				t.Errorf("Outer(%q) = %+v, want %+v", tt.st.String(), got, tt.want)
			}
		})
	}
}

func TestBorderColor(t *testing.T) {
	tests := []struct {
		st   style.Style
		want string
	}{
		{style.New("borderColor", "#666666"), "#666666"},
		{style.New("border", "1px solid red"), "red"},
		{style.New("borderTopColor", "blue"), "blue"},
		{style.Style{}, ""},
	}
	for _, tt := range tests {
		if got := BorderColor(tt.st); got != tt.want {
			t.Errorf("BorderColor(%q) = %q, want %q", tt.st.String(), got, tt.want)
		}
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"1px", 1, true},
		{" 2.5PX ", 2.5, true},
		{"3pt", 4, true},
		{"7", 7, true},
		{"-2px", 0, true},
		{"1em", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseLength(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLength(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCSSProbeMemoises(t *testing.T) {
	p := NewCSSProbe(2)
	st := style.New("border", "1px solid")

	for range 3 {
		got, err := p.Measure(st)
		if err != nil {
			t.Fatalf("Measure() error = %v", err)
		}
		if got != (Padding{2, 2}) {
			t.Fatalf("Measure() = %+v, want {2 2}", got)
		}
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}

	p.Measure(style.New("padding", "1px"))
	p.Measure(style.New("padding", "2px"))
	if p.Len() != 2 {
		t.Errorf("Len() = %d after eviction, want 2", p.Len())
	}
}

func TestNewCSSProbeDefaultSize(t *testing.T) {
	p := NewCSSProbe(0)
	if _, err := p.Measure(style.Style{}); err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
}
