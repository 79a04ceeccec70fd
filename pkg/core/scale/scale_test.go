package scale

import (
	"math"
	"testing"
)

func TestSpecRange(t *testing.T) {
	zero := 0.0
	twelve := 12.0
	tests := []struct {
		name string
		spec Spec
		want Range
	}{
		{"pair", Pair(0, 73), Range{0, 73}},
		{"negative pair", Pair(-5, 5), Range{-5, 5}},
		{"object with min", Bounds(&twelve, 38), Range{12, 38}},
		{"object with zero min", Bounds(&zero, 38), Range{0, 38}},
		{"object without min", Bounds(nil, 300), Range{0, 300}},
		{"upper", Upper(300), Range{0, 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.Range(); got != tt.want {
				t.Errorf("Range() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolverNotReady(t *testing.T) {
	var r Resolver
	if _, ok := r.Range(); ok {
		t.Error("empty resolver should not be ready")
	}

	r.Observe(nil)
	if _, ok := r.Range(); ok {
		t.Error("observing an empty dataset should not make the resolver ready")
	}
}

func TestResolverMonotonic(t *testing.T) {
	var r Resolver
	steps := []struct {
		values []float64
		want   Range
	}{
		{[]float64{3, 4}, Range{3, 4}},
		{[]float64{1, 2}, Range{1, 4}},
		{[]float64{2, 3}, Range{1, 4}}, // inside current bounds
		{[]float64{10}, Range{1, 10}},
		{[]float64{-2, 5}, Range{-2, 10}},
	}

	var seen []float64
	for i, step := range steps {
		r.Observe(step.values)
		seen = append(seen, step.values...)

		got, ok := r.Range()
		if !ok {
			t.Fatalf("step %d: resolver not ready", i)
		}
		if got != step.want {
			t.Errorf("step %d: Range() = %v, want %v", i, got, step.want)
		}
		if lo, hi := minMax(seen); got.Min != lo || got.Max != hi {
			t.Errorf("step %d: Range() = %v, want union bounds [%v, %v]", i, got, lo, hi)
		}
	}
}

func TestResolverSkipsNaN(t *testing.T) {
	var r Resolver
	r.Observe([]float64{math.NaN(), 2, math.NaN(), 5})
	got, ok := r.Range()
	if !ok || got != (Range{2, 5}) {
		t.Errorf("Range() = %v, %v; want {2 5}, true", got, ok)
	}
}

func TestResolverBoundedImmutability(t *testing.T) {
	var r Resolver
	r.SetRange(Pair(0, 10))
	if !r.Bounded() {
		t.Fatal("Bounded() = false after SetRange")
	}

	r.Observe([]float64{-100, 100})
	r.Observe([]float64{5})

	got, ok := r.Range()
	if !ok || got != (Range{0, 10}) {
		t.Errorf("Range() = %v, %v; want {0 10}, true", got, ok)
	}
}

func TestRangeDegenerate(t *testing.T) {
	tests := []struct {
		r    Range
		want bool
	}{
		{Range{0, 10}, false},
		{Range{5, 5}, true},
		{Range{0, math.Inf(1)}, true},
		{Range{math.NaN(), 1}, true},
		{Range{10, 0}, true},
		{Range{-2, -1}, false},
	}
	for _, tt := range tests {
		if got := tt.r.Degenerate(); got != tt.want {
			t.Errorf("%v.Degenerate() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func minMax(vs []float64) (float64, float64) {
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
