package transition

import (
	"maps"
	"math"
	"slices"
)

// EasingFunc maps linear progress in [0, 1] to eased progress.
type EasingFunc func(p float64) float64

var easings = map[string]EasingFunc{
	"linear":    func(p float64) float64 { return p },
	"swing":     func(p float64) float64 { return 0.5 - math.Cos(p*math.Pi)/2 },
	"easeIn":    func(p float64) float64 { return p * p },
	"easeOut":   func(p float64) float64 { return p * (2 - p) },
	"easeInOut": easeInOut,
}

func easeInOut(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	return -1 + (4-2*p)*p
}

// Easing returns the named easing function. Unknown names return linear
// easing and false.
func Easing(name string) (EasingFunc, bool) {
	if f, ok := easings[name]; ok {
		return f, true
	}
	return easings["linear"], false
}

// Easings returns the supported easing names, sorted.
func Easings() []string {
	return slices.Sorted(maps.Keys(easings))
}

// Interpolate returns from + (to-from)*p per element. Elements missing from
// from start at 0.
func Interpolate(from, to []float64, p float64) []float64 {
	out := make([]float64, len(to))
	for i, t := range to {
		var f float64
		if i < len(from) {
			f = from[i]
		}
		out[i] = f + (t-f)*p
	}
	return out
}
