// Package scale resolves the numeric range that chart values are mapped onto.
//
// A range is either configured explicitly ([Resolver.SetRange]) or inferred by
// observing every dataset added to the chart ([Resolver.Observe]). Once an
// explicit range is set the resolver is bounded and observation stops
// affecting it. An inferred range only ever widens.
//
//	var r scale.Resolver
//	r.Observe([]float64{1, 2})
//	r.Observe([]float64{3, 4})
//	rng, ok := r.Range() // {1 4}, true
package scale

import "math"

// Range is a closed numeric interval mapped linearly onto container height.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Degenerate reports whether the range cannot produce a finite, positive
// scale factor. Inverted ranges (Max below Min) are degenerate.
func (r Range) Degenerate() bool {
	s := r.Span()
	return s <= 0 || math.IsNaN(s) || math.IsInf(s, 0)
}

// Contains reports whether v lies within the closed interval.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Spec is an explicit range as configured by the user: either a
// [min, max] pair or a {min?, max} object whose min defaults to 0.
type Spec struct {
	min    float64
	max    float64
	hasMin bool
}

// Pair builds a Spec from a [min, max] pair.
func Pair(min, max float64) Spec { return Spec{min: min, max: max, hasMin: true} }

// Upper builds a Spec from an object carrying only max; min defaults to 0.
func Upper(max float64) Spec { return Spec{max: max} }

// Bounds builds a Spec from an object form. A nil min defaults to 0.
func Bounds(min *float64, max float64) Spec {
	if min == nil {
		return Upper(max)
	}
	return Pair(*min, max)
}

// Range returns the interval described by the spec.
func (s Spec) Range() Range {
	if !s.hasMin {
		return Range{Min: 0, Max: s.max}
	}
	return Range{Min: s.min, Max: s.max}
}

// Resolver tracks the chart's range. The zero value is unbounded and not ready.
type Resolver struct {
	rng      Range
	bounded  bool
	observed bool
}

// SetRange fixes the range to s and disables inference from data.
func (r *Resolver) SetRange(s Spec) {
	r.rng = s.Range()
	r.bounded = true
}

// Observe widens an unbounded range to cover every value. The first
// non-empty observation establishes both bounds. NaN values are skipped.
// Observe is a no-op once the resolver is bounded.
func (r *Resolver) Observe(values []float64) {
	if r.bounded {
		return
	}
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if !r.observed {
			r.rng = Range{Min: v, Max: v}
			r.observed = true
			continue
		}
		if v > r.rng.Max {
			r.rng.Max = v
		}
		if v < r.rng.Min {
			r.rng.Min = v
		}
	}
}

// Range returns the current range. The boolean is false while no range is
// known yet (nothing configured and nothing observed).
func (r *Resolver) Range() (Range, bool) {
	if !r.bounded && !r.observed {
		return Range{}, false
	}
	return r.rng, true
}

// Bounded reports whether an explicit range was configured.
func (r *Resolver) Bounded() bool { return r.bounded }
