// Package style holds the presentation dictionaries applied to charts and bars.
//
// A [Style] is an ordered property dictionary. Property names are stored in
// CSS form, so "backgroundColor" and "background-color" address the same
// entry. Styles are layered with [Merge]: later layers override earlier ones
// key by key, without any deep merging of values.
package style

import (
	"maps"
	"slices"
	"strings"
	"unicode"
)

// Style is an ordered dictionary of presentation properties.
// The zero value is an empty style ready to use.
type Style struct {
	keys []string
	vals map[string]string
}

// New builds a style from alternating name/value pairs. A trailing name
// without a value is ignored.
func New(pairs ...string) Style {
	var s Style
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Set(pairs[i], pairs[i+1])
	}
	return s
}

// FromMap builds a style from m, ordered by property name.
func FromMap(m map[string]string) Style {
	var s Style
	for _, k := range slices.Sorted(maps.Keys(m)) {
		s.Set(k, m[k])
	}
	return s
}

// Set assigns value to the property name. Re-setting an existing property
// keeps its original position.
func (s *Style) Set(name, value string) {
	key := Canonical(name)
	if key == "" {
		return
	}
	if s.vals == nil {
		s.vals = make(map[string]string)
	}
	if _, exists := s.vals[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.vals[key] = value
}

// Get returns the value of the property name.
func (s Style) Get(name string) (string, bool) {
	v, ok := s.vals[Canonical(name)]
	return v, ok
}

// Keys returns property names in insertion order.
func (s Style) Keys() []string { return slices.Clone(s.keys) }

// Len returns the number of properties.
func (s Style) Len() int { return len(s.keys) }

// Clone returns an independent copy.
func (s Style) Clone() Style {
	return Style{keys: slices.Clone(s.keys), vals: maps.Clone(s.vals)}
}

// Map returns the properties as a plain map.
func (s Style) Map() map[string]string { return maps.Clone(s.vals) }

// String renders the style as CSS declarations in insertion order.
func (s Style) String() string {
	var b strings.Builder
	for i, k := range s.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s.vals[k])
		b.WriteByte(';')
	}
	return b.String()
}

// Merge layers styles left to right into a new style.
func Merge(layers ...Style) Style {
	var out Style
	for _, l := range layers {
		for _, k := range l.keys {
			out.Set(k, l.vals[k])
		}
	}
	return out
}

// Canonical converts a property name to its CSS form:
// "borderTopWidth" becomes "border-top-width".
func Canonical(name string) string {
	name = strings.TrimSpace(name)
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
