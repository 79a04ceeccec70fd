package style

import "github.com/matzehuels/barfly/pkg/core/dataset"

// BaseBar returns the minimum styling a bar needs to be positioned absolutely
// inside its chart.
func BaseBar() Style { return New("position", "absolute", "display", "block") }

// BaseChart returns the minimum styling a chart container needs.
func BaseChart() Style {
	return New("position", "relative", "display", "block", "overflow", "hidden")
}

// DataStyle is the per-dataset overlay configured for a chart: either keyed
// overlays, one per dataset id, or a single overlay for every dataset.
type DataStyle struct {
	keyed  map[string]Style
	single Style
	isSet  bool
}

// ForSets returns keyed per-dataset overlays.
func ForSets(m map[string]Style) DataStyle {
	keyed := make(map[string]Style, len(m))
	for id, s := range m {
		keyed[id] = s.Clone()
	}
	return DataStyle{keyed: keyed, isSet: true}
}

// ForAll returns one overlay used for whichever dataset is active.
func ForAll(s Style) DataStyle { return DataStyle{single: s.Clone(), isSet: true} }

// IsZero reports whether no data style was configured.
func (d DataStyle) IsZero() bool { return !d.isSet }

// For returns the overlay for the active dataset. Single-set charts look up
// their overlay under [dataset.SingleSetID].
func (d DataStyle) For(activeID string, multiset bool) Style {
	if d.keyed == nil {
		return d.single
	}
	key := dataset.SingleSetID
	if multiset {
		key = activeID
	}
	return d.keyed[key]
}

// Resolver layers default and user styles by specificity.
type Resolver struct {
	DefaultBar   Style
	DefaultChart Style
	UserBar      Style
	UserChart    Style
}

// Bar returns base < default < user bar styling.
func (r Resolver) Bar() Style { return Merge(BaseBar(), r.DefaultBar, r.UserBar) }

// Data returns the per-bar overlay for a draw: the resolved bar style with
// the active dataset's overlay on top.
func (r Resolver) Data(overlay Style) Style { return Merge(r.Bar(), overlay) }

// Chart returns base < default < user chart styling.
func (r Resolver) Chart() Style { return Merge(BaseChart(), r.DefaultChart, r.UserChart) }
