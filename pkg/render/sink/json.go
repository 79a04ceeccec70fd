package sink

import (
	"encoding/json"

	"github.com/matzehuels/barfly/pkg/core/scale"
	"github.com/matzehuels/barfly/pkg/core/surface"
	"github.com/matzehuels/barfly/pkg/core/transition"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	active     string
	datasets   []string
	rng        *scale.Range
	transition *transition.Transition
}

// WithJSONActive records the active dataset id.
func WithJSONActive(id string) JSONOption { return func(r *jsonRenderer) { r.active = id } }

// WithJSONDatasets records the chart's dataset ids in order.
func WithJSONDatasets(ids []string) JSONOption { return func(r *jsonRenderer) { r.datasets = ids } }

// WithJSONRange records the value range the heights were scaled against.
func WithJSONRange(rng scale.Range) JSONOption { return func(r *jsonRenderer) { r.rng = &rng } }

// WithJSONTransition records the last height transition.
func WithJSONTransition(tr transition.Transition) JSONOption {
	return func(r *jsonRenderer) { r.transition = &tr }
}

type jsonOutput struct {
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	InnerWidth  int               `json:"inner_width"`
	InnerHeight int               `json:"inner_height"`
	Classes     []string          `json:"classes,omitempty"`
	Style       map[string]string `json:"style,omitempty"`
	Active      string            `json:"active,omitempty"`
	Datasets    []string          `json:"datasets,omitempty"`
	Range       *jsonRange        `json:"range,omitempty"`
	Bars        []jsonBar         `json:"bars"`
	Transition  *jsonTransition   `json:"transition,omitempty"`
}

type jsonRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type jsonBar struct {
	Index   int               `json:"index"`
	Classes []string          `json:"classes,omitempty"`
	Style   map[string]string `json:"style,omitempty"`
	Left    int               `json:"left"`
	Bottom  int               `json:"bottom"`
	Width   int               `json:"width"`
	Height  int               `json:"height"`
}

type jsonTransition struct {
	From       []int  `json:"from"`
	To         []int  `json:"to"`
	Animated   bool   `json:"animated"`
	DurationMS int64  `json:"duration_ms,omitempty"`
	Easing     string `json:"easing,omitempty"`
}

// RenderJSON exports the scene as a pretty-printed JSON document: container
// size and styling plus every bar's box, with optional dataset, range and
// transition details.
func RenderJSON(sc surface.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:       sc.Width,
		Height:      sc.Height,
		InnerWidth:  sc.InnerWidth,
		InnerHeight: sc.InnerHeight,
		Classes:     sc.Classes,
		Style:       sc.Style.Map(),
		Active:      r.active,
		Datasets:    r.datasets,
		Bars:        make([]jsonBar, len(sc.Bars)),
	}
	for i, b := range sc.Bars {
		out.Bars[i] = jsonBar{
			Index:   b.Index,
			Classes: b.Classes,
			Style:   b.Style.Map(),
			Left:    b.Left,
			Bottom:  b.Bottom,
			Width:   b.Width,
			Height:  b.Height,
		}
	}
	if r.rng != nil {
		out.Range = &jsonRange{Min: r.rng.Min, Max: r.rng.Max}
	}
	if tr := r.transition; tr != nil {
		jt := &jsonTransition{From: tr.From, To: tr.To, Animated: tr.Animated()}
		if tr.Animation != nil {
			jt.DurationMS = tr.Animation.Duration.Milliseconds()
			jt.Easing = tr.Animation.Easing
		}
		out.Transition = jt
	}

	return json.MarshalIndent(out, "", "  ")
}
