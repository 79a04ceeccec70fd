package document

import (
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/matzehuels/barfly/pkg/chart"
	"github.com/matzehuels/barfly/pkg/config"
	"github.com/matzehuels/barfly/pkg/core/dataset"
	"github.com/matzehuels/barfly/pkg/core/scale"
	"github.com/matzehuels/barfly/pkg/core/style"
	"github.com/matzehuels/barfly/pkg/core/transition"
	"github.com/matzehuels/barfly/pkg/errors"
)

// hclDocument is the top-level structure of an HCL chart document:
//
//	width  = 300
//	active = "b"
//
//	range {
//	  max = 10
//	}
//
//	dataset "a" {
//	  values = [1, 2, 3]
//	}
//
//	dataset "b" {
//	  values = [3, 2, 1]
//	  style  = { background-color = "tomato" }
//	}
type hclDocument struct {
	Width      int               `hcl:"width,optional"`
	Height     int               `hcl:"height,optional"`
	Active     string            `hcl:"active,optional"`
	BarSpacing string            `hcl:"bar_spacing,optional"`
	Values     []float64         `hcl:"values,optional"`
	ChartStyle map[string]string `hcl:"chart_style,optional"`
	BarStyle   map[string]string `hcl:"bar_style,optional"`
	DataStyle  map[string]string `hcl:"data_style,optional"`
	Range      *hclRange         `hcl:"range,block"`
	Animation  *hclAnimation     `hcl:"animation,block"`
	Datasets   []*hclDataset     `hcl:"dataset,block"`
}

type hclRange struct {
	Min *float64 `hcl:"min,optional"`
	Max float64  `hcl:"max"`
}

type hclAnimation struct {
	Enabled  *bool  `hcl:"enabled,optional"`
	Duration string `hcl:"duration,optional"`
	Easing   string `hcl:"easing,optional"`
}

type hclDataset struct {
	ID     string            `hcl:"id,label"`
	Values []float64         `hcl:"values"`
	Style  map[string]string `hcl:"style,optional"`
}

func parseHCL(data []byte, source string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, source)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, diags, "parse %s", source)
	}

	var raw hclDocument
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, diags, "decode %s", source)
	}

	doc := &Document{Width: raw.Width, Height: raw.Height}
	opts := &doc.Options
	opts.Active = raw.Active
	opts.BarSpacing = chart.ParseSpacing(raw.BarSpacing)
	opts.ChartStyle = style.FromMap(raw.ChartStyle)
	opts.BarStyle = style.FromMap(raw.BarStyle)

	if raw.Range != nil {
		opts.Range = rangeSpec(scale.Bounds(raw.Range.Min, raw.Range.Max))
	}
	if raw.Animation != nil {
		anim, err := raw.Animation.decode()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s: animation", source)
		}
		opts.Animation = animationOption(anim)
	}

	switch {
	case raw.Values != nil && len(raw.Datasets) > 0:
		return nil, errors.New(errors.ErrCodeInvalidDocument, "%s: values and dataset blocks are mutually exclusive", source)
	case raw.Values != nil:
		opts.Data = dataset.Sequence(raw.Values...)
		if raw.DataStyle != nil {
			opts.DataStyle = style.ForAll(style.FromMap(raw.DataStyle))
		}
	case len(raw.Datasets) > 0:
		sets := make([]dataset.Set, len(raw.Datasets))
		styles := make(map[string]style.Style)
		for i, ds := range raw.Datasets {
			sets[i] = dataset.Set{ID: ds.ID, Values: ds.Values}
			if ds.Style != nil {
				styles[ds.ID] = style.FromMap(ds.Style)
			}
		}
		opts.Data = dataset.Keyed(sets...)
		if len(styles) > 0 {
			opts.DataStyle = style.ForSets(styles)
		}
	}
	return doc, nil
}

// decode converts the block into the value form understood by
// config.DecodeAnimation. A bare number of milliseconds is accepted as
// duration.
func (a *hclAnimation) decode() (*transition.Animation, error) {
	if a.Enabled != nil && !*a.Enabled {
		return nil, nil
	}
	table := map[string]any{}
	if a.Duration != "" {
		if ms, err := strconv.ParseInt(a.Duration, 10, 64); err == nil {
			table["duration"] = ms
		} else {
			table["duration"] = a.Duration
		}
	}
	if a.Easing != "" {
		table["easing"] = a.Easing
	}
	return config.DecodeAnimation(table)
}

func rangeSpec(s scale.Spec) *scale.Spec { return &s }
