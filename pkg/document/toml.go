package document

import (
	"github.com/BurntSushi/toml"

	"github.com/matzehuels/barfly/pkg/chart"
	"github.com/matzehuels/barfly/pkg/config"
	"github.com/matzehuels/barfly/pkg/core/dataset"
	"github.com/matzehuels/barfly/pkg/core/scale"
	"github.com/matzehuels/barfly/pkg/core/style"
	"github.com/matzehuels/barfly/pkg/core/transition"
	"github.com/matzehuels/barfly/pkg/errors"
)

type tomlDocument struct {
	Width      int            `toml:"width"`
	Height     int            `toml:"height"`
	Active     string         `toml:"active"`
	BarSpacing any            `toml:"bar_spacing"`
	Range      any            `toml:"range"`
	Animation  any            `toml:"animation"`
	Data       any            `toml:"data"`
	ChartStyle map[string]any `toml:"chart_style"`
	BarStyle   map[string]any `toml:"bar_style"`
	DataStyle  map[string]any `toml:"data_style"`
}

// parseTOML decodes a TOML chart document:
//
//	width = 300
//	active = "b"
//	range = [0, 10]
//
//	[data]
//	a = [1, 2, 3]
//	b = [3, 2, 1]
//
//	[data_style.b]
//	background-color = "tomato"
func parseTOML(data []byte, source string) (*Document, error) {
	var raw tomlDocument
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode %s", source)
	}

	doc := &Document{Width: raw.Width, Height: raw.Height}
	opts := &doc.Options
	opts.Active = raw.Active
	opts.BarSpacing = chart.ParseSpacing(raw.BarSpacing)
	opts.ChartStyle = config.TOMLStyle(md, raw.ChartStyle, "chart_style")
	opts.BarStyle = config.TOMLStyle(md, raw.BarStyle, "bar_style")

	if md.IsDefined("range") {
		spec, err := tomlRange(raw.Range)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s: range", source)
		}
		opts.Range = &spec
	}
	if md.IsDefined("animation") {
		anim, err := config.DecodeAnimation(raw.Animation)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s: animation", source)
		}
		opts.Animation = animationOption(anim)
	}

	in, err := tomlData(md, raw.Data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s: data", source)
	}
	opts.Data = in

	if md.IsDefined("data_style") {
		ds, err := tomlDataStyle(md, raw.DataStyle, in.IsKeyed())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s: data_style", source)
		}
		opts.DataStyle = ds
	}
	return doc, nil
}

func animationOption(anim *transition.Animation) chart.AnimationOption {
	if anim == nil {
		return chart.NoAnimation()
	}
	return chart.WithAnimation(*anim)
}

func tomlData(md toml.MetaData, v any) (dataset.Input, error) {
	switch x := v.(type) {
	case nil:
		return dataset.Input{}, nil
	case []any:
		values, err := numbers(x)
		if err != nil {
			return dataset.Input{}, err
		}
		return dataset.Sequence(values...), nil
	case map[string]any:
		var sets []dataset.Set
		for _, key := range md.Keys() {
			if len(key) != 2 || key[0] != "data" {
				continue
			}
			arr, ok := x[key[1]].([]any)
			if !ok {
				return dataset.Input{}, errors.New(errors.ErrCodeInvalidInput, "dataset %q must be an array of numbers", key[1])
			}
			values, err := numbers(arr)
			if err != nil {
				return dataset.Input{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "dataset %q", key[1])
			}
			sets = append(sets, dataset.Set{ID: key[1], Values: values})
		}
		return dataset.Keyed(sets...), nil
	default:
		return dataset.Input{}, errors.New(errors.ErrCodeInvalidInput, "data must be an array or a table, got %T", v)
	}
}

func tomlRange(v any) (scale.Spec, error) {
	switch x := v.(type) {
	case []any:
		values, err := numbers(x)
		if err != nil {
			return scale.Spec{}, err
		}
		if len(values) != 2 {
			return scale.Spec{}, errors.New(errors.ErrCodeInvalidRange, "range must have 2 values, got %d", len(values))
		}
		return scale.Pair(values[0], values[1]), nil
	case map[string]any:
		maxV, ok := x["max"]
		if !ok {
			return scale.Spec{}, errors.New(errors.ErrCodeInvalidRange, "range table needs max")
		}
		hi, err := number(maxV)
		if err != nil {
			return scale.Spec{}, err
		}
		var lo *float64
		if minV, ok := x["min"]; ok {
			m, err := number(minV)
			if err != nil {
				return scale.Spec{}, err
			}
			lo = &m
		}
		return scale.Bounds(lo, hi), nil
	default:
		return scale.Spec{}, errors.New(errors.ErrCodeInvalidRange, "range must be an array or a table, got %T", v)
	}
}

func tomlDataStyle(md toml.MetaData, table map[string]any, keyed bool) (style.DataStyle, error) {
	if !keyed {
		return style.ForAll(config.TOMLStyle(md, table, "data_style")), nil
	}
	sets := make(map[string]style.Style, len(table))
	for id, v := range table {
		sub, ok := v.(map[string]any)
		if !ok {
			return style.DataStyle{}, errors.New(errors.ErrCodeInvalidInput, "style for dataset %q must be a table", id)
		}
		sets[id] = config.TOMLStyle(md, sub, "data_style", id)
	}
	return style.ForSets(sets), nil
}

func numbers(vs []any) ([]float64, error) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		f, err := number(v)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func number(v any) (float64, error) {
	switch x := v.(type) {
	case int64:
		return float64(x), nil
	case float64:
		return x, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidInput, "expected a number, got %v", v)
	}
}
