package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/barfly/pkg/core/style"
	"github.com/matzehuels/barfly/pkg/core/transition"
	"github.com/matzehuels/barfly/pkg/errors"
)

type settingsFile struct {
	ChartWidth  *int           `toml:"chart_width"`
	ChartHeight *int           `toml:"chart_height"`
	ChartStyle  map[string]any `toml:"chart_style"`
	BarStyle    map[string]any `toml:"bar_style"`
	Animation   any            `toml:"animation"`
}

// Load reads settings from a TOML file. Keys missing from the file keep
// their [Default] values; a style table replaces the default style.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "settings file %s", path)
		}
		return Settings{}, errors.Wrap(errors.ErrCodeInvalidSettings, err, "read settings %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML settings on top of [Default].
//
//	chart_width = 400
//	chart_height = 100
//
//	[bar_style]
//	background-color = "steelblue"
//
//	[animation]
//	duration = "250ms"
//	easing = "swing"
//
// Setting animation = false disables animation.
func Parse(data []byte) (Settings, error) {
	var f settingsFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return Settings{}, errors.Wrap(errors.ErrCodeInvalidSettings, err, "decode settings")
	}

	s := Default()
	if f.ChartWidth != nil {
		s.ChartWidth = *f.ChartWidth
	}
	if f.ChartHeight != nil {
		s.ChartHeight = *f.ChartHeight
	}
	if md.IsDefined("chart_style") {
		s.ChartStyle = TOMLStyle(md, f.ChartStyle, "chart_style")
	}
	if md.IsDefined("bar_style") {
		s.BarStyle = TOMLStyle(md, f.BarStyle, "bar_style")
	}
	if md.IsDefined("animation") {
		anim, err := DecodeAnimation(f.Animation)
		if err != nil {
			return Settings{}, err
		}
		s.Animation = anim
	}
	if err := s.Validate(); err != nil {
		return Settings{}, errors.Wrap(errors.ErrCodeInvalidSettings, err, "invalid settings")
	}
	return s, nil
}

// TOMLStyle builds a style from a decoded TOML table, keeping the order in
// which properties appear in the source. path is the key path of the table.
func TOMLStyle(md toml.MetaData, table map[string]any, path ...string) style.Style {
	var st style.Style
	for _, key := range md.Keys() {
		if len(key) != len(path)+1 || !slices.Equal([]string(key[:len(path)]), path) {
			continue
		}
		name := key[len(key)-1]
		if v, ok := table[name]; ok {
			st.Set(name, styleValue(v))
		}
	}
	return st
}

// StyleFromMap builds a style from a decoded table whose key order is not
// known, ordered by property name.
func StyleFromMap(table map[string]any) style.Style {
	m := make(map[string]string, len(table))
	for k, v := range table {
		m[k] = styleValue(v)
	}
	return style.FromMap(m)
}

func styleValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10) + "px"
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64) + "px"
	default:
		return fmt.Sprint(x)
	}
}

// DecodeAnimation converts a decoded animation value: false disables, true
// selects the default, and a table overrides duration and easing. Durations
// are Go duration strings or integer milliseconds.
func DecodeAnimation(v any) (*transition.Animation, error) {
	switch x := v.(type) {
	case nil:
		return transition.Default(), nil
	case bool:
		if !x {
			return nil, nil
		}
		return transition.Default(), nil
	case map[string]any:
		anim := transition.Default()
		if d, ok := x["duration"]; ok {
			dur, err := decodeDuration(d)
			if err != nil {
				return nil, err
			}
			anim.Duration = dur
		}
		if e, ok := x["easing"]; ok {
			name, ok := e.(string)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidSettings, "animation easing must be a string, got %T", e)
			}
			anim.Easing = name
		}
		return anim, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidSettings, "animation must be a bool or a table, got %T", v)
	}
}

func decodeDuration(v any) (time.Duration, error) {
	var d time.Duration
	switch x := v.(type) {
	case string:
		parsed, err := time.ParseDuration(x)
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidSettings, err, "animation duration %q", x)
		}
		d = parsed
	case int64:
		d = time.Duration(x) * time.Millisecond
	case int:
		d = time.Duration(x) * time.Millisecond
	case float64:
		d = time.Duration(x * float64(time.Millisecond))
	default:
		return 0, errors.New(errors.ErrCodeInvalidSettings, "animation duration must be a string or milliseconds, got %T", v)
	}
	if d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidSettings, "animation duration must not be negative")
	}
	return d, nil
}
