package document

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/barfly/pkg/chart"
	"github.com/matzehuels/barfly/pkg/config"
	"github.com/matzehuels/barfly/pkg/core/dataset"
	"github.com/matzehuels/barfly/pkg/core/scale"
	"github.com/matzehuels/barfly/pkg/core/style"
	"github.com/matzehuels/barfly/pkg/errors"
)

// OptionsSheet is the name of the optional key/value sheet in a workbook.
const OptionsSheet = "options"

// parseXLSX reads a workbook. The first sheet other than OptionsSheet holds
// the data: the header row names the datasets and each column below it
// holds one dataset's values. A single column is read as a single-set
// chart. Fully blank rows are skipped; a blank cell with values below it in
// the same column is an error, while trailing blanks end a column.
//
// The options sheet holds rows of key and value. Recognised keys are width,
// height, active, bar_spacing, range_min, range_max, animation (true or
// false), duration, easing, and style properties prefixed with
// "chart_style.", "bar_style." or "data_style.". In a multi-set workbook a
// data style key names its dataset: "data_style.<id>.<property>".
func parseXLSX(data []byte, source string) (*Document, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "open workbook %s", source)
	}
	defer f.Close()

	dataSheet := ""
	hasOptions := false
	for _, name := range f.GetSheetList() {
		if strings.EqualFold(name, OptionsSheet) {
			hasOptions = true
			continue
		}
		if dataSheet == "" {
			dataSheet = name
		}
	}
	if dataSheet == "" {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "%s: no data sheet", source)
	}

	rows, err := f.GetRows(dataSheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read sheet %s", dataSheet)
	}
	in, err := xlsxData(rows)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s: sheet %s", source, dataSheet)
	}

	doc := &Document{Options: chart.Options{Data: in}}
	if hasOptions {
		optRows, err := f.GetRows(OptionsSheet)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read sheet %s", OptionsSheet)
		}
		if err := applyXLSXOptions(doc, optRows); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s: sheet %s", source, OptionsSheet)
		}
	}
	return doc, nil
}

func xlsxData(rows [][]string) (dataset.Input, error) {
	if len(rows) == 0 {
		return dataset.Input{}, errors.New(errors.ErrCodeInvalidInput, "sheet is empty")
	}
	header := rows[0]
	for len(header) > 0 && strings.TrimSpace(header[len(header)-1]) == "" {
		header = header[:len(header)-1]
	}
	if len(header) == 0 {
		return dataset.Input{}, errors.New(errors.ErrCodeInvalidInput, "header row is empty")
	}

	columns := make([][]float64, len(header))
	// gaps holds the first blank cell of each column; a value below it would
	// shift the column against its neighbours.
	gaps := make([]string, len(header))
	for r, row := range rows[1:] {
		if blank(row) {
			continue
		}
		for c := range header {
			cell := ""
			if c < len(row) {
				cell = strings.TrimSpace(row[c])
			}
			name, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if cell == "" {
				if gaps[c] == "" {
					gaps[c] = name
				}
				continue
			}
			if gaps[c] != "" {
				return dataset.Input{}, errors.New(errors.ErrCodeInvalidInput, "cell %s is blank but column %q continues at %s", gaps[c], header[c], name)
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return dataset.Input{}, errors.New(errors.ErrCodeInvalidInput, "cell %s: %q is not a number", name, cell)
			}
			columns[c] = append(columns[c], v)
		}
	}

	if len(header) == 1 {
		return dataset.Sequence(columns[0]...), nil
	}
	sets := make([]dataset.Set, len(header))
	for i, id := range header {
		sets[i] = dataset.Set{ID: strings.TrimSpace(id), Values: columns[i]}
	}
	return dataset.Keyed(sets...), nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func applyXLSXOptions(doc *Document, rows [][]string) error {
	opts := &doc.Options
	var (
		rangeMin, rangeMax *float64
		animOff            bool
		anim               = map[string]any{}
		chartStyle         style.Style
		barStyle           style.Style
		single             style.Style
		keyed              = map[string]style.Style{}
		hasDataStyle       bool
	)

	for _, row := range rows {
		if len(row) < 2 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		key, val := strings.TrimSpace(row[0]), strings.TrimSpace(row[1])
		var err error
		switch {
		case key == "width":
			doc.Width, err = strconv.Atoi(val)
		case key == "height":
			doc.Height, err = strconv.Atoi(val)
		case key == "active":
			opts.Active = val
		case key == "bar_spacing":
			opts.BarSpacing = chart.ParseSpacing(val)
		case key == "range_min":
			rangeMin, err = floatPtr(val)
		case key == "range_max":
			rangeMax, err = floatPtr(val)
		case key == "animation":
			var on bool
			on, err = strconv.ParseBool(val)
			animOff = !on
		case key == "duration":
			if ms, perr := strconv.ParseInt(val, 10, 64); perr == nil {
				anim["duration"] = ms
			} else {
				anim["duration"] = val
			}
		case key == "easing":
			anim["easing"] = val
		case strings.HasPrefix(key, "chart_style."):
			chartStyle.Set(strings.TrimPrefix(key, "chart_style."), val)
		case strings.HasPrefix(key, "bar_style."):
			barStyle.Set(strings.TrimPrefix(key, "bar_style."), val)
		case strings.HasPrefix(key, "data_style."):
			hasDataStyle = true
			prop := strings.TrimPrefix(key, "data_style.")
			if !opts.Data.IsKeyed() {
				single.Set(prop, val)
				break
			}
			id, name, ok := strings.Cut(prop, ".")
			if !ok {
				return errors.New(errors.ErrCodeInvalidInput, "option %q must name a dataset", key)
			}
			st := keyed[id]
			st.Set(name, val)
			keyed[id] = st
		default:
			return errors.New(errors.ErrCodeInvalidInput, "unknown option %q", key)
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "option %q", key)
		}
	}

	opts.ChartStyle = chartStyle
	opts.BarStyle = barStyle
	if hasDataStyle {
		if opts.Data.IsKeyed() {
			opts.DataStyle = style.ForSets(keyed)
		} else {
			opts.DataStyle = style.ForAll(single)
		}
	}

	switch {
	case rangeMax != nil:
		opts.Range = rangeSpec(scale.Bounds(rangeMin, *rangeMax))
	case rangeMin != nil:
		return errors.New(errors.ErrCodeInvalidRange, "range_min requires range_max")
	}

	switch {
	case animOff:
		opts.Animation = chart.NoAnimation()
	case len(anim) > 0:
		a, err := config.DecodeAnimation(anim)
		if err != nil {
			return err
		}
		opts.Animation = chart.WithAnimation(*a)
	}
	return nil
}

func floatPtr(s string) (*float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
