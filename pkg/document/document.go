// Package document loads chart documents: files describing a container
// size, chart options and data.
//
// Three formats are supported, chosen by file extension:
//
//   - TOML (.toml): data is an array, or a table of arrays whose key order
//     is kept as dataset order.
//   - HCL (.hcl): data is a values attribute, or dataset "id" blocks.
//   - XLSX (.xlsx): the first sheet holds one dataset per column with the
//     ids in the header row; an optional "options" sheet holds key/value
//     rows.
package document

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/barfly/pkg/chart"
	"github.com/matzehuels/barfly/pkg/core/surface"
	"github.com/matzehuels/barfly/pkg/errors"
)

// Format is a document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTOML, FormatHCL, FormatXLSX}

// Document is a parsed chart document.
type Document struct {
	// Source names where the document came from.
	Source string
	Format Format
	// Raw holds the undecoded document.
	Raw []byte

	// Width and Height of the container. Zero lets the chart apply its
	// configured default.
	Width  int
	Height int

	Options chart.Options
}

// Canvas returns a new in-memory container sized for the document.
func (d *Document) Canvas() *surface.Canvas {
	return surface.NewCanvas(d.Width, d.Height)
}

// FormatFor returns the format implied by a file name.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range Formats {
		if string(f) == ext {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported document type %q (supported: toml, hcl, xlsx)", filepath.Ext(path))
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read %s", path)
	}
	return Parse(data, format, path)
}

// Parse decodes a document. source names it in error messages.
func Parse(data []byte, format Format, source string) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch format {
	case FormatTOML:
		doc, err = parseTOML(data, source)
	case FormatHCL:
		doc, err = parseHCL(data, source)
	case FormatXLSX:
		doc, err = parseXLSX(data, source)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported document format %q", format)
	}
	if err != nil {
		return nil, err
	}
	doc.Source, doc.Format, doc.Raw = source, format, data
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *Document) validate() error {
	if err := errors.ValidateDimension("width", d.Width); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s", d.Source)
	}
	if err := errors.ValidateDimension("height", d.Height); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s", d.Source)
	}
	if d.Options.Data.IsZero() {
		return errors.New(errors.ErrCodeInvalidDocument, "%s: no data", d.Source)
	}
	if d.Options.Range != nil {
		r := d.Options.Range.Range()
		if err := errors.ValidateRange(r.Min, r.Max); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s", d.Source)
		}
	}
	return nil
}
