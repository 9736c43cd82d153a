// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package treeplot

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/js-arias/microtree/biodata"
)

// Reserved field roles
// that can be used for the visual encoding
// of a dodge point.
// Any other field name refers to a sample metadata attribute,
// or to a taxonomy rank.
const (
	// FieldAbundance is the abundance value of the point.
	FieldAbundance = "abundance"

	// FieldTaxon is the taxon of the point.
	FieldTaxon = "taxon"

	// FieldSample is the sample of the point.
	FieldSample = "sample"
)

// Justify is the alignment mode
// of the dodge points of each terminal.
type Justify int

const (
	// Jagged starts the points of each terminal
	// right after its own branch tip.
	Jagged Justify = iota

	// Justified starts the points of every terminal
	// at the right side of the tree.
	Justified
)

// An UnknownFieldError is an error
// produced by an encoding field
// that is not a reserved role,
// a sample metadata attribute,
// or a taxonomy rank
// of the used dataset.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown encoding field %q", e.Field)
}

// DodgeOptions are the parameters
// of a dodge annotation.
// The zero value is a valid default.
type DodgeOptions struct {
	// Color, Shape, and Size are the fields
	// mapped to the visual channels of the points.
	// Empty fields leave the channel unused.
	Color string
	Shape string
	Size  string

	// Tooltip is the field used for the hover text
	// of the points.
	// If empty, the sample identifier is used.
	Tooltip string

	// Justify is the alignment mode of the points.
	Justify Justify

	// Spacing is the horizontal separation
	// between points of the same terminal,
	// as a fraction of the tree x extent.
	// If zero it defaults to 2%.
	Spacing float64

	// MinLabel is the smallest abundance value
	// that will be printed as a text label
	// next to its point.
	// If zero, no labels are printed.
	MinLabel float64
}

// A Point is a dodge annotation point:
// the abundance observation of a sample
// at a tree terminal,
// with its render coordinates
// and the resolved values
// of its visual encoding fields.
type Point struct {
	Taxon     string
	Sample    string
	Abundance float64

	// Index is the 1-based position of the point
	// among the points of the same terminal.
	Index int

	X, Y float64

	Color   string
	Shape   string
	Size    string
	Tooltip string

	// Label is the abundance text label
	// (empty if unlabeled).
	Label string
}

// Dodge computes the dodge points
// of the abundance observations of a dataset
// over a tree layout.
// Only nonzero observations produce points.
// All encoding fields are resolved
// before any join is made,
// and an unknown field
// is reported as an UnknownFieldError.
func Dodge(l *Layout, d *biodata.Dataset, opts DodgeOptions) ([]Point, error) {
	if d.Abundance == nil {
		return nil, fmt.Errorf("tree %q: dataset without abundance matrix", l.Name())
	}

	if opts.Tooltip == "" {
		opts.Tooltip = FieldSample
	}
	if err := CheckFields(d, opts.Color, opts.Shape, opts.Size, opts.Tooltip); err != nil {
		return nil, err
	}

	spacing := opts.Spacing
	if spacing <= 0 {
		spacing = 0.02
	}
	step := spacing * l.MaxX()

	var pts []Point
	for _, tax := range l.Terms() {
		obs := d.Abundance.Obs(tax)
		if len(obs) == 0 {
			continue
		}

		y, _ := l.TipY(tax)
		base, _ := l.TipX(tax)
		if opts.Justify == Justified {
			base = l.MaxX()
		}

		group := make([]Point, 0, len(obs))
		for _, s := range obs {
			v := d.Abundance.Abundance(tax, s)
			p := Point{
				Taxon:     tax,
				Sample:    s,
				Abundance: v,
				Y:         y,
				Color:     fieldValue(d, opts.Color, tax, s, v),
				Shape:     fieldValue(d, opts.Shape, tax, s, v),
				Size:      fieldValue(d, opts.Size, tax, s, v),
				Tooltip:   fieldValue(d, opts.Tooltip, tax, s, v),
			}
			if opts.MinLabel > 0 && v >= opts.MinLabel {
				p.Label = strconv.FormatFloat(v, 'g', 4, 64)
			}
			group = append(group, p)
		}
		slices.SortStableFunc(group, func(a, b Point) int {
			if c := compareValue(a.Color, b.Color); c != 0 {
				return c
			}
			if c := compareValue(a.Shape, b.Shape); c != 0 {
				return c
			}
			return strings.Compare(a.Sample, b.Sample)
		})
		for i := range group {
			group[i].Index = i + 1
			group[i].X = base + float64(i+1)*step
		}
		pts = append(pts, group...)
	}
	return pts, nil
}

// CheckFields checks that every non-empty field name
// is a reserved role,
// a sample metadata attribute,
// or a taxonomy rank
// of the dataset,
// so encoding fields can be rejected
// before any layout computation.
func CheckFields(d *biodata.Dataset, fields ...string) error {
	for _, f := range fields {
		if f == "" {
			continue
		}
		if !knownField(d, f) {
			return &UnknownFieldError{Field: f}
		}
	}
	return nil
}

// KnownField returns true if the field
// is a reserved role,
// a sample metadata attribute,
// or a taxonomy rank.
func knownField(d *biodata.Dataset, field string) bool {
	switch field {
	case FieldAbundance, FieldTaxon, FieldSample:
		return true
	}
	if d.Samples != nil && d.Samples.HasField(field) {
		return true
	}
	if d.Taxonomy != nil && slices.Contains(d.Taxonomy.Ranks(), field) {
		return true
	}
	return false
}

// FieldValue resolves the value of an encoding field
// for a point.
// Reserved roles take precedence
// over sample metadata attributes,
// and these over taxonomy ranks.
func fieldValue(d *biodata.Dataset, field, taxon, sample string, v float64) string {
	switch field {
	case "":
		return ""
	case FieldAbundance:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case FieldTaxon:
		return taxon
	case FieldSample:
		return sample
	}
	if d.Samples != nil && d.Samples.HasField(field) {
		return d.Samples.Value(sample, field)
	}
	if d.Taxonomy != nil {
		return d.Taxonomy.Value(taxon, field)
	}
	return ""
}

// CompareValue compares two field values,
// numerically if both parse as numbers,
// or as strings otherwise.
func compareValue(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}
