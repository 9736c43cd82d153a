// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package plotsvg

import (
	"image/color"
	"slices"
	"strconv"

	"github.com/js-arias/blind"
	"github.com/js-arias/microtree/treeplot"
)

var defPointColor = color.RGBA{0, 0, 255, 255}

// ColorScale builds the color mapping
// for the color field values of a point set.
// Numeric values use a continuous gradient;
// any other values take a sequential scheme
// over the sorted distinct values.
func colorScale(pts []treeplot.Point) func(string) color.RGBA {
	vals, numeric, min, max := fieldValues(pts, func(p treeplot.Point) string { return p.Color })
	if len(vals) == 0 {
		return func(string) color.RGBA { return defPointColor }
	}

	if numeric {
		return func(s string) color.RGBA {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return defPointColor
			}
			if max > min {
				v = (v - min) / (max - min)
			} else {
				v = 0.5
			}
			return blind.Gradient(v)
		}
	}

	cat := make(map[string]color.RGBA, len(vals))
	for i, v := range vals {
		f := 0.5
		if len(vals) > 1 {
			f = float64(i) / float64(len(vals)-1)
		}
		cat[v] = blind.Sequential(blind.Iridescent, f)
	}
	return func(s string) color.RGBA {
		if c, ok := cat[s]; ok {
			return c
		}
		return defPointColor
	}
}

// ShapeScale assigns a glyph kind
// to each distinct value of the shape field.
func shapeScale(pts []treeplot.Point) func(string) int {
	vals, _, _, _ := fieldValues(pts, func(p treeplot.Point) string { return p.Shape })
	if len(vals) == 0 {
		return func(string) int { return circleGlyph }
	}

	cat := make(map[string]int, len(vals))
	for i, v := range vals {
		cat[v] = i % numGlyphs
	}
	return func(s string) int {
		return cat[s]
	}
}

const (
	minRadius = 2
	maxRadius = 6
)

// SizeScale maps the size field values
// to a point radius.
// Numeric values interpolate the radius range;
// any other values use their rank
// among the sorted distinct values.
func sizeScale(pts []treeplot.Point) func(string) float64 {
	vals, numeric, min, max := fieldValues(pts, func(p treeplot.Point) string { return p.Size })
	if len(vals) == 0 {
		return func(string) float64 { return 3 }
	}

	if numeric {
		return func(s string) float64 {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return minRadius
			}
			if max > min {
				v = (v - min) / (max - min)
			} else {
				v = 0.5
			}
			return minRadius + v*(maxRadius-minRadius)
		}
	}

	cat := make(map[string]float64, len(vals))
	for i, v := range vals {
		f := 0.5
		if len(vals) > 1 {
			f = float64(i) / float64(len(vals)-1)
		}
		cat[v] = minRadius + f*(maxRadius-minRadius)
	}
	return func(s string) float64 {
		if r, ok := cat[s]; ok {
			return r
		}
		return minRadius
	}
}

// FieldValues returns the sorted distinct values
// of an encoding field over a point set,
// whether all values are numeric,
// and the numeric range.
func fieldValues(pts []treeplot.Point, f func(treeplot.Point) string) (vals []string, numeric bool, min, max float64) {
	seen := make(map[string]bool)
	for _, p := range pts {
		v := f(p)
		if v == "" {
			continue
		}
		seen[v] = true
	}
	if len(seen) == 0 {
		return nil, false, 0, 0
	}

	numeric = true
	for v := range seen {
		vals = append(vals, v)
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			numeric = false
			continue
		}
		if len(vals) == 1 {
			min, max = x, x
		}
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	slices.Sort(vals)
	return vals, numeric, min, max
}
