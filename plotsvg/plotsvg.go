// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plotsvg renders a tree layout
// and its dodge annotation points
// as an SVG document.
package plotsvg

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/js-arias/microtree/treeplot"
)

// A Style is the set of cosmetic parameters
// of an SVG tree drawing.
type Style struct {
	// StepX is the number of pixel units
	// per horizontal layout unit.
	StepX float64

	// StepY is the number of pixel units
	// per terminal row.
	StepY int

	// FontSize is the text size in pixels.
	// If zero,
	// it is scaled from the number of terminals.
	FontSize int

	// TipLabels draws the name of each terminal.
	TipLabels bool
}

// DefaultStyle returns the default drawing style.
func DefaultStyle() Style {
	return Style{
		StepX:     10,
		StepY:     12,
		TipLabels: true,
	}
}

const margin = 10

// Write renders a layout
// and its dodge points
// as an SVG document.
func Write(w io.Writer, l *treeplot.Layout, pts []treeplot.Point, st Style) error {
	if st.StepX <= 0 {
		st.StepX = 10
	}
	if st.StepY <= 0 {
		st.StepY = 12
	}
	terms := l.Terms()
	if st.FontSize <= 0 {
		st.FontSize = 10
		if len(terms) > 100 {
			st.FontSize = 8
		}
		if len(terms) > 200 {
			st.FontSize = 6
		}
	}

	d := drawing{
		l:     l,
		pts:   pts,
		st:    st,
		color: colorScale(pts),
		shape: shapeScale(pts),
		size:  sizeScale(pts),
	}

	maxX := l.MaxX()
	last := make(map[string]float64, len(terms))
	for _, tax := range terms {
		x, _ := l.TipX(tax)
		last[tax] = x
	}
	for _, p := range pts {
		if p.X > maxX {
			maxX = p.X
		}
		if p.X > last[p.Taxon] {
			last[p.Taxon] = p.X
		}
	}
	d.last = last

	taxSz := 0
	if st.TipLabels {
		for _, tax := range terms {
			if len(tax) > taxSz {
				taxSz = len(tax)
			}
		}
	}
	width := int(maxX*st.StepX) + 2*margin + taxSz*6
	height := len(terms)*st.StepY + 2*margin

	fmt.Fprintf(w, "%s", xml.Header)
	e := xml.NewEncoder(w)
	svg := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "height"}, Value: strconv.Itoa(height)},
			{Name: xml.Name{Local: "width"}, Value: strconv.Itoa(width)},
			{Name: xml.Name{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"},
		},
	}
	e.EncodeToken(svg)

	g := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "stroke-width"}, Value: "2"},
			{Name: xml.Name{Local: "stroke"}, Value: "black"},
			{Name: xml.Name{Local: "stroke-linecap"}, Value: "round"},
			{Name: xml.Name{Local: "font-family"}, Value: "Verdana"},
			{Name: xml.Name{Local: "font-size"}, Value: strconv.Itoa(st.FontSize)},
		},
	}
	e.EncodeToken(g)

	d.lines(e)
	d.points(e)
	d.labels(e)

	e.EncodeToken(g.End())
	e.EncodeToken(svg.End())
	if err := e.Flush(); err != nil {
		return err
	}
	return nil
}

type drawing struct {
	l   *treeplot.Layout
	pts []treeplot.Point
	st  Style

	color func(string) color.RGBA
	shape func(string) int
	size  func(string) float64

	// last is the rightmost x used by each terminal,
	// the branch tip or its last dodge point,
	// where the tip label starts.
	last map[string]float64
}

func (d drawing) x(v float64) int {
	return int(v*d.st.StepX) + margin
}

func (d drawing) y(v float64) int {
	return int(v*float64(d.st.StepY)) + margin
}

func (d drawing) lines(e *xml.Encoder) {
	for _, ed := range d.l.Edges() {
		line(e, d.x(ed.X1), d.y(ed.Y), d.x(ed.X2), d.y(ed.Y))
	}
	for _, v := range d.l.Verticals() {
		line(e, d.x(v.X), d.y(v.Y1), d.x(v.X), d.y(v.Y2))
	}
}

func line(e *xml.Encoder, x1, y1, x2, y2 int) {
	ln := xml.StartElement{
		Name: xml.Name{Local: "line"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x1"}, Value: strconv.Itoa(x1)},
			{Name: xml.Name{Local: "y1"}, Value: strconv.Itoa(y1)},
			{Name: xml.Name{Local: "x2"}, Value: strconv.Itoa(x2)},
			{Name: xml.Name{Local: "y2"}, Value: strconv.Itoa(y2)},
		},
	}
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())
}

func (d drawing) points(e *xml.Encoder) {
	for _, p := range d.pts {
		c := d.color(p.Color)
		rgb := fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
		r := d.size(p.Size)

		glyph(e, d.shape(p.Shape), d.x(p.X), d.y(p.Y), r, rgb, p.Tooltip)
	}
}

// Glyph kinds,
// assigned in order to the values
// of the shape field.
const (
	circleGlyph = iota
	squareGlyph
	diamondGlyph
	triangleGlyph
	numGlyphs
)

func glyph(e *xml.Encoder, kind, x, y int, r float64, fill, tip string) {
	var el xml.StartElement
	switch kind {
	case squareGlyph:
		el = xml.StartElement{
			Name: xml.Name{Local: "rect"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(x - int(r))},
				{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(y - int(r))},
				{Name: xml.Name{Local: "width"}, Value: strconv.Itoa(2 * int(r))},
				{Name: xml.Name{Local: "height"}, Value: strconv.Itoa(2 * int(r))},
			},
		}
	case diamondGlyph:
		el = polygon(x, y, r, [][2]float64{{0, -1}, {1, 0}, {0, 1}, {-1, 0}})
	case triangleGlyph:
		el = polygon(x, y, r, [][2]float64{{0, -1}, {1, 1}, {-1, 1}})
	default:
		el = xml.StartElement{
			Name: xml.Name{Local: "circle"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "cx"}, Value: strconv.Itoa(x)},
				{Name: xml.Name{Local: "cy"}, Value: strconv.Itoa(y)},
				{Name: xml.Name{Local: "r"}, Value: strconv.FormatFloat(r, 'f', 1, 64)},
			},
		}
	}
	el.Attr = append(el.Attr,
		xml.Attr{Name: xml.Name{Local: "fill"}, Value: fill},
		xml.Attr{Name: xml.Name{Local: "stroke"}, Value: "none"},
		xml.Attr{Name: xml.Name{Local: "data-tip"}, Value: tip},
	)
	e.EncodeToken(el)

	// native hover text
	ti := xml.StartElement{Name: xml.Name{Local: "title"}}
	e.EncodeToken(ti)
	e.EncodeToken(xml.CharData(tip))
	e.EncodeToken(ti.End())

	e.EncodeToken(el.End())
}

func polygon(x, y int, r float64, u [][2]float64) xml.StartElement {
	pts := ""
	for i, p := range u {
		if i > 0 {
			pts += " "
		}
		pts += fmt.Sprintf("%d,%d", x+int(p[0]*r), y+int(p[1]*r))
	}
	return xml.StartElement{
		Name: xml.Name{Local: "polygon"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "points"}, Value: pts},
		},
	}
}

func (d drawing) labels(e *xml.Encoder) {
	for _, p := range d.pts {
		if p.Label == "" {
			continue
		}
		text(e, d.x(p.X), d.y(p.Y)-d.st.StepY/2, p.Label, false)
	}

	if !d.st.TipLabels {
		return
	}
	for _, tax := range d.l.Terms() {
		y, _ := d.l.TipY(tax)
		text(e, d.x(d.last[tax])+margin, d.y(y)+d.st.FontSize/2, tax, true)
	}
}

func text(e *xml.Encoder, x, y int, s string, italic bool) {
	tx := xml.StartElement{
		Name: xml.Name{Local: "text"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(x)},
			{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(y)},
			{Name: xml.Name{Local: "stroke-width"}, Value: "0"},
		},
	}
	if italic {
		tx.Attr = append(tx.Attr, xml.Attr{Name: xml.Name{Local: "font-style"}, Value: "italic"})
	}
	e.EncodeToken(tx)
	e.EncodeToken(xml.CharData(s))
	e.EncodeToken(tx.End())
}
