// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plot implements a command to plot
// the rank-abundance profile of the samples in a microtree project.
package plot

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/microtree/abundance"
	"github.com/js-arias/microtree/project"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var Command = &command.Command{
	Usage: "plot [-o|--output <out-prefix>] <project-file>",
	Short: "plot the rank-abundance profile of the samples",
	Long: `
Command plot reads the abundance matrix from a microtree project and plots the
rank-abundance profile of its samples as a PNG file.

The argument of the command is the name of the project file.

In the plot, the taxa of each sample are sorted by their relative abundance,
from the most to the least abundant, and the relative abundance is plotted
against the rank. The line is the median relative abundance at each rank over
all samples, and the shaded region is the range between the 2.5% and the 97.5%
quantiles.

By default, the plot will be written to the file "ranks.png". Use the flag -o,
or --output, to define a prefix for the output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	m, err := p.Abundance()
	if err != nil {
		return err
	}

	name := "ranks.png"
	if outPrefix != "" {
		name = outPrefix + "-ranks.png"
	}
	return rankAbundancePlot(m, name)
}

// A rankPlot is a plot of the relative abundance at each abundance rank.
type rankPlot struct {
	median, max, min map[int]float64
	style            draw.LineStyle
}

// DataRange implements the plot.DataRanger interface.
func (rp *rankPlot) DataRange() (xMin, xMax, yMin, yMax float64) {
	ranks := make([]int, 0, len(rp.median))
	for r, v := range rp.max {
		ranks = append(ranks, r)
		if v > yMax {
			yMax = v
		}
	}
	slices.Sort(ranks)

	return float64(ranks[0]), float64(ranks[len(ranks)-1]), 0, yMax
}

// Plot implements the plot.Plotter interface.
func (rp *rankPlot) Plot(c draw.Canvas, plt *plot.Plot) {
	ranks := make([]int, 0, len(rp.median))
	for r := range rp.median {
		ranks = append(ranks, r)
	}
	slices.Sort(ranks)

	trX, trY := plt.Transforms(&c)

	pts := make([]vg.Point, 0, 2*len(ranks))
	for _, r := range ranks {
		pts = append(pts, vg.Point{X: trX(float64(r)), Y: trY(rp.max[r])})
	}
	for i := len(ranks) - 1; i >= 0; i-- {
		r := ranks[i]
		pts = append(pts, vg.Point{X: trX(float64(r)), Y: trY(rp.min[r])})
	}
	c.FillPolygon(color.RGBA{127, 188, 165, 255}, pts)

	c.SetLineStyle(rp.style)
	var p vg.Path
	for i, r := range ranks {
		x := trX(float64(r))
		y := trY(rp.median[r])
		if i == 0 {
			p.Move(vg.Point{X: x, Y: y})
			continue
		}
		p.Line(vg.Point{X: x, Y: y})
	}
	c.Stroke(p)
}

func rankAbundancePlot(m *abundance.Matrix, name string) error {
	taxa := m.Taxa()

	var curves [][]float64
	maxRank := 0
	for _, s := range m.Samples() {
		tot := m.SampleTotal(s)
		if tot == 0 {
			continue
		}
		var vals []float64
		for _, tax := range taxa {
			v := m.Abundance(tax, s)
			if v == 0 {
				continue
			}
			vals = append(vals, v/tot)
		}
		slices.Sort(vals)
		slices.Reverse(vals)
		if len(vals) > maxRank {
			maxRank = len(vals)
		}
		curves = append(curves, vals)
	}
	if maxRank == 0 {
		return fmt.Errorf("while plotting %q: abundance matrix is empty", name)
	}

	rp := &rankPlot{
		median: make(map[int]float64, maxRank),
		min:    make(map[int]float64, maxRank),
		max:    make(map[int]float64, maxRank),
		style:  plotter.DefaultLineStyle,
	}
	for r := 1; r <= maxRank; r++ {
		dist := make([]float64, 0, len(curves))
		weights := make([]float64, 0, len(curves))
		for _, cv := range curves {
			v := 0.0
			if r <= len(cv) {
				v = cv[r-1]
			}
			dist = append(dist, v)
			weights = append(weights, 1.0)
		}
		slices.Sort(dist)

		rp.median[r] = stat.Quantile(0.5, stat.Empirical, dist, weights)
		rp.max[r] = stat.Quantile(0.975, stat.Empirical, dist, weights)
		rp.min[r] = stat.Quantile(0.025, stat.Empirical, dist, weights)
	}

	p := plot.New()
	p.X.Label.Text = "abundance rank"
	p.Y.Label.Text = "relative abundance"

	p.Add(rp)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, name); err != nil {
		return err
	}
	return nil
}
