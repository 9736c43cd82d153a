// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// the trees of a microtree project,
// with the abundance observations of each terminal,
// as interactive HTML files.
package draw

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/microtree/biodata"
	"github.com/js-arias/microtree/plotsvg"
	"github.com/js-arias/microtree/project"
	"github.com/js-arias/microtree/treeplot"
	"github.com/js-arias/microtree/widget"
)

var Command = &command.Command{
	Usage: `draw [--tree <tree>] [--treeonly]
	[--ladderize <mode>] [--units]
	[--color <field>] [--shape <field>] [--size <field>]
	[--tooltip <field>] [--min <value>]
	[--justify] [--spacing <value>]
	[--step <value>] [--nolabels]
	[--svg]
	[-o|--output <out-prefix>]
	<project-file>`,
	Short: "draw project trees as interactive HTML files",
	Long: `
Command draw reads a microtree project and draws its trees, with one dodge
point per terminal and sample with a nonzero abundance, into standalone
interactive HTML files in which the hover text of each point is taken from
the tooltip field.

The argument of the command is the name of the project file.

By default, all trees in the project will be drawn. If the flag --tree is set,
only the indicated tree will be drawn. If the flag --treeonly is given, only
the tree will be drawn, without any abundance point, and the project does not
require an abundance file.

By default, trees are ladderized with the largest clades first. Use the flag
--ladderize with the mode "off", "left", or "right" to change it. If the flag
--units is given, branch lengths are ignored and each branch takes a unit
length.

The flags --color, --shape, and --size define the fields used for the visual
channels of the points, and the flag --tooltip the field used for the hover
text (the sample identifier by default). A field is one of the reserved roles
"abundance", "taxon", or "sample", an attribute of the sample metadata file,
or a rank of the taxonomy file. Unknown fields are rejected before drawing.

If the flag --min is given, abundance values at or over the indicated value
will be printed as a text label next to its point.

By default, the points of each terminal start just after its own branch tip.
With the flag --justify all point clusters start at the right side of the
tree. The flag --spacing defines the separation between points of the same
terminal, as a fraction of the tree extent (by default 2%).

By default, 10 pixel units will be used per million years (or per branch
unit); use the flag --step to define a different value (it can have decimal
points). The flag --nolabels omits the terminal names.

By default, interactive HTML files will be written. If the flag --svg is
given, static SVG files will be written instead.

By default, the names of the trees will be used as the output file names. Use
the flag -o, or --output, to define a prefix for the resulting files.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var treeOnly bool
var ladderFlag string
var unitBranch bool
var colorField string
var shapeField string
var sizeField string
var tooltipField string
var minLabel float64
var justify bool
var spacing float64
var stepX float64
var noLabels bool
var svgOut bool
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().BoolVar(&treeOnly, "treeonly", false, "")
	c.Flags().StringVar(&ladderFlag, "ladderize", "right", "")
	c.Flags().BoolVar(&unitBranch, "units", false, "")
	c.Flags().StringVar(&colorField, "color", "", "")
	c.Flags().StringVar(&shapeField, "shape", "", "")
	c.Flags().StringVar(&sizeField, "size", "", "")
	c.Flags().StringVar(&tooltipField, "tooltip", "", "")
	c.Flags().Float64Var(&minLabel, "min", 0, "")
	c.Flags().BoolVar(&justify, "justify", false, "")
	c.Flags().Float64Var(&spacing, "spacing", 0, "")
	c.Flags().Float64Var(&stepX, "step", 10, "")
	c.Flags().BoolVar(&noLabels, "nolabels", false, "")
	c.Flags().BoolVar(&svgOut, "svg", false, "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	ladder, err := parseLadder()
	if err != nil {
		return err
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	d, err := biodata.Read(p)
	if err != nil {
		return err
	}
	if !treeOnly && d.Abundance == nil {
		return fmt.Errorf("abundance matrix not defined in project %q (use --treeonly to draw bare trees)", args[0])
	}

	// reject unknown encoding fields
	// before any layout is made
	if !treeOnly {
		if err := treeplot.CheckFields(d, colorField, shapeField, sizeField, tooltipField); err != nil {
			return err
		}
	}

	ls := d.Trees.Names()
	if treeName != "" {
		ls = []string{treeName}
	}
	for _, tn := range ls {
		t := d.Trees.Tree(tn)
		if t == nil {
			return fmt.Errorf("tree %q not in project %q", tn, args[0])
		}
		if err := d.Validate(tn); err != nil {
			return err
		}

		l := treeplot.New(t, treeplot.Options{
			Ladder:     ladder,
			UnitBranch: unitBranch,
		})

		var pts []treeplot.Point
		if !treeOnly {
			jt := treeplot.Jagged
			if justify {
				jt = treeplot.Justified
			}
			pts, err = treeplot.Dodge(l, d, treeplot.DodgeOptions{
				Color:    colorField,
				Shape:    shapeField,
				Size:     sizeField,
				Tooltip:  tooltipField,
				Justify:  jt,
				Spacing:  spacing,
				MinLabel: minLabel,
			})
			if err != nil {
				return fmt.Errorf("on tree %q: %v", tn, err)
			}
		}

		st := plotsvg.DefaultStyle()
		st.StepX = stepX
		st.TipLabels = !noLabels

		var svg bytes.Buffer
		if err := plotsvg.Write(&svg, l, pts, st); err != nil {
			return fmt.Errorf("on tree %q: %v", tn, err)
		}

		if svgOut {
			err = writeFile(tn, ".svg", func(w *bufio.Writer) error {
				_, err := w.Write(svg.Bytes())
				return err
			})
		} else {
			err = writeFile(tn, ".html", func(w *bufio.Writer) error {
				return widget.Write(w, tn, svg.Bytes())
			})
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func parseLadder() (treeplot.Ladder, error) {
	switch ladderFlag {
	case "off":
		return treeplot.NoLadder, nil
	case "left":
		return treeplot.LadderLeft, nil
	case "right":
		return treeplot.LadderRight, nil
	}
	return treeplot.NoLadder, fmt.Errorf("invalid ladderize mode: %q", ladderFlag)
}

func writeFile(name, ext string, fn func(w *bufio.Writer) error) (err error) {
	if outPrefix != "" {
		name = fmt.Sprintf("%s-%s%s", outPrefix, name, ext)
	} else {
		name += ext
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
