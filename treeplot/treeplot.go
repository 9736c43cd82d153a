// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package treeplot computes a 2D layout
// for a phylogenetic tree,
// and the dodged annotation points
// of the abundance observations
// on the tree terminals.
//
// The layout is a set of geometric primitives:
// one horizontal segment per node,
// spanning from the ancestor branch point
// to the node,
// and one vertical segment per internal node,
// connecting its immediate descendants.
// Coordinates are abstract:
// x is in million years
// (or depth levels for trees without branch lengths),
// and y is the terminal row,
// so any renderer must scale them.
package treeplot

import (
	"math"
	"slices"
	"strings"

	"github.com/js-arias/timetree"
)

const millionYears = 1_000_000

// Ladder is the ladderization mode
// used to reorder the descendants of each node
// before the layout.
type Ladder int

const (
	// NoLadder keeps the descendants in tree order.
	NoLadder Ladder = iota

	// LadderLeft puts smaller clades first.
	LadderLeft

	// LadderRight puts larger clades first.
	LadderRight
)

// Options are the parameters of a tree layout.
// The zero value is a valid default.
type Options struct {
	// Ladder is the ladderization mode.
	Ladder Ladder

	// UnitBranch ignores branch lengths
	// and assigns a unit length
	// to every branch.
	UnitBranch bool

	// MinBranch is the minimum horizontal span
	// assigned to a branch,
	// so zero length branches
	// do not collapse distinct taxa.
	// If zero,
	// it defaults to 0.5% of the root age
	// (or one in unit branch mode).
	MinBranch float64
}

// An Edge is the horizontal segment of a node,
// at the node y position,
// spanning from the branch point on its ancestor
// to the node itself.
// The root carries a short stem edge.
type Edge struct {
	// ID of the node.
	ID int

	// Taxon is the taxon name of the node
	// (empty for internal nodes).
	Taxon string

	X1, X2, Y float64
}

// A Vertical is the vertical segment of an internal node,
// at the node x position,
// spanning the y range of its immediate descendants.
type Vertical struct {
	// ID of the node.
	ID int

	X, Y1, Y2 float64
}

type node struct {
	id    int
	taxon string
	age   int64

	x          float64
	y          float64
	minY, maxY float64

	anc  *node
	desc []*node

	// terms is the number of descendant terminals,
	// order the smallest descendant terminal name,
	// both used by ladderization.
	terms int
	order string
}

// A Layout is the set of geometric primitives
// of a tree drawing.
type Layout struct {
	name string
	root *node
	tips map[string]*node

	terms []string
	edges []Edge
	verts []Vertical

	rank int
	maxX float64
}

// New computes the layout of a tree.
// The same tree and options
// always produce the same layout.
func New(t *timetree.Tree, opts Options) *Layout {
	l := &Layout{
		name: t.Name(),
		tips: make(map[string]*node),
	}
	l.root = l.copyTree(t, t.Root(), nil)
	setLadderFields(l.root)
	if opts.Ladder != NoLadder {
		ladderize(l.root, opts.Ladder)
	}

	rootAge := float64(t.Age(t.Root())) / millionYears
	minBr := opts.MinBranch
	if minBr <= 0 {
		minBr = rootAge / 200
		if opts.UnitBranch || minBr == 0 {
			minBr = 1
		}
	}

	l.prepare(l.root, rootAge, minBr, opts.UnitBranch)
	l.segments(l.root, minBr)
	return l
}

func (l *Layout) copyTree(t *timetree.Tree, id int, anc *node) *node {
	n := &node{
		id:    id,
		taxon: t.Taxon(id),
		age:   t.Age(id),
		anc:   anc,
	}
	for _, c := range t.Children(id) {
		n.desc = append(n.desc, l.copyTree(t, c, n))
	}
	return n
}

func setLadderFields(n *node) {
	if len(n.desc) == 0 {
		n.terms = 1
		n.order = n.taxon
		return
	}
	for _, d := range n.desc {
		setLadderFields(d)
		n.terms += d.terms
		if n.order == "" || d.order < n.order {
			n.order = d.order
		}
	}
}

func ladderize(n *node, ld Ladder) {
	if len(n.desc) == 0 {
		return
	}
	for _, d := range n.desc {
		ladderize(d, ld)
	}
	slices.SortStableFunc(n.desc, func(a, b *node) int {
		if a.terms != b.terms {
			if ld == LadderLeft {
				return a.terms - b.terms
			}
			return b.terms - a.terms
		}
		return strings.Compare(a.order, b.order)
	})
}

// Prepare assigns the node coordinates:
// x is the distance from the root
// (the stem offset keeps every x positive),
// terminals take successive y rows,
// and internal nodes the midpoint
// of their descendant rows.
func (l *Layout) prepare(n *node, rootAge, minBr float64, unit bool) {
	if n.anc == nil {
		n.x = minBr
	} else {
		x := rootAge - float64(n.age)/millionYears + minBr
		if unit {
			x = n.anc.x + 1
		}
		if x < n.anc.x+minBr {
			x = n.anc.x + minBr
		}
		n.x = x
	}
	if n.x > l.maxX {
		l.maxX = n.x
	}

	if len(n.desc) == 0 {
		n.y = float64(l.rank)
		l.rank++
		n.minY, n.maxY = n.y, n.y
		l.tips[n.taxon] = n
		l.terms = append(l.terms, n.taxon)
		return
	}

	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	for _, d := range n.desc {
		l.prepare(d, rootAge, minBr, unit)
		if d.y < minY {
			minY = d.y
		}
		if d.y > maxY {
			maxY = d.y
		}
	}
	n.minY, n.maxY = minY, maxY
	n.y = minY + (maxY-minY)/2
}

func (l *Layout) segments(n *node, stem float64) {
	x1 := n.x - stem
	if n.anc != nil {
		x1 = n.anc.x
	}
	l.edges = append(l.edges, Edge{
		ID:    n.id,
		Taxon: n.taxon,
		X1:    x1,
		X2:    n.x,
		Y:     n.y,
	})

	if len(n.desc) == 0 {
		return
	}
	l.verts = append(l.verts, Vertical{
		ID: n.id,
		X:  n.x,
		Y1: n.minY,
		Y2: n.maxY,
	})
	for _, d := range n.desc {
		l.segments(d, stem)
	}
}

// Edges returns the horizontal segments of the layout,
// one per node.
func (l *Layout) Edges() []Edge {
	return slices.Clone(l.edges)
}

// MaxX returns the largest x coordinate
// of the layout.
func (l *Layout) MaxX() float64 {
	return l.maxX
}

// Name returns the name of the tree.
func (l *Layout) Name() string {
	return l.name
}

// Terms returns the terminal taxa of the tree
// in their y order.
func (l *Layout) Terms() []string {
	return slices.Clone(l.terms)
}

// TipX returns the x coordinate
// of a terminal taxon.
func (l *Layout) TipX(taxon string) (float64, bool) {
	n, ok := l.tips[taxon]
	if !ok {
		return 0, false
	}
	return n.x, true
}

// TipY returns the y coordinate
// (i.e., the terminal row)
// of a terminal taxon.
func (l *Layout) TipY(taxon string) (float64, bool) {
	n, ok := l.tips[taxon]
	if !ok {
		return 0, false
	}
	return n.y, true
}

// Verticals returns the vertical segments of the layout,
// one per internal node.
func (l *Layout) Verticals() []Vertical {
	return slices.Clone(l.verts)
}
