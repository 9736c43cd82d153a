// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package treeplot

import "testing"

// A tree with a single terminal is degenerate
// but must produce a valid layout:
// a single stem edge and no vertical segments.
func TestSingleTerminal(t *testing.T) {
	l := &Layout{
		name: "single",
		tips: make(map[string]*node),
	}
	l.root = &node{id: 0, taxon: "Akkermansia"}
	setLadderFields(l.root)
	l.prepare(l.root, 0, 1, false)
	l.segments(l.root, 1)

	if g, w := len(l.Edges()), 1; g != w {
		t.Errorf("edges: got %d, want %d", g, w)
	}
	if g := len(l.Verticals()); g != 0 {
		t.Errorf("verticals: got %d, want none", g)
	}

	y, ok := l.TipY("Akkermansia")
	if !ok {
		t.Fatalf("terminal %q without y coordinate", "Akkermansia")
	}
	if y != 0 {
		t.Errorf("terminal row: got %.3f, want 0", y)
	}

	e := l.Edges()[0]
	if e.X1 != 0 || e.X2 != 1 {
		t.Errorf("stem edge: got [%.3f, %.3f], want [0, 1]", e.X1, e.X2)
	}
}
