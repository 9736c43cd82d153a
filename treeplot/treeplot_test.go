// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package treeplot_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/microtree/treeplot"
	"github.com/js-arias/timetree"
)

const treeName = "gut-otus"

// The test tree is
// (Akkermansia:2,(Bacteroides:2,Faecalibacterium:1):1);
// with a root age of 3 million years.
func newTree(t testing.TB) *timetree.Tree {
	t.Helper()

	newick := "(Akkermansia:2,(Bacteroides:2,Faecalibacterium:1):1);"
	tc, err := timetree.Newick(strings.NewReader(newick), treeName, 0)
	if err != nil {
		t.Fatalf("unable to read newick tree: %v", err)
	}
	tree := tc.Tree(tc.Names()[0])
	if tree == nil {
		t.Fatalf("collection without trees")
	}
	return tree
}

func TestLayout(t *testing.T) {
	tree := newTree(t)
	l := treeplot.New(tree, treeplot.Options{MinBranch: 0.5})

	// one horizontal edge per node
	// (the root stem included)
	if g, w := len(l.Edges()), 5; g != w {
		t.Errorf("edges: got %d, want %d", g, w)
	}
	// one vertical segment per internal node
	if g, w := len(l.Verticals()), 2; g != w {
		t.Errorf("verticals: got %d, want %d", g, w)
	}

	terms := []string{"Akkermansia", "Bacteroides", "Faecalibacterium"}
	if g := l.Terms(); !reflect.DeepEqual(g, terms) {
		t.Errorf("terminals: got %v, want %v", g, terms)
	}

	// terminal rows must be distinct and ordered
	seen := make(map[float64]bool)
	for i, tax := range l.Terms() {
		y, ok := l.TipY(tax)
		if !ok {
			t.Fatalf("terminal %q without y coordinate", tax)
		}
		if y != float64(i) {
			t.Errorf("terminal %q: got row %.3f, want %d", tax, y, i)
		}
		if seen[y] {
			t.Errorf("terminal %q: repeated row %.3f", tax, y)
		}
		seen[y] = true
	}

	// x is the distance from the root
	// plus the stem offset
	wantX := map[string]float64{
		"Akkermansia":      2.5,
		"Bacteroides":      3.5,
		"Faecalibacterium": 2.5,
	}
	for tax, w := range wantX {
		if g, _ := l.TipX(tax); g != w {
			t.Errorf("terminal %q: got x %.3f, want %.3f", tax, g, w)
		}
	}
	if g, w := l.MaxX(), 3.5; g != w {
		t.Errorf("max x: got %.3f, want %.3f", g, w)
	}
}

func TestLayoutDeterministic(t *testing.T) {
	tree := newTree(t)

	opts := treeplot.Options{Ladder: treeplot.LadderRight, MinBranch: 0.5}
	l1 := treeplot.New(tree, opts)
	l2 := treeplot.New(tree, opts)

	if !reflect.DeepEqual(l1.Edges(), l2.Edges()) {
		t.Errorf("repeated layout with different edges")
	}
	if !reflect.DeepEqual(l1.Verticals(), l2.Verticals()) {
		t.Errorf("repeated layout with different verticals")
	}
	if !reflect.DeepEqual(l1.Terms(), l2.Terms()) {
		t.Errorf("repeated layout with different terminal order")
	}
}

func TestLadderize(t *testing.T) {
	tree := newTree(t)

	tests := map[treeplot.Ladder][]string{
		treeplot.NoLadder:    {"Akkermansia", "Bacteroides", "Faecalibacterium"},
		treeplot.LadderLeft:  {"Akkermansia", "Bacteroides", "Faecalibacterium"},
		treeplot.LadderRight: {"Bacteroides", "Faecalibacterium", "Akkermansia"},
	}
	for ld, want := range tests {
		l := treeplot.New(tree, treeplot.Options{Ladder: ld})
		if g := l.Terms(); !reflect.DeepEqual(g, want) {
			t.Errorf("ladder %v: terminals: got %v, want %v", ld, g, want)
		}
	}
}

func TestUnitBranch(t *testing.T) {
	tree := newTree(t)
	l := treeplot.New(tree, treeplot.Options{UnitBranch: true})

	wantX := map[string]float64{
		"Akkermansia":      2,
		"Bacteroides":      3,
		"Faecalibacterium": 3,
	}
	for tax, w := range wantX {
		if g, _ := l.TipX(tax); g != w {
			t.Errorf("terminal %q: got x %.3f, want %.3f", tax, g, w)
		}
	}
}
