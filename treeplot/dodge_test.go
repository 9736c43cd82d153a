// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package treeplot_test

import (
	"errors"
	"testing"

	"github.com/js-arias/microtree/abundance"
	"github.com/js-arias/microtree/biodata"
	"github.com/js-arias/microtree/samples"
	"github.com/js-arias/microtree/taxonomy"
	"github.com/js-arias/microtree/treeplot"
)

func newDataset(t testing.TB) *biodata.Dataset {
	t.Helper()

	m := abundance.New()
	m.Add("Akkermansia", "ERR1092158", 120)
	m.Add("Bacteroides", "ERR1092158", 54)
	m.Add("Bacteroides", "ERR1092159", 981)
	m.Add("Faecalibacterium", "ERR1092159", 15)

	// a zero observation must not produce a point
	m.Add("Akkermansia", "ERR1092159", 0)

	tx := taxonomy.New("kingdom", "phylum")
	tx.Add("Akkermansia", "Bacteria", "Verrucomicrobia")
	tx.Add("Bacteroides", "Bacteria", "Bacteroidetes")
	tx.Add("Faecalibacterium", "Bacteria", "Firmicutes")

	md := samples.New()
	md.Add("ERR1092158", "location", "gut")
	md.Add("ERR1092158", "depth", "0.05")
	md.Add("ERR1092159", "location", "gut")
	md.Add("ERR1092159", "depth", "0.15")

	return &biodata.Dataset{
		Abundance: m,
		Taxonomy:  tx,
		Samples:   md,
	}
}

func TestDodge(t *testing.T) {
	l := treeplot.New(newTree(t), treeplot.Options{MinBranch: 0.5})
	d := newDataset(t)

	pts, err := treeplot.Dodge(l, d, treeplot.DodgeOptions{Color: "location"})
	if err != nil {
		t.Fatalf("dodge: unexpected error: %v", err)
	}

	// one point per nonzero observation
	if g, w := len(pts), 4; g != w {
		t.Fatalf("points: got %d, want %d", g, w)
	}

	count := make(map[string]int)
	for _, p := range pts {
		count[p.Taxon]++
	}
	want := map[string]int{
		"Akkermansia":      1,
		"Bacteroides":      2,
		"Faecalibacterium": 1,
	}
	for tax, w := range want {
		if count[tax] != w {
			t.Errorf("points for %q: got %d, want %d", tax, count[tax], w)
		}
	}

	for _, p := range pts {
		y, _ := l.TipY(p.Taxon)
		if p.Y != y {
			t.Errorf("point %q-%q: got y %.3f, want %.3f", p.Taxon, p.Sample, p.Y, y)
		}
		tip, _ := l.TipX(p.Taxon)
		if p.X <= tip {
			t.Errorf("point %q-%q: x %.3f at or before the branch tip %.3f", p.Taxon, p.Sample, p.X, tip)
		}
		if p.Tooltip != p.Sample {
			t.Errorf("point %q-%q: got tooltip %q, want the sample", p.Taxon, p.Sample, p.Tooltip)
		}
		if p.Color != "gut" {
			t.Errorf("point %q-%q: got color value %q, want %q", p.Taxon, p.Sample, p.Color, "gut")
		}
	}

	// indexes within a terminal are 1..k
	// with strictly increasing x
	var prev treeplot.Point
	for _, p := range pts {
		if p.Taxon != prev.Taxon {
			if p.Index != 1 {
				t.Errorf("point %q-%q: got index %d, want 1", p.Taxon, p.Sample, p.Index)
			}
			prev = p
			continue
		}
		if p.Index != prev.Index+1 {
			t.Errorf("point %q-%q: got index %d, want %d", p.Taxon, p.Sample, p.Index, prev.Index+1)
		}
		if p.X <= prev.X {
			t.Errorf("point %q-%q: x %.3f not after %.3f", p.Taxon, p.Sample, p.X, prev.X)
		}
		prev = p
	}
}

func TestDodgeJustified(t *testing.T) {
	l := treeplot.New(newTree(t), treeplot.Options{MinBranch: 0.5})
	d := newDataset(t)

	pts, err := treeplot.Dodge(l, d, treeplot.DodgeOptions{Justify: treeplot.Justified})
	if err != nil {
		t.Fatalf("dodge: unexpected error: %v", err)
	}
	if g, w := len(pts), 4; g != w {
		t.Fatalf("points: got %d, want %d", g, w)
	}

	// every point cluster starts at the right side of the tree
	for _, p := range pts {
		if p.X <= l.MaxX() {
			t.Errorf("point %q-%q: x %.3f at or before the tree extent %.3f", p.Taxon, p.Sample, p.X, l.MaxX())
		}
	}
}

func TestDodgeLabels(t *testing.T) {
	l := treeplot.New(newTree(t), treeplot.Options{MinBranch: 0.5})
	d := newDataset(t)

	pts, err := treeplot.Dodge(l, d, treeplot.DodgeOptions{MinLabel: 100})
	if err != nil {
		t.Fatalf("dodge: unexpected error: %v", err)
	}

	want := map[string]string{
		"ERR1092158-Akkermansia":      "120",
		"ERR1092158-Bacteroides":      "",
		"ERR1092159-Bacteroides":      "981",
		"ERR1092159-Faecalibacterium": "",
	}
	for _, p := range pts {
		if w := want[p.Sample+"-"+p.Taxon]; p.Label != w {
			t.Errorf("point %q-%q: got label %q, want %q", p.Taxon, p.Sample, p.Label, w)
		}
	}
}

func TestDodgeUnknownField(t *testing.T) {
	l := treeplot.New(newTree(t), treeplot.Options{MinBranch: 0.5})
	d := newDataset(t)

	var uf *treeplot.UnknownFieldError
	_, err := treeplot.Dodge(l, d, treeplot.DodgeOptions{Color: "ph"})
	if !errors.As(err, &uf) {
		t.Fatalf("dodge: got error %v, want an unknown field error", err)
	}
	if uf.Field != "ph" {
		t.Errorf("unknown field: got %q, want %q", uf.Field, "ph")
	}

	// taxonomy ranks are valid encoding fields
	if _, err := treeplot.Dodge(l, d, treeplot.DodgeOptions{Color: "phylum"}); err != nil {
		t.Errorf("dodge: unexpected error for a rank field: %v", err)
	}
}
