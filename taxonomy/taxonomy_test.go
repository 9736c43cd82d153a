// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxonomy_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/microtree/taxonomy"
)

func TestTaxonomy(t *testing.T) {
	tx := newTaxonomy()

	testTaxonomy(t, "taxonomy", tx)
}

func TestTSV(t *testing.T) {
	tx := newTaxonomy()

	var w bytes.Buffer
	if err := tx.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	r := strings.NewReader(w.String())
	ntx, err := taxonomy.ReadTSV(r)
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}

	testTaxonomy(t, "tsv", ntx)
}

func TestLowestKnown(t *testing.T) {
	tx := taxonomy.New("kingdom", "phylum", "class", "order", "family", "genus")

	tests := map[string]struct {
		values []string
		want   string
	}{
		"Otu0042": {
			values: []string{"Bacteria", "Proteobacteria", "NA", "NA", "NA", "NA"},
			want:   "Proteobacteria",
		},
		"Otu0099": {
			values: []string{"Bacteria", "Firmicutes", "Clostridia", "Clostridiales", "Ruminococcaceae", "Faecalibacterium"},
			want:   "Faecalibacterium",
		},
		"Otu0100": {
			values: []string{"NA", "NA"},
			want:   "",
		},
	}
	for tax, test := range tests {
		tx.Add(tax, test.values...)
		if g := tx.LowestKnown(tax); g != test.want {
			t.Errorf("lowest known rank for %q: got %q, want %q", tax, g, test.want)
		}
	}

	if g := tx.LowestKnown("Otu9999"); g != "" {
		t.Errorf("lowest known rank for an undefined taxon: got %q", g)
	}
}

func newTaxonomy() *taxonomy.Taxonomy {
	tx := taxonomy.New("kingdom", "phylum", "class", "order", "family", "genus")

	tx.Add("Akkermansia muciniphila", "Bacteria", "Verrucomicrobia", "Verrucomicrobiae", "Verrucomicrobiales", "Verrucomicrobiaceae", "Akkermansia")
	tx.Add("Bacteroides fragilis", "Bacteria", "Bacteroidetes", "Bacteroidia", "Bacteroidales", "Bacteroidaceae", "Bacteroides")
	tx.Add("Otu0042", "Bacteria", "Proteobacteria", "NA", "NA", "NA", "NA")
	return tx
}

func testTaxonomy(t testing.TB, name string, tx *taxonomy.Taxonomy) {
	t.Helper()

	ranks := []string{"kingdom", "phylum", "class", "order", "family", "genus"}
	if g := tx.Ranks(); !reflect.DeepEqual(g, ranks) {
		t.Errorf("%s: ranks: got %v, want %v", name, g, ranks)
	}

	taxa := []string{"Akkermansia muciniphila", "Bacteroides fragilis", "Otu0042"}
	if g := tx.Taxa(); !reflect.DeepEqual(g, taxa) {
		t.Errorf("%s: taxa: got %v, want %v", name, g, taxa)
	}

	vals := map[string]string{
		"kingdom": "Bacteria",
		"phylum":  "Bacteroidetes",
		"genus":   "Bacteroides",
	}
	for r, w := range vals {
		if g := tx.Value("Bacteroides fragilis", r); g != w {
			t.Errorf("%s: value of rank %q: got %q, want %q", name, r, g, w)
		}
	}
	if g := tx.Value("Otu0042", "class"); g != "" {
		t.Errorf("%s: value of an unknown rank: got %q", name, g)
	}

	if g, w := tx.LowestKnown("Otu0042"), "Proteobacteria"; g != w {
		t.Errorf("%s: lowest known rank: got %q, want %q", name, g, w)
	}
	if !tx.HasTaxon("Akkermansia muciniphila") {
		t.Errorf("%s: expecting taxon %q", name, "Akkermansia muciniphila")
	}
}
