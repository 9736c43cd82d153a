// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package abundance_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/microtree/abundance"
)

func TestMatrix(t *testing.T) {
	m := newMatrix()

	testMatrix(t, "matrix", m)
}

func TestTSV(t *testing.T) {
	m := newMatrix()

	var w bytes.Buffer
	if err := m.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	r := strings.NewReader(w.String())
	nm, err := abundance.ReadTSV(r)
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}

	testMatrix(t, "tsv", nm)
}

func TestReadTSVErrors(t *testing.T) {
	tests := map[string]string{
		"no taxon field":     "otu\tERR1092158\nAkkermansia muciniphila\t10\n",
		"non numeric value":  "taxon\tERR1092158\nAkkermansia muciniphila\tten\n",
		"negative abundance": "taxon\tERR1092158\nAkkermansia muciniphila\t-10\n",
	}
	for name, in := range tests {
		if _, err := abundance.ReadTSV(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func newMatrix() *abundance.Matrix {
	m := abundance.New()

	m.Add("Akkermansia muciniphila", "ERR1092158", 120)
	m.Add("Akkermansia muciniphila", "ERR1092160", 35)
	m.Add("Bacteroides fragilis", "ERR1092158", 54)
	m.Add("Bacteroides fragilis", "ERR1092159", 981)
	m.Add("Bacteroides fragilis", "ERR1092160", 12)
	m.Add("Faecalibacterium prausnitzii", "ERR1092159", 15)
	m.Add("Faecalibacterium prausnitzii", "ERR1092160", 230)

	// a zero observation only records the sample
	m.Add("Akkermansia muciniphila", "ERR1092159", 0)
	return m
}

func testMatrix(t testing.TB, name string, m *abundance.Matrix) {
	t.Helper()

	taxa := []string{
		"Akkermansia muciniphila",
		"Bacteroides fragilis",
		"Faecalibacterium prausnitzii",
	}
	if g := m.Taxa(); !reflect.DeepEqual(g, taxa) {
		t.Errorf("%s: taxa: got %v, want %v", name, g, taxa)
	}

	samples := []string{"ERR1092158", "ERR1092159", "ERR1092160"}
	if g := m.Samples(); !reflect.DeepEqual(g, samples) {
		t.Errorf("%s: samples: got %v, want %v", name, g, samples)
	}

	obs := map[string][]string{
		"Akkermansia muciniphila":      {"ERR1092158", "ERR1092160"},
		"Bacteroides fragilis":         {"ERR1092158", "ERR1092159", "ERR1092160"},
		"Faecalibacterium prausnitzii": {"ERR1092159", "ERR1092160"},
	}
	for tx, w := range obs {
		if g := m.Obs(tx); !reflect.DeepEqual(g, w) {
			t.Errorf("%s: observations for %q: got %v, want %v", name, tx, g, w)
		}
	}

	vals := map[string]float64{
		"ERR1092158": 120,
		"ERR1092159": 0,
		"ERR1092160": 35,
	}
	for s, w := range vals {
		if g := m.Abundance("Akkermansia muciniphila", s); g != w {
			t.Errorf("%s: abundance on %q: got %.6f, want %.6f", name, s, g, w)
		}
	}

	if g, w := m.Total("Bacteroides fragilis"), 1047.0; g != w {
		t.Errorf("%s: total: got %.6f, want %.6f", name, g, w)
	}
	if g, w := m.SampleTotal("ERR1092160"), 277.0; g != w {
		t.Errorf("%s: sample total: got %.6f, want %.6f", name, g, w)
	}
}
