// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxonomy provides a table
// of taxonomic classifications
// with an ordered set of ranks.
package taxonomy

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Taxonomy is a collection of taxonomic classifications,
// one per taxon,
// with values for an ordered list of ranks
// (for example kingdom, phylum, class, order,
// family, genus).
// Empty values,
// or values equal to "NA"
// (in any case),
// are unknown ranks.
type Taxonomy struct {
	ranks []string
	taxon map[string][]string
}

// New creates a new empty taxonomy
// with the given ranks.
func New(ranks ...string) *Taxonomy {
	rs := make([]string, 0, len(ranks))
	for _, r := range ranks {
		r = strings.ToLower(strings.Join(strings.Fields(r), " "))
		if r == "" {
			continue
		}
		rs = append(rs, r)
	}
	return &Taxonomy{
		ranks: rs,
		taxon: make(map[string][]string),
	}
}

// Add adds the classification of a taxon.
// Values are assigned to ranks in order;
// missing values are unknown.
func (tx *Taxonomy) Add(taxon string, values ...string) {
	taxon = canon(taxon)
	if taxon == "" {
		return
	}

	row := make([]string, len(tx.ranks))
	for i := range row {
		if i >= len(values) {
			break
		}
		row[i] = rankValue(values[i])
	}
	tx.taxon[taxon] = row
}

// HasTaxon returns true if the taxon
// has a classification in the taxonomy.
func (tx *Taxonomy) HasTaxon(taxon string) bool {
	taxon = canon(taxon)
	_, ok := tx.taxon[taxon]
	return ok
}

// LowestKnown returns the most specific
// (i.e., the rightmost)
// known rank value for a taxon.
// It returns an empty string
// if all ranks are unknown,
// or the taxon is not in the taxonomy.
func (tx *Taxonomy) LowestKnown(taxon string) string {
	taxon = canon(taxon)
	row, ok := tx.taxon[taxon]
	if !ok {
		return ""
	}
	for i := len(row) - 1; i >= 0; i-- {
		if row[i] != "" {
			return row[i]
		}
	}
	return ""
}

// Ranks returns the ranks defined for the taxonomy
// in order.
func (tx *Taxonomy) Ranks() []string {
	return slices.Clone(tx.ranks)
}

// Taxa returns the taxa in the taxonomy.
func (tx *Taxonomy) Taxa() []string {
	taxa := make([]string, 0, len(tx.taxon))
	for tax := range tx.taxon {
		taxa = append(taxa, tax)
	}
	slices.Sort(taxa)
	return taxa
}

// Value returns the value of a rank
// for a given taxon.
// Unknown ranks are empty strings.
func (tx *Taxonomy) Value(taxon, rank string) string {
	taxon = canon(taxon)
	rank = strings.ToLower(strings.Join(strings.Fields(rank), " "))
	row, ok := tx.taxon[taxon]
	if !ok {
		return ""
	}
	for i, r := range tx.ranks {
		if r == rank {
			return row[i]
		}
	}
	return ""
}

// RankValue returns a rank value
// with its space normalized;
// unknown markers are reported as empty strings.
func rankValue(v string) string {
	v = strings.Join(strings.Fields(v), " ")
	if strings.EqualFold(v, "na") || strings.EqualFold(v, "unknown") {
		return ""
	}
	return v
}

// Canon returns a taxon name
// in its canonical form.
func canon(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)
	r, n := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[n:]
}
