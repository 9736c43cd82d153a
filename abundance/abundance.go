// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package abundance provides a sparse matrix
// of abundance observations
// of a set of taxa
// over a set of samples.
package abundance

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Matrix is a sparse collection of abundance values
// indexed by taxon and sample.
// Pairs without an stored value
// have an abundance of zero.
type Matrix struct {
	taxon   map[string]map[string]float64
	samples map[string]bool
}

// New creates a new empty abundance matrix.
func New() *Matrix {
	return &Matrix{
		taxon:   make(map[string]map[string]float64),
		samples: make(map[string]bool),
	}
}

// Add adds an abundance observation
// for a taxon on a given sample.
// Zero or negative values are not stored
// (absent pairs are implicitly zero).
func (m *Matrix) Add(taxon, sample string, v float64) {
	taxon = canon(taxon)
	if taxon == "" {
		return
	}
	sample = sampleID(sample)
	if sample == "" {
		return
	}
	m.samples[sample] = true
	if v <= 0 {
		return
	}

	obs, ok := m.taxon[taxon]
	if !ok {
		obs = make(map[string]float64)
		m.taxon[taxon] = obs
	}
	obs[sample] = v
}

// AddSample adds a sample
// without any observation.
func (m *Matrix) AddSample(sample string) {
	sample = sampleID(sample)
	if sample == "" {
		return
	}
	m.samples[sample] = true
}

// Abundance returns the abundance of a taxon
// on a given sample.
func (m *Matrix) Abundance(taxon, sample string) float64 {
	taxon = canon(taxon)
	sample = sampleID(sample)
	return m.taxon[taxon][sample]
}

// Obs returns the samples with a nonzero abundance
// for a taxon.
func (m *Matrix) Obs(taxon string) []string {
	taxon = canon(taxon)
	tx, ok := m.taxon[taxon]
	if !ok {
		return nil
	}
	obs := make([]string, 0, len(tx))
	for s := range tx {
		obs = append(obs, s)
	}
	slices.Sort(obs)
	return obs
}

// Samples returns the samples defined in the matrix,
// including samples in which no taxon was observed.
func (m *Matrix) Samples() []string {
	samples := make([]string, 0, len(m.samples))
	for s := range m.samples {
		samples = append(samples, s)
	}
	slices.Sort(samples)
	return samples
}

// Taxa returns the taxa with at least one
// nonzero abundance observation.
func (m *Matrix) Taxa() []string {
	taxa := make([]string, 0, len(m.taxon))
	for tx := range m.taxon {
		taxa = append(taxa, tx)
	}
	slices.Sort(taxa)
	return taxa
}

// Total returns the summed abundance of a taxon
// over all samples.
func (m *Matrix) Total(taxon string) float64 {
	taxon = canon(taxon)
	var sum float64
	for _, v := range m.taxon[taxon] {
		sum += v
	}
	return sum
}

// SampleTotal returns the summed abundance of all taxa
// on a given sample.
func (m *Matrix) SampleTotal(sample string) float64 {
	sample = sampleID(sample)
	var sum float64
	for _, obs := range m.taxon {
		sum += obs[sample]
	}
	return sum
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

// SampleID returns a sample identifier
// with its space normalized.
// Sample identifiers are case sensitive.
func sampleID(sample string) string {
	return strings.Join(strings.Fields(sample), " ")
}
