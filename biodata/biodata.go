// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package biodata binds the datasets of a microtree project
// into a single composite dataset
// keyed by shared taxon and sample identifiers.
package biodata

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/js-arias/microtree/abundance"
	"github.com/js-arias/microtree/project"
	"github.com/js-arias/microtree/samples"
	"github.com/js-arias/microtree/taxonomy"
	"github.com/js-arias/timetree"
)

// A Dataset is a composite collection
// of the datasets of a project.
// Trees are always required;
// the other datasets might be nil.
type Dataset struct {
	Trees     *timetree.Collection
	Abundance *abundance.Matrix
	Taxonomy  *taxonomy.Taxonomy
	Samples   *samples.Metadata
}

// ErrMissingTree is returned when a dataset
// is assembled or validated
// without a phylogenetic tree.
var ErrMissingTree = errors.New("dataset without trees")

// A MismatchError is an error
// produced by identifiers of a table
// that do not match the identifiers
// of the tree or another table.
type MismatchError struct {
	// Table is the dataset with the offending identifiers.
	Table project.Dataset

	// Detail describes the violated constraint.
	Detail string

	// Names are the offending identifiers.
	Names []string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("table %s: %s: %s", e.Table, e.Detail, strings.Join(e.Names, ", "))
}

// Read assembles a composite dataset
// from the files defined in a project.
// The project must define a tree file;
// any other dataset is optional
// and will be nil if undefined.
func Read(p *project.Project) (*Dataset, error) {
	if p.Path(project.Trees) == "" {
		return nil, fmt.Errorf("on project %q: %w", p.Name(), ErrMissingTree)
	}
	tc, err := p.Trees()
	if err != nil {
		return nil, err
	}

	d := &Dataset{Trees: tc}
	if p.Path(project.Abundance) != "" {
		if d.Abundance, err = p.Abundance(); err != nil {
			return nil, err
		}
	}
	if p.Path(project.Taxonomy) != "" {
		if d.Taxonomy, err = p.Taxonomy(); err != nil {
			return nil, err
		}
	}
	if p.Path(project.Samples) != "" {
		if d.Samples, err = p.Samples(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Validate checks the referential consistency
// of the dataset tables
// against the terminals of the named tree:
// abundance taxa must be a subset of the tree terminals,
// taxonomy taxa must be equal to the tree terminals,
// and metadata samples must be equal
// to the abundance samples.
// Violations are reported as a MismatchError
// with the offending identifiers;
// rows are never dropped silently.
func (d *Dataset) Validate(treeName string) error {
	if d.Trees == nil {
		return ErrMissingTree
	}
	t := d.Trees.Tree(treeName)
	if t == nil {
		return fmt.Errorf("tree %q not in dataset", treeName)
	}

	terms := make(map[string]bool)
	for _, tax := range t.Terms() {
		terms[tax] = true
	}

	if d.Abundance != nil {
		var bad []string
		for _, tax := range d.Abundance.Taxa() {
			if !terms[tax] {
				bad = append(bad, tax)
			}
		}
		if len(bad) > 0 {
			return &MismatchError{
				Table:  project.Abundance,
				Detail: fmt.Sprintf("taxa not in tree %q", treeName),
				Names:  bad,
			}
		}
	}

	if d.Taxonomy != nil {
		var bad []string
		for _, tax := range d.Taxonomy.Taxa() {
			if !terms[tax] {
				bad = append(bad, tax)
			}
		}
		if len(bad) > 0 {
			return &MismatchError{
				Table:  project.Taxonomy,
				Detail: fmt.Sprintf("taxa not in tree %q", treeName),
				Names:  bad,
			}
		}

		bad = nil
		for tax := range terms {
			if !d.Taxonomy.HasTaxon(tax) {
				bad = append(bad, tax)
			}
		}
		if len(bad) > 0 {
			slices.Sort(bad)
			return &MismatchError{
				Table:  project.Taxonomy,
				Detail: "tree terminals without classification",
				Names:  bad,
			}
		}
	}

	if d.Samples != nil && d.Abundance != nil {
		known := make(map[string]bool)
		var bad []string
		for _, s := range d.Abundance.Samples() {
			known[s] = true
			if !d.Samples.HasSample(s) {
				bad = append(bad, s)
			}
		}
		if len(bad) > 0 {
			return &MismatchError{
				Table:  project.Samples,
				Detail: "abundance samples without metadata",
				Names:  bad,
			}
		}

		for _, s := range d.Samples.Samples() {
			if !known[s] {
				bad = append(bad, s)
			}
		}
		if len(bad) > 0 {
			return &MismatchError{
				Table:  project.Samples,
				Detail: "metadata samples not in the abundance matrix",
				Names:  bad,
			}
		}
	}

	return nil
}
