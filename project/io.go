// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/microtree/abundance"
	"github.com/js-arias/microtree/samples"
	"github.com/js-arias/microtree/taxonomy"
	"github.com/js-arias/timetree"
)

// Abundance reads an abundance matrix file
// as defined in a project.
func (p *Project) Abundance() (*abundance.Matrix, error) {
	name := p.Path(Abundance)
	if name == "" {
		return nil, fmt.Errorf("abundance matrix not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := abundance.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return m, nil
}

// Samples reads a sample metadata file
// as defined in a project.
func (p *Project) Samples() (*samples.Metadata, error) {
	name := p.Path(Samples)
	if name == "" {
		return nil, fmt.Errorf("sample metadata not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	md, err := samples.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return md, nil
}

// Taxonomy reads a taxonomy file
// as defined in a project.
func (p *Project) Taxonomy() (*taxonomy.Taxonomy, error) {
	name := p.Path(Taxonomy)
	if name == "" {
		return nil, fmt.Errorf("taxonomy not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tx, err := taxonomy.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return tx, nil
}

// Trees reads a tree collection file
// as defined in a project.
func (p *Project) Trees() (*timetree.Collection, error) {
	name := p.Path(Trees)
	if name == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}
