// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add taxonomic assignments
// to a microtree project.
package add

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/js-arias/command"
	"github.com/js-arias/microtree/project"
	"github.com/js-arias/microtree/taxonomy"
)

var Command = &command.Command{
	Usage: `add [-f|--file <taxonomy-file>]
	<project-file> [<taxonomy-file>...]`,
	Short: "add taxonomic assignments to a microtree project",
	Long: `
Command add reads one or more tab-delimited files with taxonomic assignments,
and add the assignments to a microtree project.

The first argument of the command is the name of the project file.

One or more taxonomy files can be given as arguments. If no file is given the
assignments will be read from the standard input.

Each input file is a table with a "taxon" column and one column per taxonomic
rank. All input files, as well as the taxonomy already defined for the
project, must have the same ranks, in the same order. If a taxon appears in
more than one file, the last read assignment will be used.

By default the assignments will be stored in the taxonomy file currently
defined for the project. If the project does not have a taxonomy file, a new
one will be created with the name 'taxonomy.tab'. A different file name can be
defined with the flag --file or -f. If this flag is used, and there is a
taxonomy file already defined, then the new file will be created, and used as
taxonomy file (previously defined assignments will be kept).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var outFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&outFile, "file", "", "")
	c.Flags().StringVar(&outFile, "f", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	tx, err := addAssignments(c.Stdin(), p, args[1:])
	if err != nil {
		return err
	}

	tf := p.Path(project.Taxonomy)
	if tf == "" {
		tf = "taxonomy.tab"
	}
	if outFile != "" {
		tf = outFile
	}
	if err := writeTaxonomy(tf, tx); err != nil {
		return err
	}

	if p.Path(project.Taxonomy) != tf {
		p.Add(project.Taxonomy, tf)
		if err := p.Write(); err != nil {
			return err
		}
	}
	return nil
}

func addAssignments(r io.Reader, p *project.Project, files []string) (*taxonomy.Taxonomy, error) {
	var tx *taxonomy.Taxonomy

	if p.Path(project.Taxonomy) != "" {
		var err error
		tx, err = p.Taxonomy()
		if err != nil {
			return nil, err
		}
	}

	if len(files) == 0 {
		files = append(files, "-")
	}
	for _, f := range files {
		nt, err := readTaxonomy(r, f)
		if err != nil {
			return nil, err
		}
		if tx == nil {
			tx = nt
			continue
		}
		if !reflect.DeepEqual(tx.Ranks(), nt.Ranks()) {
			return nil, fmt.Errorf("when adding assignments from %q: got ranks %v, want %v", f, nt.Ranks(), tx.Ranks())
		}

		for _, tax := range nt.Taxa() {
			vals := make([]string, 0, len(nt.Ranks()))
			for _, rank := range nt.Ranks() {
				vals = append(vals, nt.Value(tax, rank))
			}
			tx.Add(tax, vals...)
		}
	}
	return tx, nil
}

func readTaxonomy(r io.Reader, name string) (*taxonomy.Taxonomy, error) {
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	tx, err := taxonomy.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return tx, nil
}

func writeTaxonomy(name string, tx *taxonomy.Taxonomy) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tx.TSV(f); err != nil {
		return fmt.Errorf("while writing %q: %v", name, err)
	}
	return nil
}
