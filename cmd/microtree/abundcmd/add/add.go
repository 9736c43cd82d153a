// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add abundance observations
// to a microtree project.
package add

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/microtree/abundance"
	"github.com/js-arias/microtree/project"
)

var Command = &command.Command{
	Usage: `add [-f|--file <abundance-file>] [--filter]
	<project-file> [<abundance-file>...]`,
	Short: "add abundance observations to a microtree project",
	Long: `
Command add reads one or more tab-delimited files with abundance counts, and
add the observations to a microtree project.

The first argument of the command is the name of the project file.

One or more abundance files can be given as arguments. If no file is given the
observations will be read from the standard input.

Each input file is a table with a "taxon" column and one column per sample.
If a taxon-sample pair appears in more than one file, the abundances will be
summed.

By default, all taxon observations will be added. If the flag --filter is
defined and there are trees in the project, then it will add only the
observations for the taxon names present in the trees.

By default the observations will be stored in the abundance file currently
defined for the project. If the project does not have an abundance file, a new
one will be created with the name 'abundance.tab'. A different file name can
be defined with the flag --file or -f. If this flag is used, and there is an
abundance file already defined, then the new file will be created, and used as
abundance file (previously defined observations will be kept).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var outFile string
var filterFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&outFile, "file", "", "")
	c.Flags().StringVar(&outFile, "f", "", "")
	c.Flags().BoolVar(&filterFlag, "filter", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	m, err := addObservations(c.Stdin(), p, args[1:])
	if err != nil {
		return err
	}

	af := p.Path(project.Abundance)
	if af == "" {
		af = "abundance.tab"
	}
	if outFile != "" {
		af = outFile
	}
	if err := writeMatrix(af, m); err != nil {
		return err
	}

	if p.Path(project.Abundance) != af {
		p.Add(project.Abundance, af)
		if err := p.Write(); err != nil {
			return err
		}
	}
	return nil
}

func addObservations(r io.Reader, p *project.Project, files []string) (*abundance.Matrix, error) {
	m := abundance.New()

	if p.Path(project.Abundance) != "" {
		var err error
		m, err = p.Abundance()
		if err != nil {
			return nil, err
		}
	}

	var filter map[string]bool
	if filterFlag {
		var err error
		filter, err = makeFilter(p)
		if err != nil {
			return nil, err
		}
	}

	if len(files) == 0 {
		files = append(files, "-")
	}
	for _, f := range files {
		nm, err := readMatrix(r, f)
		if err != nil {
			return nil, err
		}

		for _, s := range nm.Samples() {
			m.AddSample(s)
		}
		for _, tx := range nm.Taxa() {
			if filterFlag {
				if !filter[tx] {
					continue
				}
			}
			for _, s := range nm.Obs(tx) {
				v := m.Abundance(tx, s) + nm.Abundance(tx, s)
				m.Add(tx, s, v)
			}
		}
	}
	return m, nil
}

func readMatrix(r io.Reader, name string) (*abundance.Matrix, error) {
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

	m, err := abundance.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return m, nil
}

func writeMatrix(name string, m *abundance.Matrix) (err error) {
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

	if err := m.TSV(f); err != nil {
		return fmt.Errorf("while writing %q: %v", name, err)
	}
	return nil
}

func makeFilter(p *project.Project) (map[string]bool, error) {
	c, err := p.Trees()
	if err != nil {
		return nil, err
	}

	terms := make(map[string]bool)
	for _, tn := range c.Names() {
		t := c.Tree(tn)
		if t == nil {
			continue
		}
		for _, tax := range t.Terms() {
			terms[tax] = true
		}
	}

	return terms, nil
}
