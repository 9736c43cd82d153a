// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxa implements a command to print
// the list of taxa with abundance observations in a microtree project.
package taxa

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/microtree/project"
	"github.com/js-arias/microtree/taxonomy"
)

var Command = &command.Command{
	Usage: "taxa [--count] <project-file>",
	Short: "print a list of taxa with abundance observations",
	Long: `
Command taxa reads the abundance matrix from a microtree project and print the
name of the taxa in the standard output.

The argument of the command is the name of the project file.

If the flag --count is defined, the number of samples in which each taxon was
observed, and the sum of its abundances, will be printed next to the taxon
name, as a tab-delimited table. If the project has a taxonomy, the lowest
known rank value of the taxon will be printed as an additional column.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var countFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&countFlag, "count", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	m, err := p.Abundance()
	if err != nil {
		return err
	}

	if !countFlag {
		for _, tax := range m.Taxa() {
			fmt.Fprintf(c.Stdout(), "%s\n", tax)
		}
		return nil
	}

	var tx *taxonomy.Taxonomy
	if p.Path(project.Taxonomy) != "" {
		tx, err = p.Taxonomy()
		if err != nil {
			return err
		}
	}

	for _, tax := range m.Taxa() {
		obs := len(m.Obs(tax))
		tot := m.Total(tax)
		if tx != nil {
			fmt.Fprintf(c.Stdout(), "%s\t%d\t%g\t%s\n", tax, obs, tot, tx.LowestKnown(tax))
			continue
		}
		fmt.Fprintf(c.Stdout(), "%s\t%d\t%g\n", tax, obs, tot)
	}
	return nil
}
