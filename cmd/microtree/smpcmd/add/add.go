// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add sample metadata
// to a microtree project.
package add

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/microtree/project"
	"github.com/js-arias/microtree/samples"
)

var Command = &command.Command{
	Usage: `add [-f|--file <samples-file>]
	<project-file> [<samples-file>...]`,
	Short: "add sample metadata to a microtree project",
	Long: `
Command add reads one or more tab-delimited files with sample metadata, and
add the metadata to a microtree project.

The first argument of the command is the name of the project file.

One or more metadata files can be given as arguments. If no file is given the
metadata will be read from the standard input.

Each input file is a table with a "sample" column and one column per sample
attribute. Different files can have different attributes; if a sample-attribute
pair appears in more than one file, the last read value will be used.

By default the metadata will be stored in the samples file currently defined
for the project. If the project does not have a samples file, a new one will
be created with the name 'samples.tab'. A different file name can be defined
with the flag --file or -f. If this flag is used, and there is a samples file
already defined, then the new file will be created, and used as samples file
(previously defined metadata will be kept).
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

	md, err := addMetadata(c.Stdin(), p, args[1:])
	if err != nil {
		return err
	}

	sf := p.Path(project.Samples)
	if sf == "" {
		sf = "samples.tab"
	}
	if outFile != "" {
		sf = outFile
	}
	if err := writeMetadata(sf, md); err != nil {
		return err
	}

	if p.Path(project.Samples) != sf {
		p.Add(project.Samples, sf)
		if err := p.Write(); err != nil {
			return err
		}
	}
	return nil
}

func addMetadata(r io.Reader, p *project.Project, files []string) (*samples.Metadata, error) {
	md := samples.New()

	if p.Path(project.Samples) != "" {
		var err error
		md, err = p.Samples()
		if err != nil {
			return nil, err
		}
	}

	if len(files) == 0 {
		files = append(files, "-")
	}
	for _, f := range files {
		nm, err := readMetadata(r, f)
		if err != nil {
			return nil, err
		}

		for _, s := range nm.Samples() {
			for _, fd := range nm.Fields() {
				v := nm.Value(s, fd)
				if v == "" {
					continue
				}
				md.Add(s, fd, v)
			}
		}
	}
	return md, nil
}

func readMetadata(r io.Reader, name string) (*samples.Metadata, error) {
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

	md, err := samples.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return md, nil
}

func writeMetadata(name string, md *samples.Metadata) (err error) {
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

	if err := md.TSV(f); err != nil {
		return fmt.Errorf("while writing %q: %v", name, err)
	}
	return nil
}
