// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxonomy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadTSV reads a taxonomy from a TSV file.
//
// The TSV file must contain a taxon field
// with the taxon names;
// any other field is interpreted as a rank,
// in the order of the header.
// Empty cells,
// or cells with the value "NA",
// are unknown ranks.
//
// Here is an example file:
//
//	taxon	kingdom	phylum	class	order	family	genus
//	Akkermansia muciniphila	Bacteria	Verrucomicrobia	Verrucomicrobiae	Verrucomicrobiales	Verrucomicrobiaceae	Akkermansia
//	Bacteroides fragilis	Bacteria	Bacteroidetes	Bacteroidia	Bacteroidales	Bacteroidaceae	Bacteroides
//	Otu0042	Bacteria	Proteobacteria	NA	NA	NA	NA
func ReadTSV(r io.Reader) (*Taxonomy, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	taxCol := -1
	cols := make([]int, 0, len(head))
	ranks := make([]string, 0, len(head))
	for i, h := range head {
		if strings.ToLower(h) == "taxon" {
			taxCol = i
			continue
		}
		r := strings.ToLower(strings.Join(strings.Fields(h), " "))
		if r == "" {
			continue
		}
		cols = append(cols, i)
		ranks = append(ranks, r)
	}
	if taxCol < 0 {
		return nil, fmt.Errorf("expecting field %q", "taxon")
	}
	if len(ranks) == 0 {
		return nil, fmt.Errorf("expecting at least one rank field")
	}

	tx := New(ranks...)
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		tax := canon(row[taxCol])
		if tax == "" {
			continue
		}

		vals := make([]string, 0, len(cols))
		for _, i := range cols {
			vals = append(vals, row[i])
		}
		tx.Add(tax, vals...)
	}
	return tx, nil
}

// TSV writes a taxonomy as a TSV file.
// Unknown ranks are written as "NA".
func (tx *Taxonomy) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := append([]string{"taxon"}, tx.ranks...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, tax := range tx.Taxa() {
		row := make([]string, 0, len(tx.ranks)+1)
		row = append(row, tax)
		for _, v := range tx.taxon[tax] {
			if v == "" {
				v = "NA"
			}
			row = append(row, v)
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
