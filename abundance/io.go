// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package abundance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadTSV reads an abundance matrix from a TSV file.
//
// The TSV file must contain a taxon field
// with the taxon names;
// any other field is interpreted as a sample,
// with the field name as the sample identifier,
// and the cell value as the abundance
// of the taxon on that sample.
// Empty cells are read as zero.
//
// Here is an example file:
//
//	taxon	ERR1092158	ERR1092159	ERR1092160
//	Akkermansia muciniphila	120	0	35
//	Bacteroides fragilis	54	981	12
//	Faecalibacterium prausnitzii	0	15	230
func ReadTSV(r io.Reader) (*Matrix, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	taxCol := -1
	samples := make(map[int]string, len(head))
	for i, h := range head {
		if strings.ToLower(h) == "taxon" {
			taxCol = i
			continue
		}
		s := sampleID(h)
		if s == "" {
			continue
		}
		samples[i] = s
	}
	if taxCol < 0 {
		return nil, fmt.Errorf("expecting field %q", "taxon")
	}

	m := New()
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

		for i, s := range samples {
			cell := strings.TrimSpace(row[i])
			if cell == "" {
				m.Add(tax, s, 0)
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d: sample %q: %v", ln, s, err)
			}
			if v < 0 {
				return nil, fmt.Errorf("on row %d: sample %q: negative abundance: %.6f", ln, s, v)
			}
			m.Add(tax, s, v)
		}
	}
	return m, nil
}

// TSV writes an abundance matrix as a TSV file.
func (m *Matrix) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	samples := m.Samples()
	header := append([]string{"taxon"}, samples...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, tx := range m.Taxa() {
		row := make([]string, 0, len(samples)+1)
		row = append(row, tx)
		for _, s := range samples {
			v := m.Abundance(tx, s)
			if v == 0 {
				row = append(row, "0")
				continue
			}
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
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
