// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package samples

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadTSV reads a sample metadata table from a TSV file.
//
// The TSV file must contain a sample field
// with the sample identifiers;
// any other field is interpreted as an attribute.
//
// Here is an example file:
//
//	sample	depth	location
//	ERR1092158	0.05	gut
//	ERR1092159	0.15	gut
//	ERR1092160	0.40	skin
func ReadTSV(r io.Reader) (*Metadata, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	smpCol := -1
	fields := make(map[int]string, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.Join(strings.Fields(h), " "))
		if h == "sample" {
			smpCol = i
			continue
		}
		if h == "" {
			continue
		}
		fields[i] = h
	}
	if smpCol < 0 {
		return nil, fmt.Errorf("expecting field %q", "sample")
	}

	md := New()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		s := sampleID(row[smpCol])
		if s == "" {
			continue
		}
		for i, f := range fields {
			md.Add(s, f, row[i])
		}
	}
	return md, nil
}

// TSV writes a sample metadata table as a TSV file.
func (md *Metadata) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	fields := md.Fields()
	header := append([]string{"sample"}, fields...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, s := range md.Samples() {
		row := make([]string, 0, len(fields)+1)
		row = append(row, s)
		for _, f := range fields {
			row = append(row, md.Value(s, f))
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
