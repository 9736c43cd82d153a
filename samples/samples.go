// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package samples provides a table of metadata attributes
// for a set of samples.
package samples

import (
	"slices"
	"strings"
)

// A Metadata is a collection of named attributes
// observed on a set of samples.
// Attributes have no structural meaning;
// they are used for the visual encoding
// of sample observations.
type Metadata struct {
	sample map[string]map[string]string
	fields map[string]bool
}

// New creates a new empty metadata table.
func New() *Metadata {
	return &Metadata{
		sample: make(map[string]map[string]string),
		fields: make(map[string]bool),
	}
}

// Add adds the value of an attribute
// for a given sample.
func (md *Metadata) Add(sample, field, value string) {
	sample = sampleID(sample)
	if sample == "" {
		return
	}
	field = strings.ToLower(strings.Join(strings.Fields(field), " "))
	if field == "" {
		return
	}
	md.fields[field] = true

	attr, ok := md.sample[sample]
	if !ok {
		attr = make(map[string]string)
		md.sample[sample] = attr
	}
	attr[field] = strings.Join(strings.Fields(value), " ")
}

// Fields returns the attribute fields
// defined in the table.
func (md *Metadata) Fields() []string {
	fields := make([]string, 0, len(md.fields))
	for f := range md.fields {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

// HasField returns true if the given field
// is defined in the table.
func (md *Metadata) HasField(field string) bool {
	field = strings.ToLower(strings.Join(strings.Fields(field), " "))
	return md.fields[field]
}

// HasSample returns true if the sample
// is in the table.
func (md *Metadata) HasSample(sample string) bool {
	sample = sampleID(sample)
	_, ok := md.sample[sample]
	return ok
}

// Samples returns the samples in the table.
func (md *Metadata) Samples() []string {
	samples := make([]string, 0, len(md.sample))
	for s := range md.sample {
		samples = append(samples, s)
	}
	slices.Sort(samples)
	return samples
}

// Value returns the value of an attribute
// for a given sample.
func (md *Metadata) Value(sample, field string) string {
	sample = sampleID(sample)
	field = strings.ToLower(strings.Join(strings.Fields(field), " "))
	return md.sample[sample][field]
}

// SampleID returns a sample identifier
// with its space normalized.
// Sample identifiers are case sensitive.
func sampleID(sample string) string {
	return strings.Join(strings.Fields(sample), " ")
}
