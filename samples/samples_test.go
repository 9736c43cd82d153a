// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package samples_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/microtree/samples"
)

func TestMetadata(t *testing.T) {
	md := newMetadata()

	testMetadata(t, "metadata", md)
}

func TestTSV(t *testing.T) {
	md := newMetadata()

	var w bytes.Buffer
	if err := md.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	r := strings.NewReader(w.String())
	nmd, err := samples.ReadTSV(r)
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}

	testMetadata(t, "tsv", nmd)
}

func newMetadata() *samples.Metadata {
	md := samples.New()

	md.Add("ERR1092158", "depth", "0.05")
	md.Add("ERR1092158", "location", "gut")
	md.Add("ERR1092159", "depth", "0.15")
	md.Add("ERR1092159", "location", "gut")
	md.Add("ERR1092160", "depth", "0.40")
	md.Add("ERR1092160", "location", "skin")
	return md
}

func testMetadata(t testing.TB, name string, md *samples.Metadata) {
	t.Helper()

	ls := []string{"ERR1092158", "ERR1092159", "ERR1092160"}
	if g := md.Samples(); !reflect.DeepEqual(g, ls) {
		t.Errorf("%s: samples: got %v, want %v", name, g, ls)
	}

	fields := []string{"depth", "location"}
	if g := md.Fields(); !reflect.DeepEqual(g, fields) {
		t.Errorf("%s: fields: got %v, want %v", name, g, fields)
	}

	vals := map[string]string{
		"ERR1092158": "gut",
		"ERR1092159": "gut",
		"ERR1092160": "skin",
	}
	for s, w := range vals {
		if g := md.Value(s, "location"); g != w {
			t.Errorf("%s: location of %q: got %q, want %q", name, s, g, w)
		}
	}

	if !md.HasField("depth") {
		t.Errorf("%s: expecting field %q", name, "depth")
	}
	if md.HasField("ph") {
		t.Errorf("%s: unexpected field %q", name, "ph")
	}
	if !md.HasSample("ERR1092160") {
		t.Errorf("%s: expecting sample %q", name, "ERR1092160")
	}
}
