// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package widget_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/js-arias/microtree/widget"
)

func TestWrite(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg"><circle cx="10" cy="10" r="3" data-tip="ERR1092158"></circle></svg>`

	var w bytes.Buffer
	if err := widget.Write(&w, "gut-otus", []byte(svg)); err != nil {
		t.Fatalf("unable to write widget: %v", err)
	}
	out := w.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>gut-otus</title>",
		svg,
		"data-tip",
		"<script>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output without %q", want)
		}
	}

	// no external resources outside the SVG content
	rest := strings.Replace(out, svg, "", 1)
	for _, bad := range []string{"http://", "https://", "src="} {
		if strings.Contains(rest, bad) {
			t.Errorf("output with external resource %q", bad)
		}
	}
}

func TestWriteEscapesTitle(t *testing.T) {
	var w bytes.Buffer
	if err := widget.Write(&w, "<gut&otus>", []byte("<svg></svg>")); err != nil {
		t.Fatalf("unable to write widget: %v", err)
	}
	if strings.Contains(w.String(), "<title><gut&otus></title>") {
		t.Errorf("title not escaped")
	}
	if !strings.Contains(w.String(), "&lt;gut&amp;otus&gt;") {
		t.Errorf("expecting escaped title")
	}
}
