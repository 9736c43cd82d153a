// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package widget exports a tree drawing
// as a standalone interactive HTML document.
//
// The document embeds the SVG drawing,
// and a small script
// that shows the hover text of each annotation point,
// taken from its data-tip attribute.
// The result has no external resources,
// so it can be opened from any location.
package widget

import (
	"fmt"
	"html/template"
	"io"
)

type page struct {
	Title string
	SVG   template.HTML
}

// Write writes a standalone HTML document
// with an interactive version
// of an SVG tree drawing.
//
// The SVG content is inserted as is,
// so it must be a valid SVG document
// produced by the plotsvg package.
func Write(w io.Writer, title string, svg []byte) error {
	p := page{
		Title: title,
		SVG:   template.HTML(svg),
	}
	if err := tmpl.Execute(w, p); err != nil {
		return fmt.Errorf("while writing widget %q: %v", title, err)
	}
	return nil
}

var tmpl = template.Must(template.New("widget").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
body {
	font-family: Verdana, sans-serif;
	margin: 20px;
}
h1 {
	font-size: 1.2em;
}
#tooltip {
	position: absolute;
	display: none;
	padding: 4px 8px;
	background: #333;
	color: #fff;
	font-size: 12px;
	border-radius: 4px;
	pointer-events: none;
	white-space: pre;
}
svg [data-tip]:hover {
	stroke: black;
	stroke-width: 1;
}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div id="plot">
{{.SVG}}
</div>
<div id="tooltip"></div>
<script>
var tip = document.getElementById("tooltip");
document.querySelectorAll("svg [data-tip]").forEach(function (el) {
	el.addEventListener("mousemove", function (ev) {
		tip.textContent = el.getAttribute("data-tip");
		tip.style.left = (ev.pageX + 12) + "px";
		tip.style.top = (ev.pageY + 12) + "px";
		tip.style.display = "block";
	});
	el.addEventListener("mouseleave", function () {
		tip.style.display = "none";
	});
});
</script>
</body>
</html>
`))
