// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Microtree is a tool to visualize microbiome data
// on phylogenetic trees.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/microtree/cmd/microtree/abundcmd"
	"github.com/js-arias/microtree/cmd/microtree/smpcmd"
	"github.com/js-arias/microtree/cmd/microtree/taxcmd"
	"github.com/js-arias/microtree/cmd/microtree/tree"
)

var app = &command.Command{
	Usage: "microtree <command> [<argument>...]",
	Short: "a tool to visualize microbiome data on phylogenetic trees",
}

func init() {
	app.Add(abundcmd.Command)
	app.Add(smpcmd.Command)
	app.Add(taxcmd.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
