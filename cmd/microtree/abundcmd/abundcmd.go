// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package abundcmd is a metapackage for commands
// that dealt with abundance matrices.
package abundcmd

import (
	"github.com/js-arias/command"
	"github.com/js-arias/microtree/cmd/microtree/abundcmd/add"
	"github.com/js-arias/microtree/cmd/microtree/abundcmd/plot"
	"github.com/js-arias/microtree/cmd/microtree/abundcmd/taxa"
)

var Command = &command.Command{
	Usage: "abundance <command> [<argument>...]",
	Short: "commands for abundance matrices",
}

func init() {
	Command.Add(add.Command)
	Command.Add(plot.Command)
	Command.Add(taxa.Command)
}
