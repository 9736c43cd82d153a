// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxcmd is a metapackage for commands
// that dealt with taxonomic assignments.
package taxcmd

import (
	"github.com/js-arias/command"
	"github.com/js-arias/microtree/cmd/microtree/taxcmd/add"
)

var Command = &command.Command{
	Usage: "taxonomy <command> [<argument>...]",
	Short: "commands for taxonomic assignments",
}

func init() {
	Command.Add(add.Command)
}
