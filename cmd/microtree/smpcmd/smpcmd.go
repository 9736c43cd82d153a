// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package smpcmd is a metapackage for commands
// that dealt with sample metadata.
package smpcmd

import (
	"github.com/js-arias/command"
	"github.com/js-arias/microtree/cmd/microtree/smpcmd/add"
)

var Command = &command.Command{
	Usage: "samples <command> [<argument>...]",
	Short: "commands for sample metadata",
}

func init() {
	Command.Add(add.Command)
}
