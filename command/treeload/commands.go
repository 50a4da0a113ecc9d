// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/exitwithstatus"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--print] --config-file=FILE\n", program)
		fmt.Printf("       --help             -h            this message\n")
		fmt.Printf("       --verbose          -v            show the configuration before loading\n")
		fmt.Printf("       --version          -V            display version\n")
		fmt.Printf("       --config-file=FILE -c FILE       Lua file listing the data set\n")
		fmt.Printf("       --print            -p            draw the tree after loading\n")
		fmt.Printf("\n")

	default:
		fmt.Printf("unknown command: %q\n", command)
		exitwithstatus.Exit(1)
	}

	// indicate processing complete and prefor normal exit from main
	return true
}

// show the configuration as indented JSON
func printConfiguration(w io.Writer, c *Configuration) {
	b, err := json.MarshalIndent(c, "", "  ")
	if nil != err {
		fmt.Fprintf(w, "configuration error: %s\n", err)
		return
	}
	fmt.Fprintf(w, "%s\n", b)
}
