// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Command atlas runs the Project Atlas pipeline from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/tomtom215/projectatlas/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "atlas:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
