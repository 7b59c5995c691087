// SPDX-License-Identifier: Unlicense OR MIT

// Command strata lays out scene documents and measures text.
//
// Usage:
//
//	strata render [flags] SCENE
//	strata measure [flags] TEXT
//
// Configuration is read from the file named by --config and from
// STRATA_* environment variables, such as STRATA_LAYOUT_WIDTH.
package main

import (
	"os"

	"gioui.org/strata/internal/observability"
)

func main() {
	err := newRootCmd().Execute()
	observability.Sync()
	if err != nil {
		os.Exit(1)
	}
}
