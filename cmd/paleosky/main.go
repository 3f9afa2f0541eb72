// Command paleosky renders ancient skies and searches for monument
// alignments.
package main

import (
	"os"

	"github.com/paleosky/paleosky/internal/cli"
)

// Injected via ldflags at build time.
var (
	commit = "unknown"
	date   = "unknown"
)

func main() {
	cli.SetBuildInfo(commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
