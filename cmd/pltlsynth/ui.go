package main

import (
	"os"

	"github.com/hashicorp/cli"
)

// newUi builds the same plain stdout/stderr Ui every subcommand writes
// through, so tests can swap in an in-memory cli.Ui without touching
// Run's logic.
func newUi() cli.Ui {
	return &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}
}
