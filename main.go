package main

import (
	"os"

	"todo/internal/cli"
	"todo/internal/logging"
)

func main() {
	// Diagnostics only; degrades to a discard logger if the log file
	// cannot be opened.
	_ = logging.Init()

	if err := cli.Execute(); err != nil {
		// Anything surfacing here failed to parse: unknown operation,
		// missing argument, non-numeric id. Domain conditions are reported
		// inside the commands and exit zero; store write failures exit
		// through ExitError directly.
		os.Exit(cli.ExitUsage)
	}
}
