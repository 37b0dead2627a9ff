package main

import (
	"errors"
	"fmt"
	"os"

	"commitfmt/internal/cmd"
	"commitfmt/internal/prompt"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	if err := cmd.Execute(version, commit, buildTime); err != nil {
		// The cancellation notice has already been printed.
		if !errors.Is(err, prompt.ErrCancelled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
