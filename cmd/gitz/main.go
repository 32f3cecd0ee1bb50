// Package main is the entry point for the gitz CLI.
package main

import (
	"errors"
	"os"

	"github.com/gitzsh/gitz/cmd/gitz/commands"
	gitzerrors "github.com/gitzsh/gitz/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exitErr *gitzerrors.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
