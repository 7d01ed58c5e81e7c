// Package main is the entry point for the ansimark CLI.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/docforge/ansimark/internal/cli"
	"github.com/docforge/ansimark/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)
	ctx := logging.WithLogger(context.Background(), logging.Default())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Parse issues carry their own exit code and are already reported
		// on stderr; anything else is a command failure.
		var exitErr *cli.ExitCodeError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		logging.Default().Error("command failed", logging.FieldError, err)
		return 1
	}

	return 0
}
