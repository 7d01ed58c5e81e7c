// Package cli provides the Cobra command structure for ansimark.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/docforge/ansimark/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root ansimark command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "ansimark",
		Short: "Parse and render Ansible documentation markup",
		Long: `ansimark parses the inline macro markup used in Ansible module
documentation (B(), I(), C(), M(), L(), and friends) and renders it as
plain text, reStructuredText, HTML, or Markdown.

Parsing never fails: malformed input degrades to literal text and the
problems are reported as diagnostics on stderr.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize diagnostics: auto, always, never")

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
