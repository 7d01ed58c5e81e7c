package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docforge/ansimark/internal/logging"
	"github.com/docforge/ansimark/internal/ui/pretty"
	"github.com/docforge/ansimark/pkg/markup"
)

type checkFlags struct {
	strict    bool
	noContext bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Parse markup and report diagnostics without rendering",
		Long: `Parse Ansible documentation markup and report diagnostics.

Nothing is rendered; the exit code reflects whether the input parsed
cleanly. Useful for validating documentation strings in CI.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false,
		"treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false,
		"hide source line context in diagnostics")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.FromContext(cmd.Context())

	paragraphs, err := collectParagraphs(cmd.InOrStdin(), args)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	docs := make([]*markup.Document, 0, len(paragraphs))
	perDoc := make([][]markup.Diagnostic, 0, len(paragraphs))
	var diags []markup.Diagnostic
	for _, paragraph := range paragraphs {
		doc, paragraphDiags := markup.Parse(paragraph)
		docs = append(docs, doc)
		perDoc = append(perDoc, paragraphDiags)
		diags = append(diags, paragraphDiags...)
	}

	logger.Debug("checked input",
		logging.FieldParagraphs, len(paragraphs),
		logging.FieldDiagnostics, len(diags),
	)

	reportDiagnostics(cmd, docs, perDoc, diags, flags.noContext)
	if len(diags) == 0 {
		colorMode, err := cmd.Flags().GetString("color")
		if err != nil {
			colorMode = "auto"
		}
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatSummaryOneLine(nil))
	}

	if code := ExitCodeFromDiagnostics(diags, flags.strict); code != ExitSuccess {
		return &ExitCodeError{Code: code}
	}
	return nil
}
