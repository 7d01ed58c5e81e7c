package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docforge/ansimark/internal/logging"
	"github.com/docforge/ansimark/internal/ui/pretty"
	"github.com/docforge/ansimark/pkg/markup"
	"github.com/docforge/ansimark/pkg/render"
)

// ErrParseIssues is returned when the input produced error diagnostics.
var ErrParseIssues = errors.New("parse issues found")

type renderFlags struct {
	format    string
	docsite   string
	strict    bool
	noContext bool
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Render markup to an output format",
		Long: `Render Ansible documentation markup to an output format.

Each argument is rendered as one paragraph. Without arguments, input is
read from stdin and blank lines separate paragraphs.

Examples:
  ansimark render "The B(module) is C(here)."
  ansimark render --format html "See M(ansible.builtin.copy)."
  ansimark render -f rst < description.txt
  ansimark render -f html --docsite https://docs.ansible.com/ansible/latest "M(ansible.builtin.copy)"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "text",
		"output format: text, rst, html, markdown")
	cmd.Flags().StringVar(&flags.docsite, "docsite", "",
		"documentation site base URL used to link module references")
	cmd.Flags().BoolVar(&flags.strict, "strict", false,
		"treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false,
		"hide source line context in diagnostics")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	logger := logging.FromContext(cmd.Context())

	format, err := render.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	paragraphs, err := collectParagraphs(cmd.InOrStdin(), args)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	logger.Debug("rendering input",
		logging.FieldFormat, format,
		logging.FieldParagraphs, len(paragraphs),
	)

	var links render.LinkResolver = render.NoLinks{}
	if flags.docsite != "" {
		links = render.Docsite{Base: flags.docsite}
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

	out, err := render.RenderParagraphsWith(docs, format, links)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	reportDiagnostics(cmd, docs, perDoc, diags, flags.noContext)

	if code := ExitCodeFromDiagnostics(diags, flags.strict); code != ExitSuccess {
		return &ExitCodeError{Code: code}
	}
	return nil
}

// collectParagraphs turns CLI args into paragraphs, or splits stdin on
// blank lines when no args are given.
func collectParagraphs(stdin io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, err
	}
	input := strings.TrimRight(string(data), "\n")
	if input == "" {
		return nil, nil
	}
	paragraphs := strings.Split(input, "\n\n")
	for i, p := range paragraphs {
		paragraphs[i] = strings.ReplaceAll(p, "\n", " ")
	}
	return paragraphs, nil
}

func reportDiagnostics(cmd *cobra.Command, docs []*markup.Document, perDoc [][]markup.Diagnostic, diags []markup.Diagnostic, noContext bool) {
	if len(diags) == 0 {
		return
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	errWriter := cmd.ErrOrStderr()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, errWriter))

	// Diagnostic offsets are relative to their own paragraph.
	for i, doc := range docs {
		for j := range perDoc[i] {
			fmt.Fprint(errWriter, styles.FormatDiagnostic(&perDoc[i][j], doc.Source, !noContext))
		}
	}
	fmt.Fprint(errWriter, styles.FormatSummaryOneLine(diags))
}
