package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docforge/ansimark/internal/cli"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "none", Date: "unknown"})

	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRenderCommand(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "", "render", "--color", "never", "The B(module) is C(here).")
	require.NoError(t, err)
	assert.Equal(t, "The *module* is `here'.\n", stdout)
	assert.Empty(t, stderr)
}

func TestRenderCommandFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{"text", "*bold*\n"},
		{"html", "<p><b>bold</b></p>\n"},
		{"markdown", "<b>bold</b>\n"},
		{"rst", "\\ :strong:`bold`\\ \n"},
	}
	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.format, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, "", "render", "--color", "never",
				"--format", testCase.format, "B(bold)")
			require.NoError(t, err)
			assert.Equal(t, testCase.want, stdout)
		})
	}
}

func TestRenderCommandInvalidFormat(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "render", "--format", "pdf", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRenderCommandStdinParagraphs(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "first B(one)\n\nsecond I(two)\n",
		"render", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, "first *one*\n\nsecond `two'\n", stdout)
}

func TestRenderCommandHTMLParagraphs(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "first\n\nsecond\n",
		"render", "--color", "never", "--format", "html")
	require.NoError(t, err)
	assert.Equal(t, "<p>first</p><p>second</p>\n", stdout)
}

func TestRenderCommandDocsiteLinks(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "render", "--color", "never",
		"--format", "html",
		"--docsite", "https://docs.example.com",
		"M(ansible.builtin.copy)")
	require.NoError(t, err)
	assert.Equal(t,
		"<p><a href='https://docs.example.com/collections/ansible/builtin/copy_module.html'>ansible.builtin.copy</a></p>\n",
		stdout)
}

func TestRenderCommandReportsDiagnostics(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "", "render", "--color", "never", "B(never closed")
	require.ErrorIs(t, err, cli.ErrParseIssues)
	assert.Equal(t, "B(never closed\n", stdout, "output is still produced")
	assert.Contains(t, stderr, "unterminated-macro")
	assert.Contains(t, stderr, "1 issue")
}

func TestRenderCommandWarningsAreNotFatal(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "", "render", "--color", "never", "M(debug)")
	require.NoError(t, err)
	assert.Equal(t, "[debug]\n", stdout)
	assert.Contains(t, stderr, "argument-shape")
}

func TestRenderCommandStrictPromotesWarnings(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "render", "--color", "never", "--strict", "M(debug)")
	require.ErrorIs(t, err, cli.ErrParseIssues)
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "check", "--color", "never", "all B(good) here")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No issues found")
}

func TestCheckCommandFindsIssues(t *testing.T) {
	t.Parallel()

	_, stderr, err := execute(t, "", "check", "--color", "never", "L(onlyonearg)")
	require.ErrorIs(t, err, cli.ErrParseIssues)
	assert.Contains(t, stderr, "arity-mismatch")
}

func TestExitCodeFromDiagnostics(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromDiagnostics(nil, false))
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromDiagnostics(nil, true))
}

func TestRenderCommandErrorExitCode(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "render", "--color", "never", "B(never closed")
	var exitErr *cli.ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, cli.ExitParseErrors, exitErr.Code)
}

func TestRenderCommandStrictWarningExitCode(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "render", "--color", "never", "--strict", "M(debug)")
	var exitErr *cli.ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, cli.ExitParseWarnings, exitErr.Code)
}
