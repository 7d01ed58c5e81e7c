package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docforge/ansimark/pkg/markup"
	"github.com/docforge/ansimark/pkg/render"
)

func TestNewUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := render.New(render.Format("pdf"))
	require.Error(t, err)

	_, _, err = render.RenderString("text", render.Format("pdf"))
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    render.Format
		wantErr bool
	}{
		{"text", render.FormatText, false},
		{"", render.FormatText, false},
		{"rst", render.FormatRST, false},
		{"html", render.FormatHTML, false},
		{"markdown", render.FormatMarkdown, false},
		{"md", render.FormatMarkdown, false},
		{"pdf", "", true},
	}
	for _, testCase := range tests {
		testCase := testCase
		got, err := render.ParseFormat(testCase.input)
		if testCase.wantErr {
			assert.Error(t, err, "input %q", testCase.input)
			continue
		}
		require.NoError(t, err, "input %q", testCase.input)
		assert.Equal(t, testCase.want, got)
		assert.True(t, got.IsValid())
	}
}

func TestRenderStringDiagnosticsDoNotBlockOutput(t *testing.T) {
	t.Parallel()

	out, diags, err := render.RenderString("L(onlyonearg)", render.FormatText)
	require.NoError(t, err)
	assert.Equal(t, "onlyonearg", out)
	require.Len(t, diags, 1)
	assert.Equal(t, markup.CodeArityMismatch, diags[0].Code)
}

func TestRenderTextOnlyIdempotence(t *testing.T) {
	t.Parallel()

	// Text without macro syntax survives plain-text rendering unchanged.
	const input = "nothing to see here. move along!"
	for _, format := range []render.Format{render.FormatText, render.FormatRST} {
		out, diags, err := render.RenderString(input, format)
		require.NoError(t, err)
		assert.Empty(t, diags)
		assert.Equal(t, input, out, "format %s", format)
	}
}

func TestCrossRendererConsistency(t *testing.T) {
	t.Parallel()

	// Every format must carry the same argument value for the same input.
	const input = "U(https://example.com/?a=1&b=2)"

	text, _, err := render.RenderString(input, render.FormatText)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/?a=1&b=2", text)

	html, _, err := render.RenderString(input, render.FormatHTML)
	require.NoError(t, err)
	assert.Equal(t,
		"<a href='https://example.com/?a=1&amp;b=2'>https://example.com/?a=1&amp;b=2</a>",
		html)
}

func TestRenderConcurrentSameDocument(t *testing.T) {
	t.Parallel()

	doc, _ := markup.Parse("B(bold) and I(italic) and C(code)")

	// The document is immutable; concurrent rendering needs no locking.
	done := make(chan string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			out, err := render.Render(doc, render.FormatHTML)
			if err != nil {
				done <- "error: " + err.Error()
				return
			}
			done <- out
		}()
	}
	want := "<b>bold</b> and <em>italic</em> and <code>code</code>"
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}

func TestRenderParagraphs(t *testing.T) {
	t.Parallel()

	parse := func(inputs ...string) []*markup.Document {
		docs := make([]*markup.Document, 0, len(inputs))
		for _, s := range inputs {
			doc, _ := markup.Parse(s)
			docs = append(docs, doc)
		}
		return docs
	}

	tests := []struct {
		name   string
		inputs []string
		format render.Format
		want   string
	}{
		{
			name:   "text paragraphs joined with blank line",
			inputs: []string{"first", "second"},
			format: render.FormatText,
			want:   "first\n\nsecond",
		},
		{
			name:   "html paragraphs wrapped",
			inputs: []string{"first", "second"},
			format: render.FormatHTML,
			want:   "<p>first</p><p>second</p>",
		},
		{
			name:   "empty rst paragraph keeps placeholder",
			inputs: []string{"first", ""},
			format: render.FormatRST,
			want:   "first\n\n\\ ",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out, err := render.RenderParagraphs(parse(testCase.inputs...), testCase.format)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, out)
		})
	}
}
