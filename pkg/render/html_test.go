package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docforge/ansimark/pkg/markup"
	"github.com/docforge/ansimark/pkg/render"
)

func TestHTMLRenderer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text escaped", "1 < 2 && 3 > 2", "1 &lt; 2 &amp;&amp; 3 &gt; 2"},
		{"bold", "B(bold)", "<b>bold</b>"},
		{"italic", "I(italic)", "<em>italic</em>"},
		{"code", "C(ls -la)", "<code>ls -la</code>"},
		{"code escapes content", "C(a < b)", "<code>a &lt; b</code>"},
		{"value", "V(present)", "<code>present</code>"},
		{"envvar", "E(ANSIBLE_CONFIG)", "<code>ANSIBLE_CONFIG</code>"},
		{"option without value", "O(state)", "<code><strong>state</strong></code>"},
		{"option with value", "O(state=present)", "<code>state=present</code>"},
		{"return value", "RV(changed)", "<code>changed</code>"},
		{"return value with value", "RV(changed=true)", "<code>changed=true</code>"},
		{
			"module renders as span without resolver",
			"M(ansible.builtin.copy)",
			"<span>ansible.builtin.copy</span>",
		},
		{
			"url",
			"U(https://example.com/?a=1&b=2)",
			"<a href='https://example.com/?a=1&amp;b=2'>https://example.com/?a=1&amp;b=2</a>",
		},
		{
			"link",
			"L(the docs,https://example.com)",
			"<a href='https://example.com'>the docs</a>",
		},
		{"crossref", "R(a title,some_label)", "<span>a title</span>"},
		{"horizontal rule", "HORIZONTALLINE", "<hr>"},
		{
			"mixed sentence",
			"The B(module) is C(here).",
			"The <b>module</b> is <code>here</code>.",
		},
		{"unterminated macro degrades to escaped text", "B(a < b", "B(a &lt; b"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := render.RenderString(testCase.input, render.FormatHTML)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, out)
		})
	}
}

type docsiteLinks struct{}

func (docsiteLinks) ModuleURL(fqcn string) string {
	if fqcn == "ansible.builtin.copy" {
		return "https://docs.example.com/copy?ver=1&lang=en"
	}
	return ""
}

func TestHTMLRendererModuleLinks(t *testing.T) {
	t.Parallel()

	r, err := render.NewWithLinks(render.FormatHTML, docsiteLinks{})
	require.NoError(t, err)

	doc, diags := markup.Parse("M(ansible.builtin.copy) or M(community.general.ufw)")
	require.Empty(t, diags)

	assert.Equal(t,
		"<a href='https://docs.example.com/copy?ver=1&amp;lang=en'>ansible.builtin.copy</a>"+
			" or <span>community.general.ufw</span>",
		render.RenderWith(doc, r))
}
