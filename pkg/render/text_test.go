package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docforge/ansimark/pkg/render"
)

func TestTextRenderer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello world", "hello world"},
		{"bold", "B(bold)", "*bold*"},
		{"italic", "I(italic)", "`italic'"},
		{"code", "C(ls -la)", "`ls -la'"},
		{"value", "V(present)", "`present'"},
		{"envvar", "E(ANSIBLE_CONFIG)", "`ANSIBLE_CONFIG'"},
		{"option without value", "O(state)", "`state'"},
		{"option with value", "O(state=present)", "`state=present'"},
		{"return value", "RV(changed)", "`changed'"},
		{"module", "M(ansible.builtin.copy)", "[ansible.builtin.copy]"},
		{"url", "U(https://example.com)", "https://example.com"},
		{"link", "L(the docs,https://example.com)", "the docs <https://example.com>"},
		{"link keeps argument whitespace", "L(the docs, https://example.com)", "the docs < https://example.com>"},
		{"link missing target", "L(onlyonearg)", "onlyonearg"},
		{"crossref drops label", "R(a title,some_label)", "a title"},
		{"horizontal rule", "before HORIZONTALLINE after", "before \n-------------\n after"},
		{"mixed sentence", "The B(module) is C(here).", "The *module* is `here'."},
		{"nested parens kept", "C(foo(bar, baz))", "`foo(bar, baz)'"},
		{"escaped characters", `C(a \) b)`, "`a ) b'"},
		{"unterminated macro degrades to raw text", "B(never closed", "B(never closed"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := render.RenderString(testCase.input, render.FormatText)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, out)
		})
	}
}
