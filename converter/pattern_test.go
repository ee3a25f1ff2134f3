package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompatiblePattern(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected string
		ok       bool
	}{
		{"plain RE2", "[a-zA-Z0-9_.-]+", "[a-zA-Z0-9_.-]+", true},
		{"anchored class", `^[\w\-\/\.\+]{1,255}$`, `^[\w\-\/\.\+]{1,255}$`, true},
		{"lookbehind stripped", `^[a-z]+(?<!-)$`, `^[a-z]\+$`, true},
		{"lookbehind stripped before literal", `(?<!x)abc`, "abc", true},
		{"escaped parentheses already compile", `\(?<!x\)abc`, `\(?<!x\)abc`, true},
		{"lookahead read as POSIX", `^(?!aws:).*$`, `^\(\?!aws:\).*$`, true},
		{"backslash in brackets is literal", `[^\]]*(?<!x)`, `[^\\]]*`, true},
		{"uncompilable", "[z-a]", "[z-a]", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := compatiblePattern(tt.pattern)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRewriteToken(t *testing.T) {
	tests := []struct {
		token    string
		expected string
	}{
		{"a", "a"},
		{"+", `\+`},
		{"?", `\?`},
		{"|", `\|`},
		{"{", `\{`},
		{`\(`, "("},
		{`\{`, "{"},
		{`\d`, `\d`},
		{"[a-z]", "[a-z]"},
		{"[]a]", `[\]a]`},
		{"[^]a]", `[^\]a]`},
		{`[\w]`, `[\\w]`},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, rewriteToken(tt.token))
		})
	}
}
