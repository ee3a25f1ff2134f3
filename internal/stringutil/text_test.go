package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no markup", "Plain text.", "Plain text."},
		{"wrapped", "<p>Creates a queue.</p>", "Creates a queue."},
		{"open only", "<p>Creates a queue.", "Creates a queue."},
		{"close only", "Creates a queue.</p>", "Creates a queue."},
		{"multiple paragraphs", "<p>One.</p> <p>Two.</p>", "<p>One.</p> <p>Two.</p>"},
		{"inner markup kept", "<p>Use <code>x</code>.</p>", "Use <code>x</code>."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestUpperFirst(t *testing.T) {
	assert.Equal(t, "", UpperFirst(""))
	assert.Equal(t, "InstanceId", UpperFirst("instanceId"))
	assert.Equal(t, "DryRun", UpperFirst("DryRun"))
	assert.Equal(t, "ÉtatX", UpperFirst("étatX"))
	assert.Equal(t, "1abc", UpperFirst("1abc"))
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "a\nb", JoinNonEmpty("\n", "a", "", "b"))
	assert.Equal(t, "", JoinNonEmpty("\n", "", ""))
}
