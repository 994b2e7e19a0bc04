//nolint:testpackage // Testing internal engine pieces requires same package access
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "tags stripped",
			input: "<p>John Smith</p> <b>was appointed</b> CFO",
			want:  "John Smith was appointed CFO",
		},
		{
			name:  "whitespace collapsed",
			input: "a\n\n  b\t\tc",
			want:  "a b c",
		},
		{
			name:  "nbsp treated as space",
			input: "a  b",
			want:  "a b",
		},
		{
			name:  "script content dropped",
			input: "<script>var x = 1;</script><p>visible</p>",
			want:  "visible",
		},
		{
			name:  "malformed markup degrades gracefully",
			input: "<div><p>unclosed <b>bold",
			want:  "unclosed bold",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "plain text unchanged",
			input: "no markup here",
			want:  "no markup here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanHTML(tt.input))
		})
	}
}

func TestFoldDiacritics(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Nestlé", "Nestle"},
		{"José García", "Jose Garcia"},
		{"Tyson Foods", "Tyson Foods"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, foldDiacritics(tt.input))
	}
}
