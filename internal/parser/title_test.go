//nolint:testpackage // Testing internal engine pieces requires same package access
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/people-moves/internal/vocab"
)

func TestTitleExtractor_ExtractTitle(t *testing.T) {
	e := NewTitleExtractor(vocab.Default())

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "compound title wins over generic",
			text: "Jane Doe was promoted to Senior Vice President at the retail division",
			want: "Senior Vice President",
		},
		{
			name: "bare title when no connective nearby",
			text: "The CFO presented the quarterly results",
			want: "CFO",
		},
		{
			name: "widened with modifier",
			text: "John Smith joins as interim Chief Financial Officer of Tyson",
			want: "interim Chief Financial Officer of Tyson",
		},
		{
			name: "no title present",
			text: "The company opened a new plant in Iowa",
			want: "",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ExtractTitle(tt.text))
		})
	}
}

func TestTitleExtractor_OrderPrecedence(t *testing.T) {
	e := NewTitleExtractor(vocab.Default())

	// "Chief Executive Officer" is declared before "CEO" and before
	// "President"; the extractor must not truncate to a shorter overlap.
	got := e.ExtractTitle("She becomes Chief Executive Officer and President")
	assert.Equal(t, "Chief Executive Officer", got)
}
