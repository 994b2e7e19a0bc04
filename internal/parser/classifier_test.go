//nolint:testpackage // Testing internal engine pieces requires same package access
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/people-moves/internal/vocab"
)

func TestMoveClassifier_IsExecutiveMove(t *testing.T) {
	c := NewMoveClassifier(vocab.Default())

	tests := []struct {
		name  string
		title string
		body  string
		want  bool
	}{
		{
			name:  "promotion headline",
			title: "Tyson Foods promotes John Smith to VP of Operations",
			want:  true,
		},
		{
			name:  "appointment with body",
			title: "Leadership update",
			body:  "The company announced Jane Doe has been appointed Chief Financial Officer.",
			want:  true,
		},
		{
			name:  "earnings news has keyword but no title",
			title: "Tyson Foods reports record quarterly earnings",
			want:  false,
		},
		{
			name:  "title vocabulary without move keyword",
			title: "A day in the life of a plant worker",
			body:  "The facility runs two shifts.",
			want:  false,
		},
		{
			name:  "empty input",
			title: "",
			body:  "",
			want:  false,
		},
		{
			name:  "keyword gate alone is not enough",
			title: "Cargill announces expansion of Kansas facility",
			want:  false,
		},
		{
			name:  "case insensitive title match",
			title: "hormel foods NAMES new chief executive officer",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsExecutiveMove(tt.title, tt.body))
		})
	}
}

func TestMoveClassifier_BothStagesRequired(t *testing.T) {
	c := NewMoveClassifier(vocab.Default())

	// "earnings" text trips neither gate; "executive" alone trips only the
	// keyword gate; adding a title satisfies both.
	assert.False(t, c.IsExecutiveMove("Quarterly results beat estimates", ""))
	assert.False(t, c.IsExecutiveMove("Executive compensation under scrutiny", ""))
	assert.True(t, c.IsExecutiveMove("Executive shuffle: new CEO takes the helm", ""))
}
