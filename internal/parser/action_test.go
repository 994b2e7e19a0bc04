//nolint:testpackage // Testing internal engine pieces requires same package access
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"promoted", "Jane Doe was promoted to SVP", "promoted to"},
		{"appoints", "Cargill appoints new COO", "appointed"},
		{"appointed", "She was appointed yesterday", "appointed"},
		{"tapped", "Smith tapped to lead operations", "tapped as"},
		{"named", "Board named a successor", "named"},
		{"joins", "Doe joins the company", "joins as"},
		{"hired", "The firm hired a veteran", "joins as"},
		{"announcement phrasing", "The company announces a leadership change", "announced as"},
		{"no trigger defaults to named", "Leadership transition underway", "named"},
		{"empty text defaults to named", "", "named"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractAction(tt.text))
		})
	}
}

func TestExtractAction_PriorityOrder(t *testing.T) {
	// "promoted" is declared first and must beat the later "named" even
	// when "named" appears earlier in the sentence.
	got := ExtractAction("... was promoted and later named to the board ...")
	assert.Equal(t, "promoted to", got)

	got = ExtractAction("named after being promoted")
	assert.Equal(t, "promoted to", got)
}
