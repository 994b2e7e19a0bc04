//nolint:testpackage // Testing internal engine pieces requires same package access
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/people-moves/internal/domain"
)

func TestFindCompanyInText(t *testing.T) {
	companies := []domain.Company{
		{ID: 1, Name: "Tyson Foods", Aliases: []string{"Tyson"}},
		{ID: 2, Name: "Cargill"},
		{ID: 3, Name: "Pilgrim's Pride", Aliases: []string{"Pilgrims Pride", "Pilgrim's"}},
	}

	t.Run("canonical name match", func(t *testing.T) {
		got := FindCompanyInText("Jane Doe joins Tyson Foods as VP of Sales", companies)
		require.NotNil(t, got)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("alias match", func(t *testing.T) {
		got := FindCompanyInText("pilgrims pride taps new plant manager", companies)
		require.NotNil(t, got)
		assert.Equal(t, int64(3), got.ID)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := FindCompanyInText("CARGILL NAMES NEW CFO", companies)
		require.NotNil(t, got)
		assert.Equal(t, int64(2), got.ID)
	})

	t.Run("first match wins over later mention", func(t *testing.T) {
		got := FindCompanyInText("Executive leaves Cargill, joins Tyson Foods as VP", companies)
		require.NotNil(t, got)
		// Tyson Foods is first in the caller-supplied order, so it wins
		// even though Cargill appears earlier in the text.
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("accented mention matches plain spelling", func(t *testing.T) {
		got := FindCompanyInText("Nestlé announces a new regional president", []domain.Company{
			{ID: 4, Name: "Nestle", Aliases: []string{"Nestle USA"}},
		})
		require.NotNil(t, got)
		assert.Equal(t, int64(4), got.ID)
	})

	t.Run("accented alias matches plain mention", func(t *testing.T) {
		got := FindCompanyInText("Groupe Danone promotes a COO", []domain.Company{
			{ID: 5, Name: "Danone S.A.", Aliases: []string{"Groupe Danoné"}},
		})
		require.NotNil(t, got)
		assert.Equal(t, int64(5), got.ID)
	})

	t.Run("no tracked company", func(t *testing.T) {
		assert.Nil(t, FindCompanyInText("Acme Corp hires a new CEO", companies))
	})

	t.Run("empty company list", func(t *testing.T) {
		assert.Nil(t, FindCompanyInText("Tyson Foods news", nil))
	})
}
