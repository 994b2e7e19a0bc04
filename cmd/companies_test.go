//nolint:testpackage // exercising unexported CSV helpers
package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/people-moves/internal/domain"
	"github.com/jonesrussell/people-moves/internal/logger"
)

type recordingUpserter struct {
	companies []domain.Company
}

func (r *recordingUpserter) Upsert(_ context.Context, c *domain.Company) error {
	r.companies = append(r.companies, *c)
	return nil
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "companies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestImportCompaniesCSV(t *testing.T) {
	path := writeCSV(t, `name,domain,website,aliases
Tyson Foods,tyson.com,https://www.tysonfoods.com,"Tyson, Tyson Foods Inc"
Sysco,sysco.com,,
,skipped.com,,
`)

	repo := &recordingUpserter{}
	imported, err := importCompaniesCSV(context.Background(), repo, path, logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 2, imported)
	require.Len(t, repo.companies, 2)

	tyson := repo.companies[0]
	assert.Equal(t, "Tyson Foods", tyson.Name)
	assert.Equal(t, "tyson.com", tyson.Domain)
	assert.Equal(t, []string{"Tyson", "Tyson Foods Inc"}, tyson.Aliases)
	assert.True(t, tyson.IsActive)

	assert.Empty(t, repo.companies[1].Aliases)
}

func TestImportCompaniesCSV_AlternateHeaders(t *testing.T) {
	path := writeCSV(t, "Company,Email_Domain\nAcme Corp,acme.com\n")

	repo := &recordingUpserter{}
	imported, err := importCompaniesCSV(context.Background(), repo, path, logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 1, imported)
	assert.Equal(t, "acme.com", repo.companies[0].Domain)
}

func TestImportCompaniesCSV_MissingNameColumn(t *testing.T) {
	path := writeCSV(t, "domain,website\nacme.com,https://acme.com\n")

	_, err := importCompaniesCSV(context.Background(), &recordingUpserter{}, path, logger.NewNop())
	assert.Error(t, err)
}

func TestColumnIndexes_StripsBOM(t *testing.T) {
	cols := columnIndexes([]string{"\ufeffName", "Aliases"})
	assert.Equal(t, 0, cols.name)
	assert.Equal(t, 1, cols.aliases)
}
