//nolint:testpackage // Exercises package internals alongside the public API
package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	s := NewSet([]string{"Foo", "BAR"})

	assert.True(t, s.Has("foo"))
	assert.True(t, s.Has("Bar"))
	assert.False(t, s.Has("baz"))
}

func TestDefault_TablesPopulated(t *testing.T) {
	v := Default()

	assert.NotEmpty(t, v.ExecutiveKeywords)
	assert.NotEmpty(t, v.ExecutiveTitles)
	assert.NotEmpty(t, v.FalsePositiveNames)
	assert.NotEmpty(t, v.InvalidFirstWords)
	assert.NotEmpty(t, v.InvalidLastWords)
	assert.NotEmpty(t, v.PoliticalSurnames)
	assert.NotEmpty(t, v.ShortStopwords)
}

func TestDefault_CompoundTitlesPrecedeGeneric(t *testing.T) {
	v := Default()

	index := func(title string) int {
		for i, tt := range v.ExecutiveTitles {
			if tt == title {
				return i
			}
		}
		t.Fatalf("title %q not in vocabulary", title)
		return -1
	}

	// The ordering invariant the extractor depends on: compounds before the
	// generic terms they contain.
	assert.Less(t, index("Senior Vice President"), index("Vice President"))
	assert.Less(t, index("Vice President"), index("President"))
	assert.Less(t, index("Chief Executive Officer"), index("CEO"))
	assert.Less(t, index("Managing Director"), index("Director"))
}

func TestLoad_OverlaysOnlyPresentTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.yaml")
	content := []byte("executive_keywords:\n  - handover\npolitical_surnames:\n  - example\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	v, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"handover"}, v.ExecutiveKeywords)
	assert.Equal(t, []string{"example"}, v.PoliticalSurnames)
	// Untouched tables keep their defaults.
	assert.Equal(t, Default().ExecutiveTitles, v.ExecutiveTitles)
	assert.Equal(t, Default().InvalidFirstWords, v.InvalidFirstWords)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/vocab.yaml")
	assert.Error(t, err)
}
