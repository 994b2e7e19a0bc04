//nolint:testpackage // exercising unexported catalog data
package feeds

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGoogleNewsURL(t *testing.T) {
	url := BuildGoogleNewsURL("Tyson Foods", `"%s" appointed CEO`)

	assert.True(t, strings.HasPrefix(url, "https://news.google.com/rss/search?q="))
	assert.Contains(t, url, "%22Tyson+Foods%22")
	assert.Contains(t, url, "appointed+CEO")
	assert.Contains(t, url, "ceid=US:en")
}

func TestGoogleNewsQueries(t *testing.T) {
	urls := GoogleNewsQueries("Sysco")

	require.Len(t, urls, maxQueriesPerCompany)
	for _, u := range urls {
		assert.Contains(t, u, "Sysco")
	}
	// each query is distinct
	seen := map[string]struct{}{}
	for _, u := range urls {
		seen[u] = struct{}{}
	}
	assert.Len(t, seen, len(urls))
}

func TestNewsroomFeed(t *testing.T) {
	assert.NotEmpty(t, NewsroomFeed("Tyson Foods"))
	assert.Empty(t, NewsroomFeed("Unknown Company"))
}

func TestPRNewswirePage(t *testing.T) {
	assert.Equal(t, "https://www.prnewswire.com/news/sysco-corporation/", PRNewswirePage("Sysco"))
	assert.Empty(t, PRNewswirePage("Unknown Company"))
}

func TestIndustryFeeds_CopyIsIndependent(t *testing.T) {
	feeds := IndustryFeeds()
	require.NotEmpty(t, feeds)

	feeds[0].Name = "mutated"
	assert.NotEqual(t, "mutated", IndustryFeeds()[0].Name)
}
