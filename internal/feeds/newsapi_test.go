//nolint:testpackage // exercising the key-gated search path
package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNewsAPI = `{
  "status": "ok",
  "totalResults": 2,
  "articles": [
    {
      "source": {"id": null, "name": "Food Business Wire"},
      "title": "Acme Corp Appoints John Smith as Chief Financial Officer",
      "description": "Acme Corp today announced that John Smith has been appointed CFO.",
      "url": "https://example.com/acme-cfo",
      "publishedAt": "2026-08-24T10:00:00Z"
    },
    {
      "source": {"id": null, "name": ""},
      "title": "Acme Corp names new VP of Operations",
      "description": "",
      "content": "The company promoted a longtime plant leader.",
      "url": "https://example.com/acme-vp",
      "publishedAt": "2026-08-25T10:00:00Z"
    },
    {
      "source": {"id": null, "name": "Broken Wire"},
      "title": "",
      "url": "https://example.com/no-title"
    }
  ]
}`

func TestFetcher_FetchNewsAPI(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleNewsAPI))
	}))
	defer srv.Close()

	f := newTestFetcher()
	f.newsAPIKey = "test-key"
	f.newsAPIURL = srv.URL

	articles := f.FetchNewsAPI(context.Background(), "Acme Corp")
	require.Len(t, articles, 2, "untitled results are dropped")

	assert.Equal(t, "Acme Corp Appoints John Smith as Chief Financial Officer", articles[0].Title)
	assert.Equal(t, "https://example.com/acme-cfo", articles[0].Link)
	assert.Equal(t, "2026-08-24T10:00:00Z", articles[0].Published)
	assert.Equal(t, "Food Business Wire", articles[0].SourceName)

	// empty description falls back to content, empty source to "NewsAPI"
	assert.Equal(t, "The company promoted a longtime plant leader.", articles[1].Body)
	assert.Equal(t, "NewsAPI", articles[1].SourceName)

	params, err := url.ParseQuery(gotQuery)
	require.NoError(t, err)
	assert.Contains(t, params.Get("q"), `"Acme Corp"`)
	assert.Contains(t, params.Get("q"), "appointed OR promoted")
	assert.Equal(t, "test-key", params.Get("apiKey"))
	assert.Equal(t, "en", params.Get("language"))
	assert.Equal(t, "publishedAt", params.Get("sortBy"))
	assert.NotEmpty(t, params.Get("from"))
}

func TestFetcher_FetchNewsAPI_NoKeySkips(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		requested = true
	}))
	defer srv.Close()

	f := newTestFetcher()
	f.newsAPIURL = srv.URL

	assert.Nil(t, f.FetchNewsAPI(context.Background(), "Acme Corp"))
	assert.False(t, requested, "no key means no request")
}

func TestFetcher_FetchNewsAPI_BadResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	f := newTestFetcher()
	f.newsAPIKey = "test-key"
	f.newsAPIURL = srv.URL

	assert.Nil(t, f.FetchNewsAPI(context.Background(), "Acme Corp"))
}
