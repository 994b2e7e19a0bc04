//nolint:testpackage // exercising unexported scraping helpers
package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/people-moves/internal/logger"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Wire</title>
    <item>
      <title>Acme Corp Appoints John Smith as Chief Financial Officer</title>
      <description>Acme Corp today announced that John Smith has been appointed CFO.</description>
      <link>https://example.com/acme-cfo</link>
      <pubDate>Mon, 24 Aug 2026 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Quarterly results beat expectations</title>
      <description>Earnings were up.</description>
      <link>https://example.com/earnings</link>
      <pubDate>Tue, 25 Aug 2026 10:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func newTestFetcher() *Fetcher {
	return New(Config{
		RequestTimeout: 5 * time.Second,
		MaxPerSource:   50,
		HostRatePerSec: 1000,
		HostRateBurst:  100,
	}, logger.NewNop())
}

func TestFetcher_FetchFeed(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f := newTestFetcher()
	articles, err := f.FetchFeed(context.Background(), srv.URL, 0)
	require.NoError(t, err)

	require.Len(t, articles, 2)
	assert.Equal(t, "Acme Corp Appoints John Smith as Chief Financial Officer", articles[0].Title)
	assert.Equal(t, "https://example.com/acme-cfo", articles[0].Link)
	assert.Equal(t, "Mon, 24 Aug 2026 10:00:00 GMT", articles[0].Published)
	assert.Equal(t, "Test Wire", articles[0].SourceName)
	assert.Equal(t, userAgent, gotUA)
}

func TestFetcher_FetchFeed_RespectsMaxItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f := newTestFetcher()
	articles, err := f.FetchFeed(context.Background(), srv.URL, 1)
	require.NoError(t, err)
	assert.Len(t, articles, 1)
}

func TestFetcher_FetchFeed_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := newTestFetcher()
	_, err := f.FetchFeed(context.Background(), srv.URL, 0)
	assert.Error(t, err)
}

func TestFetcher_FetchFeed_Garbage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("this is not xml"))
	}))
	defer srv.Close()

	f := newTestFetcher()
	_, err := f.FetchFeed(context.Background(), srv.URL, 0)
	assert.Error(t, err)
}

const samplePRNewswirePage = `<html><body>
<ul>
  <li>
    <a href="/news-releases/acme-corp-names-jane-doe-president-301234567.html">
      Aug 20, 2026, 09:00 ET Acme Corp Names Jane Doe President
    </a>
    <p>Acme Corp today announced that Jane Doe has been named President.</p>
  </li>
  <li>
    <a href="/news-releases/acme-corp-names-jane-doe-president-301234567.html">duplicate</a>
  </li>
  <li>
    <a href="/news-releases/acme-quarterly-results-301234568.html">Acme Corp Reports Quarterly Results</a>
  </li>
  <li>
    <a href="/about/">About us page, not a release</a>
  </li>
</ul>
</body></html>`

func TestScrapeReleaseLinks(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(samplePRNewswirePage))
	require.NoError(t, err)

	articles := scrapeReleaseLinks(doc, "Acme Corp")
	require.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, "Acme Corp Names Jane Doe President", first.Title)
	assert.Equal(t, "Aug 20, 2026, 09:00 ET", first.Published)
	assert.Equal(t, "https://www.prnewswire.com/news-releases/acme-corp-names-jane-doe-president-301234567.html", first.Link)
	assert.Equal(t, "PR Newswire - Acme Corp", first.SourceName)
	assert.Contains(t, first.Body, "Jane Doe has been named President")

	// release without a date prefix keeps the headline intact
	assert.Equal(t, "Acme Corp Reports Quarterly Results", articles[1].Title)
	assert.Empty(t, articles[1].Published)
}

func TestPRDatePrefix(t *testing.T) {
	tests := []struct {
		input     string
		wantDate  string
		wantTitle string
	}{
		{
			input:     "Feb 24, 2026, 16:30 ET Big Announcement",
			wantDate:  "Feb 24, 2026, 16:30 ET",
			wantTitle: "Big Announcement",
		},
		{
			input:     "Jan 5, 2026 Short Date Form",
			wantDate:  "Jan 5, 2026",
			wantTitle: "Short Date Form",
		},
		{
			input:     "No date here at all",
			wantDate:  "",
			wantTitle: "No date here at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := prDatePrefix.FindStringSubmatch(tt.input)
			if tt.wantDate == "" {
				assert.Nil(t, m)
				return
			}
			require.NotNil(t, m)
			assert.Equal(t, tt.wantDate, strings.TrimSpace(m[1]))
			assert.Equal(t, tt.wantTitle, strings.TrimSpace(tt.input[len(m[0]):]))
		})
	}
}

func TestHostLimiter_WaitURL(t *testing.T) {
	hl := NewHostLimiter(1000, 10)

	require.NoError(t, hl.WaitURL(context.Background(), "https://example.com/feed"))

	// a second host gets its own limiter
	require.NoError(t, hl.WaitURL(context.Background(), "https://other.example.org/feed"))
	assert.Len(t, hl.m, 2)

	_, bad := hl.m["missing"]
	assert.False(t, bad)
}

func TestHostLimiter_ContextCancelled(t *testing.T) {
	hl := NewHostLimiter(0.001, 1)
	ctx, cancel := context.WithCancel(context.Background())

	// drain the single burst token, then the next wait must block
	require.NoError(t, hl.WaitURL(ctx, "https://slow.example.com/"))
	cancel()
	assert.Error(t, hl.WaitURL(ctx, "https://slow.example.com/"))
}
