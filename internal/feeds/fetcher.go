package feeds

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/jonesrussell/people-moves/internal/domain"
	"github.com/jonesrussell/people-moves/internal/logger"
)

const (
	// userAgent identifies the service to feed hosts.
	userAgent = "Mozilla/5.0 (compatible; PeopleOnTheMove/1.0)"

	// defaultMaxItems caps items taken from one feed when no explicit
	// limit is configured.
	defaultMaxItems = 50

	// googleNewsMaxItems caps items per Google News search result.
	googleNewsMaxItems = 20

	// prNewswireMaxItems caps releases scraped from one company page.
	prNewswireMaxItems = 25

	// minScrapedTitleLen filters out icon links and pagination anchors.
	minScrapedTitleLen = 10

	// defaultSearchDays is how far back dated searches reach when the
	// fetch window is not configured.
	defaultSearchDays = 7
)

// prDatePrefix matches a date stamp PR Newswire embeds at the start of
// release card text, e.g. "Feb 24, 2026, 16:30 ET".
var prDatePrefix = regexp.MustCompile(
	`^((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{1,2},\s+\d{4}(?:,\s+\d{1,2}:\d{2}\s*(?:ET|PT|CT|MT))?)\s*`)

// Config holds fetcher settings.
type Config struct {
	RequestTimeout time.Duration
	MaxPerSource   int
	HostRatePerSec float64
	HostRateBurst  int

	// NewsAPIKey enables the NewsAPI.org source; empty disables it.
	NewsAPIKey string
	// SearchDays is how far back dated searches reach.
	SearchDays int
}

// Fetcher pulls articles from RSS feeds, search APIs and scraped pages.
type Fetcher struct {
	client       *http.Client
	parser       *gofeed.Parser
	limiter      *HostLimiter
	maxPerSource int
	newsAPIKey   string
	newsAPIURL   string
	searchDays   int
	log          logger.Logger
}

// New creates a Fetcher.
func New(cfg Config, log logger.Logger) *Fetcher {
	maxPerSource := cfg.MaxPerSource
	if maxPerSource <= 0 {
		maxPerSource = defaultMaxItems
	}
	searchDays := cfg.SearchDays
	if searchDays <= 0 {
		searchDays = defaultSearchDays
	}

	return &Fetcher{
		client:       &http.Client{Timeout: cfg.RequestTimeout},
		parser:       gofeed.NewParser(),
		limiter:      NewHostLimiter(cfg.HostRatePerSec, cfg.HostRateBurst),
		maxPerSource: maxPerSource,
		newsAPIKey:   cfg.NewsAPIKey,
		newsAPIURL:   newsAPIEndpoint,
		searchDays:   searchDays,
		log:          log,
	}
}

// get performs a rate-limited GET with the service user agent.
func (f *Fetcher) get(ctx context.Context, rawURL string) (*http.Response, error) {
	if err := f.limiter.WaitURL(ctx, rawURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}
	return resp, nil
}

// FetchFeed fetches and parses one RSS or Atom feed. A feed that fails to
// fetch or parse returns an error; the caller decides whether to continue
// with other feeds.
func (f *Fetcher) FetchFeed(ctx context.Context, feedURL string, maxItems int) ([]domain.RawArticle, error) {
	if maxItems <= 0 {
		maxItems = f.maxPerSource
	}

	resp, err := f.get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	sourceName := feed.Title
	if sourceName == "" {
		sourceName = "RSS Feed"
	}

	articles := make([]domain.RawArticle, 0, maxItems)
	for _, item := range feed.Items {
		if len(articles) >= maxItems {
			break
		}
		articles = append(articles, domain.RawArticle{
			Title:      item.Title,
			Body:       itemBody(item),
			Link:       item.Link,
			Published:  itemPublished(item),
			SourceName: sourceName,
		})
	}

	f.log.Debug("fetched feed",
		logger.String("url", feedURL),
		logger.Int("articles", len(articles)))
	return articles, nil
}

// itemBody prefers the summary, falling back to full content.
func itemBody(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}
	return item.Content
}

// itemPublished prefers the published stamp, falling back to updated.
func itemPublished(item *gofeed.Item) string {
	if item.Published != "" {
		return item.Published
	}
	return item.Updated
}

// FetchGoogleNews runs the configured executive-move searches for a
// company and returns the merged, URL-deduplicated results. Individual
// query failures are logged and skipped.
func (f *Fetcher) FetchGoogleNews(ctx context.Context, companyName string) []domain.RawArticle {
	var all []domain.RawArticle

	for _, queryURL := range GoogleNewsQueries(companyName) {
		articles, err := f.FetchFeed(ctx, queryURL, googleNewsMaxItems)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			f.log.Warn("google news query failed",
				logger.String("company", companyName),
				logger.Error(err))
			continue
		}
		all = append(all, articles...)
	}

	seen := make(map[string]struct{}, len(all))
	unique := all[:0]
	for _, a := range all {
		if _, ok := seen[a.Link]; ok {
			continue
		}
		seen[a.Link] = struct{}{}
		unique = append(unique, a)
	}
	return unique
}

// FetchNewsroom fetches a company's own newsroom feed, if one is
// configured.
func (f *Fetcher) FetchNewsroom(ctx context.Context, companyName string) []domain.RawArticle {
	feedURL := NewsroomFeed(companyName)
	if feedURL == "" {
		return nil
	}

	articles, err := f.FetchFeed(ctx, feedURL, 0)
	if err != nil {
		f.log.Warn("newsroom feed failed",
			logger.String("company", companyName),
			logger.Error(err))
		return nil
	}

	for i := range articles {
		articles[i].SourceName = companyName + " Newsroom"
	}
	return articles
}

// FetchPRNewswire scrapes a company's PR Newswire listing page. The page
// has no feed, so release cards are pulled out of the HTML.
func (f *Fetcher) FetchPRNewswire(ctx context.Context, companyName string) []domain.RawArticle {
	pageURL := PRNewswirePage(companyName)
	if pageURL == "" {
		return nil
	}

	resp, err := f.get(ctx, pageURL)
	if err != nil {
		f.log.Warn("pr newswire page failed",
			logger.String("company", companyName),
			logger.Error(err))
		return nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		f.log.Warn("pr newswire page unparsable",
			logger.String("company", companyName),
			logger.Error(err))
		return nil
	}

	articles := scrapeReleaseLinks(doc, companyName)
	f.log.Debug("scraped pr newswire",
		logger.String("company", companyName),
		logger.Int("releases", len(articles)))
	return articles
}

// scrapeReleaseLinks extracts press-release cards from a PR Newswire
// company page document.
func scrapeReleaseLinks(doc *goquery.Document, companyName string) []domain.RawArticle {
	var articles []domain.RawArticle
	seen := make(map[string]struct{})

	doc.Find(`a[href*="/news-releases/"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(articles) >= prNewswireMaxItems {
			return false
		}

		href, _ := sel.Attr("href")
		if href == "" {
			return true
		}
		fullURL := href
		if strings.HasPrefix(href, "/") {
			fullURL = "https://www.prnewswire.com" + href
		}
		if _, ok := seen[fullURL]; ok {
			return true
		}
		seen[fullURL] = struct{}{}

		title := strings.Join(strings.Fields(sel.Text()), " ")
		if len(title) < minScrapedTitleLen {
			title = strings.Join(strings.Fields(sel.Closest("article, li").Find("h1, h2, h3, h4").First().Text()), " ")
		}
		if len(title) < minScrapedTitleLen {
			return true
		}

		// Release cards often carry a date stamp glued to the front of
		// the headline.
		published := ""
		if m := prDatePrefix.FindStringSubmatch(title); m != nil {
			published = strings.TrimSpace(m[1])
			title = strings.TrimSpace(title[len(m[0]):])
		}
		if published == "" {
			published = sel.Closest("article, li, div").Find("time, span.date").First().Text()
			published = strings.TrimSpace(published)
		}

		body := strings.TrimSpace(sel.Closest("article, li, div").Find("p").First().Text())
		if body == "" {
			body = title
		}

		articles = append(articles, domain.RawArticle{
			Title:      title,
			Body:       body,
			Link:       fullURL,
			Published:  published,
			SourceName: "PR Newswire - " + companyName,
		})
		return true
	})

	return articles
}

// FetchIndustryFeeds fetches every configured industry feed. Failures are
// logged per feed; the scan keeps going.
func (f *Fetcher) FetchIndustryFeeds(ctx context.Context) []domain.RawArticle {
	var all []domain.RawArticle

	for _, source := range IndustryFeeds() {
		articles, err := f.FetchFeed(ctx, source.URL, 0)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			f.log.Warn("industry feed failed",
				logger.String("feed", source.Name),
				logger.Error(err))
			continue
		}
		for i := range articles {
			articles[i].SourceName = source.Name
		}
		all = append(all, articles...)
	}
	return all
}
