package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/jonesrussell/people-moves/internal/domain"
	"github.com/jonesrussell/people-moves/internal/logger"
)

const (
	// newsAPIEndpoint is the NewsAPI.org full-text search endpoint.
	newsAPIEndpoint = "https://newsapi.org/v2/everything"

	// newsAPIPageSize is the largest page the API serves per request.
	newsAPIPageSize = 100

	// newsAPITerms narrows results to personnel-change stories.
	newsAPITerms = "(appointed OR promoted OR named OR hires OR VP OR director OR executive)"
)

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// FetchNewsAPI searches NewsAPI.org for recent personnel-change stories
// naming the company. The source is optional: without an API key it
// returns nil before making a request, and failures are logged, not
// propagated.
func (f *Fetcher) FetchNewsAPI(ctx context.Context, companyName string) []domain.RawArticle {
	if f.newsAPIKey == "" {
		return nil
	}

	from := time.Now().AddDate(0, 0, -f.searchDays).Format("2006-01-02")

	params := url.Values{}
	params.Set("q", fmt.Sprintf("%q AND %s", companyName, newsAPITerms))
	params.Set("from", from)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(newsAPIPageSize))
	params.Set("apiKey", f.newsAPIKey)

	resp, err := f.get(ctx, f.newsAPIURL+"?"+params.Encode())
	if err != nil {
		f.log.Warn("newsapi search failed",
			logger.String("company", companyName),
			logger.Error(err))
		return nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var payload newsAPIResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		f.log.Warn("newsapi response unparsable",
			logger.String("company", companyName),
			logger.Error(decodeErr))
		return nil
	}

	articles := make([]domain.RawArticle, 0, len(payload.Articles))
	for _, item := range payload.Articles {
		if len(articles) >= f.maxPerSource {
			break
		}
		if item.Title == "" || item.URL == "" {
			continue
		}

		body := item.Description
		if body == "" {
			body = item.Content
		}
		sourceName := item.Source.Name
		if sourceName == "" {
			sourceName = "NewsAPI"
		}

		articles = append(articles, domain.RawArticle{
			Title:      item.Title,
			Body:       body,
			Link:       item.URL,
			Published:  item.PublishedAt,
			SourceName: sourceName,
		})
	}

	f.log.Debug("fetched newsapi",
		logger.String("company", companyName),
		logger.Int("articles", len(articles)))
	return articles
}
