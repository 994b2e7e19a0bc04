//nolint:testpackage // wiring stubs against internal collaborators
package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/people-moves/internal/aggregator"
	"github.com/jonesrussell/people-moves/internal/config"
	"github.com/jonesrussell/people-moves/internal/domain"
	"github.com/jonesrussell/people-moves/internal/logger"
	"github.com/jonesrussell/people-moves/internal/parser"
	"github.com/jonesrussell/people-moves/internal/vocab"
)

type stubCompanies struct {
	companies []domain.Company
	err       error
}

func (s *stubCompanies) ListActive(_ context.Context) ([]domain.Company, error) {
	return s.companies, s.err
}

type stubSink struct {
	created []domain.Announcement
	failOn  string
}

func (s *stubSink) Create(_ context.Context, a *domain.Announcement) error {
	if s.failOn != "" && a.PersonName == s.failOn {
		return errors.New("constraint violation")
	}
	s.created = append(s.created, *a)
	return nil
}

type stubFetcher struct {
	industry []domain.RawArticle
}

func (s *stubFetcher) FetchGoogleNews(_ context.Context, _ string) []domain.RawArticle { return nil }
func (s *stubFetcher) FetchNewsroom(_ context.Context, _ string) []domain.RawArticle   { return nil }
func (s *stubFetcher) FetchPRNewswire(_ context.Context, _ string) []domain.RawArticle { return nil }
func (s *stubFetcher) FetchNewsAPI(_ context.Context, _ string) []domain.RawArticle    { return nil }
func (s *stubFetcher) FetchIndustryFeeds(_ context.Context) []domain.RawArticle {
	return s.industry
}

func newScanner(companies *stubCompanies, sink *stubSink, articles []domain.RawArticle) *Scanner {
	p := parser.New(vocab.Default(), parser.Config{}, logger.NewNop())
	agg := aggregator.New(&stubFetcher{industry: articles}, p, nil,
		config.FetchConfig{Concurrency: 1, DedupWindow: time.Hour}, logger.NewNop())
	return NewScanner(agg, companies, sink, logger.NewNop())
}

func TestScanner_Scan(t *testing.T) {
	companies := &stubCompanies{companies: []domain.Company{{ID: 1, Name: "Acme Corp"}}}
	sink := &stubSink{}
	articles := []domain.RawArticle{{
		Title:      "Acme Corp Appoints John Smith as Chief Financial Officer",
		Body:       "Acme Corp today announced that John Smith has been appointed Chief Financial Officer.",
		Link:       "https://example.com/1",
		SourceName: "Test Wire",
	}}

	stored, err := newScanner(companies, sink, articles).Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stored)

	require.Len(t, sink.created, 1)
	created := sink.created[0]
	assert.Equal(t, "John Smith", created.PersonName)
	assert.Equal(t, int64(1), created.CompanyID)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, "https://example.com/1", created.SourceURL)
}

func TestScanner_Scan_NoCompanies(t *testing.T) {
	stored, err := newScanner(&stubCompanies{}, &stubSink{}, nil).Scan(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stored)
}

func TestScanner_Scan_CompanyLoadFails(t *testing.T) {
	companies := &stubCompanies{err: errors.New("db down")}
	_, err := newScanner(companies, &stubSink{}, nil).Scan(context.Background())
	assert.Error(t, err)
}

func TestScanner_Scan_StoreFailureSkipsRecord(t *testing.T) {
	companies := &stubCompanies{companies: []domain.Company{{ID: 1, Name: "Acme Corp"}}}
	sink := &stubSink{failOn: "John Smith"}
	articles := []domain.RawArticle{{
		Title: "Acme Corp Appoints John Smith as Chief Financial Officer",
		Body:  "Acme Corp today announced that John Smith has been appointed Chief Financial Officer.",
		Link:  "https://example.com/1",
	}}

	stored, err := newScanner(companies, sink, articles).Scan(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stored)
}
