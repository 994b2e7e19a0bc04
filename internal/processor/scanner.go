// Package processor runs aggregation scans end to end: load tracked
// companies, fetch and parse their news, store the surviving candidates as
// pending announcements.
package processor

import (
	"context"
	"fmt"

	"github.com/jonesrussell/people-moves/internal/aggregator"
	"github.com/jonesrussell/people-moves/internal/domain"
	"github.com/jonesrussell/people-moves/internal/logger"
)

// CompanySource lists the companies a scan covers.
type CompanySource interface {
	ListActive(ctx context.Context) ([]domain.Company, error)
}

// AnnouncementSink persists extracted candidates.
type AnnouncementSink interface {
	Create(ctx context.Context, a *domain.Announcement) error
}

// Scanner wires the aggregator to storage.
type Scanner struct {
	agg           *aggregator.Aggregator
	companies     CompanySource
	announcements AnnouncementSink
	log           logger.Logger
}

// NewScanner creates a Scanner.
func NewScanner(agg *aggregator.Aggregator, companies CompanySource, announcements AnnouncementSink, log logger.Logger) *Scanner {
	if log == nil {
		log = logger.NewNop()
	}
	return &Scanner{
		agg:           agg,
		companies:     companies,
		announcements: announcements,
		log:           log,
	}
}

// Scan runs one full aggregation pass and returns how many announcements
// were stored. A candidate that fails to store is logged and skipped; the
// scan itself only fails when the company list cannot be loaded.
func (s *Scanner) Scan(ctx context.Context) (int, error) {
	companies, err := s.companies.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("load companies: %w", err)
	}
	if len(companies) == 0 {
		s.log.Warn("no active companies configured, nothing to scan")
		return 0, nil
	}

	candidates := s.agg.FetchAll(ctx, companies)

	stored := 0
	for i := range candidates {
		announcement := toAnnouncement(&candidates[i])
		if createErr := s.announcements.Create(ctx, announcement); createErr != nil {
			s.log.Warn("failed to store announcement",
				logger.String("person", announcement.PersonName),
				logger.String("company", announcement.CompanyName),
				logger.Error(createErr))
			continue
		}
		stored++
	}

	s.log.Info("scan stored announcements",
		logger.Int("candidates", len(candidates)),
		logger.Int("stored", stored))
	return stored, nil
}

// toAnnouncement converts an extracted candidate into a pending record.
func toAnnouncement(c *domain.Candidate) *domain.Announcement {
	return &domain.Announcement{
		CompanyID:        c.CompanyID,
		CompanyName:      c.CompanyName,
		PersonName:       c.PersonName,
		NewTitle:         c.NewTitle,
		Action:           c.Action,
		RawText:          c.RawText,
		SourceURL:        c.SourceURL,
		SourceName:       c.SourceName,
		AnnouncementDate: c.AnnouncementDate,
		Status:           domain.StatusPending,
	}
}
