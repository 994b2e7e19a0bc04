package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/people-moves/internal/domain"
)

// AnnouncementRepository handles database operations for personnel-change
// announcements.
type AnnouncementRepository struct {
	db *sqlx.DB
}

// NewAnnouncementRepository creates a new announcement repository.
func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create inserts a new announcement in pending status.
func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	if a.Status == "" {
		a.Status = domain.StatusPending
	}

	query := r.db.Rebind(`
		INSERT INTO announcements (
			company_id, person_name, new_title, previous_title, previous_company,
			action, raw_text, source_url, source_name, announcement_date, status,
			created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`)

	result, err := r.db.ExecContext(ctx, query,
		a.CompanyID, a.PersonName, a.NewTitle, a.PreviousTitle, a.PreviousCompany,
		a.Action, a.RawText, a.SourceURL, a.SourceName, a.AnnouncementDate, a.Status)
	if err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	if id, idErr := result.LastInsertId(); idErr == nil {
		a.ID = id
	}
	return nil
}

// GetByID retrieves an announcement with its company name joined in.
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*domain.Announcement, error) {
	var a domain.Announcement
	query := r.db.Rebind(`
		SELECT a.*, c.name AS company_name
		FROM announcements a
		JOIN companies c ON c.id = a.company_id
		WHERE a.id = ?
	`)

	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("announcement %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}
	return &a, nil
}

// ListByStatus retrieves announcements in the given status, newest first.
func (r *AnnouncementRepository) ListByStatus(ctx context.Context, status string, limit int) ([]domain.Announcement, error) {
	var announcements []domain.Announcement
	query := r.db.Rebind(`
		SELECT a.*, c.name AS company_name
		FROM announcements a
		JOIN companies c ON c.id = a.company_id
		WHERE a.status = ?
		ORDER BY a.created_at DESC
		LIMIT ?
	`)

	if err := r.db.SelectContext(ctx, &announcements, query, status, limit); err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcements, nil
}

// UpdateStatus moves an announcement to a new status.
func (r *AnnouncementRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := r.db.Rebind(`
		UPDATE announcements SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update announcement status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("announcement %d: %w", id, ErrNotFound)
	}
	return nil
}

// Update edits the reviewable fields of an announcement.
func (r *AnnouncementRepository) Update(ctx context.Context, a *domain.Announcement) error {
	query := r.db.Rebind(`
		UPDATE announcements
		SET person_name = ?, new_title = ?, previous_title = ?, previous_company = ?,
		    action = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query,
		a.PersonName, a.NewTitle, a.PreviousTitle, a.PreviousCompany, a.Action, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("announcement %d: %w", a.ID, ErrNotFound)
	}
	return nil
}

// ExistsRecent reports whether an announcement for the same person at the
// same company was stored within the window. The name match is a
// case-insensitive substring match, so a stored "John Smith Jr." counts as
// a duplicate of "John Smith". The pattern and cutoff are computed in Go so
// SQLite and PostgreSQL behave identically.
func (r *AnnouncementRepository) ExistsRecent(ctx context.Context, companyID int64, personName string, window time.Duration) (bool, error) {
	cutoff := time.Now().UTC().Add(-window)
	pattern := "%" + strings.ToLower(personName) + "%"

	var count int
	query := r.db.Rebind(`
		SELECT COUNT(*) FROM announcements
		WHERE company_id = ? AND LOWER(person_name) LIKE ? AND created_at >= ?
	`)

	if err := r.db.GetContext(ctx, &count, query, companyID, pattern, cutoff); err != nil {
		return false, fmt.Errorf("failed to check for recent announcement: %w", err)
	}
	return count > 0, nil
}

// StatusCounts returns the number of announcements per status.
func (r *AnnouncementRepository) StatusCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*) FROM announcements GROUP BY status
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count announcements: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if scanErr := rows.Scan(&status, &count); scanErr != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", scanErr)
		}
		counts[status] = count
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating status counts: %w", rowsErr)
	}
	return counts, nil
}
