package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/people-moves/internal/domain"
)

// PostRepository handles database operations for drafted posts.
type PostRepository struct {
	db *sqlx.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new draft. The version is one higher than any existing
// draft for the same announcement.
func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	var version int
	versionQuery := r.db.Rebind(`
		SELECT COALESCE(MAX(version), 0) FROM posts WHERE announcement_id = ?
	`)
	if err := r.db.GetContext(ctx, &version, versionQuery, post.AnnouncementID); err != nil {
		return fmt.Errorf("failed to determine draft version: %w", err)
	}
	post.Version = version + 1

	query := r.db.Rebind(`
		INSERT INTO posts (announcement_id, content, version, created_at, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`)

	result, err := r.db.ExecContext(ctx, query, post.AnnouncementID, post.Content, post.Version)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	if id, idErr := result.LastInsertId(); idErr == nil {
		post.ID = id
	}
	return nil
}

// GetLatest retrieves the newest draft for an announcement.
func (r *PostRepository) GetLatest(ctx context.Context, announcementID int64) (*domain.Post, error) {
	var post domain.Post
	query := r.db.Rebind(`
		SELECT * FROM posts
		WHERE announcement_id = ?
		ORDER BY version DESC
		LIMIT 1
	`)

	if err := r.db.GetContext(ctx, &post, query, announcementID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post for announcement %d: %w", announcementID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// Approve records who signed off on a draft.
func (r *PostRepository) Approve(ctx context.Context, id int64, approvedBy string) error {
	query := r.db.Rebind(`
		UPDATE posts
		SET approved_by = ?, approved_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query, approvedBy, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to approve post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	return nil
}

// MarkPosted records that a draft went out, with the live URL.
func (r *PostRepository) MarkPosted(ctx context.Context, id int64, linkedInURL string) error {
	query := r.db.Rebind(`
		UPDATE posts
		SET posted_at = ?, linkedin_url = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), linkedInURL, id)
	if err != nil {
		return fmt.Errorf("failed to mark post as posted: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	return nil
}
