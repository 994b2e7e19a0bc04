// Package store provides database connectivity and repositories for
// companies, announcements and posts. It speaks both SQLite (local runs)
// and PostgreSQL (deployed) depending on the DATABASE_URL scheme.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const (
	// DefaultMaxOpenConns is the default maximum number of open connections
	DefaultMaxOpenConns = 25
	// DefaultMaxIdleConns is the default maximum number of idle connections
	DefaultMaxIdleConns = 5
	// DefaultConnMaxLifetime is the default maximum connection lifetime
	DefaultConnMaxLifetime = 5 * time.Minute
	// DefaultPingTimeout is the default timeout for ping operations
	DefaultPingTimeout = 5 * time.Second
)

// driverFor maps a DATABASE_URL to a registered driver name. Anything that
// is not a postgres URL is treated as a SQLite DSN.
func driverFor(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return "postgres"
	}
	return "sqlite3"
}

// Open connects to the database named by url, applies pool settings and
// verifies the connection.
func Open(url string) (*sqlx.DB, error) {
	driver := driverFor(url)

	db, err := sqlx.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == "sqlite3" {
		// SQLite wants a single writer.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpenConns)
		db.SetMaxIdleConns(DefaultMaxIdleConns)
	}
	db.SetConnMaxLifetime(DefaultConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), DefaultPingTimeout)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", pingErr)
	}

	return db, nil
}

// schema targets SQLite, where INTEGER PRIMARY KEY aliases the rowid.
// PostgreSQL deployments create the equivalent tables with GENERATED
// identity columns via migrations and skip Migrate.
const schema = `
CREATE TABLE IF NOT EXISTS companies (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	domain TEXT NOT NULL DEFAULT '',
	website TEXT NOT NULL DEFAULT '',
	aliases TEXT NOT NULL DEFAULT '[]',
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS announcements (
	id INTEGER PRIMARY KEY,
	company_id INTEGER NOT NULL REFERENCES companies(id),
	person_name TEXT NOT NULL,
	new_title TEXT NOT NULL DEFAULT '',
	previous_title TEXT NOT NULL DEFAULT '',
	previous_company TEXT NOT NULL DEFAULT '',
	action TEXT NOT NULL DEFAULT 'named',
	raw_text TEXT NOT NULL DEFAULT '',
	source_url TEXT NOT NULL DEFAULT '',
	source_name TEXT NOT NULL DEFAULT '',
	announcement_date TIMESTAMP,
	status TEXT NOT NULL DEFAULT 'pending',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_announcements_status ON announcements(status);
CREATE INDEX IF NOT EXISTS idx_announcements_company ON announcements(company_id);

CREATE TABLE IF NOT EXISTS posts (
	id INTEGER PRIMARY KEY,
	announcement_id INTEGER NOT NULL REFERENCES announcements(id),
	content TEXT NOT NULL,
	version INTEGER NOT NULL DEFAULT 1,
	approved_by TEXT NOT NULL DEFAULT '',
	approved_at TIMESTAMP,
	posted_at TIMESTAMP,
	linkedin_url TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_posts_announcement ON posts(announcement_id);
`

// Migrate creates the schema if it does not exist yet. Only SQLite is
// migrated in-process.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if db.DriverName() != "sqlite3" {
		return nil
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
