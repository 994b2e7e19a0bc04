package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/people-moves/internal/domain"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// CompanyRepository handles database operations for tracked companies.
type CompanyRepository struct {
	db *sqlx.DB
}

// NewCompanyRepository creates a new company repository.
func NewCompanyRepository(db *sqlx.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// companyRow mirrors the companies table. Aliases are stored as a JSON
// array in a text column so both SQLite and PostgreSQL handle them the
// same way.
type companyRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Domain    string    `db:"domain"`
	Website   string    `db:"website"`
	Aliases   string    `db:"aliases"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r companyRow) toDomain() (*domain.Company, error) {
	c := &domain.Company{
		ID:        r.ID,
		Name:      r.Name,
		Domain:    r.Domain,
		Website:   r.Website,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Aliases != "" {
		if err := json.Unmarshal([]byte(r.Aliases), &c.Aliases); err != nil {
			return nil, fmt.Errorf("failed to decode aliases for company %d: %w", r.ID, err)
		}
	}
	return c, nil
}

func encodeAliases(aliases []string) (string, error) {
	if aliases == nil {
		aliases = []string{}
	}
	data, err := json.Marshal(aliases)
	if err != nil {
		return "", fmt.Errorf("failed to encode aliases: %w", err)
	}
	return string(data), nil
}

// Create inserts a new company.
func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	aliases, err := encodeAliases(company.Aliases)
	if err != nil {
		return err
	}

	query := r.db.Rebind(`
		INSERT INTO companies (name, domain, website, aliases, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`)

	result, err := r.db.ExecContext(ctx, query,
		company.Name, company.Domain, company.Website, aliases, company.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	if id, idErr := result.LastInsertId(); idErr == nil {
		company.ID = id
	}
	return nil
}

// GetByID retrieves a company by its ID.
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var row companyRow
	query := r.db.Rebind(`SELECT * FROM companies WHERE id = ?`)

	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("company %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return row.toDomain()
}

// ListActive retrieves all active companies ordered by name.
func (r *CompanyRepository) ListActive(ctx context.Context) ([]domain.Company, error) {
	var rows []companyRow
	query := `SELECT * FROM companies WHERE is_active = TRUE ORDER BY name ASC`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	companies := make([]domain.Company, 0, len(rows))
	for _, row := range rows {
		c, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		companies = append(companies, *c)
	}
	return companies, nil
}

// Upsert inserts a company or updates an existing one matched by name.
// Used by the CSV importer so re-imports are idempotent.
func (r *CompanyRepository) Upsert(ctx context.Context, company *domain.Company) error {
	aliases, err := encodeAliases(company.Aliases)
	if err != nil {
		return err
	}

	query := r.db.Rebind(`
		INSERT INTO companies (name, domain, website, aliases, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE SET
			domain = excluded.domain,
			website = excluded.website,
			aliases = excluded.aliases,
			is_active = excluded.is_active,
			updated_at = CURRENT_TIMESTAMP
	`)

	if _, execErr := r.db.ExecContext(ctx, query,
		company.Name, company.Domain, company.Website, aliases, company.IsActive); execErr != nil {
		return fmt.Errorf("failed to upsert company %q: %w", company.Name, execErr)
	}
	return nil
}

// SetActive toggles a company's active flag.
func (r *CompanyRepository) SetActive(ctx context.Context, id int64, active bool) error {
	query := r.db.Rebind(`
		UPDATE companies SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("company %d: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the total number of companies.
func (r *CompanyRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM companies`); err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return count, nil
}
