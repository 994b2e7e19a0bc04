package domain

import "time"

// Company is a tracked organization. Aliases are alternate name strings the
// company may be referenced under in article text; their order matters to the
// matcher, so they are a slice, not a set.
type Company struct {
	ID        int64     `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Domain    string    `db:"domain"     json:"domain,omitempty"`
	Website   string    `db:"website"    json:"website,omitempty"`
	Aliases   []string  `db:"-"          json:"aliases,omitempty"`
	IsActive  bool      `db:"is_active"  json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
