package domain

import "time"

// Announcement review statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusPosted   = "posted"
)

// Announcement is a stored executive-move record awaiting review. It is a
// persisted Candidate plus review state; persistence identity lives here,
// not on the Candidate.
type Announcement struct {
	ID               int64      `db:"id"                json:"id"`
	CompanyID        int64      `db:"company_id"        json:"company_id"`
	PersonName       string     `db:"person_name"       json:"person_name"`
	NewTitle         string     `db:"new_title"         json:"new_title,omitempty"`
	PreviousTitle    string     `db:"previous_title"    json:"previous_title,omitempty"`
	PreviousCompany  string     `db:"previous_company"  json:"previous_company,omitempty"`
	Action           string     `db:"action"            json:"action"`
	AnnouncementDate *time.Time `db:"announcement_date" json:"announcement_date,omitempty"`
	SourceURL        string     `db:"source_url"        json:"source_url,omitempty"`
	SourceName       string     `db:"source_name"       json:"source_name,omitempty"`
	RawText          string     `db:"raw_text"          json:"raw_text,omitempty"`
	Status           string     `db:"status"            json:"status"`
	CreatedAt        time.Time  `db:"created_at"        json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"        json:"updated_at"`

	// CompanyName is joined in list queries for the dashboard.
	CompanyName string `db:"company_name" json:"company_name,omitempty"`
}

// Post is a drafted social post for an approved announcement.
type Post struct {
	ID             int64      `db:"id"              json:"id"`
	AnnouncementID int64      `db:"announcement_id" json:"announcement_id"`
	Content        string     `db:"content"         json:"content"`
	Version        int        `db:"version"         json:"version"`
	ApprovedBy     string     `db:"approved_by"     json:"approved_by,omitempty"`
	ApprovedAt     *time.Time `db:"approved_at"     json:"approved_at,omitempty"`
	PostedAt       *time.Time `db:"posted_at"       json:"posted_at,omitempty"`
	LinkedInURL    string     `db:"linkedin_url"    json:"linkedin_url,omitempty"`
	CreatedAt      time.Time  `db:"created_at"      json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"      json:"updated_at"`
}
