package domain

import "time"

// MaxRawTextLen bounds the article excerpt stored on a Candidate.
const MaxRawTextLen = 2000

// Candidate is the engine's sole output: a validated executive-move
// extraction from one article. A Candidate exists only when the article
// passed the move classifier and a validated person name was found; title
// and action are best-effort.
type Candidate struct {
	PersonName string `json:"person_name"`
	NewTitle   string `json:"new_title,omitempty"`
	Action     string `json:"action"`

	// RawText is the cleaned title+body excerpt, capped at MaxRawTextLen.
	RawText    string `json:"raw_text"`
	SourceURL  string `json:"source_url,omitempty"`
	SourceName string `json:"source_name,omitempty"`

	// AnnouncementDate is derived from feed metadata only, never from the
	// article body. It is a calendar date: the time of day is truncated to
	// midnight UTC so stored dates compare consistently.
	AnnouncementDate *time.Time `json:"announcement_date,omitempty"`

	// CompanyID/CompanyName are attached by the aggregator after company
	// matching; zero values mean no tracked company was resolved yet.
	CompanyID   int64  `json:"company_id,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}
