package domain

// RawArticle is a feed item as delivered by a fetcher, before any parsing.
// Body may contain HTML; Published is whatever free-form date string the
// feed supplied. The struct is owned by the caller and never mutated by the
// extraction engine.
type RawArticle struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	Link       string `json:"link"`
	Published  string `json:"published"`
	SourceName string `json:"source_name"`
}
