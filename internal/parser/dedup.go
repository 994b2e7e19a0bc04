package parser

import (
	"context"
	"sync"
	"time"
)

// RecentChecker is the storage collaborator consulted for temporal
// duplicates: whether a record for the same company and a fuzzy-matching
// person name was created within the rolling window. The engine only asks;
// it owns no persistent duplicate state.
type RecentChecker interface {
	ExistsRecent(ctx context.Context, companyID int64, personName string, window time.Duration) (bool, error)
}

// BatchDeduper collapses articles sharing a source URL within one
// aggregation run. It is an explicit per-batch accumulator, safe for
// concurrent workers; articles without a URL are never deduplicated.
type BatchDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewBatchDeduper creates an empty accumulator for one aggregation run.
func NewBatchDeduper() *BatchDeduper {
	return &BatchDeduper{seen: make(map[string]struct{})}
}

// Seen records the URL and reports whether it was already present. Empty
// URLs are always reported unseen so URL-less items are retained.
func (d *BatchDeduper) Seen(url string) bool {
	if url == "" {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[url]; ok {
		return true
	}
	d.seen[url] = struct{}{}
	return false
}

// Len returns how many distinct URLs have been recorded.
func (d *BatchDeduper) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
