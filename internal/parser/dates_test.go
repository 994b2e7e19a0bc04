//nolint:testpackage // Testing internal engine pieces requires same package access
package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"rfc1123 feed date", "Mon, 02 Jan 2026 15:04:05 GMT", true},
		{"iso8601", "2026-01-02T15:04:05Z", true},
		{"us style", "Feb 24, 2026", true},
		{"garbage", "not a date at all", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.input)
			if tt.valid {
				require.NotNil(t, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestOlderThan(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, olderThan(now.AddDate(0, 0, -10), 7, now))
	assert.False(t, olderThan(now.AddDate(0, 0, -3), 7, now))
	assert.False(t, olderThan(now, 7, now))
}

func TestOlderThan_StripsOffsetBeforeComparing(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	// Same wall-clock reading in a +14h zone is not "older" by virtue of
	// its offset; only the wall clock counts.
	loc := time.FixedZone("ahead", 14*3600)
	inZone := time.Date(2026, 3, 9, 12, 0, 0, 0, loc)
	assert.False(t, olderThan(inZone, 7, now))

	tooOld := time.Date(2026, 3, 7, 11, 0, 0, 0, loc)
	assert.True(t, olderThan(tooOld, 7, now))
}
