package parser

import (
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate parses a feed-supplied publication date string. It accepts the
// mess of formats feeds actually emit and returns nil, never an error, when
// the string is empty or unparsable.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil
	}
	return &t
}

// olderThan reports whether t falls before the cutoff now-maxAgeDays.
// Timezone offsets are discarded before comparing: feeds mix aware and naive
// timestamps and an offset is not worth failing an age check over.
func olderThan(t time.Time, maxAgeDays int, now time.Time) bool {
	cutoff := stripZone(now).AddDate(0, 0, -maxAgeDays)
	return stripZone(t).Before(cutoff)
}

// stripZone keeps the wall-clock reading and drops the offset.
func stripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// dateOnly truncates a timestamp to its calendar date, midnight UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
