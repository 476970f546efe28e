// Package localtime anchors boundary timestamps in the facility's business
// timezone. Clients exchange local wall-clock times; a string without an
// offset is interpreted in the configured zone, a string that already carries
// one is converted, never re-anchored.
package localtime

import (
	"errors"
	"time"
)

var ErrUnparsableTime = errors.New("unparsable local time")

// Layouts accepted at the API boundary, tried in order. Offset-bearing
// layouts must come first so a zoned timestamp is never mistaken for a
// naive one.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Parse reads a timestamp string and returns it anchored in loc.
func Parse(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range layouts[:2] {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(loc), nil
		}
	}
	for _, layout := range layouts[2:] {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnparsableTime
}

// ParseDate reads a YYYY-MM-DD calendar date and returns midnight of that
// day in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, ErrUnparsableTime
	}
	return t, nil
}

// DayBounds returns the half-open [00:00, 24:00) range of t's calendar day
// in loc.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// Load resolves a zone name from configuration. The zone is a named setting,
// not a literal inside parsing code.
func Load(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}
