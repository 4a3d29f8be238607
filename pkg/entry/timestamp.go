package entry

import (
	"strings"
	"time"
)

// LayoutISO is the ISO-8601 layout used for exported timestamps.
const LayoutISO = "2006-01-02T15:04:05.000Z"

// Clock returns the current time in milliseconds since the epoch.
type Clock func() int64

// SystemClock reads the wall clock.
func SystemClock() int64 {
	return time.Now().UnixMilli()
}

// Millis converts t to milliseconds since the epoch.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// Time converts milliseconds since the epoch to a UTC time.
func Time(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// FormatISO renders ms as an ISO-8601 UTC timestamp with millisecond
// precision.
func FormatISO(ms int64) string {
	return Time(ms).Format(LayoutISO)
}

// FormatDate renders ms as a local calendar date for display.
func FormatDate(ms int64) string {
	return time.UnixMilli(ms).Local().Format("2006-01-02")
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	LayoutISO,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006",
	"1/2/2006, 3:04:05 PM",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseDate parses a date-like string into milliseconds since the epoch.
// Layouts without a zone are read as UTC.
func ParseDate(v string) (int64, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return Millis(t), true
		}
	}
	return 0, false
}
