package domain

import (
	"strings"
	"time"
)

// legacyDateLayouts are tried after the configured layout so that files written
// with other day-first or ISO date strings still sort by calendar date.
var legacyDateLayouts = []string{
	"2/1/2006",
	"02/01/2006",
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"02.01.2006",
	"2.1.2006",
}

// ParseDay parses a display date into a calendar day at midnight UTC. The
// configured layout wins; the legacy layouts are a fallback. ok is false when
// nothing matches.
func ParseDay(s, layout string) (day time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if layout != "" {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateDay(t), true
		}
	}
	for _, l := range legacyDateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return truncateDay(t), true
		}
	}
	return time.Time{}, false
}

// ISODay renders a display date as YYYY-MM-DD, or "" when it cannot be parsed.
func ISODay(s, layout string) string {
	day, ok := ParseDay(s, layout)
	if !ok {
		return ""
	}
	return day.Format("2006-01-02")
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
