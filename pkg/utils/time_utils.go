package utils

import (
	"strings"
	"time"
)

// Layouts accepted for schedule timestamps. Zone-less layouts are read in
// the caller's location (the browser sends "2025-03-16T19:00" from
// datetime-local inputs).
var scheduleLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseScheduleTime parses s with the first matching layout. Offsets in s
// win over loc.
func ParseScheduleTime(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range scheduleLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
