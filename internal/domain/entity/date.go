package entity

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for business dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a local calendar date. The
// three components are read directly so the string is never interpreted as
// a UTC-midnight instant, which would shift the day near month boundaries
// in westward timezones.
func ParseDate(s string) (time.Time, bool) {
	var year, month, day int
	if _, err := fmt.Sscanf(s, "%4d-%2d-%2d", &year, &month, &day); err != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// Reject rollover such as 2024-02-31 normalizing to March.
	if date.Day() != day || date.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return date, true
}

// FormatDate renders a time as a YYYY-MM-DD business date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsValidDate reports whether s is a well-formed calendar date.
func IsValidDate(s string) bool {
	_, ok := ParseDate(s)
	return ok
}
