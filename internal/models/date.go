package models

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted date format (ISO calendar date).
const DateLayout = "2006-01-02"

// ParseDate parses s as a calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// FormatDate renders d in DateLayout.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}
