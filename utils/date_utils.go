package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"hotel-booking/models"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// ParseDate parses a "2006-01-02" calendar date into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatISODate renders t back into the wire format.
func FormatISODate(t time.Time) string {
	return t.Format(models.DateLayout)
}

// FormatLocalDate renders t the way the maintenance error message
// shows dates to users: M/D/YYYY, no zero padding.
func FormatLocalDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// Today truncates now to a UTC calendar day so past-date checks compare
// whole days, not clock times.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
