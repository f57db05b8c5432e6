package models

import (
	"fmt"
	"time"
)

// DateLayout is the only layout dates are stored in.
const DateLayout = "2006-01-02"

// Date is a calendar date formatted as YYYY-MM-DD. Comparisons between
// well-formed dates are plain string comparisons.
type Date string

// DateOf formats the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// ParseDate validates s as a YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date(s), nil
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d < other
}

// Time parses d as midnight UTC.
func (d Date) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

func (d Date) String() string {
	return string(d)
}
