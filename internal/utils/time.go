package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// ParseDate accepts "2006-01-02" or "2006-01-02 15:04" in loc. A bare date
// lands at noon so small timezone shifts keep it on the same calendar day.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(DateTimeLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD [HH:MM]", s)
	}
	return t.Add(12 * time.Hour), nil
}

// FormatDay renders t as a calendar day in loc, e.g. "Mon 02 Jan 2006".
func FormatDay(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon 02 Jan 2006")
}

// FormatDateTime renders t in loc with minute precision.
func FormatDateTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon 02 Jan 2006 15:04")
}
