package utils

import "time"

// DateLayout is the calendar-date form every persisted date uses. Dates are
// local calendar days with no time component, so they survive round trips
// across daylight-saving boundaries without drift.
const DateLayout = "2006-01-02"

// StripTime truncates t to midnight of its own calendar day, in its own
// location.
func StripTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateString formats t as a local YYYY-MM-DD calendar date.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as a local calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// DaysBetween returns the whole-day difference today-start, time of day
// stripped from both.
func DaysBetween(start, today time.Time) int {
	return int(StripTime(today).Sub(StripTime(start)).Hours() / 24)
}
