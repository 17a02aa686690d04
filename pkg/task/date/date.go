// Package date resolves the calendar days tasks are due on.
//
// Due dates are plain calendar days in ISO form (YYYY-MM-DD). Relative inputs
// such as weekday names are resolved against a caller supplied "now" using its
// local wall-clock date.
package date

import (
	"strings"
	"time"
)

// Layout is the ISO calendar-day layout used for every stored due date.
const Layout = "2006-01-02"

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Format renders t as an ISO calendar day.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// ParseISO parses a strict YYYY-MM-DD calendar day.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrParsing
	}
	return t, nil
}

// NextWeekday returns the next day after t falling on w.
// t's own weekday never resolves to t itself, it wraps to the following week.
func NextWeekday(t time.Time, w time.Weekday) time.Time {
	days := int(w - t.Weekday())
	if days <= 0 {
		days += 7
	}
	return StartOfDay(t).AddDate(0, 0, days)
}

// Instant returns the instant a due date sorts at.
// ok is false for absent or malformed dates, which sort as "never".
func Instant(due *string) (t time.Time, ok bool) {
	if due == nil {
		return time.Time{}, false
	}
	t, err := ParseISO(*due)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DaysBetween counts calendar days from from's wall-clock date to to's,
// ignoring their locations.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
