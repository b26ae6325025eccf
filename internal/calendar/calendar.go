// Package calendar provides the week arithmetic behind the planner: finding
// the Monday that anchors a week, enumerating its days, and shifting whole
// weeks. All functions are pure and operate on dates truncated to midnight.
package calendar

import (
	"time"

	"mealweek/internal/constants"
)

// WeekStart returns the Monday on or before the given date. A date that is
// already a Monday is returned unchanged.
func WeekStart(date time.Time) time.Time {
	d := Truncate(date)
	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// WeekEnd returns the Sunday of the week anchored at weekStart.
func WeekEnd(weekStart time.Time) time.Time {
	return Truncate(weekStart).AddDate(0, 0, 6)
}

// WeekDates returns the seven dates of the week, Monday through Sunday.
func WeekDates(weekStart time.Time) []time.Time {
	ws := Truncate(weekStart)
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = ws.AddDate(0, 0, i)
	}
	return dates
}

// NavigateWeek shifts a week start by offset weeks. The offset may be
// negative, zero, or of any magnitude.
func NavigateWeek(weekStart time.Time, offset int) time.Time {
	return Truncate(weekStart).AddDate(0, 0, offset*7)
}

// Truncate drops the time-of-day portion of t, keeping its location.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FormatDate renders a date in the standard YYYY-MM-DD form used by the
// storage layer and the CLI.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(constants.DateFormat, s)
}

// WeekLabel renders the header label for a week, e.g. "Jan 12 - Jan 18, 2026".
func WeekLabel(weekStart time.Time) string {
	end := WeekEnd(weekStart)
	return weekStart.Format(constants.WeekLabelFormat) + " - " + end.Format(constants.WeekLabelFormat) + ", " + weekStart.Format("2006")
}
