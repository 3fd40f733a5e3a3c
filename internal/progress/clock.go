// Package progress computes derived tracking statistics: normalized targets,
// completion totals and percentages, recent-history strips, and streaks.
//
// Every function here is pure arithmetic over in-memory records. Callers pass
// a Clock so "today" is explicit and testable, and all date handling uses the
// local calendar day (never a UTC-shifted date), matching what trackers store
// in log_date.
package progress

import (
	"fmt"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD format for all stored dates.
const DateLayout = "2006-01-02"

// Clock supplies the current time. Inject a fixed clock in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Today returns the local calendar date as YYYY-MM-DD. The string is built
// from the clock's local year/month/day components rather than a UTC
// timestamp, so users behind UTC don't see the day roll over early.
func Today(c Clock) string {
	t := c.Now()
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// StartOfWeek returns the most recent Sunday (today, if today is Sunday)
// as a local YYYY-MM-DD string. Weekly reviews key off this date.
func StartOfWeek(c Clock) string {
	t := c.Now()
	back := int(t.Weekday()) // Sunday = 0
	sunday := t.AddDate(0, 0, -back)
	return fmt.Sprintf("%04d-%02d-%02d", sunday.Year(), int(sunday.Month()), sunday.Day())
}

// Day pairs a date with its short weekday label.
type Day struct {
	Date    string // YYYY-MM-DD
	Weekday string // "Sun".."Sat"
}

// LastNDays returns the n local calendar days ending today, oldest first.
func LastNDays(c Clock, n int) []Day {
	t := c.Now()
	days := make([]Day, 0, n)
	for i := n - 1; i >= 0; i-- {
		d := t.AddDate(0, 0, -i)
		days = append(days, Day{
			Date:    fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day()),
			Weekday: d.Weekday().String()[:3],
		})
	}
	return days
}

// WeekdayName returns the three-letter weekday label ("Mon".."Sun") for a
// YYYY-MM-DD date, matching the labels stored in an action step's day list.
// Returns "" for an unparseable date.
func WeekdayName(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()[:3]
}

// prevDay returns the date one calendar day before the given YYYY-MM-DD date.
func prevDay(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, -1).Format(DateLayout)
}
