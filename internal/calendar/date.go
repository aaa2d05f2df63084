// Package calendar provides the date arithmetic shared by the holiday
// calculators: date keys, weekday-of-month lookups, Easter computation and
// weekend observance shifting.
//
// Every function here is pure and total. Dates are midnight UTC; the zero
// time.Time is the invalid date and maps to the empty Date Key.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// KeyLayout is the layout of a Date Key (zero-padded year-month-day).
const KeyLayout = "2006-01-02"

// Date returns midnight UTC of the given calendar day. Out-of-range months
// and days normalise the way time.Date does (e.g. January 0 is December 31
// of the previous year).
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Key returns the canonical Date Key for t, or "" for the zero time.
func Key(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(KeyLayout)
}

// ParseDateString parses a strict YYYY-MM-DD string.
func ParseDateString(s string) (time.Time, error) {
	t, err := time.Parse(KeyLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// ParseKey splits a Date-Key-like string into its numeric parts without
// validating the calendar day. It accepts unpadded components ("2025-3-7").
func ParseKey(s string) (year int, month time.Month, day int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}

	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, 0, false
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil || d < 1 || d > 31 {
		return 0, 0, 0, false
	}

	return y, time.Month(m), d, true
}

// AddDays offsets t by n calendar days, crossing month and year boundaries.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// NthWeekdayOfMonth returns the n-th (1-based) occurrence of weekday in the
// month. Values of n below 1 are treated as 1. A large n runs past the end of
// the month; callers needing "last" use LastWeekdayOfMonth.
func NthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	if n < 1 {
		n = 1
	}
	first := Date(year, month, 1)
	offset := (7 + int(weekday) - int(first.Weekday())) % 7
	return Date(year, month, 1+offset+(n-1)*7)
}

// LastWeekdayOfMonth returns the last occurrence of weekday in the month.
func LastWeekdayOfMonth(year int, month time.Month, weekday time.Weekday) time.Time {
	last := Date(year, month+1, 0)
	diff := (7 + int(last.Weekday()) - int(weekday)) % 7
	return AddDays(last, -diff)
}

// WeekdayOnOrBefore returns the latest date on or before year-month-day that
// falls on weekday.
func WeekdayOnOrBefore(year int, month time.Month, day int, weekday time.Weekday) time.Time {
	anchor := Date(year, month, day)
	diff := (7 + int(anchor.Weekday()) - int(weekday)) % 7
	return AddDays(anchor, -diff)
}

// LastWeekdayBefore walks backward from the day before year-month-day and
// returns the most recent date falling on weekday. The anchor itself never
// matches.
//
// Midsummer-eve holidays compose this with AddDays(..., 1): find the last
// weekday W strictly before the anchor, the holiday is the following day.
func LastWeekdayBefore(year int, month time.Month, day int, weekday time.Weekday) time.Time {
	d := Date(year, month, day-1)
	for d.Weekday() != weekday {
		d = AddDays(d, -1)
	}
	return d
}

// WeekdayOnOrAfter returns the earliest date on or after year-month-day that
// falls on weekday.
func WeekdayOnOrAfter(year int, month time.Month, day int, weekday time.Weekday) time.Time {
	anchor := Date(year, month, day)
	diff := (7 + int(weekday) - int(anchor.Weekday())) % 7
	return AddDays(anchor, diff)
}
