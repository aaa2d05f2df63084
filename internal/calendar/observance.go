package calendar

import "time"

// Shift moves a nominal holiday date to the day it is observed.
type Shift func(year int, month time.Month, day int) time.Time

// ObservedUS moves a Saturday holiday back to Friday and a Sunday holiday
// forward to Monday. A Saturday January 1 is observed on December 31 of the
// previous year.
func ObservedUS(year int, month time.Month, day int) time.Time {
	d := Date(year, month, day)
	switch d.Weekday() {
	case time.Saturday:
		return AddDays(d, -1)
	case time.Sunday:
		return AddDays(d, 1)
	}
	return d
}

// ObservedUK moves weekend holidays forward to the following Monday
// (Saturday +2, Sunday +1).
func ObservedUK(year int, month time.Month, day int) time.Time {
	d := Date(year, month, day)
	switch d.Weekday() {
	case time.Saturday:
		return AddDays(d, 2)
	case time.Sunday:
		return AddDays(d, 1)
	}
	return d
}

// ObservedSunday moves only Sunday holidays, to the following Monday.
// Saturday holidays stay where they are.
func ObservedSunday(year int, month time.Month, day int) time.Time {
	d := Date(year, month, day)
	if d.Weekday() == time.Sunday {
		return AddDays(d, 1)
	}
	return d
}

// NextMonday moves a holiday to the following Monday unless it already
// falls on one.
func NextMonday(year int, month time.Month, day int) time.Time {
	return WeekdayOnOrAfter(year, month, day, time.Monday)
}

// Shift families per jurisdiction.
var (
	ObservedCA Shift = ObservedUS
	ObservedAU Shift = ObservedUK
	ObservedNZ Shift = ObservedUK
	ObservedIE Shift = ObservedUK
)

// Distinct resolves an observance collision between two holidays of the
// same jurisdiction: when next lands on prev's day it is pushed one more day.
func Distinct(prev, next time.Time) time.Time {
	if Key(prev) == Key(next) {
		return AddDays(next, 1)
	}
	return next
}
