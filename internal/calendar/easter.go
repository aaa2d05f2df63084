package calendar

import (
	"time"
)

// EasterSunday calculates the date of Western Easter Sunday for a given year
// using the anonymous Gregorian algorithm (Meeus/Jones/Butcher).
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return Date(year, time.Month(month), day)
}

// OrthodoxEaster returns the Easter Sunday used by the Orthodox calculators.
//
// It is Western Easter plus seven days. This is an approximation: the real
// Julian computus lands on the same Sunday as Western Easter in some years and
// up to five weeks later in others. See JulianEaster for the exact date.
func OrthodoxEaster(year int) time.Time {
	return AddDays(EasterSunday(year), 7)
}

// JulianEaster calculates Orthodox Easter with the Julian computus and
// converts the result to the Gregorian calendar.
//
// The Julian/Gregorian offset is 13 days for 1900-2099; outside that range the
// result drifts by the century difference.
func JulianEaster(year int) time.Time {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	month := (d + e + 114) / 31
	day := ((d + e + 114) % 31) + 1

	return AddDays(Date(year, time.Month(month), day), 13)
}
