package holidays

import (
	"time"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
)

// Australia returns the national public holidays. The monarch's birthday
// is the second Monday in June.
func Australia(year int, _ Options) YearMap {
	b := newBuilder("AU")
	b.same(calendar.ObservedAU(year, time.January, 1), "New Year's Day")
	b.same(calendar.ObservedAU(year, time.January, 26), "Australia Day")
	b.same(easter(year, -2), "Good Friday")
	b.same(easter(year, 1), "Easter Monday")
	b.same(calendar.ObservedAU(year, time.April, 25), "ANZAC Day")
	b.same(calendar.NthWeekdayOfMonth(year, time.June, time.Monday, 2), monarchBirthday(year))

	xmas := calendar.ObservedAU(year, time.December, 25)
	b.same(xmas, "Christmas")
	b.same(calendar.Distinct(xmas, calendar.ObservedAU(year, time.December, 26)), "Boxing Day")
	return b.done()
}

func monarchBirthday(year int) string {
	if year >= 2023 {
		return "King's Birthday"
	}
	return "Queen's Birthday"
}

// matariki holds the legislated Matariki dates.
var matariki = map[int]time.Time{
	2022: fixed(2022, time.June, 24),
	2023: fixed(2023, time.July, 14),
	2024: fixed(2024, time.June, 28),
	2025: fixed(2025, time.June, 20),
	2026: fixed(2026, time.July, 10),
	2027: fixed(2027, time.June, 25),
	2028: fixed(2028, time.July, 14),
	2029: fixed(2029, time.July, 6),
	2030: fixed(2030, time.June, 21),
}

// NewZealand returns the national public holidays. Waitangi Day and ANZAC
// Day are mondayised only from 2014.
func NewZealand(year int, _ Options) YearMap {
	mondayised := func(month time.Month, day int) time.Time {
		if year >= 2014 {
			return calendar.ObservedNZ(year, month, day)
		}
		return fixed(year, month, day)
	}

	b := newBuilder("NZ")
	newYear := calendar.ObservedNZ(year, time.January, 1)
	b.same(newYear, "New Year's Day")
	b.same(calendar.Distinct(newYear, calendar.ObservedNZ(year, time.January, 2)), "Day after New Year's Day")
	b.same(mondayised(time.February, 6), "Waitangi Day")
	b.same(easter(year, -2), "Good Friday")
	b.same(easter(year, 1), "Easter Monday")
	b.same(mondayised(time.April, 25), "ANZAC Day")
	b.same(calendar.NthWeekdayOfMonth(year, time.June, time.Monday, 1), monarchBirthday(year))
	if d, ok := matariki[year]; ok {
		b.add(d, "Te Rā Aro ki a Matariki", "Matariki")
	}
	b.same(calendar.NthWeekdayOfMonth(year, time.October, time.Monday, 4), "Labour Day")

	xmas := calendar.ObservedNZ(year, time.December, 25)
	b.same(xmas, "Christmas")
	b.same(calendar.Distinct(xmas, calendar.ObservedNZ(year, time.December, 26)), "Boxing Day")
	return b.done()
}
