package holidays

import (
	"time"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
)

// UnitedKingdom merges the bank holidays of England and Wales, Scotland and
// Northern Ireland into one map. Regional entries carry the region in their
// name.
func UnitedKingdom(year int, _ Options) YearMap {
	return Merge(englandWales(year), scotland(year), northernIreland(year))
}

func englandWales(year int) YearMap {
	b := newBuilder("UK")
	b.same(calendar.ObservedUK(year, time.January, 1), "New Year's Day")
	b.same(easter(year, -2), "Good Friday")
	b.same(easter(year, 1), "Easter Monday")
	b.same(calendar.NthWeekdayOfMonth(year, time.May, time.Monday, 1), "Early May bank holiday")
	b.same(calendar.LastWeekdayOfMonth(year, time.May, time.Monday), "Spring bank holiday")
	b.same(calendar.LastWeekdayOfMonth(year, time.August, time.Monday), "Summer bank holiday")

	xmas := calendar.ObservedUK(year, time.December, 25)
	b.same(xmas, "Christmas")
	b.same(calendar.Distinct(xmas, calendar.ObservedUK(year, time.December, 26)), "Boxing Day")
	return b.done()
}

func scotland(year int) YearMap {
	b := newBuilder("UK")
	newYear := calendar.ObservedUK(year, time.January, 1)
	b.same(calendar.Distinct(newYear, calendar.ObservedUK(year, time.January, 2)), "2 January (Scotland)")
	b.same(calendar.NthWeekdayOfMonth(year, time.August, time.Monday, 1), "Summer bank holiday (Scotland)")
	b.same(calendar.ObservedUK(year, time.November, 30), "St Andrew's Day (Scotland)")
	return b.done()
}

func northernIreland(year int) YearMap {
	b := newBuilder("UK")
	b.same(calendar.ObservedUK(year, time.March, 17), "St Patrick's Day (N. Ireland)")
	b.same(calendar.ObservedUK(year, time.July, 12), "Battle of the Boyne (N. Ireland)")
	return b.done()
}

// Ireland returns the Irish public holidays. St Brigid's Day, added in
// 2023, is February 1 when that is a Friday and otherwise the first Monday
// of February.
func Ireland(year int, _ Options) YearMap {
	b := newBuilder("IE")
	b.same(calendar.ObservedIE(year, time.January, 1), "New Year's Day")
	if year >= 2023 {
		brigid := fixed(year, time.February, 1)
		if brigid.Weekday() != time.Friday {
			brigid = calendar.NthWeekdayOfMonth(year, time.February, time.Monday, 1)
		}
		b.same(brigid, "St Brigid's Day")
	}
	b.same(calendar.ObservedIE(year, time.March, 17), "St Patrick's Day")
	b.same(easter(year, 1), "Easter Monday")
	b.same(calendar.NthWeekdayOfMonth(year, time.May, time.Monday, 1), "May Day")
	b.same(calendar.NthWeekdayOfMonth(year, time.June, time.Monday, 1), "June Holiday")
	b.same(calendar.NthWeekdayOfMonth(year, time.August, time.Monday, 1), "August Holiday")
	b.same(calendar.LastWeekdayOfMonth(year, time.October, time.Monday), "October Bank Holiday")

	xmas := calendar.ObservedIE(year, time.December, 25)
	b.same(xmas, "Christmas")
	b.same(calendar.Distinct(xmas, calendar.ObservedIE(year, time.December, 26)), "St Stephen's Day")
	return b.done()
}
