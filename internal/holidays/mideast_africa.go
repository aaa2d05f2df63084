package holidays

import (
	"time"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
)

// Turkey returns the civil holidays. The religious bayrams follow the
// Hijri calendar and are not included.
func Turkey(year int, _ Options) YearMap {
	b := newBuilder("TR")
	b.add(fixed(year, time.January, 1), "Yılbaşı", "New Year's Day")
	b.add(fixed(year, time.April, 23), "Ulusal Egemenlik ve Çocuk Bayramı", "National Sovereignty and Children's Day")
	b.add(fixed(year, time.May, 1), "Emek ve Dayanışma Günü", "Labour and Solidarity Day")
	b.add(fixed(year, time.May, 19), "Atatürk'ü Anma, Gençlik ve Spor Bayramı", "Youth and Sports Day")
	if year >= 2017 {
		b.add(fixed(year, time.July, 15), "Demokrasi ve Millî Birlik Günü", "Democracy and National Unity Day")
	}
	b.add(fixed(year, time.August, 30), "Zafer Bayramı", "Victory Day")
	b.add(fixed(year, time.October, 29), "Cumhuriyet Bayramı", "Republic Day")
	return b.done()
}

// UnitedArabEmirates returns the Gregorian-dated holidays. Commemoration
// Day moved from November 30 to December 1 in 2019.
func UnitedArabEmirates(year int, _ Options) YearMap {
	b := newBuilder("AE")
	b.add(fixed(year, time.January, 1), "رأس السنة الميلادية", "New Year's Day")
	switch {
	case year >= 2019:
		b.add(fixed(year, time.December, 1), "يوم الشهيد", "Commemoration Day")
	case year >= 2015:
		b.add(fixed(year, time.November, 30), "يوم الشهيد", "Commemoration Day")
	}
	b.add(fixed(year, time.December, 2), "اليوم الوطني", "National Day")
	b.add(fixed(year, time.December, 3), "عطلة اليوم الوطني", "National Day Holiday")
	return b.done()
}

func SaudiArabia(year int, _ Options) YearMap {
	b := newBuilder("SA")
	if year >= 2022 {
		b.add(fixed(year, time.February, 22), "يوم التأسيس", "Founding Day")
	}
	b.add(fixed(year, time.September, 23), "اليوم الوطني", "National Day")
	return b.done()
}

// SouthAfrica moves a Sunday holiday to Monday. When Christmas is observed
// on the Monday, the Day of Goodwill moves to Tuesday.
func SouthAfrica(year int, _ Options) YearMap {
	obs := calendar.ObservedSunday

	b := newBuilder("ZA")
	b.same(obs(year, time.January, 1), "New Year's Day")
	b.same(obs(year, time.March, 21), "Human Rights Day")
	b.same(easter(year, -2), "Good Friday")
	b.same(easter(year, 1), "Family Day")
	b.same(obs(year, time.April, 27), "Freedom Day")
	b.same(obs(year, time.May, 1), "Workers' Day")
	b.same(obs(year, time.June, 16), "Youth Day")
	b.same(obs(year, time.August, 9), "National Women's Day")
	b.same(obs(year, time.September, 24), "Heritage Day")
	b.same(obs(year, time.December, 16), "Day of Reconciliation")

	xmas := obs(year, time.December, 25)
	b.same(xmas, "Christmas Day")
	b.same(calendar.Distinct(xmas, obs(year, time.December, 26)), "Day of Goodwill")
	return b.done()
}

// Nigeria moved Democracy Day from May 29 to June 12 in 2019.
func Nigeria(year int, _ Options) YearMap {
	b := newBuilder("NG")
	b.same(fixed(year, time.January, 1), "New Year's Day")
	b.same(easter(year, -2), "Good Friday")
	b.same(easter(year, 1), "Easter Monday")
	b.same(fixed(year, time.May, 1), "Workers' Day")
	if year >= 2019 {
		b.same(fixed(year, time.June, 12), "Democracy Day")
	} else if year >= 2000 {
		b.same(fixed(year, time.May, 29), "Democracy Day")
	}
	b.same(fixed(year, time.October, 1), "Independence Day")
	b.same(fixed(year, time.December, 25), "Christmas Day")
	b.same(fixed(year, time.December, 26), "Boxing Day")
	return b.done()
}

// Kenya moves a Sunday holiday to Monday, and Boxing Day past a Monday
// Christmas.
func Kenya(year int, _ Options) YearMap {
	obs := calendar.ObservedSunday

	b := newBuilder("KE")
	b.add(obs(year, time.January, 1), "Mwaka Mpya", "New Year's Day")
	b.add(easter(year, -2), "Ijumaa Kuu", "Good Friday")
	b.add(easter(year, 1), "Jumatatu ya Pasaka", "Easter Monday")
	b.add(obs(year, time.May, 1), "Sikukuu ya Wafanyakazi", "Labour Day")
	b.add(obs(year, time.June, 1), "Siku ya Madaraka", "Madaraka Day")
	b.add(obs(year, time.October, 20), "Siku ya Mashujaa", "Mashujaa Day")
	b.add(obs(year, time.December, 12), "Siku ya Jamhuri", "Jamhuri Day")

	xmas := obs(year, time.December, 25)
	b.add(xmas, "Krismasi", "Christmas Day")
	b.add(calendar.Distinct(xmas, obs(year, time.December, 26)), "Siku ya Kupeana Zawadi", "Boxing Day")
	return b.done()
}

// Egypt returns the civil holidays plus Coptic Christmas and Sham
// el-Nessim, the Monday after Orthodox Easter.
func Egypt(year int, _ Options) YearMap {
	b := newBuilder("EG")
	b.add(fixed(year, time.January, 7), "عيد الميلاد المجيد", "Coptic Christmas")
	b.add(fixed(year, time.January, 25), "عيد ثورة 25 يناير", "Revolution Day (January 25)")
	b.add(orthodox(year, 1), "شم النسيم", "Sham el-Nessim")
	b.add(fixed(year, time.April, 25), "عيد تحرير سيناء", "Sinai Liberation Day")
	b.add(fixed(year, time.May, 1), "عيد العمال", "Labour Day")
	if year >= 2014 {
		b.add(fixed(year, time.June, 30), "ذكرى ثورة 30 يونيو", "June 30 Revolution Day")
	}
	b.add(fixed(year, time.July, 23), "عيد ثورة 23 يوليو", "Revolution Day (July 23)")
	b.add(fixed(year, time.October, 6), "عيد القوات المسلحة", "Armed Forces Day")
	return b.done()
}
