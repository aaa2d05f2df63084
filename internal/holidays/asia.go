package holidays

import (
	"time"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
)

// Korea returns the solar-calendar public holidays. Hangeul Day was not a
// day off from 1991 to 2012.
func Korea(year int, _ Options) YearMap {
	b := newBuilder("KR")
	b.add(fixed(year, time.January, 1), "신정", "New Year's Day")
	b.add(fixed(year, time.March, 1), "삼일절", "Independence Movement Day")
	b.add(fixed(year, time.May, 5), "어린이날", "Children's Day")
	b.add(fixed(year, time.June, 6), "현충일", "Memorial Day")
	b.add(fixed(year, time.August, 15), "광복절", "Liberation Day")
	b.add(fixed(year, time.October, 3), "개천절", "National Foundation Day")
	if year < 1991 || year >= 2013 {
		b.add(fixed(year, time.October, 9), "한글날", "Hangeul Day")
	}
	b.add(fixed(year, time.December, 25), "크리스마스", "Christmas")
	return b.done()
}

// China returns the fixed-date statutory holidays. Qingming is kept on
// April 4.
func China(year int, _ Options) YearMap {
	b := newBuilder("CN")
	b.add(fixed(year, time.January, 1), "元旦", "New Year's Day")
	b.add(fixed(year, time.April, 4), "清明节", "Qingming Festival")
	b.add(fixed(year, time.May, 1), "劳动节", "Labour Day")
	b.add(fixed(year, time.October, 1), "国庆节", "National Day")
	return b.done()
}

// India returns the three national holidays and Christmas.
func India(year int, _ Options) YearMap {
	b := newBuilder("IN")
	b.add(fixed(year, time.January, 26), "गणतंत्र दिवस", "Republic Day")
	b.add(fixed(year, time.August, 15), "स्वतंत्रता दिवस", "Independence Day")
	b.add(fixed(year, time.October, 2), "गांधी जयंती", "Gandhi Jayanti")
	b.add(fixed(year, time.December, 25), "Christmas", "Christmas")
	return b.done()
}

// Singapore moves a Sunday holiday to Monday.
func Singapore(year int, _ Options) YearMap {
	b := newBuilder("SG")
	b.same(calendar.ObservedSunday(year, time.January, 1), "New Year's Day")
	b.same(easter(year, -2), "Good Friday")
	b.same(calendar.ObservedSunday(year, time.May, 1), "Labour Day")
	b.same(calendar.ObservedSunday(year, time.August, 9), "National Day")
	b.same(calendar.ObservedSunday(year, time.December, 25), "Christmas Day")
	return b.done()
}

func Philippines(year int, _ Options) YearMap {
	b := newBuilder("PH")
	b.add(fixed(year, time.January, 1), "Bagong Taon", "New Year's Day")
	b.add(easter(year, -3), "Huwebes Santo", "Maundy Thursday")
	b.add(easter(year, -2), "Biyernes Santo", "Good Friday")
	b.add(fixed(year, time.April, 9), "Araw ng Kagitingan", "Day of Valor")
	b.add(fixed(year, time.May, 1), "Araw ng Paggawa", "Labour Day")
	b.add(fixed(year, time.June, 12), "Araw ng Kalayaan", "Independence Day")
	b.add(calendar.LastWeekdayOfMonth(year, time.August, time.Monday), "Araw ng mga Bayani", "National Heroes Day")
	b.add(fixed(year, time.November, 30), "Araw ni Bonifacio", "Bonifacio Day")
	b.add(fixed(year, time.December, 25), "Araw ng Pasko", "Christmas")
	b.add(fixed(year, time.December, 30), "Araw ni Rizal", "Rizal Day")
	return b.done()
}

// jpDay is a national holiday before substitute and bridge days are added.
type jpDay struct {
	date        time.Time
	local, intl string
}

// Japan returns the national holidays (国民の祝日) plus the two kinds of
// derived days off: citizens' holidays (国民の休日) on a day sandwiched
// between two national holidays, and substitute holidays (振替休日) when a
// holiday falls on a Sunday.
func Japan(year int, _ Options) YearMap {
	national := japanNational(year)

	taken := make(map[string]bool, len(national))
	for _, h := range national {
		taken[calendar.Key(h.date)] = true
	}

	b := newBuilder("JP")
	for _, h := range national {
		b.add(h.date, h.local, h.intl)
	}

	if year >= 1988 {
		for _, d := range japanBridges(year, taken) {
			b.add(d, "国民の休日", "Citizens' Holiday")
			taken[calendar.Key(d)] = true
		}
	}

	if year >= 1973 {
		for _, h := range national {
			if h.date.Weekday() != time.Sunday {
				continue
			}
			sub := calendar.AddDays(h.date, 1)
			if year >= 2007 {
				for taken[calendar.Key(sub)] {
					sub = calendar.AddDays(sub, 1)
				}
			} else if taken[calendar.Key(sub)] {
				continue
			}
			b.add(sub, "振替休日", "Substitute Holiday")
			taken[calendar.Key(sub)] = true
		}
	}
	return b.done()
}

// japanBridges returns non-holiday days whose previous and next days are
// both national holidays. Before 2007 a Sunday never qualified.
func japanBridges(year int, taken map[string]bool) []time.Time {
	var out []time.Time
	start := fixed(year, time.January, 2)
	end := fixed(year, time.December, 31)
	for d := start; d.Before(end); d = calendar.AddDays(d, 1) {
		if taken[calendar.Key(d)] {
			continue
		}
		if year < 2007 && d.Weekday() == time.Sunday {
			continue
		}
		if taken[calendar.Key(calendar.AddDays(d, -1))] && taken[calendar.Key(calendar.AddDays(d, 1))] {
			out = append(out, d)
		}
	}
	return out
}

func japanNational(year int) []jpDay {
	var days []jpDay
	add := func(d time.Time, local, intl string) {
		days = append(days, jpDay{date: d, local: local, intl: intl})
	}

	add(fixed(year, time.January, 1), "元日", "New Year's Day")
	if year >= 2000 {
		add(calendar.NthWeekdayOfMonth(year, time.January, time.Monday, 2), "成人の日", "Coming of Age Day")
	} else {
		add(fixed(year, time.January, 15), "成人の日", "Coming of Age Day")
	}
	add(fixed(year, time.February, 11), "建国記念の日", "National Foundation Day")
	if year >= 2020 {
		add(fixed(year, time.February, 23), "天皇誕生日", "Emperor's Birthday")
	}
	add(fixed(year, time.March, vernalEquinoxDay(year)), "春分の日", "Vernal Equinox Day")

	switch {
	case year >= 2007:
		add(fixed(year, time.April, 29), "昭和の日", "Showa Day")
	case year >= 1989:
		add(fixed(year, time.April, 29), "みどりの日", "Greenery Day")
	default:
		add(fixed(year, time.April, 29), "天皇誕生日", "Emperor's Birthday")
	}
	if year == 2019 {
		add(fixed(year, time.May, 1), "天皇の即位の日", "Enthronement Day")
	}
	add(fixed(year, time.May, 3), "憲法記念日", "Constitution Day")
	if year >= 2007 {
		add(fixed(year, time.May, 4), "みどりの日", "Greenery Day")
	}
	add(fixed(year, time.May, 5), "こどもの日", "Children's Day")

	switch {
	case year == 2020:
		add(fixed(year, time.July, 23), "海の日", "Marine Day")
	case year == 2021:
		add(fixed(year, time.July, 22), "海の日", "Marine Day")
	case year >= 2003:
		add(calendar.NthWeekdayOfMonth(year, time.July, time.Monday, 3), "海の日", "Marine Day")
	case year >= 1996:
		add(fixed(year, time.July, 20), "海の日", "Marine Day")
	}

	switch {
	case year == 2020:
		add(fixed(year, time.July, 24), "スポーツの日", "Sports Day")
	case year == 2021:
		add(fixed(year, time.July, 23), "スポーツの日", "Sports Day")
	}

	switch {
	case year == 2020:
		add(fixed(year, time.August, 10), "山の日", "Mountain Day")
	case year == 2021:
		add(fixed(year, time.August, 8), "山の日", "Mountain Day")
	case year >= 2016:
		add(fixed(year, time.August, 11), "山の日", "Mountain Day")
	}

	if year >= 2003 {
		add(calendar.NthWeekdayOfMonth(year, time.September, time.Monday, 3), "敬老の日", "Respect for the Aged Day")
	} else {
		add(fixed(year, time.September, 15), "敬老の日", "Respect for the Aged Day")
	}
	add(fixed(year, time.September, autumnalEquinoxDay(year)), "秋分の日", "Autumnal Equinox Day")

	switch {
	case year == 2020 || year == 2021:
		// moved to July for the Olympics
	case year >= 2020:
		add(calendar.NthWeekdayOfMonth(year, time.October, time.Monday, 2), "スポーツの日", "Sports Day")
	case year >= 2000:
		add(calendar.NthWeekdayOfMonth(year, time.October, time.Monday, 2), "体育の日", "Health and Sports Day")
	default:
		add(fixed(year, time.October, 10), "体育の日", "Health and Sports Day")
	}
	if year == 2019 {
		add(fixed(year, time.October, 22), "即位礼正殿の儀", "Enthronement Ceremony Day")
	}
	add(fixed(year, time.November, 3), "文化の日", "Culture Day")
	add(fixed(year, time.November, 23), "勤労感謝の日", "Labour Thanksgiving Day")
	if year >= 1989 && year <= 2018 {
		add(fixed(year, time.December, 23), "天皇誕生日", "Emperor's Birthday")
	}
	return days
}

// equinoxDay evaluates the National Astronomical Observatory approximation
// int(base + 0.242194*(y-1980) - int((y-1980)/4)).
func equinoxDay(year int, base float64) int {
	n := year - 1980
	leap := n / 4
	if n < 0 && n%4 != 0 {
		leap--
	}
	return int(base + 0.242194*float64(n) - float64(leap))
}

func vernalEquinoxDay(year int) int {
	switch {
	case year >= 1900 && year <= 1979:
		return equinoxDay(year, 20.8357)
	case year >= 1980 && year <= 2099:
		return equinoxDay(year, 20.8431)
	case year >= 2100 && year <= 2150:
		return equinoxDay(year, 21.8510)
	}
	return 20
}

func autumnalEquinoxDay(year int) int {
	switch {
	case year >= 1900 && year <= 1979:
		return equinoxDay(year, 23.2588)
	case year >= 1980 && year <= 2099:
		return equinoxDay(year, 23.2488)
	case year >= 2100 && year <= 2150:
		return equinoxDay(year, 24.2488)
	}
	return 23
}
