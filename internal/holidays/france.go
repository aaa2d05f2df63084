package holidays

import (
	"time"
)

// France returns the national holidays plus the extra days of every region
// enabled in opts.Regions (see FranceRegions for the keys). Regional days
// are layered on with Merge, so a national holiday is never replaced.
func France(year int, opts Options) YearMap {
	return Merge(franceNational(year), franceRegional(year, opts))
}

func franceNational(year int) YearMap {
	b := newBuilder("FR")
	b.add(fixed(year, time.January, 1), "Jour de l'An", "New Year's Day")
	b.add(easter(year, 1), "Lundi de Pâques", "Easter Monday")
	b.add(fixed(year, time.May, 1), "Fête du Travail", "Labour Day")
	b.add(fixed(year, time.May, 8), "Victoire 1945", "VE Day")
	b.add(easter(year, 39), "Ascension", "Ascension Day")
	b.add(easter(year, 50), "Lundi de Pentecôte", "Whit Monday")
	b.add(fixed(year, time.July, 14), "Fête Nationale", "Bastille Day")
	b.add(fixed(year, time.August, 15), "Assomption", "Assumption")
	b.add(fixed(year, time.November, 1), "La Toussaint", "All Saints' Day")
	b.add(fixed(year, time.November, 11), "Armistice 1918", "Armistice Day")
	b.add(fixed(year, time.December, 25), "Noël", "Christmas")
	return b.done()
}

// regionalDay is one holiday observed only in a French region.
type regionalDay struct {
	region string
	date   func(year int) time.Time
	local  string
	intl   string
}

func on(month time.Month, day int) func(int) time.Time {
	return func(year int) time.Time { return fixed(year, month, day) }
}

// franceRegionalDays is ordered by FranceRegions.
var franceRegionalDays = []regionalDay{
	{"AM", func(y int) time.Time { return easter(y, -2) }, "Vendredi saint (Alsace–Moselle)", "Good Friday (Alsace–Moselle)"},
	{"AM", on(time.December, 26), "Saint Étienne (Alsace–Moselle)", "St Stephen's Day (Alsace–Moselle)"},
	{"RE", on(time.December, 20), "Abolition de l'esclavage (La Réunion)", "Abolition of Slavery (Réunion)"},
	{"GP", on(time.May, 27), "Abolition de l'esclavage (Guadeloupe)", "Abolition of Slavery (Guadeloupe)"},
	{"MQ", on(time.May, 22), "Abolition de l'esclavage (Martinique)", "Abolition of Slavery (Martinique)"},
	{"GF", on(time.June, 10), "Abolition de l'esclavage (Guyane)", "Abolition of Slavery (French Guiana)"},
	{"YT", on(time.April, 27), "Abolition de l'esclavage (Mayotte)", "Abolition of Slavery (Mayotte)"},
	{"NC", on(time.September, 24), "Fête de la Citoyenneté (Nouvelle-Calédonie)", "Citizenship Day (New Caledonia)"},
	{"PF", on(time.June, 29), "Fête de l'Autonomie (Polynésie française)", "Autonomy Day (French Polynesia)"},
	{"WF", on(time.April, 28), "Saint Pierre Chanel (Wallis‑et‑Futuna)", "Saint Peter Chanel (Wallis & Futuna)"},
}

func franceRegional(year int, opts Options) YearMap {
	b := newBuilder("FR")
	for _, rd := range franceRegionalDays {
		if opts.Region(rd.region) {
			b.add(rd.date(year), rd.local, rd.intl)
		}
	}
	return b.done()
}
