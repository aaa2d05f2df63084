package holidays

import (
	"time"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
)

// Germany returns the nationwide holidays. Reformation Day was nationwide
// only for its 500th anniversary in 2017.
func Germany(year int, _ Options) YearMap {
	b := newBuilder("DE")
	b.add(fixed(year, time.January, 1), "Neujahr", "New Year's Day")
	b.add(easter(year, -2), "Karfreitag", "Good Friday")
	b.add(easter(year, 1), "Ostermontag", "Easter Monday")
	b.add(fixed(year, time.May, 1), "Tag der Arbeit", "Labour Day")
	b.add(easter(year, 39), "Christi Himmelfahrt", "Ascension Day")
	b.add(easter(year, 50), "Pfingstmontag", "Whit Monday")
	b.add(fixed(year, time.October, 3), "Tag der Deutschen Einheit", "German Unity Day")
	if year == 2017 {
		b.add(fixed(year, time.October, 31), "Reformationstag", "Reformation Day")
	}
	b.add(fixed(year, time.December, 25), "Weihnachten", "Christmas")
	b.add(fixed(year, time.December, 26), "Zweiter Weihnachtsfeiertag", "Boxing Day")
	return b.done()
}

func Spain(year int, _ Options) YearMap {
	b := newBuilder("ES")
	b.add(fixed(year, time.January, 1), "Año Nuevo", "New Year's Day")
	b.add(fixed(year, time.January, 6), "Epifanía del Señor", "Epiphany")
	b.add(easter(year, -2), "Viernes Santo", "Good Friday")
	b.add(fixed(year, time.May, 1), "Fiesta del Trabajo", "Labour Day")
	b.add(fixed(year, time.August, 15), "Asunción de la Virgen", "Assumption")
	b.add(fixed(year, time.October, 12), "Fiesta Nacional de España", "National Day")
	b.add(fixed(year, time.November, 1), "Todos los Santos", "All Saints' Day")
	b.add(fixed(year, time.December, 6), "Día de la Constitución", "Constitution Day")
	b.add(fixed(year, time.December, 8), "Inmaculada Concepción", "Immaculate Conception")
	b.add(fixed(year, time.December, 25), "Navidad", "Christmas")
	return b.done()
}

// Italy returns the national holidays. St Francis of Assisi became a
// national holiday again from 2026.
func Italy(year int, _ Options) YearMap {
	b := newBuilder("IT")
	b.add(fixed(year, time.January, 1), "Capodanno", "New Year's Day")
	b.add(fixed(year, time.January, 6), "Epifania", "Epiphany")
	b.add(easter(year, 0), "Pasqua", "Easter Sunday")
	b.add(easter(year, 1), "Lunedì dell'Angelo", "Easter Monday")
	b.add(fixed(year, time.April, 25), "Festa della Liberazione", "Liberation Day")
	b.add(fixed(year, time.May, 1), "Festa del Lavoro", "Labour Day")
	b.add(fixed(year, time.June, 2), "Festa della Repubblica", "Republic Day")
	b.add(fixed(year, time.August, 15), "Ferragosto", "Assumption")
	if year >= 2026 {
		b.add(fixed(year, time.October, 4), "San Francesco d'Assisi", "St Francis of Assisi")
	}
	b.add(fixed(year, time.November, 1), "Ognissanti", "All Saints' Day")
	b.add(fixed(year, time.December, 8), "Immacolata Concezione", "Immaculate Conception")
	b.add(fixed(year, time.December, 25), "Natale", "Christmas")
	b.add(fixed(year, time.December, 26), "Santo Stefano", "St Stephen's Day")
	return b.done()
}

// Portugal returns the national holidays. Four of them were suspended from
// 2013 to 2015.
func Portugal(year int, _ Options) YearMap {
	suspended := year >= 2013 && year <= 2015

	b := newBuilder("PT")
	b.add(fixed(year, time.January, 1), "Ano Novo", "New Year's Day")
	b.add(easter(year, -2), "Sexta-feira Santa", "Good Friday")
	b.add(easter(year, 0), "Páscoa", "Easter Sunday")
	b.add(fixed(year, time.April, 25), "Dia da Liberdade", "Freedom Day")
	b.add(fixed(year, time.May, 1), "Dia do Trabalhador", "Labour Day")
	if !suspended {
		b.add(easter(year, 60), "Corpo de Deus", "Corpus Christi")
	}
	b.add(fixed(year, time.June, 10), "Dia de Portugal", "Portugal Day")
	b.add(fixed(year, time.August, 15), "Assunção de Nossa Senhora", "Assumption")
	if !suspended {
		b.add(fixed(year, time.October, 5), "Implantação da República", "Republic Day")
		b.add(fixed(year, time.November, 1), "Dia de Todos os Santos", "All Saints' Day")
		b.add(fixed(year, time.December, 1), "Restauração da Independência", "Restoration of Independence")
	}
	b.add(fixed(year, time.December, 8), "Imaculada Conceição", "Immaculate Conception")
	b.add(fixed(year, time.December, 25), "Natal", "Christmas")
	return b.done()
}

// Netherlands returns the national holidays. King's Day (April 27 from
// 2014) and Queen's Day (April 30 before) move back a day when they fall on
// a Sunday.
func Netherlands(year int, _ Options) YearMap {
	b := newBuilder("NL")
	b.add(fixed(year, time.January, 1), "Nieuwjaarsdag", "New Year's Day")
	b.add(easter(year, 0), "Eerste Paasdag", "Easter Sunday")
	b.add(easter(year, 1), "Tweede Paasdag", "Easter Monday")
	if year >= 2014 {
		b.add(sundayBack(fixed(year, time.April, 27)), "Koningsdag", "King's Day")
	} else {
		b.add(sundayBack(fixed(year, time.April, 30)), "Koninginnedag", "Queen's Day")
	}
	b.add(fixed(year, time.May, 5), "Bevrijdingsdag", "Liberation Day")
	b.add(easter(year, 39), "Hemelvaartsdag", "Ascension Day")
	b.add(easter(year, 49), "Eerste Pinksterdag", "Whit Sunday")
	b.add(easter(year, 50), "Tweede Pinksterdag", "Whit Monday")
	b.add(fixed(year, time.December, 25), "Eerste Kerstdag", "Christmas")
	b.add(fixed(year, time.December, 26), "Tweede Kerstdag", "Boxing Day")
	return b.done()
}

func sundayBack(d time.Time) time.Time {
	if d.Weekday() == time.Sunday {
		return calendar.AddDays(d, -1)
	}
	return d
}

func Belgium(year int, _ Options) YearMap {
	b := newBuilder("BE")
	b.add(fixed(year, time.January, 1), "Nieuwjaar", "New Year's Day")
	b.add(easter(year, 1), "Paasmaandag", "Easter Monday")
	b.add(fixed(year, time.May, 1), "Dag van de Arbeid", "Labour Day")
	b.add(easter(year, 39), "O.L.H. Hemelvaart", "Ascension Day")
	b.add(easter(year, 50), "Pinkstermaandag", "Whit Monday")
	b.add(fixed(year, time.July, 21), "Nationale feestdag", "National Day")
	b.add(fixed(year, time.August, 15), "O.L.V. Hemelvaart", "Assumption")
	b.add(fixed(year, time.November, 1), "Allerheiligen", "All Saints' Day")
	b.add(fixed(year, time.November, 11), "Wapenstilstand", "Armistice Day")
	b.add(fixed(year, time.December, 25), "Kerstmis", "Christmas")
	return b.done()
}

// Switzerland returns the federal day plus the holidays kept by most
// cantons.
func Switzerland(year int, _ Options) YearMap {
	b := newBuilder("CH")
	b.add(fixed(year, time.January, 1), "Neujahr", "New Year's Day")
	b.add(fixed(year, time.January, 2), "Berchtoldstag", "St Berchtold's Day")
	b.add(easter(year, -2), "Karfreitag", "Good Friday")
	b.add(easter(year, 1), "Ostermontag", "Easter Monday")
	b.add(easter(year, 39), "Auffahrt", "Ascension Day")
	b.add(easter(year, 50), "Pfingstmontag", "Whit Monday")
	b.add(fixed(year, time.August, 1), "Bundesfeier", "Swiss National Day")
	b.add(calendar.NthWeekdayOfMonth(year, time.September, time.Sunday, 3), "Eidgenössischer Dank-, Buss- und Bettag", "Federal Day of Thanksgiving")
	b.add(fixed(year, time.December, 25), "Weihnachten", "Christmas")
	b.add(fixed(year, time.December, 26), "Stephanstag", "St Stephen's Day")
	return b.done()
}

func Austria(year int, _ Options) YearMap {
	b := newBuilder("AT")
	b.add(fixed(year, time.January, 1), "Neujahr", "New Year's Day")
	b.add(fixed(year, time.January, 6), "Heilige Drei Könige", "Epiphany")
	b.add(easter(year, 1), "Ostermontag", "Easter Monday")
	b.add(fixed(year, time.May, 1), "Staatsfeiertag", "Labour Day")
	b.add(easter(year, 39), "Christi Himmelfahrt", "Ascension Day")
	b.add(easter(year, 50), "Pfingstmontag", "Whit Monday")
	b.add(easter(year, 60), "Fronleichnam", "Corpus Christi")
	b.add(fixed(year, time.August, 15), "Mariä Himmelfahrt", "Assumption")
	b.add(fixed(year, time.October, 26), "Nationalfeiertag", "National Day")
	b.add(fixed(year, time.November, 1), "Allerheiligen", "All Saints' Day")
	b.add(fixed(year, time.December, 8), "Mariä Empfängnis", "Immaculate Conception")
	b.add(fixed(year, time.December, 25), "Christtag", "Christmas")
	b.add(fixed(year, time.December, 26), "Stefanitag", "St Stephen's Day")
	return b.done()
}

// Poland returns the statutory days off. Epiphany returned in 2011 and
// Christmas Eve became a day off in 2025.
func Poland(year int, _ Options) YearMap {
	b := newBuilder("PL")
	b.add(fixed(year, time.January, 1), "Nowy Rok", "New Year's Day")
	if year >= 2011 {
		b.add(fixed(year, time.January, 6), "Święto Trzech Króli", "Epiphany")
	}
	b.add(easter(year, 0), "Wielkanoc", "Easter Sunday")
	b.add(easter(year, 1), "Poniedziałek Wielkanocny", "Easter Monday")
	b.add(fixed(year, time.May, 1), "Święto Pracy", "Labour Day")
	b.add(fixed(year, time.May, 3), "Święto Konstytucji 3 Maja", "Constitution Day")
	b.add(easter(year, 49), "Zielone Świątki", "Whit Sunday")
	b.add(easter(year, 60), "Boże Ciało", "Corpus Christi")
	b.add(fixed(year, time.August, 15), "Wniebowzięcie Najświętszej Maryi Panny", "Assumption")
	b.add(fixed(year, time.November, 1), "Wszystkich Świętych", "All Saints' Day")
	b.add(fixed(year, time.November, 11), "Narodowe Święto Niepodległości", "Independence Day")
	if year >= 2025 {
		b.add(fixed(year, time.December, 24), "Wigilia Bożego Narodzenia", "Christmas Eve")
	}
	b.add(fixed(year, time.December, 25), "Boże Narodzenie", "Christmas")
	b.add(fixed(year, time.December, 26), "Drugi dzień Bożego Narodzenia", "St Stephen's Day")
	return b.done()
}

func Czechia(year int, _ Options) YearMap {
	b := newBuilder("CZ")
	b.add(fixed(year, time.January, 1), "Den obnovy samostatného českého státu", "Restoration Day of the Independent Czech State")
	if year >= 2016 {
		b.add(easter(year, -2), "Velký pátek", "Good Friday")
	}
	b.add(easter(year, 1), "Velikonoční pondělí", "Easter Monday")
	b.add(fixed(year, time.May, 1), "Svátek práce", "Labour Day")
	b.add(fixed(year, time.May, 8), "Den vítězství", "Liberation Day")
	b.add(fixed(year, time.July, 5), "Den slovanských věrozvěstů Cyrila a Metoděje", "Saints Cyril and Methodius Day")
	b.add(fixed(year, time.July, 6), "Den upálení mistra Jana Husa", "Jan Hus Day")
	b.add(fixed(year, time.September, 28), "Den české státnosti", "St Wenceslas Day")
	b.add(fixed(year, time.October, 28), "Den vzniku samostatného československého státu", "Independent Czechoslovak State Day")
	b.add(fixed(year, time.November, 17), "Den boje za svobodu a demokracii", "Struggle for Freedom and Democracy Day")
	b.add(fixed(year, time.December, 24), "Štědrý den", "Christmas Eve")
	b.add(fixed(year, time.December, 25), "1. svátek vánoční", "Christmas")
	b.add(fixed(year, time.December, 26), "2. svátek vánoční", "St Stephen's Day")
	return b.done()
}

// Sweden includes the de facto days off (midsummer eve, Christmas Eve and
// New Year's Eve) alongside the statutory ones.
func Sweden(year int, _ Options) YearMap {
	b := newBuilder("SE")
	b.add(fixed(year, time.January, 1), "Nyårsdagen", "New Year's Day")
	b.add(fixed(year, time.January, 6), "Trettondedag jul", "Epiphany")
	b.add(easter(year, -2), "Långfredagen", "Good Friday")
	b.add(easter(year, 0), "Påskdagen", "Easter Sunday")
	b.add(easter(year, 1), "Annandag påsk", "Easter Monday")
	b.add(fixed(year, time.May, 1), "Första maj", "Labour Day")
	b.add(easter(year, 39), "Kristi himmelsfärdsdag", "Ascension Day")
	b.add(easter(year, 49), "Pingstdagen", "Whit Sunday")
	if year >= 2005 {
		b.add(fixed(year, time.June, 6), "Sveriges nationaldag", "National Day of Sweden")
	}
	b.add(midsummerEve(year), "Midsommarafton", "Midsummer Eve")
	b.add(midsummerDay(year), "Midsommardagen", "Midsummer Day")
	b.add(allSaintsSaturday(year), "Alla helgons dag", "All Saints' Day")
	b.add(fixed(year, time.December, 24), "Julafton", "Christmas Eve")
	b.add(fixed(year, time.December, 25), "Juldagen", "Christmas")
	b.add(fixed(year, time.December, 26), "Annandag jul", "Boxing Day")
	b.add(fixed(year, time.December, 31), "Nyårsafton", "New Year's Eve")
	return b.done()
}

func Norway(year int, _ Options) YearMap {
	b := newBuilder("NO")
	b.add(fixed(year, time.January, 1), "Første nyttårsdag", "New Year's Day")
	b.add(easter(year, -3), "Skjærtorsdag", "Maundy Thursday")
	b.add(easter(year, -2), "Langfredag", "Good Friday")
	b.add(easter(year, 0), "Første påskedag", "Easter Sunday")
	b.add(easter(year, 1), "Andre påskedag", "Easter Monday")
	b.add(fixed(year, time.May, 1), "Arbeidernes dag", "Labour Day")
	b.add(fixed(year, time.May, 17), "Grunnlovsdag", "Constitution Day")
	b.add(easter(year, 39), "Kristi himmelfartsdag", "Ascension Day")
	b.add(easter(year, 49), "Første pinsedag", "Whit Sunday")
	b.add(easter(year, 50), "Andre pinsedag", "Whit Monday")
	b.add(fixed(year, time.December, 25), "Første juledag", "Christmas")
	b.add(fixed(year, time.December, 26), "Andre juledag", "Boxing Day")
	return b.done()
}

// Denmark abolished Great Prayer Day after 2023.
func Denmark(year int, _ Options) YearMap {
	b := newBuilder("DK")
	b.add(fixed(year, time.January, 1), "Nytårsdag", "New Year's Day")
	b.add(easter(year, -3), "Skærtorsdag", "Maundy Thursday")
	b.add(easter(year, -2), "Langfredag", "Good Friday")
	b.add(easter(year, 0), "Påskedag", "Easter Sunday")
	b.add(easter(year, 1), "Anden påskedag", "Easter Monday")
	if year <= 2023 {
		b.add(easter(year, 26), "Store bededag", "Great Prayer Day")
	}
	b.add(easter(year, 39), "Kristi himmelfartsdag", "Ascension Day")
	b.add(easter(year, 49), "Pinsedag", "Whit Sunday")
	b.add(easter(year, 50), "Anden pinsedag", "Whit Monday")
	b.add(fixed(year, time.June, 5), "Grundlovsdag", "Constitution Day")
	b.add(fixed(year, time.December, 25), "Juledag", "Christmas")
	b.add(fixed(year, time.December, 26), "Anden juledag", "Boxing Day")
	return b.done()
}

func Finland(year int, _ Options) YearMap {
	b := newBuilder("FI")
	b.add(fixed(year, time.January, 1), "Uudenvuodenpäivä", "New Year's Day")
	b.add(fixed(year, time.January, 6), "Loppiainen", "Epiphany")
	b.add(easter(year, -2), "Pitkäperjantai", "Good Friday")
	b.add(easter(year, 0), "Pääsiäispäivä", "Easter Sunday")
	b.add(easter(year, 1), "Toinen pääsiäispäivä", "Easter Monday")
	b.add(fixed(year, time.May, 1), "Vappu", "May Day")
	b.add(easter(year, 39), "Helatorstai", "Ascension Day")
	b.add(easter(year, 49), "Helluntaipäivä", "Whit Sunday")
	b.add(midsummerEve(year), "Juhannusaatto", "Midsummer Eve")
	b.add(midsummerDay(year), "Juhannuspäivä", "Midsummer Day")
	b.add(allSaintsSaturday(year), "Pyhäinpäivä", "All Saints' Day")
	b.add(fixed(year, time.December, 6), "Itsenäisyyspäivä", "Independence Day")
	b.add(fixed(year, time.December, 24), "Jouluaatto", "Christmas Eve")
	b.add(fixed(year, time.December, 25), "Joulupäivä", "Christmas")
	b.add(fixed(year, time.December, 26), "Tapaninpäivä", "St Stephen's Day")
	return b.done()
}

// Greece dates its movable feasts from Orthodox Easter.
func Greece(year int, _ Options) YearMap {
	b := newBuilder("GR")
	b.add(fixed(year, time.January, 1), "Πρωτοχρονιά", "New Year's Day")
	b.add(fixed(year, time.January, 6), "Θεοφάνεια", "Epiphany")
	b.add(orthodox(year, -48), "Καθαρά Δευτέρα", "Clean Monday")
	b.add(fixed(year, time.March, 25), "Εικοστή Πέμπτη Μαρτίου", "Independence Day")
	b.add(orthodox(year, -2), "Μεγάλη Παρασκευή", "Orthodox Good Friday")
	b.add(orthodox(year, 0), "Κυριακή του Πάσχα", "Orthodox Easter Sunday")
	b.add(orthodox(year, 1), "Δευτέρα του Πάσχα", "Orthodox Easter Monday")
	b.add(fixed(year, time.May, 1), "Πρωτομαγιά", "Labour Day")
	b.add(orthodox(year, 50), "Αγίου Πνεύματος", "Orthodox Whit Monday")
	b.add(fixed(year, time.August, 15), "Κοίμηση της Θεοτόκου", "Assumption")
	b.add(fixed(year, time.October, 28), "Επέτειος του Όχι", "Ochi Day")
	b.add(fixed(year, time.December, 25), "Χριστούγεννα", "Christmas")
	b.add(fixed(year, time.December, 26), "Σύναξη της Θεοτόκου", "Synaxis of the Mother of God")
	return b.done()
}

func Romania(year int, _ Options) YearMap {
	b := newBuilder("RO")
	b.add(fixed(year, time.January, 1), "Anul Nou", "New Year's Day")
	b.add(fixed(year, time.January, 2), "A doua zi de Anul Nou", "Day after New Year's Day")
	if year >= 2024 {
		b.add(fixed(year, time.January, 6), "Boboteaza", "Epiphany")
		b.add(fixed(year, time.January, 7), "Sfântul Ioan Botezătorul", "Synaxis of St John the Baptist")
	}
	b.add(fixed(year, time.January, 24), "Ziua Unirii Principatelor Române", "Union Day")
	if year >= 2018 {
		b.add(orthodox(year, -2), "Vinerea Mare", "Orthodox Good Friday")
	}
	b.add(orthodox(year, 0), "Paștele", "Orthodox Easter Sunday")
	b.add(orthodox(year, 1), "A doua zi de Paște", "Orthodox Easter Monday")
	b.add(fixed(year, time.May, 1), "Ziua Muncii", "Labour Day")
	if year >= 2017 {
		b.add(fixed(year, time.June, 1), "Ziua Copilului", "Children's Day")
	}
	b.add(orthodox(year, 49), "Rusaliile", "Orthodox Whit Sunday")
	b.add(orthodox(year, 50), "A doua zi de Rusalii", "Orthodox Whit Monday")
	b.add(fixed(year, time.August, 15), "Adormirea Maicii Domnului", "Assumption")
	b.add(fixed(year, time.November, 30), "Sfântul Andrei", "St Andrew's Day")
	b.add(fixed(year, time.December, 1), "Ziua Națională a României", "National Day")
	b.add(fixed(year, time.December, 25), "Crăciunul", "Christmas")
	b.add(fixed(year, time.December, 26), "A doua zi de Crăciun", "Boxing Day")
	return b.done()
}

// Hungary restored Good Friday as a day off in 2017.
func Hungary(year int, _ Options) YearMap {
	b := newBuilder("HU")
	b.add(fixed(year, time.January, 1), "Újév", "New Year's Day")
	b.add(fixed(year, time.March, 15), "Nemzeti ünnep (1848)", "1848 Revolution Day")
	if year >= 2017 {
		b.add(easter(year, -2), "Nagypéntek", "Good Friday")
	}
	b.add(easter(year, 0), "Húsvétvasárnap", "Easter Sunday")
	b.add(easter(year, 1), "Húsvéthétfő", "Easter Monday")
	b.add(fixed(year, time.May, 1), "A munka ünnepe", "Labour Day")
	b.add(easter(year, 49), "Pünkösdvasárnap", "Whit Sunday")
	b.add(easter(year, 50), "Pünkösdhétfő", "Whit Monday")
	b.add(fixed(year, time.August, 20), "Az államalapítás ünnepe", "State Foundation Day")
	b.add(fixed(year, time.October, 23), "Nemzeti ünnep (1956)", "1956 Revolution Day")
	b.add(fixed(year, time.November, 1), "Mindenszentek", "All Saints' Day")
	b.add(fixed(year, time.December, 25), "Karácsony", "Christmas")
	b.add(fixed(year, time.December, 26), "Karácsony másnapja", "Boxing Day")
	return b.done()
}

func Estonia(year int, _ Options) YearMap {
	b := newBuilder("EE")
	b.add(fixed(year, time.January, 1), "Uusaasta", "New Year's Day")
	b.add(fixed(year, time.February, 24), "Iseseisvuspäev", "Independence Day")
	b.add(easter(year, -2), "Suur reede", "Good Friday")
	b.add(easter(year, 0), "Ülestõusmispühade 1. püha", "Easter Sunday")
	b.add(fixed(year, time.May, 1), "Kevadpüha", "Spring Day")
	b.add(easter(year, 49), "Nelipühade 1. püha", "Whit Sunday")
	b.add(fixed(year, time.June, 23), "Võidupüha", "Victory Day")
	b.add(fixed(year, time.June, 24), "Jaanipäev", "Midsummer Day")
	b.add(fixed(year, time.August, 20), "Taasiseseisvumispäev", "Restoration of Independence Day")
	b.add(fixed(year, time.December, 24), "Jõululaupäev", "Christmas Eve")
	b.add(fixed(year, time.December, 25), "Esimene jõulupüha", "Christmas")
	b.add(fixed(year, time.December, 26), "Teine jõulupüha", "Boxing Day")
	return b.done()
}

// Ukraine moved Christmas to December 25 in stages: both dates from 2017,
// December 25 alone from 2023, when Victory Day and Defenders Day moved too.
func Ukraine(year int, _ Options) YearMap {
	b := newBuilder("UA")
	b.add(fixed(year, time.January, 1), "Новий рік", "New Year's Day")
	if year <= 2022 {
		b.add(fixed(year, time.January, 7), "Різдво Христове (7 січня)", "Orthodox Christmas")
	}
	b.add(fixed(year, time.March, 8), "Міжнародний жіночий день", "International Women's Day")
	b.add(orthodox(year, 0), "Великдень", "Orthodox Easter Sunday")
	b.add(fixed(year, time.May, 1), "День праці", "Labour Day")
	if year >= 2023 {
		b.add(fixed(year, time.May, 8), "День пам'яті та перемоги над нацизмом", "Day of Remembrance and Victory")
	} else {
		b.add(fixed(year, time.May, 9), "День перемоги", "Victory Day")
	}
	b.add(orthodox(year, 49), "Трійця", "Orthodox Whit Sunday")
	b.add(fixed(year, time.June, 28), "День Конституції", "Constitution Day")
	b.add(fixed(year, time.August, 24), "День Незалежності", "Independence Day")
	switch {
	case year >= 2023:
		b.add(fixed(year, time.October, 1), "День захисників і захисниць України", "Defenders Day")
	case year >= 2015:
		b.add(fixed(year, time.October, 14), "День захисника України", "Defender of Ukraine Day")
	}
	if year >= 2017 {
		b.add(fixed(year, time.December, 25), "Різдво Христове", "Christmas")
	}
	return b.done()
}
