package holidays

import (
	"time"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
)

// UnitedStates returns the federal holidays. Fixed-date holidays follow the
// Friday/Monday observance rule; New Year's Day on a Saturday is observed on
// December 31 of the previous year.
func UnitedStates(year int, _ Options) YearMap {
	b := newBuilder("US")
	b.same(calendar.ObservedUS(year, time.January, 1), "New Year's Day")
	if year >= 1986 {
		b.same(calendar.NthWeekdayOfMonth(year, time.January, time.Monday, 3), "Martin Luther King Jr. Day")
	}
	b.same(calendar.NthWeekdayOfMonth(year, time.February, time.Monday, 3), "Presidents' Day")
	b.same(calendar.LastWeekdayOfMonth(year, time.May, time.Monday), "Memorial Day")
	if year >= 2021 {
		b.same(calendar.ObservedUS(year, time.June, 19), "Juneteenth")
	}
	b.same(calendar.ObservedUS(year, time.July, 4), "Independence Day")
	b.same(calendar.NthWeekdayOfMonth(year, time.September, time.Monday, 1), "Labor Day")
	b.same(calendar.NthWeekdayOfMonth(year, time.October, time.Monday, 2), "Columbus Day")
	b.same(calendar.ObservedUS(year, time.November, 11), "Veterans Day")
	b.same(calendar.NthWeekdayOfMonth(year, time.November, time.Thursday, 4), "Thanksgiving")
	b.same(calendar.ObservedUS(year, time.December, 25), "Christmas")
	return b.done()
}

// Canada returns the federal statutory holidays. Christmas and Boxing Day
// are shifted independently and may share a Monday.
func Canada(year int, _ Options) YearMap {
	b := newBuilder("CA")
	b.same(calendar.ObservedCA(year, time.January, 1), "New Year's Day")
	b.same(easter(year, -2), "Good Friday")
	b.same(calendar.WeekdayOnOrBefore(year, time.May, 24, time.Monday), "Victoria Day")
	b.same(calendar.ObservedCA(year, time.July, 1), "Canada Day")
	b.same(calendar.NthWeekdayOfMonth(year, time.September, time.Monday, 1), "Labour Day")
	if year >= 2021 {
		b.same(calendar.ObservedCA(year, time.September, 30), "Truth and Reconciliation Day")
	}
	b.same(calendar.NthWeekdayOfMonth(year, time.October, time.Monday, 2), "Thanksgiving")
	b.same(calendar.ObservedCA(year, time.November, 11), "Remembrance Day")
	b.same(calendar.ObservedCA(year, time.December, 25), "Christmas")
	b.same(calendar.ObservedCA(year, time.December, 26), "Boxing Day")
	return b.done()
}

// Mexico returns the statutory rest days of the Ley Federal del Trabajo.
// Since 2006 three of them move to Mondays.
func Mexico(year int, _ Options) YearMap {
	b := newBuilder("MX")
	b.add(fixed(year, time.January, 1), "Año Nuevo", "New Year's Day")
	if year >= 2006 {
		b.add(calendar.NthWeekdayOfMonth(year, time.February, time.Monday, 1), "Día de la Constitución", "Constitution Day")
		b.add(calendar.NthWeekdayOfMonth(year, time.March, time.Monday, 3), "Natalicio de Benito Juárez", "Benito Juárez's Birthday")
	} else {
		b.add(fixed(year, time.February, 5), "Día de la Constitución", "Constitution Day")
		b.add(fixed(year, time.March, 21), "Natalicio de Benito Juárez", "Benito Juárez's Birthday")
	}
	b.add(fixed(year, time.May, 1), "Día del Trabajo", "Labour Day")
	b.add(fixed(year, time.September, 16), "Día de la Independencia", "Independence Day")
	if transfer, ok := mexicoTransferOfPower(year); ok {
		b.add(transfer, "Transmisión del Poder Ejecutivo Federal", "Presidential Inauguration")
	}
	if year >= 2006 {
		b.add(calendar.NthWeekdayOfMonth(year, time.November, time.Monday, 3), "Día de la Revolución", "Revolution Day")
	} else {
		b.add(fixed(year, time.November, 20), "Día de la Revolución", "Revolution Day")
	}
	b.add(fixed(year, time.December, 25), "Navidad", "Christmas")
	return b.done()
}

// mexicoTransferOfPower is October 1 every six years from 2024 and
// December 1 in the sexenio years before it.
func mexicoTransferOfPower(year int) (time.Time, bool) {
	if year >= 2024 {
		if (year-2024)%6 == 0 {
			return fixed(year, time.October, 1), true
		}
		return time.Time{}, false
	}
	if (year-2018)%6 == 0 {
		return fixed(year, time.December, 1), true
	}
	return time.Time{}, false
}

// Brazil returns the national holidays plus Carnival Tuesday and Corpus
// Christi, which are observed nationally.
func Brazil(year int, _ Options) YearMap {
	b := newBuilder("BR")
	b.add(fixed(year, time.January, 1), "Ano Novo", "New Year's Day")
	b.add(easter(year, -47), "Carnaval", "Carnival")
	b.add(easter(year, -2), "Sexta-feira Santa", "Good Friday")
	b.add(fixed(year, time.April, 21), "Tiradentes", "Tiradentes' Day")
	b.add(fixed(year, time.May, 1), "Dia do Trabalho", "Labour Day")
	b.add(easter(year, 60), "Corpus Christi", "Corpus Christi")
	b.add(fixed(year, time.September, 7), "Independência", "Independence Day")
	b.add(fixed(year, time.October, 12), "Nossa Senhora Aparecida", "Our Lady of Aparecida")
	b.add(fixed(year, time.November, 2), "Finados", "All Souls' Day")
	b.add(fixed(year, time.November, 15), "Proclamação da República", "Republic Day")
	if year >= 2024 {
		b.add(fixed(year, time.November, 20), "Dia da Consciência Negra", "Black Consciousness Day")
	}
	b.add(fixed(year, time.December, 25), "Natal", "Christmas")
	return b.done()
}

// nearestMonday applies the movable-holiday rule shared by Argentina and
// Chile: Tuesday and Wednesday go back to Monday, Thursday and Friday go
// forward to the next Monday, weekends and Mondays stay.
func nearestMonday(year int, month time.Month, day int) time.Time {
	d := fixed(year, month, day)
	switch d.Weekday() {
	case time.Tuesday:
		return calendar.AddDays(d, -1)
	case time.Wednesday:
		return calendar.AddDays(d, -2)
	case time.Thursday:
		return calendar.AddDays(d, 4)
	case time.Friday:
		return calendar.AddDays(d, 3)
	}
	return d
}

// Argentina returns the national holidays, with the movable ones
// (feriados trasladables) shifted to Mondays.
func Argentina(year int, _ Options) YearMap {
	b := newBuilder("AR")
	b.add(fixed(year, time.January, 1), "Año Nuevo", "New Year's Day")
	b.add(easter(year, -48), "Carnaval", "Carnival Monday")
	b.add(easter(year, -47), "Carnaval", "Carnival Tuesday")
	b.add(fixed(year, time.March, 24), "Día Nacional de la Memoria por la Verdad y la Justicia", "Day of Remembrance for Truth and Justice")
	b.add(fixed(year, time.April, 2), "Día del Veterano y de los Caídos en la Guerra de Malvinas", "Malvinas Day")
	b.add(easter(year, -2), "Viernes Santo", "Good Friday")
	b.add(fixed(year, time.May, 1), "Día del Trabajador", "Labour Day")
	b.add(fixed(year, time.May, 25), "Día de la Revolución de Mayo", "May Revolution Day")
	if year >= 2016 {
		b.add(nearestMonday(year, time.June, 17), "Paso a la Inmortalidad del General Martín Miguel de Güemes", "Güemes Day")
	}
	b.add(fixed(year, time.June, 20), "Paso a la Inmortalidad del General Manuel Belgrano", "Flag Day")
	b.add(fixed(year, time.July, 9), "Día de la Independencia", "Independence Day")
	b.add(nearestMonday(year, time.August, 17), "Paso a la Inmortalidad del General José de San Martín", "San Martín Day")
	b.add(nearestMonday(year, time.October, 12), "Día del Respeto a la Diversidad Cultural", "Day of Respect for Cultural Diversity")
	b.add(nearestMonday(year, time.November, 20), "Día de la Soberanía Nacional", "National Sovereignty Day")
	b.add(fixed(year, time.December, 8), "Inmaculada Concepción de María", "Immaculate Conception")
	b.add(fixed(year, time.December, 25), "Navidad", "Christmas")
	return b.done()
}

// Chile returns the national holidays.
func Chile(year int, _ Options) YearMap {
	b := newBuilder("CL")
	b.add(fixed(year, time.January, 1), "Año Nuevo", "New Year's Day")
	b.add(easter(year, -2), "Viernes Santo", "Good Friday")
	b.add(easter(year, -1), "Sábado Santo", "Holy Saturday")
	b.add(fixed(year, time.May, 1), "Día del Trabajo", "Labour Day")
	b.add(fixed(year, time.May, 21), "Día de las Glorias Navales", "Navy Day")
	b.add(nearestMonday(year, time.June, 29), "San Pedro y San Pablo", "Saints Peter and Paul")
	b.add(fixed(year, time.July, 16), "Virgen del Carmen", "Our Lady of Mount Carmel")
	b.add(fixed(year, time.August, 15), "Asunción de la Virgen", "Assumption")
	b.add(fixed(year, time.September, 18), "Independencia Nacional", "Independence Day")
	b.add(fixed(year, time.September, 19), "Día de las Glorias del Ejército", "Army Day")
	b.add(nearestMonday(year, time.October, 12), "Encuentro de Dos Mundos", "Columbus Day")
	if year >= 2008 {
		b.add(fixed(year, time.October, 31), "Día de las Iglesias Evangélicas y Protestantes", "Reformation Day")
	}
	b.add(fixed(year, time.November, 1), "Día de Todos los Santos", "All Saints' Day")
	b.add(fixed(year, time.December, 8), "Inmaculada Concepción", "Immaculate Conception")
	b.add(fixed(year, time.December, 25), "Navidad", "Christmas")
	return b.done()
}

// Colombia returns the national holidays. Most religious and civic
// holidays move to the following Monday (Ley Emiliani).
func Colombia(year int, _ Options) YearMap {
	b := newBuilder("CO")
	b.add(fixed(year, time.January, 1), "Año Nuevo", "New Year's Day")
	b.add(calendar.NextMonday(year, time.January, 6), "Día de los Reyes Magos", "Epiphany")
	b.add(calendar.NextMonday(year, time.March, 19), "Día de San José", "Saint Joseph's Day")
	b.add(easter(year, -3), "Jueves Santo", "Maundy Thursday")
	b.add(easter(year, -2), "Viernes Santo", "Good Friday")
	b.add(fixed(year, time.May, 1), "Día del Trabajo", "Labour Day")
	b.add(easter(year, 43), "Ascensión del Señor", "Ascension Day")
	b.add(easter(year, 64), "Corpus Christi", "Corpus Christi")
	b.add(easter(year, 71), "Sagrado Corazón", "Sacred Heart")
	b.add(calendar.NextMonday(year, time.June, 29), "San Pedro y San Pablo", "Saints Peter and Paul")
	b.add(fixed(year, time.July, 20), "Día de la Independencia", "Independence Day")
	b.add(fixed(year, time.August, 7), "Batalla de Boyacá", "Battle of Boyacá")
	b.add(calendar.NextMonday(year, time.August, 15), "La Asunción de la Virgen", "Assumption")
	b.add(calendar.NextMonday(year, time.October, 12), "Día de la Raza", "Columbus Day")
	b.add(calendar.NextMonday(year, time.November, 1), "Día de Todos los Santos", "All Saints' Day")
	b.add(calendar.NextMonday(year, time.November, 11), "Independencia de Cartagena", "Independence of Cartagena")
	b.add(fixed(year, time.December, 8), "Día de la Inmaculada Concepción", "Immaculate Conception")
	b.add(fixed(year, time.December, 25), "Navidad", "Christmas")
	return b.done()
}

// Peru returns the national holidays.
func Peru(year int, _ Options) YearMap {
	b := newBuilder("PE")
	b.add(fixed(year, time.January, 1), "Año Nuevo", "New Year's Day")
	b.add(easter(year, -3), "Jueves Santo", "Maundy Thursday")
	b.add(easter(year, -2), "Viernes Santo", "Good Friday")
	b.add(fixed(year, time.May, 1), "Día del Trabajo", "Labour Day")
	b.add(fixed(year, time.June, 29), "San Pedro y San Pablo", "Saints Peter and Paul")
	b.add(fixed(year, time.July, 28), "Fiestas Patrias", "Independence Day")
	b.add(fixed(year, time.July, 29), "Fiestas Patrias", "Independence Day (second day)")
	if year >= 2022 {
		b.add(fixed(year, time.August, 6), "Batalla de Junín", "Battle of Junín")
	}
	b.add(fixed(year, time.August, 30), "Santa Rosa de Lima", "Saint Rose of Lima")
	b.add(fixed(year, time.October, 8), "Combate de Angamos", "Battle of Angamos")
	b.add(fixed(year, time.November, 1), "Día de Todos los Santos", "All Saints' Day")
	b.add(fixed(year, time.December, 8), "Inmaculada Concepción", "Immaculate Conception")
	if year >= 2022 {
		b.add(fixed(year, time.December, 9), "Batalla de Ayacucho", "Battle of Ayacucho")
	}
	b.add(fixed(year, time.December, 25), "Navidad", "Christmas")
	return b.done()
}
