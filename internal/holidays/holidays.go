// Package holidays computes public holidays per jurisdiction.
//
// Each jurisdiction is a Calculator registered under a short code. A
// calculator is a pure function of (year, options): it produces a fresh
// YearMap on every call and touches no shared state, so calculators are safe
// to run concurrently.
package holidays

import (
	"sort"
	"time"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
)

// Occurrence is one holiday instance for one jurisdiction in one year.
// The JSON shape matches the fallback data source.
type Occurrence struct {
	LocalName         string `json:"name_local"`
	InternationalName string `json:"name_intl"`
	Jurisdiction      string `json:"country"`
}

// YearMap maps a Date Key to the holidays observed that day, in emission
// order.
type YearMap map[string][]Occurrence

// Keys returns the map's Date Keys in calendar order.
func (m YearMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of occurrences across all dates.
func (m YearMap) Len() int {
	n := 0
	for _, occ := range m {
		n += len(occ)
	}
	return n
}

// Clone returns a deep copy of m.
func (m YearMap) Clone() YearMap {
	out := make(YearMap, len(m))
	for k, occ := range m {
		out[k] = append([]Occurrence(nil), occ...)
	}
	return out
}

// Merge returns a new map holding base followed by each extra map's
// occurrences. Same-day entries are appended, never replaced.
func Merge(base YearMap, extras ...YearMap) YearMap {
	out := base.Clone()
	for _, extra := range extras {
		for _, k := range extra.Keys() {
			out[k] = append(out[k], extra[k]...)
		}
	}
	return out
}

// Options carries jurisdiction-specific configuration. Only France reads
// Regions today; every other calculator ignores it.
type Options struct {
	Regions map[string]bool `json:"regions,omitempty"`
}

// Region reports whether a region flag is enabled.
func (o Options) Region(key string) bool {
	return o.Regions[key]
}

// Calculator produces a jurisdiction's holidays for a year.
type Calculator interface {
	Calculate(year int, opts Options) YearMap
}

// CalculatorFunc adapts a plain function to Calculator.
type CalculatorFunc func(year int, opts Options) YearMap

// Calculate calls f.
func (f CalculatorFunc) Calculate(year int, opts Options) YearMap {
	return f(year, opts)
}

// builder accumulates one jurisdiction's occurrences.
type builder struct {
	code string
	m    YearMap
}

func newBuilder(code string) *builder {
	return &builder{code: code, m: make(YearMap)}
}

// add records a holiday whose local and international names differ.
func (b *builder) add(d time.Time, local, intl string) {
	key := calendar.Key(d)
	if key == "" {
		return
	}
	b.m[key] = append(b.m[key], Occurrence{
		LocalName:         local,
		InternationalName: intl,
		Jurisdiction:      b.code,
	})
}

// same records a holiday known by one name.
func (b *builder) same(d time.Time, name string) {
	b.add(d, name, name)
}

func (b *builder) done() YearMap {
	return b.m
}

// fixed is shorthand for a fixed calendar date.
func fixed(year int, month time.Month, day int) time.Time {
	return calendar.Date(year, month, day)
}

// easter returns Western Easter shifted by offset days.
func easter(year, offset int) time.Time {
	return calendar.AddDays(calendar.EasterSunday(year), offset)
}

// orthodox returns Orthodox Easter shifted by offset days.
func orthodox(year, offset int) time.Time {
	return calendar.AddDays(calendar.OrthodoxEaster(year), offset)
}

// midsummerEve is the Friday between June 19 and 25: the day after the last
// Thursday strictly before June 25.
func midsummerEve(year int) time.Time {
	return calendar.AddDays(calendar.LastWeekdayBefore(year, time.June, 25, time.Thursday), 1)
}

// midsummerDay is the Saturday between June 20 and 26.
func midsummerDay(year int) time.Time {
	return calendar.AddDays(midsummerEve(year), 1)
}

// allSaintsSaturday is the Saturday between October 31 and November 6.
func allSaintsSaturday(year int) time.Time {
	return calendar.WeekdayOnOrAfter(year, time.October, 31, time.Saturday)
}
