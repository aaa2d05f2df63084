// Package events merges the holiday maps of several jurisdictions with the
// user's custom holidays into display-ready events keyed by Date Key.
package events

import (
	"slices"
	"strings"

	"github.com/zapponejosh/worldcal-api/internal/holidays"
	"github.com/zapponejosh/worldcal-api/internal/store"
)

// LanguageDisplay selects which holiday name is used as the event label.
type LanguageDisplay string

const (
	Native LanguageDisplay = "native"
	App    LanguageDisplay = "app"
)

// ParseLanguage maps anything other than "native" to App.
func ParseLanguage(s string) LanguageDisplay {
	if strings.EqualFold(strings.TrimSpace(s), string(Native)) {
		return Native
	}
	return App
}

// Kind distinguishes public holidays from custom ones.
type Kind string

const (
	Public Kind = "public"
	Custom Kind = "custom"
)

// CountryEntry is one jurisdiction observing a public event.
type CountryEntry struct {
	Code  string `json:"code"`
	Local string `json:"local"`
	Flag  string `json:"flag"`
}

// DisplayEvent is one labelled entry on a calendar day.
type DisplayEvent struct {
	Label     string         `json:"label"`
	Countries []CountryEntry `json:"countries"`
	Kind      Kind           `json:"type"`
	Color     string         `json:"color,omitempty"`
}

// Calculators is the part of *holidays.Registry the aggregator uses.
type Calculators interface {
	Calculate(code string, year int, opts holidays.Options) (holidays.YearMap, bool)
}

// MetaLookup returns display metadata for a jurisdiction code.
type MetaLookup func(code string) (holidays.CountryMeta, bool)

// Aggregator builds display events. It holds no mutable state and is safe
// for concurrent use.
type Aggregator struct {
	registry Calculators
	meta     MetaLookup
}

// New returns an Aggregator. A nil meta falls back to holidays.Meta.
func New(registry Calculators, meta MetaLookup) *Aggregator {
	if meta == nil {
		meta = holidays.Meta
	}
	return &Aggregator{registry: registry, meta: meta}
}

// Input describes one aggregation request.
type Input struct {
	// Codes are the active jurisdictions, in display order.
	Codes    []string
	Year     int
	Language LanguageDisplay
	Regions  map[string]bool

	// Custom is the custom store's month-scoped result.
	Custom map[string][]store.CustomHoliday

	// External holds fetched maps for codes with no calculator.
	External map[string]holidays.YearMap
}

type codeMap struct {
	code string
	m    holidays.YearMap
}

// yearMaps computes each active jurisdiction's map once, in active order.
// Unknown codes without external data are skipped.
func (a *Aggregator) yearMaps(in Input) []codeMap {
	opts := holidays.Options{Regions: in.Regions}

	seen := make(map[string]bool, len(in.Codes))
	out := make([]codeMap, 0, len(in.Codes))
	for _, raw := range in.Codes {
		code := strings.ToUpper(strings.TrimSpace(raw))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true

		m, ok := a.registry.Calculate(code, in.Year, opts)
		if !ok {
			m, ok = in.External[code]
		}
		if !ok || len(m) == 0 {
			continue
		}
		out = append(out, codeMap{code: code, m: m})
	}
	return out
}

// PublicForYear returns the grouped public events for the whole year.
func (a *Aggregator) PublicForYear(in Input) map[string][]DisplayEvent {
	maps := a.yearMaps(in)

	keys := make(map[string]struct{})
	for _, cm := range maps {
		for k := range cm.m {
			keys[k] = struct{}{}
		}
	}

	out := make(map[string][]DisplayEvent, len(keys))
	for key := range keys {
		if evs := a.groupDay(key, maps, in.Language); len(evs) > 0 {
			out[key] = evs
		}
	}
	return out
}

// groupDay collapses the occurrences on key by displayed name. Groups keep
// the order in which their name was first seen; countries within a group
// keep jurisdiction order.
func (a *Aggregator) groupDay(key string, maps []codeMap, lang LanguageDisplay) []DisplayEvent {
	var evs []DisplayEvent
	index := make(map[string]int)

	for _, cm := range maps {
		var flag string
		if meta, ok := a.meta(cm.code); ok {
			flag = meta.Flag
		}

		for _, occ := range cm.m[key] {
			label := occ.InternationalName
			if lang == Native {
				label = occ.LocalName
			}

			i, ok := index[label]
			if !ok {
				i = len(evs)
				index[label] = i
				evs = append(evs, DisplayEvent{Label: label, Kind: Public, Countries: []CountryEntry{}})
			}
			evs[i].Countries = append(evs[i].Countries, CountryEntry{
				Code:  cm.code,
				Local: occ.LocalName,
				Flag:  flag,
			})
		}
	}
	return evs
}

// Build returns every event for the request: grouped public holidays first,
// then one custom event per record in store order.
func (a *Aggregator) Build(in Input) map[string][]DisplayEvent {
	out := a.PublicForYear(in)
	for key, hs := range in.Custom {
		for _, h := range hs {
			out[key] = append(out[key], CustomEvent(h))
		}
	}
	return out
}

// CustomEvent converts a custom holiday to its display form.
func CustomEvent(h store.CustomHoliday) DisplayEvent {
	return DisplayEvent{
		Label:     h.Title,
		Countries: []CountryEntry{},
		Kind:      Custom,
		Color:     h.Color,
	}
}

// ForDates keeps only the given keys, e.g. the days of a month grid. Keys
// with no events are omitted.
func ForDates(all map[string][]DisplayEvent, keys []string) map[string][]DisplayEvent {
	out := make(map[string][]DisplayEvent)
	for _, k := range keys {
		if evs, ok := all[k]; ok {
			out[k] = evs
		}
	}
	return out
}

// SortedKeys returns the keys of m in calendar order.
func SortedKeys(m map[string][]DisplayEvent) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
