package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
	"github.com/zapponejosh/worldcal-api/internal/holidays"
)

// codeStats summarises one calculator across the checked years.
type codeStats struct {
	Code   string
	Years  int
	Min    int
	Max    int
	Total  int
	Issues []string
}

type checkReport struct {
	From, To int
	Stats    []codeStats
}

func (r checkReport) failed() bool {
	for _, s := range r.Stats {
		if len(s.Issues) > 0 {
			return true
		}
	}
	return false
}

// checkAll runs every registered calculator for each year in [from, to],
// with every France region enabled, and records structural problems.
func checkAll(registry *holidays.Registry, from, to int) checkReport {
	all := holidays.Options{Regions: map[string]bool{}}
	for _, r := range holidays.FranceRegions {
		all.Regions[r.Key] = true
	}

	report := checkReport{From: from, To: to}
	for _, code := range registry.Codes() {
		s := codeStats{Code: code, Min: -1}
		for year := from; year <= to; year++ {
			m, _ := registry.Calculate(code, year, all)
			n := m.Len()
			s.Years++
			s.Total += n
			if s.Min < 0 || n < s.Min {
				s.Min = n
			}
			if n > s.Max {
				s.Max = n
			}
			s.Issues = append(s.Issues, checkYear(code, year, m)...)
		}
		report.Stats = append(report.Stats, s)
	}

	sort.Slice(report.Stats, func(i, j int) bool {
		return report.Stats[i].Code < report.Stats[j].Code
	})
	return report
}

// checkYear validates a single year map.
func checkYear(code string, year int, m holidays.YearMap) []string {
	var issues []string
	if len(m) == 0 {
		return []string{fmt.Sprintf("%d: no holidays", year)}
	}

	for _, key := range m.Keys() {
		d, err := calendar.ParseDateString(key)
		if err != nil || calendar.Key(d) != key {
			issues = append(issues, fmt.Sprintf("%d: malformed key %q", year, key))
			continue
		}
		// Observance may shift a date by one day across the year boundary.
		lo := calendar.Date(year, time.January, 1).AddDate(0, 0, -1)
		hi := calendar.Date(year, time.December, 31).AddDate(0, 0, 1)
		if d.Before(lo) || d.After(hi) {
			issues = append(issues, fmt.Sprintf("%d: key %s outside the year", year, key))
		}

		seen := map[string]bool{}
		for _, occ := range m[key] {
			switch {
			case occ.Jurisdiction != code:
				issues = append(issues, fmt.Sprintf("%s: tagged %q", key, occ.Jurisdiction))
			case occ.LocalName == "" || occ.InternationalName == "":
				issues = append(issues, fmt.Sprintf("%s: empty name", key))
			case seen[occ.LocalName]:
				issues = append(issues, fmt.Sprintf("%s: %q listed twice", key, occ.LocalName))
			}
			seen[occ.LocalName] = true
		}
	}
	return issues
}

func (r checkReport) print(w io.Writer) {
	fmt.Fprintf(w, "=== Calculator check %d-%d ===\n\n", r.From, r.To)
	fmt.Fprintf(w, "%-4s %6s %5s %5s %8s  %s\n", "CODE", "YEARS", "MIN", "MAX", "AVG", "ISSUES")

	bad := 0
	for _, s := range r.Stats {
		avg := 0.0
		if s.Years > 0 {
			avg = float64(s.Total) / float64(s.Years)
		}
		fmt.Fprintf(w, "%-4s %6d %5d %5d %8.1f  %d\n", s.Code, s.Years, s.Min, s.Max, avg, len(s.Issues))
		if len(s.Issues) > 0 {
			bad++
		}
	}

	for _, s := range r.Stats {
		for i, issue := range s.Issues {
			if i == 10 {
				fmt.Fprintf(w, "  %s: ... %d more\n", s.Code, len(s.Issues)-i)
				break
			}
			fmt.Fprintf(w, "  %s: %s\n", s.Code, issue)
		}
	}

	fmt.Fprintf(w, "\n%d calculators, %d with issues\n", len(r.Stats), bad)
}
