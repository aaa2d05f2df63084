package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
	"github.com/zapponejosh/worldcal-api/internal/holidays"
)

// csvHoliday is one row of the Cabinet Office holiday list (syukujitsu.csv).
type csvHoliday struct {
	Key  string
	Name string
}

// jpDiff lists the dates the JP calculator and the official list disagree on.
type jpDiff struct {
	Years   int
	Checked int
	Missing []csvHoliday // in the list, not computed
	Extra   []string     // computed, not in the list
}

// readCabinetCSV parses the official list. The published file is Shift_JIS;
// input that is already valid UTF-8 is read as is.
func readCabinetCSV(data []byte) ([]csvHoliday, error) {
	var r io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		r = transform.NewReader(r, japanese.ShiftJIS.NewDecoder())
	}

	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 2 || !strings.Contains(header[0], "国民の祝日") {
		return nil, fmt.Errorf("unexpected header %q", header)
	}

	var out []csvHoliday
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(record) < 2 || strings.TrimSpace(record[0]) == "" {
			continue
		}

		t, err := time.Parse("2006/1/2", strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q", line, record[0])
		}
		out = append(out, csvHoliday{Key: calendar.Key(t), Name: strings.TrimSpace(record[1])})
	}
	return out, nil
}

// compareJP checks the JP calculator against rows for years in [from, to].
func compareJP(registry *holidays.Registry, rows []csvHoliday, from, to int) jpDiff {
	byYear := map[int]map[string]csvHoliday{}
	for _, row := range rows {
		y, _, _, ok := calendar.ParseKey(row.Key)
		if !ok || y < from || y > to {
			continue
		}
		if byYear[y] == nil {
			byYear[y] = map[string]csvHoliday{}
		}
		byYear[y][row.Key] = row
	}

	var diff jpDiff
	for year := from; year <= to; year++ {
		official, ok := byYear[year]
		if !ok {
			continue
		}
		diff.Years++

		m, _ := registry.Calculate("JP", year, holidays.Options{})
		for _, key := range m.Keys() {
			if _, ok := official[key]; !ok {
				diff.Extra = append(diff.Extra, key)
			}
		}
		for _, key := range slices.Sorted(maps.Keys(official)) {
			diff.Checked++
			if _, ok := m[key]; !ok {
				diff.Missing = append(diff.Missing, official[key])
			}
		}
	}
	return diff
}

func (d jpDiff) print(w io.Writer) {
	fmt.Fprintf(w, "=== JP vs Cabinet Office list: %d years, %d dates ===\n", d.Years, d.Checked)
	for _, h := range d.Missing {
		fmt.Fprintf(w, "  missing  %s  %s\n", h.Key, h.Name)
	}
	for _, key := range d.Extra {
		fmt.Fprintf(w, "  extra    %s\n", key)
	}
	fmt.Fprintf(w, "%d missing, %d extra\n", len(d.Missing), len(d.Extra))
}
