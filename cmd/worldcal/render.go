package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
	"github.com/zapponejosh/worldcal-api/internal/events"
)

// ANSI styles, used only when writing to a terminal.
const (
	ansiReset  = "\x1b[0m"
	ansiDim    = "\x1b[2m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
)

// render prints the 42-cell grid for view's month followed by the events
// of the days inside that month. A day marker is '*' for public holidays
// and '+' for custom ones.
func render(w io.Writer, view time.Time, codes []string, evs map[string][]events.DisplayEvent, color bool) {
	style := func(s, code string) string {
		if !color || code == "" {
			return s
		}
		return code + s + ansiReset
	}

	title := fmt.Sprintf("%s %d", view.Month(), view.Year())
	fmt.Fprintf(w, "%s  [%s]\n", style(title, ansiBold), strings.Join(codes, " "))
	fmt.Fprintln(w, " Su   Mo   Tu   We   Th   Fr   Sa")

	grid := calendar.MonthMatrix(view)
	for i, d := range grid {
		key := calendar.Key(d)
		marker := " "
		code := ""
		for _, ev := range evs[key] {
			if ev.Kind == events.Public {
				marker, code = "*", ansiRed
				break
			}
			marker, code = "+", ansiYellow
		}
		if d.Month() != view.Month() {
			code = ansiDim
		}

		cell := fmt.Sprintf("%3d%s", d.Day(), marker)
		fmt.Fprint(w, style(cell, code))
		if i%7 == 6 {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, " ")
		}
	}

	first := true
	for _, key := range events.SortedKeys(evs) {
		d, err := calendar.ParseDateString(key)
		if err != nil || d.Month() != view.Month() {
			continue
		}
		if first {
			fmt.Fprintln(w)
			first = false
		}
		for _, ev := range evs[key] {
			fmt.Fprintf(w, "%s  %s\n", key, describe(ev))
		}
	}
}

func describe(ev events.DisplayEvent) string {
	if ev.Kind == events.Custom {
		return "+ " + ev.Label
	}
	parts := make([]string, len(ev.Countries))
	for i, c := range ev.Countries {
		p := c.Code
		if c.Flag != "" {
			p = c.Flag + " " + c.Code
		}
		if c.Local != ev.Label {
			p += " (" + c.Local + ")"
		}
		parts[i] = p
	}
	return fmt.Sprintf("%s: %s", ev.Label, strings.Join(parts, ", "))
}
