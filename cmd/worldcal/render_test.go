package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
	"github.com/zapponejosh/worldcal-api/internal/events"
)

func TestRender(t *testing.T) {
	evs := map[string][]events.DisplayEvent{
		"2026-12-25": {{Label: "Christmas", Kind: events.Public, Countries: []events.CountryEntry{{Code: "DE", Local: "Weihnachten", Flag: "🇩🇪"}}}},
		"2026-12-31": {{Label: "Party", Kind: events.Custom}},
		"2027-01-01": {{Label: "New Year's Day", Kind: events.Public}},
	}

	var buf bytes.Buffer
	render(&buf, calendar.Date(2026, 12, 1), []string{"DE"}, evs, false)
	out := buf.String()

	if !strings.HasPrefix(out, "December 2026  [DE]\n") {
		t.Errorf("header = %q", strings.SplitN(out, "\n", 2)[0])
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("colour codes written without a terminal")
	}
	for _, want := range []string{" 25*", " 31+", "2026-12-25  Christmas: 🇩🇪 DE (Weihnachten)", "2026-12-31  + Party"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "2027-01-01  New Year") {
		t.Error("event list should only cover the viewed month")
	}
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := run(context.Background(), options{countries: "de,es", year: 2026, month: 4, lang: "app"}, &buf, false, log)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(buf.String(), "2026-04-03  Good Friday: 🇩🇪 DE (Karfreitag), 🇪🇸 ES (Viernes Santo)") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}

	if err := run(context.Background(), options{year: 2026, month: 13}, &buf, false, log); err == nil {
		t.Error("run() with month 13 should fail")
	}
}
