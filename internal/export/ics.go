// Package export renders calendar events as iCalendar (RFC 5545) files.
package export

import (
	"bufio"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
)

const (
	prodID  = "-//worldcal-api//World Calendar//EN"
	uidHost = "worldcal-api"

	// maxLineOctets is the RFC 5545 content line limit, excluding CRLF.
	maxLineOctets = 75
)

// Entry is one all-day event.
type Entry struct {
	Date        time.Time
	Summary     string
	Description string
	Categories  []string
	// ReminderDays adds one VALARM per value, n days before the event.
	ReminderDays []int
	// UIDSeed makes the UID stable across exports; it defaults to the
	// summary.
	UIDSeed string
}

// UID returns a stable identifier derived from the date and seed.
func (e Entry) UID() string {
	seed := e.UIDSeed
	if seed == "" {
		seed = e.Summary
	}
	sum := sha1.Sum([]byte(calendar.Key(e.Date) + "|" + seed))
	return hex.EncodeToString(sum[:10]) + "@" + uidHost
}

// WriteICS writes a VCALENDAR named name holding entries, sorted by date.
// stamp is used for every DTSTAMP.
func WriteICS(w io.Writer, name string, entries []Entry, stamp time.Time) error {
	bw := bufio.NewWriter(w)
	lw := &lineWriter{w: bw}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int { return a.Date.Compare(b.Date) })

	dtstamp := stamp.UTC().Format("20060102T150405Z")

	lw.line("BEGIN:VCALENDAR")
	lw.line("VERSION:2.0")
	lw.line("PRODID:" + prodID)
	lw.line("CALSCALE:GREGORIAN")
	lw.line("METHOD:PUBLISH")
	if name != "" {
		lw.line("X-WR-CALNAME:" + escapeText(name))
	}

	for _, e := range sorted {
		if e.Date.IsZero() {
			continue
		}
		start := e.Date.Format("20060102")
		end := calendar.AddDays(e.Date, 1).Format("20060102")

		lw.line("BEGIN:VEVENT")
		lw.line("UID:" + e.UID())
		lw.line("DTSTAMP:" + dtstamp)
		lw.line("DTSTART;VALUE=DATE:" + start)
		lw.line("DTEND;VALUE=DATE:" + end)
		lw.line("SUMMARY:" + escapeText(e.Summary))
		if e.Description != "" {
			lw.line("DESCRIPTION:" + escapeText(e.Description))
		}
		if len(e.Categories) > 0 {
			cats := make([]string, len(e.Categories))
			for i, c := range e.Categories {
				cats[i] = escapeText(c)
			}
			lw.line("CATEGORIES:" + strings.Join(cats, ","))
		}
		lw.line("TRANSP:TRANSPARENT")

		for _, days := range e.ReminderDays {
			if days < 0 {
				continue
			}
			lw.line("BEGIN:VALARM")
			lw.line("ACTION:DISPLAY")
			lw.line("DESCRIPTION:" + escapeText(e.Summary))
			lw.line(fmt.Sprintf("TRIGGER:-P%dD", days))
			lw.line("END:VALARM")
		}
		lw.line("END:VEVENT")
	}

	lw.line("END:VCALENDAR")
	if lw.err != nil {
		return fmt.Errorf("write ics: %w", lw.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush ics: %w", err)
	}
	return nil
}

// lineWriter folds and CRLF-terminates content lines, keeping the first
// error.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, fold(s)+"\r\n")
}

// fold splits s into lines of at most 75 octets, continuation lines
// starting with a space. Multi-byte runes are never split.
func fold(s string) string {
	if len(s) <= maxLineOctets {
		return s
	}

	var b strings.Builder
	n := 0
	limit := maxLineOctets
	for _, r := range s {
		size := len(string(r))
		if n+size > limit {
			b.WriteString("\r\n ")
			n = 0
			limit = maxLineOctets - 1
		}
		b.WriteRune(r)
		n += size
	}
	return b.String()
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// escapeText escapes a TEXT property value.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}
