package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
)

var stamp = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func TestWriteICS(t *testing.T) {
	entries := []Entry{
		{Date: calendar.Date(2026, 12, 25), Summary: "Christmas", Categories: []string{"DE", "AT"}},
		{Date: calendar.Date(2026, 3, 21), Summary: "Anniversary; ours, really", ReminderDays: []int{0, 7}, UIDSeed: "custom-1"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, "World Calendar 2026", entries, stamp))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.NotContains(t, strings.ReplaceAll(out, "\r\n", ""), "\n", "every line ends with CRLF")

	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VALARM"))
	assert.Contains(t, out, "TRIGGER:-P7D\r\n")
	assert.Contains(t, out, "TRIGGER:-P0D\r\n")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20261225\r\nDTEND;VALUE=DATE:20261226\r\n")
	assert.Contains(t, out, `SUMMARY:Anniversary\; ours\, really`)
	assert.Contains(t, out, "CATEGORIES:DE,AT\r\n")
	assert.Contains(t, out, "DTSTAMP:20261017T093000Z\r\n")

	// Sorted by date.
	assert.Less(t, strings.Index(out, "20260321"), strings.Index(out, "20261225"))
}

func TestEntry_UIDIsStable(t *testing.T) {
	a := Entry{Date: calendar.Date(2026, 1, 1), Summary: "New Year's Day"}
	b := Entry{Date: calendar.Date(2026, 1, 1), Summary: "New Year's Day"}
	c := Entry{Date: calendar.Date(2027, 1, 1), Summary: "New Year's Day"}

	assert.Equal(t, a.UID(), b.UID())
	assert.NotEqual(t, a.UID(), c.UID())
	assert.True(t, strings.HasSuffix(a.UID(), "@"+uidHost))
}

func TestFold(t *testing.T) {
	long := "SUMMARY:" + strings.Repeat("日本", 40)
	folded := fold(long)

	for i, line := range strings.Split(folded, "\r\n") {
		assert.LessOrEqual(t, len(line), maxLineOctets, "line %d", i)
		if i > 0 {
			assert.True(t, strings.HasPrefix(line, " "))
		}
	}
	assert.Equal(t, long, strings.ReplaceAll(folded, "\r\n ", ""))
	assert.Equal(t, "short", fold("short"))
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, `a\\b\;c\,d\ne`, escapeText("a\\b;c,d\ne"))
}
