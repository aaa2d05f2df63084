package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"zero time is sentinel", time.Time{}, ""},
		{"pads month and day", Date(2025, time.March, 7), "2025-03-07"},
		{"normalises overflow", Date(2025, time.January, 32), "2025-02-01"},
		{"ignores time of day", time.Date(2025, 12, 25, 23, 59, 0, 0, time.UTC), "2025-12-25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.in))
		})
	}
}

func TestParseKey(t *testing.T) {
	y, m, d, ok := ParseKey("2024-02-29")
	require.True(t, ok)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.February, m)
	assert.Equal(t, 29, d)

	y, m, d, ok = ParseKey("1990-7-4")
	require.True(t, ok)
	assert.Equal(t, []int{1990, 7, 4}, []int{y, int(m), d})

	for _, bad := range []string{"", "2024", "2024-13-01", "2024-00-10", "abcd-01-01", "2024-01-xx", "2024-01-01-01"} {
		_, _, _, ok := ParseKey(bad)
		assert.False(t, ok, "ParseKey(%q)", bad)
	}
}

func TestParseDateString(t *testing.T) {
	got, err := ParseDateString("2026-10-17")
	require.NoError(t, err)
	assert.Equal(t, Date(2026, time.October, 17), got)

	_, err = ParseDateString("17/10/2026")
	assert.Error(t, err)
}

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{1995, "1995-04-16"},
		{2000, "2000-04-23"},
		{2019, "2019-04-21"},
		{2024, "2024-03-31"},
		{2025, "2025-04-20"},
		{2026, "2026-04-05"},
		{2038, "2038-04-25"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := EasterSunday(tt.year)
			assert.Equal(t, tt.want, Key(got))
			assert.Equal(t, time.Sunday, got.Weekday())
		})
	}
}

func TestJulianEaster(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2021, "2021-05-02"},
		{2023, "2023-04-16"},
		{2024, "2024-05-05"},
		{2025, "2025-04-20"},
	}
	for _, tt := range tests {
		got := JulianEaster(tt.year)
		assert.Equal(t, tt.want, Key(got), "year %d", tt.year)
		assert.Equal(t, time.Sunday, got.Weekday())
	}
}

// OrthodoxEaster is Western Easter + 7 days. It is always a Sunday a week
// after Western Easter, but only sometimes the real Orthodox Easter.
func TestOrthodoxEaster_KnownApproximation(t *testing.T) {
	for year := 1990; year <= 2100; year++ {
		got := OrthodoxEaster(year)
		require.Equal(t, time.Sunday, got.Weekday())
		require.Equal(t, 7, int(got.Sub(EasterSunday(year)).Hours()/24))
	}

	// 2010: Western April 4, Julian April 4. The approximation is a week late.
	assert.NotEqual(t, Key(JulianEaster(2010)), Key(OrthodoxEaster(2010)))

	matches := 0
	for year := 2000; year <= 2099; year++ {
		if Key(JulianEaster(year)) == Key(OrthodoxEaster(year)) {
			matches++
		}
	}
	t.Logf("Western+7 matches the Julian computus in %d of 100 years", matches)
	assert.Greater(t, matches, 0)
	assert.Less(t, matches, 100)
}

func TestNthWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		weekday time.Weekday
		n       int
		want    string
	}{
		{"US Thanksgiving 2025", 2025, time.November, time.Thursday, 4, "2025-11-27"},
		{"MLK Day 2025", 2025, time.January, time.Monday, 3, "2025-01-20"},
		{"Labor Day 2026", 2026, time.September, time.Monday, 1, "2026-09-07"},
		{"first weekday is the 1st", 2025, time.September, time.Monday, 1, "2025-09-01"},
		{"n below one clamps", 2025, time.September, time.Monday, -1, "2025-09-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NthWeekdayOfMonth(tt.year, tt.month, tt.weekday, tt.n)
			assert.Equal(t, tt.want, Key(got))
		})
	}
}

func TestLastWeekdayOfMonth(t *testing.T) {
	assert.Equal(t, "2025-05-26", Key(LastWeekdayOfMonth(2025, time.May, time.Monday)))
	assert.Equal(t, "2026-08-31", Key(LastWeekdayOfMonth(2026, time.August, time.Monday)))
	assert.Equal(t, "2024-02-29", Key(LastWeekdayOfMonth(2024, time.February, time.Thursday)))
	assert.Equal(t, "2025-12-31", Key(LastWeekdayOfMonth(2025, time.December, time.Wednesday)))
}

func TestWeekdayOnOrBefore(t *testing.T) {
	// Victoria Day: Monday on or before May 24.
	assert.Equal(t, "2025-05-19", Key(WeekdayOnOrBefore(2025, time.May, 24, time.Monday)))
	assert.Equal(t, "2021-05-24", Key(WeekdayOnOrBefore(2021, time.May, 24, time.Monday)))
}

func TestLastWeekdayBefore_MidsummerEve(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2024, "2024-06-21"},
		{2025, "2025-06-20"},
		{2026, "2026-06-19"},
		{2027, "2027-06-25"},
	}
	for _, tt := range tests {
		eve := AddDays(LastWeekdayBefore(tt.year, time.June, 25, time.Thursday), 1)
		assert.Equal(t, tt.want, Key(eve), "year %d", tt.year)
		assert.Equal(t, time.Friday, eve.Weekday())
	}

	// The anchor day itself never matches.
	assert.Equal(t, "2025-06-12", Key(LastWeekdayBefore(2025, time.June, 19, time.Thursday)))
}

func TestObservedUS(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  string
	}{
		{"Sunday moves to Monday", 1995, time.January, 1, "1995-01-02"},
		{"Saturday moves to Friday", 2020, time.July, 4, "2020-07-03"},
		{"Saturday New Year crosses the year", 2022, time.January, 1, "2021-12-31"},
		{"weekday unchanged", 2025, time.July, 4, "2025-07-04"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(ObservedUS(tt.year, tt.month, tt.day)))
		})
	}
}

func TestObservedUK(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  string
	}{
		{"Saturday moves forward two days", 2020, time.July, 4, "2020-07-06"},
		{"Sunday moves to Monday", 1995, time.January, 1, "1995-01-02"},
		{"weekday unchanged", 2025, time.December, 25, "2025-12-25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ObservedUK(tt.year, tt.month, tt.day)
			assert.Equal(t, tt.want, Key(got))
			assert.Equal(t, Key(got), Key(ObservedAU(tt.year, tt.month, tt.day)))
		})
	}
}

func TestObservedSunday(t *testing.T) {
	assert.Equal(t, "2020-07-04", Key(ObservedSunday(2020, time.July, 4)))
	assert.Equal(t, "2022-12-26", Key(ObservedSunday(2022, time.December, 25)))
}

func TestNextMonday(t *testing.T) {
	// Epiphany 2025 is a Monday; 2024 is a Saturday.
	assert.Equal(t, "2025-01-06", Key(NextMonday(2025, time.January, 6)))
	assert.Equal(t, "2024-01-08", Key(NextMonday(2024, time.January, 6)))
}

func TestDistinct(t *testing.T) {
	// 2021: Christmas Saturday -> Monday 27, Boxing Day Sunday -> Monday 27.
	xmas := ObservedUK(2021, time.December, 25)
	boxing := ObservedUK(2021, time.December, 26)
	require.Equal(t, Key(xmas), Key(boxing))

	got := Distinct(xmas, boxing)
	assert.Equal(t, "2021-12-28", Key(got))

	other := Date(2025, time.December, 26)
	assert.Equal(t, other, Distinct(Date(2025, time.December, 25), other))
}

func TestMonthMatrix(t *testing.T) {
	grid := MonthMatrix(Date(2026, time.October, 17))
	require.Len(t, grid, GridDays)
	assert.Equal(t, "2026-09-27", Key(grid[0]))
	assert.Equal(t, time.Sunday, grid[0].Weekday())
	assert.Equal(t, "2026-11-07", Key(grid[GridDays-1]))

	// The zero time falls back to the current month instead of failing.
	assert.Len(t, MonthMatrix(time.Time{}), GridDays)
}

func TestCoerceDate(t *testing.T) {
	fallback := Date(2026, time.October, 17)
	assert.Equal(t, "2026-10-01", Key(CoerceDate(time.Time{}, fallback)))
	assert.Equal(t, "2025-01-02", Key(CoerceDate(time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC), fallback)))
}

func TestAddMonths(t *testing.T) {
	assert.Equal(t, "2027-01-01", Key(AddMonths(Date(2026, time.December, 31), 1)))
	assert.Equal(t, "2026-02-01", Key(AddMonths(Date(2026, time.March, 31), -1)))
}

func TestIsSameDay(t *testing.T) {
	assert.True(t, IsSameDay(Date(2025, 1, 1), time.Date(2025, 1, 1, 18, 0, 0, 0, time.UTC)))
	assert.False(t, IsSameDay(time.Time{}, time.Time{}))
	assert.False(t, IsSameDay(Date(2025, 1, 1), Date(2025, 1, 2)))
}
