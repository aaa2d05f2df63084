package calendar

import "time"

// GridDays is the number of cells in a month view (six weeks).
const GridDays = 42

// CoerceDate returns t truncated to its calendar day, or the first day of
// fallback's month when t is the zero time.
func CoerceDate(t, fallback time.Time) time.Time {
	if t.IsZero() {
		return Date(fallback.Year(), fallback.Month(), 1)
	}
	return Date(t.Year(), t.Month(), t.Day())
}

// StartOfMonth returns the first day of t's month. A zero t falls back to
// the current month.
func StartOfMonth(t time.Time) time.Time {
	d := CoerceDate(t, time.Now())
	return Date(d.Year(), d.Month(), 1)
}

// AddMonths returns the first day of the month delta months away from t.
func AddMonths(t time.Time, delta int) time.Time {
	d := CoerceDate(t, time.Now())
	return Date(d.Year(), d.Month()+time.Month(delta), 1)
}

// IsSameDay reports whether a and b are the same calendar day. Zero times
// never match.
func IsSameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return Key(a) == Key(b)
}

// MonthMatrix returns the 42 days of a Sunday-first month grid containing
// view's month, starting on the Sunday on or before the 1st.
func MonthMatrix(view time.Time) []time.Time {
	first := StartOfMonth(view)
	start := AddDays(first, -int(first.Weekday()))

	grid := make([]time.Time, GridDays)
	for i := range grid {
		grid[i] = AddDays(start, i)
	}
	return grid
}

// MonthKeys is MonthMatrix rendered as Date Keys.
func MonthKeys(view time.Time) []string {
	grid := MonthMatrix(view)
	keys := make([]string, len(grid))
	for i, d := range grid {
		keys[i] = Key(d)
	}
	return keys
}
