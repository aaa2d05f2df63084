package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// failingKV fails every call.
type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingKV) Set(context.Context, string, []byte) error   { return errors.New("disk gone") }

func newStore(t *testing.T) (*CustomHolidays, *MemoryKV) {
	t.Helper()
	kv := NewMemoryKV()
	return NewCustomHolidays(kv, quietLogger()), kv
}

func ptr[T any](v T) *T { return &v }

func TestMemoryKV_MissingKeyIsNil(t *testing.T) {
	kv := NewMemoryKV()
	got, err := kv.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCustomHolidays_AddAssignsUniqueIDs(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := range 50 {
		h := s.Add(ctx, NewCustomHoliday{Title: fmt.Sprintf("e%d", i), Date: "2026-03-01"})
		require.True(t, strings.HasPrefix(h.ID, "custom-"), h.ID)
		require.False(t, seen[h.ID], "duplicate id %s", h.ID)
		seen[h.ID] = true
	}
	assert.Len(t, s.All(ctx), 50)
}

func TestCustomHolidays_AddDefaultsAndNormalises(t *testing.T) {
	s, _ := newStore(t)
	h := s.Add(context.Background(), NewCustomHoliday{
		Title:            "Mum",
		Date:             "1960-05-04",
		IsRecurring:      true,
		NotificationDays: []int{7, 1, 7, 0},
	})

	assert.Equal(t, CategoryOther, h.Category)
	assert.Equal(t, []int{0, 1, 7}, h.NotificationDays)
}

func TestCustomHolidays_PersistsUnderFixedKey(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()
	s.Add(ctx, NewCustomHoliday{Title: "Party", Date: "2026-07-04", Category: CategoryCultural})

	raw, err := kv.Get(ctx, CustomHolidaysKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"isRecurring":false`)
	assert.Contains(t, string(raw), `"notificationDays":[]`)

	// A second store over the same KV sees the record.
	again := NewCustomHolidays(kv, quietLogger())
	require.Len(t, again.All(ctx), 1)
	assert.Equal(t, "Party", again.All(ctx)[0].Title)
}

func TestCustomHolidays_Update(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	h := s.Add(ctx, NewCustomHoliday{Title: "Old", Date: "2026-01-10", Color: "#fff"})

	got, ok := s.Update(ctx, h.ID, CustomHolidayPatch{
		Title:            ptr("New"),
		IsRecurring:      ptr(true),
		NotificationDays: ptr([]int{3, 3, 1}),
	})
	require.True(t, ok)
	assert.Equal(t, "New", got.Title)
	assert.True(t, got.IsRecurring)
	assert.Equal(t, "#fff", got.Color, "unset fields are kept")
	assert.Equal(t, []int{1, 3}, got.NotificationDays)

	stored, ok := s.Get(ctx, h.ID)
	require.True(t, ok)
	assert.Equal(t, got, stored)

	_, ok = s.Update(ctx, "custom-missing", CustomHolidayPatch{Title: ptr("x")})
	assert.False(t, ok)
	assert.Len(t, s.All(ctx), 1)
}

func TestCustomHolidays_Delete(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	a := s.Add(ctx, NewCustomHoliday{Title: "A", Date: "2026-01-01"})
	b := s.Add(ctx, NewCustomHoliday{Title: "B", Date: "2026-01-02"})

	assert.True(t, s.Delete(ctx, a.ID))
	assert.False(t, s.Delete(ctx, a.ID))

	all := s.All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].ID)
}

func TestCustomHolidays_ForDate(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	s.Add(ctx, NewCustomHoliday{Title: "Birthday", Date: "1990-06-15", IsRecurring: true})
	s.Add(ctx, NewCustomHoliday{Title: "Wedding", Date: "2026-06-15"})
	s.Add(ctx, NewCustomHoliday{Title: "Other", Date: "2026-06-16"})

	titles := func(hs []CustomHoliday) []string {
		out := []string{}
		for _, h := range hs {
			out = append(out, h.Title)
		}
		return out
	}

	assert.Equal(t, []string{"Birthday", "Wedding"}, titles(s.ForDate(ctx, "2026-06-15")))
	assert.Equal(t, []string{"Birthday"}, titles(s.ForDate(ctx, "2031-06-15")))
	assert.Empty(t, s.ForDate(ctx, "not a date"))
}

func TestCustomHolidays_ForMonth(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	once := s.Add(ctx, NewCustomHoliday{Title: "Trip", Date: "2026-03-09"})
	rec := s.Add(ctx, NewCustomHoliday{Title: "Anniversary", Date: "2001-03-21", IsRecurring: true})

	t.Run("one-off in its month", func(t *testing.T) {
		got := s.ForMonth(ctx, 2026, time.March)
		require.Len(t, got["2026-03-09"], 1)
		assert.Equal(t, once.Title, got["2026-03-09"][0].Title)
	})

	t.Run("one-off outside its year", func(t *testing.T) {
		got := s.ForMonth(ctx, 2027, time.March)
		assert.NotContains(t, got, "2027-03-09")
		assert.NotContains(t, got, "2026-03-09")
	})

	t.Run("recurring every year", func(t *testing.T) {
		for _, year := range []int{1999, 2026, 2044} {
			got := s.ForMonth(ctx, year, time.March)
			key := fmt.Sprintf("%d-03-21", year)
			require.Len(t, got[key], 1, "year %d", year)
			assert.Equal(t, rec.ID, got[key][0].ID)
		}
	})

	t.Run("recurring key ignores requested month", func(t *testing.T) {
		got := s.ForMonth(ctx, 2026, time.July)
		assert.Contains(t, got, "2026-03-21")
		assert.NotContains(t, got, "2026-03-09")
	})
}

func TestCustomHolidays_ForMonth_LeapDay(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	s.Add(ctx, NewCustomHoliday{Title: "Leapling", Date: "2000-02-29", IsRecurring: true})

	got := s.ForMonth(ctx, 2027, time.February)
	assert.Contains(t, got, "2027-02-29")
}

func TestCustomHolidays_ForYear(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	s.Add(ctx, NewCustomHoliday{Title: "Trip", Date: "2026-03-09"})
	s.Add(ctx, NewCustomHoliday{Title: "Old trip", Date: "2025-03-09"})
	s.Add(ctx, NewCustomHoliday{Title: "Anniversary", Date: "2001-11-21", IsRecurring: true})
	s.Add(ctx, NewCustomHoliday{Title: "Leapling", Date: "2000-02-29", IsRecurring: true})

	got := s.ForYear(ctx, 2026)
	assert.Len(t, got, 2)
	assert.Contains(t, got, "2026-03-09")
	assert.Contains(t, got, "2026-11-21")
	assert.NotContains(t, got, "2026-02-29")

	assert.Contains(t, s.ForYear(ctx, 2028), "2028-02-29")
}

func TestCustomHolidays_ForMonth_InsertionOrder(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	s.Add(ctx, NewCustomHoliday{Title: "first", Date: "2026-05-01"})
	s.Add(ctx, NewCustomHoliday{Title: "second", Date: "1980-05-01", IsRecurring: true})
	s.Add(ctx, NewCustomHoliday{Title: "first", Date: "2026-05-01"})

	got := s.ForMonth(ctx, 2026, time.May)["2026-05-01"]
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, "second", got[1].Title)
	assert.Equal(t, "first", got[2].Title)
}

func TestCustomHolidays_PersistenceFailuresAreSwallowed(t *testing.T) {
	s := NewCustomHolidays(failingKV{}, quietLogger())
	ctx := context.Background()

	h := s.Add(ctx, NewCustomHoliday{Title: "Lost", Date: "2026-01-01"})
	assert.NotEmpty(t, h.ID)
	assert.Empty(t, s.All(ctx))
	assert.Empty(t, s.ForMonth(ctx, 2026, time.January))
	assert.False(t, s.Delete(ctx, h.ID))
}

func TestCustomHolidays_CorruptRecordReadsEmpty(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(context.Background(), CustomHolidaysKey, []byte("{not json")))

	s := NewCustomHolidays(kv, quietLogger())
	assert.Empty(t, s.All(context.Background()))
}

func TestCustomHolidays_ConcurrentAdds(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(ctx, NewCustomHoliday{Title: fmt.Sprint(i), Date: "2026-02-02"})
		}()
	}
	wg.Wait()

	assert.Len(t, s.All(ctx), 20)
}

func TestNewCustomHoliday_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      NewCustomHoliday
		wantErr string
	}{
		{"valid", NewCustomHoliday{Title: "x", Date: "2026-01-01", Category: CategoryBirthday}, ""},
		{"missing title", NewCustomHoliday{Date: "2026-01-01"}, "title"},
		{"bad date", NewCustomHoliday{Title: "x", Date: "2026-13-01"}, "date"},
		{"bad category", NewCustomHoliday{Title: "x", Date: "2026-01-01", Category: "party"}, "category"},
		{"negative reminder", NewCustomHoliday{Title: "x", Date: "2026-01-01", NotificationDays: []int{-1}}, "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCustomHolidayPatch_Validate(t *testing.T) {
	assert.NoError(t, CustomHolidayPatch{}.Validate())
	assert.Error(t, CustomHolidayPatch{Title: ptr("  ")}.Validate())
	assert.Error(t, CustomHolidayPatch{Date: ptr("yesterday")}.Validate())
	assert.Error(t, CustomHolidayPatch{Category: ptr(Category("x"))}.Validate())
}

func TestSettingsStore(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := NewSettingsStore(kv, quietLogger())

	got, ok := s.Load(ctx)
	assert.False(t, ok, "no record means onboarding")
	assert.Equal(t, DefaultSettings(), got)

	s.Save(ctx, Settings{
		SelectedCountries: []string{"FR", "DE"},
		LanguageDisplay:   DisplayNative,
		FRRegions:         map[string]bool{"AM": true},
	})

	got, ok = s.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"FR", "DE"}, got.SelectedCountries)
	assert.Equal(t, DisplayNative, got.LanguageDisplay)
	assert.True(t, got.FRRegions["AM"])

	raw, _ := kv.Get(ctx, SettingsKey)
	assert.Contains(t, string(raw), `"selectedCountries":["FR","DE"]`)
	assert.Contains(t, string(raw), `"frRegions":{"AM":true}`)
}

func TestSettingsStore_NormalisesPartialRecord(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, SettingsKey, []byte(`{"languageDisplay":"klingon"}`)))

	got, ok := NewSettingsStore(kv, quietLogger()).Load(ctx)
	require.True(t, ok)
	assert.Equal(t, DisplayApp, got.LanguageDisplay)
	assert.NotNil(t, got.SelectedCountries)
	assert.NotNil(t, got.FRRegions)
}

func TestSettingsStore_Failures(t *testing.T) {
	ctx := context.Background()
	s := NewSettingsStore(failingKV{}, quietLogger())

	s.Save(ctx, Settings{SelectedCountries: []string{"US"}})
	got, ok := s.Load(ctx)
	assert.False(t, ok)
	assert.Equal(t, DefaultSettings(), got)
}
