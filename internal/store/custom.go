package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
)

// CustomHolidaysKey is the KV key holding the serialized list.
const CustomHolidaysKey = "world_calendar_custom_holidays"

// Category classifies a custom holiday.
type Category string

const (
	CategoryBirthday    Category = "birthday"
	CategoryAnniversary Category = "anniversary"
	CategoryReligious   Category = "religious"
	CategoryCultural    Category = "cultural"
	CategoryOther       Category = "other"
)

// ValidCategories returns all valid categories.
func ValidCategories() []Category {
	return []Category{
		CategoryBirthday,
		CategoryAnniversary,
		CategoryReligious,
		CategoryCultural,
		CategoryOther,
	}
}

// IsValid checks if a category is valid.
func (c Category) IsValid() bool {
	return slices.Contains(ValidCategories(), c)
}

// CustomHoliday is a user-defined event. Date is a Date-Key-like string;
// its year only matters when IsRecurring is false.
type CustomHoliday struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Date             string   `json:"date"`
	IsRecurring      bool     `json:"isRecurring"`
	Category         Category `json:"category"`
	Color            string   `json:"color"`
	NotificationDays []int    `json:"notificationDays"`
}

// NewCustomHoliday carries the fields of a holiday being created.
type NewCustomHoliday struct {
	Title            string   `json:"title"`
	Date             string   `json:"date"`
	IsRecurring      bool     `json:"isRecurring"`
	Category         Category `json:"category"`
	Color            string   `json:"color"`
	NotificationDays []int    `json:"notificationDays"`
}

// Validate reports input problems. The store itself accepts anything; this
// is for outer surfaces that want to reject bad input early.
func (n NewCustomHoliday) Validate() error {
	var errs []error
	if strings.TrimSpace(n.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if _, err := calendar.ParseDateString(n.Date); err != nil {
		errs = append(errs, fmt.Errorf("date must be YYYY-MM-DD, got %q", n.Date))
	}
	if n.Category != "" && !n.Category.IsValid() {
		errs = append(errs, fmt.Errorf("invalid category %q", n.Category))
	}
	for _, d := range n.NotificationDays {
		if d < 0 {
			errs = append(errs, fmt.Errorf("notification days must not be negative, got %d", d))
			break
		}
	}
	return errors.Join(errs...)
}

// CustomHolidayPatch is a partial update; nil fields are left unchanged.
type CustomHolidayPatch struct {
	Title            *string   `json:"title,omitempty"`
	Date             *string   `json:"date,omitempty"`
	IsRecurring      *bool     `json:"isRecurring,omitempty"`
	Category         *Category `json:"category,omitempty"`
	Color            *string   `json:"color,omitempty"`
	NotificationDays *[]int    `json:"notificationDays,omitempty"`
}

// Validate checks the fields that are set.
func (p CustomHolidayPatch) Validate() error {
	var errs []error
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		errs = append(errs, errors.New("title must not be empty"))
	}
	if p.Date != nil {
		if _, err := calendar.ParseDateString(*p.Date); err != nil {
			errs = append(errs, fmt.Errorf("date must be YYYY-MM-DD, got %q", *p.Date))
		}
	}
	if p.Category != nil && !p.Category.IsValid() {
		errs = append(errs, fmt.Errorf("invalid category %q", *p.Category))
	}
	return errors.Join(errs...)
}

func (p CustomHolidayPatch) apply(h *CustomHoliday) {
	if p.Title != nil {
		h.Title = *p.Title
	}
	if p.Date != nil {
		h.Date = *p.Date
	}
	if p.IsRecurring != nil {
		h.IsRecurring = *p.IsRecurring
	}
	if p.Category != nil {
		h.Category = *p.Category
	}
	if p.Color != nil {
		h.Color = *p.Color
	}
	if p.NotificationDays != nil {
		h.NotificationDays = normalizeDays(*p.NotificationDays)
	}
}

// normalizeDays sorts and de-duplicates notification offsets.
func normalizeDays(days []int) []int {
	out := slices.Clone(days)
	slices.Sort(out)
	out = slices.Compact(out)
	if out == nil {
		out = []int{}
	}
	return out
}

// CustomHolidays is the CRUD store for custom holidays. Each operation is a
// read-modify-write of the whole list under a mutex.
type CustomHolidays struct {
	kv     KV
	logger *slog.Logger
	newID  func() string

	mu sync.Mutex
}

// NewCustomHolidays returns a store over kv.
func NewCustomHolidays(kv KV, logger *slog.Logger) *CustomHolidays {
	if logger == nil {
		logger = slog.Default()
	}
	return &CustomHolidays{kv: kv, logger: logger, newID: newCustomID}
}

// newCustomID returns "custom-" plus a UUIDv7, which is time-ordered with a
// random tail.
func newCustomID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("custom-%d-%s", time.Now().UnixMilli(), uuid.NewString())
	}
	return "custom-" + id.String()
}

// load reads the list. Any failure yields an empty list.
func (s *CustomHolidays) load(ctx context.Context) []CustomHoliday {
	data, err := s.kv.Get(ctx, CustomHolidaysKey)
	if err != nil {
		s.logger.WarnContext(ctx, "read custom holidays", slog.Any("error", err))
		return []CustomHoliday{}
	}
	if len(data) == 0 {
		return []CustomHoliday{}
	}

	var list []CustomHoliday
	if err := json.Unmarshal(data, &list); err != nil {
		s.logger.WarnContext(ctx, "decode custom holidays", slog.Any("error", err))
		return []CustomHoliday{}
	}
	return list
}

// save writes the list. Failures are logged and dropped.
func (s *CustomHolidays) save(ctx context.Context, list []CustomHoliday) {
	data, err := json.Marshal(list)
	if err != nil {
		s.logger.ErrorContext(ctx, "encode custom holidays", slog.Any("error", err))
		return
	}
	if err := s.kv.Set(ctx, CustomHolidaysKey, data); err != nil {
		s.logger.ErrorContext(ctx, "save custom holidays", slog.Any("error", err))
	}
}

// All returns every record in insertion order.
func (s *CustomHolidays) All(ctx context.Context) []CustomHoliday {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Get returns the record with id.
func (s *CustomHolidays) Get(ctx context.Context, id string) (CustomHoliday, bool) {
	for _, h := range s.All(ctx) {
		if h.ID == id {
			return h, true
		}
	}
	return CustomHoliday{}, false
}

// Add assigns a fresh id, appends the record and persists the list.
func (s *CustomHolidays) Add(ctx context.Context, in NewCustomHoliday) CustomHoliday {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := in.Category
	if category == "" {
		category = CategoryOther
	}
	h := CustomHoliday{
		ID:               s.newID(),
		Title:            in.Title,
		Date:             in.Date,
		IsRecurring:      in.IsRecurring,
		Category:         category,
		Color:            in.Color,
		NotificationDays: normalizeDays(in.NotificationDays),
	}

	list := s.load(ctx)
	list = append(list, h)
	s.save(ctx, list)

	s.logger.DebugContext(ctx, "custom holiday added", slog.String("id", h.ID))
	return h
}

// Update merges patch into the record with id. It reports false, and
// changes nothing, when the id is unknown.
func (s *CustomHolidays) Update(ctx context.Context, id string, patch CustomHolidayPatch) (CustomHoliday, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load(ctx)
	for i := range list {
		if list[i].ID == id {
			patch.apply(&list[i])
			s.save(ctx, list)
			return list[i], true
		}
	}
	return CustomHoliday{}, false
}

// Delete removes the record with id and reports whether it existed.
func (s *CustomHolidays) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load(ctx)
	kept := slices.DeleteFunc(slices.Clone(list), func(h CustomHoliday) bool { return h.ID == id })
	if len(kept) == len(list) {
		return false
	}
	s.save(ctx, kept)
	return true
}

// ForDate returns the records on date: recurring ones match on month and
// day, the rest on the full date string.
func (s *CustomHolidays) ForDate(ctx context.Context, date string) []CustomHoliday {
	_, wantMonth, wantDay, wantOK := calendar.ParseKey(date)

	out := []CustomHoliday{}
	for _, h := range s.All(ctx) {
		if h.IsRecurring {
			_, m, d, ok := calendar.ParseKey(h.Date)
			if ok && wantOK && m == wantMonth && d == wantDay {
				out = append(out, h)
			}
			continue
		}
		if h.Date == date {
			out = append(out, h)
		}
	}
	return out
}

// ForMonth maps Date Keys to the records they hold for the given month.
//
// A recurring record always yields exactly one key, built from the
// requested year and its stored month and day, even when that month differs
// from the requested one. A one-off record yields its own date only when its
// year and month match. Keys are zero-padded; records whose date cannot be
// parsed are skipped.
func (s *CustomHolidays) ForMonth(ctx context.Context, year int, month time.Month) map[string][]CustomHoliday {
	out := make(map[string][]CustomHoliday)
	for _, h := range s.All(ctx) {
		y, m, d, ok := calendar.ParseKey(h.Date)
		if !ok {
			continue
		}

		var key string
		switch {
		case h.IsRecurring:
			key = paddedKey(year, m, d)
		case y == year && m == month:
			key = paddedKey(y, m, d)
		default:
			continue
		}
		out[key] = append(out[key], h)
	}
	return out
}

// ForYear maps Date Keys to the records occurring in year: every recurring
// record on its month and day, and one-off records dated in year. Keys that
// are not real calendar days (a recurring February 29 in a common year) are
// dropped.
func (s *CustomHolidays) ForYear(ctx context.Context, year int) map[string][]CustomHoliday {
	out := make(map[string][]CustomHoliday)
	for _, h := range s.All(ctx) {
		y, m, d, ok := calendar.ParseKey(h.Date)
		if !ok || (!h.IsRecurring && y != year) {
			continue
		}
		key := paddedKey(year, m, d)
		if _, err := calendar.ParseDateString(key); err != nil {
			continue
		}
		out[key] = append(out[key], h)
	}
	return out
}

// paddedKey formats without normalising, so a recurring February 29 stays
// on the 29th in common years.
func paddedKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}
