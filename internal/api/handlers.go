package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
	"github.com/zapponejosh/worldcal-api/internal/config"
	"github.com/zapponejosh/worldcal-api/internal/database"
	"github.com/zapponejosh/worldcal-api/internal/events"
	"github.com/zapponejosh/worldcal-api/internal/export"
	"github.com/zapponejosh/worldcal-api/internal/fallback"
	"github.com/zapponejosh/worldcal-api/internal/holidays"
	"github.com/zapponejosh/worldcal-api/internal/store"
)

// Year bounds accepted by the HTTP surface.
const (
	minYear = 1900
	maxYear = 2200
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db       *database.DB
	registry *holidays.Registry
	agg      *events.Aggregator
	custom   *store.CustomHolidays
	settings *store.SettingsStore
	fetcher  fallback.Fetcher // nil without a fallback source
	cfg      *config.Config
	logger   *slog.Logger
	now      func() time.Time
}

// NewHandlers wires the stores and calculators over db.
func NewHandlers(db *database.DB, cfg *config.Config, logger *slog.Logger) *Handlers {
	registry := holidays.Builtin()

	h := &Handlers{
		db:       db,
		registry: registry,
		agg:      events.New(registry, holidays.Meta),
		custom:   store.NewCustomHolidays(db, logger),
		settings: store.NewSettingsStore(db, logger),
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
	if cfg.HasFallback() {
		h.fetcher = fallback.NewClient(cfg.FallbackBaseURL, cfg.FallbackTimeout)
	}
	return h
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		h.logger.WarnContext(r.Context(), "health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]any{
		"status":        "healthy",
		"jurisdictions": len(h.registry.Codes()),
		"fallback":      h.fetcher != nil,
	})
}

// GetYearHolidays handles GET /holidays/{code}/{year}?regions=AM,RE
//
// The body is the bare Year Holiday Map, the same shape the fallback client
// consumes, so one instance can serve as another's fallback source.
func (h *Handlers) GetYearHolidays(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	year, err := parseYear(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	m, ok := h.registry.Calculate(code, year, holidays.Options{Regions: parseRegions(r.URL.Query().Get("regions"))})
	if !ok {
		WriteNotFound(w, fmt.Sprintf("Unknown jurisdiction: %s", code))
		return
	}

	WriteJSON(w, http.StatusOK, m)
}

// GetCountries handles GET /api/v1/countries
func (h *Handlers) GetCountries(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, holidays.AllMeta())
}

// calendarQuery is the resolved selection for a calendar request.
type calendarQuery struct {
	codes    []string
	language events.LanguageDisplay
	regions  map[string]bool
}

// resolveQuery reads countries, lang and regions from the query string,
// falling back to the saved settings for any that are absent.
func (h *Handlers) resolveQuery(ctx context.Context, r *http.Request) calendarQuery {
	saved, _ := h.settings.Load(ctx)
	q := r.URL.Query()

	cq := calendarQuery{
		codes:    saved.SelectedCountries,
		language: events.ParseLanguage(saved.LanguageDisplay),
		regions:  saved.FRRegions,
	}
	if v := q.Get("countries"); v != "" {
		cq.codes = splitList(v)
	}
	if v := q.Get("lang"); v != "" {
		cq.language = events.ParseLanguage(v)
	}
	if q.Has("regions") {
		cq.regions = parseRegions(q.Get("regions"))
	}
	return cq
}

// loadExternal fetches maps for selected codes that have no calculator. The
// advisory is non-empty when any fetch failed.
func (h *Handlers) loadExternal(ctx context.Context, codes []string, year int) (map[string]holidays.YearMap, string) {
	var missing []string
	for _, c := range codes {
		if !h.registry.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 || h.fetcher == nil {
		return nil, ""
	}

	loader := fallback.NewLoader(h.fetcher, h.logger, fallback.WithCache(h.db, h.cfg.FallbackCacheTTL))
	res, err := loader.Load(ctx, missing, year, h.registry)
	if err != nil {
		h.logger.WarnContext(ctx, "fallback load failed", slog.Any("error", err))
		return nil, "Could not load holidays for " + strings.Join(missing, ", ")
	}
	return res.Maps, res.Advisory
}

// monthResponse is the body of GET /api/v1/calendar/{year}/{month}.
type monthResponse struct {
	Year      int                              `json:"year"`
	Month     int                              `json:"month"`
	Countries []string                         `json:"countries"`
	Language  events.LanguageDisplay           `json:"lang"`
	Days      []string                         `json:"days"`
	Events    map[string][]events.DisplayEvent `json:"events"`
	Advisory  string                           `json:"advisory,omitempty"`
}

// GetCalendarMonth handles GET /api/v1/calendar/{year}/{month}
func (h *Handlers) GetCalendarMonth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, month, err := parseYearMonth(chi.URLParam(r, "year"), chi.URLParam(r, "month"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	cq := h.resolveQuery(ctx, r)
	days := calendar.MonthKeys(calendar.Date(year, month, 1))

	// The grid can spill into the neighbouring years.
	years := []int{year}
	if first := days[0]; !strings.HasPrefix(first, strconv.Itoa(year)) {
		years = append(years, year-1)
	}
	if last := days[len(days)-1]; !strings.HasPrefix(last, strconv.Itoa(year)) {
		years = append(years, year+1)
	}

	all := make(map[string][]events.DisplayEvent)
	var advisories []string
	for _, y := range years {
		external, advisory := h.loadExternal(ctx, cq.codes, y)
		if advisory != "" {
			advisories = append(advisories, advisory)
		}
		public := h.agg.PublicForYear(events.Input{
			Codes:    cq.codes,
			Year:     y,
			Language: cq.language,
			Regions:  cq.regions,
			External: external,
		})
		for k, evs := range public {
			all[k] = append(all[k], evs...)
		}
	}
	for k, hs := range h.customForGrid(ctx, days) {
		for _, c := range hs {
			all[k] = append(all[k], events.CustomEvent(c))
		}
	}

	WriteSuccess(w, monthResponse{
		Year:      year,
		Month:     int(month),
		Countries: cq.codes,
		Language:  cq.language,
		Days:      days,
		Events:    events.ForDates(all, days),
		Advisory:  strings.Join(advisories, "; "),
	})
}

// customForGrid collects custom holidays for every month the grid touches.
// Each month contributes only its own keys, so records keep store order.
func (h *Handlers) customForGrid(ctx context.Context, days []string) map[string][]store.CustomHoliday {
	out := make(map[string][]store.CustomHoliday)
	seen := make(map[string]bool)
	for _, day := range days {
		prefix := day[:len("2006-01")]
		if seen[prefix] {
			continue
		}
		seen[prefix] = true

		y, m, _, ok := calendar.ParseKey(day)
		if !ok {
			continue
		}
		for k, hs := range h.custom.ForMonth(ctx, y, m) {
			if strings.HasPrefix(k, prefix) {
				out[k] = hs
			}
		}
	}
	return out
}

// ExportCalendar handles GET /api/v1/calendar/{year}/export.ics
func (h *Handlers) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, err := parseYear(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	cq := h.resolveQuery(ctx, r)
	external, _ := h.loadExternal(ctx, cq.codes, year)

	public := h.agg.PublicForYear(events.Input{
		Codes:    cq.codes,
		Year:     year,
		Language: cq.language,
		Regions:  cq.regions,
		External: external,
	})

	var entries []export.Entry
	for _, key := range events.SortedKeys(public) {
		date, err := calendar.ParseDateString(key)
		if err != nil {
			continue
		}
		for _, ev := range public[key] {
			entries = append(entries, publicEntry(date, ev))
		}
	}

	custom := h.custom.ForYear(ctx, year)
	keys := make([]string, 0, len(custom))
	for k := range custom {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, key := range keys {
		date, _ := calendar.ParseDateString(key)
		for _, c := range custom[key] {
			entries = append(entries, export.Entry{
				Date:         date,
				Summary:      c.Title,
				Categories:   []string{string(c.Category)},
				ReminderDays: c.NotificationDays,
				UIDSeed:      c.ID,
			})
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="worldcal-%d.ics"`, year))
	if err := export.WriteICS(w, fmt.Sprintf("World Calendar %d", year), entries, h.now()); err != nil {
		h.logger.ErrorContext(ctx, "write ics export", slog.Any("error", err))
	}
}

func publicEntry(date time.Time, ev events.DisplayEvent) export.Entry {
	codes := make([]string, len(ev.Countries))
	locals := make([]string, len(ev.Countries))
	for i, c := range ev.Countries {
		codes[i] = c.Code
		locals[i] = c.Code + ": " + c.Local
	}
	return export.Entry{
		Date:        date,
		Summary:     ev.Label,
		Description: strings.Join(locals, "\n"),
		Categories:  codes,
		UIDSeed:     ev.Label + "|" + strings.Join(codes, ","),
	}
}

// -----------------------------------------------------------------
// Request parsing
// -----------------------------------------------------------------

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	if year < minYear || year > maxYear {
		return 0, fmt.Errorf("year must be between %d and %d", minYear, maxYear)
	}
	return year, nil
}

func parseYearMonth(ys, ms string) (int, time.Month, error) {
	year, err := parseYear(ys)
	if err != nil {
		return 0, 0, err
	}
	month, err := strconv.Atoi(ms)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errors.New("month must be between 1 and 12")
	}
	return year, time.Month(month), nil
}

// splitList splits a comma-separated list, upper-casing and dropping blanks
// and repeats.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" && !slices.Contains(out, part) {
			out = append(out, part)
		}
	}
	return out
}

// parseRegions turns "AM,RE" into an enabled-region set.
func parseRegions(s string) map[string]bool {
	regions := make(map[string]bool)
	for _, key := range splitList(s) {
		regions[key] = true
	}
	return regions
}
