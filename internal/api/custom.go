package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
	"github.com/zapponejosh/worldcal-api/internal/holidays"
	"github.com/zapponejosh/worldcal-api/internal/store"
)

// GetSettings handles GET /api/v1/settings
func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	st, saved := h.settings.Load(r.Context())

	WriteSuccess(w, map[string]any{
		"settings":        st,
		"needsOnboarding": !saved,
	})
}

// PutSettings handles PUT /api/v1/settings
func (h *Handlers) PutSettings(w http.ResponseWriter, r *http.Request) {
	var st store.Settings
	if err := decodeJSON(w, r, &st); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	codes := make([]string, 0, len(st.SelectedCountries))
	for _, c := range st.SelectedCountries {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		codes = append(codes, c)
	}
	st.SelectedCountries = codes

	switch st.LanguageDisplay {
	case "", store.DisplayNative, store.DisplayApp:
	default:
		WriteBadRequest(w, fmt.Sprintf("languageDisplay must be %q or %q", store.DisplayNative, store.DisplayApp))
		return
	}

	for key := range st.FRRegions {
		if !isFranceRegion(key) {
			WriteBadRequest(w, fmt.Sprintf("Unknown France region: %s", key))
			return
		}
	}

	h.settings.Save(r.Context(), st)
	saved, _ := h.settings.Load(r.Context())
	WriteSuccess(w, saved)
}

func isFranceRegion(key string) bool {
	for _, r := range holidays.FranceRegions {
		if r.Key == key {
			return true
		}
	}
	return false
}

// ListCustomHolidays handles GET /api/v1/custom-holidays
func (h *Handlers) ListCustomHolidays(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.custom.All(r.Context()))
}

// CreateCustomHoliday handles POST /api/v1/custom-holidays
func (h *Handlers) CreateCustomHoliday(w http.ResponseWriter, r *http.Request) {
	var req store.NewCustomHoliday
	if err := decodeJSON(w, r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	WriteCreated(w, h.custom.Add(r.Context(), req))
}

// UpdateCustomHoliday handles PATCH /api/v1/custom-holidays/{id}
func (h *Handlers) UpdateCustomHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch store.CustomHolidayPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := patch.Validate(); err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	updated, ok := h.custom.Update(r.Context(), id, patch)
	if !ok {
		WriteNotFound(w, "Custom holiday not found")
		return
	}
	WriteSuccess(w, updated)
}

// DeleteCustomHoliday handles DELETE /api/v1/custom-holidays/{id}
func (h *Handlers) DeleteCustomHoliday(w http.ResponseWriter, r *http.Request) {
	if !h.custom.Delete(r.Context(), chi.URLParam(r, "id")) {
		WriteNotFound(w, "Custom holiday not found")
		return
	}
	WriteSuccess(w, map[string]string{"message": "Custom holiday deleted"})
}

// GetCustomHolidaysForDate handles GET /api/v1/custom-holidays/date/{date}
func (h *Handlers) GetCustomHolidaysForDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := calendar.ParseDateString(date); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", date))
		return
	}

	WriteSuccess(w, h.custom.ForDate(r.Context(), date))
}

// GetCustomHolidaysForMonth handles GET /api/v1/custom-holidays/month/{year}/{month}
func (h *Handlers) GetCustomHolidaysForMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(chi.URLParam(r, "year"), chi.URLParam(r, "month"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	WriteSuccess(w, h.custom.ForMonth(r.Context(), year, month))
}
