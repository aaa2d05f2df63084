package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zapponejosh/worldcal-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /holidays/{code}/{year}                  raw Year Holiday Map
//	GET    /api/v1/countries
//	GET    /api/v1/calendar/{year}/{month}
//	GET    /api/v1/calendar/{year}/export.ics
//	GET    /api/v1/settings
//	PUT    /api/v1/settings                         (API key)
//	GET    /api/v1/custom-holidays
//	POST   /api/v1/custom-holidays                  (API key)
//	PATCH  /api/v1/custom-holidays/{id}             (API key)
//	DELETE /api/v1/custom-holidays/{id}             (API key)
//	GET    /api/v1/custom-holidays/date/{date}
//	GET    /api/v1/custom-holidays/month/{year}/{month}
func SetupRoutes(h *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RealIP,
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteMethodNotAllowed(w, "Method not allowed")
	})

	requireKey := AuthMiddleware(cfg, logger)

	r.Get("/health", h.HealthCheck)
	r.Get("/holidays/{code}/{year}", h.GetYearHolidays)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/countries", h.GetCountries)

		r.Get("/calendar/{year}/export.ics", h.ExportCalendar)
		r.Get("/calendar/{year}/{month}", h.GetCalendarMonth)

		r.Get("/settings", h.GetSettings)
		r.With(requireKey).Put("/settings", h.PutSettings)

		r.Route("/custom-holidays", func(r chi.Router) {
			r.Get("/", h.ListCustomHolidays)
			r.Get("/date/{date}", h.GetCustomHolidaysForDate)
			r.Get("/month/{year}/{month}", h.GetCustomHolidaysForMonth)

			r.Group(func(r chi.Router) {
				r.Use(requireKey)
				r.Post("/", h.CreateCustomHoliday)
				r.Patch("/{id}", h.UpdateCustomHoliday)
				r.Delete("/{id}", h.DeleteCustomHoliday)
			})
		})
	})

	return r
}
