package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/zapponejosh/worldcal-api/internal/auth"
	"github.com/zapponejosh/worldcal-api/internal/config"
	"github.com/zapponejosh/worldcal-api/internal/database"
	"github.com/zapponejosh/worldcal-api/internal/events"
	"github.com/zapponejosh/worldcal-api/internal/holidays"
	"github.com/zapponejosh/worldcal-api/internal/store"
)

// =============================================================================
// TEST SETUP HELPERS
// =============================================================================

type testEnv struct {
	db       *database.DB
	cfg      *config.Config
	handlers *Handlers
	router   http.Handler
}

// setupTest creates a fresh environment over an in-memory database. mutate
// may adjust the config before handlers are built.
func setupTest(t *testing.T, mutate func(*config.Config)) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Quiet during tests
	}))

	db, err := database.Open(database.Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		Port:            8080,
		Env:             config.EnvDevelopment,
		DatabasePath:    ":memory:",
		LogLevel:        "error",
		LogFormat:       "text",
		FallbackTimeout: time.Second,
	}
	if mutate != nil {
		mutate(cfg)
	}

	h := NewHandlers(db, cfg, logger)
	h.now = func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }

	return &testEnv{db: db, cfg: cfg, handlers: h, router: SetupRoutes(h, cfg, logger)}
}

// makeRequest builds a request with an optional JSON body and API key.
func makeRequest(method, path string, body any, apiKey string) *http.Request {
	var bodyReader io.Reader
	if body != nil {
		jsonData, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(jsonData)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	return req
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

// parseData decodes the envelope and unmarshals its data into v.
func parseData(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	var resp struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *ErrorInfo      `json:"error"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("response not successful: %+v", resp.Error)
	}
	if v != nil {
		if err := json.Unmarshal(resp.Data, v); err != nil {
			t.Fatalf("decode data: %v, data: %s", err, resp.Data)
		}
	}
}

func parseError(t *testing.T, rr *httptest.ResponseRecorder) ErrorInfo {
	t.Helper()
	var resp Response
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || resp.Error == nil {
		t.Fatalf("expected error envelope, got %+v", resp)
	}
	return *resp.Error
}

// =============================================================================
// MIDDLEWARE TESTS
// =============================================================================

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_PlainKey(t *testing.T) {
	cfg := &config.Config{Env: config.EnvProduction, APIKey: "plain-key"}
	handler := AuthMiddleware(cfg, slog.Default())(okHandler())

	tests := []struct {
		name string
		key  string
		want int
	}{
		{"valid", "plain-key", http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"invalid", "nope", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, makeRequest("PUT", "/x", nil, tt.key))
			if rr.Code != tt.want {
				t.Errorf("Status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestAuthMiddleware_HashedKey(t *testing.T) {
	hash, err := auth.HashKey("hashed-key")
	if err != nil {
		t.Fatalf("HashKey() error = %v", err)
	}
	cfg := &config.Config{Env: config.EnvProduction, APIKeyHash: hash}
	handler := AuthMiddleware(cfg, slog.Default())(okHandler())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, makeRequest("PUT", "/x", nil, "hashed-key"))
	if rr.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusOK)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, makeRequest("PUT", "/x", nil, "other"))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddleware_NoKeyConfigured(t *testing.T) {
	dev := AuthMiddleware(&config.Config{Env: config.EnvDevelopment}, slog.Default())(okHandler())
	rr := httptest.NewRecorder()
	dev.ServeHTTP(rr, makeRequest("PUT", "/x", nil, ""))
	if rr.Code != http.StatusOK {
		t.Errorf("development Status = %d, want %d", rr.Code, http.StatusOK)
	}

	staging := AuthMiddleware(&config.Config{Env: config.EnvStaging}, slog.Default())(okHandler())
	rr = httptest.NewRecorder()
	staging.ServeHTTP(rr, makeRequest("PUT", "/x", nil, "anything"))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("staging Status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("GET", "/health", nil, ""))
	generated := rr.Header().Get(RequestIDHeader)
	if generated == "" {
		t.Fatal("missing X-Request-ID header")
	}

	req := makeRequest("GET", "/health", nil, "")
	const incoming = "0192b7a4-5f0e-7c3a-9d7e-1f2a3b4c5d6e"
	req.Header.Set(RequestIDHeader, incoming)
	if got := env.do(req).Header().Get(RequestIDHeader); got != incoming {
		t.Errorf("X-Request-ID = %q, want incoming %q", got, incoming)
	}

	req = makeRequest("GET", "/health", nil, "")
	req.Header.Set(RequestIDHeader, "not a uuid\n")
	if got := env.do(req).Header().Get(RequestIDHeader); got == "not a uuid\n" {
		t.Error("malformed incoming request id was echoed")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := RecoveryMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") }),
	)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, makeRequest("GET", "/", nil, ""))
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", rr.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	env := setupTest(t, nil)
	rr := env.do(makeRequest(http.MethodOptions, "/api/v1/custom-holidays", nil, ""))
	if rr.Code != http.StatusNoContent {
		t.Errorf("Status = %d, want 204", rr.Code)
	}
	if !strings.Contains(rr.Header().Get("Access-Control-Allow-Methods"), "PATCH") {
		t.Error("PATCH not allowed by CORS")
	}
}

// =============================================================================
// PUBLIC ROUTES
// =============================================================================

func TestHealthCheck(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("GET", "/health", nil, ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rr.Code)
	}
	var data map[string]any
	parseData(t, rr, &data)
	if data["status"] != "healthy" {
		t.Errorf("status = %v", data["status"])
	}
}

func TestGetYearHolidays(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("GET", "/holidays/fr/2026?regions=AM", nil, ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200: %s", rr.Code, rr.Body.String())
	}

	var m holidays.YearMap
	if err := json.NewDecoder(rr.Body).Decode(&m); err != nil {
		t.Fatalf("decode year map: %v", err)
	}
	if len(m["2026-07-14"]) != 1 || m["2026-07-14"][0].Jurisdiction != "FR" {
		t.Errorf("Bastille Day missing: %v", m["2026-07-14"])
	}
	if len(m["2026-04-03"]) == 0 {
		t.Error("Alsace-Moselle Good Friday missing with regions=AM")
	}
}

func TestGetYearHolidays_Errors(t *testing.T) {
	env := setupTest(t, nil)

	tests := []struct {
		path string
		want int
	}{
		{"/holidays/XX/2026", http.StatusNotFound},
		{"/holidays/US/abc", http.StatusBadRequest},
		{"/holidays/US/1200", http.StatusBadRequest},
	}
	for _, tt := range tests {
		if rr := env.do(makeRequest("GET", tt.path, nil, "")); rr.Code != tt.want {
			t.Errorf("GET %s Status = %d, want %d", tt.path, rr.Code, tt.want)
		}
	}
}

func TestGetCountries(t *testing.T) {
	env := setupTest(t, nil)

	var meta []holidays.CountryMeta
	parseData(t, env.do(makeRequest("GET", "/api/v1/countries", nil, "")), &meta)
	if len(meta) != 45 {
		t.Errorf("countries = %d, want 45", len(meta))
	}
}

type monthBody struct {
	Days     []string                         `json:"days"`
	Events   map[string][]events.DisplayEvent `json:"events"`
	Lang     string                           `json:"lang"`
	Advisory string                           `json:"advisory"`
}

func TestGetCalendarMonth(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("GET", "/api/v1/calendar/2026/4?countries=DE,ES&lang=app", nil, ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d: %s", rr.Code, rr.Body.String())
	}
	var body monthBody
	parseData(t, rr, &body)

	if len(body.Days) != 42 || body.Days[0] != "2026-03-29" {
		t.Errorf("Days = %d starting %q, want 42 starting 2026-03-29", len(body.Days), body.Days[0])
	}
	gf := body.Events["2026-04-03"]
	if len(gf) != 1 || gf[0].Label != "Good Friday" || len(gf[0].Countries) != 2 {
		t.Errorf("Good Friday events = %+v", gf)
	}
	if body.Advisory != "" {
		t.Errorf("Advisory = %q, want none", body.Advisory)
	}
}

func TestGetCalendarMonth_SpillsIntoNextYear(t *testing.T) {
	env := setupTest(t, nil)

	var body monthBody
	parseData(t, env.do(makeRequest("GET", "/api/v1/calendar/2026/12?countries=DE", nil, "")), &body)
	if _, ok := body.Events["2027-01-01"]; !ok {
		t.Error("grid day 2027-01-01 should carry next year's New Year's Day")
	}
}

func TestGetCalendarMonth_UsesSavedSettings(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("PUT", "/api/v1/settings", store.Settings{
		SelectedCountries: []string{"de", "es"},
		LanguageDisplay:   "native",
	}, ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("PUT settings Status = %d: %s", rr.Code, rr.Body.String())
	}

	var body monthBody
	parseData(t, env.do(makeRequest("GET", "/api/v1/calendar/2026/4", nil, "")), &body)
	if body.Lang != "native" {
		t.Errorf("Lang = %q, want native", body.Lang)
	}
	if got := len(body.Events["2026-04-03"]); got != 2 {
		t.Errorf("native Good Friday events = %d, want 2", got)
	}
}

func TestGetCalendarMonth_IncludesCustom(t *testing.T) {
	env := setupTest(t, nil)

	env.do(makeRequest("POST", "/api/v1/custom-holidays", store.NewCustomHoliday{
		Title: "Party", Date: "2026-04-03", Color: "#abcdef",
	}, ""))

	var body monthBody
	parseData(t, env.do(makeRequest("GET", "/api/v1/calendar/2026/4?countries=DE", nil, "")), &body)
	day := body.Events["2026-04-03"]
	if len(day) != 2 || day[0].Kind != events.Public || day[1].Kind != events.Custom || day[1].Color != "#abcdef" {
		t.Errorf("2026-04-03 events = %+v", day)
	}
}

func TestGetCalendarMonth_Fallback(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/holidays/MA/2026":
			io.WriteString(w, `{"2026-04-11":[{"name_local":"x","name_intl":"Test Day","country":"MA"}]}`)
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer upstream.Close()

	env := setupTest(t, func(c *config.Config) { c.FallbackBaseURL = upstream.URL })

	var body monthBody
	parseData(t, env.do(makeRequest("GET", "/api/v1/calendar/2026/4?countries=MA,QQ", nil, "")), &body)

	if ev := body.Events["2026-04-11"]; len(ev) != 1 || ev[0].Label != "Test Day" {
		t.Errorf("fallback events = %+v", ev)
	}
	if !strings.Contains(body.Advisory, "QQ") {
		t.Errorf("Advisory = %q, want mention of QQ", body.Advisory)
	}
}

func TestGetCalendarMonth_BadInput(t *testing.T) {
	env := setupTest(t, nil)
	for _, path := range []string{"/api/v1/calendar/2026/13", "/api/v1/calendar/x/1"} {
		if rr := env.do(makeRequest("GET", path, nil, "")); rr.Code != http.StatusBadRequest {
			t.Errorf("GET %s Status = %d, want 400", path, rr.Code)
		}
	}
}

func TestExportCalendar(t *testing.T) {
	env := setupTest(t, nil)

	env.do(makeRequest("POST", "/api/v1/custom-holidays", store.NewCustomHoliday{
		Title: "Anniversary", Date: "2001-06-01", IsRecurring: true, NotificationDays: []int{7},
	}, ""))

	rr := env.do(makeRequest("GET", "/api/v1/calendar/2026/export.ics?countries=DE", nil, ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("Content-Type = %q", ct)
	}

	out := rr.Body.String()
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"SUMMARY:Good Friday",
		"DTSTART;VALUE=DATE:20260601",
		"SUMMARY:Anniversary",
		"TRIGGER:-P7D",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("export missing %q", want)
		}
	}
}

// =============================================================================
// SETTINGS
// =============================================================================

func TestSettings_RoundTrip(t *testing.T) {
	env := setupTest(t, nil)

	var got struct {
		Settings        store.Settings `json:"settings"`
		NeedsOnboarding bool           `json:"needsOnboarding"`
	}
	parseData(t, env.do(makeRequest("GET", "/api/v1/settings", nil, "")), &got)
	if !got.NeedsOnboarding {
		t.Error("fresh install should need onboarding")
	}

	rr := env.do(makeRequest("PUT", "/api/v1/settings", store.Settings{
		SelectedCountries: []string{"FR"},
		LanguageDisplay:   "app",
		FRRegions:         map[string]bool{"AM": true, "RE": false},
	}, ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("PUT Status = %d: %s", rr.Code, rr.Body.String())
	}

	parseData(t, env.do(makeRequest("GET", "/api/v1/settings", nil, "")), &got)
	if got.NeedsOnboarding || !got.Settings.FRRegions["AM"] || got.Settings.SelectedCountries[0] != "FR" {
		t.Errorf("settings after PUT = %+v", got)
	}
}

func TestSettings_Validation(t *testing.T) {
	env := setupTest(t, nil)

	bodies := []any{
		map[string]any{"languageDisplay": "klingon"},
		map[string]any{"frRegions": map[string]bool{"ZZ": true}},
		map[string]any{"unknownField": 1},
	}
	for _, b := range bodies {
		rr := env.do(makeRequest("PUT", "/api/v1/settings", b, ""))
		if rr.Code != http.StatusBadRequest {
			t.Errorf("PUT %v Status = %d, want 400", b, rr.Code)
		}
	}
}

func TestSettings_RequiresKey(t *testing.T) {
	env := setupTest(t, func(c *config.Config) { c.APIKey = "k" })

	if rr := env.do(makeRequest("PUT", "/api/v1/settings", store.Settings{}, "")); rr.Code != http.StatusUnauthorized {
		t.Errorf("PUT without key Status = %d, want 401", rr.Code)
	}
	if rr := env.do(makeRequest("PUT", "/api/v1/settings", store.Settings{}, "k")); rr.Code != http.StatusOK {
		t.Errorf("PUT with key Status = %d, want 200", rr.Code)
	}
	if rr := env.do(makeRequest("GET", "/api/v1/settings", nil, "")); rr.Code != http.StatusOK {
		t.Errorf("GET without key Status = %d, want 200", rr.Code)
	}
}

// =============================================================================
// CUSTOM HOLIDAYS
// =============================================================================

func TestCustomHolidays_CRUD(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("POST", "/api/v1/custom-holidays", store.NewCustomHoliday{
		Title:            "Birthday",
		Date:             "1990-05-04",
		IsRecurring:      true,
		Category:         store.CategoryBirthday,
		NotificationDays: []int{3, 1, 3},
	}, ""))
	if rr.Code != http.StatusCreated {
		t.Fatalf("POST Status = %d: %s", rr.Code, rr.Body.String())
	}
	var created store.CustomHoliday
	parseData(t, rr, &created)
	if !strings.HasPrefix(created.ID, "custom-") {
		t.Errorf("ID = %q", created.ID)
	}
	if len(created.NotificationDays) != 2 {
		t.Errorf("NotificationDays = %v, want de-duplicated", created.NotificationDays)
	}

	rr = env.do(makeRequest("PATCH", "/api/v1/custom-holidays/"+created.ID, map[string]any{"title": "Mum's birthday"}, ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("PATCH Status = %d: %s", rr.Code, rr.Body.String())
	}
	var updated store.CustomHoliday
	parseData(t, rr, &updated)
	if updated.Title != "Mum's birthday" || !updated.IsRecurring {
		t.Errorf("updated = %+v", updated)
	}

	var forDate []store.CustomHoliday
	parseData(t, env.do(makeRequest("GET", "/api/v1/custom-holidays/date/2030-05-04", nil, "")), &forDate)
	if len(forDate) != 1 {
		t.Errorf("ForDate = %d records, want 1", len(forDate))
	}

	var forMonth map[string][]store.CustomHoliday
	parseData(t, env.do(makeRequest("GET", "/api/v1/custom-holidays/month/2031/5", nil, "")), &forMonth)
	if len(forMonth["2031-05-04"]) != 1 {
		t.Errorf("ForMonth = %v", forMonth)
	}

	var all []store.CustomHoliday
	parseData(t, env.do(makeRequest("GET", "/api/v1/custom-holidays", nil, "")), &all)
	if len(all) != 1 {
		t.Errorf("list = %d records, want 1", len(all))
	}

	if rr := env.do(makeRequest("DELETE", "/api/v1/custom-holidays/"+created.ID, nil, "")); rr.Code != http.StatusOK {
		t.Errorf("DELETE Status = %d", rr.Code)
	}
	if rr := env.do(makeRequest("DELETE", "/api/v1/custom-holidays/"+created.ID, nil, "")); rr.Code != http.StatusNotFound {
		t.Errorf("second DELETE Status = %d, want 404", rr.Code)
	}
}

func TestCustomHolidays_Validation(t *testing.T) {
	env := setupTest(t, nil)

	rr := env.do(makeRequest("POST", "/api/v1/custom-holidays", store.NewCustomHoliday{Title: "", Date: "2026-01-01"}, ""))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("POST without title Status = %d, want 400", rr.Code)
	}
	if e := parseError(t, rr); e.Code != "BAD_REQUEST" {
		t.Errorf("error code = %q", e.Code)
	}

	rr = env.do(makeRequest("PATCH", "/api/v1/custom-holidays/custom-none", map[string]any{"title": "x"}, ""))
	if rr.Code != http.StatusNotFound {
		t.Errorf("PATCH unknown id Status = %d, want 404", rr.Code)
	}

	rr = env.do(makeRequest("GET", "/api/v1/custom-holidays/date/05-04", nil, ""))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("GET bad date Status = %d, want 400", rr.Code)
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	env := setupTest(t, nil)

	if rr := env.do(makeRequest("GET", "/nope", nil, "")); rr.Code != http.StatusNotFound {
		t.Errorf("unknown route Status = %d, want 404", rr.Code)
	}
	if rr := env.do(makeRequest("DELETE", "/api/v1/countries", nil, "")); rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("wrong method Status = %d, want 405", rr.Code)
	}
}
