package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/zapponejosh/worldcal-api/internal/events"
	"github.com/zapponejosh/worldcal-api/internal/holidays"
	"github.com/zapponejosh/worldcal-api/internal/store"
)

// =============================================================================
// Response Types
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	Jurisdictions int    `json:"jurisdictions"`
	Fallback      bool   `json:"fallback"`
}

type MonthResponse struct {
	Year      int                              `json:"year"`
	Month     int                              `json:"month"`
	Countries []string                         `json:"countries"`
	Days      []string                         `json:"days"`
	Events    map[string][]events.DisplayEvent `json:"events"`
	Advisory  string                           `json:"advisory,omitempty"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	apiKey       string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL, apiKey string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("World Calendar API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	tr.testHealth()
	tr.testCountries()
	tr.testYearHolidays()
	tr.testCalendarMonth()
	tr.testExport()
	tr.testCustomHolidays()
	tr.testEdgeCases()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	resp, err := tr.get("/health")
	if err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	var health HealthResponse
	if err := json.Unmarshal(resp.Data, &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess(fmt.Sprintf("Health check passed (%d jurisdictions, fallback=%v)",
			health.Jurisdictions, health.Fallback))
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testCountries() {
	tr.printSection("Countries")

	resp, err := tr.get("/api/v1/countries")
	if err != nil {
		tr.recordError("Countries", err.Error())
		return
	}

	var countries []holidays.CountryMeta
	if err := json.Unmarshal(resp.Data, &countries); err != nil {
		tr.recordError("Countries", err.Error())
		return
	}

	for _, c := range countries {
		if c.Code == "FR" && len(c.Regions) > 0 {
			tr.recordSuccess(fmt.Sprintf("%d countries, FR has %d regions", len(countries), len(c.Regions)))
			return
		}
	}
	tr.recordError("Countries", "FR with regions not listed")
}

func (tr *TestRunner) testYearHolidays() {
	tr.printSection("Year Holiday Maps")

	testCases := []struct {
		code, key, name string
	}{
		{"US", "2026-07-03", "Independence Day"},
		{"DE", "2026-04-03", "Good Friday"},
		{"JP", "2026-05-06", "Substitute Holiday"},
		{"FR", "2026-05-22", "Abolition of Slavery"},
	}

	for _, tc := range testCases {
		path := fmt.Sprintf("/holidays/%s/2026", tc.code)
		if tc.code == "FR" {
			path += "?regions=MQ"
		}

		var m holidays.YearMap
		if err := tr.getJSON(path, &m); err != nil {
			tr.recordError(tc.code, err.Error())
			continue
		}

		found := false
		for _, occ := range m[tc.key] {
			if strings.HasPrefix(occ.InternationalName, tc.name) {
				found = true
			}
		}
		if found {
			tr.recordSuccess(fmt.Sprintf("%s %s: %s (%d dates)", tc.code, tc.key, tc.name, len(m)))
		} else {
			tr.recordError(tc.code, fmt.Sprintf("expected %q on %s, got %v", tc.name, tc.key, m[tc.key]))
		}
	}
}

func (tr *TestRunner) testCalendarMonth() {
	tr.printSection("Calendar Month")

	resp, err := tr.get("/api/v1/calendar/2026/4?countries=DE,ES&lang=app")
	if err != nil {
		tr.recordError("Month", err.Error())
		return
	}

	var month MonthResponse
	if err := json.Unmarshal(resp.Data, &month); err != nil {
		tr.recordError("Month", err.Error())
		return
	}

	if len(month.Days) == 42 {
		tr.recordSuccess("Grid has 42 days")
	} else {
		tr.recordError("Month grid", fmt.Sprintf("Expected 42 days, got %d", len(month.Days)))
	}

	evs := month.Events["2026-04-03"]
	if len(evs) == 1 && evs[0].Label == "Good Friday" && len(evs[0].Countries) == 2 {
		tr.recordSuccess("Good Friday merged across DE and ES")
	} else {
		tr.recordError("Month merge", fmt.Sprintf("2026-04-03 events: %+v", evs))
	}

	if tr.verbose {
		for _, key := range events.SortedKeys(month.Events) {
			for _, ev := range month.Events[key] {
				fmt.Printf("    %s %s (%d)\n", key, ev.Label, len(ev.Countries))
			}
		}
	}

	// Native labels never merge across languages.
	resp, err = tr.get("/api/v1/calendar/2026/4?countries=DE,ES&lang=native")
	if err != nil {
		tr.recordError("Month (native)", err.Error())
		return
	}
	if err := json.Unmarshal(resp.Data, &month); err != nil {
		tr.recordError("Month (native)", err.Error())
		return
	}
	if len(month.Events["2026-04-03"]) == 2 {
		tr.recordSuccess("Native labels kept separate")
	} else {
		tr.recordError("Month (native)", fmt.Sprintf("2026-04-03 events: %+v", month.Events["2026-04-03"]))
	}
}

func (tr *TestRunner) testExport() {
	tr.printSection("iCalendar Export")

	resp, err := tr.do(http.MethodGet, "/api/v1/calendar/2026/export.ics?countries=US", nil, false)
	if err != nil {
		tr.recordError("Export", err.Error())
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode != http.StatusOK:
		tr.recordError("Export", fmt.Sprintf("HTTP %d", resp.StatusCode))
	case !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/calendar"):
		tr.recordError("Export", "Content-Type "+resp.Header.Get("Content-Type"))
	case !bytes.HasPrefix(body, []byte("BEGIN:VCALENDAR\r\n")):
		tr.recordError("Export", "body is not a VCALENDAR")
	default:
		tr.recordSuccess(fmt.Sprintf("Export returned %d events", bytes.Count(body, []byte("BEGIN:VEVENT"))))
	}
}

func (tr *TestRunner) testCustomHolidays() {
	tr.printSection("Custom Holidays")

	payload := store.NewCustomHoliday{
		Title:            "apitest " + time.Now().Format(time.RFC3339),
		Date:             "2000-04-03",
		IsRecurring:      true,
		Category:         store.CategoryOther,
		NotificationDays: []int{7, 1},
	}

	resp, err := tr.do(http.MethodPost, "/api/v1/custom-holidays", payload, true)
	if err != nil {
		tr.recordError("Create", err.Error())
		return
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		tr.recordSuccess("Writes require an API key (pass -key to test CRUD)")
		return
	}

	var created store.CustomHoliday
	if err := tr.decode(resp, http.StatusCreated, &created); err != nil {
		tr.recordError("Create", err.Error())
		return
	}
	tr.recordSuccess("Created " + created.ID)

	var list []store.CustomHoliday
	if err := tr.getData("/api/v1/custom-holidays/date/2026-04-03", &list); err != nil {
		tr.recordError("For date", err.Error())
	} else if len(list) > 0 {
		tr.recordSuccess(fmt.Sprintf("Recurring holiday found on 2026-04-03 (%d)", len(list)))
	} else {
		tr.recordError("For date", "recurring holiday not matched")
	}

	title := "apitest updated"
	resp, err = tr.do(http.MethodPatch, "/api/v1/custom-holidays/"+created.ID, store.CustomHolidayPatch{Title: &title}, true)
	if err != nil {
		tr.recordError("Update", err.Error())
	} else {
		var updated store.CustomHoliday
		if err := tr.decode(resp, http.StatusOK, &updated); err != nil {
			tr.recordError("Update", err.Error())
		} else if updated.Title == title && updated.Date == payload.Date {
			tr.recordSuccess("Partial update kept other fields")
		} else {
			tr.recordError("Update", fmt.Sprintf("got %+v", updated))
		}
	}

	resp, err = tr.do(http.MethodDelete, "/api/v1/custom-holidays/"+created.ID, nil, true)
	if err != nil {
		tr.recordError("Delete", err.Error())
		return
	}
	resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		tr.recordSuccess("Deleted " + created.ID)
	} else {
		tr.recordError("Delete", fmt.Sprintf("HTTP %d", resp.StatusCode))
	}
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	testCases := []struct {
		path   string
		status int
		desc   string
	}{
		{"/holidays/XX/2026", http.StatusNotFound, "Unknown jurisdiction"},
		{"/holidays/US/abc", http.StatusBadRequest, "Invalid year"},
		{"/api/v1/calendar/2026/13", http.StatusBadRequest, "Month 13"},
		{"/api/v1/custom-holidays/date/2026-02-30", http.StatusBadRequest, "Impossible date"},
		{"/api/v1/nothing", http.StatusNotFound, "Unknown route"},
	}

	for _, tc := range testCases {
		resp, err := tr.do(http.MethodGet, tc.path, nil, false)
		if err != nil {
			tr.recordError(tc.desc, err.Error())
			continue
		}
		resp.Body.Close()
		if resp.StatusCode == tc.status {
			tr.recordSuccess(fmt.Sprintf("%s rejected with %d", tc.desc, tc.status))
		} else {
			tr.recordError(tc.desc, fmt.Sprintf("Expected %d, got %d", tc.status, resp.StatusCode))
		}
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

func (tr *TestRunner) do(method, path string, body any, auth bool) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal error: %w", err)
		}
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, tr.baseURL+path, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth && tr.apiKey != "" {
		req.Header.Set("X-API-Key", tr.apiKey)
	}
	return tr.client.Do(req)
}

// decode reads an envelope, checks the status and unmarshals its data.
func (tr *TestRunner) decode(resp *http.Response, status int, target any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	if resp.StatusCode != status || !apiResp.Success {
		msg := "unknown error"
		if apiResp.Error != nil {
			msg = apiResp.Error.Message
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, msg)
	}
	if target == nil {
		return nil
	}
	return json.Unmarshal(apiResp.Data, target)
}

func (tr *TestRunner) get(path string) (*APIResponse, error) {
	resp, err := tr.do(http.MethodGet, path, nil, false)
	if err != nil {
		return nil, err
	}

	var data json.RawMessage
	if err := tr.decode(resp, http.StatusOK, &data); err != nil {
		return nil, err
	}
	return &APIResponse{Success: true, Data: data}, nil
}

func (tr *TestRunner) getData(path string, target any) error {
	resp, err := tr.get(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(resp.Data, target)
}

// getJSON reads a bare JSON body, as served by /holidays.
func (tr *TestRunner) getJSON(path string, target any) error {
	resp, err := tr.do(http.MethodGet, path, nil, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
		return
	}
	fmt.Println("All tests passed! ✓")
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	apiKey := flag.String("key", os.Getenv("API_KEY"), "API key for write endpoints")
	verbose := flag.Bool("v", false, "Verbose output (show month events)")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *apiKey, *verbose)
	runner.Run()

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
