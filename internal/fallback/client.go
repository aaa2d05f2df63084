// Package fallback fetches Year Holiday Maps over HTTP for jurisdictions
// that have no builtin calculator.
package fallback

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/zapponejosh/worldcal-api/internal/holidays"
)

// maxBody caps the response size read from the fallback source.
const maxBody = 4 << 20

var (
	// ErrNoBaseURL is returned when no fallback source is configured.
	ErrNoBaseURL = errors.New("fallback: no base URL configured")

	// ErrStale is returned by a load that was superseded by a newer one.
	ErrStale = errors.New("fallback: load superseded by a newer request")
)

// FetchError describes a failed fetch for one jurisdiction and year.
// Status is zero when no HTTP response was received.
type FetchError struct {
	Code   string
	Year   int
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s/%d: HTTP %d", e.Code, e.Year, e.Status)
	}
	return fmt.Sprintf("fetch %s/%d: %v", e.Code, e.Year, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// BuildURL returns {base}/holidays/{code}/{year}. An empty base yields the
// relative path.
func BuildURL(base, code string, year int) string {
	return strings.TrimRight(base, "/") + "/holidays/" + code + "/" + strconv.Itoa(year)
}

// Client fetches holiday maps from a fallback source.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the map for code and year. A non-2xx status or an
// unparsable body is a *FetchError; an empty body is an empty map.
func (c *Client) Fetch(ctx context.Context, code string, year int) (holidays.YearMap, error) {
	if c.BaseURL == "" {
		return nil, ErrNoBaseURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, BuildURL(c.BaseURL, code, year), nil)
	if err != nil {
		return nil, &FetchError{Code: code, Year: year, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Code: code, Year: year, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return nil, &FetchError{Code: code, Year: year, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &FetchError{Code: code, Year: year, Err: fmt.Errorf("read body: %w", err)}
	}

	m, err := decode(body)
	if err != nil {
		return nil, &FetchError{Code: code, Year: year, Err: err}
	}
	return m, nil
}

// decode parses a Year Holiday Map payload. Blank input is an empty map.
func decode(body []byte) (holidays.YearMap, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return holidays.YearMap{}, nil
	}

	var m holidays.YearMap
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("decode holiday map: %w", err)
	}
	if m == nil {
		m = holidays.YearMap{}
	}
	return m, nil
}
