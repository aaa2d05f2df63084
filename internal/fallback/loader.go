package fallback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/zapponejosh/worldcal-api/internal/database"
	"github.com/zapponejosh/worldcal-api/internal/holidays"
)

// ErrNoRequest is returned by Retry before any Load.
var ErrNoRequest = errors.New("fallback: nothing to retry")

// Fetcher is the part of *Client the loader needs.
type Fetcher interface {
	Fetch(ctx context.Context, code string, year int) (holidays.YearMap, error)
}

// Cache stores fetched payloads. *database.DB satisfies it.
type Cache interface {
	GetCachedYear(ctx context.Context, code string, year int) (*database.CachedYear, error)
	PutCachedYear(ctx context.Context, code string, year int, payload []byte) error
}

// Known reports whether a code has a builtin calculator.
type Known interface {
	Has(code string) bool
}

// Result is the outcome of a load. Advisory is a user-facing message naming
// the codes that could not be fetched; it is empty on full success.
type Result struct {
	Maps     map[string]holidays.YearMap
	Advisory string
}

type request struct {
	codes []string
	year  int
	known Known
}

// Loader fetches fallback maps with last-requested-wins semantics: starting
// a load cancels the previous one, and a superseded load returns ErrStale
// instead of its result.
type Loader struct {
	fetcher Fetcher
	cache   Cache
	maxAge  time.Duration
	logger  *slog.Logger

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	last   *request
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithCache stores successful fetches in c and serves entries younger than
// maxAge from it. A zero maxAge never expires entries.
func WithCache(c Cache, maxAge time.Duration) LoaderOption {
	return func(l *Loader) {
		l.cache = c
		l.maxAge = maxAge
	}
}

// NewLoader returns a loader over f.
func NewLoader(f Fetcher, logger *slog.Logger, opts ...LoaderOption) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{fetcher: f, logger: logger}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches every code in codes that known does not cover. Failed codes
// yield empty maps and are named in the advisory.
func (l *Loader) Load(ctx context.Context, codes []string, year int, known Known) (Result, error) {
	req := &request{codes: append([]string(nil), codes...), year: year, known: known}
	return l.run(ctx, req)
}

// Retry re-runs the most recent request.
func (l *Loader) Retry(ctx context.Context) (Result, error) {
	l.mu.Lock()
	last := l.last
	l.mu.Unlock()

	if last == nil {
		return Result{}, ErrNoRequest
	}
	return l.run(ctx, last)
}

func (l *Loader) run(ctx context.Context, req *request) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	l.cancel = cancel
	l.last = req
	l.mu.Unlock()

	var pending []string
	for _, raw := range req.codes {
		code := strings.ToUpper(strings.TrimSpace(raw))
		if code == "" || (req.known != nil && req.known.Has(code)) {
			continue
		}
		pending = append(pending, code)
	}

	maps := make([]holidays.YearMap, len(pending))
	errs := make([]error, len(pending))

	var wg sync.WaitGroup
	for i, code := range pending {
		wg.Add(1)
		go func() {
			defer wg.Done()
			maps[i], errs[i] = l.fetch(ctx, code, req.year)
		}()
	}
	wg.Wait()

	if !l.current(gen) {
		return Result{}, ErrStale
	}

	res := Result{Maps: make(map[string]holidays.YearMap, len(pending))}
	var failed []string
	for i, code := range pending {
		if errs[i] != nil {
			l.logger.WarnContext(ctx, "fallback fetch failed",
				slog.String("code", code),
				slog.Int("year", req.year),
				slog.Any("error", errs[i]),
			)
			failed = append(failed, code)
			res.Maps[code] = holidays.YearMap{}
			continue
		}
		res.Maps[code] = maps[i]
	}
	if len(failed) > 0 {
		res.Advisory = fmt.Sprintf("Could not load holidays for %s (%d)", strings.Join(failed, ", "), req.year)
	}
	return res, nil
}

func (l *Loader) current(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return gen == l.gen
}

// fetch serves from the cache when possible and caches fresh results.
// Cache errors are logged and never fail the fetch.
func (l *Loader) fetch(ctx context.Context, code string, year int) (holidays.YearMap, error) {
	if l.cache != nil {
		entry, err := l.cache.GetCachedYear(ctx, code, year)
		switch {
		case err == nil && (l.maxAge == 0 || time.Since(entry.FetchedAt) < l.maxAge):
			if m, derr := decode(entry.Payload); derr == nil {
				return m, nil
			}
		case err != nil && !database.IsNotFound(err):
			l.logger.WarnContext(ctx, "read fallback cache", slog.String("code", code), slog.Any("error", err))
		}
	}

	m, err := l.fetcher.Fetch(ctx, code, year)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		payload, err := json.Marshal(m)
		if err == nil {
			err = l.cache.PutCachedYear(ctx, code, year, payload)
		}
		if err != nil {
			l.logger.WarnContext(ctx, "write fallback cache", slog.String("code", code), slog.Any("error", err))
		}
	}
	return m, nil
}
