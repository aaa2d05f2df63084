// Command worldcal prints a month of public and custom holidays for a set
// of jurisdictions.
//
// Usage:
//
//	go run ./cmd/worldcal -countries US,FR,JP -year 2026 -month 5 -regions AM
//
// With -db, saved settings fill in unset flags and custom holidays are
// read from the database. With -fallback, codes without a builtin
// calculator are fetched from that base URL.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/zapponejosh/worldcal-api/internal/calendar"
	"github.com/zapponejosh/worldcal-api/internal/database"
	"github.com/zapponejosh/worldcal-api/internal/events"
	"github.com/zapponejosh/worldcal-api/internal/fallback"
	"github.com/zapponejosh/worldcal-api/internal/holidays"
	"github.com/zapponejosh/worldcal-api/internal/logger"
	"github.com/zapponejosh/worldcal-api/internal/store"
)

type options struct {
	countries string
	year      int
	month     int
	lang      string
	regions   string
	dbPath    string
	fallback  string
	timeout   time.Duration
	verbose   bool
}

func main() {
	now := time.Now()

	var opts options
	flag.StringVar(&opts.countries, "countries", "", "Comma-separated jurisdiction codes (default: saved settings, else US)")
	flag.IntVar(&opts.year, "year", now.Year(), "Year")
	flag.IntVar(&opts.month, "month", int(now.Month()), "Month (1-12)")
	flag.StringVar(&opts.lang, "lang", "", "Label language: native or app")
	flag.StringVar(&opts.regions, "regions", "", "Comma-separated France region keys, e.g. AM,RE")
	flag.StringVar(&opts.dbPath, "db", "", "SQLite database with saved settings and custom holidays")
	flag.StringVar(&opts.fallback, "fallback", "", "Base URL of a fallback holiday source")
	flag.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Fallback request timeout")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose logging")
	flag.Parse()

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	log := logger.New(os.Stderr, level, "text")

	color := term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(context.Background(), opts, os.Stdout, color, log); err != nil {
		fmt.Fprintf(os.Stderr, "worldcal: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer, color bool, log *slog.Logger) error {
	if opts.month < 1 || opts.month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", opts.month)
	}

	var kv store.KV = store.NewMemoryKV()
	if opts.dbPath != "" {
		db, err := database.Open(database.DefaultConfig(opts.dbPath), log)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		if _, err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		kv = db
	}

	saved, _ := store.NewSettingsStore(kv, log).Load(ctx)
	codes := splitList(opts.countries)
	if len(codes) == 0 {
		codes = saved.SelectedCountries
	}
	if len(codes) == 0 {
		codes = []string{"US"}
	}
	lang := events.ParseLanguage(saved.LanguageDisplay)
	if opts.lang != "" {
		lang = events.ParseLanguage(opts.lang)
	}
	regions := saved.FRRegions
	if opts.regions != "" {
		regions = map[string]bool{}
		for _, r := range splitList(opts.regions) {
			regions[r] = true
		}
	}

	registry := holidays.Builtin()
	month := time.Month(opts.month)

	var external map[string]holidays.YearMap
	var advisory string
	if opts.fallback != "" {
		loader := fallback.NewLoader(fallback.NewClient(opts.fallback, opts.timeout), log)
		res, err := loader.Load(ctx, codes, opts.year, registry)
		if err == nil && res.Advisory != "" {
			// One retry for transient failures.
			res, err = loader.Retry(ctx)
		}
		if err != nil {
			return fmt.Errorf("load fallback holidays: %w", err)
		}
		external, advisory = res.Maps, res.Advisory
	}

	agg := events.New(registry, holidays.Meta)
	all := agg.Build(events.Input{
		Codes:    codes,
		Year:     opts.year,
		Language: lang,
		Regions:  regions,
		Custom:   store.NewCustomHolidays(kv, log).ForMonth(ctx, opts.year, month),
		External: external,
	})

	view := calendar.Date(opts.year, month, 1)
	render(out, view, codes, events.ForDates(all, calendar.MonthKeys(view)), color)
	if advisory != "" {
		fmt.Fprintf(out, "\n! %s\n", advisory)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToUpper(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
