// Command import restores a settings and custom holidays backup into the
// SQLite database, or writes one out.
//
// Usage:
//
//	go run ./cmd/import -json backup.json -db data/worldcal.db
//	go run ./cmd/import -json backup.json -db data/worldcal.db -replace
//	go run ./cmd/import -json backup.json -db data/worldcal.db -dump
//
// A backup is a JSON object with "settings" and "customHolidays" fields.
// By default custom holidays are merged: records whose title, date and
// recurrence already exist (titles compared case-insensitively) are skipped, the rest get fresh ids. With
// -replace the stored settings and list are overwritten in a single
// transaction and ids are kept.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/zapponejosh/worldcal-api/internal/database"
	"github.com/zapponejosh/worldcal-api/internal/store"
)

// Backup is the file format read and written by this command.
type Backup struct {
	Settings       *store.Settings       `json:"settings,omitempty"`
	CustomHolidays []store.CustomHoliday `json:"customHolidays"`
}

// ImportStats tracks import statistics.
type ImportStats struct {
	Added    int
	Skipped  int
	Invalid  int
	Settings bool
}

func main() {
	jsonPath := flag.String("json", "backup.json", "Path to backup JSON file")
	dbPath := flag.String("db", "data/worldcal.db", "Path to SQLite database")
	replace := flag.Bool("replace", false, "Overwrite stored data instead of merging")
	dump := flag.Bool("dump", false, "Write the stored data to -json instead of importing")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	var err error
	if *dump {
		err = runDump(*jsonPath, *dbPath, logger)
	} else {
		err = run(*jsonPath, *dbPath, *replace, logger)
	}
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("done")
}

func openDB(ctx context.Context, dbPath string, logger *slog.Logger) (*database.DB, error) {
	logger.Info("opening database", slog.String("path", dbPath))

	db, err := database.Open(database.DefaultConfig(dbPath), logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	migrated, err := db.Migrate(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations complete", slog.Int("applied", migrated))
	return db, nil
}

func run(jsonPath, dbPath string, replace bool, logger *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	logger.Info("reading JSON file", slog.String("path", jsonPath))

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("read JSON file: %w", err)
	}

	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}

	logger.Info("parsed JSON",
		slog.Int("custom_holidays", len(backup.CustomHolidays)),
		slog.Bool("settings", backup.Settings != nil),
	)

	db, err := openDB(ctx, dbPath, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	var stats ImportStats
	if replace {
		err = replaceAll(ctx, db, backup, logger, &stats)
	} else {
		err = merge(ctx, db, backup, logger, &stats)
	}
	if err != nil {
		return fmt.Errorf("import data: %w", err)
	}

	total := len(store.NewCustomHolidays(db, logger).All(ctx))
	elapsed := time.Since(startTime)

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Settings imported:   %v\n", stats.Settings)
	fmt.Printf("Holidays added:      %d\n", stats.Added)
	fmt.Printf("Holidays skipped:    %d\n", stats.Skipped)
	fmt.Printf("Holidays invalid:    %d\n", stats.Invalid)
	fmt.Printf("Holidays stored:     %d\n", total)
	fmt.Printf("Time elapsed:        %v\n", elapsed.Round(time.Millisecond))

	return nil
}

// valid reports whether h would pass the API's create validation.
func valid(h store.CustomHoliday) error {
	return store.NewCustomHoliday{
		Title:            h.Title,
		Date:             h.Date,
		IsRecurring:      h.IsRecurring,
		Category:         h.Category,
		Color:            h.Color,
		NotificationDays: h.NotificationDays,
	}.Validate()
}

type holidayKey struct {
	title     string
	date      string
	recurring bool
}

// keyOf compares titles trimmed, NFC-normalised and case-folded.
func keyOf(h store.CustomHoliday) holidayKey {
	title := cases.Fold().String(norm.NFC.String(strings.TrimSpace(h.Title)))
	return holidayKey{title, h.Date, h.IsRecurring}
}

// merge adds backup records through the store, skipping ones already
// present.
func merge(ctx context.Context, db *database.DB, backup Backup, logger *slog.Logger, stats *ImportStats) error {
	if backup.Settings != nil {
		store.NewSettingsStore(db, logger).Save(ctx, *backup.Settings)
		stats.Settings = true
	}

	customs := store.NewCustomHolidays(db, logger)
	existing := map[holidayKey]bool{}
	for _, h := range customs.All(ctx) {
		existing[keyOf(h)] = true
	}

	for i, h := range backup.CustomHolidays {
		if err := valid(h); err != nil {
			logger.Warn("skipping invalid holiday", slog.Int("index", i), slog.String("error", err.Error()))
			stats.Invalid++
			continue
		}
		if existing[keyOf(h)] {
			stats.Skipped++
			continue
		}

		added := customs.Add(ctx, store.NewCustomHoliday{
			Title:            h.Title,
			Date:             h.Date,
			IsRecurring:      h.IsRecurring,
			Category:         h.Category,
			Color:            h.Color,
			NotificationDays: h.NotificationDays,
		})
		existing[keyOf(h)] = true
		stats.Added++
		logger.Debug("added", slog.String("id", added.ID), slog.String("title", added.Title))
	}
	return nil
}

// replaceAll overwrites both records in one transaction, keeping ids.
func replaceAll(ctx context.Context, db *database.DB, backup Backup, logger *slog.Logger, stats *ImportStats) error {
	list := make([]store.CustomHoliday, 0, len(backup.CustomHolidays))
	seen := map[string]bool{}
	for i, h := range backup.CustomHolidays {
		if err := valid(h); err != nil {
			logger.Warn("skipping invalid holiday", slog.Int("index", i), slog.String("error", err.Error()))
			stats.Invalid++
			continue
		}
		if h.ID == "" || seen[h.ID] {
			return fmt.Errorf("holiday %d: missing or duplicate id %q", i, h.ID)
		}
		seen[h.ID] = true
		if h.Category == "" {
			h.Category = store.CategoryOther
		}
		list = append(list, h)
	}

	listJSON, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode custom holidays: %w", err)
	}

	return db.WithTx(ctx, func(tx *database.Tx) error {
		if backup.Settings != nil {
			settingsJSON, err := json.Marshal(backup.Settings)
			if err != nil {
				return fmt.Errorf("encode settings: %w", err)
			}
			if err := tx.SetValue(ctx, store.SettingsKey, settingsJSON); err != nil {
				return err
			}
			stats.Settings = true
		}
		if err := tx.SetValue(ctx, store.CustomHolidaysKey, listJSON); err != nil {
			return err
		}
		stats.Added = len(list)
		return nil
	})
}

func runDump(jsonPath, dbPath string, logger *slog.Logger) error {
	ctx := context.Background()

	db, err := openDB(ctx, dbPath, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	var backup Backup
	if st, ok := store.NewSettingsStore(db, logger).Load(ctx); ok {
		backup.Settings = &st
	}
	backup.CustomHolidays = store.NewCustomHolidays(db, logger).All(ctx)

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := os.WriteFile(jsonPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	logger.Info("backup written",
		slog.String("path", jsonPath),
		slog.Int("custom_holidays", len(backup.CustomHolidays)),
		slog.Bool("settings", backup.Settings != nil),
	)
	if backup.Settings == nil && len(backup.CustomHolidays) == 0 {
		logger.Warn("database holds no settings or custom holidays")
	}
	return nil
}
