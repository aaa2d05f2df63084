package database

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testDB creates a temporary in-memory database for testing.
func testDB(t *testing.T) *DB {
	t.Helper()

	cfg := Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	// Quiet logger for tests
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	db, err := Open(cfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// -----------------------------------------------------------------
// DB tests
// -----------------------------------------------------------------

func TestOpen(t *testing.T) {
	db := testDB(t)

	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health() error = %v", err)
	}
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "worldcal.db")

	db, err := Open(DefaultConfig(path), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("database directory not created: %v", err)
	}
}

func TestMigrate(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	// Running again should be a no-op
	count, err := db.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Migrate() count = %d, want 0 (already applied)", count)
	}

	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&n); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if n != len(migrationsSQL) {
		t.Errorf("schema_migrations rows = %d, want %d", n, len(migrationsSQL))
	}
}

// -----------------------------------------------------------------
// Key-value tests
// -----------------------------------------------------------------

func TestSetValue_GetValue(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := db.SetValue(ctx, "world_calendar_settings", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("SetValue() error = %v", err)
	}

	entry, err := db.GetValue(ctx, "world_calendar_settings")
	if err != nil {
		t.Fatalf("GetValue() error = %v", err)
	}
	if string(entry.Value) != `{"a":1}` {
		t.Errorf("GetValue() value = %s, want {\"a\":1}", entry.Value)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("GetValue() did not parse created_at")
	}

	// Overwrite keeps a single row.
	if err := db.SetValue(ctx, "world_calendar_settings", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("SetValue() overwrite error = %v", err)
	}
	entry, err = db.GetValue(ctx, "world_calendar_settings")
	if err != nil {
		t.Fatalf("GetValue() error = %v", err)
	}
	if string(entry.Value) != `{"a":2}` {
		t.Errorf("GetValue() after overwrite = %s", entry.Value)
	}
}

func TestSetValue_EmptyKey(t *testing.T) {
	db := testDB(t)

	if err := db.SetValue(context.Background(), "", []byte("x")); err == nil {
		t.Error("SetValue() with empty key should fail")
	}
}

func TestGetValue_NotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.GetValue(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Errorf("GetValue() error = %v, want ErrNotFound", err)
	}
}

func TestGet_MissingKeyIsNil(t *testing.T) {
	db := testDB(t)

	got, err := db.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %q, want nil", got)
	}
}

func TestDeleteValue(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := db.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := db.DeleteValue(ctx, "k"); err != nil {
		t.Fatalf("DeleteValue() error = %v", err)
	}
	if err := db.DeleteValue(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteValue() second call error = %v, want ErrNotFound", err)
	}
}

func TestListKeys(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	for _, k := range []string{"world_calendar_settings", "world_calendar_custom_holidays", "other"} {
		if err := db.Set(ctx, k, []byte("{}")); err != nil {
			t.Fatalf("Set(%q) error = %v", k, err)
		}
	}

	keys, err := db.ListKeys(ctx, "world_calendar_")
	if err != nil {
		t.Fatalf("ListKeys() error = %v", err)
	}
	want := []string{"world_calendar_custom_holidays", "world_calendar_settings"}
	if len(keys) != len(want) {
		t.Fatalf("ListKeys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("ListKeys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

// -----------------------------------------------------------------
// Fallback cache tests
// -----------------------------------------------------------------

func TestCachedYear(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if _, err := db.GetCachedYear(ctx, "MA", 2026); !IsNotFound(err) {
		t.Fatalf("GetCachedYear() on empty cache error = %v, want ErrNotFound", err)
	}

	payload := []byte(`{"2026-01-11":[{"name_local":"x","name_intl":"y","country":"MA"}]}`)
	if err := db.PutCachedYear(ctx, "MA", 2026, payload); err != nil {
		t.Fatalf("PutCachedYear() error = %v", err)
	}

	got, err := db.GetCachedYear(ctx, "MA", 2026)
	if err != nil {
		t.Fatalf("GetCachedYear() error = %v", err)
	}
	if string(got.Payload) != string(payload) {
		t.Errorf("GetCachedYear() payload = %s", got.Payload)
	}
	if got.FetchedAt.IsZero() {
		t.Error("GetCachedYear() did not parse fetched_at")
	}

	// Different year is a separate entry.
	if _, err := db.GetCachedYear(ctx, "MA", 2027); !IsNotFound(err) {
		t.Errorf("GetCachedYear(2027) error = %v, want ErrNotFound", err)
	}
}

func TestPurgeCache(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := db.PutCachedYear(ctx, "MA", 2026, []byte("{}")); err != nil {
		t.Fatalf("PutCachedYear() error = %v", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO fallback_cache (code, year, payload, fetched_at) VALUES ('MA', 2020, '{}', '2000-01-01 00:00:00')`,
	); err != nil {
		t.Fatalf("insert stale row: %v", err)
	}

	n, err := db.PurgeCache(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("PurgeCache() error = %v", err)
	}
	if n != 1 {
		t.Errorf("PurgeCache() removed %d, want 1", n)
	}
	if _, err := db.GetCachedYear(ctx, "MA", 2026); err != nil {
		t.Errorf("fresh entry was purged: %v", err)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := db.WithTx(ctx, func(tx *Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO kv_store (key, value) VALUES ('tx', 'v')`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTx() error = %v, want boom", err)
	}

	if _, err := db.GetValue(ctx, "tx"); !IsNotFound(err) {
		t.Errorf("rolled back row still present: %v", err)
	}
}

func TestWithTx_SetValue(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx *Tx) error {
		if err := tx.SetValue(ctx, "a", []byte("1")); err != nil {
			return err
		}
		return tx.SetValue(ctx, "b", []byte("2"))
	})
	if err != nil {
		t.Fatalf("WithTx() error = %v", err)
	}

	for key, want := range map[string]string{"a": "1", "b": "2"} {
		got, err := db.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", key, err)
		}
		if string(got) != want {
			t.Errorf("Get(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestHealth_Unmigrated(t *testing.T) {
	db, err := Open(Config{Path: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1}, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if err := db.Health(context.Background()); err == nil {
		t.Error("Health() on an unmigrated database should fail")
	}
}

func TestWithTx_PanicRollsBack(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("WithTx() swallowed the panic")
			}
		}()
		_ = db.WithTx(ctx, func(tx *Tx) error {
			if err := tx.SetValue(ctx, "p", []byte("v")); err != nil {
				return err
			}
			panic("boom")
		})
	}()

	if _, err := db.GetValue(ctx, "p"); !IsNotFound(err) {
		t.Errorf("value written before panic survived: %v", err)
	}
}

func TestConfigDSN(t *testing.T) {
	got := DefaultConfig("data/worldcal.db").dsn()
	want := "file:data/worldcal.db?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate"
	if got != want {
		t.Errorf("dsn() = %q, want %q", got, want)
	}
}
