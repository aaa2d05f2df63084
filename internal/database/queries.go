package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// Key-Value Queries
// =============================================================================

// GetValue retrieves one key-value row.
// Returns ErrNotFound if the key doesn't exist.
func (db *DB) GetValue(ctx context.Context, key string) (*KVEntry, error) {
	query := `
		SELECT key, value, created_at, updated_at
		FROM kv_store
		WHERE key = ?
	`

	var entry KVEntry
	var createdAt, updatedAt sql.NullString

	err := db.QueryRowContext(ctx, query, key).Scan(
		&entry.Key,
		&entry.Value,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query value %q: %w", key, err)
	}

	entry.CreatedAt = parseTimestamp(createdAt)
	entry.UpdatedAt = parseTimestamp(updatedAt)

	return &entry, nil
}

const upsertValueSQL = `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES (?, ?, datetime('now'))
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = datetime('now')
`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func setValue(ctx context.Context, ex execer, key string, value []byte) error {
	if key == "" {
		return errors.New("set value: empty key")
	}
	if value == nil {
		value = []byte{}
	}
	if _, err := ex.ExecContext(ctx, upsertValueSQL, key, value); err != nil {
		return fmt.Errorf("upsert value %q: %w", key, err)
	}
	return nil
}

// SetValue inserts or replaces the value stored under key.
//
// Uses INSERT ... ON CONFLICT so created_at survives updates.
func (db *DB) SetValue(ctx context.Context, key string, value []byte) error {
	return setValue(ctx, db, key, value)
}

// SetValue is SetValue inside a transaction.
func (tx *Tx) SetValue(ctx context.Context, key string, value []byte) error {
	return setValue(ctx, tx, key, value)
}

// DeleteValue removes a key.
// Returns ErrNotFound if the key doesn't exist.
func (db *DB) DeleteValue(ctx context.Context, key string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete value %q: %w", key, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ListKeys returns the stored keys with the given prefix, sorted.
func (db *DB) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT key FROM kv_store WHERE substr(key, 1, length(?)) = ? ORDER BY key`,
		prefix, prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("query keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate keys: %w", err)
	}
	return keys, nil
}

// Get implements the store's key-value contract: a missing key reads as
// (nil, nil).
func (db *DB) Get(ctx context.Context, key string) ([]byte, error) {
	entry, err := db.GetValue(ctx, key)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return entry.Value, nil
}

// Set implements the store's key-value contract.
func (db *DB) Set(ctx context.Context, key string, value []byte) error {
	return db.SetValue(ctx, key, value)
}

// =============================================================================
// Fallback Cache Queries
// =============================================================================

// GetCachedYear retrieves a cached fallback payload.
// Returns ErrNotFound on a cache miss.
func (db *DB) GetCachedYear(ctx context.Context, code string, year int) (*CachedYear, error) {
	query := `
		SELECT code, year, payload, fetched_at
		FROM fallback_cache
		WHERE code = ? AND year = ?
	`

	var c CachedYear
	var fetchedAt sql.NullString

	err := db.QueryRowContext(ctx, query, code, year).Scan(&c.Code, &c.Year, &c.Payload, &fetchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query cached year %s/%d: %w", code, year, err)
	}
	c.FetchedAt = parseTimestamp(fetchedAt)

	return &c, nil
}

// PutCachedYear stores or refreshes a fallback payload.
func (db *DB) PutCachedYear(ctx context.Context, code string, year int, payload []byte) error {
	query := `
		INSERT INTO fallback_cache (code, year, payload, fetched_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(code, year) DO UPDATE SET
			payload = excluded.payload,
			fetched_at = datetime('now')
	`

	if _, err := db.ExecContext(ctx, query, code, year, payload); err != nil {
		return fmt.Errorf("upsert cached year %s/%d: %w", code, year, err)
	}
	return nil
}

// PurgeCache deletes cache entries fetched more than maxAge ago and returns
// how many were removed.
func (db *DB) PurgeCache(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-maxAge).Format("2006-01-02 15:04:05")

	result, err := db.ExecContext(ctx, `DELETE FROM fallback_cache WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge cache: %w", err)
	}
	return result.RowsAffected()
}
