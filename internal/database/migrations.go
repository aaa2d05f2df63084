package database

// migrationsSQL contains all database migrations, applied in order by
// version number. Each migration must be safe to run more than once.
var migrationsSQL = map[int]string{
	1: migrationV1KeyValueStore,
	2: migrationV2FallbackCache,
}

// migrationV1KeyValueStore creates the key-value table that backs the
// settings record and the custom-holiday list. Values are opaque JSON
// documents owned by internal/store.
const migrationV1KeyValueStore = `
-- Migration 001: key-value store

CREATE TABLE IF NOT EXISTS kv_store (
    key TEXT PRIMARY KEY,

    -- Serialized record (JSON); the store decides the shape
    value BLOB NOT NULL,

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// migrationV2FallbackCache stores Year Holiday Maps fetched from the
// fallback data source, one row per (jurisdiction, year).
const migrationV2FallbackCache = `
-- Migration 002: fallback response cache

CREATE TABLE IF NOT EXISTS fallback_cache (
    code TEXT NOT NULL,
    year INTEGER NOT NULL,

    -- Year Holiday Map as returned by {base}/holidays/{code}/{year}
    payload BLOB NOT NULL,

    fetched_at TEXT NOT NULL DEFAULT (datetime('now')),

    PRIMARY KEY (code, year)
);

-- For expiring old entries
CREATE INDEX IF NOT EXISTS idx_fallback_cache_fetched
    ON fallback_cache(fetched_at);
`
