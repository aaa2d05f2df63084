package database

import (
	"database/sql"
	"time"
)

// KVEntry is one row of the key-value store.
type KVEntry struct {
	Key       string    `json:"key"`
	Value     []byte    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CachedYear is a fallback payload for one jurisdiction and year.
type CachedYear struct {
	Code      string    `json:"code"`
	Year      int       `json:"year"`
	Payload   []byte    `json:"payload"`
	FetchedAt time.Time `json:"fetched_at"`
}

// parseTimestamp parses a SQLite TEXT timestamp, trying RFC3339 and then
// the datetime('now') format. It returns the zero time when neither fits.
func parseTimestamp(ns sql.NullString) time.Time {
	if !ns.Valid || ns.String == "" {
		return time.Time{}
	}

	if t, err := time.Parse(time.RFC3339, ns.String); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", ns.String); err == nil {
		return t
	}
	return time.Time{}
}
