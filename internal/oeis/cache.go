// Package oeis fetches and parses OEIS b-files (sequence ID -> integer
// terms) for the Iterative driver's example data, backed by a local
// sqlite cache so repeat driver runs don't re-fetch or re-parse the same
// sequence (spec §2 names the OEIS loader an out-of-core "external
// collaborator"; SPEC_FULL.md §3 wires modernc.org/sqlite here for that
// driver's own persistence needs).
package oeis

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Cache is a local store of fetched OEIS sequences, keyed by sequence ID
// (e.g. "A000079").
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) a sqlite cache at path, using the
// recommended pragmas for a single-writer local cache (busy_timeout +
// WAL), grounded on vvoland-cagent's pkg/sqliteutil.OpenDB.
func Open(path string) (*Cache, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("oeis: creating cache directory %q: %w", dir, err)
	}
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("oeis: opening cache %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("oeis: opening cache %q: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("oeis: creating schema: %w", err)
	}
	return &Cache{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS sequences (
	id    TEXT PRIMARY KEY,
	terms TEXT NOT NULL
);
`

// Close releases the underlying database handle.
func (c *Cache) Close() error { return c.db.Close() }

// Get returns the cached terms for id, if present.
func (c *Cache) Get(id string) ([]int64, bool, error) {
	var raw string
	err := c.db.QueryRow(`SELECT terms FROM sequences WHERE id = ?`, id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("oeis: reading cached sequence %s: %w", id, err)
	}
	terms, err := decodeTerms(raw)
	if err != nil {
		return nil, false, err
	}
	return terms, true, nil
}

// Put stores terms for id, overwriting any prior cache entry.
func (c *Cache) Put(id string, terms []int64) error {
	_, err := c.db.Exec(
		`INSERT INTO sequences(id, terms) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET terms = excluded.terms`,
		id, encodeTerms(terms),
	)
	if err != nil {
		return fmt.Errorf("oeis: caching sequence %s: %w", id, err)
	}
	return nil
}

func encodeTerms(terms []int64) string {
	out := ""
	for i, t := range terms {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%d", t)
	}
	return out
}

func decodeTerms(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	var out []int64
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == ',' {
			var v int64
			if _, err := fmt.Sscanf(raw[start:i], "%d", &v); err != nil {
				return nil, fmt.Errorf("oeis: decoding cached terms: %w", err)
			}
			out = append(out, v)
			start = i + 1
		}
	}
	return out, nil
}
