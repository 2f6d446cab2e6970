// Package store keeps kanji readings and rendered highlights in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/zeebo/blake3"
	_ "modernc.org/sqlite"

	"kanahighlight/kanji"
	"kanahighlight/model"
)

// ErrNotFound is returned when a kanji or cache key isn't stored.
var ErrNotFound = errors.New("not found")

const schema = `
CREATE TABLE IF NOT EXISTS readings (
	kanji   TEXT PRIMARY KEY,
	onyomi  TEXT NOT NULL DEFAULT '',
	kunyomi TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS highlights (
	key    TEXT PRIMARY KEY,
	result TEXT NOT NULL
);`

// Store is a SQLite database of readings and cached highlights.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path. ":memory:" works for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}
	// A pool of in-memory connections would give each its own database.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutReadings stores the reading lists of k, replacing any earlier ones.
func (s *Store) PutReadings(ctx context.Context, k, onyomi, kunyomi string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO readings (kanji, onyomi, kunyomi) VALUES (?, ?, ?)
		 ON CONFLICT(kanji) DO UPDATE SET onyomi = excluded.onyomi, kunyomi = excluded.kunyomi`,
		k, onyomi, kunyomi)
	if err != nil {
		return fmt.Errorf("storing readings of %s: %w", k, err)
	}
	return nil
}

// Readings returns the onyomi and kunyomi lists of k.
func (s *Store) Readings(ctx context.Context, k string) (onyomi, kunyomi string, err error) {
	err = s.db.QueryRowContext(ctx, `SELECT onyomi, kunyomi FROM readings WHERE kanji = ?`, k).Scan(&onyomi, &kunyomi)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", fmt.Errorf("readings of %s: %w", k, ErrNotFound)
	}
	if err != nil {
		return "", "", fmt.Errorf("reading readings of %s: %w", k, err)
	}
	return onyomi, kunyomi, nil
}

// ImportKanjidic stores every entry of d in one transaction and returns how
// many were written.
func (s *Store) ImportKanjidic(ctx context.Context, d *kanji.Dict) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO readings (kanji, onyomi, kunyomi) VALUES (?, ?, ?)
		 ON CONFLICT(kanji) DO UPDATE SET onyomi = excluded.onyomi, kunyomi = excluded.kunyomi`)
	if err != nil {
		return 0, fmt.Errorf("preparing import: %w", err)
	}
	defer stmt.Close()

	n := 0
	for _, e := range d.Entries() {
		if _, err := stmt.ExecContext(ctx, string(e.Literal), e.OnyomiString(), e.KunyomiString()); err != nil {
			return 0, fmt.Errorf("importing %c: %w", e.Literal, err)
		}
		n++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return n, nil
}

// Key derives the cache key of a highlight request. The request id is not
// part of it.
func Key(req model.HighlightRequest) string {
	h := blake3.New()
	for _, f := range []string{req.Kanji, req.Onyomi, req.Kunyomi, req.Text, req.Mode} {
		h.Write([]byte(f))
		h.Write([]byte{0})
	}
	if req.Okurigana {
		h.Write([]byte{1})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// CachedHighlight returns the result stored under key.
func (s *Store) CachedHighlight(ctx context.Context, key string) (string, error) {
	var result string
	err := s.db.QueryRowContext(ctx, `SELECT result FROM highlights WHERE key = ?`, key).Scan(&result)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading cache: %w", err)
	}
	return result, nil
}

// PutHighlight caches result under key.
func (s *Store) PutHighlight(ctx context.Context, key, result string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO highlights (key, result) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET result = excluded.result`, key, result)
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}
