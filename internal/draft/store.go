// Package draft persists the single working draft as plain key/value pairs
// in a local SQLite file.
package draft

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	// modernc.org/sqlite driver name is "sqlite".
	_ "modernc.org/sqlite"

	"github.com/Rorical/ZenPad/internal/models"
)

const (
	FileName = "draft.sqlite"

	KeyContent   = "zenpad.content"
	KeyTitle     = "zenpad.title"
	KeyUpdatedAt = "zenpad.updated_at"
)

// Store reads and overwrites the draft. Within one process a write whose
// revision is below the newest committed one is dropped, so saves that race
// each other can never roll the text back. Revisions are never persisted,
// and stored timestamps play no part in ordering.
type Store struct {
	path string
	db   *sql.DB

	mu        sync.Mutex
	committed uint64
}

// Open opens (or creates) the draft database inside dir.
func Open(ctx context.Context, dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	path := filepath.Join(dir, FileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open draft database: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to configure draft database: %w", err)
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL,
		updated_at_unixms INTEGER NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate draft database: %w", err)
	}

	return &Store{path: path, db: db}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the stored draft, or the default draft for missing keys.
func (s *Store) Load(ctx context.Context) (models.Draft, error) {
	d := models.NewDraft()

	rows, err := s.db.QueryContext(ctx, `SELECT k, v FROM kv WHERE k IN (?, ?, ?)`, KeyContent, KeyTitle, KeyUpdatedAt)
	if err != nil {
		return d, fmt.Errorf("failed to read draft: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return d, fmt.Errorf("failed to read draft: %w", err)
		}
		switch k {
		case KeyContent:
			d.Content = v
		case KeyTitle:
			d.Title = v
		case KeyUpdatedAt:
			if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
				d.UpdatedAt = time.UnixMilli(ms)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return d, fmt.Errorf("failed to read draft: %w", err)
	}

	// a stamp from a fast clock elsewhere is not allowed to sit in the future
	if now := time.Now(); d.UpdatedAt.After(now) {
		d.UpdatedAt = now
	}
	return d.Normalized(), nil
}

// ErrStale reports a save that lost against a newer committed revision.
var ErrStale = errors.New("draft revision is older than the saved one")

// Save overwrites both values with d. A draft with a revision below the
// last committed one is rejected with ErrStale; revision zero is always
// written.
func (s *Store) Save(ctx context.Context, d models.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.Revision != 0 && d.Revision < s.committed {
		return ErrStale
	}
	d = d.Normalized()

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UnixMilli()
	values := [][2]string{
		{KeyContent, d.Content},
		{KeyTitle, d.Title},
		{KeyUpdatedAt, strconv.FormatInt(d.UpdatedAt.UnixMilli(), 10)},
	}
	for _, kv := range values {
		if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO kv(k, v, updated_at_unixms) VALUES(?, ?, ?)`, kv[0], kv[1], now); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	s.committed = max(s.committed, d.Revision)
	return nil
}

// Clear resets the stored draft to the defaults and returns them.
func (s *Store) Clear(ctx context.Context) (models.Draft, error) {
	d := models.NewDraft()
	if err := s.Save(ctx, d); err != nil {
		return d, err
	}
	return d, nil
}
