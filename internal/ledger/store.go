package ledger

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"vidharvest/internal/media"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; users clear the ledger database to adopt the new schema.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// ErrWrite marks ledger persistence failures. These are fatal to a run:
// resumability depends on the ledger, so processing cannot continue when
// outcomes cannot be recorded.
var ErrWrite = errors.New("ledger write error")

// Store is the SQLite-backed identity index of the ledger.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore initializes or connects to the ledger database inside dir.
func OpenStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure ledger directory: %w", err)
	}
	dbPath := filepath.Join(dir, "ledger.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the on-disk location of the database.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Append inserts a new entry. Rows are never updated; a forced re-download
// of the same identity appends a fresh row.
func (s *Store) Append(ctx context.Context, entry Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ledger_entries (
            platform, video_id, title, url, duration_seconds, uploader,
            status, error_message, local_paths, run_id, downloaded_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(entry.Platform),
		entry.VideoID,
		entry.Title,
		entry.URL,
		entry.DurationSeconds,
		entry.Uploader,
		string(entry.Status),
		entry.Error,
		joinPaths(entry.LocalPaths),
		entry.RunID,
		entry.DownloadedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("%w: insert entry: %w", ErrWrite, err)
	}
	return nil
}

// Has reports whether any entry exists for the identity (platform, id).
func (s *Store) Has(ctx context.Context, platform media.Platform, videoID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM ledger_entries WHERE platform = ? AND video_id = ?",
		string(platform), videoID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query identity: %w", err)
	}
	return count > 0, nil
}

// HasSucceeded reports whether an entry with success status exists for the
// identity. Failed attempts do not block a retry on a later run.
func (s *Store) HasSucceeded(ctx context.Context, platform media.Platform, videoID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM ledger_entries WHERE platform = ? AND video_id = ? AND status IN (?, ?)",
		string(platform), videoID, string(media.StatusSuccess), string(media.StatusSkipped),
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query identity: %w", err)
	}
	return count > 0, nil
}

// List returns every entry in append order.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT platform, video_id, title, url, duration_seconds, uploader,
                status, error_message, local_paths, run_id, downloaded_at
         FROM ledger_entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var platform, status, paths, downloadedAt string
		if err := rows.Scan(&platform, &entry.VideoID, &entry.Title, &entry.URL,
			&entry.DurationSeconds, &entry.Uploader, &status, &entry.Error,
			&paths, &entry.RunID, &downloadedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entry.Platform = media.Platform(platform)
		entry.Status = media.OutcomeStatus(status)
		entry.LocalPaths = splitPaths(paths)
		if ts, parseErr := time.Parse(time.RFC3339Nano, downloadedAt); parseErr == nil {
			entry.DownloadedAt = ts
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
