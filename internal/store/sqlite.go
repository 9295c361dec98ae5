package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/aiplayland-journey/internal/logging"
	"github.com/rcliao/aiplayland-journey/internal/model"
)

// SQLiteStore implements Store using SQLite. Each visitor has one record
// under model.StorageKey.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "create db dir", goerr.V("dir", dir))
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, goerr.Wrap(err, "open db", goerr.V("path", dbPath))
	}

	s := &SQLiteStore{db: db, path: dbPath}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, goerr.Wrap(err, "migrate", goerr.V("path", dbPath))
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS visitor_memory (
		visitor_id  TEXT NOT NULL,
		storage_key TEXT NOT NULL,
		record      TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (visitor_id, storage_key)
	);
	CREATE INDEX IF NOT EXISTS idx_visitor_memory_updated ON visitor_memory(updated_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Load(ctx context.Context, visitorID string) model.VisitorMemory {
	raw, err := s.loadRaw(ctx, visitorID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logging.Warn().Err(err).Str("visitor", visitorID).Msg("load visitor memory")
		}
		return model.VisitorMemory{}
	}
	return Decode(raw)
}

func (s *SQLiteStore) loadRaw(ctx context.Context, visitorID string) ([]byte, error) {
	var record string
	err := s.db.QueryRowContext(ctx,
		`SELECT record FROM visitor_memory WHERE visitor_id = ? AND storage_key = ?`,
		visitorID, model.StorageKey).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(ErrNotFound, "no memory record", goerr.V("visitor", visitorID))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "query memory record", goerr.V("visitor", visitorID))
	}
	return []byte(record), nil
}

func (s *SQLiteStore) Save(ctx context.Context, visitorID string, m model.VisitorMemory) error {
	b, err := Encode(m)
	if err != nil {
		return goerr.Wrap(err, "encode memory record", goerr.V("visitor", visitorID))
	}
	return s.saveRaw(ctx, visitorID, string(b), time.Now().UTC())
}

func (s *SQLiteStore) saveRaw(ctx context.Context, visitorID, record string, now time.Time) error {
	ts := now.Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitor_memory (visitor_id, storage_key, record, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(visitor_id, storage_key) DO UPDATE SET record = excluded.record, updated_at = excluded.updated_at`,
		visitorID, model.StorageKey, record, ts, ts)
	if err != nil {
		return goerr.Wrap(err, "save memory record", goerr.V("visitor", visitorID))
	}
	return nil
}

// VisitorSummary is a row of ListVisitors.
type VisitorSummary struct {
	VisitorID string `json:"visitor_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ListVisitors returns visitors with a record, most recently updated first.
func (s *SQLiteStore) ListVisitors(ctx context.Context, limit int) ([]VisitorSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT visitor_id, created_at, updated_at FROM visitor_memory
		 WHERE storage_key = ?
		 ORDER BY updated_at DESC, visitor_id
		 LIMIT ?`, model.StorageKey, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "list visitors")
	}
	defer rows.Close()

	var out []VisitorSummary
	for rows.Next() {
		var v VisitorSummary
		if err := rows.Scan(&v.VisitorID, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, goerr.Wrap(err, "scan visitor")
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Delete removes a visitor's record.
func (s *SQLiteStore) Delete(ctx context.Context, visitorID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM visitor_memory WHERE visitor_id = ? AND storage_key = ?`,
		visitorID, model.StorageKey)
	if err != nil {
		return goerr.Wrap(err, "delete memory record", goerr.V("visitor", visitorID))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return goerr.Wrap(ErrNotFound, "delete memory record", goerr.V("visitor", visitorID))
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
