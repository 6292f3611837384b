// Package storage provides SQLite-based persistence for recorded sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

// ErrNotFound is returned when a replay ID does not exist.
var ErrNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// Replay is one recorded session: the per-frame input masks of the play
// phase plus the outcome they produced.
type Replay struct {
	ID        int64
	Score     int
	Frames    int
	EndReason string
	Hash      uint64
	PlayFPS   int
	Inputs    []byte // one input mask per play frame
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			end_reason TEXT NOT NULL,
			hash TEXT NOT NULL,
			play_fps INTEGER NOT NULL,
			inputs BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveReplay(r Replay) (int64, error) {
	if r.Frames != len(r.Inputs) {
		return 0, fmt.Errorf("storage: replay has %d frames but %d inputs", r.Frames, len(r.Inputs))
	}

	// The hash is stored as text: SQLite integers are signed 64-bit
	result, err := s.db.Exec(
		`INSERT INTO replays (score, frames, end_reason, hash, play_fps, inputs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Score, r.Frames, r.EndReason, formatHash(r.Hash), r.PlayFPS, r.Inputs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Replay retrieves a recording with its inputs.
// Returns ErrNotFound if the ID does not exist.
func (s *Store) Replay(id int64) (*Replay, error) {
	var r Replay
	var hash string
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, score, frames, end_reason, hash, play_fps, inputs, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Score, &r.Frames, &r.EndReason, &hash, &r.PlayFPS, &r.Inputs, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	if r.Hash, err = parseHash(hash); err != nil {
		return nil, fmt.Errorf("storage: replay %d: %w", id, err)
	}
	r.CreatedAt = parseTimestamp(createdAt)

	return &r, nil
}

// RecentReplays lists the most recent recordings, newest first.
// Inputs are not loaded.
func (s *Store) RecentReplays(limit int) ([]Replay, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, score, frames, end_reason, hash, play_fps, created_at
		 FROM replays
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var replays []Replay
	for rows.Next() {
		var r Replay
		var hash string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.Frames, &r.EndReason, &hash, &r.PlayFPS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if r.Hash, err = parseHash(hash); err != nil {
			return nil, fmt.Errorf("storage: replay %d: %w", r.ID, err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		replays = append(replays, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return replays, nil
}

// DeleteReplay removes a recording.
// Returns ErrNotFound if the ID does not exist.
func (s *Store) DeleteReplay(id int64) error {
	result, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

// SaveSession implements shooter.SessionSaver.
// This adapter lets front-ends record sessions without a direct storage dependency.
func (s *Store) SaveSession(sess shooter.Session) (int64, error) {
	return s.SaveReplay(Replay{
		Score:     sess.Score,
		Frames:    sess.Frames,
		EndReason: sess.EndReason.String(),
		Hash:      sess.Hash,
		PlayFPS:   sess.PlayFPS,
		Inputs:    sess.Inputs,
	})
}

// Ensure Store implements SessionSaver
var _ shooter.SessionSaver = (*Store)(nil)
