// Package storage provides SQLite-based persistence for finished puzzles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one solved puzzle.
type Result struct {
	ID         string // UUID assigned on save
	GameID     string // registry id, e.g. "tiles_swap"
	Difficulty string
	Rows       int
	Columns    int
	Moves      int
	Duration   time.Duration // stored with second precision
	CreatedAt  time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			grid_rows INTEGER NOT NULL,
			grid_columns INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			seconds INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game ON results(game_id, difficulty);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(game_id, difficulty, seconds, moves);
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

// SaveResult records a solved puzzle and returns its generated ID.
func (s *Store) SaveResult(r Result) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO results (id, game_id, difficulty, grid_rows, grid_columns, moves, seconds)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, r.GameID, r.Difficulty, r.Rows, r.Columns, r.Moves, int64(r.Duration/time.Second),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}
	return id, nil
}

// TopResults retrieves the best N results for a game and difficulty.
// Results are ordered by time, then by moves. An empty difficulty matches all.
func (s *Store) TopResults(gameID, difficulty string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, difficulty, grid_rows, grid_columns, moves, seconds, created_at
		 FROM results
		 WHERE game_id = ? AND (? = '' OR difficulty = ?)
		 ORDER BY seconds ASC, moves ASC, created_at ASC
		 LIMIT ?`,
		gameID, difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BestResult returns the fastest result for a game and difficulty,
// or nil if none exist.
func (s *Store) BestResult(gameID, difficulty string) (*Result, error) {
	results, err := s.TopResults(gameID, difficulty, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// ResultByID retrieves a single result.
func (s *Store) ResultByID(id string) (*Result, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, difficulty, grid_rows, grid_columns, moves, seconds, created_at
		 FROM results WHERE id = ?`,
		id,
	)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ClearResults deletes all results for the given game.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID      string
	GamesCount  int
	BestTime    time.Duration
	FewestMoves int
	AvgTime     time.Duration
	LastPlayed  time.Time
}

// GetAllGamesStats retrieves statistics for all games that have been solved.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MIN(seconds), MIN(moves), AVG(seconds), MAX(created_at)
		 FROM results
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var (
			st         GameStats
			best       int64
			avg        float64
			lastPlayed any
		)
		if err := rows.Scan(&st.GameID, &st.GamesCount, &best, &st.FewestMoves, &avg, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestTime = time.Duration(best) * time.Second
		st.AvgTime = time.Duration(avg * float64(time.Second))
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.GameID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (Result, error) {
	var (
		r         Result
		seconds   int64
		createdAt any
	)
	err := sc.Scan(&r.ID, &r.GameID, &r.Difficulty, &r.Rows, &r.Columns, &r.Moves, &seconds, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.Duration = time.Duration(seconds) * time.Second
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
