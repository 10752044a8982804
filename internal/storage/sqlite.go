// Package storage provides SQLite-based persistence for level clear times.
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

// Store manages the SQLite database connection for clear persistence.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db *sql.DB
}

// ClearRecord is one finished level.
type ClearRecord struct {
	ID        int64
	RunID     string // Groups clears made in one play session
	GameID    string
	Level     int
	GridSize  int
	Pairs     int
	Duration  time.Duration
	Attempts  int
	CreatedAt time.Time
}

// NewRunID returns a fresh identifier for a play session.
func NewRunID() string {
	return uuid.NewString()
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
	// SQLite allows one writer; SSH sessions share this handle.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS clears (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			game_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			grid_size INTEGER NOT NULL,
			pairs INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			attempts INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_clears_game_id ON clears(game_id);
		CREATE INDEX IF NOT EXISTS idx_clears_fastest ON clears(game_id, duration_ms ASC);
		CREATE INDEX IF NOT EXISTS idx_clears_run ON clears(run_id);
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

// SaveClear records a finished level. A missing run id is generated.
// Returns the ID of the inserted record.
func (s *Store) SaveClear(rec ClearRecord) (int64, error) {
	if rec.GameID == "" {
		return 0, errors.New("storage: cannot save clear: empty game id")
	}
	if rec.RunID == "" {
		rec.RunID = NewRunID()
	}

	result, err := s.db.Exec(
		`INSERT INTO clears (run_id, game_id, level, grid_size, pairs, duration_ms, attempts)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.GameID, rec.Level, rec.GridSize, rec.Pairs, rec.Duration.Milliseconds(), rec.Attempts,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save clear: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const clearColumns = `id, run_id, game_id, level, grid_size, pairs, duration_ms, attempts, created_at`

// FastestClears retrieves the quickest N clears for the given game.
// Ties are broken by higher level, then by insertion order.
func (s *Store) FastestClears(gameID string, limit int) ([]ClearRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryClears(
		`SELECT `+clearColumns+`
		 FROM clears
		 WHERE game_id = ?
		 ORDER BY duration_ms ASC, level DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentClears retrieves the latest N clears for the given game.
func (s *Store) RecentClears(gameID string, limit int) ([]ClearRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryClears(
		`SELECT `+clearColumns+`
		 FROM clears
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RunClears retrieves every clear of one play session in order.
func (s *Store) RunClears(runID string) ([]ClearRecord, error) {
	return s.queryClears(
		`SELECT `+clearColumns+`
		 FROM clears
		 WHERE run_id = ?
		 ORDER BY id ASC`,
		runID,
	)
}

func (s *Store) queryClears(query string, args ...any) ([]ClearRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clears: %w", err)
	}
	defer rows.Close()

	var records []ClearRecord
	for rows.Next() {
		var r ClearRecord
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.GameID, &r.Level, &r.GridSize, &r.Pairs,
			&durationMs, &r.Attempts, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// HighestLevel returns the highest cleared level for the given game.
// Returns 0 if no clears exist.
func (s *Store) HighestLevel(gameID string) (int, error) {
	var level sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(level) FROM clears WHERE game_id = ?",
		gameID,
	).Scan(&level)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query highest level: %w", err)
	}

	if !level.Valid {
		return 0, nil
	}

	return int(level.Int64), nil
}

// DeleteClears deletes all clears for the given game.
func (s *Store) DeleteClears(gameID string) error {
	_, err := s.db.Exec("DELETE FROM clears WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete clears: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID        string
	Clears        int
	HighestLevel  int
	Fastest       time.Duration
	Average       time.Duration
	TotalAttempts int
	Runs          int
	LastPlayed    time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var fastestMs int64
	var avgMs float64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(level), 0), COALESCE(MIN(duration_ms), 0),
		        COALESCE(AVG(duration_ms), 0), COALESCE(SUM(attempts), 0),
		        COUNT(DISTINCT run_id), MAX(created_at)
		 FROM clears WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Clears, &stats.HighestLevel, &fastestMs, &avgMs, &stats.TotalAttempts, &stats.Runs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	stats.Fastest = time.Duration(fastestMs) * time.Millisecond
	stats.Average = time.Duration(avgMs * float64(time.Millisecond))
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(level), MIN(duration_ms), AVG(duration_ms),
		        SUM(attempts), COUNT(DISTINCT run_id), MAX(created_at)
		 FROM clears
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var fastestMs int64
		var avgMs float64
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.Clears, &gs.HighestLevel, &fastestMs, &avgMs,
			&gs.TotalAttempts, &gs.Runs, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.Fastest = time.Duration(fastestMs) * time.Millisecond
		gs.Average = time.Duration(avgMs * float64(time.Millisecond))
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetime values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
