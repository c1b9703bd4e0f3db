// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result records the outcome of one finished game.
type Result struct {
	ID        int64
	Width     int
	Height    int
	Mines     int
	Won       bool
	Duration  int // Seconds from first reveal to game end
	CreatedAt time.Time
}

// BoardSize identifies a board configuration for leaderboard queries.
func (r Result) BoardSize() string {
	return fmt.Sprintf("%dx%d/%d", r.Width, r.Height, r.Mines)
}

// Stats contains aggregated statistics for one board configuration.
type Stats struct {
	Games    int
	Wins     int
	BestTime int // Fastest winning duration in seconds, 0 if no wins
}

// WinRate returns the fraction of games won, 0 when no games were played.
func (s Stats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			won INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_board ON results(width, height, mines);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(width, height, mines, won, duration_secs);
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

// SaveResult records a finished game. Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO results (width, height, mines, won, duration_secs) VALUES (?, ?, ?, ?, ?)",
		r.Width, r.Height, r.Mines, r.Won, r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestTimes retrieves the fastest wins for the given board configuration,
// ordered by duration ascending.
func (s *Store) BestTimes(width, height, mines, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, width, height, mines, won, duration_secs, created_at
		 FROM results
		 WHERE width = ? AND height = ? AND mines = ? AND won = 1
		 ORDER BY duration_secs ASC
		 LIMIT ?`,
		width, height, mines, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// RecentResults retrieves the most recent finished games across all board
// configurations.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, width, height, mines, won, duration_secs, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// BoardStats retrieves aggregated statistics for one board configuration.
func (s *Store) BoardStats(width, height, mines int) (Stats, error) {
	var stats Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(won), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN duration_secs END), 0)
		 FROM results
		 WHERE width = ? AND height = ? AND mines = ?`,
		width, height, mines,
	).Scan(&stats.Games, &stats.Wins, &stats.BestTime)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get board stats: %w", err)
	}
	return stats, nil
}

// Board identifies one played board configuration.
type Board struct {
	Width  int
	Height int
	Mines  int
	Games  int
}

// Boards lists every board configuration with at least one recorded game,
// most-played first.
func (s *Store) Boards() ([]Board, error) {
	rows, err := s.db.Query(
		`SELECT width, height, mines, COUNT(*)
		 FROM results
		 GROUP BY width, height, mines
		 ORDER BY COUNT(*) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list boards: %w", err)
	}
	defer rows.Close()

	var boards []Board
	for rows.Next() {
		var b Board
		if err := rows.Scan(&b.Width, &b.Height, &b.Mines, &b.Games); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return boards, nil
}

// ClearResults deletes all recorded games for the given board configuration.
func (s *Store) ClearResults(width, height, mines int) error {
	_, err := s.db.Exec(
		"DELETE FROM results WHERE width = ? AND height = ? AND mines = ?",
		width, height, mines,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// scanResults reads result rows, tolerating both time.Time and string
// datetimes from the driver.
func scanResults(rows *sql.Rows) ([]Result, error) {
	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Width, &r.Height, &r.Mines, &r.Won, &r.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}
