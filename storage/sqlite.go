// Package storage persists finished game records in SQLite. Uses the pure-Go
// modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"twenty48/engine"
)

// Store manages the SQLite database connection for game records.
type Store struct {
	db *sql.DB
}

// GameRow is one stored game record.
type GameRow struct {
	ID        int64
	Policy    string
	Seed      uint64
	Score     int
	MaxTile   int
	Moves     int
	Won       bool
	Duration  time.Duration
	CreatedAt time.Time
}

// Open creates or opens the database at the given path, creating parent
// directories and running migrations as needed.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			policy TEXT NOT NULL,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_policy ON games(policy);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(score DESC);
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

// SaveGame records a finished game and returns the inserted row ID.
func (s *Store) SaveGame(record engine.GameRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO games (policy, seed, score, max_tile, moves, won, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.Policy,
		int64(record.Seed),
		record.Score,
		record.MaxTile,
		record.Moves,
		record.Won,
		record.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}
	return res.LastInsertId()
}

// TopGames returns the highest-scoring games, best first.
func (s *Store) TopGames(limit int) ([]GameRow, error) {
	rows, err := s.db.Query(
		`SELECT id, policy, seed, score, max_tile, moves, won, duration_ms, created_at
		 FROM games ORDER BY score DESC, id ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query top games: %w", err)
	}
	defer rows.Close()

	var out []GameRow
	for rows.Next() {
		var row GameRow
		var seed int64
		var durationMS int64
		if err := rows.Scan(&row.ID, &row.Policy, &seed, &row.Score, &row.MaxTile,
			&row.Moves, &row.Won, &durationMS, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan game row: %w", err)
		}
		row.Seed = uint64(seed)
		row.Duration = time.Duration(durationMS) * time.Millisecond
		out = append(out, row)
	}
	return out, rows.Err()
}

// HighScore returns the best recorded score, or 0 when no games are stored.
func (s *Store) HighScore() (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(`SELECT MAX(score) FROM games`).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}
