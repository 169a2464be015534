// Package storage provides SQLite-based persistence for the player profile
// and the highscore list.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const (
	// MaxNameLength is the longest player name kept, in runes.
	MaxNameLength = 32
	// MaxHighscores is how many entries the highscore list keeps per game.
	MaxHighscores = 10

	fallbackName = "player"
)

// ErrEmptyName is returned when a blank player name is saved.
var ErrEmptyName = errors.New("storage: player name is empty")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Highscore is one entry of the highscore list.
type Highscore struct {
	ID        int64
	GameID    string
	Name      string
	Score     int
	Level     int
	CreatedAt time.Time
}

// Stats contains aggregated statistics for a game's highscore list.
type Stats struct {
	GameID     string
	Entries    int
	Best       int
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			name TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS highscores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_highscores_top ON highscores(game_id, score DESC, id);
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

// DefaultName returns the base name of the user's home directory,
// or "player" when it cannot be determined.
func DefaultName() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return fallbackName
	}
	name := NormalizeName(filepath.Base(home))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return fallbackName
	}
	return name
}

// NormalizeName trims surrounding spaces and cuts the name to MaxNameLength runes.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > MaxNameLength {
		name = strings.TrimSpace(string(r[:MaxNameLength]))
	}
	return name
}

// Name returns the stored player name, falling back to DefaultName.
func (s *Store) Name() (string, error) {
	var name string
	err := s.db.QueryRow("SELECT name FROM profile WHERE id = 1").Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultName(), nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read player name: %w", err)
	}
	return name, nil
}

// SetName stores the player name, truncated to MaxNameLength runes.
func (s *Store) SetName(name string) error {
	name = NormalizeName(name)
	if name == "" {
		return ErrEmptyName
	}

	_, err := s.db.Exec(
		`INSERT INTO profile (id, name) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		name,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save player name: %w", err)
	}
	return nil
}

// SaveHighscore inserts an entry and trims the game's list to MaxHighscores.
// Reports whether the entry is still on the list afterwards. Ties keep the
// older entry ahead.
func (s *Store) SaveHighscore(gameID, name string, score, level int) (bool, error) {
	name = NormalizeName(name)
	if name == "" {
		name = DefaultName()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO highscores (game_id, name, score, level) VALUES (?, ?, ?, ?)",
		gameID, name, score, level,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save highscore: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	_, err = tx.Exec(
		`DELETE FROM highscores
		 WHERE game_id = ? AND id NOT IN (
			SELECT id FROM highscores
			WHERE game_id = ?
			ORDER BY score DESC, id ASC
			LIMIT ?
		 )`,
		gameID, gameID, MaxHighscores,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot trim highscores: %w", err)
	}

	var kept int
	if err := tx.QueryRow("SELECT COUNT(*) FROM highscores WHERE id = ?", id).Scan(&kept); err != nil {
		return false, fmt.Errorf("storage: cannot check highscore: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit highscore: %w", err)
	}
	return kept == 1, nil
}

// Highscores returns the game's highscore list, best first.
func (s *Store) Highscores(gameID string) ([]Highscore, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, name, score, level, created_at
		 FROM highscores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, MaxHighscores,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query highscores: %w", err)
	}
	defer rows.Close()

	var entries []Highscore
	for rows.Next() {
		var e Highscore
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Name, &e.Score, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) BestScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM highscores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearHighscores deletes all entries for the given game.
func (s *Store) ClearHighscores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM highscores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear highscores: %w", err)
	}
	return nil
}

// GameStats retrieves aggregated statistics for a game.
func (s *Store) GameStats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), MAX(created_at)
		 FROM highscores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Entries, &stats.Best, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and string datetime values.
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
