// Package storage provides SQLite-based persistence for the adventure journal.
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

// DefaultPath is where the journal lives unless --db says otherwise.
const DefaultPath = "~/.nomekop/journal.db"

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// JournalEntry records one starter choice.
type JournalEntry struct {
	ID        int64
	GameID    string
	Player    string // Local user name or SSH user
	Starter   string
	Ticks     uint64 // Session ticks when the choice was made
	CreatedAt time.Time
}

// StarterCount is how often a starter was chosen.
type StarterCount struct {
	Starter string
	Count   int
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
		CREATE TABLE IF NOT EXISTS journal (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			starter TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_journal_created ON journal(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_journal_starter ON journal(starter);
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

// AppendJournal records a starter choice and returns the new row ID.
func (s *Store) AppendJournal(gameID, player, starter string, ticks uint64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO journal (game_id, player, starter, ticks) VALUES (?, ?, ?, ?)",
		gameID, player, starter, int64(ticks),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot append journal entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Recent returns the newest journal entries first.
func (s *Store) Recent(limit int) ([]JournalEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, starter, ticks, created_at
		 FROM journal
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query journal: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var ticks int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Starter, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// CountByStarter returns how often each starter was chosen, most popular
// first.
func (s *Store) CountByStarter() ([]StarterCount, error) {
	rows, err := s.db.Query(
		`SELECT starter, COUNT(*) AS n
		 FROM journal
		 GROUP BY starter
		 ORDER BY n DESC, starter ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count starters: %w", err)
	}
	defer rows.Close()

	var counts []StarterCount
	for rows.Next() {
		var c StarterCount
		if err := rows.Scan(&c.Starter, &c.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// Clear deletes every journal entry.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM journal"); err != nil {
		return fmt.Errorf("storage: cannot clear journal: %w", err)
	}
	return nil
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
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
