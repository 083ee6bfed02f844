// internal/history/history.go
//
// Persistent score history for the terminal game.
// Keeps one counter per guess-count bucket: "how many games were solved
// in N guesses", with bucket 10 aggregating every game that took ten
// guesses or more.
//
// Responsibilities:
//   - Open the SQLite database with safe defaults (WAL, busy timeout).
//   - Bootstrap the scores table on first open.
//   - Read-modify-write a single bucket per finished game.
//   - Render the histogram the way the terminal scoreboard prints it.

package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Buckets is the number of histogram buckets; the last one is "N or more".
const Buckets = 10

// Store wraps the scores database.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) the scores database.
//
// - Ensures the parent directory exists for relative DSNs (e.g. ./data/scores.db).
// - Configures busy timeout and WAL journaling.
// - Creates the scores table if it is not there yet.
func Open(dsn string) (*Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS scores (
		bucket INTEGER PRIMARY KEY,
		count  INTEGER NOT NULL DEFAULT 0
	);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create scores: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Record bumps the bucket for a game solved in the given number of
// guesses. Counts of Buckets or more land in the last bucket.
func (s *Store) Record(ctx context.Context, guesses int) error {
	if guesses < 1 {
		return fmt.Errorf("history: guess count %d out of range", guesses)
	}
	b := guesses
	if b > Buckets {
		b = Buckets
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO scores (bucket, count) VALUES (?, 1)
        ON CONFLICT(bucket) DO UPDATE SET count = count + 1`, b)
	return err
}

// Counts returns the full histogram; missing buckets read as zero.
func (s *Store) Counts(ctx context.Context) ([Buckets]int, error) {
	var out [Buckets]int
	rows, err := s.db.QueryContext(ctx, `SELECT bucket, count FROM scores`)
	if err != nil {
		return out, err
	}
	defer rows.Close()
	for rows.Next() {
		var b, c int
		if err := rows.Scan(&b, &c); err != nil {
			return out, err
		}
		if b >= 1 && b <= Buckets {
			out[b-1] = c
		}
	}
	return out, rows.Err()
}

// Render formats the histogram as the scoreboard table:
//
//	 1  :    3
//	 2  :   10
//	...
//	10+ :    1
func Render(counts [Buckets]int) string {
	var b strings.Builder
	for i := 0; i < Buckets-1; i++ {
		fmt.Fprintf(&b, "%2d  : %4d\n", i+1, counts[i])
	}
	fmt.Fprintf(&b, "%2d+ : %4d\n", Buckets, counts[Buckets-1])
	return b.String()
}
