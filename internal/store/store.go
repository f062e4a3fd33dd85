// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/benjaminbelloeil/CursiveWorld/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for practice history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS practices (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			letter TEXT NOT NULL,
			completed INTEGER NOT NULL,
			violations INTEGER NOT NULL,
			resets INTEGER NOT NULL,
			stroke_count INTEGER NOT NULL,
			canvas_w INTEGER NOT NULL,
			canvas_h INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_practices_ended_at ON practices(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_practices_letter ON practices(letter);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertPractice stores one finished letter practice.
func (s *Store) InsertPractice(ctx context.Context, stats model.PracticeStats) (int64, error) {
	completed := 0
	if stats.Completed {
		completed = 1
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO practices (started_at, ended_at, letter, completed, violations, resets, stroke_count, canvas_w, canvas_h, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stats.StartedAt.Format(time.RFC3339Nano),
		stats.EndedAt.Format(time.RFC3339Nano),
		stats.Letter,
		completed,
		stats.Violations,
		stats.Resets,
		stats.StrokeCount,
		stats.CanvasWidth,
		stats.CanvasHeight,
		stats.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListPractices returns practice aggregates filtered by stats config.
func (s *Store) ListPractices(ctx context.Context, cfg model.StatsConfig) ([]model.PracticeAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Letter != "" {
		clauses = append(clauses, "letter = ?")
		args = append(args, cfg.Letter)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, ended_at, letter, completed, violations, duration_ms
		FROM practices
		WHERE %s
		ORDER BY ended_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var practices []model.PracticeAggregate
	for rows.Next() {
		var agg model.PracticeAggregate
		var endedAt string
		var completed int
		if err := rows.Scan(&agg.PracticeID, &endedAt, &agg.Letter, &completed, &agg.Violations, &agg.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		agg.Completed = completed != 0
		practices = append(practices, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return practices, nil
}

// GetWeakLetters aggregates letter outcomes over the most recent practices.
func (s *Store) GetWeakLetters(ctx context.Context, window int) ([]model.LetterAggregate, error) {
	if window <= 0 {
		return nil, nil
	}
	query := `WITH recent_practices AS (
		SELECT id FROM practices
		ORDER BY ended_at DESC
		LIMIT ?
	)
	SELECT p.letter, COUNT(*) AS attempts, SUM(p.completed) AS completions,
		SUM(p.violations) AS violations, SUM(p.duration_ms) AS duration_ms
	FROM practices p
	JOIN recent_practices r ON r.id = p.id
	GROUP BY p.letter`

	rows, err := s.db.QueryContext(ctx, query, window)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	return scanLetterAggregates(rows)
}

// ListLetterAggregatesForPractices aggregates outcomes across the given practices.
func (s *Store) ListLetterAggregatesForPractices(ctx context.Context, practiceIDs []int64) ([]model.LetterAggregate, error) {
	if len(practiceIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(practiceIDs))
	args := make([]any, len(practiceIDs))
	for i, id := range practiceIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT letter, COUNT(*) AS attempts, SUM(completed) AS completions,
		SUM(violations) AS violations, SUM(duration_ms) AS duration_ms
		FROM practices
		WHERE id IN (%s)
		GROUP BY letter`, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	return scanLetterAggregates(rows)
}

// CompletedLetters returns the set of letters with at least one
// completed practice.
func (s *Store) CompletedLetters(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT letter FROM practices WHERE completed = 1`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	out := map[string]struct{}{}
	for rows.Next() {
		var letter string
		if err := rows.Scan(&letter); err != nil {
			return nil, err
		}
		out[letter] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanLetterAggregates(rows *sql.Rows) ([]model.LetterAggregate, error) {
	var result []model.LetterAggregate
	for rows.Next() {
		var agg model.LetterAggregate
		if err := rows.Scan(&agg.Letter, &agg.Attempts, &agg.Completions, &agg.Violations, &agg.DurationMs); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
