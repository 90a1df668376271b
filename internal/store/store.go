// Package store provides read-only access to the evaluation results
// database produced by the experiment harness.
//
// Absence of the database is an expected condition, not an error: every
// query on a missing or unopenable store returns empty results, which is
// the signal the effect resolver uses to fall back to its embedded
// literals.
package store

import (
	"database/sql"
	"math"
	"sort"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// CellAggregate summarizes the non-null scores of one condition cell.
type CellAggregate struct {
	Mean float64
	N    int
	SD   float64
}

// Store is a lazily opened, read-only handle on the evaluation database.
// One Store is shared for the process lifetime; nothing writes to the
// database while it is open.
type Store struct {
	path string
	log  *zap.Logger

	mu     sync.Mutex
	db     *sql.DB
	opened bool
}

// Open prepares a store for the database at path. The file is not touched
// until the first query.
func Open(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{path: path, log: log}
}

// Close releases the database handle if one was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	db := s.db
	s.db = nil
	return db.Close()
}

// handle opens the database on first use. ok is false when the file does
// not exist or cannot be opened; callers treat that as "no data".
func (s *Store) handle() (*sql.DB, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, true
	}
	if s.opened {
		// A previous attempt failed; do not retry.
		return nil, false
	}
	s.opened = true

	db, err := sql.Open("sqlite3", "file:"+s.path+"?mode=ro")
	if err != nil {
		s.log.Debug("store unavailable", zap.String("path", s.path), zap.Error(err))
		return nil, false
	}
	// sql.Open is lazy; a ping is what actually discovers a missing file.
	if err := db.Ping(); err != nil {
		db.Close()
		s.log.Debug("store unavailable", zap.String("path", s.path), zap.Error(err))
		return nil, false
	}
	s.db = db
	return s.db, true
}

// CellMeans aggregates non-null overall scores per condition label,
// restricted to the given run IDs and to judge models matching the LIKE
// pattern judgeFilter. A missing store, a failed query, or a filter that
// matches nothing all yield an empty map.
func (s *Store) CellMeans(runIDs []string, judgeFilter string) map[string]CellAggregate {
	db, ok := s.handle()
	if !ok || len(runIDs) == 0 {
		return map[string]CellAggregate{}
	}

	query := `
		SELECT profile_name, overall_score
		FROM evaluation_results
		WHERE run_id IN (` + placeholders(len(runIDs)) + `)
		  AND judge_model LIKE ?
		  AND overall_score IS NOT NULL`

	rows, err := db.Query(query, args(runIDs, judgeFilter)...)
	if err != nil {
		s.log.Warn("cell means query failed", zap.Error(err))
		return map[string]CellAggregate{}
	}
	defer rows.Close()

	scores := map[string][]float64{}
	for rows.Next() {
		var profile string
		var score float64
		if err := rows.Scan(&profile, &score); err != nil {
			continue
		}
		scores[profile] = append(scores[profile], score)
	}

	cells := make(map[string]CellAggregate, len(scores))
	for profile, xs := range scores {
		cells[profile] = aggregate(xs)
	}
	return cells
}

// aggregate computes mean, count, and a variance-derived SD. The variance
// of a single-observation or constant-valued sample is floored at 0 so
// floating-point cancellation can never produce a negative value.
func aggregate(xs []float64) CellAggregate {
	mean := stat.Mean(xs, nil)
	variance := 0.0
	if len(xs) > 1 {
		variance = stat.Variance(xs, nil)
	}
	if variance < 0 {
		variance = 0
	}
	return CellAggregate{Mean: mean, N: len(xs), SD: math.Sqrt(variance)}
}

// placeholders returns "?, ?, ..., ?" for n parameters.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func args(runIDs []string, judgeFilter string) []any {
	// Sorted for stable query plans and reproducible debug logs.
	ids := append([]string(nil), runIDs...)
	sort.Strings(ids)
	out := make([]any, 0, len(ids)+1)
	for _, id := range ids {
		out = append(out, id)
	}
	return append(out, judgeFilter)
}
