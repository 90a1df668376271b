package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestDB creates a database file with the evaluation_results schema and
// the given rows. score == nil inserts a NULL overall_score.
func newTestDB(t *testing.T, rows []testRow) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "evaluations.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE evaluation_results (
			run_id        TEXT NOT NULL,
			profile_name  TEXT NOT NULL,
			overall_score REAL,
			judge_model   TEXT NOT NULL,
			suggestions   TEXT
		)`)
	if err != nil {
		t.Fatalf("create schema: %v", err)
	}

	for _, r := range rows {
		_, err = db.Exec(
			`INSERT INTO evaluation_results (run_id, profile_name, overall_score, judge_model, suggestions)
			 VALUES (?, ?, ?, ?, ?)`,
			r.run, r.profile, r.score, r.judge, r.suggestions)
		if err != nil {
			t.Fatalf("insert row: %v", err)
		}
	}
	return path
}

type testRow struct {
	run, profile string
	score        *float64
	judge        string
	suggestions  string
}

func f(v float64) *float64 { return &v }

func TestCellMeans_GroupsAndAggregates(t *testing.T) {
	t.Parallel()

	rows := []testRow{
		{"run-a", "cell_1_base_single", f(70), "claude-judge", ""},
		{"run-a", "cell_1_base_single", f(72), "claude-judge", ""},
		{"run-a", "cell_1_base_single", f(68), "claude-judge", ""},
		{"run-a", "cell_3_base_multi", f(75), "claude-judge", ""},
		{"run-b", "cell_3_base_multi", f(77), "claude-judge", ""},
	}
	s := Open(newTestDB(t, rows), zap.NewNop())
	defer s.Close()

	cells := s.CellMeans([]string{"run-a", "run-b"}, "%claude%")

	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2: %v", len(cells), cells)
	}
	single := cells["cell_1_base_single"]
	if single.Mean != 70 || single.N != 3 {
		t.Errorf("cell_1_base_single = %+v, want mean 70 n 3", single)
	}
	multi := cells["cell_3_base_multi"]
	if multi.Mean != 76 || multi.N != 2 {
		t.Errorf("cell_3_base_multi = %+v, want mean 76 n 2", multi)
	}
}

func TestCellMeans_ExcludesNullScores(t *testing.T) {
	t.Parallel()

	rows := []testRow{
		{"run-a", "cell_x", f(80), "judge", ""},
		{"run-a", "cell_x", nil, "judge", ""},
	}
	s := Open(newTestDB(t, rows), zap.NewNop())
	defer s.Close()

	cells := s.CellMeans([]string{"run-a"}, "%")
	if got := cells["cell_x"].N; got != 1 {
		t.Errorf("N = %d, want 1 (null score must not count)", got)
	}
}

func TestCellMeans_JudgeFilterMatchingNothing(t *testing.T) {
	t.Parallel()

	rows := []testRow{{"run-a", "cell_x", f(80), "nemotron", ""}}
	s := Open(newTestDB(t, rows), zap.NewNop())
	defer s.Close()

	cells := s.CellMeans([]string{"run-a"}, "%claude%")
	if len(cells) != 0 {
		t.Errorf("got %v, want empty map for non-matching judge filter", cells)
	}
}

func TestCellMeans_RunIDRestriction(t *testing.T) {
	t.Parallel()

	rows := []testRow{
		{"run-a", "cell_x", f(80), "judge", ""},
		{"run-z", "cell_x", f(10), "judge", ""},
	}
	s := Open(newTestDB(t, rows), zap.NewNop())
	defer s.Close()

	cells := s.CellMeans([]string{"run-a"}, "%")
	if got := cells["cell_x"]; got.Mean != 80 || got.N != 1 {
		t.Errorf("cell_x = %+v, want only run-a's row", got)
	}
}

func TestCellMeans_MissingDatabase(t *testing.T) {
	t.Parallel()

	s := Open(filepath.Join(t.TempDir(), "absent.db"), zap.NewNop())
	defer s.Close()

	cells := s.CellMeans([]string{"run-a"}, "%")
	if len(cells) != 0 {
		t.Errorf("got %v, want empty map for missing database", cells)
	}
}

func TestAggregate_ConstantSampleHasZeroSD(t *testing.T) {
	t.Parallel()

	agg := aggregate([]float64{85, 85, 85, 85})
	if agg.SD != 0 {
		t.Errorf("SD = %v, want 0 for constant sample", agg.SD)
	}
	if agg.Mean != 85 || agg.N != 4 {
		t.Errorf("agg = %+v, want mean 85 n 4", agg)
	}
}

func TestAggregate_SingleObservation(t *testing.T) {
	t.Parallel()

	agg := aggregate([]float64{91.5})
	if agg.SD != 0 || agg.N != 1 || agg.Mean != 91.5 {
		t.Errorf("agg = %+v, want mean 91.5 n 1 sd 0", agg)
	}
}
