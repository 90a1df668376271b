package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_MissingFileIsNotAvailable(t *testing.T) {
	t.Parallel()

	_, ok := Load(filepath.Join(t.TempDir(), "figures.yaml"))
	if ok {
		t.Fatal("expected not-available sentinel for missing manifest")
	}
}

func TestLoad_MalformedIsNotAvailable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "figures.yaml")
	if err := os.WriteFile(path, []byte("figures: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := Load(path); ok {
		t.Fatal("expected not-available sentinel for malformed manifest")
	}
}

func TestLoad_Entries(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "figures.yaml")
	data := `
figures:
  figure4:
    run_ids: [eval-2026-02-03-f5d4dd93, eval-2026-02-06-a933d745]
    judge_filter: "%claude%"
    design:
      base_single: cell_1_base_single
      base_multi: cell_3_base_multi
      recog_single: cell_5_recog_single
      recog_multi: cell_7_recog_multi
  figure7:
    run_ids: [eval-2026-02-10-persona]
    judge_filter: "%opus%"
    labels: [suspicious_base, suspicious_recog, adversary_base]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	m, ok := Load(path)
	if !ok {
		t.Fatal("expected manifest to load")
	}

	want := Entry{
		RunIDs:      []string{"eval-2026-02-03-f5d4dd93", "eval-2026-02-06-a933d745"},
		JudgeFilter: "%claude%",
		Design: map[string]string{
			"base_single":  "cell_1_base_single",
			"base_multi":   "cell_3_base_multi",
			"recog_single": "cell_5_recog_single",
			"recog_multi":  "cell_7_recog_multi",
		},
	}
	got, ok := m.Lookup("figure4")
	if !ok {
		t.Fatal("figure4 entry missing")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("figure4 entry mismatch (-want +got):\n%s", diff)
	}

	if _, ok := m.Lookup("figure99"); ok {
		t.Error("unexpected entry for unknown figure")
	}
}
