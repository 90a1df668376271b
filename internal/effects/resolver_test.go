package effects

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"geistfig/internal/manifest"
	"geistfig/internal/store"
)

// fakeCells serves canned aggregates, ignoring the filter arguments.
type fakeCells map[string]store.CellAggregate

func (f fakeCells) CellMeans(runIDs []string, judgeFilter string) map[string]store.CellAggregate {
	return f
}

func testManifest() manifest.Manifest {
	return manifest.Manifest{Figures: map[string]manifest.Entry{
		"figure4": {
			RunIDs:      []string{"run-a"},
			JudgeFilter: "%claude%",
			Design: map[string]string{
				CellBaseSingle:  "cell_1_base_single",
				CellBaseMulti:   "cell_3_base_multi",
				CellRecogSingle: "cell_5_recog_single",
				CellRecogMulti:  "cell_7_recog_multi",
			},
		},
		"figure7": {
			RunIDs:      []string{"run-b"},
			JudgeFilter: "%opus%",
			Labels:      []string{"suspicious_base", "suspicious_recog"},
		},
	}}
}

func TestResolve_DataDriven(t *testing.T) {
	t.Parallel()

	cells := fakeCells{
		"cell_1_base_single":  {Mean: 70, N: 3},
		"cell_3_base_multi":   {Mean: 76, N: 2},
		"cell_5_recog_single": {Mean: 80, N: 3},
		"cell_7_recog_multi":  {Mean: 86, N: 2},
	}
	r := NewResolver(testManifest(), true, cells, zap.NewNop())

	res := r.Resolve("figure4")
	if res.Source != DataDriven {
		t.Fatalf("Source = %v, want data-driven", res.Source)
	}
	if res.Bundle.RecognitionEffect != 10 {
		t.Errorf("RecognitionEffect = %v, want 10", res.Bundle.RecognitionEffect)
	}
	if res.Bundle.ArchitectureEffect != 6 {
		t.Errorf("ArchitectureEffect = %v, want 6", res.Bundle.ArchitectureEffect)
	}
	if res.Bundle.Interaction != 0 {
		t.Errorf("Interaction = %v, want 0", res.Bundle.Interaction)
	}
}

func TestResolve_MissingCellFallsBack(t *testing.T) {
	t.Parallel()

	// recog_multi has zero observations: the whole bundle must fall back,
	// never compute with a substituted zero.
	cells := fakeCells{
		"cell_1_base_single":  {Mean: 70, N: 3},
		"cell_3_base_multi":   {Mean: 76, N: 2},
		"cell_5_recog_single": {Mean: 80, N: 3},
		"cell_7_recog_multi":  {Mean: 0, N: 0},
	}
	r := NewResolver(testManifest(), true, cells, zap.NewNop())

	res := r.Resolve("figure4")
	if res.Source != Fallback {
		t.Fatalf("Source = %v, want fallback", res.Source)
	}
	if res.Bundle != fallbacks["figure4"].bundle {
		t.Errorf("Bundle = %+v, want the figure4 literals", res.Bundle)
	}
}

func TestResolve_NoManifestFallsBack(t *testing.T) {
	t.Parallel()

	r := NewResolver(manifest.Manifest{}, false, nil, zap.NewNop())
	res := r.Resolve("figure4")
	if res.Source != Fallback {
		t.Fatalf("Source = %v, want fallback", res.Source)
	}
}

func TestResolve_EmptyStoreFallsBack(t *testing.T) {
	t.Parallel()

	r := NewResolver(testManifest(), true, fakeCells{}, zap.NewNop())
	res := r.Resolve("figure4")
	if res.Source != Fallback {
		t.Fatalf("Source = %v, want fallback", res.Source)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	cells := fakeCells{
		"cell_1_base_single":  {Mean: 70.123, N: 3},
		"cell_3_base_multi":   {Mean: 76.456, N: 2},
		"cell_5_recog_single": {Mean: 80.789, N: 3},
		"cell_7_recog_multi":  {Mean: 86.012, N: 2},
	}
	r := NewResolver(testManifest(), true, cells, zap.NewNop())

	first := r.Resolve("figure4")
	second := r.Resolve("figure4")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated resolution differs (-first +second):\n%s", diff)
	}
}

func TestResolveCells_DataDriven(t *testing.T) {
	t.Parallel()

	cells := fakeCells{
		"suspicious_base":  {Mean: 85.7, N: 15},
		"suspicious_recog": {Mean: 90.2, N: 15},
	}
	r := NewResolver(testManifest(), true, cells, zap.NewNop())

	res := r.ResolveCells("figure7")
	if res.Source != DataDriven {
		t.Fatalf("Source = %v, want data-driven", res.Source)
	}
	want := map[string]float64{"suspicious_base": 85.7, "suspicious_recog": 90.2}
	if diff := cmp.Diff(want, res.Cells); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveCells_MissingLabelFallsBack(t *testing.T) {
	t.Parallel()

	cells := fakeCells{"suspicious_base": {Mean: 85.7, N: 15}}
	r := NewResolver(testManifest(), true, cells, zap.NewNop())

	res := r.ResolveCells("figure7")
	if res.Source != Fallback {
		t.Fatalf("Source = %v, want fallback", res.Source)
	}
	if diff := cmp.Diff(fallbacks["figure7"].cells, res.Cells); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveCells_FallbackCopyIsMutationSafe(t *testing.T) {
	t.Parallel()

	r := NewResolver(manifest.Manifest{}, false, nil, zap.NewNop())
	res := r.ResolveCells("figure7")
	res.Cells["suspicious_base"] = -1

	again := r.ResolveCells("figure7")
	if again.Cells["suspicious_base"] != 85.7 {
		t.Error("mutating a resolved cell map leaked into the literal table")
	}
}
