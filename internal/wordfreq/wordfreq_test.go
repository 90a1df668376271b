package wordfreq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFrequencies(t *testing.T) {
	t.Parallel()

	freq := Frequencies("The spiral, a SPIRAL — dialectics is a spiral! up up")

	want := map[string]int{"spiral": 3, "dialectics": 1}
	if diff := cmp.Diff(want, freq); diff != "" {
		t.Errorf("frequencies mismatch (-want +got):\n%s", diff)
	}
}

func TestFrequencies_ShortAndStopWordsExcluded(t *testing.T) {
	t.Parallel()

	freq := Frequencies("to be or not to be is no question at all")
	if len(freq) != 1 || freq["question"] != 1 {
		t.Errorf("freq = %v, want only {question: 1}", freq)
	}
}

func TestFrequencies_TutoringTermsExcluded(t *testing.T) {
	t.Parallel()

	freq := Frequencies("review the lecture material with the student")
	if len(freq) != 0 {
		t.Errorf("freq = %v, want empty (shared tutoring terms are stop words)", freq)
	}
}

func TestLoadThemeFrequencies(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	export := `{
		"discovery": {
			"analysis": {
				"themeFrequency": [
					{"label": "metaphor", "base": 2, "recognition": 9},
					{"label": "scaffold", "base": 5, "recognition": 3}
				]
			}
		}
	}`
	if err := os.WriteFile(filepath.Join(dir, "run1.json"), []byte(export), 0o644); err != nil {
		t.Fatal(err)
	}
	// A second export merges additively.
	export2 := `{"discovery":{"analysis":{"themeFrequency":[{"label":"metaphor","base":1,"recognition":1}]}}}`
	if err := os.WriteFile(filepath.Join(dir, "run2.json"), []byte(export2), 0o644); err != nil {
		t.Fatal(err)
	}
	// Malformed files contribute nothing and do not fail the load.
	if err := os.WriteFile(filepath.Join(dir, "junk.json"), []byte("{oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	base, recog, ok := LoadThemeFrequencies(dir)
	if !ok {
		t.Fatal("expected exports to load")
	}
	wantBase := map[string]int{"metaphor": 3, "scaffold": 5}
	wantRecog := map[string]int{"metaphor": 10, "scaffold": 3}
	if diff := cmp.Diff(wantBase, base); diff != "" {
		t.Errorf("base mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantRecog, recog); diff != "" {
		t.Errorf("recognition mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadThemeFrequencies_MissingDir(t *testing.T) {
	t.Parallel()

	if _, _, ok := LoadThemeFrequencies(filepath.Join(t.TempDir(), "absent")); ok {
		t.Fatal("expected ok=false for missing exports directory")
	}
}
