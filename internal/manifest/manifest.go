// Package manifest loads the static figure manifest: which runs, judge
// filter, and condition cells feed each figure's numbers.
package manifest

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Entry names the data one figure pulls from the evaluation store.
type Entry struct {
	// Run identifiers restricting the records considered.
	RunIDs []string `yaml:"run_ids"`

	// LIKE pattern on the judge model, e.g. "%claude%".
	JudgeFilter string `yaml:"judge_filter"`

	// Design maps 2x2 cell categories (base_single, base_multi,
	// recog_single, recog_multi) to condition labels in the store.
	Design map[string]string `yaml:"design,omitempty"`

	// Labels lists condition labels directly, for figures that are not a
	// 2x2 design (persona and mechanism figures).
	Labels []string `yaml:"labels,omitempty"`
}

// Manifest maps figure IDs to entries.
type Manifest struct {
	Figures map[string]Entry `yaml:"figures"`
}

// Load reads the manifest at path. The second return is false when the
// manifest is not available (missing file, or one that does not parse),
// which the resolver treats exactly like an unavailable store. It is a sentinel,
// never an error: figure regeneration must keep working from the embedded
// literals on a checkout without the data directory.
func Load(path string) (Manifest, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, false
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, false
	}
	if len(m.Figures) == 0 {
		return Manifest{}, false
	}
	return m, true
}

// Lookup returns the entry for a figure ID.
func (m Manifest) Lookup(figureID string) (Entry, bool) {
	e, ok := m.Figures[figureID]
	return e, ok
}
