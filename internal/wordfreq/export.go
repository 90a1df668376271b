package wordfreq

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ThemeFrequency is one coded theme with its per-condition counts, as
// found in the discovery-analysis JSON exports.
type ThemeFrequency struct {
	Label       string `json:"label"`
	Base        int    `json:"base"`
	Recognition int    `json:"recognition"`
}

type exportFile struct {
	Discovery struct {
		Analysis struct {
			ThemeFrequency []ThemeFrequency `json:"themeFrequency"`
		} `json:"analysis"`
	} `json:"discovery"`
}

// LoadThemeFrequencies reads every *.json export under dir and merges their
// theme frequencies into per-condition maps. ok is false when no export
// contributes anything: missing directory, unreadable or malformed files,
// or files without the discovery.analysis.themeFrequency structure.
func LoadThemeFrequencies(dir string) (base, recog map[string]int, ok bool) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(paths) == 0 {
		return nil, nil, false
	}

	base = map[string]int{}
	recog = map[string]int{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var export exportFile
		if err := json.Unmarshal(data, &export); err != nil {
			continue
		}
		for _, tf := range export.Discovery.Analysis.ThemeFrequency {
			if tf.Label == "" {
				continue
			}
			base[tf.Label] += tf.Base
			recog[tf.Label] += tf.Recognition
		}
	}

	if len(base) == 0 && len(recog) == 0 {
		return nil, nil, false
	}
	return base, recog, true
}
