package effects

// Literal fallback numbers, one coherent set matching the current paper
// draft. These are placeholder constants, not derived values: when the
// data directory is present the resolver recomputes everything from the
// store and these never show.
type fallbackData struct {
	bundle Bundle
	cells  map[string]float64
}

var fallbacks = map[string]fallbackData{
	// Figure 3: decomposition of the total improvement into the prompt
	// engineering share and the recognition-unique share.
	"figure3": {
		cells: map[string]float64{
			"prompt_engineering": 11.4,
			"recognition_unique": 8.7,
		},
	},

	// Figure 4: preliminary N=36 Nemotron analysis. "Base" here is the
	// enhanced-prompt condition; recognition prompts gain +9.3 from the
	// multi-agent architecture, enhanced prompts gain nothing.
	"figure4": {
		bundle: NewBundle(83.3, 83.3, 72.2, 81.5),
	},

	// Figure 5: factor effects per domain. Philosophy favors recognition,
	// elementary math favors architecture.
	"figure5": {
		bundle: Bundle{RecognitionEffect: 15.4, ArchitectureEffect: -0.8},
		cells: map[string]float64{
			"phil_recognition": 15.4,
			"phil_multi_agent": -0.8,
			"phil_learner":     2.1,
			"elem_recognition": 4.4,
			"elem_multi_agent": 9.9,
			"elem_learner":     0.75,
		},
	},

	// Figure 7: superego persona x recognition, dialectical multi-turn
	// cells 28-33, Opus judge.
	"figure7": {
		cells: map[string]float64{
			"suspicious_base":  85.7,
			"suspicious_recog": 90.2,
			"adversary_base":   88.5,
			"adversary_recog":  88.5,
			"advocate_base":    82.0,
			"advocate_recog":   95.6,
		},
	},

	// Figure 8: mechanism spread, recognition cells, Haiku judge.
	"figure8-scripted": {
		cells: map[string]float64{
			"Prof. (bidir)":   92.7,
			"Quantitative":    92.6,
			"Adversary":       92.6,
			"Combined":        92.4,
			"Prof. (tutor)":   92.4,
			"Self-reflect":    92.1,
			"Intersubjective": 91.7,
			"Erosion":         90.8,
			"Advocate":        90.3,
		},
	},
	"figure8-dynamic": {
		cells: map[string]float64{
			"Profiling":       88.8,
			"Combined":        87.8,
			"Self-reflect":    85.9,
			"Intersubjective": 82.8,
		},
	},

	// Figure 9: qualitative tag frequency (percent) per condition from
	// the bilateral run assessment.
	"figure9": {
		cells: map[string]float64{
			"recognition_moment/base":       0.0,
			"recognition_moment/recog":      51.7,
			"strategy_shift/base":           0.0,
			"strategy_shift/recog":          30.0,
			"emotional_attunement/base":     6.9,
			"emotional_attunement/recog":    36.7,
			"learner_breakthrough/base":     80.0,
			"learner_breakthrough/recog":    80.0,
			"ego_compliance/base":           70.7,
			"ego_compliance/recog":          60.0,
			"superego_overcorrection/base":  69.0,
			"superego_overcorrection/recog": 50.0,
			"missed_scaffold/base":          101.7,
			"missed_scaffold/recog":         68.3,
			"stalling/base":                 100.0,
			"stalling/recog":                45.0,
		},
	},
}
