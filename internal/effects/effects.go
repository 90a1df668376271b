// Package effects turns raw per-condition score aggregates into the
// summary numbers each figure displays.
//
// The resolver layers two sources: the live evaluation store (preferred)
// and literal constants embedded in the binary. Every failure path (no
// manifest, no database, a required cell with zero observations) degrades
// to the literals. A figure regeneration never crashes over missing data;
// its worst failure mode is showing the paper draft's stale numbers.
package effects

// Cell categories of the 2x2 factorial design: recognition vs. base
// crossed with multi- vs. single-agent architecture.
const (
	CellBaseSingle  = "base_single"
	CellBaseMulti   = "base_multi"
	CellRecogSingle = "recog_single"
	CellRecogMulti  = "recog_multi"
)

// designCells lists the categories a complete 2x2 design requires.
var designCells = []string{CellBaseSingle, CellBaseMulti, CellRecogSingle, CellRecogMulti}

// Bundle holds the four cell means of a 2x2 design and the derived effect
// sizes.
type Bundle struct {
	BaseSingle  float64
	BaseMulti   float64
	RecogSingle float64
	RecogMulti  float64

	// Main effect of recognition, averaged over architecture.
	RecognitionEffect float64
	// Main effect of multi-agent architecture, averaged over prompt type.
	ArchitectureEffect float64
	// Non-additivity of the two factors.
	Interaction float64
}

// NewBundle derives the effect sizes from the four cell means.
func NewBundle(bs, bm, rs, rm float64) Bundle {
	return Bundle{
		BaseSingle:         bs,
		BaseMulti:          bm,
		RecogSingle:        rs,
		RecogMulti:         rm,
		RecognitionEffect:  (rs+rm)/2 - (bs+bm)/2,
		ArchitectureEffect: (bm+rm)/2 - (bs+rs)/2,
		Interaction:        (rm - rs) - (bm - bs),
	}
}

// Source tags which path produced a figure's numbers.
type Source int

const (
	// Fallback means the embedded literal constants.
	Fallback Source = iota
	// DataDriven means the numbers were computed from the live store.
	DataDriven
)

func (s Source) String() string {
	if s == DataDriven {
		return "data-driven"
	}
	return "fallback"
}

// Result is a resolved 2x2 bundle tagged with its provenance. Renderers
// switch on Source instead of checking a boolean.
type Result struct {
	Source Source
	Bundle Bundle
}

// CellResult is a resolved label-to-mean mapping for figures that are not
// a 2x2 design.
type CellResult struct {
	Source Source
	Cells  map[string]float64
}
