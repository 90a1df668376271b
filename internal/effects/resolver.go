package effects

import (
	"go.uber.org/zap"

	"geistfig/internal/manifest"
	"geistfig/internal/store"
)

// CellQuerier is the slice of the store the resolver consumes.
type CellQuerier interface {
	CellMeans(runIDs []string, judgeFilter string) map[string]store.CellAggregate
}

// Resolver resolves figure numbers from the manifest and store, falling
// back to the embedded literals. Construct one per process and pass it
// into the renderers; it holds no mutable state beyond the store handle.
type Resolver struct {
	manifest manifest.Manifest
	haveMan  bool
	cells    CellQuerier
	log      *zap.Logger
}

// NewResolver wires a resolver. haveManifest is the manifest loader's
// availability sentinel; cells may be nil when no store exists at all.
func NewResolver(m manifest.Manifest, haveManifest bool, cells CellQuerier, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{manifest: m, haveMan: haveManifest, cells: cells, log: log}
}

// Resolve produces the 2x2 effect bundle for a figure. The result is
// data-driven when the manifest entry exists and every design cell has at
// least one observation; otherwise it is the figure's literal fallback.
// Resolution is idempotent: identical inputs yield identical results.
func (r *Resolver) Resolve(figureID string) Result {
	entry, ok := r.lookup(figureID)
	if !ok || len(entry.Design) == 0 {
		return r.fallbackBundle(figureID, "no manifest entry")
	}

	agg := r.cellMeans(entry)
	means := make(map[string]float64, len(designCells))
	for _, category := range designCells {
		label := entry.Design[category]
		cell, ok := agg[label]
		// A cell with zero observations is missing, never mean 0:
		// substituting zero would corrupt the effect arithmetic.
		if label == "" || !ok || cell.N == 0 {
			return r.fallbackBundle(figureID, "cell missing: "+category)
		}
		means[category] = cell.Mean
	}

	res := Result{
		Source: DataDriven,
		Bundle: NewBundle(
			means[CellBaseSingle],
			means[CellBaseMulti],
			means[CellRecogSingle],
			means[CellRecogMulti],
		),
	}
	r.log.Info("figure resolved",
		zap.String("figure", figureID),
		zap.String("source", res.Source.String()))
	return res
}

// ResolveCells produces the label-to-mean mapping for multi-condition
// figures, with the same layered fallback as Resolve.
func (r *Resolver) ResolveCells(figureID string) CellResult {
	entry, ok := r.lookup(figureID)
	if !ok || len(entry.Labels) == 0 {
		return r.fallbackCells(figureID, "no manifest entry")
	}

	agg := r.cellMeans(entry)
	cells := make(map[string]float64, len(entry.Labels))
	for _, label := range entry.Labels {
		cell, ok := agg[label]
		if !ok || cell.N == 0 {
			return r.fallbackCells(figureID, "cell missing: "+label)
		}
		cells[label] = cell.Mean
	}

	r.log.Info("figure resolved",
		zap.String("figure", figureID),
		zap.String("source", DataDriven.String()))
	return CellResult{Source: DataDriven, Cells: cells}
}

func (r *Resolver) lookup(figureID string) (manifest.Entry, bool) {
	if !r.haveMan {
		return manifest.Entry{}, false
	}
	return r.manifest.Lookup(figureID)
}

func (r *Resolver) cellMeans(entry manifest.Entry) map[string]store.CellAggregate {
	if r.cells == nil {
		return map[string]store.CellAggregate{}
	}
	return r.cells.CellMeans(entry.RunIDs, entry.JudgeFilter)
}

func (r *Resolver) fallbackBundle(figureID, reason string) Result {
	r.log.Info("figure resolved",
		zap.String("figure", figureID),
		zap.String("source", Fallback.String()),
		zap.String("reason", reason))
	return Result{Source: Fallback, Bundle: fallbacks[figureID].bundle}
}

func (r *Resolver) fallbackCells(figureID, reason string) CellResult {
	r.log.Info("figure resolved",
		zap.String("figure", figureID),
		zap.String("source", Fallback.String()),
		zap.String("reason", reason))
	// Copy so renderers can never mutate the literal table.
	src := fallbacks[figureID].cells
	cells := make(map[string]float64, len(src))
	for k, v := range src {
		cells[k] = v
	}
	return CellResult{Source: Fallback, Cells: cells}
}
