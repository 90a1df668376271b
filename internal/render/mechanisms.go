package render

import (
	"fmt"
	"sort"
)

// Figure 8: per-mechanism recognition scores under scripted vs. dynamic
// learners, two horizontal-bar panels sorted descending, with the spread
// band highlighted. The dynamic learner differentiates mechanisms far
// more than the scripted one.
func renderMechanismSpread(ctx *Context, path string) error {
	scripted := ctx.Resolver.ResolveCells("figure8-scripted").Cells
	dynamic := ctx.Resolver.ResolveCells("figure8-dynamic").Cells
	if len(scripted) == 0 || len(dynamic) == 0 {
		return Skip("no mechanism data")
	}

	c := newCanvas(2100, 900)
	c.wrapped("Figure 8: Mechanism Differentiation — Scripted vs Dynamic Learner",
		1050, 45, 2000, boldFace(25), colEdge)

	panel(c, 60, "Scripted Learner (N=360)", scripted, func(v float64) (fill, edge uint32) {
		return 0x27AE60, 0x1E8449
	})
	panel(c, 1110, "Dynamic Learner (N=240)", dynamic, func(v float64) (fill, edge uint32) {
		switch {
		case v > 86:
			return 0x27AE60, 0x333333
		case v > 84:
			return 0xF39C12, 0x333333
		default:
			return 0xE74C3C, 0x333333
		}
	})

	return c.SavePNG(path)
}

// panel draws one sorted horizontal-bar panel. The x axis spans 80..96
// points, matching both panels so the spreads compare visually.
func panel(c *canvas, left float64, title string, cells map[string]float64, colors func(v float64) (fill, edge uint32)) {
	type bar struct {
		label string
		value float64
	}
	bars := make([]bar, 0, len(cells))
	for label, v := range cells {
		bars = append(bars, bar{label, v})
	}
	sort.Slice(bars, func(i, j int) bool {
		if bars[i].value != bars[j].value {
			return bars[i].value > bars[j].value
		}
		return bars[i].label < bars[j].label
	})

	const (
		xMin, xMax = 80.0, 96.0
		plotW      = 640.0
		plotTop    = 140.0
		plotBottom = 740.0
	)
	plotLeft := left + 280
	scale := plotW / (xMax - xMin)
	xPix := func(v float64) float64 { return plotLeft + (v-xMin)*scale }

	lo, hi := bars[len(bars)-1].value, bars[0].value
	spread := hi - lo

	c.wrapped(fmt.Sprintf("%s\n%.1f-pt range", title, spread),
		plotLeft+plotW/2-140, 110, 800, boldFace(21), colEdge)

	// Band highlight across the observed range.
	band := hex(0x27AE60)
	band.A = 0x22
	c.SetColor(band)
	c.DrawRectangle(xPix(lo), plotTop-10, (hi-lo)*scale, plotBottom-plotTop+20)
	c.Fill()

	rowH := (plotBottom - plotTop) / float64(len(bars))
	barH := rowH * 0.62
	for i, b := range bars {
		y := plotTop + float64(i)*rowH + (rowH-barH)/2
		fill, edge := colors(b.value)
		c.hbar(plotLeft, y, (b.value-xMin)*scale, barH, hex(fill), hex(edge))
		c.label(b.label, plotLeft-12, y+barH/2, 1, 0.5, face(16), colEdge)
		c.label(fmt.Sprintf("%.1f", b.value), xPix(b.value)+8, y+barH/2, 0, 0.5, boldFace(15), colEdge)
	}

	// X axis.
	c.SetColor(colEdge)
	c.SetLineWidth(1.5)
	c.DrawLine(plotLeft, plotBottom+10, plotLeft+plotW, plotBottom+10)
	c.Stroke()
	for v := xMin; v <= xMax; v += 4 {
		c.DrawLine(xPix(v), plotBottom+10, xPix(v), plotBottom+18)
		c.Stroke()
		c.label(fmt.Sprintf("%.0f", v), xPix(v), plotBottom+24, 0.5, 0, face(15), colEdge)
	}
	c.label("Mean Score (Recognition)", plotLeft+plotW/2, plotBottom+62, 0.5, 0.5, face(17), colEdge)
}
