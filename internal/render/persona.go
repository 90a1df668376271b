package render

import (
	"fmt"
	"math"
)

// Figure 7: superego persona x recognition, grouped vertical bars with
// per-bar values and recognition deltas.
func renderPersona(ctx *Context, path string) error {
	cells := ctx.Resolver.ResolveCells("figure7").Cells

	personas := []struct {
		name string
		key  string
	}{
		{"Suspicious", "suspicious"},
		{"Adversary", "adversary"},
		{"Advocate", "advocate"},
	}

	c := newCanvas(1350, 825)
	c.wrapped("Figure 7: Superego Persona × Recognition\n(Dialectical Multi-Turn, N=90, Opus Judge)",
		675, 60, 1250, boldFace(22), colEdge)

	const (
		plotLeft   = 140.0
		plotRight  = 1290.0
		plotTop    = 130.0
		plotBottom = 660.0
		yMin       = 75.0
		yMax       = 100.0
		barW       = 120.0
	)
	yScale := (plotBottom - plotTop) / (yMax - yMin)
	yPix := func(v float64) float64 { return plotBottom - (v-yMin)*yScale }

	groupW := (plotRight - plotLeft) / float64(len(personas))

	for i, p := range personas {
		base := cells[p.key+"_base"]
		recog := cells[p.key+"_recog"]
		delta := recog - base

		center := plotLeft + groupW*(float64(i)+0.5)
		baseX := center - barW - 6
		recogX := center + 6

		c.hbar(baseX, yPix(base), barW, plotBottom-yPix(base), colGray, hex(0x7F8C8D))
		c.hbar(recogX, yPix(recog), barW, plotBottom-yPix(recog), colGreen, colDarkGreen)

		c.label(fmt.Sprintf("%.1f", base), baseX+barW/2, yPix(base)-8, 0.5, 1, boldFace(17), colInk)
		c.label(fmt.Sprintf("%.1f", recog), recogX+barW/2, yPix(recog)-8, 0.5, 1, boldFace(17), colDarkGreen)

		deltaInk := colFaint
		if delta > 2 {
			deltaInk = colDarkRed
		} else if math.Abs(delta) > 2 {
			deltaInk = colBlue
		}
		c.label(fmt.Sprintf("%+.1f", delta), recogX+barW+10, yPix(recog)+24, 0, 0.5, boldFace(17), deltaInk)

		c.label(p.name, center, plotBottom+16, 0.5, 0, face(19), colEdge)
	}

	// Y axis with score ticks.
	c.SetColor(colEdge)
	c.SetLineWidth(1.5)
	c.DrawLine(plotLeft-20, plotTop, plotLeft-20, plotBottom)
	c.DrawLine(plotLeft-20, plotBottom, plotRight, plotBottom)
	c.Stroke()
	for v := yMin; v <= yMax; v += 5 {
		c.DrawLine(plotLeft-28, yPix(v), plotLeft-20, yPix(v))
		c.Stroke()
		c.label(fmt.Sprintf("%.0f", v), plotLeft-36, yPix(v), 1, 0.5, face(16), colEdge)
	}
	c.label("Mean Score", 40, (plotTop+plotBottom)/2, 0.5, 0.5, face(19), colEdge)

	// Legend.
	c.hbar(plotLeft, 95, 34, 22, colGray, hex(0x7F8C8D))
	c.label("Base", plotLeft+44, 106, 0, 0.5, face(17), colEdge)
	c.hbar(plotLeft+140, 95, 34, 22, colGreen, colDarkGreen)
	c.label("Recognition", plotLeft+184, 106, 0, 0.5, face(17), colEdge)

	c.wrapped("Advocate persona shows largest recognition effect; adversary shows zero effect due to over-deference.",
		675, 770, 1200, italicFace(15), colFaint)

	return c.SavePNG(path)
}
