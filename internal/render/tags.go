package render

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Figure 9: diverging bars of qualitative tag frequency differences,
// recognition minus base, from the bilateral run assessment.
func renderTagDivergence(ctx *Context, path string) error {
	cells := ctx.Resolver.ResolveCells("figure9").Cells

	type tagDiff struct {
		tag  string
		diff float64
	}
	var diffs []tagDiff
	for key, basePct := range cells {
		tag, ok := strings.CutSuffix(key, "/base")
		if !ok {
			continue
		}
		recogPct, ok := cells[tag+"/recog"]
		if !ok {
			continue
		}
		diffs = append(diffs, tagDiff{tag: tag, diff: recogPct - basePct})
	}
	if len(diffs) == 0 {
		return Skip("no tag data")
	}
	sort.Slice(diffs, func(i, j int) bool {
		if diffs[i].diff != diffs[j].diff {
			return diffs[i].diff < diffs[j].diff
		}
		return diffs[i].tag < diffs[j].tag
	})

	c := newCanvas(1500, 825)
	c.wrapped("Figure 9: Qualitative Tag Divergence\n(Bilateral Run, N=118, Base vs Recognition)",
		750, 60, 1400, boldFace(22), colEdge)

	const (
		plotLeft   = 380.0
		plotRight  = 1420.0
		plotTop    = 130.0
		plotBottom = 700.0
		xMin       = -60.0
		xMax       = 60.0
	)
	scale := (plotRight - plotLeft) / (xMax - xMin)
	zeroX := plotLeft + (0-xMin)*scale

	rowH := (plotBottom - plotTop) / float64(len(diffs))
	barH := rowH * 0.68

	for i, d := range diffs {
		y := plotTop + float64(i)*rowH + (rowH-barH)/2

		fill, edge := colGreen, colEdge
		if d.diff < 0 {
			fill = colRed
		}
		c.hbar(math.Min(zeroX, zeroX+d.diff*scale), y, math.Abs(d.diff)*scale, barH, fill, edge)

		// Clean tag names: underscores to spaces, title case.
		name := titleCase(strings.ReplaceAll(d.tag, "_", " "))
		c.label(name, plotLeft-16, y+barH/2, 1, 0.5, face(17), colEdge)

		text := fmt.Sprintf("%+.0f%%", d.diff)
		if d.diff >= 0 {
			c.label(text, zeroX+d.diff*scale+10, y+barH/2, 0, 0.5, boldFace(15), colEdge)
		} else {
			c.label(text, zeroX+d.diff*scale-10, y+barH/2, 1, 0.5, boldFace(15), colEdge)
		}
	}

	// Zero line and axis.
	c.SetColor(colEdge)
	c.SetLineWidth(1)
	c.DrawLine(zeroX, plotTop-10, zeroX, plotBottom+10)
	c.Stroke()
	c.DrawLine(plotLeft, plotBottom+10, plotRight, plotBottom+10)
	c.Stroke()
	for v := xMin; v <= xMax; v += 20 {
		x := plotLeft + (v-xMin)*scale
		c.DrawLine(x, plotBottom+10, x, plotBottom+18)
		c.Stroke()
		c.label(fmt.Sprintf("%.0f", v), x, plotBottom+24, 0.5, 0, face(15), colEdge)
	}
	c.label("Percentage Point Difference (Recognition − Base)",
		(plotLeft+plotRight)/2, plotBottom+64, 0.5, 0.5, face(18), colEdge)

	return c.SavePNG(path)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
