package render

import (
	"fmt"
	"image/color"
)

// Figure 3: stacked horizontal bar decomposing the total improvement into
// the prompt-engineering share and the recognition-unique share.
func renderDecomposition(ctx *Context, path string) error {
	res := ctx.Resolver.ResolveCells("figure3")
	promptEng := res.Cells["prompt_engineering"]
	recogUnique := res.Cells["recognition_unique"]
	total := promptEng + recogUnique
	if total == 0 {
		return Skip("no decomposition data")
	}
	promptPct := promptEng / total * 100
	recogPct := recogUnique / total * 100

	c := newCanvas(1500, 600)

	c.wrapped("Figure 3: Recognition Effect Decomposition\n(Base → Enhanced → Recognition)",
		750, 60, 1400, boldFace(23), colEdge)

	// Bar area: x axis spans 0..26 points.
	const (
		plotLeft  = 100.0
		plotRight = 1400.0
		barY      = 250.0
		barH      = 110.0
		xMax      = 26.0
	)
	scale := (plotRight - plotLeft) / xMax

	promptW := promptEng * scale
	recogW := recogUnique * scale

	c.hbar(plotLeft, barY, promptW, barH, colPaleBlue, colBlue)
	c.hbar(plotLeft+promptW, barY, recogW, barH, colLightGreen, colDarkGreen)

	c.wrapped(fmt.Sprintf("+%.1f pts\n(%.0f%%)", promptEng, promptPct),
		plotLeft+promptW/2, barY+barH/2, promptW, boldFace(20), hex(0x1A5276))
	c.wrapped(fmt.Sprintf("+%.1f pts\n(%.0f%%)", recogUnique, recogPct),
		plotLeft+promptW+recogW/2, barY+barH/2, recogW, boldFace(20), hex(0x145A32))
	c.label(fmt.Sprintf("Total: +%.1f pts", total),
		plotLeft+promptW+recogW+15, barY+barH/2, 0, 0.5, boldFace(20), colEdge)

	// Legend, top right.
	legend := []struct {
		text string
		fill color.Color
	}{
		{fmt.Sprintf("Prompt Engineering: +%.1f pts (%.0f%%)", promptEng, promptPct), colPaleBlue},
		{fmt.Sprintf("Recognition Unique: +%.1f pts (%.0f%%)", recogUnique, recogPct), colLightGreen},
	}
	ly := 130.0
	for _, item := range legend {
		c.hbar(980, ly, 34, 22, item.fill, colEdge)
		c.label(item.text, 1024, ly+11, 0, 0.5, face(17), colEdge)
		ly += 36
	}

	// X axis with point ticks.
	axisY := barY + barH + 60
	c.SetColor(colEdge)
	c.SetLineWidth(1.5)
	c.DrawLine(plotLeft, axisY, plotRight, axisY)
	c.Stroke()
	for x := 0.0; x <= xMax; x += 5 {
		px := plotLeft + x*scale
		c.DrawLine(px, axisY, px, axisY+8)
		c.Stroke()
		c.label(fmt.Sprintf("%.0f", x), px, axisY+14, 0.5, 0, face(16), colEdge)
	}
	c.label("Score Improvement (points)", (plotLeft+plotRight)/2, axisY+58, 0.5, 0.5, face(19), colEdge)

	return c.SavePNG(path)
}
