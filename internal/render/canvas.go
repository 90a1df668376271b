package render

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// canvas wraps a gg context with the figure-drawing helpers the diagram
// and bar renderers share.
type canvas struct {
	*gg.Context
}

func newCanvas(w, h int) *canvas {
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()
	return &canvas{dc}
}

// roundedBox draws a filled, stroked rounded rectangle with centered,
// possibly multi-line text.
func (c *canvas) roundedBox(x, y, w, h float64, text string, f font.Face, fill, edge, ink color.Color) {
	c.DrawRoundedRectangle(x, y, w, h, 8)
	c.SetColor(fill)
	c.FillPreserve()
	c.SetColor(edge)
	c.SetLineWidth(2)
	c.Stroke()

	if text != "" {
		c.SetFontFace(f)
		c.SetColor(ink)
		c.DrawStringWrapped(text, x+w/2, y+h/2, 0.5, 0.5, w*0.95, 1.4, gg.AlignCenter)
	}
}

// arrow draws a straight arrow with a filled head at (x2, y2).
func (c *canvas) arrow(x1, y1, x2, y2 float64, col color.Color, lw float64) {
	c.SetColor(col)
	c.SetLineWidth(lw)
	c.DrawLine(x1, y1, x2, y2)
	c.Stroke()
	c.arrowHead(x1, y1, x2, y2, col, lw)
}

// curvedArrow draws a quadratic arc from (x1, y1) to (x2, y2) through a
// control point, with a head at the end. dashed selects a dashed stroke.
func (c *canvas) curvedArrow(x1, y1, cx, cy, x2, y2 float64, col color.Color, lw float64, dashed bool) {
	c.SetColor(col)
	c.SetLineWidth(lw)
	if dashed {
		c.SetDash(8, 6)
	}
	c.MoveTo(x1, y1)
	c.QuadraticTo(cx, cy, x2, y2)
	c.Stroke()
	if dashed {
		c.SetDash()
	}
	// Head direction follows the curve's final tangent.
	c.arrowHead(cx, cy, x2, y2, col, lw)
}

func (c *canvas) arrowHead(x1, y1, x2, y2 float64, col color.Color, lw float64) {
	angle := math.Atan2(y2-y1, x2-x1)
	size := 6 + 3*lw
	c.SetColor(col)
	c.MoveTo(x2, y2)
	c.LineTo(x2-size*math.Cos(angle-0.45), y2-size*math.Sin(angle-0.45))
	c.LineTo(x2-size*math.Cos(angle+0.45), y2-size*math.Sin(angle+0.45))
	c.ClosePath()
	c.Fill()
}

// label draws a single-line anchored string. ax/ay follow gg anchoring:
// 0 left/top, 0.5 center, 1 right/bottom.
func (c *canvas) label(text string, x, y, ax, ay float64, f font.Face, ink color.Color) {
	c.SetFontFace(f)
	c.SetColor(ink)
	c.DrawStringAnchored(text, x, y, ax, ay)
}

// wrapped draws centered multi-line text constrained to width.
func (c *canvas) wrapped(text string, x, y, width float64, f font.Face, ink color.Color) {
	c.SetFontFace(f)
	c.SetColor(ink)
	c.DrawStringWrapped(text, x, y, 0.5, 0.5, width, 1.4, gg.AlignCenter)
}

// hbar draws one horizontal bar with a stroked edge.
func (c *canvas) hbar(x, y, w, h float64, fill, edge color.Color) {
	c.DrawRectangle(x, y, w, h)
	c.SetColor(fill)
	c.FillPreserve()
	c.SetColor(edge)
	c.SetLineWidth(1.5)
	c.Stroke()
}
