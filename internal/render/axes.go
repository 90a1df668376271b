package render

import (
	"image/color"

	"golang.org/x/image/font"
)

// axes maps data coordinates with a bottom-left origin onto a canvas
// region, so the diagram renderers can keep their layout constants in the
// same coordinate frame the figures were designed in.
type axes struct {
	c     *canvas
	unit  float64 // pixels per data unit
	left  float64 // pixel offset of data x=0
	base  float64 // pixel y of data y=0
}

func newAxes(c *canvas, unit, left, base float64) *axes {
	return &axes{c: c, unit: unit, left: left, base: base}
}

func (a *axes) px(x float64) float64 { return a.left + x*a.unit }
func (a *axes) py(y float64) float64 { return a.base - y*a.unit }

// box draws a rounded box whose (x, y) is its bottom-left corner, like a
// matplotlib patch.
func (a *axes) box(x, y, w, h float64, text string, f font.Face, fill, edge, ink color.Color) {
	a.c.roundedBox(a.px(x), a.py(y+h), w*a.unit, h*a.unit, text, f, fill, edge, ink)
}

func (a *axes) arrow(x1, y1, x2, y2 float64, col color.Color, lw float64) {
	a.c.arrow(a.px(x1), a.py(y1), a.px(x2), a.py(y2), col, lw)
}

func (a *axes) curvedArrow(x1, y1, cx, cy, x2, y2 float64, col color.Color, lw float64, dashed bool) {
	a.c.curvedArrow(a.px(x1), a.py(y1), a.px(cx), a.py(cy), a.px(x2), a.py(y2), col, lw, dashed)
}

func (a *axes) label(text string, x, y, ax, ay float64, f font.Face, ink color.Color) {
	a.c.label(text, a.px(x), a.py(y), ax, ay, f, ink)
}

func (a *axes) wrapped(text string, x, y, width float64, f font.Face, ink color.Color) {
	a.c.wrapped(text, a.px(x), a.py(y), width*a.unit, f, ink)
}
