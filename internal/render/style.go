package render

import (
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Palette shared across figures, matching the paper's matplotlib styling.
var (
	colGreen      = hex(0x27AE60)
	colDarkGreen  = hex(0x1E8449)
	colPaleGreen  = hex(0xD5F5E3)
	colLightGreen = hex(0x82E0AA)
	colBlue       = hex(0x2471A3)
	colSteelBlue  = hex(0x2980B9)
	colSkyBlue    = hex(0x5DADE2)
	colPaleBlue   = hex(0x85C1E9)
	colIceBlue    = hex(0xEBF5FB)
	colMemBlue    = hex(0xD4E6F1)
	colRed        = hex(0xE74C3C)
	colDarkRed    = hex(0xC0392B)
	colPaleRed    = hex(0xFADBD8)
	colOrange     = hex(0xF39C12)
	colTan        = hex(0xF0B27A)
	colBrown      = hex(0xCA6F1E)
	colPurple     = hex(0x7D3C98)
	colLavender   = hex(0xD7BDE2)
	colYellow     = hex(0xF9E79F)
	colMint       = hex(0xABEBC6)
	colGray       = hex(0x95A5A6)
	colSlate      = hex(0x5D6D7E)
	colSilver     = hex(0xD5D8DC)
	colEdge       = hex(0x333333)
	colInk        = hex(0x555555)
	colFaint      = hex(0x777777)
	colPaper      = hex(0xF5F5F5)
	colCloud      = hex(0xE8E8E8)
)

func hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

// draw converts a palette color into go-chart's color type.
func draw(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

var (
	fontOnce    sync.Once
	fontRegular *truetype.Font
	fontBold    *truetype.Font
	fontItalic  *truetype.Font
)

func parseFonts() {
	// The bundled Go fonts cannot fail to parse.
	fontRegular, _ = truetype.Parse(goregular.TTF)
	fontBold, _ = truetype.Parse(gobold.TTF)
	fontItalic, _ = truetype.Parse(goitalic.TTF)
}

// face returns a regular font face at the given pixel size.
func face(size float64) font.Face {
	fontOnce.Do(parseFonts)
	return truetype.NewFace(fontRegular, &truetype.Options{Size: size})
}

// boldFace returns a bold font face at the given pixel size.
func boldFace(size float64) font.Face {
	fontOnce.Do(parseFonts)
	return truetype.NewFace(fontBold, &truetype.Options{Size: size})
}

// italicFace returns an italic font face at the given pixel size.
func italicFace(size float64) font.Face {
	fontOnce.Do(parseFonts)
	return truetype.NewFace(fontItalic, &truetype.Options{Size: size})
}
