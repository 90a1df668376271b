// Package pptx restyles the pandoc reference.pptx to the paper theme.
//
// A pptx is a zip of DrawingML XML parts. The restyle rewrites the theme
// color and font schemes and sets per-layout backgrounds and placeholder
// text defaults, leaving every other archive entry byte-identical.
package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// Geist palette, matching slides-header.tex.
const (
	ColorPrimary = "1B2838" // dark slate
	ColorAccent  = "D4872C" // warm amber
	ColorLight   = "F5F2EB" // warm off-white
	ColorMid     = "5C6B7A" // medium slate
	ColorText    = "2D3436" // near-black
	ColorWhite   = "FFFFFF"
	ColorGreen   = "27AE60"
	ColorRed     = "C0392B"

	FontHeading = "Helvetica Neue"
	FontBody    = "Helvetica Neue"
)

// themeColors maps color scheme slots to the palette.
var themeColors = map[string]string{
	"dk1":      ColorPrimary,
	"dk2":      ColorText,
	"lt1":      ColorWhite,
	"lt2":      ColorLight,
	"accent1":  ColorAccent,
	"accent2":  ColorMid,
	"accent3":  ColorGreen,
	"accent4":  ColorRed,
	"hlink":    ColorAccent,
	"folHlink": ColorMid,
}

// StyleReference restyles the presentation at path in place.
func StyleReference(path string, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("open %s as zip: %w", path, err)
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, f := range zr.File {
		content, err := readZipFile(f)
		if err != nil {
			return fmt.Errorf("read entry %s: %w", f.Name, err)
		}

		switch {
		case isPart(f.Name, "ppt/theme/"):
			content, err = restyleTheme(content)
		case isPart(f.Name, "ppt/slideLayouts/"):
			content, err = restyleLayout(content, log)
		case isPart(f.Name, "ppt/slideMasters/"):
			content, err = restyleMaster(content)
		}
		if err != nil {
			return fmt.Errorf("restyle %s: %w", f.Name, err)
		}

		header := f.FileHeader
		w, err := zw.CreateHeader(&header)
		if err != nil {
			return err
		}
		if _, err := w.Write(content); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, out.Bytes(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// isPart reports whether name is a styleable XML part under dir,
// excluding relationship files.
func isPart(name, dir string) bool {
	return strings.HasPrefix(name, dir) &&
		strings.HasSuffix(name, ".xml") &&
		!strings.Contains(name, "_rels")
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// restyleTheme rewrites the color scheme slots and both font scheme latin
// typefaces.
func restyleTheme(content []byte) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, err
	}

	for _, scheme := range doc.FindElements("//a:clrScheme") {
		for slot, val := range themeColors {
			el := scheme.SelectElement("a:" + slot)
			if el == nil {
				continue
			}
			for _, child := range el.ChildElements() {
				el.RemoveChild(child)
			}
			el.CreateElement("a:srgbClr").CreateAttr("val", val)
		}
	}

	for _, fontScheme := range doc.FindElements("//a:fontScheme") {
		for tag, typeface := range map[string]string{
			"a:majorFont": FontHeading,
			"a:minorFont": FontBody,
		} {
			fontEl := fontScheme.SelectElement(tag)
			if fontEl == nil {
				continue
			}
			if latin := fontEl.SelectElement("a:latin"); latin != nil {
				latin.CreateAttr("typeface", typeface)
			}
		}
	}

	return doc.WriteToBytes()
}

// layoutStyle is the background and placeholder treatment of one layout
// class.
type layoutStyle struct {
	background string
	titleSize  int // points
	titleColor string
	bodySize   int
	bodyColor  string
}

// classify picks the treatment by layout name, mirroring the deck's
// design: title and section slides go dark, content slides stay white.
func classify(name string) layoutStyle {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "title") && !strings.Contains(name, "content"):
		return layoutStyle{ColorPrimary, 36, ColorWhite, 18, ColorAccent}
	case strings.Contains(name, "section"):
		return layoutStyle{ColorPrimary, 32, ColorWhite, 0, ColorAccent}
	case strings.Contains(name, "two") && strings.Contains(name, "content"):
		return layoutStyle{ColorWhite, 28, ColorPrimary, 16, ColorText}
	case strings.Contains(name, "blank"):
		return layoutStyle{background: ColorWhite}
	default:
		return layoutStyle{ColorWhite, 28, ColorPrimary, 18, ColorText}
	}
}

func restyleLayout(content []byte, log *zap.Logger) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, err
	}
	cSld := doc.FindElement("//p:cSld")
	if cSld == nil {
		return content, nil
	}

	style := classify(cSld.SelectAttrValue("name", ""))
	log.Debug("restyling layout",
		zap.String("layout", cSld.SelectAttrValue("name", "")),
		zap.String("background", style.background))

	setBackground(cSld, style.background)

	for _, sp := range doc.FindElements("//p:sp") {
		ph := sp.FindElement("./p:nvSpPr/p:nvPr/p:ph")
		if ph == nil {
			continue
		}
		switch ph.SelectAttrValue("type", "body") {
		case "title", "ctrTitle":
			stylePlaceholder(sp, FontHeading, style.titleSize, style.titleColor, true)
		default:
			stylePlaceholder(sp, FontBody, style.bodySize, style.bodyColor, false)
		}
	}

	return doc.WriteToBytes()
}

func restyleMaster(content []byte) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, err
	}
	if cSld := doc.FindElement("//p:cSld"); cSld != nil {
		setBackground(cSld, ColorWhite)
	}
	return doc.WriteToBytes()
}

// setBackground replaces any existing background with a solid fill. The
// p:bg element must be the first child of p:cSld.
func setBackground(cSld *etree.Element, colorHex string) {
	if old := cSld.SelectElement("p:bg"); old != nil {
		cSld.RemoveChild(old)
	}
	bg := etree.NewElement("p:bg")
	bgPr := bg.CreateElement("p:bgPr")
	bgPr.CreateElement("a:solidFill").CreateElement("a:srgbClr").CreateAttr("val", colorHex)
	bgPr.CreateElement("a:effectLst")
	cSld.InsertChildAt(0, bg)
}

// stylePlaceholder sets the default run properties on every list-style
// level of a placeholder's text body, so text added later inherits the
// theme.
func stylePlaceholder(sp *etree.Element, typeface string, sizePt int, colorHex string, bold bool) {
	txBody := sp.SelectElement("p:txBody")
	if txBody == nil {
		return
	}

	lst := txBody.SelectElement("a:lstStyle")
	if lst == nil {
		lst = etree.NewElement("a:lstStyle")
		// lstStyle belongs after bodyPr.
		idx := 0
		if bodyPr := txBody.SelectElement("a:bodyPr"); bodyPr != nil {
			idx = bodyPr.Index() + 1
		}
		txBody.InsertChildAt(idx, lst)
	}

	levels := lst.ChildElements()
	if len(levels) == 0 {
		levels = []*etree.Element{lst.CreateElement("a:lvl1pPr")}
	}
	for _, level := range levels {
		defRPr := level.SelectElement("a:defRPr")
		if defRPr == nil {
			defRPr = level.CreateElement("a:defRPr")
		}
		if sizePt > 0 {
			defRPr.CreateAttr("sz", strconv.Itoa(sizePt*100))
		}
		if bold {
			defRPr.CreateAttr("b", "1")
		}
		if colorHex != "" {
			if fill := defRPr.SelectElement("a:solidFill"); fill != nil {
				defRPr.RemoveChild(fill)
			}
			defRPr.CreateElement("a:solidFill").CreateElement("a:srgbClr").CreateAttr("val", colorHex)
		}
		latin := defRPr.SelectElement("a:latin")
		if latin == nil {
			latin = defRPr.CreateElement("a:latin")
		}
		latin.CreateAttr("typeface", typeface)
	}
}

// ReferenceName is the conventional template file pandoc consumes.
const ReferenceName = "reference.pptx"

// DefaultPath resolves the template path relative to dir.
func DefaultPath(dir string) string {
	return filepath.Join(dir, ReferenceName)
}
