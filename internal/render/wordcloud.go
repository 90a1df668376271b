package render

import (
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/psykhi/wordclouds"

	"geistfig/internal/wordfreq"
)

// Figure 6: word clouds of tutor language, base vs. recognition. Text
// comes from the factorial transcripts in the store; a checkout without
// the database falls back to the discovery-analysis theme exports; with
// neither, or without the configured cloud font, the figure is skipped.
func renderWordClouds(ctx *Context, path string) error {
	fontPath := ctx.Cfg.WordcloudFont
	if _, err := os.Stat(fontPath); err != nil {
		return Skip("wordcloud font not found: " + fontPath)
	}

	baseFreq, recogFreq := transcriptFrequencies(ctx)
	if len(baseFreq) == 0 || len(recogFreq) == 0 {
		var ok bool
		baseFreq, recogFreq, ok = wordfreq.LoadThemeFrequencies(ctx.Cfg.ExportsDir)
		if !ok {
			return Skip("no transcript text or theme exports")
		}
	}

	baseCloud := cloudImage(baseFreq, fontPath, []color.Color{colDarkRed, colRed, colOrange, colBrown})
	recogCloud := cloudImage(recogFreq, fontPath, []color.Color{colDarkGreen, colGreen, colLightGreen})

	c := newCanvas(2400, 1050)
	c.label("Figure 6: Tutor Language Word Clouds (Factorial)", 1200, 45, 0.5, 0.5, boldFace(26), colEdge)
	c.label("Base Condition", 600, 110, 0.5, 0.5, boldFace(24), colEdge)
	c.label("Recognition Condition", 1800, 110, 0.5, 0.5, boldFace(24), colEdge)
	c.DrawImage(baseCloud, 0, 150)
	c.DrawImage(recogCloud, 1200, 150)

	return c.SavePNG(path)
}

// transcriptFrequencies splits suggestion text by condition and counts
// words. Profiles containing "recog" are the recognition condition.
func transcriptFrequencies(ctx *Context) (base, recog map[string]int) {
	entry, ok := lookupEntry(ctx, "figure6")
	if !ok {
		return nil, nil
	}

	var baseTexts, recogTexts []string
	for _, pt := range ctx.Store.SuggestionTexts(entry.RunIDs, entry.JudgeFilter) {
		if strings.Contains(pt.Profile, "recog") {
			recogTexts = append(recogTexts, pt.Text)
		} else {
			baseTexts = append(baseTexts, pt.Text)
		}
	}

	return wordfreq.Frequencies(strings.Join(baseTexts, " ")),
		wordfreq.Frequencies(strings.Join(recogTexts, " "))
}

func cloudImage(freq map[string]int, fontPath string, colors []color.Color) image.Image {
	cloud := wordclouds.NewWordcloud(freq,
		wordclouds.FontFile(fontPath),
		wordclouds.Width(1200),
		wordclouds.Height(900),
		wordclouds.FontMaxSize(160),
		wordclouds.FontMinSize(18),
		wordclouds.Colors(colors),
		wordclouds.BackgroundColor(color.White),
	)
	return cloud.Draw()
}
