// Package render draws the paper figures. Each renderer is a pure function
// from resolved numbers plus fixed layout constants to a PNG at a fixed
// output path; renderers share nothing but the output directory.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"geistfig/internal/config"
	"geistfig/internal/effects"
	"geistfig/internal/manifest"
	"geistfig/internal/store"
)

// Context carries the process-wide collaborators into the renderers.
// Constructed once at startup.
type Context struct {
	Cfg      *config.Config
	Log      *zap.Logger
	Store    *store.Store
	Resolver *effects.Resolver

	// Manifest gives the word-cloud renderer its run IDs and judge
	// filter; HaveManifest is the loader's availability sentinel.
	Manifest     manifest.Manifest
	HaveManifest bool
}

// lookupEntry fetches a figure's manifest entry, honoring the sentinel.
func lookupEntry(ctx *Context, figureID string) (manifest.Entry, bool) {
	if !ctx.HaveManifest {
		return manifest.Entry{}, false
	}
	return ctx.Manifest.Lookup(figureID)
}

// Figure is one renderable chart.
type Figure struct {
	File   string // output file name, e.g. "figure3.png"
	Render func(ctx *Context, path string) error
}

// All returns the figures in publication order. Ordering affects only the
// console progress lines.
func All() []Figure {
	return []Figure{
		{File: "figure1.png", Render: renderArchitecture},
		{File: "figure2.png", Render: renderResponseFlow},
		{File: "figure3.png", Render: renderDecomposition},
		{File: "figure4.png", Render: renderSynergy},
		{File: "figure5.png", Render: renderDomainEffects},
		{File: "figure6.png", Render: renderWordClouds},
		{File: "figure7.png", Render: renderPersona},
		{File: "figure8.png", Render: renderMechanismSpread},
		{File: "figure9.png", Render: renderTagDivergence},
	}
}

// skipError marks a figure intentionally not rendered this run: an
// optional input (font, transcript text) is absent. The run continues.
type skipError struct {
	reason string
}

func (e *skipError) Error() string { return e.reason }

// Skip builds the error renderers return when an optional input is absent.
func Skip(reason string) error { return &skipError{reason: reason} }

var (
	doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	skipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Run regenerates every figure into ctx.Cfg.OutputDir. Skips are reported
// and survived; any other renderer error terminates the run.
func Run(ctx *Context) error {
	out := ctx.Cfg.OutputDir
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fmt.Println("Generating paper figures...")
	for _, fig := range All() {
		path := filepath.Join(out, fig.File)
		err := fig.Render(ctx, path)
		if skip, ok := err.(*skipError); ok {
			fmt.Printf("  %s %s\n", fig.File, skipStyle.Render("SKIPPED ("+skip.reason+")"))
			ctx.Log.Info("figure skipped",
				zap.String("figure", fig.File),
				zap.String("reason", skip.reason))
			continue
		}
		if err != nil {
			return fmt.Errorf("render %s: %w", fig.File, err)
		}
		fmt.Printf("  %s\n", doneStyle.Render(fig.File))
	}

	abs, err := filepath.Abs(out)
	if err != nil {
		abs = out
	}
	fmt.Printf("Done. Output: %s/\n", abs)
	return nil
}
