package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"geistfig/internal/effects"
	"geistfig/internal/manifest"
	"geistfig/internal/render"
	"geistfig/internal/store"
)

// figuresCmd regenerates every paper figure. It is also the root command's
// default action.
var figuresCmd = &cobra.Command{
	Use:   "figures",
	Short: "Regenerate all paper figures",
	Long: `Regenerates figures 1 through 9 into the output directory.

Data-driven figures consult the figure manifest for the run IDs behind
each chart and aggregate scores from the evaluation database. Any figure
whose data is unavailable falls back to the published values; the source
of each figure is logged.`,
	Args: cobra.NoArgs,
	RunE: runFigures,
}

func runFigures(cmd *cobra.Command, args []string) error {
	man, haveMan := manifest.Load(cfg.ManifestPath)
	if !haveMan {
		logger.Info("no figure manifest, using published values",
			zap.String("path", cfg.ManifestPath))
	}

	db := store.Open(cfg.DatabasePath, logger)
	defer db.Close()

	ctx := &render.Context{
		Cfg:          cfg,
		Log:          logger,
		Store:        db,
		Resolver:     effects.NewResolver(man, haveMan, db, logger),
		Manifest:     man,
		HaveManifest: haveMan,
	}
	return render.Run(ctx)
}
