package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"geistfig/internal/pptx"
)

// stylerefCmd restyles the pandoc slide template in place.
var stylerefCmd = &cobra.Command{
	Use:   "styleref [reference.pptx]",
	Short: "Apply the deck theme to a pandoc reference.pptx",
	Long: `Rewrites the theme colors, fonts, layout backgrounds and placeholder
text defaults of a pandoc reference presentation so slides built from it
match the paper's visual identity.

The file is modified in place. With no argument, reference.pptx in the
current directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := pptx.DefaultPath(".")
		if len(args) == 1 {
			path = args[0]
		}
		if err := pptx.StyleReference(path, logger); err != nil {
			return err
		}
		logger.Info("reference restyled", zap.String("path", path))
		return nil
	},
}
