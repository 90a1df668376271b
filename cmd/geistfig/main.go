package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"geistfig/internal/config"
	"geistfig/internal/logging"
)

var (
	// Global flags
	cfgPath   string
	verbose   bool
	outputDir string

	// Loaded once in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "geistfig",
	Short: "geistfig - regenerate the recognition-study paper artifacts",
	Long: `geistfig regenerates the figures of the recognition study and restyles
the slide template used to present it.

Figures are rebuilt from the evaluation database when the figure manifest
names the runs backing each chart. Without a manifest or database the
published point estimates are used instead, so a bare checkout still
produces the full set.

Run without arguments to regenerate all figures.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}

		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runFigures,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "geistfig.yaml", "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "out", "o", "", "override the figure output directory")

	rootCmd.AddCommand(figuresCmd)
	rootCmd.AddCommand(stylerefCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
