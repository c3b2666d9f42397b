package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"phasor/internal/phasor"
	"phasor/pkg/core/config"
	"phasor/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "phasor",
	Short: "AC phasor converter",
	Long: `phasor converts a single complex quantity between rectangular
(x + jy) and polar/exponential (M∠θ / M·e^(jθ)) form and renders the
result as formatted expressions and a 2D vector plot.

Surfaces:
  convert  - One-shot conversion on the command line
  tui      - Interactive terminal form
  serve    - Browser form with live conversion`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration honoring the --config flag
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

// newLogger builds the application logger from configuration and the
// --verbose flag.
func newLogger(cfg *config.Config, name string) *logging.Logger {
	level := logging.ParseLevel(cfg.General.LogLevel)
	if verbose {
		level = logging.LevelDebug
	}
	return logging.NewWithConfig(logging.Config{
		Level:  level,
		Format: logging.ParseFormat(cfg.General.LogFormat),
		Name:   name,
	})
}

// displayOptions translates the configured display defaults into
// engine options.
func displayOptions(cfg *config.Config) phasor.Options {
	unit, err := phasor.ParseAngleUnit(cfg.Display.AngleUnit)
	if err != nil {
		unit = phasor.Degrees
	}
	return phasor.Options{
		Precision: cfg.Display.Precision,
		Unit:      unit,
		WrapAngle: cfg.Display.WrapAngle,
		ShowPlot:  cfg.Display.ShowPlot,
	}
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
