package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"phasor/internal/phasor"
	"phasor/internal/tui"
)

var (
	convertMode      string
	convertUnit      string
	convertPrecision int
	convertWrap      bool
	convertPlot      bool
)

var convertCmd = &cobra.Command{
	Use:   "convert FIRST SECOND",
	Short: "Convert a single phasor on the command line",
	Long: `Converts one phasor and prints the rendered forms.

The two arguments are raw field values whose meaning depends on the
mode: magnitude and angle for p2r, real and imaginary part for r2p.
Unparseable values fall back to 0 with a warning, matching the
interactive surfaces.

Examples:
  phasor convert 5.0 30.0
  phasor convert --mode r2p 4.33 2.5
  phasor convert --unit rad --precision 4 1 0.5236`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertMode, "mode", "m", "p2r", "conversion mode (p2r or r2p)")
	convertCmd.Flags().StringVarP(&convertUnit, "unit", "u", "", "angle unit (degrees or radians)")
	convertCmd.Flags().IntVarP(&convertPrecision, "precision", "p", -1, "decimal places, 0-6")
	convertCmd.Flags().BoolVarP(&convertWrap, "wrap", "w", false, "wrap the displayed angle to ±180° (or ±π)")
	convertCmd.Flags().BoolVar(&convertPlot, "plot", false, "print an ASCII vector plot")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}

	mode, err := phasor.ParseMode(convertMode)
	if err != nil {
		return err
	}

	opts := displayOptions(cfg)
	if convertUnit != "" {
		unit, err := phasor.ParseAngleUnit(convertUnit)
		if err != nil {
			return err
		}
		opts.Unit = unit
	}
	if convertPrecision >= 0 {
		opts.Precision = convertPrecision
	}
	if cmd.Flags().Changed("wrap") {
		opts.WrapAngle = convertWrap
	}
	opts.ShowPlot = convertPlot

	result := phasor.Convert(
		phasor.Request{Mode: mode, First: args[0], Second: args[1]},
		opts,
	)

	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}

	fmt.Println(result.RectText)
	fmt.Println(result.ArrowText)
	fmt.Println(result.ExpText)

	s := result.Summary
	fmt.Printf("\nreal=%g imag=%g magnitude=%g angle=%g (%s)\n",
		s.Real, s.Imag, s.Magnitude, s.Angle, result.Unit)

	if result.Plot != nil {
		fmt.Println()
		fmt.Println(result.Plot.Label)
		fmt.Println(tui.RenderCanvas(*result.Plot, 60, 21))
	}

	return nil
}
