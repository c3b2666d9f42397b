package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"phasor/internal/phasor"
	"phasor/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal form",
	Long: `Starts the terminal form host: text fields for the two inputs,
selectors for mode, angle unit and precision, toggles for angle
wrapping and the plot. The conversion runs on every change.

Navigation:
  Tab       - Next field
  ←/→       - Change selector value
  Space     - Toggle
  Esc       - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}

	p := tea.NewProgram(
		tui.NewModel(tui.Config{
			Mode:    phasor.PolarToRectangular,
			Options: displayOptions(cfg),
		}),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		return err
	}

	return nil
}
