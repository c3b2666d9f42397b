package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"phasor/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("phasor v%s\n", version.App)
		fmt.Printf("  Core:       %s\n", version.Core)
		fmt.Printf("  TUI:        %s\n", version.TUI)
		fmt.Printf("  Server:     %s\n", version.Server)
		fmt.Printf("  Go Version: %s\n", runtime.Version())
		fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
