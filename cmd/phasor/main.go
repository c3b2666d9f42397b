package main

import (
	"os"

	"phasor/cmd/phasor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
