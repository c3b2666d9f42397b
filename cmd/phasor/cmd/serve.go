package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"phasor/internal/server"
	"phasor/pkg/core/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the browser surface",
	Long: `Starts the web server hosting the browser form. The page
converts live over a websocket while typing and renders the vector
plot from server-generated SVG.

Endpoints:
  /                    - Form page
  /api/v1/convert      - JSON conversion API
  /api/v1/convert/ws   - Live conversion websocket
  /api/v1/health       - Health report`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}

	logger := newLogger(cfg, "server")

	srv := server.New(server.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
		Version:      version.Server,
		Defaults:     displayOptions(cfg),
	}, logger)

	srv.StartAsync()
	logger.Info("Serving", "address", srv.Address())

	// Block until interrupted, then drain connections.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(ctx)
}
