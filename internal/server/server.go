package server

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"phasor/internal/phasor"
	"phasor/pkg/core/health"
	"phasor/pkg/core/logging"
)

// Config holds server configuration
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Version      string

	// Defaults pre-fills the form controls and fills in fields a
	// request leaves out.
	Defaults phasor.Options
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         8080,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		Version:      "1.0.0",
		Defaults: phasor.Options{
			Precision: 3,
			Unit:      phasor.Degrees,
			WrapAngle: true,
			ShowPlot:  true,
		},
	}
}

// Server is the phasor web server
type Server struct {
	httpServer *http.Server
	handler    *Handler
	health     *health.Registry
	logger     *logging.Logger
	config     Config
}

// New creates a new web server
func New(cfg Config, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.New("server")
	}

	h := NewHandler(cfg.Defaults, logger)
	ws := NewWebSocketHandler(cfg.Defaults, logger)

	healthRegistry := health.NewRegistry("phasor", cfg.Version)
	healthRegistry.RegisterFunc("engine", func(ctx context.Context) health.CheckResult {
		// The engine is pure; a conversion that produces sensible
		// output means the process is able to serve.
		res := phasor.Convert(
			phasor.Request{Mode: phasor.PolarToRectangular, First: "1", Second: "0"},
			phasor.Options{Precision: 0, Unit: phasor.Degrees},
		)
		if res.RectText == "" {
			return health.CheckResult{Name: "engine", Status: health.StatusUnhealthy}
		}
		return health.CheckResult{Name: "engine", Status: health.StatusHealthy, Message: "conversion engine responding"}
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.handleIndex)
	mux.HandleFunc("/api/v1/convert", h.handleConvert)
	mux.HandleFunc("/api/v1/defaults", h.handleDefaults)
	mux.Handle("/api/v1/convert/ws", ws)
	mux.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthRegistry.CheckWithTimeout(5*time.Second))
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      loggingMiddleware(logger, mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		httpServer: httpServer,
		handler:    h,
		health:     healthRegistry,
		logger:     logger,
		config:     cfg,
	}
}

// loggingMiddleware adds request logging
func loggingMiddleware(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapper.statusCode,
			"duration", time.Since(start),
		)
	})
}

// responseWrapper wraps http.ResponseWriter to capture the status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWrapper) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack lets the websocket upgrade take over the connection even
// though the logging middleware wraps the response writer.
func (w *responseWrapper) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return h.Hijack()
}

// Start starts the server and blocks
func (s *Server) Start() error {
	s.logger.Info("Starting phasor web server",
		"host", s.config.Host,
		"port", s.config.Port,
	)
	return s.httpServer.ListenAndServe()
}

// StartAsync starts the server in the background
func (s *Server) StartAsync() {
	s.logger.Info("Starting phasor web server (async)",
		"host", s.config.Host,
		"port", s.config.Port,
	)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error", "error", err)
		}
	}()
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping phasor web server")
	return s.httpServer.Shutdown(ctx)
}

// Address returns the server address
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}
