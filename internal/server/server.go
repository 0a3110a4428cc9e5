package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/content-planner/internal/db"
	"github.com/jonathan/content-planner/internal/pipeline"
	"github.com/jonathan/content-planner/internal/refine"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	db         *db.DB
	planner    *pipeline.Planner
	cfg        Config
}

// Config holds server configuration
type Config struct {
	Port            int
	DatabaseURL     string
	NamingRules     []refine.NamingRule
	LocationMarkers []string
	Tone            string
}

// New creates a new server instance. An empty DatabaseURL starts the
// server without persistence: plans run degraded and run lookups
// return 503.
func New(cfg Config) (*Server, error) {
	s := &Server{cfg: cfg}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database
		s.planner = pipeline.New(database, database)
	} else {
		log.Printf("Warning: no database configured; running without persistence")
		s.planner = pipeline.New(nil, nil)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /plan", s.handlePlan)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /runs/{id}", s.handleGetRun)
	mux.HandleFunc("GET /runs/{id}/briefs", s.handleListRunBriefs)

	s.httpServer = &http.Server{
		Addr:              net.JoinHostPort("", fmt.Sprintf("%d", cfg.Port)),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Content planner API listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		log.Printf("Received signal %v, shutting down...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	if s.db != nil {
		s.db.Close()
	}
	return nil
}
