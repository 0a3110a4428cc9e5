package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/content-planner/internal/config"
	"github.com/jonathan/content-planner/internal/server"
)

var (
	servePort            int
	serveNamingRules     string
	serveLocationMarkers []string
	serveTone            string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running planning batches and reading stored runs.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveNamingRules, "naming-rules", "", "Path to YAML naming-rules table")
	serveCmd.Flags().StringSliceVar(&serveLocationMarkers, "location-markers", nil, "Place-name terms for local-intent detection (comma-separated)")
	serveCmd.Flags().StringVar(&serveTone, "tone", "", "Default tone stamped on every brief")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Database URL is optional: without it the server plans degraded
	// and run lookups answer 503
	databaseURL := os.Getenv("DATABASE_URL")

	namingRules, err := config.LoadNamingRules(serveNamingRules)
	if err != nil {
		return err
	}

	cfg := server.Config{
		Port:            servePort,
		DatabaseURL:     databaseURL,
		NamingRules:     namingRules,
		LocationMarkers: serveLocationMarkers,
		Tone:            serveTone,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
