package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/content-planner/internal/config"
	"github.com/jonathan/content-planner/internal/db"
	"github.com/jonathan/content-planner/internal/observability"
	"github.com/jonathan/content-planner/internal/pipeline"
	"github.com/jonathan/content-planner/internal/schedule"
	"github.com/jonathan/content-planner/internal/types"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a batch of content briefs from candidate topics",
	Long: `Runs the full planning pipeline: context fetch -> candidate filtering -> keyword allocation -> intent classification -> cannibalization detection -> link planning -> pillar synthesis -> scheduling -> persistence.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPlanCmd,
}

var (
	planConfigPath      string
	planCandidatesPath  string
	planSiteID          string
	planCount           int
	planClusters        []string
	planIncludePillar   bool
	planHorizonDays     int
	planNamingRules     string
	planLocationMarkers []string
	planTone            string
	planDryRun          bool
	planVerbose         bool
	planDatabaseURL     string
)

func init() {
	// Config file flag (processed first)
	planCmd.Flags().StringVar(&planConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	planCmd.Flags().StringVarP(&planCandidatesPath, "candidates", "i", "", "Path to candidate topics JSON file (required)")
	planCmd.Flags().StringVarP(&planSiteID, "site-id", "s", "", "Site ID whose inventory the run plans against")
	planCmd.Flags().IntVarP(&planCount, "count", "n", 0, "Number of briefs to plan")
	planCmd.Flags().StringSliceVar(&planClusters, "clusters", nil, "Restrict planning to these clusters (comma-separated)")
	planCmd.Flags().BoolVar(&planIncludePillar, "include-pillar", false, "Emit one pillar brief per cluster in the batch")
	planCmd.Flags().IntVar(&planHorizonDays, "horizon-days", 0, "Scheduling window in days (default 7)")
	planCmd.Flags().StringVar(&planNamingRules, "naming-rules", "", "Path to YAML naming-rules table")
	planCmd.Flags().StringSliceVar(&planLocationMarkers, "location-markers", nil, "Place-name terms for local-intent detection (comma-separated)")
	planCmd.Flags().StringVar(&planTone, "tone", "", "Default tone stamped on every brief")
	planCmd.Flags().BoolVar(&planDryRun, "dry-run", false, "Compute the brief set without persisting it")
	planCmd.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for run persistence
	planCmd.Flags().StringVar(&planDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	if err := planCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}

	rootCmd.AddCommand(planCmd)
}

// candidatesFile is the on-disk shape of a candidate topics file.
type candidatesFile struct {
	Candidates []types.TopicCandidate `json:"candidates"`
}

// loadCandidates reads and parses a candidate topics JSON file.
func loadCandidates(path string) ([]types.TopicCandidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}

	var file candidatesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse candidates JSON: %w", err)
	}
	if len(file.Candidates) == 0 {
		return nil, fmt.Errorf("candidates file %s contains no candidates", path)
	}

	return file.Candidates, nil
}

func runPlanCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if planConfigPath != "" {
		loadedCfg, err := config.LoadConfig(planConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if planVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", planConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("site-id") {
		cfg.SiteID = planSiteID
	}
	if cmd.Flags().Changed("count") {
		cfg.Count = planCount
	}
	if cmd.Flags().Changed("clusters") {
		cfg.Clusters = planClusters
	}
	if cmd.Flags().Changed("include-pillar") {
		cfg.IncludePillar = planIncludePillar
	}
	if cmd.Flags().Changed("horizon-days") {
		cfg.HorizonDays = planHorizonDays
	}
	if cmd.Flags().Changed("naming-rules") {
		cfg.NamingRules = planNamingRules
	}
	if cmd.Flags().Changed("location-markers") {
		cfg.LocationMarkers = planLocationMarkers
	}
	if cmd.Flags().Changed("tone") {
		cfg.Tone = planTone
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = planVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = planDatabaseURL
	}

	// Step 3: Validate merged values
	if cfg.Count <= 0 {
		return fmt.Errorf("count must be greater than 0, got %d (set --count or 'count' in config)", cfg.Count)
	}

	// Step 4: Load inputs
	candidates, err := loadCandidates(planCandidatesPath)
	if err != nil {
		return err
	}

	namingRules, err := config.LoadNamingRules(cfg.NamingRules)
	if err != nil {
		return err
	}

	// Step 5: Database URL handling (optional; planning degrades without it)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	planner := pipeline.New(nil, nil)
	if cfg.DatabaseURL != "" {
		if cfg.SiteID == "" {
			return fmt.Errorf("--site-id is required when a database is configured")
		}
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		planner = pipeline.New(database, database)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: no database configured; running without site context or persistence\n")
	}

	var siteID uuid.UUID
	if cfg.SiteID != "" {
		siteID, err = uuid.Parse(cfg.SiteID)
		if err != nil {
			return fmt.Errorf("invalid site-id: %w", err)
		}
	}

	horizon := schedule.DefaultHorizon
	if cfg.HorizonDays > 0 {
		horizon = time.Duration(cfg.HorizonDays) * 24 * time.Hour
	}

	// Step 6: Run the pipeline
	result, err := planner.Run(ctx, pipeline.RunOptions{
		SiteID:          siteID,
		Count:           cfg.Count,
		Clusters:        cfg.Clusters,
		IncludePillar:   cfg.IncludePillar,
		Horizon:         horizon,
		Candidates:      candidates,
		NamingRules:     namingRules,
		LocationMarkers: cfg.LocationMarkers,
		Tone:            cfg.Tone,
		Verbose:         cfg.Verbose,
		DryRun:          planDryRun,
	})
	if err != nil {
		return fmt.Errorf("planning run failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		for i := range result.Briefs {
			printer.PrintBrief(&result.Briefs[i])
		}
	}
	printer.PrintSummary(&result.Summary)

	return nil
}
