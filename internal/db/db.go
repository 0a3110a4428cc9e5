// Package db provides PostgreSQL database access for planning runs and
// content briefs.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/content-planner/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateRun creates a new planning run record and returns its ID
func (db *DB) CreateRun(ctx context.Context, siteID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO planning_runs (site_id, status)
		 VALUES ($1, 'running')
		 RETURNING id`,
		siteID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a planning run as finished and stores its summary
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string, summary types.RunSummary) error {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`UPDATE planning_runs SET status = $1, summary = $2, completed_at = NOW() WHERE id = $3`,
		status, summaryJSON, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// GetRun retrieves a planning run by ID. Returns nil when no row exists.
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	var summaryJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, site_id, status, summary, created_at, completed_at
		 FROM planning_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.SiteID, &run.Status, &summaryJSON, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	if len(summaryJSON) > 0 {
		if err := json.Unmarshal(summaryJSON, &run.Summary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run summary: %w", err)
		}
	}
	return &run, nil
}
