package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/content-planner/internal/types"
)

// SaveBrief stores one content brief for a planning run. The full brief
// is kept as JSON next to the queryable columns.
func (db *DB) SaveBrief(ctx context.Context, runID uuid.UUID, brief types.ContentBrief) error {
	content, err := json.Marshal(brief)
	if err != nil {
		return fmt.Errorf("failed to marshal brief: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO content_briefs
		   (id, run_id, title, url_path, page_type, parent_cluster, primary_keyword,
		    intent, cannibalization_risk, scheduled_for, status, content)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		brief.ID, runID, brief.Title, brief.URLPath, brief.PageType, brief.ParentCluster,
		brief.PrimaryKeyword, brief.Intent, brief.Cannibalization.Risk, brief.ScheduledFor,
		brief.Status, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save brief %q: %w", brief.Title, err)
	}
	return nil
}

// SaveBriefs persists a brief set one insert at a time. Writes are
// isolated: a failed brief is reported in its outcome and never blocks
// or rolls back its siblings.
func (db *DB) SaveBriefs(ctx context.Context, runID uuid.UUID, briefs []types.ContentBrief) []types.BriefOutcome {
	outcomes := make([]types.BriefOutcome, 0, len(briefs))
	for _, brief := range briefs {
		outcome := types.BriefOutcome{BriefID: brief.ID, Title: brief.Title, Stored: true}
		if err := db.SaveBrief(ctx, runID, brief); err != nil {
			outcome.Stored = false
			outcome.Error = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// ListBriefsByRun returns the full brief set of a run in scheduled order.
func (db *DB) ListBriefsByRun(ctx context.Context, runID uuid.UUID) ([]types.ContentBrief, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT content FROM content_briefs WHERE run_id = $1 ORDER BY scheduled_for, id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list briefs: %w", err)
	}
	defer rows.Close()

	briefs := []types.ContentBrief{}
	for rows.Next() {
		var content []byte
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("failed to scan brief: %w", err)
		}
		var brief types.ContentBrief
		if err := json.Unmarshal(content, &brief); err != nil {
			return nil, fmt.Errorf("failed to unmarshal brief: %w", err)
		}
		briefs = append(briefs, brief)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate briefs: %w", err)
	}
	return briefs, nil
}
