package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/content-planner/internal/types"
)

// Run represents a planning run record
type Run struct {
	ID          uuid.UUID         `json:"id"`
	SiteID      uuid.UUID         `json:"site_id"`
	Status      string            `json:"status"`
	Summary     *types.RunSummary `json:"summary,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}

// Run status constants
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)
