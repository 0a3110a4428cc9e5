package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PlanRequest describes one planning batch: which site, how many briefs,
// and which clusters (if any) to restrict the batch to.
type PlanRequest struct {
	SiteID        uuid.UUID        `json:"site_id"`
	Count         int              `json:"count" validate:"required,min=1,max=200"`
	Clusters      []string         `json:"clusters,omitempty"`
	IncludePillar bool             `json:"include_pillar,omitempty"`
	HorizonDays   int              `json:"horizon_days,omitempty" validate:"omitempty,min=1,max=365"`
	DryRun        bool             `json:"dry_run,omitempty"`
	Candidates    []TopicCandidate `json:"candidates" validate:"required,min=1,dive"`
}

// Validate validates the PlanRequest using the validator.
func (r *PlanRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// RunSummary aggregates one planning run for downstream consumers.
type RunSummary struct {
	Total        int            `json:"total"`
	ByIntent     map[Intent]int `json:"by_intent"`
	ByRisk       map[Risk]int   `json:"by_risk"`
	PillarCount  int            `json:"pillar_count"`
	FlaggedCount int            `json:"flagged_count"` // briefs emitted with a non-unique fallback keyword
	Skipped      int            `json:"skipped"`       // malformed candidates dropped with a warning
	Degraded     bool           `json:"degraded"`      // context fetch failed; empty indices substituted
	DegradedWhy  string         `json:"degraded_reason,omitempty"`
}

// BriefOutcome reports the persistence attempt for a single brief.
// Writes are isolated per brief: one failure never rolls back siblings.
type BriefOutcome struct {
	BriefID uuid.UUID `json:"brief_id"`
	Title   string    `json:"title"`
	Stored  bool      `json:"stored"`
	Error   string    `json:"error,omitempty"`
}

// PlanResult is the full output of a planning run: the ordered brief
// set, the run summary, and (when persistence ran) per-brief outcomes.
// The brief set is always returned, even if zero briefs were stored.
type PlanResult struct {
	RunID    uuid.UUID      `json:"run_id,omitempty"`
	Briefs   []ContentBrief `json:"briefs"`
	Summary  RunSummary     `json:"summary"`
	Outcomes []BriefOutcome `json:"outcomes,omitempty"`
}

// NewRunSummary returns a summary with count maps initialized so that
// callers can increment buckets without nil checks.
func NewRunSummary() RunSummary {
	return RunSummary{
		ByIntent: make(map[Intent]int),
		ByRisk:   make(map[Risk]int),
	}
}
