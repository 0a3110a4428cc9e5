package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/content-planner/internal/types"
)

func TestBriefContentRoundTrip(t *testing.T) {
	// This is a unit test that verifies the JSON content column logic;
	// integration tests verify database operations.
	brief := types.ContentBrief{
		ID:             uuid.New(),
		Title:          "Green Coffee Supplier",
		URLPath:        "/coffee/green-coffee-supplier",
		PageType:       types.PageCluster,
		ParentCluster:  "coffee",
		PrimaryKeyword: "green coffee supplier",
		Intent:         types.IntentTransactional,
		Cannibalization: types.Cannibalization{
			Risk:           types.RiskPossible,
			Recommendation: types.RecommendDifferentiate,
		},
		ScheduledFor: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Status:       types.StatusDraft,
	}

	content, err := json.Marshal(brief)
	require.NoError(t, err)

	var decoded types.ContentBrief
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, brief.ID, decoded.ID)
	assert.Equal(t, brief.PrimaryKeyword, decoded.PrimaryKeyword)
	assert.Equal(t, brief.Cannibalization.Risk, decoded.Cannibalization.Risk)
	assert.True(t, brief.ScheduledFor.Equal(decoded.ScheduledFor))
}

func TestRunStatusConstants(t *testing.T) {
	assert.Equal(t, "running", RunStatusRunning)
	assert.Equal(t, "completed", RunStatusCompleted)
	assert.Equal(t, "failed", RunStatusFailed)
}
