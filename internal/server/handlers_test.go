package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/content-planner/internal/pipeline"
	"github.com/jonathan/content-planner/internal/types"
)

// newTestServer builds a server without a database: plans run degraded
// and run lookups answer 503.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	planner := pipeline.New(nil, nil)
	planner.SetOutput(io.Discard)
	return &Server{planner: planner}
}

func TestHandlePlan(t *testing.T) {
	s := newTestServer(t)

	body := `{
		"count": 5,
		"include_pillar": true,
		"candidates": [
			{"title": "Roast Profiles", "parent_topic": "coffee", "keywords": ["roast profiles"]},
			{"title": "Water Chemistry", "parent_topic": "coffee", "keywords": ["brew water chemistry"]}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handlePlan(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.PlanResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Len(t, result.Briefs, 3) // two cluster briefs plus one pillar
	assert.Equal(t, 1, result.Summary.PillarCount)
	assert.True(t, result.Summary.Degraded, "no context source means degraded mode")
}

func TestHandlePlan_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/plan", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.handlePlan(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePlan_ValidationFailure(t *testing.T) {
	s := newTestServer(t)

	// count missing and no candidates
	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(`{"count": 0, "candidates": []}`))
	rec := httptest.NewRecorder()
	s.handlePlan(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error")
}

func TestHandleGetRun_NoDatabase(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/runs/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	s.handleGetRun(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrRunNotFound{}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrInvalidID{Value: "x"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Message: "bad"}))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&ErrNoDatabase{}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
