package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/content-planner/internal/pipeline"
	"github.com/jonathan/content-planner/internal/schedule"
	"github.com/jonathan/content-planner/internal/types"
)

// handlePlan runs one planning batch from the request body and returns
// the full computed result, including per-brief persistence outcomes.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req types.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	horizon := schedule.DefaultHorizon
	if req.HorizonDays > 0 {
		horizon = time.Duration(req.HorizonDays) * 24 * time.Hour
	}

	result, err := s.planner.Run(r.Context(), pipeline.RunOptions{
		SiteID:          req.SiteID,
		Count:           req.Count,
		Clusters:        req.Clusters,
		IncludePillar:   req.IncludePillar,
		Horizon:         horizon,
		Candidates:      req.Candidates,
		NamingRules:     s.cfg.NamingRules,
		LocationMarkers: s.cfg.LocationMarkers,
		Tone:            s.cfg.Tone,
		DryRun:          req.DryRun,
	})
	if err != nil {
		log.Printf("Error running planning batch: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "planning run failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetRun returns one planning run record with its summary
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrNoDatabase{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		iderr := &ErrInvalidID{Value: r.PathValue("id")}
		s.errorResponse(w, HTTPStatus(iderr), iderr.Error())
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		log.Printf("Error fetching run %s: %v", runID, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to fetch run")
		return
	}
	if run == nil {
		nferr := &ErrRunNotFound{RunID: runID}
		s.errorResponse(w, HTTPStatus(nferr), nferr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, run)
}

// handleListRunBriefs returns the stored brief set of a run in scheduled order
func (s *Server) handleListRunBriefs(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrNoDatabase{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		iderr := &ErrInvalidID{Value: r.PathValue("id")}
		s.errorResponse(w, HTTPStatus(iderr), iderr.Error())
		return
	}

	briefs, err := s.db.ListBriefsByRun(r.Context(), runID)
	if err != nil {
		log.Printf("Error listing briefs for run %s: %v", runID, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list briefs")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"run_id": runID,
		"briefs": briefs,
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
