// Package server provides the HTTP REST API for the content planner.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrRunNotFound indicates a planning run was not found
type ErrRunNotFound struct {
	RunID uuid.UUID
}

func (e *ErrRunNotFound) Error() string {
	return fmt.Sprintf("planning run not found: %s", e.RunID)
}

// ErrInvalidID indicates a malformed UUID path parameter
type ErrInvalidID struct {
	Value string
}

func (e *ErrInvalidID) Error() string {
	return fmt.Sprintf("invalid id: %s", e.Value)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ErrNoDatabase indicates the server is running without persistence
type ErrNoDatabase struct{}

func (e *ErrNoDatabase) Error() string {
	return "no database configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrRunNotFound:
		return http.StatusNotFound
	case *ErrInvalidID, *ErrValidation:
		return http.StatusBadRequest
	case *ErrNoDatabase:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
