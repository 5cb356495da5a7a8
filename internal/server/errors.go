// Package server provides the HTTP REST API for the interview script builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/interview-scripter/internal/db"
)

// ErrSessionNotFound indicates the session was not found
type ErrSessionNotFound struct {
	SessionID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.SessionID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStorageUnavailable indicates no database is configured
type ErrStorageUnavailable struct{}

func (e *ErrStorageUnavailable) Error() string {
	return "session storage is not configured"
}

// ErrEnrichmentUnavailable indicates no LLM API key is configured
type ErrEnrichmentUnavailable struct{}

func (e *ErrEnrichmentUnavailable) Error() string {
	return "AI enrichment is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if errors.Is(err, db.ErrNotFound) {
		return http.StatusNotFound
	}
	switch err.(type) {
	case *ErrSessionNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrStorageUnavailable, *ErrEnrichmentUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
