package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/interview-scripter/internal/scoring"
	"github.com/jonathan/interview-scripter/internal/types"
)

// CreateSessionRequest is the request body for POST /sessions
type CreateSessionRequest struct {
	Script         types.InterviewScript `json:"script" validate:"required"`
	CandidateName  string                `json:"candidate_name"`
	CandidateEmail string                `json:"candidate_email" validate:"omitempty,email"`
	Notes          string                `json:"notes"`
}

// handleCreateSession stores a new interview session.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.handlerError(w, &ErrStorageUnavailable{})
		return
	}

	var req CreateSessionRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	if len(req.Script.Questions) == 0 {
		s.handlerError(w, &ErrValidation{Field: "script.questions", Message: "script has no questions"})
		return
	}

	session := &types.Session{
		Script:         req.Script,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		Notes:          req.Notes,
	}
	id, err := s.db.CreateSession(r.Context(), session)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":         id,
		"created_at": session.CreatedAt,
	})
}

// handleListSessions lists stored sessions, newest first.
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.handlerError(w, &ErrStorageUnavailable{})
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		limit = n
	}

	sessions, err := s.db.ListSessions(r.Context(), limit)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// sessionID parses and validates the {id} path value. On failure it writes
// the error response and returns false.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid session ID")
		return "", false
	}
	return id, true
}

// handleGetSession returns one stored session.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.handlerError(w, &ErrStorageUnavailable{})
		return
	}
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	session, err := s.db.GetSession(r.Context(), id)
	if err != nil {
		s.handlerError(w, err)
		return
	}
	if session == nil {
		s.handlerError(w, &ErrSessionNotFound{SessionID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, session)
}

// handleUpdateSession replaces a stored session's script and candidate fields.
func (s *Server) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.handlerError(w, &ErrStorageUnavailable{})
		return
	}
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	var session types.Session
	if !s.decodeAndValidate(w, r, &session) {
		return
	}
	session.ID = id

	if err := s.db.UpdateSession(r.Context(), &session); err != nil {
		s.handlerError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"id": id, "status": "updated"})
}

// handleDeleteSession deletes a stored session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.handlerError(w, &ErrStorageUnavailable{})
		return
	}
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteSession(r.Context(), id); err != nil {
		s.handlerError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SaveResponsesRequest is the request body for POST /sessions/{id}/responses
type SaveResponsesRequest struct {
	Responses []types.InterviewResponse `json:"responses" validate:"required,min=1"`
}

// handleSaveResponses records interview responses against a session and
// returns the scored summary. The overall score is derived, never supplied.
func (s *Server) handleSaveResponses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.handlerError(w, &ErrStorageUnavailable{})
		return
	}
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	var req SaveResponsesRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	session, err := s.db.GetSession(r.Context(), id)
	if err != nil {
		s.handlerError(w, err)
		return
	}
	if session == nil {
		s.handlerError(w, &ErrSessionNotFound{SessionID: id})
		return
	}

	summary := scoring.Summarize(session.Script, req.Responses)
	if err := s.db.SaveResponses(r.Context(), id, req.Responses, summary.Overall); err != nil {
		s.handlerError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"summary": summary})
}

// handleSessionSummary returns the scored summary for a session's recorded
// responses.
func (s *Server) handleSessionSummary(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.handlerError(w, &ErrStorageUnavailable{})
		return
	}
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	session, err := s.db.GetSession(r.Context(), id)
	if err != nil {
		s.handlerError(w, err)
		return
	}
	if session == nil {
		s.handlerError(w, &ErrSessionNotFound{SessionID: id})
		return
	}

	summary := scoring.Summarize(session.Script, session.Responses)
	s.jsonResponse(w, http.StatusOK, map[string]any{"summary": summary})
}
