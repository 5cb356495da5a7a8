package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/interview-scripter/internal/types"
)

// CreateSession stores a new interview session and returns its ID.
// An empty session ID is filled in with a fresh UUID.
func (db *DB) CreateSession(ctx context.Context, session *types.Session) (string, error) {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	id, err := uuid.Parse(session.ID)
	if err != nil {
		return "", fmt.Errorf("invalid session ID %q: %w", session.ID, err)
	}

	scriptJSON, err := json.Marshal(session.Script)
	if err != nil {
		return "", fmt.Errorf("failed to marshal script: %w", err)
	}
	responsesJSON, err := json.Marshal(session.Responses)
	if err != nil {
		return "", fmt.Errorf("failed to marshal responses: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO sessions (id, script, responses, candidate_name, candidate_email, overall_score, notes)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		 RETURNING created_at, updated_at`,
		id, scriptJSON, responsesJSON, session.CandidateName, session.CandidateEmail,
		string(session.OverallScore), session.Notes,
	).Scan(&session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return session.ID, nil
}

// GetSession retrieves a session by ID. Returns nil without error when the
// session does not exist.
func (db *DB) GetSession(ctx context.Context, sessionID string) (*types.Session, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID %q: %w", sessionID, err)
	}

	var session types.Session
	var scriptJSON, responsesJSON []byte
	var overallScore *string

	err = db.pool.QueryRow(ctx,
		`SELECT id, script, responses, candidate_name, candidate_email, overall_score, notes, created_at, updated_at
		 FROM sessions WHERE id = $1`,
		id,
	).Scan(&session.ID, &scriptJSON, &responsesJSON, &session.CandidateName,
		&session.CandidateEmail, &overallScore, &session.Notes,
		&session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err := json.Unmarshal(scriptJSON, &session.Script); err != nil {
		return nil, fmt.Errorf("failed to unmarshal script: %w", err)
	}
	if len(responsesJSON) > 0 {
		if err := json.Unmarshal(responsesJSON, &session.Responses); err != nil {
			return nil, fmt.Errorf("failed to unmarshal responses: %w", err)
		}
	}
	if overallScore != nil {
		session.OverallScore = types.Score(*overallScore)
	}
	return &session, nil
}

// SessionSummary is a lightweight view of a session for listing
type SessionSummary struct {
	ID            string      `json:"id"`
	CompanyName   string      `json:"company_name,omitempty"`
	PositionTitle string      `json:"position_title,omitempty"`
	CandidateName string      `json:"candidate_name,omitempty"`
	OverallScore  types.Score `json:"overall_score,omitempty"`
	CreatedAt     string      `json:"created_at"`
	UpdatedAt     string      `json:"updated_at"`
}

// ListSessions retrieves recent sessions, newest first
func (db *DB) ListSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, script->>'company_name', script->>'position_title',
		        candidate_name, COALESCE(overall_score, ''), created_at, updated_at
		 FROM sessions ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionSummary
	for rows.Next() {
		var s SessionSummary
		var company, position *string
		var score string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&s.ID, &company, &position, &s.CandidateName, &score, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		if company != nil {
			s.CompanyName = *company
		}
		if position != nil {
			s.PositionTitle = *position
		}
		s.OverallScore = types.Score(score)
		s.CreatedAt = createdAt.Format(time.RFC3339)
		s.UpdatedAt = updatedAt.Format(time.RFC3339)
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// UpdateSession replaces the stored script, responses, and candidate fields
// for an existing session.
func (db *DB) UpdateSession(ctx context.Context, session *types.Session) error {
	id, err := uuid.Parse(session.ID)
	if err != nil {
		return fmt.Errorf("invalid session ID %q: %w", session.ID, err)
	}

	scriptJSON, err := json.Marshal(session.Script)
	if err != nil {
		return fmt.Errorf("failed to marshal script: %w", err)
	}
	responsesJSON, err := json.Marshal(session.Responses)
	if err != nil {
		return fmt.Errorf("failed to marshal responses: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE sessions
		 SET script = $1, responses = $2, candidate_name = $3, candidate_email = $4,
		     overall_score = NULLIF($5, ''), notes = $6, updated_at = NOW()
		 WHERE id = $7`,
		scriptJSON, responsesJSON, session.CandidateName, session.CandidateEmail,
		string(session.OverallScore), session.Notes, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, session.ID)
	}
	return nil
}

// SaveResponses replaces the recorded responses and overall score for a
// session without touching the script.
func (db *DB) SaveResponses(ctx context.Context, sessionID string, responses []types.InterviewResponse, overall types.Score) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return fmt.Errorf("invalid session ID %q: %w", sessionID, err)
	}

	responsesJSON, err := json.Marshal(responses)
	if err != nil {
		return fmt.Errorf("failed to marshal responses: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE sessions
		 SET responses = $1, overall_score = NULLIF($2, ''), updated_at = NOW()
		 WHERE id = $3`,
		responsesJSON, string(overall), id,
	)
	if err != nil {
		return fmt.Errorf("failed to save responses: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, sessionID)
	}
	return nil
}

// DeleteSession deletes a session
func (db *DB) DeleteSession(ctx context.Context, sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return fmt.Errorf("invalid session ID %q: %w", sessionID, err)
	}

	result, err := db.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, sessionID)
	}
	return nil
}
