package server

import (
	"log"
	"net/http"

	"github.com/jonathan/interview-scripter/internal/questions"
	"github.com/jonathan/interview-scripter/internal/types"
)

// GenerateQuestionsRequest is the request body for POST /questions
type GenerateQuestionsRequest struct {
	Requirements   []types.Requirement `json:"requirements" validate:"required,min=1"`
	CompanyName    string              `json:"company_name"`
	PositionTitle  string              `json:"position_title"`
	JobDescription string              `json:"job_description"`
}

// handleGenerateQuestions builds a full interview script from classified
// requirements.
func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req GenerateQuestionsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	script := types.InterviewScript{
		CompanyName:    req.CompanyName,
		PositionTitle:  req.PositionTitle,
		JobDescription: req.JobDescription,
		Requirements:   req.Requirements,
		Questions:      s.generator.GenerateScript(req.Requirements),
	}

	s.jsonResponse(w, http.StatusOK, script)
}

// ValidateQuestionsRequest is the request body for POST /questions/validate
type ValidateQuestionsRequest struct {
	Questions []string `json:"questions" validate:"required,min=1,dive,required"`
}

// QuestionCheck is the per-question result of POST /questions/validate
type QuestionCheck struct {
	Question   string `json:"question"`
	WellFormed bool   `json:"well_formed"`
	STAR       bool   `json:"star"`
}

// handleValidateQuestions checks question texts for well-formedness and
// STAR phrasing.
func (s *Server) handleValidateQuestions(w http.ResponseWriter, r *http.Request) {
	var req ValidateQuestionsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	checks := make([]QuestionCheck, len(req.Questions))
	for i, q := range req.Questions {
		checks[i] = QuestionCheck{
			Question:   q,
			WellFormed: questions.IsWellFormed(q),
			STAR:       questions.MatchesSTARPattern(q),
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"results": checks})
}

// CategorizeQuestionsRequest is the request body for POST /questions/categorize
type CategorizeQuestionsRequest struct {
	Questions []types.InterviewQuestion `json:"questions" validate:"required,min=1"`
}

// CategorizeQuestionsResponse is the response body for POST /questions/categorize
type CategorizeQuestionsResponse struct {
	Questions   []types.InterviewQuestion `json:"questions"`
	Categorized bool                      `json:"categorized"`
}

// handleCategorizeQuestions annotates questions with interview categories.
// Annotation failures are non-fatal: the questions come back unchanged.
func (s *Server) handleCategorizeQuestions(w http.ResponseWriter, r *http.Request) {
	var req CategorizeQuestionsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	if s.enricher == nil {
		s.handlerError(w, &ErrEnrichmentUnavailable{})
		return
	}

	categorized, err := s.enricher.CategorizeQuestions(r.Context(), req.Questions)
	if err != nil {
		log.Printf("Question categorization failed: %v", err)
		s.jsonResponse(w, http.StatusOK, CategorizeQuestionsResponse{
			Questions:   categorized,
			Categorized: false,
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, CategorizeQuestionsResponse{
		Questions:   categorized,
		Categorized: true,
	})
}
