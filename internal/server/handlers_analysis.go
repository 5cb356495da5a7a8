package server

import (
	"log"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-scripter/internal/classification"
	"github.com/jonathan/interview-scripter/internal/enrichment"
	"github.com/jonathan/interview-scripter/internal/extraction"
	"github.com/jonathan/interview-scripter/internal/ksao"
	"github.com/jonathan/interview-scripter/internal/types"
	"github.com/jonathan/interview-scripter/internal/vagueness"
)

// ExtractRequest is the request body for POST /extract
type ExtractRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=20"`
	UseAI          bool   `json:"use_ai"`
}

// ExtractResponse is the response body for POST /extract
type ExtractResponse struct {
	Requirements []types.Requirement `json:"requirements"`
	Source       string              `json:"source"` // "ai" or "local"
}

// handleExtract extracts requirements from a job description. AI extraction
// is attempted when requested and available; any failure falls back to the
// local heuristic extractor.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	source := "local"
	var texts []string
	if req.UseAI && s.enricher != nil {
		aiTexts, err := s.enricher.ExtractRequirements(r.Context(), req.JobDescription)
		if err != nil {
			log.Printf("AI extraction failed, falling back to local: %v", err)
		} else {
			texts = aiTexts
			source = "ai"
		}
	}
	if texts == nil {
		texts = extraction.ExtractLocal(req.JobDescription)
	}
	if len(texts) > extraction.MaxRequirements {
		texts = texts[:extraction.MaxRequirements]
	}

	s.jsonResponse(w, http.StatusOK, ExtractResponse{
		Requirements: extraction.ToRequirements(texts),
		Source:       source,
	})
}

// AnalyzeRequest is the request body for POST /analyze
type AnalyzeRequest struct {
	Requirements []string `json:"requirements" validate:"required,min=1,dive,required"`
}

// RequirementAnalysis is the per-requirement result of POST /analyze
type RequirementAnalysis struct {
	Requirement   string                  `json:"requirement"`
	KSAOCategory  types.KSAOCategory      `json:"ksao_category"`
	QuestionTypes []string                `json:"question_types"`
	Vagueness     types.VaguenessAnalysis `json:"vagueness"`
}

// handleAnalyze runs vagueness detection and KSAO categorization over a
// batch of requirements.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	analyses := make([]RequirementAnalysis, len(req.Requirements))
	g, _ := errgroup.WithContext(r.Context())
	g.SetLimit(4)
	for i, text := range req.Requirements {
		g.Go(func() error {
			category := ksao.Categorize(text)
			analyses[i] = RequirementAnalysis{
				Requirement:   text,
				KSAOCategory:  category,
				QuestionTypes: ksao.QuestionTypes(category),
				Vagueness:     vagueness.Detect(text),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.handlerError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": analyses})
}

// ClassifyRequest is the request body for POST /classify
type ClassifyRequest struct {
	Requirements []types.Requirement `json:"requirements" validate:"required,min=1"`
}

// ClassifyResponse is the response body for POST /classify
type ClassifyResponse struct {
	Requirements  []types.Requirement `json:"requirements"`
	AllClassified bool                `json:"all_classified"`
}

// handleClassify derives final classifications from the decision-tree
// answers carried on each requirement. Requirements with incomplete answers
// pass through unchanged.
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	for i := range req.Requirements {
		classification.Apply(&req.Requirements[i])
	}

	s.jsonResponse(w, http.StatusOK, ClassifyResponse{
		Requirements:  req.Requirements,
		AllClassified: classification.AllComplete(req.Requirements),
	})
}

// DefineRequest is the request body for POST /define
type DefineRequest struct {
	Requirement string `json:"requirement" validate:"required"`
	Industry    string `json:"industry"`
}

// DefineResponse is the response body for POST /define
type DefineResponse struct {
	Definition  string             `json:"definition,omitempty"`
	Category    types.KSAOCategory `json:"ksao_category"`
	Suggestions []string           `json:"suggestions"`
	Source      string             `json:"source"` // "ai" or "local"
}

// handleDefine produces a working definition for a vague requirement. The
// AI path returns a written definition; the local fallback returns the KSAO
// category and its guiding suggestions only.
func (s *Server) handleDefine(w http.ResponseWriter, r *http.Request) {
	var req DefineRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	if s.enricher != nil {
		def, err := s.enricher.DefineRequirement(r.Context(), req.Requirement, req.Industry)
		if err != nil {
			log.Printf("AI definition failed, falling back to local: %v", err)
		} else {
			s.jsonResponse(w, http.StatusOK, DefineResponse{
				Definition:  def.Definition,
				Category:    def.Category,
				Suggestions: def.Suggestions,
				Source:      "ai",
			})
			return
		}
	}

	category := ksao.Categorize(req.Requirement)
	suggestions := vagueness.Detect(req.Requirement).Suggestions
	if len(suggestions) == 0 {
		suggestions = enrichment.DefinitionSuggestions(category)
	}
	s.jsonResponse(w, http.StatusOK, DefineResponse{
		Category:    category,
		Suggestions: suggestions,
		Source:      "local",
	})
}
