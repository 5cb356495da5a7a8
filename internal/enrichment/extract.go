// Package enrichment provides optional LLM-backed services that refine the
// local heuristics: requirement extraction, definition drafting, and question
// categorization. Every service degrades gracefully; callers fall back to the
// local pipeline when a call fails or returns nothing usable.
package enrichment

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/interview-scripter/internal/llm"
	"github.com/jonathan/interview-scripter/internal/prompts"
	"github.com/jonathan/interview-scripter/internal/schemas"
)

// Service wraps an LLM client with the interview enrichment operations.
// The client is injected so tests can substitute a fake.
type Service struct {
	client llm.Client
}

// NewService creates an enrichment service backed by the given client.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// ExtractRequirements asks the model to pull discrete requirements out of a
// raw job description. The response must be a JSON array of non-empty
// strings; anything else is an error so the caller can fall back to local
// extraction.
func (s *Service) ExtractRequirements(ctx context.Context, jobDescription string) ([]string, error) {
	template := prompts.MustGet("interview.json", "extract-requirements")
	prompt := prompts.Format(template, map[string]string{
		"JobDescription": jobDescription,
	})

	responseText, err := s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to extract requirements",
			Cause:   err,
		}
	}

	jsonText, err := requireJSONArray(responseText)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateJSONString(schemas.RequirementsList, jsonText); err != nil {
		return nil, &ParseError{
			Message: "response does not match requirements schema",
			Cause:   err,
		}
	}

	var requirements []string
	if err := json.Unmarshal([]byte(jsonText), &requirements); err != nil {
		return nil, &ParseError{
			Message: "failed to parse requirements array",
			Cause:   err,
		}
	}

	if len(requirements) == 0 {
		return nil, &EmptyResultError{Message: "model returned no requirements"}
	}

	return requirements, nil
}

// requireJSONArray cleans an LLM response and insists the payload is itself
// a top-level JSON array. A response shaped as an object, even one with an
// array buried inside, is a contract violation and must not be salvaged.
func requireJSONArray(responseText string) (string, error) {
	jsonText := strings.TrimSpace(llm.CleanJSONBlock(responseText))
	if jsonText == "" {
		return "", &ParseError{Message: "no JSON array in response"}
	}
	if !strings.HasPrefix(jsonText, "[") {
		return "", &ParseError{Message: "response is not a JSON array"}
	}
	return jsonText, nil
}
