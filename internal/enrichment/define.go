package enrichment

import (
	"context"
	"strings"

	"github.com/jonathan/interview-scripter/internal/ksao"
	"github.com/jonathan/interview-scripter/internal/llm"
	"github.com/jonathan/interview-scripter/internal/prompts"
	"github.com/jonathan/interview-scripter/internal/types"
)

// Definition is the result of refining a vague requirement.
type Definition struct {
	Definition  string             `json:"definition"`
	Category    types.KSAOCategory `json:"ksaoCategory"`
	Suggestions []string           `json:"suggestions"`
}

// DefineRequirement turns a vague requirement into a concrete, measurable
// definition. The KSAO category and suggestion prompts are computed locally;
// only the definition paragraph comes from the model.
func (s *Service) DefineRequirement(ctx context.Context, requirement, industry string) (*Definition, error) {
	if industry == "" {
		industry = "general"
	}
	category := ksao.Categorize(requirement)

	template := prompts.MustGet("interview.json", "define-requirement")
	prompt := prompts.Format(template, map[string]string{
		"Requirement": requirement,
		"Industry":    industry,
		"Category":    string(category),
	})

	responseText, err := s.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate requirement definition",
			Cause:   err,
		}
	}

	definition := strings.TrimSpace(responseText)
	if definition == "" {
		return nil, &EmptyResultError{Message: "model returned an empty definition"}
	}

	return &Definition{
		Definition:  definition,
		Category:    category,
		Suggestions: DefinitionSuggestions(category),
	}, nil
}

// DefinitionSuggestions returns category-specific prompts a hiring manager
// can answer to tighten a requirement definition. Exported so the define
// endpoint can return suggestions even when the model call fails.
func DefinitionSuggestions(category types.KSAOCategory) []string {
	switch category {
	case types.KSAOKnowledge:
		return []string{
			"Specify which concepts or regulations they must know",
			"Define the depth of knowledge required",
			"Indicate how this knowledge is applied",
		}
	case types.KSAOSkills:
		return []string{
			"Name the specific tools or software",
			"Define proficiency level (basic/intermediate/expert)",
			"Specify frequency of use",
		}
	case types.KSAOAbilities:
		return []string{
			"Include volume or performance metrics",
			"Define minimum acceptable performance",
			"Specify conditions or constraints",
		}
	default:
		return []string{
			"Verify specific certifications or licenses",
			"Define behavioral indicators",
			"Specify renewal or maintenance requirements",
		}
	}
}
