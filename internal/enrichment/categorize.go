package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/interview-scripter/internal/llm"
	"github.com/jonathan/interview-scripter/internal/prompts"
	"github.com/jonathan/interview-scripter/internal/schemas"
	"github.com/jonathan/interview-scripter/internal/types"
)

// categoryOrder fixes the display order of question categories, most
// important first. Unrecognized categories sort last.
var categoryOrder = []string{
	"Technical Skills",
	"Experience & Past Performance",
	"Problem Solving",
	"Soft Skills & Culture Fit",
	"Growth & Learning",
	"Other",
}

type categoryAssignment struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Importance  int    `json:"importance"`
}

// CategorizeQuestions annotates questions with a category, subcategory, and
// importance score, then reorders them by category and descending
// importance. Annotations are display-only: question text, IDs, follow-ups,
// and behavior contracts are never modified. On any failure the input slice
// is returned unchanged alongside the error.
func (s *Service) CategorizeQuestions(ctx context.Context, questions []types.InterviewQuestion) ([]types.InterviewQuestion, error) {
	if len(questions) == 0 {
		return questions, nil
	}

	var sb strings.Builder
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q.Question))
	}

	template := prompts.MustGet("interview.json", "categorize-questions")
	prompt := prompts.Format(template, map[string]string{
		"Questions": sb.String(),
	})

	responseText, err := s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return questions, &APICallError{
			Message: "failed to categorize questions",
			Cause:   err,
		}
	}

	jsonText, err := requireJSONArray(responseText)
	if err != nil {
		return questions, err
	}

	if err := schemas.ValidateJSONString(schemas.QuestionCategorization, jsonText); err != nil {
		return questions, &ParseError{
			Message: "response does not match categorization schema",
			Cause:   err,
		}
	}

	var assignments []categoryAssignment
	if err := json.Unmarshal([]byte(jsonText), &assignments); err != nil {
		return questions, &ParseError{
			Message: "failed to parse categorization array",
			Cause:   err,
		}
	}

	annotated := applyAssignments(questions, assignments)
	sortByCategory(annotated)
	return annotated, nil
}

// applyAssignments maps assignments back onto the questions by ID, accepting
// either the real question ID or a positional "qN" alias. Questions with no
// assignment get neutral defaults.
func applyAssignments(questions []types.InterviewQuestion, assignments []categoryAssignment) []types.InterviewQuestion {
	byID := make(map[string]categoryAssignment, len(assignments))
	for _, a := range assignments {
		byID[a.ID] = a
	}

	annotated := make([]types.InterviewQuestion, len(questions))
	for i, q := range questions {
		a, ok := byID[q.ID]
		if !ok {
			a, ok = byID[fmt.Sprintf("q%d", i+1)]
		}
		if !ok {
			a = categoryAssignment{Category: "Other", Subcategory: "General", Importance: 5}
		}
		if a.Category == "" {
			a.Category = "Other"
		}
		if a.Subcategory == "" {
			a.Subcategory = "General"
		}
		if a.Importance == 0 {
			a.Importance = 5
		}

		q.Category = a.Category
		q.Subcategory = a.Subcategory
		q.Importance = a.Importance
		annotated[i] = q
	}
	return annotated
}

// sortByCategory orders questions by category rank, then by descending
// importance. The sort is stable so equally ranked questions keep their
// generation order.
func sortByCategory(questions []types.InterviewQuestion) {
	sort.SliceStable(questions, func(i, j int) bool {
		ri, rj := categoryRank(questions[i].Category), categoryRank(questions[j].Category)
		if ri != rj {
			return ri < rj
		}
		return questions[i].Importance > questions[j].Importance
	})
}

func categoryRank(category string) int {
	for i, c := range categoryOrder {
		if c == category {
			return i
		}
	}
	return len(categoryOrder)
}
