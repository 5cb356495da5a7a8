// Package ksao implements the Knowledge/Skills/Abilities/Other taxonomy used
// to classify job requirements and steer question template selection.
package ksao

import (
	"strings"

	"github.com/jonathan/interview-scripter/internal/types"
)

// Definition describes one KSAO category: the keywords that map requirement
// text into it, representative examples, and the interview question styles
// that suit it.
type Definition struct {
	Category      types.KSAOCategory
	Keywords      []string
	Examples      []string
	QuestionTypes []string
}

// Framework holds the four category definitions in their fixed check order.
// The order is a deliberate tie-break: a requirement matching keywords from
// two categories resolves to whichever is declared first.
var Framework = []Definition{
	{
		Category:      types.KSAOKnowledge,
		Keywords:      []string{"know", "understand", "familiar", "aware", "regulations", "procedures", "concepts", "terminology", "principles", "theory"},
		Examples:      []string{"HIPAA regulations", "ICD-10 coding", "medical terminology", "accounting principles", "legal requirements"},
		QuestionTypes: []string{"factual", "explanation", "scenario-based knowledge application"},
	},
	{
		Category:      types.KSAOSkills,
		Keywords:      []string{"perform", "operate", "use", "create", "build", "analyze", "implement", "execute", "develop"},
		Examples:      []string{"EMR data entry", "phlebotomy", "coding", "design", "troubleshoot", "customer service"},
		QuestionTypes: []string{"demonstration", "process walkthrough", "past performance"},
	},
	{
		Category:      types.KSAOAbilities,
		Keywords:      []string{"able to", "capacity", "can", "capable", "aptitude", "multitask", "manage", "handle"},
		Examples:      []string{"process 50 calls daily", "lift 50lbs", "stand 8 hours", "type 60WPM", "remain calm under pressure"},
		QuestionTypes: []string{"volume/frequency", "performance metrics", "stress scenarios"},
	},
	{
		Category:      types.KSAOOther,
		Keywords:      []string{"certification", "license", "trait", "personality", "mindset", "credential", "degree"},
		Examples:      []string{"CMA certification", "RN license", "empathy", "detail-oriented", "growth mindset"},
		QuestionTypes: []string{"verification", "behavioral demonstration", "situational judgment"},
	},
}

// Categorize maps a requirement string to its KSAO category. Certifications,
// licenses and credentials resolve to Other before any keyword list is
// consulted; with no match at all the default is Skills.
func Categorize(requirement string) types.KSAOCategory {
	lower := strings.ToLower(requirement)

	if strings.Contains(lower, "certification") || strings.Contains(lower, "license") || strings.Contains(lower, "credential") {
		return types.KSAOOther
	}

	for _, def := range Framework {
		for _, keyword := range def.Keywords {
			if strings.Contains(lower, keyword) {
				return def.Category
			}
		}
	}

	return types.KSAOSkills
}

// QuestionTypes returns the suggested question styles for a category.
func QuestionTypes(category types.KSAOCategory) []string {
	for _, def := range Framework {
		if def.Category == category {
			return def.QuestionTypes
		}
	}
	return nil
}
