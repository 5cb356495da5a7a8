// Package vagueness classifies requirement text as vague or specific using
// ordered pattern rules, and proposes remediation suggestions for vague text.
package vagueness

import (
	"regexp"

	"github.com/jonathan/interview-scripter/internal/types"
)

// specificPatterns match measurable, well-defined requirement text. They are
// checked before the vague patterns: specificity short-circuits.
var specificPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+\s+(years?|months?)`),
	regexp.MustCompile(`(?i)\d+\s*\+?\s*(years?|months?)`),
	regexp.MustCompile(`(?i)certification\s+in`),
	regexp.MustCompile(`(?i)certified\s+\w+`),
	regexp.MustCompile(`(?i)licensed?\s+\w+`),
	regexp.MustCompile(`(?i)(bachelor|master|doctorate|associate)'?s?\s+degree`),
	regexp.MustCompile(`(?i)\d+\s*wpm`),
	regexp.MustCompile(`(?i)\d+\s*(pounds?|lbs?)`),
	regexp.MustCompile(`\$[\d,]+`),
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`(?i)specific\s+software:`),
}

// vaguePatterns match non-specific language that needs definition before
// question generation. Order is part of the contract: the confidence score
// depends on the match count over this fixed list.
var vaguePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)good\s+(at|with)`),
	regexp.MustCompile(`(?i)experience\s+(with|in)`),
	regexp.MustCompile(`(?i)knowledge\s+of`),
	regexp.MustCompile(`(?i)skills?\s+in`),
	regexp.MustCompile(`(?i)familiar\s+with`),
	regexp.MustCompile(`(?i)comfortable\s+with`),
	regexp.MustCompile(`(?i)understanding\s+of`),
	regexp.MustCompile(`(?i)ability\s+to`),
	regexp.MustCompile(`(?i)proficient\s+in`),
	regexp.MustCompile(`(?i)excellent\s+\w+\s+skills`),
	regexp.MustCompile(`(?i)strong\s+\w+\s+skills`),
	regexp.MustCompile(`(?i)effective\s+\w+`),
	regexp.MustCompile(`(?i)proven\s+track\s+record`),
	regexp.MustCompile(`(?i)team\s+player`),
	regexp.MustCompile(`(?i)self[\s-]starter`),
	regexp.MustCompile(`(?i)detail[\s-]oriented`),
	regexp.MustCompile(`(?i)problem[\s-]solving`),
	regexp.MustCompile(`(?i)communication\s+skills`),
	regexp.MustCompile(`(?i)organizational\s+skills`),
	regexp.MustCompile(`(?i)multitasking`),
	regexp.MustCompile(`(?i)customer\s+service`),
	regexp.MustCompile(`(?i)interpersonal\s+skills`),
	regexp.MustCompile(`(?i)analytical\s+skills`),
	regexp.MustCompile(`(?i)leadership\s+qualities`),
}

// Detect analyzes a requirement string and reports whether it is vague,
// with a confidence score and remediation suggestions. It is a pure function;
// empty or whitespace-only input is valid and yields the specific default.
func Detect(requirement string) types.VaguenessAnalysis {
	for _, p := range specificPatterns {
		if p.MatchString(requirement) {
			return types.VaguenessAnalysis{
				IsVague:     false,
				Confidence:  0.9,
				Reason:      "Contains specific, measurable criteria",
				Suggestions: []string{},
			}
		}
	}

	matched := 0
	for _, p := range vaguePatterns {
		if p.MatchString(requirement) {
			matched++
		}
	}
	if matched > 0 {
		score := float64(matched) / float64(len(vaguePatterns))
		return types.VaguenessAnalysis{
			IsVague:     true,
			Confidence:  min(0.95, 0.6+score),
			Reason:      "Contains vague, non-specific language that needs definition",
			Suggestions: generateSuggestions(requirement),
		}
	}

	if industry, ok := matchIndustryTerm(requirement); ok {
		return types.VaguenessAnalysis{
			IsVague:     true,
			Confidence:  0.75,
			Reason:      "Contains industry jargon that needs specific definition",
			Suggestions: industrySuggestions(industry),
		}
	}

	// Heuristic default, not a high-confidence positive determination.
	return types.VaguenessAnalysis{
		IsVague:     false,
		Confidence:  0.7,
		Reason:      "Appears to be adequately specific",
		Suggestions: []string{},
	}
}
