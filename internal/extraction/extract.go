// Package extraction implements the local requirement extractor: it splits a
// raw job-description text into a deduplicated, ranked list of candidate
// requirement strings. It is the authoritative fallback whenever the external
// extraction service is unavailable or returns nothing usable.
package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/interview-scripter/internal/types"
)

// MaxRequirements caps the extractor output.
const MaxRequirements = 15

var requirementKeywords = []string{
	"experience", "skill", "ability", "knowledge", "proficient", "proficiency",
	"understanding", "familiar", "expert", "degree", "certification",
	"years", "must", "should", "required", "preferred", "bonus",
	"strong", "excellent", "good", "solid", "proven", "track record",
	"background", "expertise", "competent", "qualified",
}

var (
	yearsPattern     = regexp.MustCompile(`(?i)\d+\+?\s*years?`)
	techPattern      = regexp.MustCompile(`(?i)\b(EMR|EHR|SQL|Python|Java|React|Angular|Vue|Node|AWS|Azure|GCP)\b`)
	educationPattern = regexp.MustCompile(`(?i)\b(bachelor|master|degree|diploma|certification|certified)\b`)

	bulletSplitPattern = regexp.MustCompile(`[•\-*◦▪▸→]`)
	clauseSplitPattern = regexp.MustCompile(`[,;]|\.\s|\.$|\sand\s|\sor\s`)
	numberingPattern   = regexp.MustCompile(`^\s*\d+[.)]\s*`)
)

// genericBoilerplate phrases disqualify a fragment outright.
var genericBoilerplate = []string{
	"responsibilities include",
	"we are looking for",
	"about the role",
	"about us",
	"equal opportunity",
}

// ExtractLocal splits a job description into at most MaxRequirements cleaned,
// deduplicated requirement strings, ordered by a heuristic priority score.
func ExtractLocal(jobDescription string) []string {
	var candidates []string

	for _, line := range strings.Split(jobDescription, "\n") {
		for _, fragment := range bulletSplitPattern.Split(line, -1) {
			for _, part := range clauseSplitPattern.Split(fragment, -1) {
				part = strings.TrimSpace(part)
				if part == "" || !isLikelyRequirement(part) {
					continue
				}
				cleaned := CleanRequirementText(part)
				if cleaned != "" {
					candidates = append(candidates, cleaned)
				}
			}
		}
	}

	deduped := dedupe(candidates)

	// Stable sort so equal scores keep input order.
	sort.SliceStable(deduped, func(i, j int) bool {
		return priorityScore(deduped[i]) > priorityScore(deduped[j])
	})

	if len(deduped) > MaxRequirements {
		deduped = deduped[:MaxRequirements]
	}
	return deduped
}

// ToRequirements wraps extracted strings into Requirement values with fresh
// ids and the legacy default priority.
func ToRequirements(texts []string) []types.Requirement {
	reqs := make([]types.Requirement, 0, len(texts))
	for _, text := range texts {
		reqs = append(reqs, types.Requirement{
			ID:       uuid.New().String(),
			Text:     text,
			Priority: types.PriorityTrainable,
		})
	}
	return reqs
}

// isLikelyRequirement reports whether a fragment reads like a job requirement
// rather than prose: it must carry a requirement keyword or match a
// years-of-experience, technology-acronym, or education pattern.
func isLikelyRequirement(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range genericBoilerplate {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	for _, keyword := range requirementKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return yearsPattern.MatchString(text) ||
		techPattern.MatchString(text) ||
		educationPattern.MatchString(text)
}

// dedupe removes entries whose normalized keys collide, keeping the first
// occurrence, and drops fragments too short to be a requirement.
func dedupe(candidates []string) []string {
	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if len(c) < 3 {
			continue
		}
		key := normalizeKey(c)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// normalizeKey lowers the text, strips leading strength qualifiers and
// trailing "skills"/"experience"/"abilities" so that "Strong communication
// skills" and "communication experience" collapse to one entry.
func normalizeKey(text string) string {
	key := strings.ToLower(strings.TrimSpace(text))
	for _, qualifier := range []string{"strong ", "excellent ", "good ", "solid "} {
		key = strings.TrimPrefix(key, qualifier)
	}
	for _, suffix := range []string{"skills", "experience", "abilities"} {
		key = strings.TrimSpace(strings.TrimSuffix(key, suffix))
	}
	return key
}

// priorityScore rewards fragments that look like hard requirements. Higher
// scores sort first.
func priorityScore(text string) int {
	lower := strings.ToLower(text)
	score := 0
	if techPattern.MatchString(text) {
		score += 4
	}
	if strings.Contains(lower, "certification") || strings.Contains(lower, "certified") || strings.Contains(lower, "license") {
		score += 3
	}
	if yearsPattern.MatchString(text) {
		score += 2
	}
	if strings.Contains(lower, "experience") {
		score++
	}
	return score
}
