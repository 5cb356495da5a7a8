package questions

import "regexp"

// yesNoPatterns catch closed questions a candidate can answer with a single
// word. A question starting this way is rejected outright.
var yesNoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(do|did|can|could|would|will|are|were|have|has|is)\s+you\b`),
	regexp.MustCompile(`(?i)^(are|were)\s+you\s+(comfortable|familiar|experienced)\b`),
}

// starPatterns positively identify phrasing that pushes the candidate toward
// a concrete past episode.
var starPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)tell\s+me\s+about`),
	regexp.MustCompile(`(?i)describe`),
	regexp.MustCompile(`(?i)walk\s+me\s+through`),
	regexp.MustCompile(`(?i)give\s+me\s+an?\s+example`),
	regexp.MustCompile(`(?i)explain`),
	regexp.MustCompile(`(?i)what\s+was\s+your\s+(process|approach)`),
}

// IsWellFormed reports whether a question avoids yes/no and
// comfort/familiarity openers. This is the generation-time quality gate.
func IsWellFormed(question string) bool {
	for _, p := range yesNoPatterns {
		if p.MatchString(question) {
			return false
		}
	}
	return true
}

// MatchesSTARPattern is the stricter advisory validator: in addition to
// passing IsWellFormed, the question must positively match an
// example-eliciting phrasing. Used for quality scoring after generation,
// never as a generation-time filter.
func MatchesSTARPattern(question string) bool {
	if !IsWellFormed(question) {
		return false
	}
	for _, p := range starPatterns {
		if p.MatchString(question) {
			return true
		}
	}
	return false
}
