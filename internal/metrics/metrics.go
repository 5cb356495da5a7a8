// Package metrics pulls numeric performance tokens (percentages, volumes,
// time frames, rates) out of free-text requirement definitions so they can be
// injected into generated interview questions.
package metrics

import "regexp"

var (
	percentPattern   = regexp.MustCompile(`\d+%`)
	volumePattern    = regexp.MustCompile(`(?i)\d+\+?\s*(calls|emails|tickets|patients|claims|records)`)
	timeFramePattern = regexp.MustCompile(`(?i)(within\s+)?\d+\s*(hours?|days?|minutes?)`)
	ratePattern      = regexp.MustCompile(`(?i)\d+\s*per\s*(hour|day|week|month)`)

	containsPattern = regexp.MustCompile(`(?i)\d+|%|per\s+(day|hour|week|month)|within\s+\d+`)
)

// Extract returns the metric tokens found in a definition. The result follows
// a fixed scan order (percentages, volumes, time frames, rates), not token
// position in the source text.
func Extract(definition string) []string {
	var out []string
	out = append(out, percentPattern.FindAllString(definition, -1)...)
	out = append(out, volumePattern.FindAllString(definition, -1)...)
	out = append(out, timeFramePattern.FindAllString(definition, -1)...)
	out = append(out, ratePattern.FindAllString(definition, -1)...)
	return out
}

// Contains reports whether the text carries anything metric-like: digits, a
// percent sign, a "per <period>" phrase, or "within N".
func Contains(text string) bool {
	return containsPattern.MatchString(text)
}
