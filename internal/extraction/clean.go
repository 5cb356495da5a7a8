package extraction

import (
	"regexp"
	"strings"
)

// boilerplatePrefixes are stripped from the front of a fragment, repeatedly,
// until none apply.
var boilerplatePrefixes = []string{
	"must have", "should have", "required:", "preferred:",
	"minimum", "at least", "proven", "demonstrated",
	"must be", "should be", "needs to have", "looking for",
	"proficiency in", "proficiency with",
}

// synonymPhrases normalizes common multi-word phrasings to one canonical
// form before deduplication. Checked in declaration order.
var synonymPhrases = []struct {
	pattern   *regexp.Regexp
	canonical string
}{
	{regexp.MustCompile(`(?i)\binterpersonal and communication skills\b`), "communication skills"},
	{regexp.MustCompile(`(?i)\bverbal and written communication\b`), "communication skills"},
	{regexp.MustCompile(`(?i)\belectronic medical records?\b`), "EMR"},
	{regexp.MustCompile(`(?i)\belectronic health records?\b`), "EHR"},
	{regexp.MustCompile(`(?i)\bmedical assistant certification\b`), "Medical Assistant certification"},
}

// knownAcronyms get upper-cased wherever they appear, whatever the source
// casing was.
var knownAcronyms = []string{"EMR", "EHR", "CPR", "HIPAA", "CMA", "RMA", "WPM", "SQL", "AWS"}

var acronymPatterns = func() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(knownAcronyms))
	for _, a := range knownAcronyms {
		out[a] = regexp.MustCompile(`(?i)\b` + a + `\b`)
	}
	return out
}()

// CleanRequirementText strips numbering and boilerplate prefixes, applies the
// synonym map and acronym casing, trims trailing punctuation, and capitalizes
// the first letter.
func CleanRequirementText(text string) string {
	cleaned := numberingPattern.ReplaceAllString(text, "")
	cleaned = strings.TrimSpace(cleaned)

	for {
		stripped := false
		lower := strings.ToLower(cleaned)
		for _, prefix := range boilerplatePrefixes {
			if strings.HasPrefix(lower, prefix) {
				cleaned = strings.TrimSpace(cleaned[len(prefix):])
				stripped = true
				break
			}
		}
		if !stripped {
			break
		}
	}

	for _, syn := range synonymPhrases {
		cleaned = syn.pattern.ReplaceAllString(cleaned, syn.canonical)
	}
	for acronym, pattern := range acronymPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, acronym)
	}

	cleaned = strings.TrimRight(cleaned, ".:;, ")
	if cleaned == "" {
		return ""
	}
	return strings.ToUpper(cleaned[:1]) + cleaned[1:]
}
