package vagueness

import "strings"

// industryTerm pairs an industry label with the jargon phrases that flag a
// requirement as vague for that industry. Iteration order is fixed; the first
// industry containing a matching term wins.
type industryTerm struct {
	industry string
	terms    []string
}

var industryVagueTerms = []industryTerm{
	{industry: "medical", terms: []string{
		"healthcare knowledge",
		"medical terminology",
		"patient care",
		"clinical experience",
		"hipaa compliant",
	}},
	{industry: "tech", terms: []string{
		"technical skills",
		"programming experience",
		"agile experience",
		"cloud knowledge",
		"full-stack",
	}},
	{industry: "sales", terms: []string{
		"sales experience",
		"customer relationships",
		"closing skills",
		"pipeline management",
		"quota achievement",
	}},
	{industry: "general", terms: []string{
		"professional demeanor",
		"work ethic",
		"reliable",
		"motivated",
		"flexible",
	}},
}

func matchIndustryTerm(requirement string) (string, bool) {
	lower := strings.ToLower(requirement)
	for _, entry := range industryVagueTerms {
		for _, term := range entry.terms {
			if strings.Contains(lower, term) {
				return entry.industry, true
			}
		}
	}
	return "", false
}

// generateSuggestions returns keyword-targeted remediation hints: three per
// triggered keyword, or three generic fallbacks when nothing triggers.
func generateSuggestions(requirement string) []string {
	lower := strings.ToLower(requirement)
	var suggestions []string

	if strings.Contains(lower, "experience") {
		suggestions = append(suggestions,
			"Specify the number of years required",
			"Define the specific tasks they should have performed",
			"Indicate the industry or setting of the experience",
		)
	}
	if strings.Contains(lower, "knowledge") {
		suggestions = append(suggestions,
			"List the specific facts or concepts they must know",
			"Specify the depth of knowledge required (basic, intermediate, expert)",
			"Identify how this knowledge will be applied in the role",
		)
	}
	if strings.Contains(lower, "skills") {
		suggestions = append(suggestions,
			"Name the specific tools or software they must use",
			"Define the proficiency level required",
			"Specify the frequency of skill usage (daily, weekly, occasional)",
		)
	}
	if strings.Contains(lower, "communication") {
		suggestions = append(suggestions,
			"Specify the audience (patients, executives, team members)",
			"Define the format (written, verbal, presentations)",
			"Indicate volume (how many interactions per day)",
		)
	}
	if strings.Contains(lower, "customer service") {
		suggestions = append(suggestions,
			"Define the types of customer issues they will handle",
			"Specify the volume of customers per day",
			"Indicate the resolution rate or satisfaction score expected",
		)
	}

	if len(suggestions) == 0 {
		return []string{
			"Define specific, measurable criteria",
			"Include performance metrics or volume expectations",
			"Specify the tools, systems, or processes involved",
		}
	}
	return suggestions
}

func industrySuggestions(industry string) []string {
	switch industry {
	case "medical":
		return []string{
			"Specify which EMR/EHR systems",
			"Define which medical specialties",
			"List specific procedures they must know",
			"Indicate patient volume expectations",
			"Specify which regulations or compliance standards",
		}
	case "tech":
		return []string{
			"List specific programming languages",
			"Name the frameworks and libraries",
			"Specify the development environment",
			"Define code quality metrics",
			"Indicate deployment frequency",
		}
	case "sales":
		return []string{
			"Specify average deal size",
			"Define the sales cycle length",
			"Indicate quota expectations",
			"Specify the CRM system",
			"Define the target market",
		}
	default:
		return []string{
			"Provide specific behavioral examples",
			"Define measurable outcomes",
			"Specify the frequency of the behavior",
			"Indicate the context where this applies",
		}
	}
}
