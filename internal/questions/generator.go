package questions

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/interview-scripter/internal/metrics"
	"github.com/jonathan/interview-scripter/internal/types"
)

// defaultCacheCapacity bounds the generator's memoization cache.
const defaultCacheCapacity = 256

// fallbackPrefixPattern strips instruction-style prefixes before the
// requirement text is embedded in a fallback question.
var fallbackPrefixPattern = regexp.MustCompile(`(?i)^(must have|should have|required:|preferred:|ability to|capable of)`)

// Generator produces STAR interview questions for classified requirements.
// Generation is deterministic and memoized, so repeated calls for an
// unchanged requirement are idempotent and cheap.
type Generator struct {
	cache *questionCache
}

// NewGenerator returns a Generator with a bounded memoization cache.
func NewGenerator() *Generator {
	return &Generator{cache: newQuestionCache(defaultCacheCapacity)}
}

// GenerateForRequirement emits the interview questions for one requirement.
// It never fails: any error during template generation degrades to the
// static fallback pair.
func (g *Generator) GenerateForRequirement(req types.Requirement) []types.InterviewQuestion {
	key := cacheKey{requirementID: req.ID, category: req.KSAOCategory, definition: req.Definition}
	if cached, ok := g.cache.get(key); ok {
		return cached
	}

	generated, err := g.generateFromTemplates(req)
	if err != nil {
		return fallbackQuestions(req)
	}

	g.cache.put(key, generated)
	return generated
}

// generateFromTemplates is the template path. An unrecognized category or an
// empty template slice is an error so the caller can fall back.
func (g *Generator) generateFromTemplates(req types.Requirement) ([]types.InterviewQuestion, error) {
	category := req.KSAOCategory
	if category == "" {
		category = types.KSAOSkills
	}

	templates, ok := templateBank[category]
	if !ok || len(templates) == 0 {
		return nil, fmt.Errorf("no templates for category %q", category)
	}

	count := templateCount(category)
	// Under-specified requirements get fewer questions.
	if req.Definition == "" && count > 2 {
		count = 2
	}
	if count > len(templates) {
		count = len(templates)
	}

	questions := make([]types.InterviewQuestion, 0, count+1)
	for i, tmpl := range templates[:count] {
		followUps := make([]string, len(tmpl.FollowUps))
		for j, fu := range tmpl.FollowUps {
			followUps[j] = injectContext(fu, req)
		}
		questions = append(questions, types.InterviewQuestion{
			ID:               fmt.Sprintf("%s-smart-%d", req.ID, i),
			Question:         injectContext(tmpl.MainQuestion, req),
			RequirementID:    req.ID,
			Kind:             types.KindRequirement,
			ExpectedBehavior: strings.Join(tmpl.ExpectedBehaviors, "; "),
			IsSTAR:           true,
			FollowUps:        followUps,
		})
	}

	if req.Definition != "" && metrics.Contains(req.Definition) {
		questions = append(questions, metricQuestion(req))
	}

	return questions, nil
}

// injectContext substitutes the requirement text into a template. When the
// definition carries metrics, only the first one is appended parenthetically
// to keep questions short.
func injectContext(template string, req types.Requirement) string {
	text := strings.ToLower(req.Text)
	question := strings.ReplaceAll(template, placeholder, text)

	if req.Definition != "" && metrics.Contains(req.Definition) {
		if extracted := metrics.Extract(req.Definition); len(extracted) > 0 {
			question = strings.Replace(question, text,
				fmt.Sprintf("%s (achieving %s)", text, extracted[0]), 1)
		}
	}
	return question
}

// metricQuestion asks the candidate to describe an instance of meeting the
// definition's metrics.
func metricQuestion(req types.Requirement) types.InterviewQuestion {
	extracted := metrics.Extract(req.Definition)
	return types.InterviewQuestion{
		ID: req.ID + "-metric",
		Question: fmt.Sprintf(
			"Describe a specific time when you achieved %s while %s. Walk me through how you accomplished this.",
			strings.Join(extracted, " and "), strings.ToLower(req.Text)),
		RequirementID:    req.ID,
		Kind:             types.KindRequirement,
		ExpectedBehavior: "Demonstrates ability to meet specific performance metrics",
		IsSTAR:           true,
		FollowUps: []string{
			"How did you track your performance?",
			"What strategies helped you meet these targets?",
			"How consistent were you in hitting these metrics?",
		},
	}
}

// fallbackQuestions is the static pair used when template generation fails.
// It performs no lookups that can fail.
func fallbackQuestions(req types.Requirement) []types.InterviewQuestion {
	cleaned := strings.TrimSpace(fallbackPrefixPattern.ReplaceAllString(strings.ToLower(req.Text), ""))
	return []types.InterviewQuestion{
		{
			ID:               req.ID + "-fallback-1",
			Question:         fmt.Sprintf("Tell me about your experience with %s. Walk me through a specific example.", cleaned),
			RequirementID:    req.ID,
			Kind:             types.KindRequirement,
			ExpectedBehavior: "Demonstrates relevant experience with specific examples",
			IsSTAR:           true,
			FollowUps: []string{
				"What was the situation?",
				"What actions did you take?",
				"What was the outcome?",
			},
		},
		{
			ID:               req.ID + "-fallback-2",
			Question:         fmt.Sprintf("Describe a challenging situation involving %s. How did you handle it?", cleaned),
			RequirementID:    req.ID,
			Kind:             types.KindRequirement,
			ExpectedBehavior: "Shows problem-solving ability and resilience",
			IsSTAR:           true,
			FollowUps: []string{
				"What made it challenging?",
				"What alternatives did you consider?",
				"What did you learn from this experience?",
			},
		},
	}
}

// GenerateScript produces the full question list for a requirement set:
// must-haves first, then will-trains (stable within each class), nice-to-haves
// excluded entirely, and the nature-discovery block appended at the end.
func (g *Generator) GenerateScript(requirements []types.Requirement) []types.InterviewQuestion {
	ordered := make([]types.Requirement, 0, len(requirements))
	for _, req := range requirements {
		if req.FinalClassification == types.ClassMustHave || req.FinalClassification == types.ClassWillTrain {
			ordered = append(ordered, req)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return classRank(ordered[i].FinalClassification) < classRank(ordered[j].FinalClassification)
	})

	var questions []types.InterviewQuestion
	for _, req := range ordered {
		questions = append(questions, g.GenerateForRequirement(req)...)
	}
	questions = append(questions, NatureDiscoveryQuestions...)
	return questions
}

func classRank(class types.FinalClassification) int {
	switch class {
	case types.ClassMustHave:
		return 0
	case types.ClassWillTrain:
		return 1
	default:
		return 2
	}
}
