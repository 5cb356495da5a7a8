package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-scripter/internal/scoring"
	"github.com/jonathan/interview-scripter/internal/types"
)

func TestPrintRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	requirements := []types.Requirement{
		{Text: "EMR data entry", KSAOCategory: types.KSAOSkills, FinalClassification: types.ClassMustHave},
		{Text: "Strong communication skills", KSAOCategory: types.KSAOSkills},
	}

	p.PrintRequirements(requirements)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED REQUIREMENTS")
	assert.Contains(t, output, "EMR data entry")
	assert.Contains(t, output, "Skills")
	assert.Contains(t, output, "must-have")
	assert.Contains(t, output, "Strong communication skills")
}

func TestPrintRequirements_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRequirements_Truncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var requirements []types.Requirement
	for i := 0; i < 8; i++ {
		requirements = append(requirements, types.Requirement{Text: "Requirement"})
	}

	p.PrintRequirements(requirements)

	assert.Contains(t, buf.String(), "and 3 more requirements")
}

func TestPrintVagueness_Vague(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintVagueness("Strong communication skills", types.VaguenessAnalysis{
		IsVague:     true,
		Confidence:  0.75,
		Reason:      "Contains vague terms that need definition",
		Suggestions: []string{"Who do they communicate with?", "What format?", "How often?", "Extra"},
	})
	output := buf.String()

	assert.Contains(t, output, "VAGUENESS CHECK")
	assert.Contains(t, output, "Vague (75% confidence)")
	assert.Contains(t, output, "Who do they communicate with?")
	assert.Contains(t, output, "and 1 more")
}

func TestPrintVagueness_Specific(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintVagueness("5+ years billing experience", types.VaguenessAnalysis{
		IsVague:    false,
		Confidence: 0.9,
		Reason:     "Contains specific, measurable criteria",
	})

	assert.Contains(t, buf.String(), "Specific (90% confidence)")
}

func TestPrintScript(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	script := &types.InterviewScript{
		CompanyName:   "Valley Medical Group",
		PositionTitle: "Medical Assistant",
		Questions: []types.InterviewQuestion{
			{ID: "req-1-q1", Question: "Tell me about your EMR experience.", IsSTAR: true, FollowUps: []string{"Which system?"}, Kind: types.KindRequirement},
			{ID: "nature-1", Question: "What does your ideal workday look like?", Kind: types.KindNatureDiscovery},
		},
	}

	p.PrintScript(script)
	output := buf.String()

	assert.Contains(t, output, "INTERVIEW SCRIPT")
	assert.Contains(t, output, "Medical Assistant")
	assert.Contains(t, output, "Questions: 2 (1 STAR, 1 discovery)")
	assert.Contains(t, output, "1. Tell me about your EMR experience.")
}

func TestPrintScript_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScript(nil)

	assert.Empty(t, buf.String())
}

func TestPrintScorecard(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScorecard(scoring.Summary{
		Overall:    types.ScoreMaybe,
		MustHave:   scoring.Tally{Pass: 2, Maybe: 1},
		Discovery:  scoring.Tally{Pass: 1},
		Unanswered: 1,
	})
	output := buf.String()

	assert.Contains(t, output, "INTERVIEW SCORECARD")
	assert.Contains(t, output, "Overall: MAYBE")
	assert.Contains(t, output, "Must-have:")
	assert.Contains(t, output, "Unanswered questions: 1")
	// Empty buckets are omitted.
	assert.NotContains(t, output, "Will-train:")
}

func TestPrintBox_LineTruncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := strings.Repeat("x", 100)
	p.printBox("TITLE", long)

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
