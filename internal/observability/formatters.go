// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/interview-scripter/internal/scoring"
	"github.com/jonathan/interview-scripter/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirements outputs the analyzed requirements with their KSAO
// categories and classification state.
func (p *Printer) PrintRequirements(requirements []types.Requirement) {
	if len(requirements) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d requirements:\n\n", len(requirements)))

	count := min(len(requirements), maxItemsToShow)
	for i := 0; i < count; i++ {
		req := requirements[i]
		text := req.Text
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", text))

		tags := []string{}
		if req.KSAOCategory != "" {
			tags = append(tags, string(req.KSAOCategory))
		}
		if req.FinalClassification != "" {
			tags = append(tags, string(req.FinalClassification))
		}
		if len(tags) > 0 {
			sb.WriteString(fmt.Sprintf("  [%s]\n", strings.Join(tags, " ")))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(requirements) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more requirements", len(requirements)-maxItemsToShow))
	}

	p.printBox("EXTRACTED REQUIREMENTS", sb.String())
}

// PrintVagueness outputs the vagueness analysis for one requirement.
func (p *Printer) PrintVagueness(requirement string, analysis types.VaguenessAnalysis) {
	var sb strings.Builder

	text := requirement
	if len(text) > 50 {
		text = text[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Requirement: %s\n", text))

	if analysis.IsVague {
		sb.WriteString(fmt.Sprintf("⚠ Vague (%.0f%% confidence)\n", analysis.Confidence*100))
	} else {
		sb.WriteString(fmt.Sprintf("✓ Specific (%.0f%% confidence)\n", analysis.Confidence*100))
	}
	sb.WriteString(fmt.Sprintf("Reason: %s\n", analysis.Reason))

	if len(analysis.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(analysis.Suggestions), 3)
		for i := 0; i < count; i++ {
			suggestion := analysis.Suggestions[i]
			if len(suggestion) > 50 {
				suggestion = suggestion[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", suggestion))
		}
		if len(analysis.Suggestions) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Suggestions)-3))
		}
	}

	p.printBox("VAGUENESS CHECK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScript outputs a summary of the generated interview script.
func (p *Printer) PrintScript(script *types.InterviewScript) {
	if script == nil || len(script.Questions) == 0 {
		return
	}

	var sb strings.Builder
	if script.PositionTitle != "" {
		sb.WriteString(fmt.Sprintf("Position: %s\n", script.PositionTitle))
	}
	if script.CompanyName != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", script.CompanyName))
	}

	starCount := 0
	discoveryCount := 0
	for _, q := range script.Questions {
		if q.IsSTAR {
			starCount++
		}
		if q.Kind == types.KindNatureDiscovery {
			discoveryCount++
		}
	}
	sb.WriteString(fmt.Sprintf("Questions: %d (%d STAR, %d discovery)\n\n", len(script.Questions), starCount, discoveryCount))

	count := min(len(script.Questions), maxItemsToShow)
	for i := 0; i < count; i++ {
		q := script.Questions[i]
		text := q.Question
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, text))
	}

	if len(script.Questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more questions", len(script.Questions)-maxItemsToShow))
	}

	p.printBox("INTERVIEW SCRIPT", sb.String())
}

// PrintScorecard outputs the scored interview summary.
func (p *Printer) PrintScorecard(summary scoring.Summary) {
	var sb strings.Builder

	switch summary.Overall {
	case types.ScorePass:
		sb.WriteString("✓ Overall: PASS\n\n")
	case types.ScoreFail:
		sb.WriteString("✗ Overall: FAIL\n\n")
	default:
		sb.WriteString("? Overall: MAYBE\n\n")
	}

	writeTally := func(label string, t scoring.Tally) {
		if t.Total() == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("%-12s pass %d / maybe %d / fail %d\n", label, t.Pass, t.Maybe, t.Fail))
	}
	writeTally("Must-have:", summary.MustHave)
	writeTally("Will-train:", summary.WillTrain)
	writeTally("Discovery:", summary.Discovery)

	if summary.Unanswered > 0 {
		sb.WriteString(fmt.Sprintf("\nUnanswered questions: %d", summary.Unanswered))
	}

	p.printBox("INTERVIEW SCORECARD", strings.TrimSuffix(sb.String(), "\n"))
}
