package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-scripter/internal/classification"
	"github.com/jonathan/interview-scripter/internal/observability"
	"github.com/jonathan/interview-scripter/internal/questions"
	"github.com/jonathan/interview-scripter/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an interview script from classified requirements",
	Long: `Generate STAR-format interview questions from an analyzed requirements
file. Every requirement must carry a complete classification (the three
decision-tree answers) before questions are generated; nice-to-haves are
left out of the script.`,
	RunE: runGenerate,
}

var (
	generateInput    string
	generateCompany  string
	generatePosition string
	generateOut      string
)

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "requirements", "r", "", "Path to analyzed requirements JSON (required)")
	generateCmd.Flags().StringVarP(&generateCompany, "company", "c", "", "Hiring company name (overrides the requirements file)")
	generateCmd.Flags().StringVarP(&generatePosition, "position", "p", "", "Position title (overrides the requirements file)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Path to write the script JSON (defaults to stdout)")

	generateCmd.MarkFlagRequired("requirements") //nolint:errcheck

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	input, err := loadAnalysis(generateInput)
	if err != nil {
		return err
	}
	if generateCompany != "" {
		input.CompanyName = generateCompany
	}
	if generatePosition != "" {
		input.PositionTitle = generatePosition
	}

	for i := range input.Requirements {
		classification.Apply(&input.Requirements[i])
	}
	if !classification.AllComplete(input.Requirements) {
		var pending []string
		for _, req := range input.Requirements {
			if !classification.IsComplete(req) {
				pending = append(pending, req.Text)
			}
		}
		return fmt.Errorf("%d requirement(s) are not fully classified yet (answer all three questions first): %v", len(pending), pending)
	}

	script := types.InterviewScript{
		CompanyName:   input.CompanyName,
		PositionTitle: input.PositionTitle,
		Requirements:  input.Requirements,
		Questions:     questions.NewGenerator().GenerateScript(input.Requirements),
	}

	printer := observability.NewPrinter(os.Stderr)
	printer.PrintScript(&script)

	data, err := json.MarshalIndent(script, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal script: %w", err)
	}
	if generateOut == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(data))
		return nil
	}
	if err := os.WriteFile(generateOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", generateOut, err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "Wrote script with %d questions to %s\n", len(script.Questions), generateOut)
	return nil
}

// loadAnalysis reads an analyzed requirements file. A bare JSON array of
// requirements is accepted as well as the full analysis document.
func loadAnalysis(path string) (*analysisOutput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements file: %w", err)
	}

	var out analysisOutput
	if err := json.Unmarshal(data, &out); err != nil {
		var reqs []types.Requirement
		if arrErr := json.Unmarshal(data, &reqs); arrErr != nil {
			return nil, fmt.Errorf("failed to parse requirements JSON: %w", err)
		}
		out = analysisOutput{Requirements: reqs}
	}
	if len(out.Requirements) == 0 {
		return nil, fmt.Errorf("requirements file %s contains no requirements", path)
	}
	return &out, nil
}
