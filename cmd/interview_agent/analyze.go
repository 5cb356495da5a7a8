package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-scripter/internal/config"
	"github.com/jonathan/interview-scripter/internal/db"
	"github.com/jonathan/interview-scripter/internal/enrichment"
	"github.com/jonathan/interview-scripter/internal/extraction"
	"github.com/jonathan/interview-scripter/internal/fetch"
	"github.com/jonathan/interview-scripter/internal/ksao"
	"github.com/jonathan/interview-scripter/internal/llm"
	"github.com/jonathan/interview-scripter/internal/observability"
	"github.com/jonathan/interview-scripter/internal/types"
	"github.com/jonathan/interview-scripter/internal/vagueness"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract and analyze requirements from a job description",
	Long: `Extract requirements from a job description file or URL, categorize each
one against the KSAO framework, and flag vague requirements that need
definition before the interview. The output file feeds the generate command.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath  string
	analyzeJob         string
	analyzeJobURL      string
	analyzeCompany     string
	analyzePosition    string
	analyzeIndustry    string
	analyzeUseAI       bool
	analyzeAPIKey      string
	analyzeDatabaseURL string
	analyzeOut         string
	analyzeVerbose     bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	analyzeCmd.Flags().StringVarP(&analyzeCompany, "company", "c", "", "Hiring company name")
	analyzeCmd.Flags().StringVarP(&analyzePosition, "position", "p", "", "Position title")
	analyzeCmd.Flags().StringVar(&analyzeIndustry, "industry", "", "Industry for vagueness suggestions (medical, tech, sales, general)")
	analyzeCmd.Flags().BoolVar(&analyzeUseAI, "ai", false, "Use AI-backed extraction (falls back to local on failure)")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Path to write the analyzed requirements JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print vagueness detail for every requirement")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for the fetched-page cache
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL for the page cache (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("company") {
		cfg.Company = analyzeCompany
	}
	if cmd.Flags().Changed("position") {
		cfg.Position = analyzePosition
	}
	if cmd.Flags().Changed("industry") {
		cfg.Industry = analyzeIndustry
	}
	if cmd.Flags().Changed("ai") {
		cfg.UseAI = analyzeUseAI
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{Industry: "general"})

	// Step 4: Validate required fields
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// Step 5: API key handling; the key is optional and only gates AI extraction
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	jobDescription, err := readJobDescription(ctx, cfg)
	if err != nil {
		return err
	}

	requirements, source, err := extractRequirements(ctx, cfg, jobDescription)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		_, _ = fmt.Fprintf(os.Stdout, "Extraction source: %s\n", source)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRequirements(requirements)

	for _, req := range requirements {
		analysis := vagueness.Detect(req.Text)
		if analysis.IsVague || cfg.Verbose {
			printer.PrintVagueness(req.Text, analysis)
		}
	}

	if analyzeOut != "" {
		if err := writeRequirements(analyzeOut, cfg, requirements); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %d requirements to %s\n", len(requirements), analyzeOut)
	}
	return nil
}

// readJobDescription loads the job description from the configured file or
// URL. URL fetches go through the page cache when a database is configured.
func readJobDescription(ctx context.Context, cfg config.Config) (string, error) {
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	}

	var database *db.DB
	if cfg.DatabaseURL != "" {
		d, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("failed to connect to database: %w", err)
		}
		defer d.Close()
		if err := d.EnsureSchema(ctx); err != nil {
			return "", fmt.Errorf("failed to ensure schema: %w", err)
		}
		database = d
	}

	fetcher := fetch.NewCachedFetcher(database, nil)
	result, err := fetcher.Fetch(ctx, cfg.JobURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	if cfg.Verbose && result.FromCache {
		_, _ = fmt.Fprintln(os.Stdout, "Using cached copy of job posting")
	}
	return result.Text, nil
}

// extractRequirements runs AI extraction when requested and available,
// falling back to the local extractor, and tags each requirement with its
// KSAO category.
func extractRequirements(ctx context.Context, cfg config.Config, jobDescription string) ([]types.Requirement, string, error) {
	source := "local"
	var texts []string

	if cfg.UseAI && cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.APIKey)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close() //nolint:errcheck

		aiTexts, err := enrichment.NewService(client).ExtractRequirements(ctx, jobDescription)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "AI extraction failed, falling back to local: %v\n", err)
		} else {
			texts = aiTexts
			source = "ai"
		}
	}
	if texts == nil {
		texts = extraction.ExtractLocal(jobDescription)
	}
	if len(texts) > extraction.MaxRequirements {
		texts = texts[:extraction.MaxRequirements]
	}
	if len(texts) == 0 {
		return nil, "", fmt.Errorf("no requirements found in job description")
	}

	requirements := extraction.ToRequirements(texts)
	for i := range requirements {
		requirements[i].KSAOCategory = ksao.Categorize(requirements[i].Text)
	}
	return requirements, source, nil
}

// analysisOutput is the JSON document written by --out and read back by the
// generate command.
type analysisOutput struct {
	CompanyName   string              `json:"company_name,omitempty"`
	PositionTitle string              `json:"position_title,omitempty"`
	Industry      string              `json:"industry,omitempty"`
	Requirements  []types.Requirement `json:"requirements"`
}

func writeRequirements(path string, cfg config.Config, requirements []types.Requirement) error {
	out := analysisOutput{
		CompanyName:   cfg.Company,
		PositionTitle: cfg.Position,
		Industry:      cfg.Industry,
		Requirements:  requirements,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal requirements: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
