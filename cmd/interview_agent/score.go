package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-scripter/internal/db"
	"github.com/jonathan/interview-scripter/internal/observability"
	"github.com/jonathan/interview-scripter/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print the scorecard for a stored interview session",
	RunE:  runScore,
}

var (
	scoreSessionID   string
	scoreDatabaseURL string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreSessionID, "session", "s", "", "Session ID (required)")
	scoreCmd.Flags().StringVar(&scoreDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	scoreCmd.MarkFlagRequired("session") //nolint:errcheck

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := scoreDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	session, err := database.GetSession(ctx, scoreSessionID)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return fmt.Errorf("session not found: %s", scoreSessionID)
	}
	if len(session.Responses) == 0 {
		return fmt.Errorf("session %s has no recorded responses", scoreSessionID)
	}

	summary := scoring.Summarize(session.Script, session.Responses)
	observability.NewPrinter(os.Stdout).PrintScorecard(summary)
	return nil
}
