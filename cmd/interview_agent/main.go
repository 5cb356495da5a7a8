// Package main provides the entry point for the interview script builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_agent",
	Short: "Interview Script Builder",
	Long:  "Interview Script Builder turns job descriptions into structured STAR-format behavioral interview scripts: it extracts requirements, flags vague language, classifies must-haves, and generates validated questions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
