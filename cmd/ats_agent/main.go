// Package main provides the ats_agent CLI: job-posting ingestion and ATS analysis.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_agent",
	Short: "Job posting ingestion and ATS resume analysis",
	Long: "ats_agent parses job postings (text, HTML, PDF, DOCX) into confidence-scored records, " +
		"deduplicates and stores them, and scores CVs against postings with actionable suggestions.",
	SilenceUsage: true,
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ats_agent.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json-logs", "j", false, "json format for logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
