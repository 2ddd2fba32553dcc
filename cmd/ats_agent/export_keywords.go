package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-ats/internal/ats"
)

var exportKeywordsCmd = &cobra.Command{
	Use:   "export-keywords",
	Short: "Export analysis keywords as CSV or JSON",
	RunE:  runExportKeywords,
}

var (
	exportAnalysisFile string
	exportFormat       string
	exportOutFile      string
)

func init() {
	exportKeywordsCmd.Flags().StringVar(&exportAnalysisFile, "analysis", "", "Path to analysis JSON (required)")
	exportKeywordsCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv or json")
	exportKeywordsCmd.Flags().StringVarP(&exportOutFile, "out", "o", "", "Path to output file (default stdout)")
	_ = exportKeywordsCmd.MarkFlagRequired("analysis")

	rootCmd.AddCommand(exportKeywordsCmd)
}

func runExportKeywords(cmd *cobra.Command, _ []string) error {
	if exportFormat != "csv" && exportFormat != "json" {
		return fmt.Errorf("invalid --format %q: must be csv or json", exportFormat)
	}

	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	result, err := loadAnalysis(exportAnalysisFile)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if exportFormat == "csv" {
		err = ats.WriteKeywordsCSV(&buf, result)
	} else {
		err = ats.WriteResultJSON(&buf, result)
	}
	if err != nil {
		return fmt.Errorf("failed to export keywords: %w", err)
	}
	return rt.writeOutput(exportOutFile, buf.Bytes())
}
