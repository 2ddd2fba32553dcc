package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-ats/internal/dedupe"
	"github.com/jonathan/job-ats/internal/schemas"
	"github.com/jonathan/job-ats/internal/types"
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Merge duplicate normalized jobs by fingerprint",
	Long:  "Read a JSON array of normalized jobs and keep one record per fingerprint, preferring the richer one.",
	RunE:  runDedupe,
}

var (
	dedupeInputFile string
	dedupeOutFile   string
)

func init() {
	dedupeCmd.Flags().StringVarP(&dedupeInputFile, "in", "i", "", "Path to a JSON array of normalized jobs (required)")
	dedupeCmd.Flags().StringVarP(&dedupeOutFile, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = dedupeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(dedupeCmd)
}

func runDedupe(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	data, err := os.ReadFile(dedupeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if err := schemas.ValidateJobs(data); err != nil {
		return fmt.Errorf("input does not validate against schema: %w", err)
	}

	var jobs []types.JobNormalized
	if err := json.Unmarshal(data, &jobs); err != nil {
		return fmt.Errorf("failed to parse input file: %w", err)
	}

	unique := dedupe.Dedupe(jobs)
	rt.logger.Info("deduplicated jobs", zap.Int("in", len(jobs)), zap.Int("out", len(unique)))
	if rt.cfg.Verbose {
		rt.printer.PrintJobs(unique)
	}

	return rt.writeJSON(dedupeOutFile, unique)
}
