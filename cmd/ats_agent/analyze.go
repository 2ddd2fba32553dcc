package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-ats/internal/ats"
	"github.com/jonathan/job-ats/internal/ingestion"
	"github.com/jonathan/job-ats/internal/schemas"
	"github.com/jonathan/job-ats/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a CV against a job posting and list suggestions",
	Long: "Analyze a CV JSON against a job: a ParsedJob or normalized job JSON, or a raw posting file " +
		"which is parsed first. Prints the ATS analysis result as JSON.",
	RunE: runAnalyze,
}

var (
	analyzeCVFile     string
	analyzeJobFile    string
	analyzeWeights    string
	analyzeImportance bool
	analyzeOutFile    string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCVFile, "cv", "", "Path to CV JSON (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job", "", "Path to job JSON or posting file (required)")
	analyzeCmd.Flags().StringVar(&analyzeWeights, "weights", "", "Component weights, e.g. keywords=0.5,sections=0.2")
	analyzeCmd.Flags().BoolVar(&analyzeImportance, "importance", false, "Include per-keyword importance metadata")
	analyzeCmd.Flags().StringVarP(&analyzeOutFile, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = analyzeCmd.MarkFlagRequired("cv")
	_ = analyzeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	cv, err := loadCV(analyzeCVFile)
	if err != nil {
		return err
	}

	weights, err := resolveWeights(analyzeWeights, rt.cfg.Weights)
	if err != nil {
		return err
	}

	job, err := rt.loadJobView(cmd.Context(), analyzeJobFile)
	if err != nil {
		return err
	}

	result := ats.Analyze(cv, job, ats.Options{Importance: analyzeImportance, Weights: weights})
	if result == nil {
		return fmt.Errorf("nothing to analyze")
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	if err := schemas.ValidateAnalysis(data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("analysis does not validate against schema: %w", err)
		}
		rt.logger.Warn("could not validate analysis against schema", zap.Error(err))
	}

	rt.logger.Info("analyzed CV",
		zap.Int("score", result.Score),
		zap.Int("matched", len(result.MatchedKeywords)),
		zap.Int("missing", len(result.MissingKeywords)),
		zap.Int("suggestions", len(result.Suggestions)),
	)
	if rt.cfg.Verbose {
		rt.printer.PrintAnalysis(result)
	}

	return rt.writeOutput(analyzeOutFile, append(data, '\n'))
}

// loadAnalysis reads and schema-validates an analysis file
func loadAnalysis(path string) (*types.ATSAnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis: %w", err)
	}
	if err := schemas.ValidateAnalysis(data); err != nil {
		return nil, fmt.Errorf("analysis does not validate against schema: %w", err)
	}
	var result types.ATSAnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse analysis: %w", err)
	}
	return &result, nil
}

// loadCV reads and schema-validates a CV file
func loadCV(path string) (*types.CVData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CV: %w", err)
	}
	if err := schemas.ValidateCV(data); err != nil {
		return nil, fmt.Errorf("CV does not validate against schema: %w", err)
	}
	var cv types.CVData
	if err := json.Unmarshal(data, &cv); err != nil {
		return nil, fmt.Errorf("failed to parse CV: %w", err)
	}
	return &cv, nil
}

// resolveWeights prefers the flag over configured weights; neither means no weighted score
func resolveWeights(flag string, configured *types.Weights) (*types.Weights, error) {
	var raw types.Weights
	switch {
	case strings.TrimSpace(flag) != "":
		w, err := ats.ParseWeights(flag)
		if err != nil {
			return nil, err
		}
		raw = w
	case configured != nil:
		raw = *configured
	default:
		return nil, nil
	}

	w, err := ats.NormalizeWeights(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}
	return &w, nil
}

// loadJobView reads a job for analysis. JSON files hold either a ParsedJob
// (recognized by its "overall" field) or a normalized job; anything else is
// parsed as a posting document.
func (rt *runtime) loadJobView(ctx context.Context, path string) (*types.JobView, error) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		doc, err := ingestion.DocumentFromFile(path, types.SourceDescriptor{})
		if err != nil {
			return nil, err
		}
		p, cleanup, err := rt.newPipeline(ctx, nil)
		if err != nil {
			return nil, err
		}
		defer cleanup()
		job, err := p.ParseDocument(ctx, doc)
		if err != nil {
			return nil, err
		}
		return job.View(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job: %w", err)
	}
	var probe struct {
		Overall *float64 `json:"overall"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse job: %w", err)
	}

	if probe.Overall != nil {
		var job types.ParsedJob
		if err := json.Unmarshal(data, &job); err != nil {
			return nil, fmt.Errorf("failed to parse job: %w", err)
		}
		return job.View(), nil
	}
	var job types.JobNormalized
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job: %w", err)
	}
	return job.View(), nil
}
