package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-ats/internal/db"
	"github.com/jonathan/job-ats/internal/ingestion"
	"github.com/jonathan/job-ats/internal/pipeline"
	"github.com/jonathan/job-ats/internal/types"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [FILES...]",
	Short: "Parse many postings, deduplicate them and optionally store them",
	Long: "Parse every posting file given as argument or found in --dir, merge duplicates by fingerprint " +
		"keeping the richer record, and upsert the survivors into PostgreSQL when a database URL is set.",
	RunE: runIngest,
}

var (
	ingestDir         string
	ingestDatabaseURL string
	ingestConcurrency int
	ingestOutFile     string
)

func init() {
	ingestCmd.Flags().StringVar(&ingestDir, "dir", "", "Directory of posting files (non-recursive)")
	ingestCmd.Flags().StringVar(&ingestDatabaseURL, "db-url", "", "Database URL (overrides database_url config)")
	ingestCmd.Flags().IntVar(&ingestConcurrency, "concurrency", 0, "Documents parsed at once (default from config)")
	ingestCmd.Flags().StringVarP(&ingestOutFile, "out", "o", "", "Path to output JSON file of unique jobs (default stdout)")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(ingestDir, args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no posting files given: pass FILES or --dir")
	}

	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()
	ctx := cmd.Context()

	docs := make([]types.RawDocument, 0, len(files))
	for _, f := range files {
		doc, err := ingestion.DocumentFromFile(f, types.SourceDescriptor{})
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	databaseURL := ingestDatabaseURL
	if databaseURL == "" {
		databaseURL = rt.cfg.DatabaseURL
	}
	var store pipeline.JobStore
	if databaseURL != "" {
		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
		store = database
	}

	p, cleanup, err := rt.newPipeline(ctx, store)
	if err != nil {
		return err
	}
	defer cleanup()

	concurrency := ingestConcurrency
	if concurrency <= 0 {
		concurrency = rt.cfg.Concurrency
	}
	result, err := p.IngestAll(ctx, docs, pipeline.IngestOptions{
		Concurrency: concurrency,
		OnProgress: func(e pipeline.ProgressEvent) {
			rt.logger.Debug(e.Message, zap.String("step", e.Step), zap.Int("index", e.Index), zap.Int("total", e.Total))
		},
	})
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	rt.logger.Info("ingest complete",
		zap.Int("files", len(files)),
		zap.Int("unique", len(result.Jobs)),
		zap.Int("degraded", result.Degraded),
		zap.Int("stored", result.Stored),
		zap.Int("kept", result.Kept),
	)
	if rt.cfg.Verbose {
		rt.printer.PrintJobs(result.Jobs)
	}

	return rt.writeJSON(ingestOutFile, result.Jobs)
}

// collectFiles returns the explicit files followed by the supported files in dir, sorted by name
func collectFiles(dir string, explicit []string) ([]string, error) {
	files := append([]string(nil), explicit...)
	if dir == "" {
		return files, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	var found []string
	for _, e := range entries {
		if e.IsDir() || !ingestion.IsSupportedFile(e.Name()) {
			continue
		}
		found = append(found, filepath.Join(dir, e.Name()))
	}
	sort.Strings(found)
	return append(files, found...), nil
}
