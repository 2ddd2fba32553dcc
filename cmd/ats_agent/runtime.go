package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/job-ats/internal/config"
	"github.com/jonathan/job-ats/internal/fetch"
	"github.com/jonathan/job-ats/internal/ingestion"
	"github.com/jonathan/job-ats/internal/logger"
	"github.com/jonathan/job-ats/internal/observability"
	"github.com/jonathan/job-ats/internal/parsing"
	"github.com/jonathan/job-ats/internal/pipeline"
)

// runtime carries what every command needs after config is resolved
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	printer *observability.Printer
	out     io.Writer
}

// loadRuntime resolves configuration (flags > env > file > defaults) and builds the logger
func loadRuntime(cmd *cobra.Command) (*runtime, error) {
	v := viper.New()
	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("verbose", flags.Lookup("verbose")); err != nil {
		return nil, fmt.Errorf("binding verbose flag: %w", err)
	}
	if err := v.BindPFlag("json_logs", flags.Lookup("json-logs")); err != nil {
		return nil, fmt.Errorf("binding json-logs flag: %w", err)
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	return &runtime{
		cfg:     cfg,
		logger:  log,
		printer: observability.NewPrinter(cmd.ErrOrStderr()),
		out:     cmd.OutOrStdout(),
	}, nil
}

// newPipeline wires fetch client, page cache, taxonomy and store into a pipeline.
// The returned cleanup closes the cache.
func (rt *runtime) newPipeline(ctx context.Context, store pipeline.JobStore) (*pipeline.Pipeline, func(), error) {
	cleanup := func() {}

	var cache fetch.Cache
	if rt.cfg.CachePath != "" {
		c, err := fetch.OpenSQLiteCache(ctx, rt.cfg.CachePath, rt.cfg.CacheTTL)
		if err != nil {
			return nil, cleanup, err
		}
		cache = c
		cleanup = func() { _ = c.Close() }
	}

	taxonomy := parsing.DefaultTaxonomy()
	if rt.cfg.TaxonomyPath != "" {
		t, err := parsing.LoadTaxonomy(rt.cfg.TaxonomyPath)
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		taxonomy = t
		rt.logger.Debug("loaded taxonomy", zap.String("path", rt.cfg.TaxonomyPath), zap.Int("terms", t.Size()))
	}

	client := fetch.NewClient(rt.cfg.FetchOptions(), cache, rt.logger)
	adapter := ingestion.NewAdapter(client, rt.logger)
	parser := parsing.NewParser(taxonomy, rt.logger)
	return pipeline.New(adapter, parser, store, rt.logger), cleanup, nil
}

// writeOutput writes data to path, or to the command output when path is empty
func (rt *runtime) writeOutput(path string, data []byte) error {
	if path == "" {
		if _, err := rt.out.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	rt.logger.Info("wrote output", zap.String("path", path))
	return nil
}

// writeJSON marshals v with indentation and writes it like writeOutput
func (rt *runtime) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return rt.writeOutput(path, append(data, '\n'))
}
