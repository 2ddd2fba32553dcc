// Package pipeline provides the high-level orchestration of job-posting ingestion:
// document → format adapter → parser, and batch ingest with dedupe and storage.
package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-ats/internal/dedupe"
	"github.com/jonathan/job-ats/internal/ingestion"
	"github.com/jonathan/job-ats/internal/parsing"
	"github.com/jonathan/job-ats/internal/types"
)

// DefaultConcurrency is the number of documents IngestAll parses at once
const DefaultConcurrency = 4

// Step names reported in progress events
const (
	StepParse   = "parse"
	StepDedupe  = "dedupe"
	StepPersist = "persist"
)

// Step categories reported in progress events
const (
	CategoryIngestion = "ingestion"
	CategoryStorage   = "storage"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Index    int    `json:"index"`
	Total    int    `json:"total"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs.
// During IngestAll it may be called from several goroutines at once.
type ProgressCallback func(event ProgressEvent)

// DocumentAdapter converts a raw document to text. *ingestion.Adapter implements it.
type DocumentAdapter interface {
	Adapt(ctx context.Context, doc types.RawDocument) (*ingestion.Result, error)
}

// JobStore persists normalized jobs. *db.DB implements it.
type JobStore interface {
	UpsertJob(ctx context.Context, job types.JobNormalized) (bool, error)
}

// Pipeline wires the adapter, parser and optional store together
type Pipeline struct {
	adapter DocumentAdapter
	parser  *parsing.Parser
	store   JobStore
	logger  *zap.Logger
}

// New creates a pipeline. A nil adapter adapts local payloads only, a nil
// parser uses the default taxonomy, and a nil store disables persistence.
func New(adapter DocumentAdapter, parser *parsing.Parser, store JobStore, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if adapter == nil {
		adapter = ingestion.NewAdapter(nil, logger)
	}
	if parser == nil {
		parser = parsing.NewParser(nil, logger)
	}
	return &Pipeline{adapter: adapter, parser: parser, store: store, logger: logger}
}

// ParseDocument adapts and parses one document. Adapter failures produce a
// degraded ParsedJob; the only error returned is a canceled fetch.
func (p *Pipeline) ParseDocument(ctx context.Context, doc types.RawDocument) (types.ParsedJob, error) {
	adapted, err := p.adapter.Adapt(ctx, doc)
	if err != nil {
		return types.ParsedJob{}, err
	}
	return p.parser.Parse(adapted.Text, adapted.Hints, adapted.Source), nil
}

// IngestOptions holds configuration for a batch ingest
type IngestOptions struct {
	Concurrency int
	OnProgress  ProgressCallback
}

// IngestResult is the outcome of a batch ingest
type IngestResult struct {
	// Parsed holds one record per input document, in input order
	Parsed []types.ParsedJob `json:"parsed"`
	// Jobs are the deduplicated normalized records, sorted by fingerprint
	Jobs     []types.JobNormalized `json:"jobs"`
	Degraded int                   `json:"degraded"`
	Stored   int                   `json:"stored"`
	Kept     int                   `json:"kept"` // rows where the store already held a richer record
}

// IngestAll parses documents concurrently, then normalizes and deduplicates
// them and, when a store is configured, upserts the survivors. Each document
// is parsed by exactly one goroutine.
func (p *Pipeline) IngestAll(ctx context.Context, docs []types.RawDocument, opts IngestOptions) (*IngestResult, error) {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	parsed := make([]types.ParsedJob, len(docs))
	var done atomic.Int64

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, doc := range docs {
		g.Go(func() error {
			job, err := p.ParseDocument(gCtx, doc)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			parsed[i] = job
			n := int(done.Add(1))
			emitProgress(opts.OnProgress, StepParse, CategoryIngestion,
				fmt.Sprintf("Parsed %s", describeSource(job.Source)), n, len(docs), nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &IngestResult{Parsed: parsed}
	normalized := make([]types.JobNormalized, 0, len(parsed))
	for _, job := range parsed {
		if job.Source.Degraded() {
			result.Degraded++
		}
		normalized = append(normalized, dedupe.Normalize(job))
	}
	result.Jobs = dedupe.Dedupe(normalized)
	emitProgress(opts.OnProgress, StepDedupe, CategoryIngestion,
		fmt.Sprintf("Kept %d of %d postings after dedupe", len(result.Jobs), len(parsed)),
		len(result.Jobs), len(parsed), nil)

	p.logger.Info("ingested documents",
		zap.Int("documents", len(docs)),
		zap.Int("unique", len(result.Jobs)),
		zap.Int("degraded", result.Degraded),
	)

	if p.store == nil {
		return result, nil
	}
	for i, job := range result.Jobs {
		written, err := p.store.UpsertJob(ctx, job)
		if err != nil {
			return result, fmt.Errorf("failed to persist job %s: %w", job.Fingerprint, err)
		}
		if written {
			result.Stored++
		} else {
			result.Kept++
		}
		emitProgress(opts.OnProgress, StepPersist, CategoryStorage,
			fmt.Sprintf("Stored %s", job.Fingerprint[:12]), i+1, len(result.Jobs), nil)
	}
	return result, nil
}

// emitProgress calls the progress callback if configured
func emitProgress(cb ProgressCallback, step, category, message string, index, total int, content any) {
	if cb != nil {
		cb(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Index:    index,
			Total:    total,
			Content:  content,
		})
	}
}

func describeSource(src types.SourceDescriptor) string {
	switch {
	case src.Filename != "":
		return src.Filename
	case src.URL != "":
		return src.URL
	default:
		return "document"
	}
}
