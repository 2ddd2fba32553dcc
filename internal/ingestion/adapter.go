// Package ingestion turns raw job-posting documents (text, HTML, PDF, DOCX)
// into plain text plus structured hints. Adapters never fail: problems are
// recorded on the source descriptor and the document degrades to empty text.
// The only error Adapt returns is a canceled fetch.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/job-ats/internal/fetch"
	"github.com/jonathan/job-ats/internal/types"
)

// Fetcher retrieves a remote document. *fetch.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Result, error)
}

// Result is the output of a format adapter
type Result struct {
	Text   string                 `json:"text"`
	Hints  *types.Hints           `json:"hints,omitempty"`
	Source types.SourceDescriptor `json:"source"`
}

// Adapter dispatches documents to the adapter for their kind
type Adapter struct {
	fetcher Fetcher
	logger  *zap.Logger
	now     func() time.Time
}

// NewAdapter creates an adapter. fetcher may be nil when only local payloads are adapted.
func NewAdapter(fetcher Fetcher, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{fetcher: fetcher, logger: logger, now: time.Now}
}

// Adapt converts one document to text. A document with an empty payload and a
// URL is fetched first. Fetch cancellation is returned as fetch.ErrCanceled;
// every other failure yields a degraded Result with Source.Error set.
func (a *Adapter) Adapt(ctx context.Context, doc types.RawDocument) (*Result, error) {
	src := doc.Source
	kind := doc.Kind
	payload := doc.Payload

	if len(payload) == 0 && src.URL != "" {
		fetched, err := a.fetchRemote(ctx, src.URL)
		if err != nil {
			if errors.Is(err, fetch.ErrCanceled) {
				return nil, err
			}
			return a.degrade(src, kind, err), nil
		}
		payload = fetched.Body
		src.FetchedAt = a.now().UTC().Format(time.RFC3339)
		if kind == "" {
			kind = DetectKind(fetched.ContentType, src.URL, payload)
		}
	}

	if len(payload) == 0 {
		return a.degrade(src, kind, &AdapterError{Kind: kind, Message: "nothing to adapt", Cause: ErrEmptyDocument}), nil
	}
	if kind == "" {
		name := src.Filename
		if name == "" {
			name = src.URL
		}
		kind = DetectKind("", name, payload)
	}
	src.Kind = kind

	text, hints, err := adaptPayload(kind, payload, src)
	if err != nil {
		return a.degrade(src, kind, err), nil
	}

	a.logger.Debug("adapted document",
		zap.String("kind", string(kind)),
		zap.Int("chars", len(text)),
		zap.Bool("hints", hints != nil),
	)
	return &Result{Text: text, Hints: hints, Source: stampSource(src, text, a.now())}, nil
}

func adaptPayload(kind types.DocumentKind, payload []byte, src types.SourceDescriptor) (string, *types.Hints, error) {
	switch kind {
	case types.KindText:
		return AdaptText(payload), nil, nil
	case types.KindHTML:
		return AdaptHTML(payload, src)
	case types.KindPDF:
		text, err := AdaptPDF(payload)
		return text, nil, err
	case types.KindDOCX:
		return AdaptDOCX(payload, src)
	default:
		return "", nil, &AdapterError{Kind: kind, Message: "no adapter", Cause: ErrUnsupportedKind}
	}
}

func (a *Adapter) fetchRemote(ctx context.Context, url string) (*fetch.Result, error) {
	if a.fetcher == nil {
		return nil, fmt.Errorf("no fetcher configured for %s", url)
	}
	a.logger.Info("fetching posting", zap.String("url", url), zap.String("platform", string(fetch.DetectPlatform(url))))
	return a.fetcher.Fetch(ctx, url)
}

// degrade records err on the source and returns an empty-text result
func (a *Adapter) degrade(src types.SourceDescriptor, kind types.DocumentKind, err error) *Result {
	a.logger.Warn("degraded document",
		zap.String("kind", string(kind)),
		zap.String("url", src.URL),
		zap.String("filename", src.Filename),
		zap.Error(err),
	)
	src.Kind = kind
	src.Error = err.Error()
	return &Result{Source: stampSource(src, "", a.now())}
}
