// Package fetch retrieves remote job postings and turns HTML into main-content text.
// It is the only part of the pipeline that performs network I/O.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; JobATS/1.0)"

// DefaultMaxBodyBytes caps how much of a response body is read.
const DefaultMaxBodyBytes = 10 << 20

// ErrCanceled is returned when the caller's context ends before the fetch completes.
// It always wraps the context error, so errors.Is(err, context.Canceled) also holds.
var ErrCanceled = errors.New("fetch canceled")

// Result holds the raw content from a URL fetch.
type Result struct {
	URL         string
	Body        []byte
	ContentType string
	StatusCode  int
	FromCache   bool
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout           time.Duration
	UserAgent         string
	Headers           map[string]string
	RequestsPerSecond float64 // <= 0 disables rate limiting
	MaxBodyBytes      int64
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:           DefaultTimeout,
		UserAgent:         DefaultUserAgent,
		RequestsPerSecond: 1,
		MaxBodyBytes:      DefaultMaxBodyBytes,
	}
}

// Client fetches URLs with an optional rate limiter and page cache.
// Each Client owns its limiter and cache, so tests can build isolated instances.
type Client struct {
	http    *http.Client
	options *Options
	limiter *rate.Limiter
	cache   Cache
	logger  *zap.Logger
}

// NewClient creates a Client. cache and logger may be nil.
func NewClient(opts *Options, cache Cache, logger *zap.Logger) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	return &Client{
		http:    &http.Client{Timeout: opts.Timeout},
		options: opts,
		limiter: limiter,
		cache:   cache,
		logger:  logger,
	}
}

// Fetch retrieves a URL, serving it from the cache when a fresh copy exists.
// Context cancellation is reported as ErrCanceled rather than as a fetch failure.
func (c *Client) Fetch(ctx context.Context, urlStr string) (*Result, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	if c.cache != nil {
		cached, ok, err := c.cache.Get(ctx, urlStr)
		if err != nil {
			c.logger.Warn("page cache lookup failed", zap.String("url", urlStr), zap.Error(err))
		} else if ok {
			c.logger.Debug("page cache hit", zap.String("url", urlStr))
			cached.FromCache = true
			return cached, nil
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("%w: %w", ErrCanceled, ctxErr)
			}
			return nil, &Error{URL: urlStr, Message: "rate limiter", Cause: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", c.options.UserAgent)
	for key, value := range c.options.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrCanceled, ctxErr)
		}
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.options.MaxBodyBytes))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrCanceled, ctxErr)
		}
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, result); err != nil {
			c.logger.Warn("page cache store failed", zap.String("url", urlStr), zap.Error(err))
		}
	}

	return result, nil
}

// RemoveNoise deletes navigation, chrome and platform-specific noise from doc in place.
func RemoveNoise(doc *goquery.Document, noiseSelectors ...string) {
	doc.Find("nav, footer, header, script, style, noscript, iframe, aside, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	if len(noiseSelectors) > 0 {
		noiseSelector := strings.Join(noiseSelectors, ", ")
		if noiseSelector != "" {
			doc.Find(noiseSelector).Remove()
		}
	}
}

// MainContent returns the first selection matching contentSelectors, falling back to body.
func MainContent(doc *goquery.Document, contentSelectors []string) *goquery.Selection {
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			return selection.First()
		}
	}
	return doc.Find("body")
}

// ExtractMainText parses HTML and returns the main body text.
// It removes noise elements using noiseSelectors, then finds content using contentSelectors.
// If no content selectors match, it falls back to the body element.
func ExtractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	RemoveNoise(doc, noiseSelectors...)
	return cleanWhitespace(MainContent(doc, contentSelectors).Text()), nil
}

// DefaultTextSelectors returns standard selectors for general web content.
func DefaultTextSelectors() []string {
	return []string{
		"main",
		"article",
		".content",
		"#content",
		".main-content",
		"#main-content",
	}
}

// JobPostingSelectors returns selectors optimized for job board pages.
func JobPostingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		"#job-content",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
		".content",
		"#content",
	}
}

// cleanWhitespace trims every line and drops empty ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
