// Package ats matches a CV against a job's keywords, generates actionable
// suggestions and scores the fit. Analysis is pure: inputs are never mutated
// and every call returns a fresh result.
package ats

import (
	"strings"
	"time"

	"github.com/jonathan/job-ats/internal/types"
)

// Options turns on the optional analysis passes
type Options struct {
	// Importance computes KeywordMeta for every job keyword
	Importance bool
	// Weights enables the weighted score; nil keeps DefaultWeights and no weighted score
	Weights *types.Weights
	// Now stamps AnalyzedAt; nil uses time.Now
	Now func() time.Time
}

// Analyze compares cv with job and returns matched and missing keywords,
// suggestions in category order and the score. It returns nil when either
// input is missing, so callers may invoke it speculatively.
func Analyze(cv *types.CVData, job *types.JobView, opts Options) *types.ATSAnalysisResult {
	if cv == nil || job == nil {
		return nil
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	haystack := Haystack(cv)
	keywords := uniqueKeywords(job.Keywords)

	matched := make([]string, 0, len(keywords))
	missing := make([]string, 0, len(keywords))
	matchedSet := make(map[string]bool, len(keywords))
	// substring containment, so "java" also matches "javascript"
	for _, k := range keywords {
		if strings.Contains(haystack, k.normalized) {
			matched = append(matched, k.term)
			matchedSet[k.normalized] = true
		} else {
			missing = append(missing, k.term)
		}
	}

	words := wordCount(haystack)
	suggestions := buildSuggestions(cv, job, missing, words)

	result := &types.ATSAnalysisResult{
		Suggestions:     suggestions,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		WeightsUsed:     DefaultWeights(),
		AnalyzedAt:      now().UTC(),
	}
	result.Score = Score(len(matched), len(missing), result.CountSeverity(types.SeverityCritical))

	if opts.Importance {
		result.KeywordMeta = keywordMeta(keywords, matchedSet, job)
	}

	if opts.Weights != nil {
		if weights, err := NormalizeWeights(*opts.Weights); err == nil {
			components := scoreComponents(cv, len(matched), len(keywords), words)
			weighted := WeightedScore(weights, components)
			result.WeightsUsed = weights
			result.WeightedScore = &weighted
		}
	}

	return result
}
