package ats

import (
	"math"
	"strings"

	"github.com/jonathan/job-ats/internal/types"
)

// Score constants
const (
	baseScore          = 50.0
	matchedBonus       = 1.5
	maxMatchedBonus    = 40.0
	maxMissingPenalty  = 30.0
	criticalPenalty    = 2.0
	minScore, maxScore = 0, 100
)

// Score computes the ATS score:
// clamp(0, 100, round(50 + min(40, 1.5*matched) - min(30, missing) - 2*critical))
func Score(matched, missing, critical int) int {
	raw := baseScore +
		math.Min(maxMatchedBonus, float64(matched)*matchedBonus) -
		math.Min(maxMissingPenalty, float64(missing)) -
		criticalPenalty*float64(critical)
	return clamp(int(math.Round(raw)))
}

func clamp(v int) int {
	return max(minScore, min(maxScore, v))
}

// Components are the per-component scores of the weighted variant, each in [0,100]
type Components struct {
	Keywords   float64
	Sections   float64
	Length     float64
	Experience float64
	Formatting float64
}

// scoreComponents derives the weighted-score components from the CV
func scoreComponents(cv *types.CVData, matched, total, words int) Components {
	var c Components

	// nothing to miss counts as a full match
	c.Keywords = 100
	if total > 0 {
		c.Keywords = 100 * float64(matched) / float64(total)
	}

	if len([]rune(strings.TrimSpace(cv.Summary))) >= minSummaryLength {
		c.Sections += 50
	}
	if len(cv.Skills) > 0 {
		c.Sections += 50
	}

	switch {
	case words < minWords:
		c.Length = 100 * float64(words) / minWords
	case words > maxWords:
		c.Length = 100 * maxWords / float64(words)
	default:
		c.Length = 100
	}

	if len(cv.Experience) > 0 {
		c.Experience += 60
	}
	if len(cv.Education) > 0 {
		c.Experience += 40
	}

	if strings.TrimSpace(cv.PersonalInfo.Email) != "" {
		c.Formatting += 50
	}
	if strings.TrimSpace(cv.PersonalInfo.Phone) != "" {
		c.Formatting += 50
	}
	return c
}

// WeightedScore combines components with normalized weights, rounded and clamped to [0,100]
func WeightedScore(w types.Weights, c Components) int {
	raw := w.Keywords*c.Keywords +
		w.Sections*c.Sections +
		w.Length*c.Length +
		w.Experience*c.Experience +
		w.Formatting*c.Formatting
	return clamp(int(math.Round(raw)))
}
