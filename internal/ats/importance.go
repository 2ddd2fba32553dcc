package ats

import (
	"math"
	"strings"

	"github.com/kljensen/snowball"

	"github.com/jonathan/job-ats/internal/types"
)

// Importance weights
const (
	occurrenceWeight      = 0.1
	maxOccurrenceScore    = 0.5
	titleBonus            = 0.2
	requirementsBonus     = 0.15
	responsibilitiesBonus = 0.1
	qualificationsBonus   = 0.05
)

// Importance scores a keyword from how often it occurs in the description and
// which parts of the job mention it, capped at 1 and rounded to 2 decimals
func Importance(occurrences int, inTitle, inRequirements, inResponsibilities, inQualifications bool) float64 {
	v := math.Min(maxOccurrenceScore, occurrenceWeight*float64(occurrences))
	if inTitle {
		v += titleBonus
	}
	if inRequirements {
		v += requirementsBonus
	}
	if inResponsibilities {
		v += responsibilitiesBonus
	}
	if inQualifications {
		v += qualificationsBonus
	}
	return math.Round(math.Min(1, v)*100) / 100
}

// Stem reduces each word of a normalized term to its English stem
func Stem(term string) string {
	words := strings.Fields(term)
	for i, w := range words {
		if stemmed, err := snowball.Stem(w, "english", true); err == nil && stemmed != "" {
			words[i] = stemmed
		}
	}
	return strings.Join(words, " ")
}

func keywordMeta(keywords []jobKeyword, matched map[string]bool, job *types.JobView) []types.KeywordMeta {
	description := Normalize(job.Description)
	title := Normalize(job.Title)
	requirements := normalizeAll(job.Sections.Requirements...)
	responsibilities := normalizeAll(job.Sections.Responsibilities...)
	qualifications := normalizeAll(job.Sections.Qualifications...)

	meta := make([]types.KeywordMeta, 0, len(keywords))
	for _, k := range keywords {
		m := types.KeywordMeta{
			Term:               k.term,
			Stem:               Stem(k.normalized),
			Occurrences:        strings.Count(description, k.normalized),
			InTitle:            strings.Contains(title, k.normalized),
			InRequirements:     strings.Contains(requirements, k.normalized),
			InResponsibilities: strings.Contains(responsibilities, k.normalized),
			InQualifications:   strings.Contains(qualifications, k.normalized),
			Matched:            matched[k.normalized],
		}
		m.Importance = Importance(m.Occurrences, m.InTitle, m.InRequirements, m.InResponsibilities, m.InQualifications)
		meta = append(meta, m)
	}
	return meta
}
