package ats

import (
	"strings"

	"github.com/jonathan/job-ats/internal/types"
)

// Haystack builds the normalized text keywords are matched against:
// summary, skills, experience and education.
func Haystack(cv *types.CVData) string {
	if cv == nil {
		return ""
	}

	parts := []string{cv.Summary}
	parts = append(parts, cv.Skills...)
	for _, exp := range cv.Experience {
		parts = append(parts, exp.Title, exp.Company, exp.Description)
		parts = append(parts, exp.Achievements...)
	}
	for _, edu := range cv.Education {
		parts = append(parts, edu.Institution, edu.Degree, edu.Field, edu.Description)
	}
	return normalizeAll(parts...)
}

// wordCount counts words in the matched CV text
func wordCount(haystack string) int {
	return len(strings.Fields(haystack))
}

// jobKeyword is a job keyword with its normalized form
type jobKeyword struct {
	term       string
	normalized string
}

// uniqueKeywords normalizes keywords and drops duplicates and blanks,
// keeping the first spelling seen
func uniqueKeywords(keywords []string) []jobKeyword {
	seen := make(map[string]bool, len(keywords))
	out := make([]jobKeyword, 0, len(keywords))
	for _, k := range keywords {
		n := Normalize(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, jobKeyword{term: strings.TrimSpace(k), normalized: n})
	}
	return out
}
