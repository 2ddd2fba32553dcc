package ats

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jonathan/job-ats/internal/types"
)

const (
	maxKeywordSuggestions = 30
	maxSkillsToAdd        = 10
	minSummaryLength      = 40
	minWords              = 200
	maxWords              = 1200
)

// buildSuggestions emits suggestions in fixed category order: keywords,
// sections, contact, length, experience, education
func buildSuggestions(cv *types.CVData, job *types.JobView, missing []string, words int) []types.ATSSuggestion {
	suggestions := make([]types.ATSSuggestion, 0, len(missing)+8)
	add := func(s types.ATSSuggestion) {
		s.ID = uuid.NewString()
		suggestions = append(suggestions, s)
	}

	// Keywords
	requirements := normalizeAll(job.Sections.Requirements...)
	for i, term := range missing {
		if i == maxKeywordSuggestions {
			break
		}
		severity := types.SeverityMedium
		if strings.Contains(requirements, Normalize(term)) {
			severity = types.SeverityHigh
		}
		add(types.ATSSuggestion{
			Category: types.CategoryKeywords,
			Severity: severity,
			Title:    fmt.Sprintf("Add keyword %q", term),
			Detail:   fmt.Sprintf("The job mentions %q but your CV does not.", term),
			Target:   &types.SuggestionTarget{Section: types.CVSectionSummary},
			Action:   types.AddText{Text: term},
		})
	}

	// Sections
	summary := strings.TrimSpace(cv.Summary)
	if utf8.RuneCountInString(summary) < minSummaryLength {
		title := "Expand professional summary"
		if summary == "" {
			title = "Add a professional summary"
		}
		add(types.ATSSuggestion{
			Category: types.CategorySections,
			Severity: types.SeverityHigh,
			Title:    title,
			Detail:   fmt.Sprintf("A summary of at least %d characters helps ATS and recruiters place your profile.", minSummaryLength),
			Target:   &types.SuggestionTarget{Section: types.CVSectionSummary},
		})
	}
	if len(cv.Skills) == 0 {
		s := types.ATSSuggestion{
			Category: types.CategorySections,
			Severity: types.SeverityCritical,
			Title:    "Add Skills section",
			Detail:   "ATS systems look for a dedicated skills list.",
			Target:   &types.SuggestionTarget{Section: types.CVSectionSkills},
		}
		if len(missing) > 0 {
			s.Action = types.AddText{Text: strings.Join(missing[:min(len(missing), maxSkillsToAdd)], ", ")}
		}
		add(s)
	}

	// Contact
	if strings.TrimSpace(cv.PersonalInfo.Email) == "" {
		add(types.ATSSuggestion{
			Category: types.CategoryContact,
			Severity: types.SeverityCritical,
			Title:    "Add an email address",
			Detail:   "Recruiters cannot reach you without an email address.",
			Target:   &types.SuggestionTarget{Section: types.CVSectionPersonalInfo, Path: []string{"email"}},
		})
	}
	if strings.TrimSpace(cv.PersonalInfo.Phone) == "" {
		add(types.ATSSuggestion{
			Category: types.CategoryContact,
			Severity: types.SeverityHigh,
			Title:    "Add a phone number",
			Detail:   "Many recruiters call shortlisted candidates first.",
			Target:   &types.SuggestionTarget{Section: types.CVSectionPersonalInfo, Path: []string{"phone"}},
		})
	}

	// Length
	switch {
	case words < minWords:
		add(types.ATSSuggestion{
			Category: types.CategoryLength,
			Severity: types.SeverityMedium,
			Title:    "Resume is too short",
			Detail:   fmt.Sprintf("Your CV has %d words; aim for %d to %d.", words, minWords, maxWords),
		})
	case words > maxWords:
		add(types.ATSSuggestion{
			Category: types.CategoryLength,
			Severity: types.SeverityMedium,
			Title:    "Resume is too long",
			Detail:   fmt.Sprintf("Your CV has %d words; aim for %d to %d.", words, minWords, maxWords),
		})
	}

	// Experience and education
	if len(cv.Experience) == 0 {
		add(types.ATSSuggestion{
			Category: types.CategoryExperience,
			Severity: types.SeverityCritical,
			Title:    "Add work experience",
			Detail:   "List at least one position with a description of your impact.",
			Target:   &types.SuggestionTarget{Section: types.CVSectionExperience},
		})
	}
	if len(cv.Education) == 0 {
		add(types.ATSSuggestion{
			Category: types.CategoryEducation,
			Severity: types.SeverityHigh,
			Title:    "Add education",
			Detail:   "Include your highest degree or relevant training.",
			Target:   &types.SuggestionTarget{Section: types.CVSectionEducation},
		})
	}

	return suggestions
}
