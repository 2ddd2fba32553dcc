// Package types provides type definitions for structured data used throughout the job-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionSet_ListAndHas(t *testing.T) {
	summary := "We build payments."
	s := SectionSet{
		Summary:      &summary,
		Requirements: []string{"Go", "SQL"},
		Benefits:     []string{},
	}

	assert.Equal(t, []string{summary}, s.List(SectionSummary))
	assert.Equal(t, []string{"Go", "SQL"}, s.List(SectionRequirements))
	assert.Nil(t, s.List(SectionResponsibilities))

	assert.True(t, s.Has(SectionSummary))
	assert.True(t, s.Has(SectionRequirements))
	assert.True(t, s.Has(SectionBenefits), "an empty but present section still counts")
	assert.False(t, s.Has(SectionQualifications))
	assert.False(t, SectionSet{}.Has(SectionSummary))
}

func TestSectionSet_JSONKeepsPresentEmptySections(t *testing.T) {
	s := SectionSet{Requirements: []string{"Go"}, Benefits: []string{}, RawText: "Benefits:"}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"benefits":[]`)
	assert.Contains(t, string(data), `"qualifications":null`)
	assert.Contains(t, string(data), `"summary":null`)

	var decoded SectionSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Has(SectionBenefits))
	assert.Empty(t, decoded.Benefits)
	assert.True(t, decoded.Has(SectionRequirements))
	assert.False(t, decoded.Has(SectionQualifications))
	assert.False(t, decoded.Has(SectionSummary))
}

func TestParsedJob_Accessors(t *testing.T) {
	var nilJob *ParsedJob
	assert.Empty(t, nilJob.TitleValue())
	assert.Nil(t, nilJob.View())

	job := &ParsedJob{
		Title:       &FieldConfidence[string]{Value: "Data Engineer", Confidence: 0.7},
		Company:     &FieldConfidence[string]{Value: "Globex", Confidence: 0.6},
		Keywords:    []string{"Python"},
		Description: "Data Engineer at Globex",
	}
	assert.Equal(t, "Data Engineer", job.TitleValue())
	assert.Equal(t, "Globex", job.CompanyValue())
	assert.Empty(t, job.LocationValue())

	view := job.View()
	assert.Equal(t, "Data Engineer", view.Title)
	assert.Equal(t, []string{"Python"}, view.Keywords)

	view.Keywords[0] = "changed"
	assert.Equal(t, "Python", job.Keywords[0], "view keywords are a copy")
}

func TestJobNormalized_View(t *testing.T) {
	var nilJob *JobNormalized
	assert.Nil(t, nilJob.View())

	j := &JobNormalized{Title: "QA Engineer", Keywords: []string{"Selenium"}, Description: "Testing"}
	assert.Equal(t, &JobView{Title: "QA Engineer", Keywords: []string{"Selenium"}, Description: "Testing"}, j.View())
}

func TestHints_Empty(t *testing.T) {
	var nilHints *Hints
	assert.True(t, nilHints.Empty())
	assert.True(t, (&Hints{Confidence: 0.9}).Empty())
	assert.False(t, (&Hints{DatePosted: "2026-01-01"}).Empty())
	assert.False(t, (&Hints{Salary: &SalaryRange{Min: 1, Max: 2}}).Empty())
}

func TestSourceDescriptor_Degraded(t *testing.T) {
	assert.False(t, SourceDescriptor{URL: "https://example.com"}.Degraded())
	assert.True(t, SourceDescriptor{Error: "pdf adapter: no readable pages"}.Degraded())
}
