package dedupe

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-ats/internal/types"
)

func TestFingerprint_Invariance(t *testing.T) {
	base := Fingerprint("Backend Engineer", "Acme", "Berlin", "https://jobs.acme.io/1")

	tests := []struct {
		name     string
		title    string
		company  string
		location string
		rawURL   string
	}{
		{"case", "BACKEND engineer", "ACME", "berlin", "https://jobs.acme.io/1"},
		{"whitespace", "  Backend\t  Engineer ", "Acme\n", " Berlin", "https://jobs.acme.io/1"},
		{"query", "Backend Engineer", "Acme", "Berlin", "https://jobs.acme.io/1?utm_source=x&ref=y"},
		{"fragment", "Backend Engineer", "Acme", "Berlin", "https://jobs.acme.io/1#apply"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, base, Fingerprint(tt.title, tt.company, tt.location, tt.rawURL))
		})
	}
}

func TestFingerprint_Distinguishes(t *testing.T) {
	base := Fingerprint("Backend Engineer", "Acme", "Berlin", "https://jobs.acme.io/1")

	assert.NotEqual(t, base, Fingerprint("Frontend Engineer", "Acme", "Berlin", "https://jobs.acme.io/1"))
	assert.NotEqual(t, base, Fingerprint("Backend Engineer", "Acme", "Munich", "https://jobs.acme.io/1"))
	assert.NotEqual(t, base, Fingerprint("Backend Engineer", "Acme", "Berlin", "https://jobs.acme.io/2"))
	assert.Len(t, base, 64)
}

func TestStripQuery(t *testing.T) {
	assert.Equal(t, "", stripQuery("  "))
	assert.Equal(t, "https://x.io/a", stripQuery("https://x.io/a?b=1#c"))
	assert.Equal(t, "/jobs/1", stripQuery("/jobs/1?"))
	assert.Equal(t, "jobs.pdf", stripQuery("jobs.pdf"))
}

func TestNormalize(t *testing.T) {
	posted := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	pj := types.ParsedJob{
		Title:          &types.FieldConfidence[string]{Value: "Backend Engineer", Confidence: 0.6},
		Company:        &types.FieldConfidence[string]{Value: "Acme", Confidence: 0.5},
		RemoteType:     types.FieldConfidence[types.RemoteType]{Value: types.RemoteHybrid, Confidence: 0.7},
		EmploymentType: types.FieldConfidence[types.EmploymentType]{Value: types.EmploymentFullTime, Confidence: 0.7},
		Seniority:      types.FieldConfidence[types.Seniority]{Value: types.SenioritySenior, Confidence: 0.8},
		Salary:         &types.FieldConfidence[types.SalaryRange]{Value: types.SalaryRange{Min: 1, Max: 2, Period: "h"}, Confidence: 0.8},
		PostedAt:       &types.FieldConfidence[time.Time]{Value: posted, Confidence: 0.6},
		Keywords:       []string{"Go", "SQL"},
		Description:    strings.Repeat("x", 250),
		Language:       types.LangEnglish,
		Source:         types.SourceDescriptor{URL: "https://jobs.acme.io/1?ref=feed"},
		Overall:        0.55,
	}

	j := Normalize(pj)

	assert.Equal(t, "Backend Engineer", j.Title)
	assert.Equal(t, "Acme", j.Company)
	assert.Empty(t, j.Location)
	assert.Equal(t, "https://jobs.acme.io/1?ref=feed", j.URL)
	assert.Equal(t, types.RemoteHybrid, j.RemoteType)
	assert.Equal(t, types.SenioritySenior, j.Seniority)
	require.NotNil(t, j.Salary)
	assert.Equal(t, "h", j.Salary.Period)
	require.NotNil(t, j.PostedAt)
	assert.Equal(t, posted, *j.PostedAt)
	assert.Nil(t, j.DeadlineAt)
	assert.Nil(t, j.Recruiter)
	assert.InDelta(t, 0.55, j.Confidence, 1e-9)
	assert.Equal(t, Fingerprint("Backend Engineer", "Acme", "", "https://jobs.acme.io/1"), j.Fingerprint)
	assert.InDelta(t, 1+1+0.5+0.2, j.Richness, 1e-9)

	j.Keywords[0] = "Rust"
	assert.Equal(t, "Go", pj.Keywords[0])
}

func TestNormalize_EmptyKeywordsNotNil(t *testing.T) {
	j := Normalize(types.ParsedJob{})
	assert.NotNil(t, j.Keywords)
	assert.Zero(t, j.Richness)
}

func TestRichness(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name     string
		job      types.JobNormalized
		expected float64
	}{
		{"empty", types.JobNormalized{}, 0},
		{"salary only", types.JobNormalized{Salary: &types.SalaryRange{Min: 1, Max: 1}}, 1},
		{"posted only", types.JobNormalized{PostedAt: &now}, 1},
		{"description counts runes", types.JobNormalized{Description: strings.Repeat("ş", 1000)}, 2},
		{"keywords", types.JobNormalized{Keywords: []string{"a", "b", "c", "d", "e"}}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Richness(tt.job), 1e-9)
		})
	}
}

func job(title, desc string, keywords ...string) types.JobNormalized {
	j := types.JobNormalized{Title: title, Company: "Acme", Description: desc, Keywords: keywords}
	j.Fingerprint = Fingerprint(j.Title, j.Company, j.Location, j.URL)
	return j
}

func TestDedupe_KeepsRicher(t *testing.T) {
	poor := job("Backend Engineer", "short")
	rich := job("Backend Engineer", "short", "Go", "SQL")
	other := job("Data Analyst", "")

	got := Dedupe([]types.JobNormalized{poor, other, rich})

	require.Len(t, got, 2)
	for _, j := range got {
		if j.Title == "Backend Engineer" {
			assert.Equal(t, []string{"Go", "SQL"}, j.Keywords)
		}
	}
	assert.Less(t, got[0].Fingerprint, got[1].Fingerprint)
}

func TestDedupe_TieKeepsLater(t *testing.T) {
	first := job("Backend Engineer", "aaaa")
	second := job("Backend Engineer", "bbbb")

	got := Dedupe([]types.JobNormalized{first, second})

	require.Len(t, got, 1)
	assert.Equal(t, "bbbb", got[0].Description)
}

func TestDedupe_OrderIndependent(t *testing.T) {
	for i := 0; i < 20; i++ {
		a := job("Engineer", strings.Repeat("a", i*10))
		b := job("Engineer", strings.Repeat("b", i*10+5))
		c := job(fmt.Sprintf("Role %d", i), "")

		ab := Dedupe([]types.JobNormalized{a, b, c})
		ba := Dedupe([]types.JobNormalized{c, b, a})

		assert.Equal(t, ab, ba, "iteration %d", i)
	}
}

func TestDedupe_FillsMissingFingerprint(t *testing.T) {
	j := types.JobNormalized{Title: "Engineer"}

	got := Dedupe([]types.JobNormalized{j})

	require.Len(t, got, 1)
	assert.Equal(t, Fingerprint("Engineer", "", "", ""), got[0].Fingerprint)
}

func TestDedupe_Empty(t *testing.T) {
	got := Dedupe(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
