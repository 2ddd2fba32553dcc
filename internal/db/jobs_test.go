package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-ats/internal/dedupe"
	"github.com/jonathan/job-ats/internal/types"
)

// =============================================================================
// Query Builder Tests
// =============================================================================

func TestBuildListJobsQuery(t *testing.T) {
	tests := []struct {
		name      string
		filters   JobFilters
		contains  []string
		wantArgs  []any
		notInText []string
	}{
		{
			name:      "defaults",
			filters:   JobFilters{},
			contains:  []string{"ORDER BY updated_at DESC", "LIMIT $1"},
			wantArgs:  []any{DefaultListLimit},
			notInText: []string{"ILIKE", "OFFSET"},
		},
		{
			name:     "company filter",
			filters:  JobFilters{Company: "acme", Limit: 5},
			contains: []string{"company ILIKE $1", "LIMIT $2"},
			wantArgs: []any{"%acme%", 5},
		},
		{
			name:     "all filters",
			filters:  JobFilters{Company: "acme", Title: "engineer", Language: types.LangTurkish, Limit: 10, Offset: 20},
			contains: []string{"company ILIKE $1", "title ILIKE $2", "language = $3", "LIMIT $4", "OFFSET $5"},
			wantArgs: []any{"%acme%", "%engineer%", "tr", 10, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListJobsQuery(tt.filters)
			for _, s := range tt.contains {
				assert.Contains(t, query, s)
			}
			for _, s := range tt.notInText {
				assert.NotContains(t, query, s)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

// =============================================================================
// Helper Function Tests
// =============================================================================

func TestPrepareJob(t *testing.T) {
	job := types.JobNormalized{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Berlin",
		URL:         "https://jobs.example.com/1?utm=x",
		Description: "Build services.",
	}

	got := prepareJob(job)

	assert.Equal(t, dedupe.Fingerprint("Backend Engineer", "Acme", "Berlin", "https://jobs.example.com/1"), got.Fingerprint)
	assert.NotNil(t, got.Keywords)
	assert.InDelta(t, dedupe.Richness(got), got.Richness, 1e-12)

	t.Run("keeps existing fingerprint", func(t *testing.T) {
		job.Fingerprint = "abc"
		assert.Equal(t, "abc", prepareJob(job).Fingerprint)
	})
}

func TestDecodeRecord(t *testing.T) {
	record, err := json.Marshal(types.JobNormalized{
		Fingerprint: "fp",
		Title:       "Data Analyst",
		Language:    types.LangEnglish,
	})
	require.NoError(t, err)

	var job Job
	job.Richness = 2.5
	require.NoError(t, decodeRecord(record, &job))

	assert.Equal(t, "fp", job.Record.Fingerprint)
	assert.Equal(t, "Data Analyst", job.Record.Title)
	assert.Equal(t, 2.5, job.Record.Richness)
	assert.NotNil(t, job.Record.Keywords)

	t.Run("invalid json", func(t *testing.T) {
		var bad Job
		assert.Error(t, decodeRecord([]byte("{"), &bad))
	})
}

func TestSchemaDeclaresJobsTable(t *testing.T) {
	assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS jobs")
	assert.Contains(t, Schema, "fingerprint  TEXT NOT NULL UNIQUE")
}
