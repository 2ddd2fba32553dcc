package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-ats/internal/types"
)

// DefaultListLimit bounds ListJobs when no limit is given
const DefaultListLimit = 50

// Job is a stored posting: the normalized record plus row metadata
type Job struct {
	ID        uuid.UUID           `json:"id"`
	Record    types.JobNormalized `json:"record"`
	Richness  float64             `json:"richness"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// JobFilters holds optional filters for listing jobs
type JobFilters struct {
	Company  string
	Title    string
	Language types.Language
	Limit    int
	Offset   int
}
