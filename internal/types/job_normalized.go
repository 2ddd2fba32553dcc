// Package types provides type definitions for structured data used throughout the job-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// JobNormalized is the dedup-ready projection of a ParsedJob
type JobNormalized struct {
	Fingerprint    string           `json:"fingerprint"`
	Title          string           `json:"title"`
	Company        string           `json:"company,omitempty"`
	Location       string           `json:"location,omitempty"`
	URL            string           `json:"url,omitempty"`
	RemoteType     RemoteType       `json:"remote_type"`
	EmploymentType EmploymentType   `json:"employment_type"`
	Seniority      Seniority        `json:"seniority"`
	Salary         *SalaryRange     `json:"salary,omitempty"`
	PostedAt       *time.Time       `json:"posted_at,omitempty"`
	DeadlineAt     *time.Time       `json:"deadline_at,omitempty"`
	Recruiter      *Recruiter       `json:"recruiter,omitempty"`
	Keywords       []string         `json:"keywords"`
	Sections       SectionSet       `json:"sections"`
	Description    string           `json:"description"`
	Language       Language         `json:"language"`
	Source         SourceDescriptor `json:"source"`
	Confidence     float64          `json:"confidence"`

	// Richness is only meaningful while merging duplicates
	Richness float64 `json:"-"`
}

// View returns the projection consumed by ATS analysis
func (j *JobNormalized) View() *JobView {
	if j == nil {
		return nil
	}
	return &JobView{
		Title:       j.Title,
		Keywords:    append([]string(nil), j.Keywords...),
		Sections:    j.Sections,
		Description: j.Description,
	}
}
