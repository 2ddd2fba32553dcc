// Package types provides type definitions for structured data used throughout the job-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// FieldConfidence pairs an extracted value with a heuristic belief strength in [0,1].
// It is not a calibrated probability.
type FieldConfidence[T any] struct {
	Value      T       `json:"value"`
	Confidence float64 `json:"confidence"`
}

// Language is the detected language of a posting
type Language string

const (
	LangEnglish Language = "en"
	LangTurkish Language = "tr"
	LangUnknown Language = "unknown"
)

// RemoteType describes the work arrangement
type RemoteType string

const (
	RemoteHybrid  RemoteType = "hybrid"
	RemoteRemote  RemoteType = "remote"
	RemoteOnsite  RemoteType = "onsite"
	RemoteUnknown RemoteType = "unknown"
)

// EmploymentType describes the contract type
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
	EmploymentTemporary  EmploymentType = "temporary"
	EmploymentFreelance  EmploymentType = "freelance"
	EmploymentOther      EmploymentType = "other"
)

// Seniority describes the level of the role
type Seniority string

const (
	SeniorityIntern    Seniority = "intern"
	SeniorityJunior    Seniority = "junior"
	SeniorityMid       Seniority = "mid"
	SenioritySenior    Seniority = "senior"
	SeniorityLead      Seniority = "lead"
	SeniorityPrincipal Seniority = "principal"
	SeniorityManager   Seniority = "manager"
	SeniorityNA        Seniority = "na"
)

// SalaryRange is a parsed compensation range.
// Period is one of "y", "m", "w", "d", "h". A single amount sets Min == Max.
type SalaryRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency,omitempty"`
	Period   string  `json:"period,omitempty"`
}

// Recruiter is the contact person of a posting
type Recruiter struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// ParsedJob is the canonical, confidence-scored record produced from one document
type ParsedJob struct {
	Title          *FieldConfidence[string]        `json:"title,omitempty"`
	Company        *FieldConfidence[string]        `json:"company,omitempty"`
	Location       *FieldConfidence[string]        `json:"location,omitempty"`
	RemoteType     FieldConfidence[RemoteType]     `json:"remote_type"`
	EmploymentType FieldConfidence[EmploymentType] `json:"employment_type"`
	Seniority      FieldConfidence[Seniority]      `json:"seniority"`
	Salary         *FieldConfidence[SalaryRange]   `json:"salary,omitempty"`
	PostedAt       *FieldConfidence[time.Time]     `json:"posted_at,omitempty"`
	DeadlineAt     *FieldConfidence[time.Time]     `json:"deadline_at,omitempty"`
	Recruiter      *FieldConfidence[Recruiter]     `json:"recruiter,omitempty"`
	Keywords       []string                        `json:"keywords"`
	Sections       SectionSet                      `json:"sections"`
	Description    string                          `json:"description"`
	Language       Language                        `json:"language"`
	Source         SourceDescriptor                `json:"source"`
	Overall        float64                         `json:"overall"`
}

// TitleValue returns the title or "" when absent
func (p *ParsedJob) TitleValue() string {
	if p == nil || p.Title == nil {
		return ""
	}
	return p.Title.Value
}

// CompanyValue returns the company or "" when absent
func (p *ParsedJob) CompanyValue() string {
	if p == nil || p.Company == nil {
		return ""
	}
	return p.Company.Value
}

// LocationValue returns the location or "" when absent
func (p *ParsedJob) LocationValue() string {
	if p == nil || p.Location == nil {
		return ""
	}
	return p.Location.Value
}

// View returns the projection consumed by ATS analysis
func (p *ParsedJob) View() *JobView {
	if p == nil {
		return nil
	}
	return &JobView{
		Title:       p.TitleValue(),
		Keywords:    append([]string(nil), p.Keywords...),
		Sections:    p.Sections,
		Description: p.Description,
	}
}

// JobView is the read-only job projection the ATS engine works on.
// Both ParsedJob and JobNormalized produce one.
type JobView struct {
	Title       string     `json:"title"`
	Keywords    []string   `json:"keywords"`
	Sections    SectionSet `json:"sections"`
	Description string     `json:"description"`
}
