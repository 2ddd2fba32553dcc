// Package types provides type definitions for structured data used throughout the job-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CVData is a candidate's structured résumé.
// JSON keys double as the section names used by suggestion targets.
type CVData struct {
	PersonalInfo PersonalInfo `json:"personal_info"`
	Summary      string       `json:"summary"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []string     `json:"skills"`
	Projects     []Project    `json:"projects"`
}

// PersonalInfo holds contact details
type PersonalInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// Experience is a single work history entry
type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Education is a single education entry
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GPA         string `json:"gpa"`
	Description string `json:"description"`
}

// Project is a portfolio entry
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
}

// CV section names addressed by suggestion targets
const (
	CVSectionPersonalInfo = "personal_info"
	CVSectionSummary      = "summary"
	CVSectionExperience   = "experience"
	CVSectionEducation    = "education"
	CVSectionSkills       = "skills"
	CVSectionProjects     = "projects"
)
