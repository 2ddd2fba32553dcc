// Package types provides type definitions for structured data used throughout the job-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Hints are structured values found by a format adapter (JSON-LD JobPosting,
// OpenGraph/Twitter meta). They seed the extractors at Confidence.
type Hints struct {
	Title          string       `json:"title,omitempty"`
	Company        string       `json:"company,omitempty"`
	Location       string       `json:"location,omitempty"`
	Description    string       `json:"description,omitempty"`
	EmploymentType string       `json:"employment_type,omitempty"` // raw schema.org value, e.g. FULL_TIME
	RemoteType     string       `json:"remote_type,omitempty"`     // raw jobLocationType, e.g. TELECOMMUTE
	DatePosted     string       `json:"date_posted,omitempty"`
	ValidThrough   string       `json:"valid_through,omitempty"`
	Salary         *SalaryRange `json:"salary,omitempty"`
	Confidence     float64      `json:"confidence"`
}

// Empty reports whether no hint value is set
func (h *Hints) Empty() bool {
	if h == nil {
		return true
	}
	return h.Title == "" && h.Company == "" && h.Location == "" && h.Description == "" &&
		h.EmploymentType == "" && h.RemoteType == "" && h.DatePosted == "" &&
		h.ValidThrough == "" && h.Salary == nil
}
