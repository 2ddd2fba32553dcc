// Package types provides type definitions for structured data used throughout the job-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionKind names one of the five canonical job-posting content blocks
type SectionKind string

const (
	SectionSummary          SectionKind = "summary"
	SectionResponsibilities SectionKind = "responsibilities"
	SectionRequirements     SectionKind = "requirements"
	SectionQualifications   SectionKind = "qualifications"
	SectionBenefits         SectionKind = "benefits"
)

// SectionKinds lists the section kinds in detection order
var SectionKinds = []SectionKind{
	SectionSummary,
	SectionResponsibilities,
	SectionRequirements,
	SectionQualifications,
	SectionBenefits,
}

// SectionSet holds the sections found in a posting.
// A nil field means the section was not found; callers treat it as "no evidence".
// In JSON an absent list section is null and a present but empty one is [].
type SectionSet struct {
	Summary          *string  `json:"summary"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Qualifications   []string `json:"qualifications"`
	Benefits         []string `json:"benefits"`
	RawText          string   `json:"raw_text"`
}

// List returns the items of a list-like section, or nil when absent
func (s SectionSet) List(kind SectionKind) []string {
	switch kind {
	case SectionResponsibilities:
		return s.Responsibilities
	case SectionRequirements:
		return s.Requirements
	case SectionQualifications:
		return s.Qualifications
	case SectionBenefits:
		return s.Benefits
	case SectionSummary:
		if s.Summary != nil {
			return []string{*s.Summary}
		}
	}
	return nil
}

// Has reports whether the section was found
func (s SectionSet) Has(kind SectionKind) bool {
	if kind == SectionSummary {
		return s.Summary != nil
	}
	return s.List(kind) != nil
}
