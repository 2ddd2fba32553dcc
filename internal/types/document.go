// Package types provides type definitions for structured data used throughout the job-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DocumentKind identifies the input format of a raw job posting
type DocumentKind string

const (
	// KindText is plain text (including markdown)
	KindText DocumentKind = "text"
	// KindHTML is an HTML page or fragment
	KindHTML DocumentKind = "html"
	// KindPDF is a PDF file
	KindPDF DocumentKind = "pdf"
	// KindDOCX is an Office Open XML word document
	KindDOCX DocumentKind = "docx"
)

// SourceDescriptor describes where a posting came from.
// URL, Filename, Site and LegalMode are passed through the pipeline unchanged.
type SourceDescriptor struct {
	URL         string       `json:"url,omitempty"`
	Filename    string       `json:"filename,omitempty"`
	Site        string       `json:"site,omitempty"`
	LegalMode   bool         `json:"legal_mode,omitempty"`
	Kind        DocumentKind `json:"kind,omitempty"`
	ContentHash string       `json:"content_hash,omitempty"` // SHA256 hex digest of adapted text
	FetchedAt   string       `json:"fetched_at,omitempty"`   // RFC3339
	Error       string       `json:"error,omitempty"`        // set when the adapter degraded the input
}

// Degraded reports whether an adapter failed on this source
func (s SourceDescriptor) Degraded() bool {
	return s.Error != ""
}

// RawDocument is a single input document handed to a format adapter.
// An empty Payload with a non-empty Source.URL means the adapter fetches the document.
type RawDocument struct {
	Kind    DocumentKind     `json:"kind"`
	Payload []byte           `json:"-"`
	Source  SourceDescriptor `json:"source"`
}
