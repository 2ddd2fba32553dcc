package ingestion

import (
	"errors"
	"fmt"

	"github.com/jonathan/job-ats/internal/types"
)

// ErrUnsupportedKind is returned when no adapter handles a document kind
var ErrUnsupportedKind = errors.New("unsupported document kind")

// ErrEmptyDocument is returned when a document has neither payload nor URL
var ErrEmptyDocument = errors.New("document has no payload and no URL")

// AdapterError describes why an adapter degraded its input.
// It never escapes Adapt; its text becomes SourceDescriptor.Error.
type AdapterError struct {
	Kind    types.DocumentKind
	Message string
	Cause   error
}

func (e *AdapterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s adapter: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s adapter: %s", e.Kind, e.Message)
}

func (e *AdapterError) Unwrap() error {
	return e.Cause
}
