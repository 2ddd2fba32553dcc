package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jonathan/job-ats/internal/types"
)

// extensionKinds maps file extensions to document kinds
var extensionKinds = map[string]types.DocumentKind{
	".txt":      types.KindText,
	".md":       types.KindText,
	".markdown": types.KindText,
	".html":     types.KindHTML,
	".htm":      types.KindHTML,
	".pdf":      types.KindPDF,
	".docx":     types.KindDOCX,
}

// DocumentFromFile reads a local file into a RawDocument.
// The kind comes from the extension, or from the content when the extension is unknown.
func DocumentFromFile(filePath string, src types.SourceDescriptor) (types.RawDocument, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return types.RawDocument{}, fmt.Errorf("file not found: %w", err)
		}
		return types.RawDocument{}, fmt.Errorf("failed to read file: %w", err)
	}

	if src.Filename == "" {
		src.Filename = filepath.Base(filePath)
	}
	return types.RawDocument{
		Kind:    DetectKind("", filePath, content),
		Payload: content,
		Source:  src,
	}, nil
}

// IsSupportedFile reports whether name has an extension an adapter handles
func IsSupportedFile(name string) bool {
	_, ok := extensionKinds[strings.ToLower(filepath.Ext(name))]
	return ok
}

// DetectKind infers a document kind from a Content-Type header, a file name
// or URL, and finally the leading bytes of the payload.
func DetectKind(contentType, name string, payload []byte) types.DocumentKind {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "pdf"):
		return types.KindPDF
	case strings.Contains(ct, "wordprocessingml"):
		return types.KindDOCX
	case strings.Contains(ct, "html"):
		return types.KindHTML
	}

	if name != "" {
		if i := strings.IndexAny(name, "?#"); i >= 0 {
			name = name[:i]
		}
		if kind, ok := extensionKinds[strings.ToLower(path.Ext(name))]; ok {
			return kind
		}
	}

	switch {
	case bytes.HasPrefix(payload, []byte("%PDF-")):
		return types.KindPDF
	case bytes.HasPrefix(payload, []byte("PK\x03\x04")):
		return types.KindDOCX
	}

	head := payload
	if len(head) > 512 {
		head = head[:512]
	}
	lower := bytes.ToLower(bytes.TrimSpace(head))
	if bytes.Contains(lower, []byte("<html")) || bytes.HasPrefix(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<body")) {
		return types.KindHTML
	}
	return types.KindText
}
