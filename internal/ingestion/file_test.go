package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-ats/internal/types"
)

func TestDocumentFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "posting.html")
	require.NoError(t, os.WriteFile(testFile, []byte("<p>Job</p>"), 0644))

	doc, err := DocumentFromFile(testFile, types.SourceDescriptor{Site: "careers"})
	require.NoError(t, err)

	assert.Equal(t, types.KindHTML, doc.Kind)
	assert.Equal(t, "posting.html", doc.Source.Filename)
	assert.Equal(t, "careers", doc.Source.Site)
	assert.Equal(t, []byte("<p>Job</p>"), doc.Payload)
}

func TestDocumentFromFile_FileNotFound(t *testing.T) {
	_, err := DocumentFromFile("/nonexistent/file.txt", types.SourceDescriptor{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		fileName    string
		payload     string
		expected    types.DocumentKind
	}{
		{name: "pdf content type", contentType: "application/pdf", expected: types.KindPDF},
		{name: "docx content type", contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", expected: types.KindDOCX},
		{name: "html content type", contentType: "text/html; charset=utf-8", expected: types.KindHTML},
		{name: "pdf extension with query", fileName: "https://x.io/cv.PDF?dl=1", expected: types.KindPDF},
		{name: "markdown extension", fileName: "job.md", payload: "<html>", expected: types.KindText},
		{name: "pdf magic", payload: "%PDF-1.7\n...", expected: types.KindPDF},
		{name: "zip magic", payload: "PK\x03\x04rest", expected: types.KindDOCX},
		{name: "html sniff", payload: "  <!DOCTYPE HTML><html>", expected: types.KindHTML},
		{name: "plain text", contentType: "text/plain", payload: "Engineer", expected: types.KindText},
		{name: "unknown extension falls back to sniff", fileName: "job.dat", payload: "<body>x</body>", expected: types.KindHTML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectKind(tt.contentType, tt.fileName, []byte(tt.payload)))
		})
	}
}

func TestIsSupportedFile(t *testing.T) {
	for name, want := range map[string]bool{
		"job.txt":    true,
		"JOB.PDF":    true,
		"post.html":  true,
		"offer.docx": true,
		"notes.md":   true,
		"image.png":  false,
		"README":     false,
	} {
		assert.Equal(t, want, IsSupportedFile(name), name)
	}
}
