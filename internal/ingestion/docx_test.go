package ingestion

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-ats/internal/types"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:pPr><w:pStyle w:val="Title"/></w:pPr><w:r><w:t>Platform Engineer</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Company: </w:t></w:r><w:r><w:t>Acme &amp; Co</w:t></w:r></w:p>
<w:p><w:pPr><w:pStyle w:val="Heading2"/></w:pPr><w:r><w:t>Requirements</w:t></w:r></w:p>
<w:p><w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr><w:r><w:t>Terraform</w:t></w:r></w:p>
<w:p><w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr><w:r><w:t>AWS</w:t></w:r></w:p>
<w:p><w:r><w:t>Apply by email.</w:t></w:r></w:p>
</w:body>
</w:document>`

func buildDocx(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestAdaptDOCX_ListsAndHeadings(t *testing.T) {
	payload := buildDocx(t, map[string]string{"word/document.xml": testDocumentXML})

	text, hints, err := AdaptDOCX(payload, types.SourceDescriptor{})
	require.NoError(t, err)
	assert.Nil(t, hints)

	assert.Contains(t, text, "Platform Engineer")
	assert.Contains(t, text, "Company: Acme & Co")
	assert.Contains(t, text, "Requirements")
	assert.Contains(t, text, "- Terraform\n- AWS")
	assert.Contains(t, text, "Apply by email.")
}

func TestAdaptDOCX_MissingDocumentPart(t *testing.T) {
	payload := buildDocx(t, map[string]string{"word/styles.xml": "<w:styles/>"})

	_, _, err := AdaptDOCX(payload, types.SourceDescriptor{})
	var adapterErr *AdapterError
	require.ErrorAs(t, err, &adapterErr)
	assert.Equal(t, types.KindDOCX, adapterErr.Kind)
}

func TestAdaptDOCX_NotAZip(t *testing.T) {
	_, _, err := AdaptDOCX([]byte("plain text"), types.SourceDescriptor{})
	var adapterErr *AdapterError
	require.ErrorAs(t, err, &adapterErr)
	assert.Contains(t, adapterErr.Error(), "failed to open archive")
}

func TestDocxToHTML(t *testing.T) {
	html := docxToHTML([]docxParagraph{
		{text: "Intro", heading: true},
		{text: "a", list: true},
		{text: "b <c>", list: true},
		{text: "end"},
	})

	assert.Equal(t, "<html><body><h2>Intro</h2><ul><li>a</li><li>b &lt;c&gt;</li></ul><p>end</p></body></html>", html)
}
