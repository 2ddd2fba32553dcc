package ingestion

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/job-ats/internal/types"
)

var (
	// "devel-\nopment", "devel- opment"
	hyphenBreakRe = regexp.MustCompile(`([A-Za-z])-[ \t]*\n?[ \t]+([a-z])|([A-Za-z])-\n([a-z])`)
	pdfSpaceRe    = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
)

// AdaptPDF extracts plain text page by page. Library panics on malformed
// files are recovered into an AdapterError; pages that fail are skipped.
func AdaptPDF(payload []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &AdapterError{Kind: types.KindPDF, Message: fmt.Sprintf("reader panic: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return "", &AdapterError{Kind: types.KindPDF, Message: "failed to open PDF", Cause: err}
	}

	var pages []string
	var pageErr error
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			pageErr = err
			continue
		}
		if strings.TrimSpace(content) != "" {
			pages = append(pages, content)
		}
	}

	if len(pages) == 0 && pageErr != nil {
		return "", &AdapterError{Kind: types.KindPDF, Message: "no readable pages", Cause: pageErr}
	}
	return normalizePDFText(strings.Join(pages, "\n\n")), nil
}

// normalizePDFText repairs hyphenated line breaks and collapses whitespace per line
func normalizePDFText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = hyphenBreakRe.ReplaceAllString(s, "$1$3$2$4")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(pdfSpaceRe.ReplaceAllString(line, " "))
	}
	return CleanText(strings.Join(lines, "\n"))
}
