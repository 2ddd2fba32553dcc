package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"html"
	"io"
	"strings"

	"github.com/jonathan/job-ats/internal/types"
)

const docxDocumentPart = "word/document.xml"

// docxParagraph is one w:p element flattened to text
type docxParagraph struct {
	text    string
	list    bool
	heading bool
}

// AdaptDOCX converts word/document.xml into HTML (lists and headings kept)
// and hands it to the HTML adapter.
func AdaptDOCX(payload []byte, src types.SourceDescriptor) (string, *types.Hints, error) {
	part, err := readDocxPart(payload)
	if err != nil {
		return "", nil, &AdapterError{Kind: types.KindDOCX, Message: "failed to open archive", Cause: err}
	}

	paragraphs, err := parseDocxParagraphs(part)
	if err != nil {
		return "", nil, &AdapterError{Kind: types.KindDOCX, Message: "failed to read document.xml", Cause: err}
	}

	text, hints, err := AdaptHTML([]byte(docxToHTML(paragraphs)), src)
	if err != nil {
		return "", nil, &AdapterError{Kind: types.KindDOCX, Message: "failed to convert document", Cause: err}
	}
	return text, hints, nil
}

func readDocxPart(payload []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if f.Name != docxDocumentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, errors.New("no " + docxDocumentPart + " in archive")
}

// parseDocxParagraphs streams the WordprocessingML body. Namespaces are ignored
// and elements are matched by local name.
func parseDocxParagraphs(part []byte) ([]docxParagraph, error) {
	decoder := xml.NewDecoder(bytes.NewReader(part))

	var paragraphs []docxParagraph
	var current *docxParagraph
	var text strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				current = &docxParagraph{}
				text.Reset()
			case "numPr":
				if current != nil {
					current.list = true
				}
			case "pStyle":
				if current != nil && isHeadingStyle(attrValue(t, "val")) {
					current.heading = true
				}
			case "t":
				inText = true
			case "tab":
				text.WriteString(" ")
			case "br", "cr":
				text.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if current != nil {
					current.text = strings.TrimSpace(text.String())
					if current.text != "" {
						paragraphs = append(paragraphs, *current)
					}
					current = nil
				}
			}
		case xml.CharData:
			if inText {
				text.Write(t)
			}
		}
	}
	return paragraphs, nil
}

func isHeadingStyle(style string) bool {
	style = strings.ToLower(style)
	return strings.HasPrefix(style, "heading") || style == "title" || style == "subtitle"
}

func attrValue(el xml.StartElement, local string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

// docxToHTML groups consecutive list paragraphs into one <ul>
func docxToHTML(paragraphs []docxParagraph) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	inList := false
	for _, p := range paragraphs {
		if p.list != inList {
			if p.list {
				b.WriteString("<ul>")
			} else {
				b.WriteString("</ul>")
			}
			inList = p.list
		}

		escaped := strings.ReplaceAll(html.EscapeString(p.text), "\n", "<br>")
		switch {
		case p.list:
			b.WriteString("<li>" + escaped + "</li>")
		case p.heading:
			b.WriteString("<h2>" + escaped + "</h2>")
		default:
			b.WriteString("<p>" + escaped + "</p>")
		}
	}
	if inList {
		b.WriteString("</ul>")
	}
	b.WriteString("</body></html>")
	return b.String()
}
