package ingestion

import (
	"bytes"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/job-ats/internal/fetch"
	"github.com/jonathan/job-ats/internal/types"
)

var (
	mdImageRe    = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	mdLinkRe     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	mdHeadingRe  = regexp.MustCompile(`(?m)^[ \t]*#{1,6}[ \t]+`)
	mdEmphasisRe = regexp.MustCompile(`\*([^*\s][^*\n]*)\*`)
	mdEscapeRe   = regexp.MustCompile("\\\\([\\\\`*_{}\\[\\]()#+\\-.!|<>~])")
	mdStrongRepl = strings.NewReplacer("**", "", "__", "", "`", "")
)

// AdaptHTML converts an HTML page into list-preserving plain text.
// Structured hints are read before noise removal; the body is taken from the
// platform's content selectors with a body fallback.
func AdaptHTML(payload []byte, src types.SourceDescriptor) (string, *types.Hints, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(payload))
	if err != nil {
		return "", nil, &AdapterError{Kind: types.KindHTML, Message: "failed to parse HTML", Cause: err}
	}

	hints := extractHints(doc)

	platform := fetch.DetectPlatform(src.URL)
	if platform == fetch.PlatformUnknown {
		platform = fetch.DetectPlatformFromSite(src.Site)
	}
	fetch.RemoveNoise(doc, fetch.PlatformNoiseSelectors(platform)...)

	text := selectionToText(fetch.MainContent(doc, fetch.PlatformContentSelectors(platform)))
	if text == "" && hints != nil {
		text = hints.Description
	}
	return text, hints, nil
}

// selectionToText renders a selection through html-to-markdown so list items
// survive as "- item" lines, then strips the remaining markdown syntax.
func selectionToText(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return CleanText(sel.Text())
	}
	return htmlFragmentToText(html)
}

// convertHTML is the markdown conversion step; tests swap it to exercise the fallback
var convertHTML = func(html string) (string, error) {
	return htmltomarkdown.ConvertString(html)
}

// htmlFragmentToText converts an HTML fragment, falling back to the plain
// main-text extraction when conversion fails
func htmlFragmentToText(html string) string {
	markdown, err := convertHTML(html)
	if err != nil {
		text, extractErr := fetch.ExtractMainText(html, fetch.DefaultTextSelectors())
		if extractErr != nil {
			return CleanText(html)
		}
		return CleanText(text)
	}
	return CleanText(stripMarkdown(markdown))
}

// stripMarkdown removes inline markdown while keeping bullets and numbering
func stripMarkdown(md string) string {
	md = mdImageRe.ReplaceAllString(md, "")
	md = mdLinkRe.ReplaceAllString(md, "$1")
	md = mdHeadingRe.ReplaceAllString(md, "")
	md = mdStrongRepl.Replace(md)
	md = mdEmphasisRe.ReplaceAllString(md, "$1")
	return mdEscapeRe.ReplaceAllString(md, "$1")
}
