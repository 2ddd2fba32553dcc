package ingestion

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/job-ats/internal/types"
)

// salaryUnits maps schema.org unitText to salary periods
var salaryUnits = map[string]string{
	"HOUR":  "h",
	"DAY":   "d",
	"WEEK":  "w",
	"MONTH": "m",
	"YEAR":  "y",
}

// extractHints reads JSON-LD JobPosting blocks and OpenGraph/Twitter meta.
// It must run before noise removal strips script elements. Returns nil when nothing was found.
// Confidence is left at zero so the parser applies its seed default.
func extractHints(doc *goquery.Document) *types.Hints {
	hints := &types.Hints{}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var raw any
		if err := json.Unmarshal([]byte(strings.TrimSpace(s.Text())), &raw); err != nil {
			return
		}
		for _, posting := range findJobPostings(raw) {
			mergePosting(hints, posting)
		}
	})

	applyMeta(hints, doc)

	if hints.Empty() {
		return nil
	}
	return hints
}

// findJobPostings walks objects, arrays and @graph containers for JobPosting nodes
func findJobPostings(v any) []map[string]any {
	switch node := v.(type) {
	case []any:
		var out []map[string]any
		for _, item := range node {
			out = append(out, findJobPostings(item)...)
		}
		return out
	case map[string]any:
		if isJobPosting(node) {
			return []map[string]any{node}
		}
		if graph, ok := node["@graph"]; ok {
			return findJobPostings(graph)
		}
	}
	return nil
}

func isJobPosting(node map[string]any) bool {
	switch t := node["@type"].(type) {
	case string:
		return t == "JobPosting"
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == "JobPosting" {
				return true
			}
		}
	}
	return false
}

// mergePosting fills empty hint fields from one posting; the first posting wins
func mergePosting(h *types.Hints, posting map[string]any) {
	setIfEmpty(&h.Title, stringValue(posting["title"]))
	setIfEmpty(&h.Company, organizationName(posting["hiringOrganization"]))
	setIfEmpty(&h.Location, locationName(posting["jobLocation"]))
	setIfEmpty(&h.EmploymentType, firstString(posting["employmentType"]))
	setIfEmpty(&h.RemoteType, firstString(posting["jobLocationType"]))
	setIfEmpty(&h.DatePosted, stringValue(posting["datePosted"]))
	setIfEmpty(&h.ValidThrough, stringValue(posting["validThrough"]))

	if h.Description == "" {
		if desc := stringValue(posting["description"]); desc != "" {
			h.Description = htmlFragmentToText(desc)
		}
	}
	if h.Salary == nil {
		h.Salary = baseSalary(posting["baseSalary"])
	}
}

// applyMeta falls back to og:/twitter: meta for title and description
func applyMeta(h *types.Hints, doc *goquery.Document) {
	meta := func(attr, key string) string {
		content, _ := doc.Find(`meta[` + attr + `="` + key + `"]`).First().Attr("content")
		return strings.TrimSpace(content)
	}

	setIfEmpty(&h.Title, meta("property", "og:title"))
	setIfEmpty(&h.Title, meta("name", "twitter:title"))
	setIfEmpty(&h.Description, meta("property", "og:description"))
	setIfEmpty(&h.Description, meta("name", "twitter:description"))
}

func setIfEmpty(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

func stringValue(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func firstString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		for _, item := range t {
			if s := stringValue(item); s != "" {
				return s
			}
		}
	}
	return ""
}

func organizationName(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		return stringValue(t["name"])
	}
	return ""
}

func locationName(v any) string {
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if name := locationName(item); name != "" {
				return name
			}
		}
	case map[string]any:
		if name := addressName(t["address"]); name != "" {
			return name
		}
		return stringValue(t["name"])
	case string:
		return strings.TrimSpace(t)
	}
	return ""
}

func addressName(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		var parts []string
		for _, key := range []string{"addressLocality", "addressRegion", "addressCountry"} {
			part := organizationName(t[key])
			if part != "" && !containsFold(parts, part) {
				parts = append(parts, part)
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

// baseSalary reads a schema.org MonetaryAmount
func baseSalary(v any) *types.SalaryRange {
	amount, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	salary := &types.SalaryRange{Currency: strings.ToUpper(stringValue(amount["currency"]))}
	var minValue, maxValue float64
	var hasMin, hasMax bool

	switch value := amount["value"].(type) {
	case map[string]any:
		minValue, hasMin = numberValue(value["minValue"])
		maxValue, hasMax = numberValue(value["maxValue"])
		if !hasMin && !hasMax {
			minValue, hasMin = numberValue(value["value"])
		}
		salary.Period = salaryUnits[strings.ToUpper(stringValue(value["unitText"]))]
	default:
		minValue, hasMin = numberValue(value)
	}

	switch {
	case hasMin && hasMax:
		salary.Min, salary.Max = minValue, maxValue
	case hasMin:
		salary.Min, salary.Max = minValue, minValue
	case hasMax:
		salary.Min, salary.Max = maxValue, maxValue
	default:
		return nil
	}
	if salary.Min > salary.Max {
		salary.Min, salary.Max = salary.Max, salary.Min
	}
	return salary
}

func numberValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(t), ",", ""), 64)
		return f, err == nil
	}
	return 0, false
}
