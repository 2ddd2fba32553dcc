package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-ats/internal/types"
)

// maxTitleLineLength bounds the first-line title heuristic
const maxTitleLineLength = 120

var (
	titleLabels     = foldedSet("title", "job title", "position", "role", "position title", "pozisyon", "pozisyon adı", "unvan", "iş unvanı")
	companyLabels   = foldedSet("company", "company name", "employer", "organization", "organisation", "şirket", "şirket adı", "firma", "firma adı", "işveren")
	locationLabels  = foldedSet("location", "job location", "work location", "based in", "office", "lokasyon", "konum", "şehir", "yer", "çalışma yeri", "iş yeri")
	recruiterLabels = foldedSet("contact", "contact person", "recruiter", "hiring manager", "hr", "iletişim", "ilgili kişi", "ik", "insan kaynakları")

	emailRe   = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	atTitleRe = regexp.MustCompile(`^(.{2,80}?)\s+(?:at|@)\s+(.{2,60})$`)
)

func foldedSet(labels ...string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[fold(l)] = true
	}
	return set
}

// labeledValue returns the value of the first "Label: value" line whose label is in labels
func labeledValue(text string, labels map[string]bool) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		label, value, ok := splitLabel(line)
		if ok && labels[label] && value != "" {
			return value, true
		}
	}
	return "", false
}

// splitLabel splits "**Job Title:** Engineer" into ("job title", "Engineer")
func splitLabel(line string) (string, string, bool) {
	head, rest, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	label := fold(trimDecoration(head))
	if label == "" || len([]rune(label)) > 40 {
		return "", "", false
	}
	value := strings.TrimSpace(strings.Trim(strings.TrimSpace(rest), "*_"))
	return label, value, true
}

// isLabelLine reports whether line is a "Label: value" line for any known label
func isLabelLine(line string) bool {
	label, _, ok := splitLabel(line)
	if !ok {
		return false
	}
	return titleLabels[label] || companyLabels[label] || locationLabels[label] || recruiterLabels[label]
}

// ExtractTitle finds the job title from a label, falling back to the first
// short line that is not a section header or a label line.
func ExtractTitle(text string) *types.FieldConfidence[string] {
	if value, ok := labeledValue(text, titleLabels); ok {
		return &types.FieldConfidence[string]{Value: value, Confidence: ConfLabeledField}
	}

	line, ok := firstContentLine(text)
	if !ok {
		return nil
	}
	if m := atTitleRe.FindStringSubmatch(line); m != nil {
		line = strings.TrimSpace(m[1])
	}
	return &types.FieldConfidence[string]{Value: line, Confidence: ConfTitleFallback}
}

// ExtractCompany finds the company from a label, falling back to a
// "<title> at <Company>" first line.
func ExtractCompany(text string) *types.FieldConfidence[string] {
	if value, ok := labeledValue(text, companyLabels); ok {
		return &types.FieldConfidence[string]{Value: value, Confidence: ConfLabeledField}
	}

	line, ok := firstContentLine(text)
	if !ok {
		return nil
	}
	if m := atTitleRe.FindStringSubmatch(line); m != nil {
		company := strings.TrimRight(strings.TrimSpace(m[2]), ".!")
		if company != "" {
			return &types.FieldConfidence[string]{Value: company, Confidence: ConfCompanyAtTitle}
		}
	}
	return nil
}

// ExtractLocation finds a labeled location
func ExtractLocation(text string) *types.FieldConfidence[string] {
	if value, ok := labeledValue(text, locationLabels); ok {
		return &types.FieldConfidence[string]{Value: value, Confidence: ConfLabeledLocation}
	}
	return nil
}

// ExtractRecruiter finds a contact email and an optional labeled name.
// A name without a corroborating email gets a low confidence.
func ExtractRecruiter(text string) *types.FieldConfidence[types.Recruiter] {
	var recruiter types.Recruiter
	recruiter.Email = emailRe.FindString(text)

	if value, ok := labeledValue(text, recruiterLabels); ok {
		name := strings.TrimSpace(emailRe.ReplaceAllString(value, ""))
		name = strings.Trim(name, " ,;-–()<>")
		if name != "" && len([]rune(name)) <= 60 && !strings.ContainsAny(name, "@/") {
			recruiter.Name = name
		}
	}

	switch {
	case recruiter.Email != "":
		return &types.FieldConfidence[types.Recruiter]{Value: recruiter, Confidence: ConfRecruiterEmail}
	case recruiter.Name != "":
		return &types.FieldConfidence[types.Recruiter]{Value: recruiter, Confidence: ConfRecruiterNameOnly}
	default:
		return nil
	}
}

// firstContentLine returns the first non-empty line usable as a title
func firstContentLine(text string) (string, bool) {
	for _, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		line := trimDecoration(raw)
		if line == "" || len([]rune(line)) > maxTitleLineLength {
			return "", false
		}
		if isLabelLine(raw) {
			continue
		}
		if h, ok := parseHeaderLine(raw); ok {
			if _, isHeader := matchAnyHeader(h.key); isHeader {
				return "", false
			}
		}
		return strings.TrimRight(line, ":"), true
	}
	return "", false
}
