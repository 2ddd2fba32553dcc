// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/job-ats/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads line to the inner box width, counting runes
func pad(line string) string {
	inner := boxWidth - 4
	n := utf8.RuneCountInString(line)
	if n > inner {
		runes := []rune(line)
		return string(runes[:inner-3]) + "..."
	}
	return line + strings.Repeat(" ", inner-n)
}

func confidenceLabel[T any](f *types.FieldConfidence[T], value string) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%.2f)", value, f.Confidence)
}

func writeList(sb *strings.Builder, label string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintParsedJob outputs a human-readable summary of a parsed job posting.
func (p *Printer) PrintParsedJob(job *types.ParsedJob) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:     %s\n", confidenceLabel(job.Title, job.TitleValue())))
	sb.WriteString(fmt.Sprintf("Company:   %s\n", confidenceLabel(job.Company, job.CompanyValue())))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", confidenceLabel(job.Location, job.LocationValue())))
	sb.WriteString(fmt.Sprintf("Remote:    %s   Type: %s   Level: %s\n",
		job.RemoteType.Value, job.EmploymentType.Value, job.Seniority.Value))
	if job.Salary != nil {
		s := job.Salary.Value
		sb.WriteString(fmt.Sprintf("Salary:    %.0f-%.0f %s/%s\n", s.Min, s.Max, s.Currency, s.Period))
	}
	if job.PostedAt != nil {
		sb.WriteString(fmt.Sprintf("Posted:    %s\n", job.PostedAt.Value.Format("2006-01-02")))
	}
	if job.DeadlineAt != nil {
		sb.WriteString(fmt.Sprintf("Deadline:  %s\n", job.DeadlineAt.Value.Format("2006-01-02")))
	}
	sb.WriteString(fmt.Sprintf("Language:  %s   Overall: %.2f\n", job.Language, job.Overall))
	if job.Source.Degraded() {
		sb.WriteString(fmt.Sprintf("Degraded:  %s\n", job.Source.Error))
	}
	sb.WriteString("\n")

	writeList(&sb, "Requirements", job.Sections.Requirements, maxItemsToShow)
	writeList(&sb, "Keywords", job.Keywords, maxItemsToShow*2)

	p.printBox("PARSED JOB", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobs outputs one line per deduplicated job.
func (p *Printer) PrintJobs(jobs []types.JobNormalized) {
	if len(jobs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Unique postings: %d\n\n", len(jobs)))
	for i, j := range jobs {
		title := j.Title
		if title == "" {
			title = "(untitled)"
		}
		line := fmt.Sprintf("%s  %s", j.Fingerprint[:min(8, len(j.Fingerprint))], title)
		if j.Company != "" {
			line += " @ " + j.Company
		}
		sb.WriteString(line + "\n")
		if i == maxItemsToShow*2-1 && len(jobs) > maxItemsToShow*2 {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(jobs)-maxItemsToShow*2))
			break
		}
	}

	p.printBox("INGESTED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the ATS score, keyword coverage and top suggestions.
func (p *Printer) PrintAnalysis(result *types.ATSAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100", result.Score))
	if result.WeightedScore != nil {
		sb.WriteString(fmt.Sprintf("   Weighted: %d/100", *result.WeightedScore))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Keywords: %d matched, %d missing\n",
		len(result.MatchedKeywords), len(result.MissingKeywords)))
	sb.WriteString(fmt.Sprintf("Critical: %d   High: %d   Medium: %d\n",
		result.CountSeverity(types.SeverityCritical),
		result.CountSeverity(types.SeverityHigh),
		result.CountSeverity(types.SeverityMedium)))
	sb.WriteString("\n")

	writeList(&sb, "Missing", result.MissingKeywords, maxItemsToShow)

	if len(result.Suggestions) > 0 {
		sb.WriteString("Suggestions:\n")
		count := min(len(result.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := result.Suggestions[i]
			mark := " "
			if s.Applied {
				mark = "✓"
			}
			sb.WriteString(fmt.Sprintf("  %s [%s] %s\n", mark, s.Severity, s.Title))
		}
		if len(result.Suggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Suggestions)-maxItemsToShow))
		}
	}

	p.printBox("ATS ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
