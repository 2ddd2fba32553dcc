// Package parsing turns adapted job-posting text into a confidence-scored
// ParsedJob using rule-based extractors. Every extractor is total; the
// parser guards the whole extraction phase so a failing extractor yields an
// empty record instead of a crash.
package parsing

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/job-ats/internal/types"
)

// Parser runs language detection, section splitting and all extractors.
// A Parser holds no mutable state and is safe for concurrent use.
type Parser struct {
	taxonomy *Taxonomy
	now      func() time.Time
	logger   *zap.Logger
}

// NewParser creates a parser. A nil taxonomy uses DefaultTaxonomy; a nil logger discards logs.
func NewParser(taxonomy *Taxonomy, logger *zap.Logger) *Parser {
	if taxonomy == nil {
		taxonomy = DefaultTaxonomy()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{taxonomy: taxonomy, now: time.Now, logger: logger}
}

// WithClock returns a copy of the parser that resolves relative dates against now
func (p *Parser) WithClock(now func() time.Time) *Parser {
	cp := *p
	cp.now = now
	return &cp
}

// Parse extracts a ParsedJob from text. Hints seed fields at their own
// confidence; an extracted value replaces a seed only when it is strictly more
// confident. The source descriptor is passed through unchanged unless the
// extraction phase panics, in which case an empty job with Overall 0 and an
// error note is returned.
func (p *Parser) Parse(text string, hints *types.Hints, source types.SourceDescriptor) (job types.ParsedJob) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("extraction failed",
				zap.Any("panic", r),
				zap.String("url", source.URL),
				zap.String("filename", source.Filename),
			)
			job = emptyParsedJob(text, source, fmt.Sprintf("extraction failed: %v", r))
		}
	}()

	now := p.now()
	lang := DetectLang(text)
	sections := SplitSections(text, lang)
	s := seedsFromHints(hints)

	job = types.ParsedJob{
		Title:       prefer(s.title, ExtractTitle(text)),
		Company:     prefer(s.company, ExtractCompany(text)),
		Location:    prefer(s.location, ExtractLocation(text)),
		Salary:      prefer(s.salary, ExtractSalary(text)),
		PostedAt:    prefer(s.postedAt, ExtractPostedAt(text, now)),
		DeadlineAt:  prefer(s.deadlineAt, ExtractDeadline(text, now)),
		Recruiter:   ExtractRecruiter(text),
		Keywords:    ExtractKeywords(sections, p.taxonomy),
		Sections:    sections,
		Description: text,
		Language:    lang,
		Source:      source,
	}
	job.EmploymentType = preferValue(s.employmentType, ExtractEmploymentType(text))
	job.RemoteType = preferValue(s.remoteType, ExtractRemoteType(text))
	job.Seniority = ExtractSeniority(job.TitleValue(), text)

	return FinalizeParsedJob(job)
}

// emptyParsedJob is the guard result: every field absent or at its sentinel
func emptyParsedJob(text string, source types.SourceDescriptor, note string) types.ParsedJob {
	if source.Error == "" {
		source.Error = note
	}
	return types.ParsedJob{
		RemoteType:     types.FieldConfidence[types.RemoteType]{Value: types.RemoteUnknown},
		EmploymentType: types.FieldConfidence[types.EmploymentType]{Value: types.EmploymentOther},
		Seniority:      types.FieldConfidence[types.Seniority]{Value: types.SeniorityNA},
		Keywords:       []string{},
		Sections:       types.SectionSet{RawText: text},
		Description:    text,
		Language:       types.LangUnknown,
		Source:         source,
		Overall:        ConfGuardFailure,
	}
}
