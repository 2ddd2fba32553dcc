package parsing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/job-ats/internal/types"
)

const fullPosting = `Senior Backend Engineer at Acme
Location: Berlin, Germany
Full-time, hybrid
Posted 3 days ago
Salary: €70,000 - €90,000 per year

Requirements:
- Golang
- PostgreSQL

Benefits:
- Health

Contact: jane@acme.io`

func newTestParser() *Parser {
	return NewParser(nil, nil).WithClock(func() time.Time { return testNow })
}

func TestParse_FullPosting(t *testing.T) {
	source := types.SourceDescriptor{URL: "https://jobs.acme.io/1", Kind: types.KindText}

	job := newTestParser().Parse(fullPosting, nil, source)

	require.NotNil(t, job.Title)
	assert.Equal(t, "Senior Backend Engineer", job.Title.Value)
	assert.InDelta(t, ConfTitleFallback, job.Title.Confidence, 1e-9)
	require.NotNil(t, job.Company)
	assert.Equal(t, "Acme", job.Company.Value)
	require.NotNil(t, job.Location)
	assert.Equal(t, "Berlin, Germany", job.Location.Value)

	assert.Equal(t, types.EmploymentFullTime, job.EmploymentType.Value)
	assert.Equal(t, types.RemoteHybrid, job.RemoteType.Value)
	assert.Equal(t, types.SenioritySenior, job.Seniority.Value)
	assert.Equal(t, types.LangEnglish, job.Language)

	require.NotNil(t, job.Salary)
	assert.Equal(t, types.SalaryRange{Min: 70000, Max: 90000, Currency: "EUR", Period: "y"}, job.Salary.Value)
	require.NotNil(t, job.PostedAt)
	assert.Equal(t, day(2026, time.March, 7), job.PostedAt.Value)
	assert.Nil(t, job.DeadlineAt)
	require.NotNil(t, job.Recruiter)
	assert.Equal(t, "jane@acme.io", job.Recruiter.Value.Email)

	assert.Equal(t, []string{"Golang", "PostgreSQL"}, job.Sections.Requirements)
	assert.Equal(t, []string{"Health"}, job.Sections.Benefits)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, job.Keywords)
	assert.Equal(t, fullPosting, job.Description)
	assert.Equal(t, source, job.Source)

	assert.InDelta(t, (ConfTitleFallback+ConfCompanyAtTitle+ConfLabeledLocation)/3, job.Overall, 1e-9)
	assert.Equal(t, job, FinalizeParsedJob(job))
}

func TestParse_RequirementsAndBenefits(t *testing.T) {
	job := newTestParser().Parse("Requirements:\n- SQL\n- Python\n\nBenefits:\n- Health", nil, types.SourceDescriptor{})

	assert.Equal(t, []string{"SQL", "Python"}, job.Sections.Requirements)
	assert.Equal(t, []string{"Health"}, job.Sections.Benefits)
	assert.Nil(t, job.Sections.Qualifications)
	assert.Nil(t, job.Sections.Responsibilities)
	assert.Nil(t, job.Title)
	assert.InDelta(t, ConfNeutralPrior, job.Overall, 1e-9)
}

func TestParse_HintsSeedFields(t *testing.T) {
	text := "Platform Engineer\nCompany: Initech\nThis is a contract position."
	hints := &types.Hints{
		Title:          "Staff Platform Engineer",
		Company:        "Globex",
		EmploymentType: "FULL_TIME",
		RemoteType:     "TELECOMMUTE",
		DatePosted:     "2026-03-01",
		Salary:         &types.SalaryRange{Min: 100000, Max: 120000, Currency: "USD"},
		Confidence:     ConfSeedHint,
	}

	job := newTestParser().Parse(text, hints, types.SourceDescriptor{})

	require.NotNil(t, job.Title)
	assert.Equal(t, "Staff Platform Engineer", job.Title.Value)
	require.NotNil(t, job.Company)
	assert.Equal(t, "Globex", job.Company.Value)
	assert.InDelta(t, ConfSeedHint, job.Company.Confidence, 1e-9)
	assert.Equal(t, types.EmploymentFullTime, job.EmploymentType.Value)
	assert.Equal(t, types.RemoteRemote, job.RemoteType.Value)
	require.NotNil(t, job.PostedAt)
	assert.Equal(t, day(2026, time.March, 1), job.PostedAt.Value)
	require.NotNil(t, job.Salary)
	assert.Equal(t, "y", job.Salary.Value.Period)
	assert.InDelta(t, ConfSeedHint, job.Overall, 1e-9)
}

func TestParse_HintsWithoutConfidenceUseSeedDefault(t *testing.T) {
	hints := &types.Hints{Company: "Globex"}

	job := newTestParser().Parse("Platform Engineer", hints, types.SourceDescriptor{})

	require.NotNil(t, job.Company)
	assert.Equal(t, "Globex", job.Company.Value)
	assert.InDelta(t, ConfSeedHint, job.Company.Confidence, 1e-9)
}

func TestParse_ExtractedBeatsWeakSeed(t *testing.T) {
	hints := &types.Hints{Company: "Globex", Confidence: 0.5}

	job := newTestParser().Parse("Engineer\nCompany: Initech", hints, types.SourceDescriptor{})

	require.NotNil(t, job.Company)
	assert.Equal(t, "Initech", job.Company.Value)
	assert.InDelta(t, ConfLabeledField, job.Company.Confidence, 1e-9)
}

func TestParse_DegradedSourcePassesThrough(t *testing.T) {
	source := types.SourceDescriptor{Filename: "broken.pdf", Kind: types.KindPDF, Error: "pdf adapter: no readable pages"}

	job := newTestParser().Parse("", nil, source)

	assert.Equal(t, source, job.Source)
	assert.Nil(t, job.Title)
	assert.Equal(t, types.EmploymentOther, job.EmploymentType.Value)
	assert.Equal(t, types.RemoteUnknown, job.RemoteType.Value)
	assert.Equal(t, types.SeniorityNA, job.Seniority.Value)
	assert.Equal(t, types.LangUnknown, job.Language)
	assert.NotNil(t, job.Keywords)
	assert.Empty(t, job.Keywords)
}

func TestParse_GuardReturnsEmptyJob(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	p := NewParser(nil, zap.New(core)).WithClock(func() time.Time { panic("clock") })
	source := types.SourceDescriptor{URL: "https://example.com/job"}

	job := p.Parse(fullPosting, nil, source)

	assert.Nil(t, job.Title)
	assert.Nil(t, job.Company)
	assert.Nil(t, job.Salary)
	assert.Zero(t, job.Overall)
	assert.Equal(t, types.LangUnknown, job.Language)
	assert.Equal(t, types.EmploymentOther, job.EmploymentType.Value)
	assert.NotNil(t, job.Keywords)
	assert.Equal(t, fullPosting, job.Sections.RawText)
	assert.Equal(t, "https://example.com/job", job.Source.URL)
	assert.Equal(t, "extraction failed: clock", job.Source.Error)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "extraction failed", logs.All()[0].Message)
}

func TestParse_ConcurrentUse(t *testing.T) {
	p := newTestParser()
	done := make(chan types.ParsedJob, 8)
	for i := 0; i < 8; i++ {
		go func() { done <- p.Parse(fullPosting, nil, types.SourceDescriptor{}) }()
	}
	first := <-done
	for i := 1; i < 8; i++ {
		assert.Equal(t, first, <-done)
	}
}
