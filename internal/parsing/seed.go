package parsing

import (
	"strings"
	"time"

	"github.com/jonathan/job-ats/internal/types"
)

// schemaEmploymentTypes maps schema.org employmentType values
var schemaEmploymentTypes = map[string]types.EmploymentType{
	"FULL_TIME":  types.EmploymentFullTime,
	"PART_TIME":  types.EmploymentPartTime,
	"CONTRACTOR": types.EmploymentContract,
	"TEMPORARY":  types.EmploymentTemporary,
	"INTERN":     types.EmploymentInternship,
}

// seeds are the hint-derived starting values for extraction
type seeds struct {
	title, company, location *types.FieldConfidence[string]
	postedAt, deadlineAt     *types.FieldConfidence[time.Time]
	employmentType           *types.FieldConfidence[types.EmploymentType]
	remoteType               *types.FieldConfidence[types.RemoteType]
	salary                   *types.FieldConfidence[types.SalaryRange]
}

func seedsFromHints(h *types.Hints) seeds {
	var s seeds
	if h == nil {
		return s
	}
	conf := h.Confidence
	if conf <= 0 {
		conf = ConfSeedHint
	}

	s.title = seedString(h.Title, conf)
	s.company = seedString(h.Company, conf)
	s.location = seedString(h.Location, conf)
	if t, ok := ParseHintDate(h.DatePosted); ok {
		s.postedAt = &types.FieldConfidence[time.Time]{Value: t, Confidence: conf}
	}
	if t, ok := ParseHintDate(h.ValidThrough); ok {
		s.deadlineAt = &types.FieldConfidence[time.Time]{Value: t, Confidence: conf}
	}
	if et, ok := schemaEmploymentTypes[strings.ToUpper(strings.TrimSpace(h.EmploymentType))]; ok {
		s.employmentType = &types.FieldConfidence[types.EmploymentType]{Value: et, Confidence: conf}
	}
	if strings.EqualFold(strings.TrimSpace(h.RemoteType), "TELECOMMUTE") {
		s.remoteType = &types.FieldConfidence[types.RemoteType]{Value: types.RemoteRemote, Confidence: conf}
	}
	if h.Salary != nil && h.Salary.Max > 0 {
		salary := *h.Salary
		if salary.Period == "" {
			salary.Period = inferPeriod(salary.Max)
		}
		s.salary = &types.FieldConfidence[types.SalaryRange]{Value: salary, Confidence: conf}
	}
	return s
}

func seedString(value string, conf float64) *types.FieldConfidence[string] {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &types.FieldConfidence[string]{Value: value, Confidence: conf}
}

// prefer returns the extracted value only when it is strictly more confident than the seed
func prefer[T any](seed, extracted *types.FieldConfidence[T]) *types.FieldConfidence[T] {
	if seed == nil {
		return extracted
	}
	if extracted != nil && extracted.Confidence > seed.Confidence {
		return extracted
	}
	return seed
}

// preferValue is prefer for always-present classification fields
func preferValue[T any](seed *types.FieldConfidence[T], extracted types.FieldConfidence[T]) types.FieldConfidence[T] {
	if seed != nil && seed.Confidence >= extracted.Confidence {
		return *seed
	}
	return extracted
}
