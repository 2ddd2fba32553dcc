package parsing

import (
	"regexp"

	"github.com/jonathan/job-ats/internal/types"
)

// keywordRule maps a keyword pattern to a value. Chains are checked in order,
// most specific first.
type keywordRule[T any] struct {
	value   T
	pattern *regexp.Regexp
}

var employmentChain = []keywordRule[types.EmploymentType]{
	{types.EmploymentInternship, wordPattern("internship", "intern", "stajyer", "staj", "stajyerlik")},
	{types.EmploymentFreelance, wordPattern("freelance", "freelancer", "serbest çalışan", "serbest zamanlı")},
	{types.EmploymentTemporary, wordPattern("temporary", "temp", "seasonal", "geçici", "dönemsel", "sezonluk")},
	{types.EmploymentPartTime, wordPattern("part-time", "part time", "parttime", "yarı zamanlı")},
	{types.EmploymentContract, wordPattern("contract", "contractor", "fixed-term", "fixed term", "sözleşmeli", "proje bazlı")},
	{types.EmploymentFullTime, wordPattern("full-time", "full time", "fulltime", "permanent", "tam zamanlı", "kadrolu")},
}

var seniorityChain = []keywordRule[types.Seniority]{
	{types.SeniorityIntern, wordPattern("intern", "internship", "stajyer", "trainee")},
	{types.SeniorityJunior, wordPattern("junior", "jr", "jr.", "entry level", "entry-level", "new grad", "new graduate", "yeni mezun")},
	{types.SeniorityPrincipal, wordPattern("principal", "staff engineer", "distinguished")},
	{types.SeniorityManager, wordPattern("manager", "head of", "director", "vp", "vice president", "müdür", "yönetici")},
	{types.SeniorityLead, wordPattern("lead", "tech lead", "team lead", "takım lideri", "ekip lideri")},
	{types.SenioritySenior, wordPattern("senior", "sr", "sr.", "kıdemli")},
	{types.SeniorityMid, wordPattern("mid-level", "mid level", "intermediate", "orta seviye")},
}

var remoteChain = []keywordRule[types.RemoteType]{
	{types.RemoteHybrid, wordPattern("hybrid", "hibrit", "partially remote", "partly remote")},
	{types.RemoteRemote, wordPattern("remote", "fully remote", "remote-first", "work from home", "wfh", "telecommute", "uzaktan", "evden çalışma")},
	{types.RemoteOnsite, wordPattern("on-site", "onsite", "on site", "in-office", "in office", "office-based", "ofisten", "iş yerinde")},
}

// matchChain returns the value of the first rule matching folded text
func matchChain[T any](chain []keywordRule[T], text string) (T, bool) {
	folded := fold(text)
	for _, rule := range chain {
		if rule.pattern.MatchString(folded) {
			return rule.value, true
		}
	}
	var zero T
	return zero, false
}

// ExtractEmploymentType classifies the contract type, defaulting to "other"
func ExtractEmploymentType(text string) types.FieldConfidence[types.EmploymentType] {
	if v, ok := matchChain(employmentChain, text); ok {
		return types.FieldConfidence[types.EmploymentType]{Value: v, Confidence: ConfKeywordChain}
	}
	return types.FieldConfidence[types.EmploymentType]{Value: types.EmploymentOther, Confidence: ConfSentinel}
}

// ExtractSeniority classifies the level, preferring evidence in the title.
// Defaults to "na".
func ExtractSeniority(title, text string) types.FieldConfidence[types.Seniority] {
	if title != "" {
		if v, ok := matchChain(seniorityChain, title); ok {
			return types.FieldConfidence[types.Seniority]{Value: v, Confidence: ConfSeniorityTitle}
		}
	}
	if v, ok := matchChain(seniorityChain, text); ok {
		return types.FieldConfidence[types.Seniority]{Value: v, Confidence: ConfKeywordChain}
	}
	return types.FieldConfidence[types.Seniority]{Value: types.SeniorityNA, Confidence: ConfSentinel}
}

// ExtractRemoteType classifies the work arrangement, checking hybrid before
// remote. Defaults to "unknown".
func ExtractRemoteType(text string) types.FieldConfidence[types.RemoteType] {
	if v, ok := matchChain(remoteChain, text); ok {
		return types.FieldConfidence[types.RemoteType]{Value: v, Confidence: ConfKeywordChain}
	}
	return types.FieldConfidence[types.RemoteType]{Value: types.RemoteUnknown, Confidence: ConfSentinel}
}
