// Package types provides type definitions for structured data used throughout the job-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// SuggestionCategory groups suggestions; categories are emitted in a fixed order
type SuggestionCategory string

const (
	CategoryKeywords   SuggestionCategory = "keywords"
	CategorySections   SuggestionCategory = "sections"
	CategoryContact    SuggestionCategory = "contact"
	CategoryLength     SuggestionCategory = "length"
	CategoryExperience SuggestionCategory = "experience"
	CategoryEducation  SuggestionCategory = "education"
)

// Severity ranks how much a suggestion matters
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// ActionKind is the discriminator of SuggestionAction
type ActionKind string

const (
	ActionAdd     ActionKind = "add"
	ActionReplace ActionKind = "replace"
	ActionRemove  ActionKind = "remove"
	ActionReorder ActionKind = "reorder"
)

// SuggestionAction is a closed union over AddText, ReplaceText, RemoveAtPath and ReorderAt
type SuggestionAction interface {
	Kind() ActionKind
	sealed()
}

// AddText appends text to a string field or a new item to an array
type AddText struct {
	Text string `json:"text"`
}

// ReplaceText overwrites the value at the target path
type ReplaceText struct {
	Text string `json:"text"`
}

// RemoveAtPath deletes the array index or object key named by the last path segment
type RemoveAtPath struct{}

// ReorderAt moves the array element at From to position To
type ReorderAt struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (AddText) Kind() ActionKind      { return ActionAdd }
func (ReplaceText) Kind() ActionKind  { return ActionReplace }
func (RemoveAtPath) Kind() ActionKind { return ActionRemove }
func (ReorderAt) Kind() ActionKind    { return ActionReorder }

func (AddText) sealed()      {}
func (ReplaceText) sealed()  {}
func (RemoveAtPath) sealed() {}
func (ReorderAt) sealed()    {}

// SuggestionTarget addresses a location inside CVData.
// Section is a top-level CV key; Path segments are object keys or decimal array indices.
type SuggestionTarget struct {
	Section string   `json:"section"`
	Path    []string `json:"path,omitempty"`
}

// ATSSuggestion is a single actionable improvement
type ATSSuggestion struct {
	ID       string             `json:"id"`
	Category SuggestionCategory `json:"category"`
	Severity Severity           `json:"severity"`
	Title    string             `json:"title"`
	Detail   string             `json:"detail"`
	Target   *SuggestionTarget  `json:"target,omitempty"`
	Action   SuggestionAction   `json:"action,omitempty"`
	Applied  bool               `json:"applied"`
}

type actionEnvelope struct {
	Type    ActionKind      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MarshalJSON encodes Action as {"type": ..., "payload": ...}
func (s ATSSuggestion) MarshalJSON() ([]byte, error) {
	type alias ATSSuggestion
	out := struct {
		alias
		Action *actionEnvelope `json:"action,omitempty"`
	}{alias: alias(s)}

	if s.Action != nil {
		payload, err := json.Marshal(s.Action)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal action: %w", err)
		}
		out.Action = &actionEnvelope{Type: s.Action.Kind(), Payload: payload}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the {"type": ..., "payload": ...} action envelope
func (s *ATSSuggestion) UnmarshalJSON(data []byte) error {
	type alias ATSSuggestion
	in := struct {
		*alias
		Action *actionEnvelope `json:"action,omitempty"`
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Action == nil {
		s.Action = nil
		return nil
	}

	action, err := decodeAction(in.Action)
	if err != nil {
		return err
	}
	s.Action = action
	return nil
}

func decodeAction(env *actionEnvelope) (SuggestionAction, error) {
	payload := env.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	switch env.Type {
	case ActionAdd:
		var a AddText
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("invalid add payload: %w", err)
		}
		return a, nil
	case ActionReplace:
		var a ReplaceText
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("invalid replace payload: %w", err)
		}
		return a, nil
	case ActionRemove:
		return RemoveAtPath{}, nil
	case ActionReorder:
		var a ReorderAt
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("invalid reorder payload: %w", err)
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unknown action type: %q", env.Type)
	}
}

// KeywordMeta describes one job keyword's importance and where it appears
type KeywordMeta struct {
	Term               string  `json:"term"`
	Stem               string  `json:"stem"`
	Importance         float64 `json:"importance"`
	Occurrences        int     `json:"occurrences"`
	InTitle            bool    `json:"in_title"`
	InRequirements     bool    `json:"in_requirements"`
	InQualifications   bool    `json:"in_qualifications"`
	InResponsibilities bool    `json:"in_responsibilities"`
	Matched            bool    `json:"matched"`
}

// Weights are the per-component weights of the weighted score variant
type Weights struct {
	Keywords   float64 `json:"keywords" mapstructure:"keywords" validate:"gte=0"`
	Sections   float64 `json:"sections" mapstructure:"sections" validate:"gte=0"`
	Length     float64 `json:"length" mapstructure:"length" validate:"gte=0"`
	Experience float64 `json:"experience" mapstructure:"experience" validate:"gte=0"`
	Formatting float64 `json:"formatting" mapstructure:"formatting" validate:"gte=0"`
}

// Sum returns the total of all weights
func (w Weights) Sum() float64 {
	return w.Keywords + w.Sections + w.Length + w.Experience + w.Formatting
}

// ATSAnalysisResult is an immutable snapshot of one analysis
type ATSAnalysisResult struct {
	Score           int             `json:"score"`
	WeightedScore   *int            `json:"weighted_score,omitempty"`
	Suggestions     []ATSSuggestion `json:"suggestions"`
	MatchedKeywords []string        `json:"matched_keywords"`
	MissingKeywords []string        `json:"missing_keywords"`
	KeywordMeta     []KeywordMeta   `json:"keyword_meta,omitempty"`
	WeightsUsed     Weights         `json:"weights_used"`
	AnalyzedAt      time.Time       `json:"analyzed_at"`
}

// CountSeverity returns how many suggestions carry the given severity
func (r *ATSAnalysisResult) CountSeverity(sev Severity) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, s := range r.Suggestions {
		if s.Severity == sev {
			n++
		}
	}
	return n
}
