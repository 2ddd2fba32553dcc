package ats

import (
	"github.com/jonathan/job-ats/internal/types"
)

// DefaultHistoryLimit bounds the number of undo steps kept
const DefaultHistoryLimit = 50

// History keeps whole-list snapshots of suggestions for undo and redo.
// Each analysis session owns its own History; it is not safe for concurrent use.
type History struct {
	past    [][]types.ATSSuggestion
	current []types.ATSSuggestion
	future  [][]types.ATSSuggestion
	limit   int
}

// NewHistory starts a history at initial. A non-positive limit uses DefaultHistoryLimit.
func NewHistory(initial []types.ATSSuggestion, limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{current: cloneSuggestions(initial), limit: limit}
}

// Current returns a copy of the current snapshot
func (h *History) Current() []types.ATSSuggestion {
	return cloneSuggestions(h.current)
}

// Push records a new snapshot and clears the redo stack
func (h *History) Push(snapshot []types.ATSSuggestion) {
	h.past = append(h.past, h.current)
	if len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}
	h.current = cloneSuggestions(snapshot)
	h.future = nil
}

// Undo steps back one snapshot. It reports false when there is nothing to undo.
func (h *History) Undo() ([]types.ATSSuggestion, bool) {
	if len(h.past) == 0 {
		return h.Current(), false
	}
	h.future = append(h.future, h.current)
	h.current = h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	return h.Current(), true
}

// Redo re-applies the last undone snapshot. It reports false when there is nothing to redo.
func (h *History) Redo() ([]types.ATSSuggestion, bool) {
	if len(h.future) == 0 {
		return h.Current(), false
	}
	h.past = append(h.past, h.current)
	h.current = h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	return h.Current(), true
}

// CanUndo reports whether Undo would change the current snapshot
func (h *History) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo reports whether Redo would change the current snapshot
func (h *History) CanRedo() bool {
	return len(h.future) > 0
}
