package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-ats/internal/types"
)

func snapshot(ids ...string) []types.ATSSuggestion {
	out := make([]types.ATSSuggestion, len(ids))
	for i, id := range ids {
		out[i] = types.ATSSuggestion{ID: id}
	}
	return out
}

func TestHistory_UndoRedo(t *testing.T) {
	h := NewHistory(snapshot("a", "b"), 0)
	assert.False(t, h.CanUndo())

	h.Push(snapshot("b"))
	h.Push(snapshot())

	got, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, snapshot("b"), got)

	got, ok = h.Undo()
	require.True(t, ok)
	assert.Equal(t, snapshot("a", "b"), got)

	_, ok = h.Undo()
	assert.False(t, ok)
	assert.True(t, h.CanRedo())

	got, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, snapshot("b"), got)
	assert.Equal(t, snapshot("b"), h.Current())
}

func TestHistory_PushClearsRedo(t *testing.T) {
	h := NewHistory(snapshot("a"), 0)
	h.Push(snapshot("b"))
	h.Undo()

	h.Push(snapshot("c"))

	assert.False(t, h.CanRedo())
	_, ok := h.Redo()
	assert.False(t, ok)
	assert.Equal(t, snapshot("c"), h.Current())
}

func TestHistory_Limit(t *testing.T) {
	h := NewHistory(snapshot("0"), 2)
	h.Push(snapshot("1"))
	h.Push(snapshot("2"))
	h.Push(snapshot("3"))

	h.Undo()
	got, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, snapshot("1"), got)
	assert.False(t, h.CanUndo())
}

func TestHistory_SnapshotsAreCopies(t *testing.T) {
	list := snapshot("a")
	h := NewHistory(list, 0)

	list[0].Applied = true
	current := h.Current()
	current[0].ID = "changed"

	assert.False(t, h.Current()[0].Applied)
	assert.Equal(t, "a", h.Current()[0].ID)
}

func TestHistory_WithApplySuggestion(t *testing.T) {
	cv := scenarioCV()
	result := Analyze(cv, scenarioJob(), Options{})
	h := NewHistory(result.Suggestions, 0)

	skills := findSuggestion(result, "Add Skills section")
	_, applied, ok := ApplySuggestion(cv, h.Current(), skills.ID)
	require.True(t, ok)
	h.Push(applied)
	h.Push(DismissSuggestion(h.Current(), result.Suggestions[0].ID))

	assert.Len(t, h.Current(), len(result.Suggestions)-1)
	undone, _ := h.Undo()
	assert.Len(t, undone, len(result.Suggestions))
	undone, _ = h.Undo()
	assert.Equal(t, result.Suggestions, undone)
}
