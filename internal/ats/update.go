package ats

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jonathan/job-ats/internal/types"
)

// UpdateByPath applies action at target inside a copy of cv.
// add appends to a string (with a leading space) or to an array, replace
// overwrites, remove deletes the array index or object key named by the
// last path segment, and reorder moves an array element. A target that no
// longer resolves leaves the copy unchanged and reports false.
func UpdateByPath(cv *types.CVData, target types.SuggestionTarget, action types.SuggestionAction) (*types.CVData, bool) {
	tree, err := toTree(cv)
	if err != nil {
		return cloneCV(cv), false
	}

	section, ok := tree[target.Section]
	if !ok || action == nil {
		return cloneCV(cv), false
	}

	var updated any
	switch a := action.(type) {
	case types.AddText:
		updated, ok = updateAt(section, target.Path, func(node any) (any, bool) { return addText(node, a.Text) })
	case types.ReplaceText:
		updated, ok = updateAt(section, target.Path, func(node any) (any, bool) { return replaceText(node, a.Text) })
	case types.RemoveAtPath:
		if len(target.Path) == 0 {
			return cloneCV(cv), false
		}
		parent, last := target.Path[:len(target.Path)-1], target.Path[len(target.Path)-1]
		updated, ok = updateAt(section, parent, func(node any) (any, bool) { return removeChild(node, last) })
	case types.ReorderAt:
		updated, ok = updateAt(section, target.Path, func(node any) (any, bool) { return reorder(node, a.From, a.To) })
	default:
		ok = false
	}
	if !ok {
		return cloneCV(cv), false
	}

	tree[target.Section] = updated
	out, err := fromTree(tree)
	if err != nil {
		// the edit produced a shape CVData cannot hold
		return cloneCV(cv), false
	}
	return out, true
}

// updateAt walks path and replaces the node it names with fn's result
func updateAt(node any, path []string, fn func(any) (any, bool)) (any, bool) {
	if len(path) == 0 {
		return fn(node)
	}

	switch n := node.(type) {
	case map[string]any:
		child, ok := n[path[0]]
		if !ok {
			return nil, false
		}
		updated, ok := updateAt(child, path[1:], fn)
		if !ok {
			return nil, false
		}
		n[path[0]] = updated
		return n, true
	case []any:
		i, ok := index(path[0], len(n))
		if !ok {
			return nil, false
		}
		updated, ok := updateAt(n[i], path[1:], fn)
		if !ok {
			return nil, false
		}
		n[i] = updated
		return n, true
	default:
		return nil, false
	}
}

func addText(node any, text string) (any, bool) {
	switch n := node.(type) {
	case string:
		if strings.TrimSpace(n) == "" {
			return strings.TrimSpace(text), true
		}
		return n + " " + text, true
	case []any:
		return append(n, text), true
	case nil:
		// a null array decodes to nil
		return []any{text}, true
	default:
		return nil, false
	}
}

func replaceText(node any, text string) (any, bool) {
	switch node.(type) {
	case string, nil:
		return text, true
	default:
		return nil, false
	}
}

func removeChild(node any, key string) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		if _, ok := n[key]; !ok {
			return nil, false
		}
		delete(n, key)
		return n, true
	case []any:
		i, ok := index(key, len(n))
		if !ok {
			return nil, false
		}
		return append(n[:i:i], n[i+1:]...), true
	default:
		return nil, false
	}
}

func reorder(node any, from, to int) (any, bool) {
	n, ok := node.([]any)
	if !ok || from < 0 || from >= len(n) || to < 0 || to >= len(n) {
		return nil, false
	}
	item := n[from]
	rest := append(n[:from:from], n[from+1:]...)
	out := make([]any, 0, len(n))
	out = append(out, rest[:to]...)
	out = append(out, item)
	out = append(out, rest[to:]...)
	return out, true
}

func index(segment string, length int) (int, bool) {
	i, err := strconv.Atoi(segment)
	if err != nil || i < 0 || i >= length {
		return 0, false
	}
	return i, true
}

func toTree(cv *types.CVData) (map[string]any, error) {
	if cv == nil {
		cv = &types.CVData{}
	}
	data, err := json.Marshal(cv)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func fromTree(tree map[string]any) (*types.CVData, error) {
	data, err := json.Marshal(tree)
	if err != nil {
		return nil, err
	}
	var cv types.CVData
	if err := json.Unmarshal(data, &cv); err != nil {
		return nil, err
	}
	return &cv, nil
}

// cloneCV deep-copies cv through JSON
func cloneCV(cv *types.CVData) *types.CVData {
	tree, err := toTree(cv)
	if err != nil {
		return &types.CVData{}
	}
	out, err := fromTree(tree)
	if err != nil {
		return &types.CVData{}
	}
	return out
}

// ApplySuggestion applies the suggestion with the given id to a copy of cv and
// returns the new CV with a new suggestion list where it is marked applied.
// Unknown ids, already applied suggestions, suggestions without an action and
// stale targets leave both unchanged and report false.
func ApplySuggestion(cv *types.CVData, suggestions []types.ATSSuggestion, id string) (*types.CVData, []types.ATSSuggestion, bool) {
	out := cloneSuggestions(suggestions)
	for i, s := range out {
		if s.ID != id {
			continue
		}
		if s.Applied || s.Target == nil || s.Action == nil {
			break
		}
		updated, ok := UpdateByPath(cv, *s.Target, s.Action)
		if !ok {
			return updated, out, false
		}
		out[i].Applied = true
		return updated, out, true
	}
	return cloneCV(cv), out, false
}

// DismissSuggestion returns a new list without the suggestion with the given id
func DismissSuggestion(suggestions []types.ATSSuggestion, id string) []types.ATSSuggestion {
	out := make([]types.ATSSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if s.ID != id {
			out = append(out, cloneSuggestion(s))
		}
	}
	return out
}

func cloneSuggestions(suggestions []types.ATSSuggestion) []types.ATSSuggestion {
	out := make([]types.ATSSuggestion, len(suggestions))
	for i, s := range suggestions {
		out[i] = cloneSuggestion(s)
	}
	return out
}

func cloneSuggestion(s types.ATSSuggestion) types.ATSSuggestion {
	if s.Target != nil {
		target := *s.Target
		target.Path = append([]string(nil), s.Target.Path...)
		s.Target = &target
	}
	return s
}
