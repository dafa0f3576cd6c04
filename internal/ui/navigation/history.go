package navigation

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// ViewMode selects which renderer runs.
type ViewMode int

const (
	ModeExplorer ViewMode = iota
	ModeSearch
	ModeField
)

func (m ViewMode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeField:
		return "field"
	default:
		return "explorer"
	}
}

// Target points at the schema element currently displayed: a type, or
// a field within a type. The zero Target is "home" (nothing selected).
type Target struct {
	Type  *ast.Definition
	Field *ast.FieldDefinition // set when pointing at a field of Type
}

// IsZero reports whether the target points at nothing.
func (t Target) IsZero() bool {
	return t.Type == nil && t.Field == nil
}

// Entry is one step of browsing history.
type Entry struct {
	Target Target
	Mode   ViewMode
}

// History tracks the sequence of visited (target, mode) pairs. The
// last entry is the current position; an empty history is the home
// view (no target, explorer mode).
type History struct {
	entries []Entry
}

// NewHistory creates an empty history positioned at home.
func NewHistory() *History {
	return &History{}
}

// Navigate pushes a new entry and makes it current.
func (h *History) Navigate(target Target, mode ViewMode) {
	h.entries = append(h.entries, Entry{Target: target, Mode: mode})
}

// Back pops the current entry, restoring the prior one. Popping the
// last entry returns to home.
func (h *History) Back() {
	if len(h.entries) == 0 {
		return
	}
	h.entries = h.entries[:len(h.entries)-1]
}

// Home clears all history, returning to the root view.
func (h *History) Home() {
	h.entries = nil
}

// Current returns the entry being displayed. At home it is the zero
// Entry: no target, explorer mode.
func (h *History) Current() Entry {
	if len(h.entries) == 0 {
		return Entry{}
	}
	return h.entries[len(h.entries)-1]
}

// Target returns the current target.
func (h *History) Target() Target {
	return h.Current().Target
}

// Mode returns the current view mode.
func (h *History) Mode() ViewMode {
	return h.Current().Mode
}

// Depth returns the number of history entries.
func (h *History) Depth() int {
	return len(h.entries)
}

// Empty reports whether the history is at home.
func (h *History) Empty() bool {
	return len(h.entries) == 0
}
