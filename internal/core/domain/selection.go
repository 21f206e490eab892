package domain

// SelectionKind distinguishes the variants of a StackItem.
type SelectionKind int

const (
	// SelectionPlain is a selection made directly by the user.
	SelectionPlain SelectionKind = iota

	// SelectionSearch is a selection produced by a search query.
	SelectionSearch
)

// String returns the string representation of the kind.
func (k SelectionKind) String() string {
	switch k {
	case SelectionPlain:
		return "selection"
	case SelectionSearch:
		return "search"
	default:
		return "unknown"
	}
}

// StackItem is one entry of the sidebar's navigation history: the set of
// initiatives highlighted together. Items are immutable once created.
type StackItem struct {
	kind        SelectionKind
	initiatives []*Initiative
	query       string
}

// NewSelection creates a plain selection of the given initiatives.
func NewSelection(initiatives []*Initiative) StackItem {
	return StackItem{
		kind:        SelectionPlain,
		initiatives: cloneInitiatives(initiatives),
	}
}

// NewSearchResults creates a selection produced by the given query.
func NewSearchResults(initiatives []*Initiative, query string) StackItem {
	return StackItem{
		kind:        SelectionSearch,
		initiatives: cloneInitiatives(initiatives),
		query:       query,
	}
}

// Kind returns the variant of the item.
func (s StackItem) Kind() SelectionKind {
	return s.kind
}

// IsSearchResults reports whether the item came from a search.
func (s StackItem) IsSearchResults() bool {
	return s.kind == SelectionSearch
}

// Query returns the search string for search results.
// The boolean is false for plain selections.
func (s StackItem) Query() (string, bool) {
	if s.kind != SelectionSearch {
		return "", false
	}
	return s.query, true
}

// Initiatives returns a copy of the selected initiatives.
func (s StackItem) Initiatives() []*Initiative {
	return cloneInitiatives(s.initiatives)
}

// Len returns the number of initiatives in the selection.
func (s StackItem) Len() int {
	return len(s.initiatives)
}

// IsEmpty reports whether the selection holds no initiatives.
func (s StackItem) IsEmpty() bool {
	return len(s.initiatives) == 0
}

// Contains reports whether an initiative with the given ID is selected.
func (s StackItem) Contains(id string) bool {
	return IndexOf(s.initiatives, id) >= 0
}

// Toggled returns a plain selection with the initiative removed if it is
// present, or appended if it is not.
func (s StackItem) Toggled(initiative *Initiative) StackItem {
	return NewSelection(ToggleInitiative(s.initiatives, initiative))
}

// ToggleInitiative returns a new list with the initiative removed when
// present (matched by ID) and appended otherwise. The input is not modified.
func ToggleInitiative(initiatives []*Initiative, initiative *Initiative) []*Initiative {
	result := cloneInitiatives(initiatives)
	if idx := IndexOf(result, initiative.ID); idx >= 0 {
		return append(result[:idx], result[idx+1:]...)
	}
	return append(result, initiative)
}

func cloneInitiatives(initiatives []*Initiative) []*Initiative {
	out := make([]*Initiative, len(initiatives))
	copy(out, initiatives)
	return out
}
