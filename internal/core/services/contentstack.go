package services

import "github.com/custodia-labs/seamap/internal/core/domain"

// ContentStack is a linear navigation history of selections with a cursor.
// Navigating back and forward keeps every entry; appending while the cursor
// is not at the tail discards the entries after the cursor first.
type ContentStack struct {
	items  []domain.StackItem
	cursor int
}

// NewContentStack creates an empty stack.
func NewContentStack() *ContentStack {
	return &ContentStack{cursor: -1}
}

// Append truncates any forward history and adds item as the new current entry.
func (s *ContentStack) Append(item domain.StackItem) {
	s.items = append(s.items[:s.cursor+1], item)
	s.cursor = len(s.items) - 1
}

// Current returns the entry at the cursor.
// The boolean is false if nothing has ever been appended.
func (s *ContentStack) Current() (domain.StackItem, bool) {
	if s.cursor < 0 {
		return domain.StackItem{}, false
	}
	return s.items[s.cursor], true
}

// Back moves the cursor one entry towards the start.
// It returns false, leaving the cursor unchanged, at the first entry.
func (s *ContentStack) Back() bool {
	if s.AtStart() {
		return false
	}
	s.cursor--
	return true
}

// Forward moves the cursor one entry towards the tail.
// It returns false, leaving the cursor unchanged, at the last entry.
func (s *ContentStack) Forward() bool {
	if s.AtEnd() {
		return false
	}
	s.cursor++
	return true
}

// AtStart reports whether Back would be a no-op.
func (s *ContentStack) AtStart() bool {
	return s.cursor <= 0
}

// AtEnd reports whether Forward would be a no-op.
func (s *ContentStack) AtEnd() bool {
	return s.cursor >= len(s.items)-1
}

// Len returns the number of entries.
func (s *ContentStack) Len() int {
	return len(s.items)
}

// Index returns the cursor position, or -1 for an empty stack.
func (s *ContentStack) Index() int {
	return s.cursor
}

// Items returns a copy of every entry in order.
func (s *ContentStack) Items() []domain.StackItem {
	out := make([]domain.StackItem, len(s.items))
	copy(out, s.items)
	return out
}
