// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/seamap/internal/core/domain"
)

// MarkedFunc reports whether an initiative's marker is currently selected.
type MarkedFunc func(id string) bool

// InitiativeList displays the initiatives of the current sidebar item in a
// navigable list.
type InitiativeList struct {
	items  []*domain.Initiative
	cursor int
	offset int
	marked MarkedFunc
	styles *styles.Styles
	width  int
	height int
}

// NewInitiativeList creates a new initiative list component.
func NewInitiativeList(s *styles.Styles) *InitiativeList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &InitiativeList{
		styles: s,
		width:  30,
		height: 10,
	}
}

// Init initialises the list.
func (l *InitiativeList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *InitiativeList) Update(msg tea.Msg) (*InitiativeList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the visible rows.
func (l *InitiativeList) View() string {
	if len(l.items) == 0 {
		return l.styles.Muted.Render("No initiatives")
	}

	end := min(l.offset+l.visibleRows(), len(l.items))
	lines := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		lines = append(lines, l.renderRow(i, l.items[i]))
	}
	return strings.Join(lines, "\n")
}

func (l *InitiativeList) renderRow(index int, in *domain.Initiative) string {
	indicator := "  "
	if index == l.cursor {
		indicator = "> "
	}

	glyph := " "
	switch {
	case l.marked != nil && l.marked(in.ID):
		glyph = "@"
	case in.HasGeoLocation():
		glyph = "o"
	}

	label := Truncate(in.Label(), max(l.width-4, 1))
	row := fmt.Sprintf("%s%s %s", indicator, glyph, label)
	if index == l.cursor {
		return l.styles.Selected.Render(row)
	}
	return l.styles.Normal.Render(row)
}

func (l *InitiativeList) visibleRows() int {
	return max(l.height, 1)
}

// scroll keeps the cursor inside the visible window.
func (l *InitiativeList) scroll() {
	rows := l.visibleRows()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
	l.offset = max(min(l.offset, len(l.items)-rows), 0)
}

// SetItems replaces the listed initiatives. The cursor stays on the same
// initiative when it is still listed, and otherwise returns to the top.
func (l *InitiativeList) SetItems(items []*domain.Initiative) {
	var current string
	if in := l.SelectedInitiative(); in != nil {
		current = in.ID
	}

	l.items = items
	l.cursor = 0
	if idx := domain.IndexOf(items, current); current != "" && idx >= 0 {
		l.cursor = idx
	}
	l.scroll()
}

// Items returns the listed initiatives.
func (l *InitiativeList) Items() []*domain.Initiative {
	return l.items
}

// SetMarked sets the function used to flag selected markers.
func (l *InitiativeList) SetMarked(fn MarkedFunc) {
	l.marked = fn
}

// Cursor returns the index of the highlighted row.
func (l *InitiativeList) Cursor() int {
	return l.cursor
}

// SetCursor moves the highlight to index if it is in range.
func (l *InitiativeList) SetCursor(index int) {
	if index >= 0 && index < len(l.items) {
		l.cursor = index
		l.scroll()
	}
}

// SelectedInitiative returns the highlighted initiative, or nil if none.
func (l *InitiativeList) SelectedInitiative() *domain.Initiative {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return nil
	}
	return l.items[l.cursor]
}

// MoveUp moves the cursor up.
func (l *InitiativeList) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
		l.scroll()
	}
}

// MoveDown moves the cursor down.
func (l *InitiativeList) MoveDown() {
	if l.cursor < len(l.items)-1 {
		l.cursor++
		l.scroll()
	}
}

// SetDimensions sets the component dimensions.
func (l *InitiativeList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
	l.scroll()
}

// Width returns the current width.
func (l *InitiativeList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *InitiativeList) Height() int {
	return l.height
}

// Count returns the number of listed initiatives.
func (l *InitiativeList) Count() int {
	return len(l.items)
}

// IsEmpty returns whether the list is empty.
func (l *InitiativeList) IsEmpty() bool {
	return len(l.items) == 0
}

// Truncate shortens s to at most width runes, marking the cut with "...".
func Truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:max(width, 0)])
	}
	return string(runes[:width-3]) + "..."
}
