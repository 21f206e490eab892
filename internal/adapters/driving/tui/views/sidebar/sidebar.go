// Package sidebar provides the initiative sidebar view for the TUI.
package sidebar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/seamap/internal/core/domain"
)

// Rows above the list: title, bordered input (3) and heading.
const headerRows = 5

// View renders the search box, the current sidebar item and its initiatives.
// Keys are turned into messages for the App; the view never calls services.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	input  *input.SearchInput
	list   *list.InitiativeList

	heading    string
	canBack    bool
	canForward bool

	width  int
	height int
}

// NewView creates a new sidebar view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:  s,
		keymap:  km,
		input:   input.NewSearchInput(s),
		list:    list.NewInitiativeList(s),
		heading: "Nothing selected",
	}
	v.SetDimensions(30, 24)
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the sidebar.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if v.input.Focused() {
			return v.handleInputKey(msg)
		}
		return v.handleListKey(msg)
	}

	// Cursor blink and other input housekeeping.
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Submit):
		v.input.Blur()
		query := strings.TrimSpace(v.input.Value())
		if query == "" {
			return v, nil
		}
		return v, emit(messages.SearchRequested{Query: query})
	case key.Matches(msg, v.keymap.Cancel):
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleListKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Search):
		v.input.Reset()
		return v, v.input.Focus()
	case key.Matches(msg, v.keymap.Up), key.Matches(msg, v.keymap.Down):
		before := v.list.SelectedInitiative()
		v.list, _ = v.list.Update(msg)
		after := v.list.SelectedInitiative()
		if before == after {
			return v, nil
		}
		return v, emit(messages.CursorMoved{From: before, To: after})
	case key.Matches(msg, v.keymap.Open):
		if in := v.list.SelectedInitiative(); in != nil {
			return v, emit(messages.InitiativeActivated{Initiative: in})
		}
	case key.Matches(msg, v.keymap.Toggle):
		if in := v.list.SelectedInitiative(); in != nil {
			return v, emit(messages.SelectionToggleRequested{Initiative: in})
		}
	case key.Matches(msg, v.keymap.SetSelection):
		if in := v.list.SelectedInitiative(); in != nil {
			return v, emit(messages.SelectionSetRequested{Initiative: in})
		}
	case key.Matches(msg, v.keymap.HistoryBack):
		if v.canBack {
			return v, emit(messages.HistoryRequested{Direction: messages.HistoryBack})
		}
	case key.Matches(msg, v.keymap.HistoryForward):
		if v.canForward {
			return v, emit(messages.HistoryRequested{Direction: messages.HistoryForward})
		}
	}
	return v, nil
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// View renders the sidebar.
func (v *View) View() string {
	inner := max(v.width-1, 1)

	title := v.styles.Title.Render("seamap")
	nav := v.renderNav()
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(nav), 1)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title+strings.Repeat(" ", gap)+nav,
		v.input.View(),
		v.styles.Subtitle.Render(list.Truncate(v.heading, inner)),
		v.list.View(),
	)

	return v.styles.Sidebar.
		Width(inner).
		Height(max(v.height, 1)).
		MaxHeight(max(v.height, 1)).
		Render(content)
}

func (v *View) renderNav() string {
	back := v.styles.Muted.Render("‹")
	if v.canBack {
		back = v.styles.Normal.Render("‹")
	}
	forward := v.styles.Muted.Render("›")
	if v.canForward {
		forward = v.styles.Normal.Render("›")
	}
	return back + " " + forward
}

// SetItem shows a sidebar item, or the empty state when ok is false.
func (v *View) SetItem(item domain.StackItem, ok bool) {
	if !ok {
		v.heading = "Nothing selected"
		v.list.SetItems(nil)
		return
	}

	if query, isSearch := item.Query(); isSearch {
		v.heading = fmt.Sprintf("Results for %q (%d)", query, item.Len())
	} else {
		v.heading = fmt.Sprintf("Selection (%d)", item.Len())
	}
	v.list.SetItems(item.Initiatives())
}

// SetHistory enables or disables the history keys.
func (v *View) SetHistory(canBack, canForward bool) {
	v.canBack = canBack
	v.canForward = canForward
}

// SetMarked sets the function used to flag selected markers in the list.
func (v *View) SetMarked(fn list.MarkedFunc) {
	v.list.SetMarked(fn)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(max(width-1, 1))
	v.list.SetDimensions(max(width-1, 1), max(height-headerRows, 1))
}

// Width returns the sidebar width.
func (v *View) Width() int {
	return v.width
}

// Height returns the sidebar height.
func (v *View) Height() int {
	return v.height
}

// InputFocused reports whether keys go to the search box.
func (v *View) InputFocused() bool {
	return v.input.Focused()
}

// Query returns the text in the search box.
func (v *View) Query() string {
	return v.input.Value()
}

// Heading returns the description of the current sidebar item.
func (v *View) Heading() string {
	return v.heading
}

// Highlighted returns the initiative under the cursor, or nil.
func (v *View) Highlighted() *domain.Initiative {
	return v.list.SelectedInitiative()
}

// Items returns the listed initiatives.
func (v *View) Items() []*domain.Initiative {
	return v.list.Items()
}
