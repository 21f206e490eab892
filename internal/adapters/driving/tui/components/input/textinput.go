// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/styles"
)

// Narrowest usable text area, excluding the border and prompt.
const minInputWidth = 8

// SearchInput wraps a bubbles textinput sized for the sidebar.
// It starts blurred; the sidebar focuses it when the user presses the
// search key.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewSearchInput creates a new search input component.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search initiatives"
	ti.CharLimit = 128

	in := &SearchInput{
		textinput: ti,
		styles:    s,
	}
	in.SetWidth(30)
	return in
}

// Init initialises the search input.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the search box.
func (s *SearchInput) View() string {
	return s.styles.InputField.Render(s.textinput.View())
}

// Value returns the current input value.
func (s *SearchInput) Value() string {
	return s.textinput.Value()
}

// SetValue sets the input value.
func (s *SearchInput) SetValue(value string) {
	s.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (s *SearchInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *SearchInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *SearchInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the outer width of the search box.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	// Border (2), padding (2) and prompt take the rest.
	inner := width - 4 - len(s.textinput.Prompt)
	if inner < minInputWidth {
		inner = minInputWidth
	}
	s.textinput.Width = inner
}

// Width returns the current width.
func (s *SearchInput) Width() int {
	return s.width
}

// Reset clears the input.
func (s *SearchInput) Reset() {
	s.textinput.Reset()
}
