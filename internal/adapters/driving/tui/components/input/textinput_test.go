package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/styles"
)

func TestNewSearchInput(t *testing.T) {
	s := styles.DefaultStyles()
	input := NewSearchInput(s)

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.False(t, input.Focused(), "starts blurred so list keys work")
	assert.Equal(t, 30, input.Width())
}

func TestNewSearchInput_NilStyles(t *testing.T) {
	input := NewSearchInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestSearchInput_Init(t *testing.T) {
	input := NewSearchInput(nil)

	assert.NotNil(t, input.Init())
}

func TestSearchInput_Update_WhenFocused(t *testing.T) {
	input := NewSearchInput(nil)
	input.Focus()

	for _, r := range "coop" {
		input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "coop", input.Value())

	input.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "coo", input.Value())
}

func TestSearchInput_Update_IgnoredWhenBlurred(t *testing.T) {
	input := NewSearchInput(nil)

	updated, _ := input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	assert.Same(t, input, updated)
	assert.Equal(t, "", input.Value())
}

func TestSearchInput_View(t *testing.T) {
	input := NewSearchInput(nil)

	assert.Contains(t, input.View(), "/ ")
}

func TestSearchInput_SetValueAndReset(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetValue("bakery")
	assert.Equal(t, "bakery", input.Value())

	input.Reset()
	assert.Equal(t, "", input.Value())
}

func TestSearchInput_FocusBlur(t *testing.T) {
	input := NewSearchInput(nil)

	cmd := input.Focus()
	assert.NotNil(t, cmd)
	assert.True(t, input.Focused())

	input.Blur()
	assert.False(t, input.Focused())
}

func TestSearchInput_SetWidth(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetWidth(40)
	assert.Equal(t, 40, input.Width())
	assert.Equal(t, 34, input.textinput.Width)

	input.SetWidth(5)
	assert.Equal(t, 5, input.Width())
	assert.Equal(t, minInputWidth, input.textinput.Width)
}
