package sidebar

import (
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/seamap/internal/core/domain"
)

var (
	zeal  = &domain.Initiative{ID: "R001", Name: "Zeal Bakery", Lat: 51.75, Lng: -1.25, Geolocated: true}
	acorn = &domain.Initiative{ID: "R002", Name: "Acorn Housing", Lat: 53.4, Lng: -2.98, Geolocated: true}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newViewWithSelection(t *testing.T) *View {
	t.Helper()
	v := NewView(nil, nil)
	v.SetItem(domain.NewSelection([]*domain.Initiative{zeal, acorn}), true)
	return v
}

// run executes a command and returns the message it produces.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil)

	require.NotNil(t, v)
	assert.False(t, v.InputFocused())
	assert.Equal(t, "Nothing selected", v.Heading())
	assert.Equal(t, 30, v.Width())
	assert.Nil(t, v.Init())
}

func TestView_SetItem_Selection(t *testing.T) {
	v := newViewWithSelection(t)

	assert.Equal(t, "Selection (2)", v.Heading())
	assert.Equal(t, []string{"R001", "R002"}, domain.IDs(v.Items()))
	assert.Equal(t, zeal, v.Highlighted())
}

func TestView_SetItem_SearchResults(t *testing.T) {
	v := NewView(nil, nil)

	v.SetItem(domain.NewSearchResults([]*domain.Initiative{acorn}, "housing"), true)

	assert.Equal(t, `Results for "housing" (1)`, v.Heading())
	assert.Len(t, v.Items(), 1)
}

func TestView_SetItem_Empty(t *testing.T) {
	v := newViewWithSelection(t)

	v.SetItem(domain.StackItem{}, false)

	assert.Equal(t, "Nothing selected", v.Heading())
	assert.Empty(t, v.Items())
	assert.Nil(t, v.Highlighted())
}

func TestView_SearchFlow(t *testing.T) {
	v := NewView(nil, nil)

	v, cmd := v.Update(runes("/"))
	assert.NotNil(t, cmd)
	require.True(t, v.InputFocused())

	for _, r := range "  bakery " {
		v, _ = v.Update(runes(string(r)))
	}
	assert.Equal(t, "  bakery ", v.Query())

	v, cmd = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, v.InputFocused())
	assert.Equal(t, messages.SearchRequested{Query: "bakery"}, run(t, cmd))
}

func TestView_SearchFlow_EmptyQuery(t *testing.T) {
	v := NewView(nil, nil)
	v.Update(runes("/"))

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, v.InputFocused())
}

func TestView_SearchFlow_Cancel(t *testing.T) {
	v := NewView(nil, nil)
	v.Update(runes("/"))
	v.Update(runes("x"))

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.False(t, v.InputFocused())
	assert.Equal(t, "x", v.Query())
}

func TestView_InputCapturesListKeys(t *testing.T) {
	v := newViewWithSelection(t)
	v.Update(runes("/"))

	_, cmd := v.Update(runes("s"))

	// The focused input only asks for a cursor blink.
	assert.IsType(t, cursor.BlinkMsg{}, run(t, cmd))
	assert.Equal(t, "s", v.Query())
}

func TestView_CursorMoved(t *testing.T) {
	v := newViewWithSelection(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, messages.CursorMoved{From: zeal, To: acorn}, run(t, cmd))
	assert.Equal(t, acorn, v.Highlighted())
}

func TestView_CursorMoved_AtEdge(t *testing.T) {
	v := newViewWithSelection(t)

	_, cmd := v.Update(runes("k"))

	assert.Nil(t, cmd)
}

func TestView_RowActions(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want tea.Msg
	}{
		{"enter activates", tea.KeyMsg{Type: tea.KeyEnter}, messages.InitiativeActivated{Initiative: zeal}},
		{"space toggles", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, messages.SelectionToggleRequested{Initiative: zeal}},
		{"s sets", runes("s"), messages.SelectionSetRequested{Initiative: zeal}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViewWithSelection(t)

			_, cmd := v.Update(tt.key)

			assert.Equal(t, tt.want, run(t, cmd))
		})
	}
}

func TestView_RowActions_EmptyList(t *testing.T) {
	v := NewView(nil, nil)

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEnter}, runes("s"), {Type: tea.KeySpace, Runes: []rune{' '}}} {
		_, cmd := v.Update(msg)
		assert.Nil(t, cmd)
	}
}

func TestView_History(t *testing.T) {
	v := NewView(nil, nil)

	_, cmd := v.Update(runes("["))
	assert.Nil(t, cmd, "back is disabled")

	v.SetHistory(true, true)

	_, cmd = v.Update(runes("["))
	assert.Equal(t, messages.HistoryRequested{Direction: messages.HistoryBack}, run(t, cmd))

	_, cmd = v.Update(runes("]"))
	assert.Equal(t, messages.HistoryRequested{Direction: messages.HistoryForward}, run(t, cmd))
}

func TestView_View(t *testing.T) {
	v := newViewWithSelection(t)
	v.SetDimensions(30, 12)

	view := v.View()

	assert.Contains(t, view, "seamap")
	assert.Contains(t, view, "Selection (2)")
	assert.Contains(t, view, "Zeal Bakery")
	assert.Contains(t, view, "Acorn Housing")
}

func TestView_SetMarked(t *testing.T) {
	v := newViewWithSelection(t)
	v.SetDimensions(30, 12)
	v.SetMarked(func(id string) bool { return id == acorn.ID })

	assert.Contains(t, v.View(), "@ Acorn Housing")
}

func TestView_SetDimensions(t *testing.T) {
	v := NewView(nil, nil)

	v.SetDimensions(40, 20)

	assert.Equal(t, 40, v.Width())
	assert.Equal(t, 20, v.Height())
	assert.Equal(t, 39, v.input.Width())
	assert.Equal(t, 20-headerRows, v.list.Height())
}
