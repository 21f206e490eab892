// Package messages defines Bubbletea message types for the TUI.
// Messages represent user intents that the App turns into service calls.
package messages

import (
	"github.com/custodia-labs/seamap/internal/core/domain"
)

// SearchRequested asks for the initiatives matching Query to be shown.
type SearchRequested struct {
	Query string
}

// InitiativeActivated is sent when enter is pressed on a sidebar row.
type InitiativeActivated struct {
	Initiative *domain.Initiative
}

// SelectionSetRequested replaces the selection with a single initiative.
type SelectionSetRequested struct {
	Initiative *domain.Initiative
}

// SelectionToggleRequested adds or removes an initiative from the selection.
type SelectionToggleRequested struct {
	Initiative *domain.Initiative
}

// CursorMoved is sent when the highlighted sidebar row changes.
// Either side may be nil.
type CursorMoved struct {
	From *domain.Initiative
	To   *domain.Initiative
}

// HistoryRequested moves through the sidebar history.
type HistoryRequested struct {
	Direction HistoryDirection
}

// HistoryDirection selects which way HistoryRequested moves.
type HistoryDirection int

const (
	// HistoryBack moves to the previous sidebar item.
	HistoryBack HistoryDirection = iota
	// HistoryForward moves to the next sidebar item.
	HistoryForward
)

// String returns the string representation of the direction.
func (d HistoryDirection) String() string {
	switch d {
	case HistoryBack:
		return "back"
	case HistoryForward:
		return "forward"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when switching between the map and the help screen.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMap is the sidebar and map view.
	ViewMap ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMap:
		return "map"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
