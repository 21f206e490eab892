package domain

import "fmt"

// Topic names an event bus topic and binds it to a payload type, so that
// publishers and subscribers agree on the payload shape at compile time.
type Topic[T any] struct {
	name string
}

// NewTopic declares a topic with the given name.
func NewTopic[T any](name string) Topic[T] {
	return Topic[T]{name: name}
}

// Name returns the topic's string key.
func (t Topic[T]) Name() string {
	return t.name
}

// String implements fmt.Stringer.
func (t Topic[T]) String() string {
	return t.name
}

// SearchResults carries the outcome of a search.
type SearchResults struct {
	Results []*Initiative
	Text    string
}

// Describe renders the payload for logs.
func (m SearchResults) Describe() string {
	return fmt.Sprintf(`text:%q results:%d`, m.Text, len(m.Results))
}

// InitiativeClicked is emitted when a sidebar row is activated.
type InitiativeClicked struct {
	Initiative *Initiative

	// SidebarWidth is the on-screen width of the sidebar, used to pad
	// the map so the selection is not hidden behind it.
	SidebarWidth int
}

// Describe renders the payload for logs.
func (m InitiativeClicked) Describe() string {
	if m.Initiative == nil {
		return fmt.Sprintf(`initiative:<nil> sidebar_width:%d`, m.SidebarWidth)
	}
	return fmt.Sprintf(`initiative:%q sidebar_width:%d`, m.Initiative.ID, m.SidebarWidth)
}

// SelectionChanged tells the markers which initiatives to unselect and
// which to select. Unselected is applied first.
type SelectionChanged struct {
	Unselected []*Initiative
	Selected   []*Initiative
}

// Describe renders the payload for logs.
func (m SelectionChanged) Describe() string {
	return fmt.Sprintf(`unselected:%v selected:%v`, IDs(m.Unselected), IDs(m.Selected))
}

// DatasetLoaded is emitted once every initiative has been announced.
type DatasetLoaded struct {
	Count     int
	Bounds    Bounds
	HasBounds bool
}

// Events consumed by the sidebar presenter.
var (
	TopicSearchResults         = NewTopic[SearchResults]("Search.initiativeResults")
	TopicInitiativeClicked     = NewTopic[InitiativeClicked]("Directory.initiativeClicked")
	TopicMarkerSelectionSet    = NewTopic[*Initiative]("Marker.SelectionSet")
	TopicMarkerSelectionToggle = NewTopic[*Initiative]("Marker.SelectionToggled")
	TopicInitiativeMouseover   = NewTopic[*Initiative]("Sidebar.initiativeMouseover")
	TopicInitiativeMouseout    = NewTopic[*Initiative]("Sidebar.initiativeMouseout")
	TopicHistoryBack           = NewTopic[struct{}]("Sidebar.historyBack")
	TopicHistoryForward        = NewTopic[struct{}]("Sidebar.historyForward")
)

// Events produced by the sidebar presenter.
var (
	TopicSelectionChanged = NewTopic[SelectionChanged]("Markers.needToShowLatestSelection")
	TopicFitBounds        = NewTopic[FitBounds]("Map.needsToBeZoomedAndPanned")
	TopicShowInitiatives  = NewTopic[struct{}]("Sidebar.showInitiatives")
	TopicShowTooltip      = NewTopic[*Initiative]("Map.needToShowInitiativeTooltip")
	TopicHideTooltip      = NewTopic[*Initiative]("Map.needToHideInitiativeTooltip")
)

// Dataset lifecycle events.
var (
	TopicInitiativeNew = NewTopic[*Initiative]("Initiative.new")
	TopicDatasetLoaded = NewTopic[DatasetLoaded]("Initiative.datasetLoaded")
)
