package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/views/mappane"
	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/views/sidebar"
	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/ports/driven"
	"github.com/custodia-labs/seamap/internal/logger"
)

// viewportSizer is implemented by sidebar presenters that pad map fits by
// the visible height.
type viewportSizer interface {
	SetViewportHeight(height int)
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea, and driven.SidebarView so
// the sidebar presenter can ask it to redraw.
//
// Every service call happens inside Update, so events on the bus are only
// ever published from the Bubbletea goroutine.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the key bindings.
	keymap *keymap.KeyMap

	// sidebarView shows the search box and current selection.
	sidebarView *sidebar.View

	// mapView draws the markers.
	mapView *mappane.View

	// statusbar shows counts, history and key hints.
	statusbar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// sidebarWidth is the number of columns the sidebar covers.
	sidebarWidth int

	// searchLimit caps search results; 0 means unlimited.
	searchLimit int

	// hovered is the initiative whose tooltip was opened from the sidebar.
	hovered *domain.Initiative

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model and driven.SidebarView.
var (
	_ tea.Model          = (*App)(nil)
	_ driven.SidebarView = (*App)(nil)
)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	defaults := domain.DefaultAppSettings()
	settings := defaults
	if ports.Settings != nil {
		if loaded, err := ports.Settings.Get(); err == nil {
			settings = loaded
		} else {
			logger.Warn("tui: using default settings: %v", err)
		}
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		sidebarView:  sidebar.NewView(s, km),
		mapView:      mappane.NewView(s, ports.Map),
		statusbar:    status.NewBar(s, km),
		currentView:  messages.ViewMap,
		sidebarWidth: settings.Map.SidebarWidth,
		searchLimit:  settings.Search.Limit,
	}
	if a.sidebarWidth <= 0 {
		a.sidebarWidth = defaults.Map.SidebarWidth
	}
	if ports.Markers != nil {
		a.sidebarView.SetMarked(ports.Markers.IsSelected)
	}
	a.SetDimensions(80, 24)
	a.ready = false
	a.Refresh()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("seamap"),
		a.sidebarView.Init(),
	)
}

// Refresh implements driven.SidebarView. The presenter calls it after every
// change to the selection history.
func (a *App) Refresh() {
	item, ok := a.ports.Sidebar.Current()
	a.sidebarView.SetItem(item, ok)
	a.sidebarView.SetHistory(a.ports.Sidebar.CanGoBack(), a.ports.Sidebar.CanGoForward())

	items, index := a.ports.Sidebar.History()
	a.statusbar.SetHistory(index+1, len(items))
	a.statusbar.SetCount(item.Len())
	if a.ports.Markers != nil {
		a.statusbar.SetMarkerCount(a.ports.Markers.Len())
	}

	// A tooltip opened from a row that is no longer listed would never be
	// closed by moving the cursor.
	if a.hovered != nil && domain.IndexOf(a.sidebarView.Items(), a.hovered.ID) < 0 {
		a.unhover()
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.SearchRequested:
		a.search(msg.Query)
		return a, nil

	case messages.InitiativeActivated:
		a.check(a.ports.Interactions.ClickInitiative(msg.Initiative, a.sidebarWidth))
		return a, nil

	case messages.SelectionSetRequested:
		a.check(a.ports.Interactions.SelectMarker(msg.Initiative))
		return a, nil

	case messages.SelectionToggleRequested:
		a.check(a.ports.Interactions.ToggleMarker(msg.Initiative))
		return a, nil

	case messages.CursorMoved:
		a.unhover()
		if msg.To != nil && a.check(a.ports.Interactions.Hover(msg.To)) {
			a.hovered = msg.To
		}
		return a, nil

	case messages.HistoryRequested:
		a.statusbar.SetMessage("")
		if msg.Direction == messages.HistoryForward {
			a.ports.Sidebar.Forward()
		} else {
			a.ports.Sidebar.Back()
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewHelp {
			a.statusbar.SetState(status.StateHelp)
		} else {
			a.statusbar.SetState(status.StateReady)
		}
		return a, nil

	case messages.ErrorOccurred:
		a.fail(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Cursor blink and similar housekeeping belongs to the sidebar.
	var cmd tea.Cmd
	a.sidebarView, cmd = a.sidebarView.Update(msg)
	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit with ctrl+c
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.currentView == messages.ViewHelp {
		switch {
		case key.Matches(msg, a.keymap.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keymap.Help), key.Matches(msg, a.keymap.Cancel):
			return a.Update(messages.ViewChanged{View: messages.ViewMap})
		}
		return a, nil
	}

	if !a.sidebarView.InputFocused() {
		switch {
		case key.Matches(msg, a.keymap.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keymap.Help):
			return a.Update(messages.ViewChanged{View: messages.ViewHelp})
		}
	}

	var cmd tea.Cmd
	a.sidebarView, cmd = a.sidebarView.Update(msg)
	a.syncInputState()
	return a, cmd
}

// syncInputState mirrors search box focus in the status bar.
func (a *App) syncInputState() {
	switch {
	case a.sidebarView.InputFocused():
		a.statusbar.SetState(status.StateSearching)
	case a.statusbar.State() == status.StateSearching:
		a.statusbar.SetState(status.StateReady)
	}
}

func (a *App) search(query string) {
	results, err := a.ports.Dataset.Search(a.ctx, query, domain.SearchOptions{Limit: a.searchLimit})
	if err != nil {
		a.fail(fmt.Errorf("search failed: %w", err))
		return
	}
	a.statusbar.SetState(status.StateReady)
	a.statusbar.SetMessage(fmt.Sprintf("%d found for %q", len(results), query))
}

func (a *App) unhover() {
	if a.hovered == nil {
		return
	}
	a.check(a.ports.Interactions.Unhover(a.hovered))
	a.hovered = nil
}

// check records err in the status bar and reports whether it was nil.
func (a *App) check(err error) bool {
	if err != nil {
		a.fail(err)
		return false
	}
	if a.statusbar.State() == status.StateError {
		a.statusbar.SetState(status.StateReady)
		a.statusbar.SetMessage("")
	}
	return true
}

func (a *App) fail(err error) {
	if err == nil {
		return
	}
	logger.Warn("tui: %v", err)
	a.err = err
	a.statusbar.SetState(status.StateError)
	a.statusbar.SetMessage(err.Error())
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.currentView == messages.ViewHelp {
		return a.viewHelp() + "\n" + a.statusbar.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, a.sidebarView.View(), a.mapView.View())
	return body + "\n" + a.statusbar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Sidebar:
  /           Search initiatives
  j/k, ↑/↓    Move between initiatives (shows the tooltip)
  enter       Show only this initiative and zoom to it
  space       Add or remove from the selection
  s           Make this the whole selection
  [ / ]       Previous / next selection

Search:
  (type)      Enter search query
  enter       Submit search
  esc         Cancel

Map:
  o           Initiative
  @           Selected initiative

  ?           Toggle help
  q, ctrl+c   Quit

[esc] back to map`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// SetDimensions lays out the sidebar over the left edge of the map.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	bodyHeight := max(height-1, 1)
	sidebarWidth := min(a.sidebarWidth, width)
	a.sidebarView.SetDimensions(sidebarWidth, bodyHeight)
	a.mapView.SetDimensions(max(width-sidebarWidth, 0), bodyHeight)
	a.mapView.SetInset(sidebarWidth)
	a.statusbar.SetWidth(width)

	if sizer, ok := a.ports.Sidebar.(viewportSizer); ok {
		sizer.SetViewportHeight(bodyHeight)
	}
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SidebarWidth returns the columns reserved for the sidebar.
func (a *App) SidebarWidth() int {
	return a.sidebarWidth
}

// Sidebar returns the sidebar view.
func (a *App) Sidebar() *sidebar.View {
	return a.sidebarView
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.statusbar
}

// Hovered returns the initiative whose tooltip the sidebar opened, or nil.
func (a *App) Hovered() *domain.Initiative {
	return a.hovered
}
