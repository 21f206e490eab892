package driving

import "github.com/custodia-labs/seamap/internal/core/domain"

// SidebarPresenter exposes the sidebar's selection history to views.
// Selection changes themselves arrive as bus events.
type SidebarPresenter interface {
	// Current returns the selection at the history cursor.
	// The boolean is false until the first selection is made.
	Current() (domain.StackItem, bool)

	// Back moves to the previous selection. Returns false at the start.
	Back() bool

	// Forward moves to the next selection. Returns false at the end.
	Forward() bool

	// CanGoBack reports whether Back would move.
	CanGoBack() bool

	// CanGoForward reports whether Forward would move.
	CanGoForward() bool

	// History returns every selection and the cursor position.
	History() ([]domain.StackItem, int)
}
