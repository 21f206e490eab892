package mapview

import "github.com/custodia-labs/seamap/internal/core/ports/driven"

var _ driven.SidebarView = SidebarFunc(nil)

// SidebarFunc adapts a function to driven.SidebarView for callers without a
// visible sidebar.
type SidebarFunc func()

// Refresh calls f if it is set.
func (f SidebarFunc) Refresh() {
	if f != nil {
		f()
	}
}
