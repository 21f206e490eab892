// Package services implements the driving port interfaces and the
// event-driven coordination between them.
//
// The EventBus connects producers and consumers of state changes. The
// SidebarPresenter turns user events into ContentStack mutations and
// announces the resulting selection; the MapPresenter applies those
// announcements to the MarkerRegistry. DatasetService and
// SettingsService feed them data and configuration.
//
// Everything here runs synchronously on the caller's goroutine. Adapters
// that receive events concurrently must serialise their calls.
package services
