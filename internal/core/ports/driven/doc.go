// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - InitiativeStore: Initiative persistence (SQLite or memory)
//   - ConfigStore: Application configuration
//   - MarkerHandle: One rendered marker (TUI canvas, test fakes)
//   - MarkerLayer: A rendering layer markers are added to and removed from
//   - MapView: Creates markers and fits the visible area
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SidebarView: Refreshed after every selection change
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
