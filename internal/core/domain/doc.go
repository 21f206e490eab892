// Package domain defines the core entities for seamap.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Initiative: A point of interest rendered on the map
//   - StackItem: A selection set, either plain or the result of a search
//   - Bounds: A latitude/longitude rectangle used to fit the map
//   - Topic: A typed event bus topic and its payload shape
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
