// Package mapview provides a character-cell map that implements the driven
// map ports.
//
// Canvas keeps markers in a selected and an unselected layer, remembers the
// last fitted view and renders everything onto a grid of runes using a Web
// Mercator projection. The terminal UI draws it; the CLI and MCP server use
// it headless and read back its State.
package mapview
