// Package mappane renders the initiative map for the TUI.
package mappane

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/seamap/internal/adapters/driven/mapview"
	"github.com/custodia-labs/seamap/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/seamap/internal/core/domain"
)

// Canvas is the map state the pane draws.
type Canvas interface {
	Cells(width, height int) []mapview.Cell
	Tooltip() (*domain.Initiative, bool)
}

type cellKind int

const (
	kindEmpty cellKind = iota
	kindUnselected
	kindSelected
	kindTooltip
)

// View draws the markers of a canvas. The canvas is projected across the
// whole terminal width and the leftmost inset columns, which sit behind the
// sidebar, are dropped.
type View struct {
	styles *styles.Styles
	canvas Canvas
	width  int
	height int
	inset  int
}

// NewView creates a map pane for canvas.
func NewView(s *styles.Styles, canvas Canvas) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		canvas: canvas,
		width:  50,
		height: 24,
	}
}

// SetDimensions sets the visible size of the pane.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// SetInset sets how many columns of the map are hidden by the sidebar.
func (v *View) SetInset(columns int) {
	v.inset = max(columns, 0)
}

// Width returns the visible width.
func (v *View) Width() int {
	return v.width
}

// Height returns the visible height.
func (v *View) Height() int {
	return v.height
}

// Inset returns the hidden column count.
func (v *View) Inset() int {
	return v.inset
}

// View renders the pane.
func (v *View) View() string {
	if v.canvas == nil || v.width <= 0 || v.height <= 0 {
		return ""
	}

	full := v.width + v.inset
	glyphs := make([][]rune, v.height)
	kinds := make([][]cellKind, v.height)
	for r := range glyphs {
		glyphs[r] = []rune(strings.Repeat(" ", full))
		kinds[r] = make([]cellKind, full)
	}

	var tip *mapview.Cell
	tooltip, hasTooltip := v.canvas.Tooltip()
	cells := v.canvas.Cells(full, v.height)
	for i := range cells {
		c := cells[i]
		glyphs[c.Row][c.Col] = c.Glyph
		kinds[c.Row][c.Col] = kindUnselected
		if c.Glyph == mapview.GlyphSelected {
			kinds[c.Row][c.Col] = kindSelected
		}
		if hasTooltip && c.Initiative != nil && c.Initiative.ID == tooltip.ID {
			tip = &cells[i]
		}
	}
	if tip != nil {
		v.placeLabel(glyphs, kinds, tip, tooltip.Label())
	}

	rows := make([]string, v.height)
	for r := range glyphs {
		rows[r] = v.renderRow(glyphs[r][v.inset:], kinds[r][v.inset:])
	}
	return strings.Join(rows, "\n")
}

// placeLabel writes the tooltip next to its marker, on the right when it
// fits and otherwise on the left, never inside the hidden columns.
func (v *View) placeLabel(glyphs [][]rune, kinds [][]cellKind, tip *mapview.Cell, label string) {
	text := []rune(" " + label + " ")
	row := glyphs[tip.Row]
	full := len(row)

	start := tip.Col + 1
	if start+len(text) > full {
		start = tip.Col - len(text)
	}
	if start < v.inset {
		start = v.inset
		text = text[:min(len(text), max(full-start, 0))]
	}
	for i, r := range text {
		col := start + i
		if col == tip.Col || col >= full {
			continue
		}
		row[col] = r
		kinds[tip.Row][col] = kindTooltip
	}
}

func (v *View) renderRow(glyphs []rune, kinds []cellKind) string {
	var b strings.Builder
	for start := 0; start < len(glyphs); {
		end := start + 1
		for end < len(glyphs) && kinds[end] == kinds[start] {
			end++
		}
		b.WriteString(v.styleFor(kinds[start]).Render(string(glyphs[start:end])))
		start = end
	}
	return b.String()
}

func (v *View) styleFor(kind cellKind) lipgloss.Style {
	switch kind {
	case kindUnselected:
		return v.styles.MarkerUnselected
	case kindSelected:
		return v.styles.MarkerSelected
	case kindTooltip:
		return v.styles.Tooltip
	case kindEmpty:
	}
	return lipgloss.NewStyle()
}
