// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the map and sidebar.
type Theme struct {
	// Primary is the main accent colour, used for titles.
	Primary lipgloss.Color

	// Secondary is used for unselected markers and subtitles.
	Secondary lipgloss.Color

	// Highlight is used for selected markers and tooltips.
	Highlight lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2E8B57"), // Sea green
		Secondary:  lipgloss.Color("#4FA3D1"), // Water blue
		Highlight:  lipgloss.Color("#F2B134"), // Amber
		Background: lipgloss.Color("#1B1F23"), // Charcoal
		Foreground: lipgloss.Color("#E6E6E6"), // Light gray
		Muted:      lipgloss.Color("#6E7781"), // Slate
		Error:      lipgloss.Color("#E5534B"), // Red
		Border:     lipgloss.Color("#3D444D"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the sidebar heading.
	Title lipgloss.Style

	// Subtitle style for the selection heading.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for the highlighted sidebar row.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// InputField style for the search box.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Sidebar style for the left-hand panel.
	Sidebar lipgloss.Style

	// MarkerSelected style for selected map markers.
	MarkerSelected lipgloss.Style

	// MarkerUnselected style for unselected map markers.
	MarkerUnselected lipgloss.Style

	// Tooltip style for the hovered marker label.
	Tooltip lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Background).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Background).
			Padding(0, 1),

		Sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(theme.Border),

		MarkerSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Highlight),

		MarkerUnselected: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		Tooltip: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Highlight),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
