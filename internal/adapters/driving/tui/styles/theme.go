// Package styles provides colour themes and styling for the dashboard TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the dashboard.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Chart is the palette for categorical chart slices. Colours are
	// assigned positionally, cycling by slice index; they are not tied
	// to category identity.
	Chart []lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
		Chart: []lipgloss.Color{
			lipgloss.Color("#7C3AED"),
			lipgloss.Color("#06B6D4"),
			lipgloss.Color("#A6E3A1"),
			lipgloss.Color("#F9E2AF"),
			lipgloss.Color("#F38BA8"),
			lipgloss.Color("#FAB387"),
		},
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for panel headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// CardValue style for the big number on a stat card.
	CardValue lipgloss.Style

	// CardLabel style for the caption under a stat card value.
	CardLabel lipgloss.Style

	// Card style for the bordered stat card container.
	Card lipgloss.Style

	// Panel style for bordered chart and table containers.
	Panel lipgloss.Style

	// TableHeader style for table column headers.
	TableHeader lipgloss.Style

	// BadgePositive for the grounded state.
	BadgePositive lipgloss.Style

	// BadgeNegative for the ungrounded state.
	BadgeNegative lipgloss.Style

	// BadgeNeutral for answerability labels.
	BadgeNeutral lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
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

		CardValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		CardLabel: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 2).
			Align(lipgloss.Center),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		BadgePositive: lipgloss.NewStyle().
			Foreground(theme.Success),

		BadgeNegative: lipgloss.NewStyle().
			Foreground(theme.Error),

		BadgeNeutral: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
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

// ChartColor returns the palette colour for slice index i, cycling
// through the palette.
func (s *Styles) ChartColor(i int) lipgloss.Color {
	palette := s.theme.Chart
	if len(palette) == 0 {
		return s.theme.Primary
	}
	return palette[i%len(palette)]
}
