//go:build linux

package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary  = lipgloss.Color("#7C3AED") // Purple
	colorDanger   = lipgloss.Color("#EF4444") // Red
	colorWarning  = lipgloss.Color("#F59E0B") // Amber
	colorMuted    = lipgloss.Color("#6B7280") // Gray
	colorBorder   = lipgloss.Color("#374151") // Dark gray
	colorSelected = lipgloss.Color("#4F46E5") // Indigo
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(colorPrimary).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	groupStyle = lipgloss.NewStyle().
			Bold(true)

	descStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	cursorStyle = lipgloss.NewStyle().
			Background(colorSelected).
			Foreground(lipgloss.Color("#FFFFFF"))

	detailsLabelStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	detailsValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF"))

	detailsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true)

	killLabelStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	forceLabelStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(colorDanger)
)
