package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Build status colors
	primaryColor = lipgloss.Color("#5DA9E9")
	successColor = lipgloss.Color("#85DCB0")
	warningColor = lipgloss.Color("#F6AE2D")
	errorColor   = lipgloss.Color("#E85D75")
	mutedColor   = lipgloss.Color("#6B7280")
	textColor    = lipgloss.Color("#F3F4F6")
	dimTextColor = lipgloss.Color("#9CA3AF")

	// Header: tool name and the source/target pair
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(dimTextColor).
			Italic(true)

	dirStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			MarginTop(1).
			MarginBottom(1)

	// Batch progress line
	countStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	percentStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	// Per-file result lines
	fileNameStyle = lipgloss.NewStyle().
			Foreground(textColor)

	detailStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	skippedStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	// Final summary table
	statLabelStyle = lipgloss.NewStyle().
			Foreground(dimTextColor).
			Width(14)

	statValueStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	pathStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Preflight or scan failure
	errorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errorColor).
			Padding(1, 2).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			MarginTop(2)

	iconSkipped = "○"
	iconWarning = "⚠"
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
	iconFolder  = "📁"
)
