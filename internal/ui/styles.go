package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for CLI output
var (
	SuccessColor = lipgloss.Color("#43BF6D") // Green - OK, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Shared styles for command output
var (
	// SuccessStyle is for the OK marker after a successful command
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// ErrorStyle is for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// WarningStyle is for per-device warnings in fleet output
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// KeyStyle is for field names in key-value output (e.g. "Firmware:")
	KeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ValueStyle is for field values in key-value output
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)
)
