// Package ui provides lipgloss styles and small render helpers for CLI
// output. Styled rendering is for humans; the --format json path in the
// CLI bypasses this package entirely.
package ui
