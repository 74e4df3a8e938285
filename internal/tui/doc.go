// Package tui decides whether terminal output may be styled and holds the
// lipgloss styles used for it.
package tui
