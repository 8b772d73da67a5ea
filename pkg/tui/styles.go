// Package tui provides the terminal prompts and console styling for ccgen.
package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme returns the huh theme used by the console prompts.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(lipgloss.Color("39"))
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(WarningStyle.GetForeground())

	return t
}

// Styles for console output
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)
