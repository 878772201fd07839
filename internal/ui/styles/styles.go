// Package styles provides shared lipgloss styles for newsite's terminal UI.
//
// Colors come from the active [Theme], selected from config by [Init].
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active theme
var (
	Primary color.Color = DefaultTheme.Primary
	Accent  color.Color = DefaultTheme.Accent
	Success color.Color = DefaultTheme.Success
	Error   color.Color = DefaultTheme.Error
	Muted   color.Color = DefaultTheme.Muted
	Warning color.Color = DefaultTheme.Warning
)

// Styles of the active theme
var (
	Bold = lipgloss.NewStyle().Bold(true)

	TitleStyle   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	PromptStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
)
