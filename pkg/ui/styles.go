package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for rendered output. Plain-text format bypasses
// these entirely.
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	AccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	BoldStyle    = lipgloss.NewStyle().Bold(true)
	DimStyle     = lipgloss.NewStyle().Faint(true)
)

// styled applies a style only in terminal format.
func styled(format Format, style lipgloss.Style, s string) string {
	if format == FormatTerminal {
		return style.Render(s)
	}
	return s
}
