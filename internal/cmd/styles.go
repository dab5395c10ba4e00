package cmd

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	headingStyle = lipgloss.NewStyle().Bold(true)
)

// colorEnabled honors NO_COLOR and dumb terminals
func colorEnabled() bool {
	return os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb"
}

// applyStyle conditionally applies styling
func applyStyle(style lipgloss.Style, text string) string {
	if colorEnabled() {
		return style.Render(text)
	}
	return text
}
