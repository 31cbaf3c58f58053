package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
)

// Title styles a screen heading.
func Title(text string) string {
	return render(titleStyle, text)
}

// Error styles a failure message.
func Error(text string) string {
	return render(errorStyle, text)
}

// Success styles a confirmation message.
func Success(text string) string {
	return render(successStyle, text)
}

// Muted styles secondary text.
func Muted(text string) string {
	return render(mutedStyle, text)
}

// Label styles a field name in the detail view.
func Label(text string) string {
	return render(labelStyle, text)
}

func render(style lipgloss.Style, text string) string {
	if !ansiEnabled() {
		return text
	}
	return style.Render(text)
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
