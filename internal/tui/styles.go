package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Bold(true)

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)

	victoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	defeatStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	escapeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ADD8E6")).Bold(true)
	endingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")).Bold(true)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)
)

const (
	motivationColor    = lipgloss.Color("#FF6464")
	knowledgeColor     = lipgloss.Color("#6464FF")
	concentrationColor = lipgloss.Color("#64FF64")
	guardianColor      = lipgloss.Color("#FF0000")
)

// block lays lines out in exactly rows terminal rows, so that whatever is
// drawn after it starts at a known row for hit-testing.
func block(rows int, lines ...string) string {
	content := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Height(rows).MaxHeight(rows).Render(content)
}

// overlay draws a bordered panel of lines.
func overlay(lines ...string) string {
	return overlayStyle.Render(strings.Join(lines, "\n"))
}
