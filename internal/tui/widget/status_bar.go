package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	barLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Width(16)
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	barValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).PaddingLeft(1)
)

// StatusBar draws a labelled value against a maximum.
type StatusBar struct {
	Label string
	Value int
	Max   int
	Width int
	Color lipgloss.Color
}

func NewStatusBar(label string, value, maxValue int, color lipgloss.Color) StatusBar {
	return StatusBar{Label: label, Value: value, Max: maxValue, Width: 20, Color: color}
}

// Fill is the number of filled cells, clamped to the bar width.
func (s StatusBar) Fill() int {
	if s.Max <= 0 || s.Width <= 0 {
		return 0
	}
	return min(max(s.Width*s.Value/s.Max, 0), s.Width)
}

func (s StatusBar) View() string {
	fill := s.Fill()
	bar := lipgloss.NewStyle().Foreground(s.Color).Render(strings.Repeat("█", fill)) +
		barEmptyStyle.Render(strings.Repeat("░", s.Width-fill))

	var label string
	if s.Label != "" {
		label = barLabelStyle.Render(s.Label)
	}
	return label + bar + barValueStyle.Render(fmt.Sprintf("%d/%d", s.Value, s.Max))
}
