package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#1F3A93")).
			Padding(0, 2)

	hoverStyle = buttonStyle.
			Background(lipgloss.Color("#5DADE2")).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
)

// Button is a clickable label. Its bounds are set by the Menu that lays it out.
type Button struct {
	Label string
	Style lipgloss.Style
	Hover lipgloss.Style

	x, y, width int
}

func NewButton(label string) Button {
	return Button{Label: label, Style: buttonStyle, Hover: hoverStyle}
}

// Contains reports whether the cell (x, y) is inside the button.
func (b Button) Contains(x, y int) bool {
	return y == b.y && x >= b.x && x < b.x+b.width
}

func (b Button) render(hovered bool, shortcut int) string {
	label := b.Label
	if shortcut > 0 {
		label = fmt.Sprintf("%d. %s", shortcut, label)
	}
	if hovered {
		return b.Hover.Render(label)
	}
	return b.Style.Render(label)
}

// Menu is a vertical list of buttons, one per row, starting at (X, Y) on
// screen. It is driven by arrows, digit shortcuts, confirm and clicks.
type Menu struct {
	X, Y    int
	Buttons []Button
	Cursor  int

	// Shortcuts numbers the buttons and accepts 1-9 as selection keys.
	Shortcuts bool
}

func NewMenu(labels ...string) Menu {
	m := Menu{Shortcuts: true}
	m.SetLabels(labels...)
	return m
}

// SetLabels replaces the buttons, keeping the cursor in range.
func (m *Menu) SetLabels(labels ...string) {
	m.Buttons = m.Buttons[:0]
	for _, l := range labels {
		m.Buttons = append(m.Buttons, NewButton(l))
	}
	if m.Cursor >= len(m.Buttons) {
		m.Cursor = max(len(m.Buttons)-1, 0)
	}
	m.layout()
}

// Place moves the menu's top-left corner.
func (m *Menu) Place(x, y int) {
	m.X, m.Y = x, y
	m.layout()
}

func (m *Menu) layout() {
	for i := range m.Buttons {
		b := &m.Buttons[i]
		b.x = m.X
		b.y = m.Y + i
		b.width = lipgloss.Width(b.render(false, m.shortcut(i)))
	}
}

func (m *Menu) shortcut(i int) int {
	if m.Shortcuts && i < 9 {
		return i + 1
	}
	return 0
}

// Handle applies in to the menu and returns the chosen index, or -1 when
// nothing was chosen.
func (m *Menu) Handle(in Input) int {
	if len(m.Buttons) == 0 {
		return -1
	}

	switch in.Kind {
	case InputUp:
		m.Cursor = (m.Cursor - 1 + len(m.Buttons)) % len(m.Buttons)
	case InputDown:
		m.Cursor = (m.Cursor + 1) % len(m.Buttons)
	case InputConfirm:
		return m.Cursor
	case InputClick:
		for i, b := range m.Buttons {
			if b.Contains(in.X, in.Y) {
				m.Cursor = i
				return i
			}
		}
	case InputRune:
		if d := in.Digit(); m.Shortcuts && d > 0 && d <= len(m.Buttons) {
			m.Cursor = d - 1
			return m.Cursor
		}
	}
	return -1
}

func (m Menu) View() string {
	rows := make([]string, len(m.Buttons))
	for i, b := range m.Buttons {
		rows[i] = strings.Repeat(" ", m.X) + b.render(i == m.Cursor, m.shortcut(i))
	}
	return strings.Join(rows, "\n")
}
