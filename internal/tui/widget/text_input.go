package widget

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
)

// TextInput is a single-line field bounded to MaxLength runes. Clicking
// inside it focuses it; clicking elsewhere blurs it. Keys only edit the
// field while it is focused.
type TextInput struct {
	model     textinput.Model
	maxLength int

	x, y, width int
}

func NewTextInput(placeholder string, maxLength, width int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = maxLength
	ti.Width = width
	ti.Focus()

	return TextInput{model: ti, maxLength: maxLength, width: width + 2}
}

// Place records where the field is drawn so clicks can be hit-tested.
func (t *TextInput) Place(x, y int) {
	t.x, t.y = x, y
}

func (t *TextInput) Focused() bool { return t.model.Focused() }

func (t *TextInput) Focus() { t.model.Focus() }

func (t *TextInput) Blur() { t.model.Blur() }

func (t *TextInput) Value() string { return t.model.Value() }

func (t *TextInput) SetValue(s string) {
	if utf8.RuneCountInString(s) > t.maxLength {
		s = string([]rune(s)[:t.maxLength])
	}
	t.model.SetValue(s)
	t.model.CursorEnd()
}

func (t *TextInput) Reset() { t.model.Reset() }

// Handle edits the field. It reports whether in was consumed.
func (t *TextInput) Handle(in Input) bool {
	switch in.Kind {
	case InputClick:
		if in.Y == t.y && in.X >= t.x && in.X < t.x+t.width {
			t.model.Focus()
			return true
		}
		t.model.Blur()
		return false
	case InputDelete:
		if !t.Focused() {
			return false
		}
		if v := []rune(t.Value()); len(v) > 0 {
			t.SetValue(string(v[:len(v)-1]))
		}
		return true
	case InputRune:
		if !t.Focused() || !in.Printable() {
			return false
		}
		if utf8.RuneCountInString(t.Value()) < t.maxLength {
			t.SetValue(t.Value() + string(in.Rune))
		}
		return true
	}
	return false
}

func (t TextInput) View() string {
	return t.model.View()
}
