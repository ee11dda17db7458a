// Package widget holds the reusable pieces scenes are built from: buttons
// and menus with hit-testing, status bars, and a bounded text field.
package widget

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// InputKind classifies a normalized input event.
type InputKind int

const (
	InputOther InputKind = iota
	InputConfirm
	InputDelete
	InputRune
	InputBack
	InputUp
	InputDown
	InputClick
)

// Input is a terminal event reduced to what scenes care about. Every Input
// also counts as the generic "any input" signal.
type Input struct {
	Kind InputKind
	Rune rune
	X, Y int
}

func Confirm() Input { return Input{Kind: InputConfirm} }
func Delete() Input { return Input{Kind: InputDelete} }
func Back() Input { return Input{Kind: InputBack} }
func Up() Input { return Input{Kind: InputUp} }
func Down() Input { return Input{Kind: InputDown} }
func Rune(r rune) Input { return Input{Kind: InputRune, Rune: r} }
func Click(x, y int) Input { return Input{Kind: InputClick, X: x, Y: y} }
func Other() Input { return Input{Kind: InputOther} }

// IsContinue reports whether in is a confirm key or the space bar.
func (in Input) IsContinue() bool {
	return in.Kind == InputConfirm || (in.Kind == InputRune && in.Rune == ' ')
}

// Printable reports whether in carries a printable character.
func (in Input) Printable() bool {
	return in.Kind == InputRune && unicode.IsPrint(in.Rune)
}

// Digit returns the 1-based menu shortcut carried by in, or 0.
func (in Input) Digit() int {
	if in.Kind == InputRune && in.Rune >= '1' && in.Rune <= '9' {
		return int(in.Rune - '0')
	}
	return 0
}

// FromMsg converts a bubbletea message into inputs. A pasted run of
// characters becomes one input per rune. Messages that are not user input
// yield nothing.
func FromMsg(msg tea.Msg) []Input {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return []Input{Confirm()}
		case tea.KeyBackspace:
			return []Input{Delete()}
		case tea.KeyEsc:
			return []Input{Back()}
		case tea.KeyUp, tea.KeyShiftTab:
			return []Input{Up()}
		case tea.KeyDown, tea.KeyTab:
			return []Input{Down()}
		case tea.KeySpace:
			return []Input{Rune(' ')}
		case tea.KeyRunes:
			ins := make([]Input, 0, len(msg.Runes))
			for _, r := range msg.Runes {
				ins = append(ins, Rune(r))
			}
			return ins
		}
		return []Input{Other()}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return []Input{Click(msg.X, msg.Y)}
		}
	}
	return nil
}
