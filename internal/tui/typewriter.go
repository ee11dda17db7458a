package tui

import "strings"

// typewriterSpeed is the number of runes revealed per frame.
const typewriterSpeed = 3

// typewriter reveals lines of text a few runes per frame. Blank lines take
// one frame.
type typewriter struct {
	lines    [][]rune
	line     int
	progress int
}

func newTypewriter(lines ...string) *typewriter {
	tw := &typewriter{}
	for _, l := range lines {
		tw.lines = append(tw.lines, []rune(l))
	}
	return tw
}

// Step reveals the next runes.
func (tw *typewriter) Step() {
	if tw.Done() {
		return
	}
	tw.progress += typewriterSpeed
	if tw.progress >= len(tw.lines[tw.line]) {
		tw.progress = 0
		tw.line++
	}
}

// Complete reveals everything at once.
func (tw *typewriter) Complete() {
	tw.line = len(tw.lines)
	tw.progress = 0
}

func (tw *typewriter) Done() bool {
	return tw.line >= len(tw.lines)
}

// Text is the revealed portion, one row per line.
func (tw *typewriter) Text() string {
	var b strings.Builder
	for i := 0; i < tw.line && i < len(tw.lines); i++ {
		b.WriteString(string(tw.lines[i]))
		b.WriteByte('\n')
	}
	if !tw.Done() && tw.progress > 0 {
		b.WriteString(string(tw.lines[tw.line][:tw.progress]))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
