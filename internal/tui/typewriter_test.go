package tui

import "testing"

func TestTypewriter(t *testing.T) {
	tw := newTypewriter("abcdefg", "", "xy")

	want := []string{
		"abc",
		"abcdef",
		"abcdefg",
		"abcdefg\n",
		"abcdefg\n\nxy",
	}
	for i, w := range want {
		tw.Step()
		if got := tw.Text(); got != w {
			t.Fatalf("step %d: got %q, want %q", i+1, got, w)
		}
	}
	if !tw.Done() {
		t.Errorf("Expected typewriter to be done")
	}

	tw.Step()
	if got := tw.Text(); got != "abcdefg\n\nxy" {
		t.Errorf("Expected stepping past the end to be a no-op, got %q", got)
	}
}

func TestTypewriterComplete(t *testing.T) {
	tw := newTypewriter("héllo wörld", "second")
	tw.Step()
	tw.Complete()
	if !tw.Done() {
		t.Fatalf("Expected done after Complete")
	}
	if got := tw.Text(); got != "héllo wörld\nsecond" {
		t.Errorf("Unexpected text %q", got)
	}
}
