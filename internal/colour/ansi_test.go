package colour

import (
	"strings"
	"testing"
)

func TestSwatchContainsEscapeSequences(t *testing.T) {
	s := Swatch(RGB{R: 10, G: 20, B: 30}, 4)
	if !strings.Contains(s, "\033[48;2;10;20;30m") {
		t.Errorf("Swatch missing background sequence: %q", s)
	}
	if !strings.HasSuffix(s, ansiReset) {
		t.Errorf("Swatch missing reset: %q", s)
	}
	if !strings.Contains(s, "    ") {
		t.Errorf("Swatch missing 4-wide block: %q", s)
	}
}

func TestSwatchDefaultWidth(t *testing.T) {
	s := Swatch(RGB{}, 0)
	if !strings.Contains(s, strings.Repeat(" ", defaultWidth)) {
		t.Errorf("Swatch with zero width missing default block: %q", s)
	}
}

func TestPairPreviewUsesBothColours(t *testing.T) {
	s := PairPreview(RGB{R: 1, G: 2, B: 3}, RGB{R: 4, G: 5, B: 6}, "Sample")
	if !strings.Contains(s, "\033[38;2;1;2;3m") {
		t.Errorf("PairPreview missing foreground sequence: %q", s)
	}
	if !strings.Contains(s, "\033[48;2;4;5;6m") {
		t.Errorf("PairPreview missing background sequence: %q", s)
	}
	if !strings.Contains(s, "Sample") {
		t.Errorf("PairPreview missing sample text: %q", s)
	}
}
