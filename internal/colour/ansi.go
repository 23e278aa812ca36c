package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolour terminal output.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Swatch returns an ANSI-coloured solid block for a colour. Width specifies
// how many characters wide the block should be.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	block := strings.Repeat(" ", width)

	return bg + block + ansiReset
}

// PairPreview renders sample text in the foreground colour on the
// background colour, so the caller can eyeball the contrast the numbers
// describe. The text is padded with a space either side.
func PairPreview(fg, bg RGB, text string) string {
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)
	bgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, bg.R, bg.G, bg.B, ansiSuffix)

	return bgSeq + fgSeq + " " + text + " " + ansiReset
}
