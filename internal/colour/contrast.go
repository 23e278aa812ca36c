package colour

import (
	"fmt"
	"strings"
)

// ContrastRatio calculates the contrast ratio between two normalized
// colours according to WCAG 2.0. Returns a value between 1 and 21, where 21
// is maximum contrast (black vs white). Symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b string) float64 {
	return ContrastRatioLum(Luminance(a), Luminance(b))
}

// ContrastRatioLum calculates the contrast ratio from two relative
// luminances.
func ContrastRatioLum(l1, l2 float64) float64 {
	// Ensure l1 is the lighter luminance.
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Level is a WCAG compliance classification for a contrast ratio.
type Level string

const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelFail Level = "fail"
)

// levelRank orders levels for threshold comparisons.
var levelRank = map[Level]int{
	LevelFail: 0,
	LevelAA:   1,
	LevelAAA:  2,
}

// AtLeast reports whether l meets or exceeds min.
func (l Level) AtLeast(min Level) bool {
	return levelRank[l] >= levelRank[min]
}

// ParseLevel parses a compliance level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aaa":
		return LevelAAA, nil
	case "aa":
		return LevelAA, nil
	case "fail":
		return LevelFail, nil
	default:
		return "", fmt.Errorf("invalid compliance level: %q (valid: aa, aaa)", s)
	}
}

// ComplianceNormal classifies a contrast ratio against the WCAG thresholds
// for normal-size text: 7:1 for AAA, 4.5:1 for AA. Lower bounds are
// inclusive, so a ratio of exactly 4.5 earns AA.
func ComplianceNormal(ratio float64) Level {
	switch {
	case ratio >= 7:
		return LevelAAA
	case ratio >= 4.5:
		return LevelAA
	default:
		return LevelFail
	}
}

// ComplianceLarge classifies a contrast ratio against the WCAG thresholds
// for large text: 4.5:1 for AAA, 3:1 for AA.
func ComplianceLarge(ratio float64) Level {
	switch {
	case ratio >= 4.5:
		return LevelAAA
	case ratio >= 3:
		return LevelAA
	default:
		return LevelFail
	}
}
