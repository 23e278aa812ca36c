package colour

import "fmt"

// Result is the outcome of evaluating a foreground/background colour pair.
type Result struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	Normal     Level   `json:"normal_text"`
	Large      Level   `json:"large_text"`
}

// Evaluate normalizes both tokens against the built-in name table and
// computes the contrast ratio and compliance levels. See
// Normalizer.Evaluate.
func Evaluate(fgToken, bgToken string) (Result, error) {
	return defaultNormalizer.Evaluate(fgToken, bgToken)
}

// Evaluate normalizes a foreground and background token, computes their
// WCAG contrast ratio, and classifies it for normal and large text. The
// only possible error wraps ErrInvalidColour; on error the Result is zero,
// never partially filled.
func (n *Normalizer) Evaluate(fgToken, bgToken string) (Result, error) {
	fg, err := n.Normalize(fgToken)
	if err != nil {
		return Result{}, fmt.Errorf("foreground: %w", err)
	}

	bg, err := n.Normalize(bgToken)
	if err != nil {
		return Result{}, fmt.Errorf("background: %w", err)
	}

	ratio := ContrastRatio(fg, bg)

	return Result{
		Foreground: fg,
		Background: bg,
		Ratio:      ratio,
		Normal:     ComplianceNormal(ratio),
		Large:      ComplianceLarge(ratio),
	}, nil
}
