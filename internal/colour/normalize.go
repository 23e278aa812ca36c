// Package colour implements WCAG 2.x colour normalization, relative
// luminance, and contrast-ratio evaluation.
package colour

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidColour reports input that is neither a known colour name nor a
// well-formed 6-digit hex code. It is the only failure mode in this package.
var ErrInvalidColour = errors.New("invalid colour")

// hexPattern matches the canonical form: "#" followed by exactly six
// lowercase hex digits. 3-digit shorthand is deliberately not supported.
var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// Normalizer resolves colour tokens against a name table. The zero value is
// not usable; obtain one from NewNormalizer or use the package-level
// functions, which consult the built-in CSS table only.
type Normalizer struct {
	names map[string]string
}

var defaultNormalizer = &Normalizer{names: namedColours}

// NewNormalizer returns a Normalizer that layers custom named colours over
// the built-in CSS table. Custom names shadow built-in names. Every custom
// value must be a 6-digit hex code (leading "#" optional); a malformed entry
// fails construction so evaluation can never observe an invalid table.
func NewNormalizer(custom map[string]string) (*Normalizer, error) {
	if len(custom) == 0 {
		return defaultNormalizer, nil
	}

	names := make(map[string]string, len(namedColours)+len(custom))
	for name, hex := range namedColours {
		names[name] = hex
	}
	for name, value := range custom {
		hex := "#" + strings.TrimLeft(strings.ToLower(strings.TrimSpace(value)), "#")
		if !hexPattern.MatchString(hex) {
			return nil, fmt.Errorf("custom colour %q = %q: %w", name, value, ErrInvalidColour)
		}
		names[strings.ToLower(strings.TrimSpace(name))] = hex
	}

	return &Normalizer{names: names}, nil
}

// Normalize converts a colour token into the canonical "#rrggbb" lowercase
// form using the built-in name table. See Normalizer.Normalize.
func Normalize(input string) (string, error) {
	return defaultNormalizer.Normalize(input)
}

// Normalize converts a free-form colour token (named colour or hex string)
// into the canonical "#rrggbb" lowercase form.
//
// The name table is consulted before hex parsing. Hex tokens may carry any
// number of leading "#" characters and any letter case; the result always
// has exactly one "#" and lowercase digits. On failure the returned error
// wraps ErrInvalidColour and the output is empty, never partially
// normalized.
func (n *Normalizer) Normalize(input string) (string, error) {
	token := strings.ToLower(strings.TrimSpace(input))

	if hex, ok := n.names[token]; ok {
		return hex, nil
	}

	hex := "#" + strings.TrimLeft(token, "#")
	if !hexPattern.MatchString(hex) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColour, input)
	}

	return hex, nil
}
