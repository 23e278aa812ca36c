package colour

import (
	"fmt"
	"strconv"
)

// RGB represents an opaque sRGB colour with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HexToRGB splits a normalized "#rrggbb" string into its channel bytes.
// The input must already be canonical (see Normalize); malformed input
// yields zeroed channels for the unparseable pairs.
func HexToRGB(hex string) RGB {
	if len(hex) != 7 {
		return RGB{}
	}
	r, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b, _ := strconv.ParseUint(hex[5:7], 16, 8)
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Hex returns the canonical "#rrggbb" lowercase form of the colour.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
