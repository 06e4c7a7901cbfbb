package utils

import (
	"fmt"
	"image/color"
	"strings"
)

// HexToRGBA converts a hex color string to color.NRGBA.
// Both the short (#f00) and the long (#ff0000) forms are accepted, with or without
// the leading hash. An optional alpha component may follow (#ff000080).
// Invalid input falls back to opaque black.
func HexToRGBA(x string) color.NRGBA {
	var r, g, b, a uint8 = 0, 0, 0, 0xff

	x = strings.TrimPrefix(x, "#")
	switch len(x) {
	case 3:
		if _, err := fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b); err != nil {
			return color.NRGBA{A: 0xff}
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if _, err := fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.NRGBA{A: 0xff}
		}
	case 8:
		if _, err := fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.NRGBA{A: 0xff}
		}
	default:
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// RGBAToHex is the inverse of HexToRGBA for opaque colors.
func RGBAToHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
