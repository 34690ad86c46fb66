package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Lerp blends a toward b by alpha in 0..255
func Lerp(a, b RGB, alpha uint8) RGB {
	t := float64(alpha) / 255.0
	return RGB{
		R: clamp(float64(a.R) + (float64(b.R)-float64(a.R))*t + 0.5),
		G: clamp(float64(a.G) + (float64(b.G)-float64(a.G))*t + 0.5),
		B: clamp(float64(a.B) + (float64(b.B)-float64(a.B))*t + 0.5),
	}
}

// Tcell converts to a tcell true color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// TcellToRGB converts tcell.Color to RGB
// Treats ColorDefault as the theme background
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RgbBackground
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}
