package core

import (
	"fmt"
	"image/color"
)

// Color is a straight-alpha RGBA color shared by every frontend.
// The terminal frontend maps it to a lipgloss hex color, the window
// frontend to a color.NRGBA.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Predefined colors for game elements.
var (
	ColorBlack   = RGB(0, 0, 0)
	ColorWhite   = RGB(255, 255, 255)
	ColorGray    = RGB(128, 128, 128)
	ColorRed     = RGB(255, 0, 0)
	ColorGreen   = RGB(0, 255, 0)
	ColorYellow  = RGB(255, 255, 0)
	ColorCyan    = RGB(0, 255, 255)
	ColorMagenta = RGB(255, 0, 255)
	ColorOrange  = RGB(255, 165, 0)
	ColorGold    = RGB(255, 215, 0)
	ColorPurple  = RGB(160, 32, 240)
	ColorBlue    = RGB(30, 144, 255)
)

// WithAlpha returns c with its alpha replaced. a is clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.A = uint8(ClampF(a, 0, 1) * 255)
	return c
}

// Scale multiplies the RGB channels by f, clamped to [0, 1].
// Used for star brightness.
func (c Color) Scale(f float64) Color {
	f = ClampF(f, 0, 1)
	return Color{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// Hex returns the color as "#rrggbb", premultiplied by alpha so faded
// colors look faded on an opaque background.
func (c Color) Hex() string {
	a := float64(c.A) / 255
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(float64(c.R)*a), uint8(float64(c.G)*a), uint8(float64(c.B)*a))
}

// NRGBA converts to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
