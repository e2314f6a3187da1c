package scene

import (
	"image/color"
	"math"
)

// Color is a linear RGB colour with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Hex converts a 0xRRGGBB value.
func Hex(v uint32) Color {
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Lerp mixes c towards o by t.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		c.R + (o.R-c.R)*t,
		c.G + (o.G-c.G)*t,
		c.B + (o.B-c.B)*t,
	}
}

// Clamp limits every component to [0, 1].
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// RGBA converts to an 8 bit colour with the given alpha.
func (c Color) RGBA(alpha float64) color.RGBA {
	c = c.Clamp()
	a := clamp01(alpha)
	// premultiplied, as image/color expects
	return color.RGBA{
		R: uint8(math.Round(c.R * a * 255)),
		G: uint8(math.Round(c.G * a * 255)),
		B: uint8(math.Round(c.B * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
