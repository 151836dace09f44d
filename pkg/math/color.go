package math

import "image/color"

// ColorRGB is a color with red, green and blue channels. Channels are
// nominally in [0, 1] but are never clamped by arithmetic.
type ColorRGB struct {
	R, G, B float32
}

// Gray returns a ColorRGB with every channel set to v.
func Gray(v float32) ColorRGB {
	return ColorRGB{v, v, v}
}

func (c ColorRGB) Add(other ColorRGB) ColorRGB {
	return ColorRGB{c.R + other.R, c.G + other.G, c.B + other.B}
}

func (c ColorRGB) Sub(other ColorRGB) ColorRGB {
	return ColorRGB{c.R - other.R, c.G - other.G, c.B - other.B}
}

func (c ColorRGB) Mul(other ColorRGB) ColorRGB {
	return ColorRGB{c.R * other.R, c.G * other.G, c.B * other.B}
}

func (c ColorRGB) Div(other ColorRGB) ColorRGB {
	return ColorRGB{c.R / other.R, c.G / other.G, c.B / other.B}
}

func (c *ColorRGB) AddAssign(other ColorRGB) *ColorRGB {
	*c = c.Add(other)
	return c
}

func (c *ColorRGB) SubAssign(other ColorRGB) *ColorRGB {
	*c = c.Sub(other)
	return c
}

func (c *ColorRGB) MulAssign(other ColorRGB) *ColorRGB {
	*c = c.Mul(other)
	return c
}

func (c *ColorRGB) DivAssign(other ColorRGB) *ColorRGB {
	*c = c.Div(other)
	return c
}

// Scale multiplies every channel by s.
func (c ColorRGB) Scale(s float32) ColorRGB {
	return ColorRGB{c.R * s, c.G * s, c.B * s}
}

// Inverted returns 1 - c per channel.
func (c ColorRGB) Inverted() ColorRGB {
	return ColorRGB{1 - c.R, 1 - c.G, 1 - c.B}
}

// WithAlpha extends c with an alpha channel.
func (c ColorRGB) WithAlpha(a float32) ColorRGBA {
	return ColorRGBA{c.R, c.G, c.B, a}
}

// ToNRGBA converts c to an opaque 8-bit color. Channels are clamped to
// [0, 1] only for the conversion.
func (c ColorRGB) ToNRGBA() color.NRGBA {
	return c.WithAlpha(1).ToNRGBA()
}

// ColorRGBA is a ColorRGB with an alpha channel.
type ColorRGBA struct {
	R, G, B, A float32
}

func (c ColorRGBA) Add(other ColorRGBA) ColorRGBA {
	return ColorRGBA{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

func (c ColorRGBA) Sub(other ColorRGBA) ColorRGBA {
	return ColorRGBA{c.R - other.R, c.G - other.G, c.B - other.B, c.A - other.A}
}

func (c ColorRGBA) Mul(other ColorRGBA) ColorRGBA {
	return ColorRGBA{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

func (c ColorRGBA) Div(other ColorRGBA) ColorRGBA {
	return ColorRGBA{c.R / other.R, c.G / other.G, c.B / other.B, c.A / other.A}
}

func (c *ColorRGBA) AddAssign(other ColorRGBA) *ColorRGBA {
	*c = c.Add(other)
	return c
}

func (c *ColorRGBA) SubAssign(other ColorRGBA) *ColorRGBA {
	*c = c.Sub(other)
	return c
}

func (c *ColorRGBA) MulAssign(other ColorRGBA) *ColorRGBA {
	*c = c.Mul(other)
	return c
}

func (c *ColorRGBA) DivAssign(other ColorRGBA) *ColorRGBA {
	*c = c.Div(other)
	return c
}

// Scale multiplies every channel, alpha included, by s.
func (c ColorRGBA) Scale(s float32) ColorRGBA {
	return ColorRGBA{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Inverted returns 1 - c for the color channels and keeps alpha.
func (c ColorRGBA) Inverted() ColorRGBA {
	return ColorRGBA{1 - c.R, 1 - c.G, 1 - c.B, c.A}
}

// RGB drops the alpha channel.
func (c ColorRGBA) RGB() ColorRGB {
	return ColorRGB{c.R, c.G, c.B}
}

// ToNRGBA converts c to a non-premultiplied 8-bit color. Channels are
// clamped to [0, 1] only for the conversion.
func (c ColorRGBA) ToNRGBA() color.NRGBA {
	return color.NRGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: toByte(c.A),
	}
}

func toByte(v float32) uint8 {
	return uint8(Clamp(v, 0, 1)*255 + 0.5)
}
