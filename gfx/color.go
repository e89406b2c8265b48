package gfx

import "image/color"

// Color is a 16-bit RGB565 pixel: rrrrrggggggbbbbb.
type Color uint16

// RGB565 packs 8-bit channels into a Color, dropping the low bits.
func RGB565(r, g, b uint8) Color {
	return Color(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b>>3))
}

var (
	White     = RGB565(255, 255, 255)
	Black     = RGB565(0, 0, 0)
	DarkGray  = RGB565(15, 15, 15)
	Yellow    = RGB565(255, 255, 0)
	Red       = RGB565(255, 0, 0)
	Green     = RGB565(60, 255, 0)
	LightBlue = RGB565(161, 162, 172)
	LightGray = RGB565(170, 170, 170)
	Orange    = RGB565(255, 215, 0)
	Gray      = RGB565(102, 102, 102)
	Blue      = RGB565(29, 21, 255)
)

// RGB expands c back to 8-bit channels, scaling each field to the full range.
func (c Color) RGB() (r, g, b uint8) {
	rr := (uint16(c) >> 11) & 0x1F
	gg := (uint16(c) >> 5) & 0x3F
	bb := uint16(c) & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// RGBA implements color.Color. RGB565 has no alpha; pixels are opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// ColorModel converts arbitrary colors to Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return RGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
})

// FromRGBA converts a tinygo-style color.RGBA, ignoring alpha.
func FromRGBA(c color.RGBA) Color { return RGB565(c.R, c.G, c.B) }
