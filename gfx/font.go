package gfx

// Glyph describes one character of a Font.
type Glyph struct {
	Width  uint8  // pixel columns
	Offset uint16 // first byte of the glyph in Font.Bitmap
}

// Font is a packed monochrome bitmap font.
//
// Each glyph is Height rows of ceil(Width/8) bytes, MSB first, starting at
// its Offset into Bitmap. Glyphs is indexed by GlyphIndex.
type Font struct {
	Height uint8
	Glyphs []Glyph
	Bitmap []byte
}

// GlyphIndex maps a character byte to its slot in Font.Glyphs: printable
// ASCII starts at 0 and bytes above 126 are shifted down by 96 so that an
// 8-bit code page's upper half (0xC0..0xFF) follows at slot 96. Bytes below
// 0x20 wrap to large indices that fonts normally lack.
func GlyphIndex(c byte) byte {
	if c > 126 {
		return c - 96
	}
	return c - 32
}

// RowBytes is the number of bitmap bytes per row of a glyph width pixels wide.
func RowBytes(width uint8) int {
	return (int(width) + 7) / 8
}
