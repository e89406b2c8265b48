package gfx

// glyphGap is the spacing PutChar paints to the right of each glyph row and
// that PutString adds to every advance.
const glyphGap = 2

// Background selects what PutChar paints for clear glyph bits.
type Background uint8

const (
	// BackgroundSampled reads the pixel under the glyph's top-left corner
	// once, before drawing, and uses it for every clear bit.
	BackgroundSampled Background = iota
	// BackgroundBlack paints clear bits with color 0.
	BackgroundBlack
)

// PutChar draws glyph index (see GlyphIndex) of f with its top-left corner
// at (x, y). Whole bitmap bytes are drawn, so a glyph covers
// 8*ceil(Width/8) columns, and each byte is followed by two background
// pixels; the pair after the last byte is the inter-glyph gap.
func (s *Surface) PutChar(x, y int, c Color, index byte, f *Font, bg Background) {
	g := f.Glyphs[index]
	nb := RowBytes(g.Width)
	p := int(g.Offset)

	var back Color
	if bg == BackgroundSampled {
		back = s.GetColor(x, y)
	}

	for row := 0; row < int(f.Height); row++ {
		cx := x
		for j := 0; j < nb; j++ {
			b := f.Bitmap[p]
			p++
			for mask := byte(0x80); mask != 0; mask >>= 1 {
				if b&mask != 0 {
					s.SetPixel(cx, y, c)
				} else {
					s.SetPixel(cx, y, back)
				}
				cx++
			}
			s.SetPixel(cx, y, back)
			s.SetPixel(cx+1, y, back)
		}
		y++
	}
}

// PutString draws the bytes of text, up to the first NUL, left to right from
// (x, y), advancing by each glyph's Width plus the 2px gap.
func (s *Surface) PutString(x, y int, c Color, text string, f *Font, bg Background) {
	for i := 0; i < len(text) && text[i] != 0; i++ {
		idx := GlyphIndex(text[i])
		s.PutChar(x, y, c, idx, f, bg)
		x += int(f.Glyphs[idx].Width) + glyphGap
	}
}

// PutStringCentered draws text so that its advance box is centred on
// (x, y). An empty string draws nothing.
func (s *Surface) PutStringCentered(x, y int, c Color, text string, f *Font, bg Background) {
	slp := StringWidth(text, f)
	if slp == 0 {
		return
	}
	s.PutString(x-slp/2, y-int(f.Height)/2, c, text, f, bg)
}

// StringWidth returns the total advance of text in f: the sum of Width+2
// over its bytes up to the first NUL.
func StringWidth(text string, f *Font) int {
	n := 0
	for i := 0; i < len(text) && text[i] != 0; i++ {
		n += int(f.Glyphs[GlyphIndex(text[i])].Width) + glyphGap
	}
	return n
}
