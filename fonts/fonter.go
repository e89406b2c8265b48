package fonts

import (
	"image/color"

	"golang.org/x/text/encoding/charmap"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"libgp/gfx"
)

// Fonter exposes a packed table as a tinyfont.Fonter so tinyfont.WriteLine
// and other drivers-based code can use it. Runes map through cm the same way
// Encode does.
//
// Concurrent access is not safe due to internal glyph reuse.
type Fonter struct {
	f  *gfx.Font
	cm *charmap.Charmap
	g  glyph
}

var _ tinyfont.Fonter = (*Fonter)(nil)

// NewFonter wraps f, whose upper slots follow cm.
func NewFonter(f *gfx.Font, cm *charmap.Charmap) *Fonter {
	x := &Fonter{f: f, cm: cm}
	x.g.f = f
	return x
}

type glyph struct {
	f   *gfx.Font
	r   rune
	idx byte
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	gl := g.f.Glyphs[g.idx]
	nb := gfx.RowBytes(gl.Width)
	top := y + int16(g.yOffset())
	p := int(gl.Offset)
	for row := 0; row < int(g.f.Height); row++ {
		for col := 0; col < int(gl.Width); col++ {
			if g.f.Bitmap[p+col/8]&(0x80>>(col%8)) != 0 {
				display.SetPixel(x+int16(col), top+int16(row), c)
			}
		}
		p += nb
	}
}

// yOffset puts the last bitmap row on the baseline.
func (g *glyph) yOffset() int8 {
	return int8(1 - min(int(g.f.Height), 128))
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	w := g.f.Glyphs[g.idx].Width
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    w,
		Height:   g.f.Height,
		XAdvance: w + glyphGap,
		YOffset:  g.yOffset(),
	}
}

func (f *Fonter) GetYAdvance() uint8 { return f.f.Height }

func (f *Fonter) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	f.g.idx = gfx.GlyphIndex(Encode(string(r), f.cm)[0])
	return &f.g
}
