// Package fonts builds gfx.Font tables from scalable and bitmap font sources.
//
// A table always has 160 slots so that every byte 0x20..0xFF has a glyph
// under gfx.GlyphIndex: slots 0..94 hold printable ASCII and slots 95..159
// hold the code-page bytes 0xBF..0xFF. Bytes 0x7F..0xBE fold onto ASCII
// slots and cannot be shown; Encode replaces them with '?'.
package fonts

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"libgp/gfx"
)

// Slots is the number of glyphs in a generated table.
const Slots = 160

// glyphGap matches the spacing gfx adds after every glyph.
const glyphGap = 2

var (
	// ErrNoGlyphs is returned when a source yields no usable glyph metrics.
	ErrNoGlyphs = errors.New("fonts: no glyphs")
	// ErrTooLarge is returned when the packed bitmap would not fit the
	// 16-bit glyph offsets.
	ErrTooLarge = errors.New("fonts: bitmap exceeds 64 KiB")
)

// SlotRune returns the rune drawn in slot i when the upper half of the table
// follows cm.
func SlotRune(i int, cm *charmap.Charmap) rune {
	if i < 95 {
		return rune(i + 32)
	}
	return cm.DecodeByte(byte(i + 96))
}

// Encode converts UTF-8 text into the byte string gfx.PutString expects for a
// table built with cm. Runes the table cannot show become '?'.
func Encode(s string, cm *charmap.Charmap) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r >= 0x20 && r < 0x7F {
			out = append(out, byte(r))
			continue
		}
		b, ok := cm.EncodeRune(r)
		if !ok || b < 0xBF {
			b = '?'
		}
		out = append(out, b)
	}
	return string(out)
}

// builder packs glyph rows MSB first into a gfx.Font.
type builder struct {
	f *gfx.Font
}

func newBuilder(height int) (*builder, error) {
	if height <= 0 || height > 255 {
		return nil, fmt.Errorf("fonts: invalid height %d", height)
	}
	return &builder{f: &gfx.Font{
		Height: uint8(height),
		Glyphs: make([]gfx.Glyph, 0, Slots),
	}}, nil
}

// add appends a glyph width pixels wide, asking set for every pixel.
func (b *builder) add(width int, set func(x, y int) bool) error {
	if width < 0 || width > 255 {
		return fmt.Errorf("fonts: invalid glyph width %d", width)
	}
	off := len(b.f.Bitmap)
	nb := gfx.RowBytes(uint8(width))
	if off+nb*int(b.f.Height) > 0x10000 {
		return ErrTooLarge
	}
	for y := 0; y < int(b.f.Height); y++ {
		for j := 0; j < nb; j++ {
			var v byte
			for k := 0; k < 8; k++ {
				x := j*8 + k
				if x < width && set(x, y) {
					v |= 0x80 >> k
				}
			}
			b.f.Bitmap = append(b.f.Bitmap, v)
		}
	}
	b.f.Glyphs = append(b.f.Glyphs, gfx.Glyph{Width: uint8(width), Offset: uint16(off)})
	return nil
}

func glyphWidth(ink, advance int) int {
	return max(ink, advance-glyphGap, 1)
}
