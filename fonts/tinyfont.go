package fonts

import (
	"fmt"
	"image/color"

	"golang.org/x/text/encoding/charmap"
	"tinygo.org/x/tinyfont"

	"libgp/gfx"
)

// FromTinyfont rasterizes a tinyfont font (for example proggy.TinySZ8pt7b)
// into a packed table whose upper half follows cm. Each glyph draws itself
// into a scratch surface; the baseline sits at the deepest YOffset.
func FromTinyfont(f tinyfont.Fonter, cm *charmap.Charmap) (*gfx.Font, error) {
	// GetGlyph may reuse one glyph value, so copy the metrics first.
	infos := make([]tinyfont.GlyphInfo, Slots)
	top, bottom := 0, 0
	for i := range infos {
		info := f.GetGlyph(SlotRune(i, cm)).Info()
		infos[i] = info
		if info.Height == 0 {
			continue
		}
		top = min(top, int(info.YOffset))
		bottom = max(bottom, int(info.YOffset)+int(info.Height))
	}
	ascent := -top
	height := ascent + bottom
	if height <= 0 {
		height = int(f.GetYAdvance())
	}
	if height <= 0 {
		return nil, ErrNoGlyphs
	}

	b, err := newBuilder(height)
	if err != nil {
		return nil, err
	}

	const scratchW = 256
	scratch := gfx.NewSurface(make([]uint16, scratchW*height), scratchW, height)
	d := gfx.NewDisplay(scratch, nil)
	ink := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	for i, info := range infos {
		scratch.ClearBuffer()
		f.GetGlyph(SlotRune(i, cm)).Draw(d, 0, int16(ascent), ink)

		w := glyphWidth(int(info.XOffset)+int(info.Width), int(info.XAdvance))
		err := b.add(w, func(x, y int) bool {
			return scratch.GetColor(x, y) != gfx.Black
		})
		if err != nil {
			return nil, fmt.Errorf("fonts: rune %q: %w", SlotRune(i, cm), err)
		}
	}
	return b.f, nil
}
