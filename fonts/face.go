package fonts

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"libgp/gfx"
)

// FromFace rasterizes face into a packed table whose upper half follows cm.
// Mask pixels with at least half coverage are set. Runes the face lacks use
// whatever fallback glyph the face returns, or '?' if it returns none.
func FromFace(face font.Face, cm *charmap.Charmap) (*gfx.Font, error) {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := m.Height.Ceil()
	if d := ascent + m.Descent.Ceil(); d > height {
		height = d
	}
	b, err := newBuilder(height)
	if err != nil {
		return nil, err
	}

	dot := fixed.P(0, ascent)
	for i := 0; i < Slots; i++ {
		r := SlotRune(i, cm)
		dr, mask, maskp, adv, _ := face.Glyph(dot, r)
		if mask == nil {
			dr, mask, maskp, adv, _ = face.Glyph(dot, '?')
		}
		if mask == nil {
			return nil, fmt.Errorf("fonts: rune %q: %w", r, ErrNoGlyphs)
		}

		w := glyphWidth(dr.Max.X, adv.Round())
		err := b.add(w, func(x, y int) bool {
			p := image.Pt(x, y)
			if !p.In(dr) {
				return false
			}
			_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
			return a >= 0x8000
		})
		if err != nil {
			return nil, fmt.Errorf("fonts: rune %q: %w", r, err)
		}
	}
	return b.f, nil
}

var basic struct {
	once sync.Once
	f    *gfx.Font
}

// Basic returns the 13px fixed font from golang.org/x/image/font/basicfont.
// It covers printable ASCII; the upper slots show the replacement glyph.
func Basic() *gfx.Font {
	basic.once.Do(func() {
		f, err := FromFace(basicfont.Face7x13, charmap.ISO8859_1)
		if err != nil {
			panic(err)
		}
		basic.f = f
	})
	return basic.f
}

// GoRegular rasterizes the Go Regular TrueType font at size pixels per em,
// with ISO 8859-1 in the upper slots.
func GoRegular(size float64) (*gfx.Font, error) {
	return FromTTF(goregular.TTF, size, charmap.ISO8859_1)
}

// FromTTF parses a TrueType/OpenType font and rasterizes it at size pixels
// per em.
func FromTTF(ttf []byte, size float64, cm *charmap.Charmap) (*gfx.Font, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fonts: face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()
	return FromFace(face, cm)
}
