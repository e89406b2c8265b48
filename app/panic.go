package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"libgp/fonts"
	"libgp/gfx"
	"libgp/hal"
)

// guard wraps step so that a panic while drawing leaves a readable panic
// screen instead of killing the host runner. Once halted, later steps do
// nothing.
func (d *dashboard) guard(step func() error) func() error {
	return func() (err error) {
		if d.halted {
			return nil
		}
		defer func() {
			if v := recover(); v != nil {
				d.halted = true
				showPanic(d.h, v, debug.Stack())
				err = nil
			}
		}()
		return step()
	}
}

func showPanic(h hal.HAL, v any, stack []byte) {
	lines := []string{
		"libgp panic:",
		fmt.Sprintf("panic: %v", v),
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("libgp panic: %v", v))
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		if l := h.Logger(); l != nil {
			l.WriteLineString(line)
		}
		lines = append(lines, strings.TrimSpace(line))
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	font := fonts.Basic()
	fb.Frame(func(s *gfx.Surface) {
		s.SetOrientation(gfx.Normal)
		s.Fill(0, 0, s.Width(), s.Height(), gfx.White)

		fh := int(font.Height)
		y := 0
		for _, line := range lines {
			line = fonts.Encode(line, charmap.ISO8859_1)
			for len(line) > 0 {
				if y+fh > s.Height() {
					return
				}
				chunk, rest := takeFitting(line, font, s.Width())
				s.PutString(0, y, gfx.Black, chunk, font, gfx.BackgroundSampled)
				y += fh
				line = strings.TrimLeft(rest, " ")
			}
		}
	})
	_ = fb.Present()
}

// takeFitting splits s after the longest prefix whose painted extent fits in
// maxW pixels. At least one byte is taken when maxW allows any glyph.
func takeFitting(s string, f *gfx.Font, maxW int) (prefix, rest string) {
	x := 0
	for i := 0; i < len(s); i++ {
		g := f.Glyphs[gfx.GlyphIndex(s[i])]
		// PutChar paints whole bytes plus the gap.
		if x+gfx.RowBytes(g.Width)*8+2 > maxW {
			if i == 0 {
				return "", ""
			}
			return s[:i], s[i:]
		}
		x += int(g.Width) + 2
	}
	return s, ""
}
