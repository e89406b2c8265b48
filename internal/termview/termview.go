// Package termview prints a one-shot picture of a surface to a terminal
// using half-block characters and the terminal's color profile.
package termview

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"libgp/gfx"
)

const halfBlock = "▀"

// Write renders s as rows of half blocks, at most cols terminal columns
// wide. The image is downsampled by a whole-number step so its aspect ratio
// holds. With the Ascii profile only the block characters are written.
func Write(w io.Writer, s *gfx.Surface, p termenv.Profile, cols int) error {
	// East Asian locales render the block double width.
	if cw := runewidth.StringWidth(halfBlock); cw > 1 && cols > 0 {
		cols /= cw
	}
	step := 1
	if cols > 0 && s.Width() > cols {
		step = (s.Width() + cols - 1) / cols
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < s.Height(); y += 2 * step {
		for x := 0; x < s.Width(); x += step {
			top := s.GetColor(x, y)
			bottom := gfx.Black
			if y+step < s.Height() {
				bottom = s.GetColor(x, y+step)
			}
			cell := p.String(halfBlock).
				Foreground(p.FromColor(top)).
				Background(p.FromColor(bottom))
			if _, err := bw.WriteString(cell.String()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteOutput renders s to o using the profile o detected from its
// environment.
func WriteOutput(o *termenv.Output, s *gfx.Surface, cols int) error {
	return Write(o, s, o.Profile, cols)
}
