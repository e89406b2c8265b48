package app

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"golang.org/x/text/encoding/charmap"
	"tinygo.org/x/tinyfont"

	"libgp/fonts"
	"libgp/gfx"
)

var tinyInk = color.RGBA{R: 0xA1, G: 0xA2, B: 0xAC, A: 0xFF}

// layout splits the panel into a title bar, a 4x2 grid of shape cells on the
// left, the radar on the right and a status line at the bottom.
type layout struct {
	w, h            int
	titleH, statusH int
	bodyY, bodyH    int
	cellW, cellH    int
	r               int
	rx, ry, rr      int
}

func (d *dashboard) layout(s *gfx.Surface) layout {
	var l layout
	l.w, l.h = s.Width(), s.Height()
	l.titleH = int(d.title.Height) + 4
	l.statusH = int(d.small.Height) + 4
	l.bodyY = l.titleH + 2
	l.bodyH = l.h - l.bodyY - l.statusH
	l.cellW = l.w / 2 / 4
	l.cellH = l.bodyH / 2
	l.r = max(min(l.cellW, l.cellH)/2-3, 2)
	l.rx = l.w/2 + l.w/4
	l.ry = l.bodyY + l.bodyH/2
	l.rr = min(l.w/4, l.bodyH/2) - 4
	return l
}

func (d *dashboard) draw(s *gfx.Surface) {
	l := d.layout(s)
	s.ClearBuffer()

	d.drawTitle(s, l)
	d.drawCells(s, l)
	d.drawRadar(s, l)
	d.drawStatus(s, l)
}

func (d *dashboard) drawTitle(s *gfx.Surface, l layout) {
	s.Fill(0, 0, l.w, l.titleH, gfx.Blue)
	title := fitText(fonts.Encode("libgp - Grüße", charmap.ISO8859_1), d.title, l.w-8)
	s.PutStringCentered(l.w/2, l.titleH/2, gfx.White, title, d.title, gfx.BackgroundSampled)
	s.HLine(0, l.titleH, l.w, gfx.LightGray)
}

func (d *dashboard) drawCells(s *gfx.Surface, l layout) {
	side := gfx.Side(1 + (d.frame/30)%4)
	r := l.r
	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			cx := col*l.cellW + l.cellW/2
			cy := l.bodyY + row*l.cellH + l.cellH/2
			switch row*4 + col {
			case 0:
				s.BresenhamCircle(cx, cy, r, gfx.Yellow)
			case 1:
				s.FilledCircle(cx, cy, r, gfx.Orange)
			case 2:
				s.RoundedRect(cx, cy, 2*r, 2*r, max(r/3, 1), gfx.LightBlue)
			case 3:
				s.RoundedFill(cx, cy, 2*r, 2*r, max(r/3, 1), gfx.Gray)
			case 4:
				s.Square(cx, cy, 2*r, 2*r, gfx.White)
				s.BresenhamLine(cx-r, cy-r, cx+r-1, cy+r-1, gfx.White)
			case 5:
				s.Triangle(cx, cy, 2*r, 2*r, side, gfx.Green)
			case 6:
				s.Arrow(cx, cy, 2*r, 2*r, side, gfx.Red)
			case 7:
				a := r - 2
				s.Square(cx, cy, 2*a, 2*a, gfx.Red)
				s.FillArea(cx, cy, 2*(a+2), 2*(a+2), gfx.Green, gfx.Red)
			}
		}
	}
	s.VLine(l.w/2-1, l.bodyY, l.bodyH, gfx.DarkGray)
}

func (d *dashboard) drawRadar(s *gfx.Surface, l layout) {
	rx, ry, rr := l.rx, l.ry, l.rr

	s.DottedHLine(rx-rr, ry, 2*rr+1, 3, 2, gfx.Gray)
	s.DottedVLine(rx, ry-rr, 2*rr+1, 3, 2, gfx.Gray)
	s.Cross(rx, ry, rr, gfx.DarkGray)

	if d.arcOK {
		if err := s.Arc(rx, ry, 0, 360, rr, gfx.Green); errors.Is(err, gfx.ErrNotImplemented) {
			d.arcOK = false
		}
	}
	if !d.arcOK {
		s.BresenhamCircle(rx, ry, rr, gfx.Green)
	}

	theta := float64(d.frame%120) * 2 * math.Pi / 120
	ex := rx + int(math.Round(float64(rr-4)*math.Cos(theta)))
	ey := ry + int(math.Round(float64(rr-4)*math.Sin(theta)))
	s.BresenhamLine(rx, ry, ex, ey, gfx.Green)
	s.FilledCircle(ex, ey, 2, gfx.Yellow)

	// Drawn through the drivers.Displayer adapter, which clips.
	disp := gfx.NewDisplay(s, nil)
	tinyfont.WriteLine(disp, d.tiny, int16(l.w/2+2), int16(l.bodyY+int(d.tiny.GetYAdvance())), "tinyfont", tinyInk)
}

func (d *dashboard) drawStatus(s *gfx.Surface, l layout) {
	y := l.h - l.statusH
	s.HLine(0, y, l.w, gfx.LightGray)
	status := fmt.Sprintf("%s f=%d t=%dms", s.Orientation(), d.frame, d.lastTick)
	status = fitText(fonts.Encode(status, charmap.ISO8859_1), d.small, l.w-12)
	s.PutString(2, y+2, gfx.Yellow, status, d.small, gfx.BackgroundSampled)
}

// fitText trims text until it and the trailing pixels PutChar paints fit in
// maxW.
func fitText(text string, f *gfx.Font, maxW int) string {
	for len(text) > 0 && gfx.StringWidth(text, f)+8 > maxW {
		text = text[:len(text)-1]
	}
	return text
}
