package gfx

// FillArea paints the region around (x, y) that is enclosed by border,
// scanning at most width/2 columns and height/2 rows outwards in each of the
// four quadrants (down-right, up-left, up-right, down-left).
//
// This is not a flood fill. Within a quadrant a row stops at its first
// border pixel, and once the probe column next to the anchor meets the
// border every remaining row of that quadrant is skipped. Concave borders
// are therefore not followed.
func (s *Surface) FillArea(x, y, height, width int, fill, border Color) {
	hw, hh := width/2, height/2

	// The probe column of each row is wherever the column cursor was left,
	// so the first row of a quadrant may probe a different column than the
	// rest.
	cx := x
	var xflag, yflag bool

	for cy := y; cy < y+hh; cy++ {
		if s.GetColor(cx, cy) == border {
			yflag = true
		}
		for cx = x; cx < x+hw; cx++ {
			if s.GetColor(cx, cy) == border {
				xflag = true
			}
			if !xflag && !yflag {
				s.SetPixel(cx, cy, fill)
			}
		}
		xflag = false
		cx = x
	}

	xflag, yflag = false, false
	for cy := y - 1; cy > y-hh; cy-- {
		if s.GetColor(cx, cy) == border {
			yflag = true
		}
		for cx = x - 1; cx > x-hw; cx-- {
			if s.GetColor(cx, cy) == border {
				xflag = true
			}
			if !xflag && !yflag {
				s.SetPixel(cx, cy, fill)
			}
		}
		xflag = false
		cx = x - 1
	}

	xflag, yflag = false, false
	cx = x + 1
	for cy := y - 1; cy > y-hh; cy-- {
		if s.GetColor(cx, cy) == border {
			yflag = true
		}
		for cx = x; cx < x+hw; cx++ {
			if s.GetColor(cx, cy) == border {
				xflag = true
			}
			if !xflag && !yflag {
				s.SetPixel(cx, cy, fill)
			}
		}
		xflag = false
		cx = x
	}

	xflag, yflag = false, false
	cx = x - 1
	for cy := y; cy < y+hh; cy++ {
		if s.GetColor(cx, cy) == border {
			yflag = true
		}
		for cx = x - 1; cx > x-hw; cx-- {
			if s.GetColor(cx, cy) == border {
				xflag = true
			}
			if !xflag && !yflag {
				s.SetPixel(cx, cy, fill)
			}
		}
		xflag = false
		cx = x - 1
	}
}
