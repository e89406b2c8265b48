package gfx

// HLine paints length pixels from (x, y) to the right, (x, y) included.
func (s *Surface) HLine(x, y, length int, c Color) {
	for i := x; i < x+length; i++ {
		s.SetPixel(i, y, c)
	}
}

// VLine paints length pixels from (x, y) downwards, (x, y) included.
func (s *Surface) VLine(x, y, length int, c Color) {
	for i := y; i < y+length; i++ {
		s.SetPixel(x, i, c)
	}
}

// DottedHLine covers length pixels to the right of (x, y), alternating
// dotLen painted pixels with gapLen skipped ones. The last dot is cut short
// if it would run past length.
func (s *Surface) DottedHLine(x, y, length, dotLen, gapLen int, c Color) {
	if dotLen <= 0 {
		return
	}
	period := dotLen + gapLen
	for i := 0; i < length; i++ {
		if i%period < dotLen {
			s.SetPixel(x+i, y, c)
		}
	}
}

// DottedVLine is DottedHLine running downwards.
func (s *Surface) DottedVLine(x, y, length, dotLen, gapLen int, c Color) {
	if dotLen <= 0 {
		return
	}
	period := dotLen + gapLen
	for i := 0; i < length; i++ {
		if i%period < dotLen {
			s.SetPixel(x, y+i, c)
		}
	}
}

// BresenhamLine rasterizes the segment (x0,y0)-(x1,y1) with both endpoints
// painted.
func (s *Surface) BresenhamLine(x0, y0, x1, y1 int, c Color) {
	dx, sx := abs(x1-x0), 1
	if x0 >= x1 {
		sx = -1
	}
	dy, sy := abs(y1-y0), 1
	if y0 >= y1 {
		sy = -1
	}
	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}

	for {
		s.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x0 += sx
		}
		if e2 < dy {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
