package gfx

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by primitives that exist in the API but do
// not draw yet.
var ErrNotImplemented = errors.New("not implemented")

// crossCircleRadius is the radius of the ring Cross always stamps.
const crossCircleRadius = 20

// Cross draws a plus sign of the given width centred on (x, y), enclosed in a
// fixed 20px-radius circle.
func (s *Surface) Cross(x, y, width int, c Color) {
	s.HLine(x-width/2, y, width, c)
	s.VLine(x, y-width/2, width, c)
	s.BresenhamCircle(x, y, crossCircleRadius, c)
}

// Square outlines a width x height rectangle centred on (x, y).
func (s *Surface) Square(x, y, width, height int, c Color) {
	s.HLine(x-width/2, y-height/2, width, c)
	s.HLine(x-width/2, y+height/2, width, c)
	s.VLine(x-width/2, y-height/2, height, c)
	s.VLine(x+width/2, y-height/2, height, c)
}

// circleSteps walks one quadrant of a radius r circle with the midpoint
// decision variable, calling plot for every (x, y) offset until y drops
// below zero.
func circleSteps(r int, plot func(x, y int)) {
	x, y := 0, r
	delta := 1 - 2*r
	for y >= 0 {
		plot(x, y)
		e := 2*(delta+y) - 1
		if delta < 0 && e <= 0 {
			x++
			delta += 2*x + 1
			continue
		}
		e = 2*(delta-x) - 1
		if delta > 0 && e > 0 {
			y--
			delta += 1 - 2*y
			continue
		}
		x++
		delta += 2 * (x - y)
		y--
	}
}

// BresenhamCircle strokes a circle of radius r around (x0, y0).
func (s *Surface) BresenhamCircle(x0, y0, r int, c Color) {
	circleSteps(r, func(x, y int) {
		s.SetPixel(x0+x, y0+y, c)
		s.SetPixel(x0+x, y0-y, c)
		s.SetPixel(x0-x, y0+y, c)
		s.SetPixel(x0-x, y0-y, c)
	})
}

// RoundedRect outlines a width x height rectangle centred on (x0, y0) with
// corners rounded to radius r. The vertical edges sit one pixel outside
// x0-width/2 and x0+width/2.
func (s *Surface) RoundedRect(x0, y0, width, height, r int, c Color) {
	s.HLine(x0-width/2+r, y0-height/2, width-r*2, c)
	s.HLine(x0-width/2+r, y0+height/2, width-r*2, c)
	s.VLine(x0-width/2-1, y0-height/2+r, height-r*2, c)
	s.VLine(x0+width/2+1, y0-height/2+r, height-r*2, c)

	dx, dy := width/2-r, height/2-r
	circleSteps(r, func(x, y int) {
		s.SetPixel(x0+x+dx, y0+y+dy, c)
		s.SetPixel(x0+x+dx, y0-y-dy, c)
		s.SetPixel(x0-x-dx, y0+y+dy, c)
		s.SetPixel(x0-x-dx, y0-y-dy, c)
	})
}

// discSteps walks an octant of a radius r disc, calling span for every
// (x, y) pair with x >= y.
func discSteps(r int, span func(x, y int)) {
	x, y := r, 0
	xChange := 1 - (r << 1)
	yChange := 0
	rError := 0
	for x >= y {
		span(x, y)
		y++
		rError += yChange
		yChange += 2
		if (rError<<1)+xChange > 0 {
			x--
			rError += xChange
			xChange += 2
		}
	}
}

// FilledCircle paints a solid disc of radius r around (x0, y0) one
// scanline at a time.
func (s *Surface) FilledCircle(x0, y0, r int, c Color) {
	discSteps(r, func(x, y int) {
		for i := x0 - x; i <= x0+x; i++ {
			s.SetPixel(i, y0+y, c)
			s.SetPixel(i, y0-y, c)
		}
		for i := x0 - y; i <= x0+y; i++ {
			s.SetPixel(i, y0+x, c)
			s.SetPixel(i, y0-x, c)
		}
	})
}

// RoundedFill paints the interior of a width x height rounded rectangle
// centred on (x0, y0): a cross of two rectangles plus the four corner
// quadrants of a radius r disc.
func (s *Surface) RoundedFill(x0, y0, width, height, r int, c Color) {
	s.Fill(x0-width/2+r, y0-height/2, x0+width/2-r, y0+height/2, c)
	s.Fill(x0-width/2, y0-height/2+r, x0+width/2+1, y0+height/2-r, c)

	dx, dy := width/2-r, height/2-r
	discSteps(r, func(x, y int) {
		for i := x0 - x - dx; i <= x0+x+dx; i++ {
			s.SetPixel(i, y0+y+dy, c)
			s.SetPixel(i, y0-y-dy, c)
		}
		for i := x0 - y - dx; i <= x0+y+dx; i++ {
			s.SetPixel(i, y0+x+dy, c)
			s.SetPixel(i, y0-x-dy, c)
		}
	})
}

// Triangle strokes an isosceles triangle inside width x height centred on
// (x, y) whose apex points towards side. Unknown sides draw nothing.
func (s *Surface) Triangle(x, y, width, height int, side Side, c Color) {
	tip, a, b, ok := triangleVertices(x, y, width, height, side)
	if !ok {
		return
	}
	s.BresenhamLine(tip.x, tip.y, a.x, a.y, c)
	s.BresenhamLine(a.x, a.y, b.x, b.y, c)
	s.BresenhamLine(b.x, b.y, tip.x, tip.y, c)
}

// Arrow strokes a block arrow centred on (x, y) pointing towards side.
// Unknown sides draw nothing.
func (s *Surface) Arrow(x, y, width, height int, side Side, c Color) {
	a, ok := arrowVertices(x, y, width, height, side)
	if !ok {
		return
	}
	s.line(a.tip, a.barb1, c)
	s.line(a.tip, a.barb2, c)

	s.line(a.barb1, a.s1, c)
	s.line(a.s2, a.barb2, c)

	s.line(a.s1, a.s3, c)
	s.line(a.s2, a.s4, c)

	s.line(a.s3, a.s4, c)
}

func (s *Surface) line(p, q point, c Color) {
	s.BresenhamLine(p.x, p.y, q.x, q.y, c)
}

// Arc would stroke the part of a radius r circle around (x, y) between
// angles a1 and a2. It is not implemented: nothing is drawn, a notice goes
// to the surface logger and ErrNotImplemented is returned.
func (s *Surface) Arc(x, y, a1, a2, r int, c Color) error {
	if s.log != nil {
		s.log.WriteLineString(fmt.Sprintf("gfx: arc (%d,%d) r=%d %d..%d: not implemented", x, y, r, a1, a2))
	}
	return ErrNotImplemented
}
