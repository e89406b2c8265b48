package gfx

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
)

var errRotation = errors.New("gfx: only 0 and 180 degree rotation supported")

// Display adapts a Surface to the TinyGo drivers.Displayer interface so that
// tinyfont, tinydraw and friends can render through the surface's
// orientation.
//
// Unlike the Surface primitives, Display clips: the drivers ecosystem
// assumes out-of-range pixels are dropped.
type Display struct {
	s       *Surface
	present func() error
}

var _ drivers.Displayer = (*Display)(nil)

// NewDisplay wraps s. present is called by Display; it may be nil.
func NewDisplay(s *Surface, present func() error) *Display {
	return &Display{s: s, present: present}
}

// Surface returns the wrapped surface.
func (d *Display) Surface() *Surface { return d.s }

func (d *Display) Size() (x, y int16) {
	return int16(d.s.w), int16(d.s.h)
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= d.s.w || iy >= d.s.h {
		return
	}
	d.s.SetPixel(ix, iy, FromRGBA(c))
}

func (d *Display) Display() error {
	if d.present == nil {
		return nil
	}
	return d.present()
}

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, d.s.w)
	y0 := clampInt(int(y), 0, d.s.h)
	x1 := clampInt(int(x)+int(width), 0, d.s.w)
	y1 := clampInt(int(y)+int(height), 0, d.s.h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	d.s.Fill(x0, y0, x1, y1, FromRGBA(c))
	return nil
}

// SetRotation maps drivers.Rotation0 and Rotation180 onto the surface
// orientation. Quarter turns would change the surface size and are refused.
func (d *Display) SetRotation(rotation drivers.Rotation) error {
	switch rotation {
	case drivers.Rotation0:
		d.s.SetOrientation(Normal)
	case drivers.Rotation180:
		d.s.SetOrientation(Rotated180)
	default:
		return errRotation
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
