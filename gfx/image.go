package gfx

import (
	"image"
	"image/color"
	"image/draw"
)

// surfaceImage is a draw.Image view of a Surface in logical coordinates.
type surfaceImage struct {
	s *Surface
}

// Image returns a draw.Image backed by s. At and Set go through the active
// orientation; points outside the surface read as black and are not
// written.
func (s *Surface) Image() draw.Image { return surfaceImage{s: s} }

func (i surfaceImage) ColorModel() color.Model { return ColorModel }

func (i surfaceImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.s.w, i.s.h)
}

func (i surfaceImage) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(i.Bounds())) {
		return Black
	}
	return i.s.GetColor(x, y)
}

func (i surfaceImage) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(i.Bounds())) {
		return
	}
	i.s.SetPixel(x, y, ColorModel.Convert(c).(Color))
}
