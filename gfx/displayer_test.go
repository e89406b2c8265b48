package gfx

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"tinygo.org/x/drivers"
)

func TestDisplayClipsAndConverts(t *testing.T) {
	s := newTestSurface(8, 4)
	d := NewDisplay(s, nil)

	if w, h := d.Size(); w != 8 || h != 4 {
		t.Fatalf("Size=%d,%d", w, h)
	}
	d.SetPixel(-1, 0, color.RGBA{R: 255, A: 255})
	d.SetPixel(8, 0, color.RGBA{R: 255, A: 255})
	d.SetPixel(0, 4, color.RGBA{R: 255, A: 255})
	if n := countColor(s, Red); n != 0 {
		t.Fatalf("out-of-range pixels written: %d", n)
	}

	d.SetPixel(2, 1, color.RGBA{R: 255, A: 255})
	if s.GetColor(2, 1) != Red {
		t.Fatalf("SetPixel=%#04x want red", s.GetColor(2, 1))
	}
}

func TestDisplayFillRectangle(t *testing.T) {
	s := newTestSurface(8, 4)
	d := NewDisplay(s, nil)
	if err := d.FillRectangle(-2, 2, 5, 10, color.RGBA{G: 255, B: 255, A: 255}); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	want := RGB565(0, 255, 255)
	if n := countColor(s, want); n != 3*2 {
		t.Fatalf("filled=%d want 6", n)
	}
}

func TestDisplaySetRotation(t *testing.T) {
	s := newTestSurface(8, 4)
	d := NewDisplay(s, nil)

	if err := d.SetRotation(drivers.Rotation180); err != nil {
		t.Fatalf("SetRotation(180): %v", err)
	}
	if s.Orientation() != Rotated180 {
		t.Fatalf("orientation=%v", s.Orientation())
	}
	if err := d.SetRotation(drivers.Rotation90); err == nil {
		t.Fatalf("quarter turn accepted")
	}
	if s.Orientation() != Rotated180 {
		t.Fatalf("rejected rotation changed orientation")
	}
	if err := d.SetRotation(drivers.Rotation0); err != nil || s.Orientation() != Normal {
		t.Fatalf("SetRotation(0): %v %v", err, s.Orientation())
	}
}

func TestDisplayPresent(t *testing.T) {
	errPresent := errors.New("present")
	calls := 0
	d := NewDisplay(newTestSurface(2, 2), func() error {
		calls++
		return errPresent
	})
	if err := d.Display(); !errors.Is(err, errPresent) || calls != 1 {
		t.Fatalf("Display err=%v calls=%d", err, calls)
	}
	if err := NewDisplay(newTestSurface(2, 2), nil).Display(); err != nil {
		t.Fatalf("nil present: %v", err)
	}
}

func TestSurfaceImage(t *testing.T) {
	s := newTestSurface(6, 3)
	img := s.Image()
	if img.Bounds() != image.Rect(0, 0, 6, 3) {
		t.Fatalf("bounds=%v", img.Bounds())
	}

	draw.Draw(img, image.Rect(1, 1, 3, 2), image.NewUniform(color.RGBA{B: 255, A: 255}), image.Point{}, draw.Src)
	if s.GetColor(1, 1) != RGB565(0, 0, 255) || s.GetColor(2, 1) != RGB565(0, 0, 255) {
		t.Fatalf("draw.Draw did not reach the surface")
	}
	if s.GetColor(3, 1) != Black {
		t.Fatalf("draw.Draw spilled")
	}

	r, g, b, _ := img.At(1, 1).RGBA()
	if r != 0 || g != 0 || b != 0xFFFF {
		t.Fatalf("At=%d,%d,%d", r, g, b)
	}
	img.Set(10, 10, color.White)
	if _, _, _, a := img.At(-1, 0).RGBA(); a != 0xFFFF {
		t.Fatalf("outside At should be opaque black")
	}
}
