package gfx

import "testing"

func newTestSurface(w, h int) *Surface {
	return NewSurface(make([]uint16, w*h), w, h)
}

func countColor(s *Surface, c Color) int {
	n := 0
	for _, p := range s.Buffer() {
		if Color(p) == c {
			n++
		}
	}
	return n
}

func TestRGB565(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    Color
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xFFFF},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
		{0x12, 0x34, 0x56, 0x11AA},
	}
	for _, tt := range tests {
		if got := RGB565(tt.r, tt.g, tt.b); got != tt.want {
			t.Fatalf("RGB565(%d,%d,%d)=%#04x want %#04x", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestColorRGBExpandsFullRange(t *testing.T) {
	r, g, b := White.RGB()
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("white=%d,%d,%d", r, g, b)
	}
	_, _, _, a := Red.RGBA()
	if a != 0xFFFF {
		t.Fatalf("alpha=%#x want opaque", a)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	const w, h = 7, 5
	for _, o := range []Orientation{Normal, Rotated180} {
		s := newTestSurface(w, h)
		s.SetOrientation(o)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				s.SetPixel(x, y, Color(1+x+y*w))
			}
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if got := s.GetColor(x, y); got != Color(1+x+y*w) {
					t.Fatalf("%v: GetColor(%d,%d)=%d want %d", o, x, y, got, 1+x+y*w)
				}
			}
		}
	}
}

func TestRotatedAddressingReflectsThroughCentre(t *testing.T) {
	const w, h = 9, 4
	s := newTestSurface(w, h)
	s.SetOrientation(Rotated180)

	s.SetPixel(0, 0, Red)
	if Color(s.Buffer()[w*h-1]) != Red {
		t.Fatalf("(0,0) should land on the last pixel")
	}
	s.SetPixel(w-1, h-1, Green)
	if Color(s.Buffer()[0]) != Green {
		t.Fatalf("(w-1,h-1) should land on the first pixel")
	}
	s.SetPixel(2, 1, Blue)
	if Color(s.Buffer()[(w-1-2)+w*(h-1-1)]) != Blue {
		t.Fatalf("(2,1) misplaced")
	}

	// Reads use the surface size too, not a fixed panel resolution.
	s.SetOrientation(Normal)
	if s.GetColor(w-1, h-1) != Red {
		t.Fatalf("normal read of reflected pixel")
	}
}

func TestToggleOrientationTwice(t *testing.T) {
	s := newTestSurface(4, 4)
	s.ToggleOrientation()
	if s.Orientation() != Rotated180 {
		t.Fatalf("orientation=%v after one toggle", s.Orientation())
	}
	s.ToggleOrientation()
	if s.Orientation() != Normal {
		t.Fatalf("orientation=%v after two toggles", s.Orientation())
	}
	s.SetPixel(1, 2, Yellow)
	if Color(s.Buffer()[1+4*2]) != Yellow {
		t.Fatalf("double toggle did not restore normal addressing")
	}
}

func TestClearBuffer(t *testing.T) {
	s := newTestSurface(5, 3)
	for i := range s.Buffer() {
		s.Buffer()[i] = 0xABCD
	}
	s.ClearBuffer()
	if n := countColor(s, 0); n != 15 {
		t.Fatalf("cleared=%d want 15", n)
	}
}

func TestClearBufferLeavesSpareTail(t *testing.T) {
	buf := make([]uint16, 5*3+2)
	buf[15], buf[16] = 7, 7
	s := NewSurface(buf, 5, 3)
	s.ClearBuffer()
	if buf[15] != 7 || buf[16] != 7 {
		t.Fatalf("ClearBuffer wrote past w*h")
	}
}

func TestFillHalfOpen(t *testing.T) {
	s := newTestSurface(10, 10)
	s.Fill(2, 3, 5, 7, White)
	if n := countColor(s, White); n != 3*4 {
		t.Fatalf("filled=%d want 12", n)
	}
	if s.GetColor(5, 3) == White || s.GetColor(2, 7) == White {
		t.Fatalf("Fill painted its exclusive edge")
	}
	if s.GetColor(4, 6) != White {
		t.Fatalf("Fill missed inner corner")
	}
}
