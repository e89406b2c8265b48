// Package gfx is an immediate-mode rasterizer for RGB565 framebuffers.
//
// Every call draws straight into a caller-owned []uint16 and returns; there is
// no retained state besides the surface orientation. All arithmetic is integer
// and all primitives are one-shot stamps.
//
// Coordinates are not checked. Callers must keep every pixel a primitive
// touches inside [0,w)x[0,h); anything else indexes outside the buffer and
// panics. A Surface is not safe for concurrent use.
package gfx

// Orientation selects how logical coordinates map to buffer offsets.
type Orientation uint8

const (
	// Normal is row-major addressing: x + w*y.
	Normal Orientation = iota
	// Rotated180 reflects every point through the buffer centre.
	Rotated180
)

func (o Orientation) String() string {
	switch o {
	case Normal:
		return "normal"
	case Rotated180:
		return "rotated180"
	default:
		return "unknown"
	}
}

// Logger receives diagnostic lines. hal.Logger satisfies it.
type Logger interface {
	WriteLineString(s string)
}

// Surface is a drawing view over a caller-owned RGB565 buffer.
type Surface struct {
	buf    []uint16
	w      int
	h      int
	orient Orientation
	log    Logger
}

// NewSurface wraps buf as a w x h surface. len(buf) must be at least w*h.
func NewSurface(buf []uint16, w, h int) *Surface {
	return &Surface{buf: buf, w: w, h: h}
}

func (s *Surface) Width() int       { return s.w }
func (s *Surface) Height() int      { return s.h }
func (s *Surface) Buffer() []uint16 { return s.buf }

// SetLogger installs a sink for diagnostics. nil disables them.
func (s *Surface) SetLogger(l Logger) { s.log = l }

func (s *Surface) Orientation() Orientation { return s.orient }

// SetOrientation changes addressing for every later SetPixel and GetColor.
func (s *Surface) SetOrientation(o Orientation) { s.orient = o }

// ToggleOrientation flips between Normal and Rotated180.
func (s *Surface) ToggleOrientation() {
	if s.orient == Normal {
		s.orient = Rotated180
	} else {
		s.orient = Normal
	}
}

func (s *Surface) offset(x, y int) int {
	if s.orient == Rotated180 {
		return (s.w - 1 - x) + s.w*(s.h-1-y)
	}
	return x + s.w*y
}

// SetPixel writes c at (x, y).
func (s *Surface) SetPixel(x, y int, c Color) {
	s.buf[s.offset(x, y)] = uint16(c)
}

// GetColor reads the pixel at (x, y) using the same mapping as SetPixel.
func (s *Surface) GetColor(x, y int) Color {
	return Color(s.buf[s.offset(x, y)])
}

// ClearBuffer zeroes all w*h pixels.
func (s *Surface) ClearBuffer() {
	buf := s.buf[:s.w*s.h]
	for i := range buf {
		buf[i] = 0
	}
}

// Fill paints the half-open rectangle [x1,x2)x[y1,y2).
func (s *Surface) Fill(x1, y1, x2, y2 int, c Color) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			s.SetPixel(x, y, c)
		}
	}
}
