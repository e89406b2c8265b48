package hal

import (
	"sync"

	"libgp/gfx"
)

type hostFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	buf      []uint16
	surf     *gfx.Surface
	presents uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	buf := make([]uint16, width*height)
	return &hostFramebuffer{
		width:  width,
		height: height,
		buf:    buf,
		surf:   gfx.NewSurface(buf, width, height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }

func (f *hostFramebuffer) Frame(fn func(s *gfx.Surface)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f.surf)
}

func (f *hostFramebuffer) Snapshot(dst []uint16) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copy(dst, f.buf)
}

// Present only counts frames; the host runners pull snapshots on their own
// schedule.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	f.presents++
	f.mu.Unlock()
	return nil
}

func (f *hostFramebuffer) presentCount() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}
