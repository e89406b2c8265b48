package hal

import "libgp/gfx"

// expandRGBA converts panel pixels into 8-bit RGBA, as image.RGBA.Pix and
// ebiten.Image.WritePixels expect.
func expandRGBA(dst []byte, src []uint16) {
	for i, p := range src {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		r, g, b := gfx.Color(p).RGB()
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}
