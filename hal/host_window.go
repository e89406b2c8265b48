//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"

	"libgp/internal/buildinfo"
)

// WindowConfig controls the desktop preview window.
type WindowConfig struct {
	Width  int
	Height int
	// Scale is the integer zoom applied to the window; 0 means 2.
	Scale int
}

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	h := New(cfg.Width, cfg.Height).(*hostHAL)
	step := newApp(h)

	scale := cfg.Scale
	if scale <= 0 {
		scale = 2
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("libgp (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*scale, h.fb.height*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	pix     []byte
	fbImg   *ebiten.Image
	scratch []uint16
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.t.sync()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.pix = make([]byte, fb.width*fb.height*4)
		g.scratch = make([]uint16, fb.width*fb.height)
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.Snapshot(g.scratch)
	expandRGBA(g.pix, g.scratch)

	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
