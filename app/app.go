// Package app is the demo dashboard: every drawing primitive on one animated
// screen, driven by whichever hal runner hosts it.
package app

import (
	"errors"
	"fmt"

	"github.com/muesli/termenv"
	"golang.org/x/text/encoding/charmap"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"libgp/fonts"
	"libgp/gfx"
	"libgp/hal"
)

// Minimum framebuffer size the dashboard layout fits in.
const (
	MinWidth  = 160
	MinHeight = 120
)

var errTooSmall = errors.New("app: framebuffer too small")

type Config struct {
	// Rotate starts the panel in the 180 degree orientation.
	Rotate bool
	// PNG, when set, is written with the first frame.
	PNG string
	// ANSI, when set, receives a half-block picture of the first frame.
	ANSI *termenv.Output
	// ANSICols limits the ANSI picture width; 0 means the panel width.
	ANSICols int
}

type dashboard struct {
	h   hal.HAL
	cfg Config

	title *gfx.Font
	small *gfx.Font
	tiny  tinyfont.Fonter

	frame    uint64
	lastTick uint64
	arcOK    bool
	halted   bool
}

// New starts the dashboard with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig loads fonts and returns the per-tick step function.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	d := &dashboard{
		h:     h,
		cfg:   cfg,
		tiny:  &proggy.TinySZ8pt7b,
		arcOK: true,
	}
	d.title = d.loadFont("goregular", func() (*gfx.Font, error) {
		return fonts.GoRegular(12)
	})
	d.small = d.loadFont("proggy", func() (*gfx.Font, error) {
		return fonts.FromTinyfont(d.tiny, charmap.ISO8859_1)
	})

	fb := h.Display().Framebuffer()
	fb.Frame(func(s *gfx.Surface) {
		s.SetLogger(h.Logger())
		if cfg.Rotate {
			s.SetOrientation(gfx.Rotated180)
		}
	})
	return d.guard(d.step)
}

func (d *dashboard) loadFont(name string, load func() (*gfx.Font, error)) *gfx.Font {
	f, err := load()
	if err != nil {
		d.h.Logger().WriteLineString(fmt.Sprintf("app: font %s: %v; using basicfont", name, err))
		return fonts.Basic()
	}
	return f
}

func (d *dashboard) step() error {
	d.handleKeys()
	if t := d.h.Time(); t != nil {
		d.lastTick = hal.LatestTick(t.Ticks(), d.lastTick)
	}

	fb := d.h.Display().Framebuffer()
	if fb.Width() < MinWidth || fb.Height() < MinHeight {
		return fmt.Errorf("%w: %dx%d, need %dx%d", errTooSmall, fb.Width(), fb.Height(), MinWidth, MinHeight)
	}

	var err error
	fb.Frame(func(s *gfx.Surface) {
		d.draw(s)
		if d.frame == 0 {
			err = d.writeSnapshots(s)
		}
	})
	if err != nil {
		return err
	}
	d.frame++
	return fb.Present()
}

func (d *dashboard) handleKeys() {
	in := d.h.Input()
	if in == nil || in.Keyboard() == nil {
		return
	}
	ch := in.Keyboard().Events()
	for {
		select {
		case ev := <-ch:
			if ev.Press && (ev.Rune == 'r' || ev.Rune == 'R') {
				d.h.Display().Framebuffer().Frame(func(s *gfx.Surface) {
					s.ToggleOrientation()
				})
				d.h.Logger().WriteLineString("app: orientation toggled")
			}
		default:
			return
		}
	}
}
