package app

import (
	"fmt"
	"image/png"
	"os"

	"libgp/gfx"
	"libgp/internal/termview"
)

func (d *dashboard) writeSnapshots(s *gfx.Surface) error {
	if d.cfg.PNG != "" {
		if err := writePNG(d.cfg.PNG, s); err != nil {
			return err
		}
		d.h.Logger().WriteLineString("app: wrote " + d.cfg.PNG)
	}
	if d.cfg.ANSI != nil {
		if err := termview.WriteOutput(d.cfg.ANSI, s, d.cfg.ANSICols); err != nil {
			return fmt.Errorf("app: ansi snapshot: %w", err)
		}
	}
	return nil
}

// writePNG encodes the surface in logical coordinates.
func writePNG(path string, s *gfx.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("app: png snapshot: %w", err)
	}
	if err := png.Encode(f, s.Image()); err != nil {
		f.Close()
		return fmt.Errorf("app: png snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("app: png snapshot: %w", err)
	}
	return nil
}
