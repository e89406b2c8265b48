package hal

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"

	"libgp/gfx"
)

// TerminalConfig controls the terminal preview runner.
type TerminalConfig struct {
	Width  int
	Height int
	Hz     int
	// Ticks stops the run after that many frames; 0 runs until Escape,
	// Ctrl+C or ctx.
	Ticks uint64
}

// halfBlock shows the upper pixel as foreground and the lower one as
// background, so one cell carries two panel rows.
const halfBlock = '▀'

var tcellKeys = map[tcell.Key]KeyCode{
	tcell.KeyUp:        KeyUp,
	tcell.KeyDown:      KeyDown,
	tcell.KeyLeft:      KeyLeft,
	tcell.KeyRight:     KeyRight,
	tcell.KeyEnter:     KeyEnter,
	tcell.KeyBackspace: KeyBackspace,
	tcell.KeyTab:       KeyTab,
	tcell.KeyHome:      KeyHome,
	tcell.KeyEnd:       KeyEnd,
	tcell.KeyF1:        KeyF1,
	tcell.KeyF2:        KeyF2,
	tcell.KeyF3:        KeyF3,
}

// RunTerminal shows the framebuffer in the controlling terminal using
// half-block cells, downsampled to fit. Logging is discarded while the
// screen is active.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	h := newHost(cfg.Width, cfg.Height, io.Discard)
	return runTerminal(ctx, screen, h, newApp, cfg)
}

func runTerminal(ctx context.Context, screen tcell.Screen, h *hostHAL, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid terminal hz: %d", cfg.Hz)
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	step := newApp(h)
	scratch := make([]uint16, h.fb.width*h.fb.height)
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if done := handleTerminalEvent(screen, h.kbd, ev); done {
				return nil
			}
		case <-t.C:
			h.t.sync()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			h.fb.Snapshot(scratch)
			drawHalfBlocks(screen, scratch, h.fb.width, h.fb.height)
			screen.Show()
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func handleTerminalEvent(screen tcell.Screen, kbd *hostKeyboard, ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			kbd.push(KeyEvent{Press: true, Rune: ev.Rune()})
		default:
			if code, ok := tcellKeys[ev.Key()]; ok {
				kbd.push(KeyEvent{Code: code, Press: true})
			}
		}
	}
	return false
}

// drawHalfBlocks samples the w x h panel onto the screen with a uniform
// integer step so the whole panel fits.
func drawHalfBlocks(screen tcell.Screen, pix []uint16, w, h int) {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	scale := max(ceilDiv(w, cols), ceilDiv(h, 2*rows), 1)

	for cy := 0; cy < rows; cy++ {
		top := 2 * cy * scale
		bottom := (2*cy + 1) * scale
		for cx := 0; cx < cols; cx++ {
			x := cx * scale
			if x >= w || top >= h {
				screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault)
				continue
			}
			bg := tcell.ColorBlack
			if bottom < h {
				bg = tcellColor(pix[bottom*w+x])
			}
			style := tcell.StyleDefault.Foreground(tcellColor(pix[top*w+x])).Background(bg)
			screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

func tcellColor(p uint16) tcell.Color {
	r, g, b := gfx.Color(p).RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
