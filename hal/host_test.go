package hal

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"libgp/gfx"
)

func TestNewDefaultsSize(t *testing.T) {
	h := New(0, -1)
	fb := h.Display().Framebuffer()
	if fb.Width() != DefaultWidth || fb.Height() != DefaultHeight {
		t.Fatalf("size=%dx%d", fb.Width(), fb.Height())
	}
	if fb.Format() != PixelFormatRGB565 {
		t.Fatalf("format=%d", fb.Format())
	}
}

func TestFramebufferFrameAndSnapshot(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	fb.Frame(func(s *gfx.Surface) {
		s.SetPixel(1, 0, gfx.Red)
		s.SetOrientation(gfx.Rotated180)
		s.SetPixel(0, 0, gfx.Blue)
	})

	dst := make([]uint16, 8)
	if n := fb.Snapshot(dst); n != 8 {
		t.Fatalf("Snapshot copied %d", n)
	}
	if gfx.Color(dst[1]) != gfx.Red {
		t.Fatalf("normal pixel=%#04x", dst[1])
	}
	if gfx.Color(dst[7]) != gfx.Blue {
		t.Fatalf("rotated pixel=%#04x", dst[7])
	}

	_ = fb.Present()
	_ = fb.Present()
	if fb.presentCount() != 2 {
		t.Fatalf("presents=%d", fb.presentCount())
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newHost(2, 2, &buf)
	h.Logger().WriteLineString("one")
	h.Logger().WriteLineBytes([]byte("two"))
	if buf.String() != "one\ntwo\n" {
		t.Fatalf("log=%q", buf.String())
	}
}

func TestExpandRGBA(t *testing.T) {
	src := []uint16{uint16(gfx.White), uint16(gfx.Black), uint16(gfx.RGB565(255, 0, 0))}
	dst := make([]byte, len(src)*4)
	expandRGBA(dst, src)

	want := []byte{
		255, 255, 255, 255,
		0, 0, 0, 255,
		255, 0, 0, 255,
	}
	if !bytes.Equal(dst, want) {
		t.Fatalf("dst=%v", dst)
	}

	short := make([]byte, 5)
	expandRGBA(short, src)
	if short[4] != 0 {
		t.Fatalf("wrote past the end of dst")
	}
}

func TestHostTimeAdvance(t *testing.T) {
	ht := newHostTime()
	ht.advance(1500 * time.Microsecond)
	ht.advance(500 * time.Microsecond)
	if got := LatestTick(ht.Ticks(), 0); got != 2 {
		t.Fatalf("latest=%d want 2", got)
	}
	if got := LatestTick(ht.Ticks(), 7); got != 7 {
		t.Fatalf("empty channel should keep last, got %d", got)
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	h := newHost(8, 8, &bytes.Buffer{})
	steps := 0
	err := runHeadless(context.Background(), h, func(HAL) func() error {
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 3})
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps=%d want 3", steps)
	}
	if got := LatestTick(h.t.Ticks(), 0); got != 3 {
		t.Fatalf("ticks=%d want 3", got)
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	errStep := errors.New("step")
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return errStep }
	}, HeadlessConfig{Width: 4, Height: 4, Hz: 1000})
	if !errors.Is(err, errStep) {
		t.Fatalf("err=%v", err)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := runHeadless(ctx, newHost(4, 4, &bytes.Buffer{}), func(HAL) func() error { return nil }, HeadlessConfig{Hz: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v", err)
	}
}

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func TestRunTerminalDrawsHalfBlocks(t *testing.T) {
	screen := newSimScreen(t, 8, 4)
	h := newHost(8, 8, &bytes.Buffer{})
	err := runTerminal(context.Background(), screen, h, func(h HAL) func() error {
		return func() error {
			h.Display().Framebuffer().Frame(func(s *gfx.Surface) {
				s.SetPixel(0, 0, gfx.Red)
				s.SetPixel(0, 1, gfx.Blue)
			})
			return nil
		}
	}, TerminalConfig{Hz: 1000, Ticks: 1})
	if err != nil {
		t.Fatalf("runTerminal: %v", err)
	}

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != halfBlock {
		t.Fatalf("cell rune=%q", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcellColor(uint16(gfx.Red)) || bg != tcellColor(uint16(gfx.Blue)) {
		t.Fatalf("fg=%v bg=%v", fg, bg)
	}
}

func TestDrawHalfBlocksDownsamples(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	const w, h = 16, 8
	pix := make([]uint16, w*h)
	pix[2*w+4] = uint16(gfx.Yellow)

	drawHalfBlocks(screen, pix, w, h)

	// scale is 4: cell (1,0) samples top (4,0) and bottom (4,4).
	_, _, style, _ := screen.GetContent(1, 0)
	fg, _, _ := style.Decompose()
	if fg != tcellColor(0) {
		t.Fatalf("unsampled pixel leaked into cell")
	}
	pix[4*w+4] = uint16(gfx.Yellow)
	drawHalfBlocks(screen, pix, w, h)
	_, _, style, _ = screen.GetContent(1, 0)
	if _, bg, _ := style.Decompose(); bg != tcellColor(uint16(gfx.Yellow)) {
		t.Fatalf("bottom sample bg=%v", bg)
	}
}

func TestRunTerminalKeys(t *testing.T) {
	screen := newSimScreen(t, 8, 4)
	h := newHost(8, 8, &bytes.Buffer{})
	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	err := runTerminal(context.Background(), screen, h, func(HAL) func() error { return nil }, TerminalConfig{Hz: 1})
	if err != nil {
		t.Fatalf("runTerminal: %v", err)
	}

	var got []KeyEvent
	for len(h.kbd.ch) > 0 {
		got = append(got, <-h.kbd.ch)
	}
	if len(got) != 2 || got[0].Rune != 'r' || got[1].Code != KeyUp {
		t.Fatalf("events=%+v", got)
	}
}
