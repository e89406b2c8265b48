// Command gpdemo shows the libgp dashboard in a window, in the terminal, or
// headless.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/muesli/termenv"

	"libgp/app"
	"libgp/hal"
	"libgp/internal/buildinfo"
)

func main() {
	var (
		headless bool
		term     bool
		version  bool
		hz       int
		ticks    uint64
		width    int
		height   int
		scale    int
		ansi     bool
		ansiCols int
		cfg      app.Config
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.BoolVar(&term, "term", false, "Show the framebuffer in the terminal.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.IntVar(&hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless and terminal mode (0 = run forever).")
	flag.IntVar(&width, "width", hal.DefaultWidth, "Framebuffer width in pixels.")
	flag.IntVar(&height, "height", hal.DefaultHeight, "Framebuffer height in pixels.")
	flag.IntVar(&scale, "scale", 2, "Window zoom factor.")
	flag.BoolVar(&cfg.Rotate, "rotate", false, "Start with the panel rotated 180 degrees.")
	flag.StringVar(&cfg.PNG, "png", "", "Write the first frame to this PNG file.")
	flag.BoolVar(&ansi, "ansi", false, "Print the first frame to stdout as ANSI half blocks.")
	flag.IntVar(&ansiCols, "ansi-cols", 80, "Maximum width of the -ansi picture.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String("gpdemo"))
		return
	}
	if ansi {
		cfg.ANSI = termenv.NewOutput(os.Stdout)
		cfg.ANSICols = ansiCols
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case headless:
		err = hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Width:  width,
			Height: height,
			Hz:     hz,
			Ticks:  ticks,
		})
	case term:
		err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{
			Width:  width,
			Height: height,
			Hz:     hz,
			Ticks:  ticks,
		})
	default:
		err = hal.RunWindow(newApp, hal.WindowConfig{
			Width:  width,
			Height: height,
			Scale:  scale,
		})
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
