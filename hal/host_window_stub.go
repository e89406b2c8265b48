//go:build !cgo

package hal

import "fmt"

// WindowConfig controls the desktop preview window.
type WindowConfig struct {
	Width  int
	Height int
	Scale  int
}

func RunWindow(_ func(h HAL) func() error, _ WindowConfig) error {
	return fmt.Errorf("window mode requires cgo (build/run with CGO_ENABLED=1): %w", ErrNotImplemented)
}
