package turtle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when a shape name is not registered on the screen.
	ErrInvalidShape = errors.New("turtle: no such shape")

	// ErrInvalidColor is returned when a color does not resolve to a known name
	// or to an RGB triple inside the current color mode.
	ErrInvalidColor = errors.New("turtle: bad color")

	// ErrInvalidArgument is returned for out-of-range or malformed arguments to
	// navigation, pen and screen calls.
	ErrInvalidArgument = errors.New("turtle: bad argument")

	// ErrTerminated is returned by any update once the window stopped running.
	// It unwinds animations and event loops.
	ErrTerminated = errors.New("turtle: terminated")
)

func argError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
