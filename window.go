package turtle

import (
	"fmt"
	"sync/atomic"
)

// Options configure a Window.
type Options struct {
	Width, Height         int // window size in pixels
	CanvWidth, CanvHeight int // canvas size in pixels
	Title                 string
	Mode                  Mode
	Shape                 string
	UndoBuffer            int
}

// DefaultOptions returns the classic 800x600 configuration.
func DefaultOptions() Options {
	return Options{
		Width:      defaultWidth,
		Height:     defaultHeight,
		CanvWidth:  defaultWidth,
		CanvHeight: defaultHeight,
		Title:      defaultTitle,
		Mode:       ModeStandard,
		Shape:      "arrow",
		UndoBuffer: defaultUndo,
	}
}

// Window is the top-level owner of a drawing session: the host bindings,
// the running flag, and one Screen per surface. Closing the window drops
// the running flag, which makes every later update fail with ErrTerminated.
type Window struct {
	opts    Options
	host    HostBindings
	running atomic.Bool
	screens []*Screen

	width, height int
	x, y          int
}

// Open creates a window drawing on surface.
func Open(surface Surface, host HostBindings, opts Options) *Window {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = defaultWidth, defaultHeight
	}
	if opts.Shape == "" {
		opts.Shape = "arrow"
	}
	if opts.UndoBuffer < 0 {
		opts.UndoBuffer = 0
	}
	w := &Window{opts: opts, host: host.withDefaults()}
	w.running.Store(true)
	w.NewScreen(surface)
	w.WinSize(opts.Width, opts.Height, -20, -50)
	Logger().Info("window opened", "title", opts.Title, "width", opts.Width, "height", opts.Height)
	return w
}

// Screen returns the screen of the window's first surface.
func (w *Window) Screen() *Screen {
	return w.screens[0]
}

// NewScreen returns the screen drawing on surface, creating it on first use.
func (w *Window) NewScreen(surface Surface) *Screen {
	for _, s := range w.screens {
		if s.surface == surface {
			return s
		}
	}
	s := newScreen(w, surface)
	w.screens = append(w.screens, s)
	return s
}

// NewTurtle creates a turtle on the main screen using the window's default
// shape and mode.
func (w *Window) NewTurtle() (*Turtle, error) {
	return NewTurtle(w.Screen(), w.opts.Shape, w.opts.Mode)
}

// Running reports whether the window is still open.
func (w *Window) Running() bool {
	return w.running.Load()
}

// Close stops the window. Safe for concurrent use; later calls are no-ops.
func (w *Window) Close() {
	if !w.running.Swap(false) {
		return
	}
	w.host.Quit()
	forgetDefault(w)
	Logger().Info("window closed", "title", w.opts.Title)
}

// Bye closes the window.
func (w *Window) Bye() { w.Close() }

// Title returns the window title.
func (w *Window) Title() string { return w.opts.Title }

// WinSize sets the window size and places it at x, y. Negative offsets
// count from the right and bottom edges of the display.
func (w *Window) WinSize(width, height, x, y int) {
	w.width, w.height, w.x, w.y = width, height, x, y
	w.host.Geometry(width, height, x, y)
}

// Setup sizes the window and centers it on the display. Sizes in [0,1]
// are fractions of the display, larger values are pixels.
func (w *Window) Setup(width, height float64) error {
	if width <= 0 || height <= 0 {
		return argError("window size %vx%v", width, height)
	}
	sw, sh := w.host.ScreenSize()
	if width <= 1 {
		width *= float64(sw)
	}
	if height <= 1 {
		height *= float64(sh)
	}
	x := (float64(sw) - width) / 2
	y := (float64(sh) - height) / 2
	w.WinSize(int(width), int(height), int(x), int(y))
	return nil
}

// Geometry returns the window size and position.
func (w *Window) Geometry() (width, height, x, y int) {
	return w.width, w.height, w.x, w.y
}

// SetWorldCoordinates maps the rectangle (llx,lly)-(urx,ury) onto the
// main screen's canvas.
func (w *Window) SetWorldCoordinates(llx, lly, urx, ury float64) error {
	return w.Screen().SetWorldCoords(llx, lly, urx, ury)
}

// Mainloop hands control to the host until it quits.
func (w *Window) Mainloop() error {
	return w.host.Mainloop()
}

// ExitOnClick runs the main loop until the canvas is clicked, then closes
// the window.
func (w *Window) ExitOnClick() error {
	if err := w.host.ExitOnClick(w.Close); err != nil {
		return fmt.Errorf("exit on click: %w", err)
	}
	return nil
}

type pngSaver interface {
	SavePNG(path string) error
}

// SavePNG writes the main screen to path when its surface can render images.
func (w *Window) SavePNG(path string) error {
	s, ok := w.Screen().surface.(pngSaver)
	if !ok {
		return fmt.Errorf("surface %T cannot save images: %w", w.Screen().surface, ErrInvalidArgument)
	}
	return s.SavePNG(path)
}
