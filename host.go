package turtle

import (
	"sync"
	"time"
)

// HostBindings are the capabilities a Window takes from its host
// environment. Nil fields fall back to inert defaults: Sleep blocks with
// time.Sleep, everything else does nothing.
type HostBindings struct {
	// Sleep pauses the caller after a redraw.
	Sleep func(time.Duration)
	// After schedules fn once after d. A zero d runs fn when idle.
	After func(d time.Duration, fn func())
	// BindClick installs fn for clicks of button btn; a nil fn unbinds.
	// Coordinates are surface coordinates.
	BindClick func(btn int, fn func(x, y float64))
	// BindKey installs fn for releases of key; a nil fn unbinds.
	BindKey func(key string, fn func())
	// Focus directs key events to the canvas.
	Focus func()
	// Mainloop processes events until the host quits.
	Mainloop func() error
	// Quit makes Mainloop return.
	Quit func()
	// ExitOnClick runs the main loop until the canvas is clicked, then
	// calls bye.
	ExitOnClick func(bye func()) error
	// ScreenSize reports the size of the host display in pixels.
	ScreenSize func() (int, int)
	// Geometry places the window on the host display.
	Geometry func(width, height, x, y int)
}

func (h HostBindings) withDefaults() HostBindings {
	if h.Sleep == nil {
		h.Sleep = time.Sleep
	}
	if h.After == nil {
		h.After = func(time.Duration, func()) {}
	}
	if h.BindClick == nil {
		h.BindClick = func(int, func(float64, float64)) {}
	}
	if h.BindKey == nil {
		h.BindKey = func(string, func()) {}
	}
	if h.Focus == nil {
		h.Focus = func() {}
	}
	if h.Mainloop == nil {
		h.Mainloop = func() error { return nil }
	}
	if h.Quit == nil {
		h.Quit = func() {}
	}
	if h.ExitOnClick == nil {
		bindClick, mainloop := h.BindClick, h.Mainloop
		h.ExitOnClick = func(bye func()) error {
			bindClick(1, func(float64, float64) { bye() })
			return mainloop()
		}
	}
	if h.ScreenSize == nil {
		h.ScreenSize = func() (int, int) { return 1280, 1024 }
	}
	if h.Geometry == nil {
		h.Geometry = func(int, int, int, int) {}
	}
	return h
}

// NoticeBindings returns b with the timer, delay, main loop and
// exit-on-click capabilities replaced by stubs that only log a notice.
// Scripts then run to completion without waiting, which is what image
// capture needs. The delay notice is logged once.
func NoticeBindings(b HostBindings) HostBindings {
	b.After = func(time.Duration, func()) { notice("onTimer") }
	b.Mainloop = func() error { notice("mainloop"); return nil }
	b.ExitOnClick = func(func()) error { notice("exitOnClick"); return nil }
	var once sync.Once
	b.Sleep = func(time.Duration) { once.Do(func() { notice("_delay") }) }
	return b
}

func notice(name string) {
	Logger().Warn("called replaced function", "name", name)
}
