// Command turtle runs turtle graphics programs in the terminal.
package main

import (
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"turtle"
)

func main() {
	cfg := loadConfig()
	if err := cfg.parseFlags(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		turtle.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	win, t, loop, grid, err := openWindow(cfg)
	if err != nil {
		log.Fatal(err)
	}
	p := tea.NewProgram(
		newModel(win, loop, grid),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	grid.publish = func(f frame) { p.Send(frameMsg{f}) }

	go func() {
		p.Send(scriptDoneMsg{runScript(win, t, cfg)})
	}()

	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
	win.Close()
}

// openWindow makes the process-wide window on a terminal grid surface. With
// an image name configured, timers, delays and the main loop are replaced
// by notices so the script runs straight through.
func openWindow(cfg *Config) (*turtle.Window, *turtle.Turtle, *turtle.Loop, *gridSurface, error) {
	opts, err := cfg.options()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	grid := newGridSurface(opts.CanvWidth, opts.CanvHeight, 80, 23, nil)
	loop := turtle.NewLoop()
	host := loop.Bindings()
	if cfg.SaveImage != "" {
		host = turtle.NoticeBindings(host)
	}
	win := turtle.Open(grid, host, opts)

	screen := win.Screen()
	if err := screen.SetDelay(cfg.Delay); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := screen.SetColorMode(cfg.ColorMode); err != nil {
		return nil, nil, nil, nil, err
	}
	turtle.SetDefault(win)
	t := turtle.DefaultTurtle()
	t.SetSpeed(float64(cfg.Speed))
	return win, t, loop, grid, nil
}

// runScript runs the configured demos, then the event loop until the
// window closes, and finally saves the image if one was asked for.
func runScript(win *turtle.Window, t *turtle.Turtle, cfg *Config) error {
	err := runDemos(win, t, cfg.Demo)
	if err == nil {
		err = win.Mainloop()
	}
	if terminated(err) {
		err = nil
	}
	if err == nil && cfg.SaveImage != "" {
		err = saveImage(win, cfg)
	}
	return err
}
