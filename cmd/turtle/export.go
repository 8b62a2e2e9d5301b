package main

import (
	"fmt"
	"strings"

	"turtle"
)

// saveImage writes the main screen as <name>.png into the save directory.
func saveImage(win *turtle.Window, cfg *Config) error {
	name := cfg.SaveImage
	if !strings.HasSuffix(strings.ToLower(name), ".png") {
		name += ".png"
	}
	path := cfg.GetSavePath(name)
	if err := win.SavePNG(path); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	return nil
}
