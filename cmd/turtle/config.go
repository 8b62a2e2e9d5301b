package main

import (
	"bufio"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"turtle"
)

type Config struct {
	SaveDirectory string
	SaveImage     string
	Width         int
	Height        int
	Delay         int
	Speed         int
	Mode          string
	Shape         string
	ColorMode     float64
	LogFile       string
	Demo          string
}

func defaultConfig() *Config {
	return &Config{
		Width:     800,
		Height:    600,
		Delay:     turtle.StartDelay,
		Speed:     3,
		Mode:      "standard",
		Shape:     "arrow",
		ColorMode: 1,
		Demo:      "all",
	}
}

// loadConfig reads ~/.turtlerc over the defaults. SAVEIMAGE in the
// environment wins over the file.
func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		if file, err := os.Open(filepath.Join(homeDir, ".turtlerc")); err == nil {
			parseConfig(config, file, homeDir)
			file.Close()
		}
	}
	if v := os.Getenv("SAVEIMAGE"); v != "" {
		config.SaveImage = v
	}
	return config
}

func parseConfig(config *Config, r io.Reader, homeDir string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "saveimage", "save_image":
			config.SaveImage = value
		case "width":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.Width = n
			}
		case "height":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.Height = n
			}
		case "delay":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				config.Delay = n
			}
		case "speed":
			if n, err := strconv.Atoi(value); err == nil {
				config.Speed = n
			}
		case "mode":
			config.Mode = strings.ToLower(value)
		case "shape":
			config.Shape = value
		case "colormode", "color_mode":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				config.ColorMode = f
			}
		case "logfile", "log_file", "log":
			config.LogFile = expandPath(value, homeDir)
		case "demo":
			config.Demo = strings.ToLower(value)
		}
	}
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// parseFlags lets command-line flags override the loaded values.
func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("turtle", flag.ContinueOnError)
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.IntVar(&c.Delay, "delay", c.Delay, "pause after each redraw in milliseconds")
	fs.IntVar(&c.Speed, "speed", c.Speed, "initial turtle speed, 0..10")
	fs.StringVar(&c.Mode, "mode", c.Mode, "heading convention: standard or logo")
	fs.StringVar(&c.Shape, "shape", c.Shape, "initial turtle shape")
	fs.Float64Var(&c.ColorMode, "colormode", c.ColorMode, "color mode, 1 or 255")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write debug logs to this file")
	fs.StringVar(&c.Demo, "demo", c.Demo, "demo to run: 1, 2 or all")
	fs.StringVar(&c.SaveImage, "saveimage", c.SaveImage, "run without waiting and save the result as <name>.png")
	fs.StringVar(&c.SaveDirectory, "savedir", c.SaveDirectory, "directory for saved images")
	return fs.Parse(args)
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

// options turns the configuration into window options.
func (c *Config) options() (turtle.Options, error) {
	mode, err := turtle.ParseMode(c.Mode)
	if err != nil {
		return turtle.Options{}, err
	}
	opts := turtle.DefaultOptions()
	opts.CanvWidth, opts.CanvHeight = c.Width, c.Height
	opts.Mode = mode
	opts.Shape = c.Shape
	return opts, nil
}
