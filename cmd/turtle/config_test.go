package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turtle"
)

func TestParseConfig(t *testing.T) {
	cfg := defaultConfig()
	input := `
# turtle settings
Save_Directory = ~/pictures
saveimage = capture
width = 640
height=480
delay = 0
speed = 7
mode = LOGO
shape = turtle
colormode = 255
demo = 2
width = -3
bogus line
unknown = 1
`
	parseConfig(cfg, strings.NewReader(input), "/home/ada")

	assert.Equal(t, filepath.Join("/home/ada", "pictures"), cfg.SaveDirectory)
	assert.Equal(t, "capture", cfg.SaveImage)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, 0, cfg.Delay)
	assert.Equal(t, 7, cfg.Speed)
	assert.Equal(t, "logo", cfg.Mode)
	assert.Equal(t, "turtle", cfg.Shape)
	assert.Equal(t, 255.0, cfg.ColorMode)
	assert.Equal(t, "2", cfg.Demo)
}

func TestParseFlagsOverride(t *testing.T) {
	cfg := defaultConfig()
	cfg.Width = 640
	require.NoError(t, cfg.parseFlags([]string{"-width", "300", "-demo", "1", "-saveimage", "out"}))
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, "1", cfg.Demo)
	assert.Equal(t, "out", cfg.SaveImage)

	assert.Error(t, cfg.parseFlags([]string{"-width", "wide"}))
}

func TestConfigOptions(t *testing.T) {
	cfg := defaultConfig()
	cfg.Mode = "logo"
	cfg.Width, cfg.Height = 320, 200
	opts, err := cfg.options()
	require.NoError(t, err)
	assert.Equal(t, turtle.ModeLogo, opts.Mode)
	assert.Equal(t, 320, opts.CanvWidth)
	assert.Equal(t, 200, opts.CanvHeight)

	cfg.Mode = "world"
	_, err = cfg.options()
	assert.ErrorIs(t, err, turtle.ErrInvalidArgument)
}

func TestGetSavePath(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, "a.png", cfg.GetSavePath("a.png"))

	dir := filepath.Join(t.TempDir(), "shots")
	cfg.SaveDirectory = dir
	assert.Equal(t, filepath.Join(dir, "a.png"), cfg.GetSavePath("a.png"))
	assert.DirExists(t, dir)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SAVEIMAGE", "fromenv")
	cfg := loadConfig()
	assert.Equal(t, "fromenv", cfg.SaveImage)
	assert.Equal(t, 800, cfg.Width)
}
