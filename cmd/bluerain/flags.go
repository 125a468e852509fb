package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/bluerain/config"
	"github.com/lixenwraith/bluerain/rain"
	"github.com/lixenwraith/bluerain/render"
)

// options holds parsed command-line flags
// Flags mirrored in the config file only override it when set explicitly
type options struct {
	configPath string
	url        string
	stdin      bool
	speed      int
	color      string
	font       string
	noEmoji    bool
	shadow     bool
	sound      bool
	debug      bool

	snapshot string
	ticks    int
	size     string
}

func registerFlags(fs *flag.FlagSet) *options {
	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "config file (default: user config dir bluerain/config.toml)")
	fs.StringVar(&o.url, "url", "", "Jetstream websocket URL")
	fs.BoolVar(&o.stdin, "stdin", false, "read messages from stdin, one per line, instead of the feed")
	fs.IntVar(&o.speed, "speed", rain.DefaultSpeed, fmt.Sprintf("ticks per second %v", rain.Speeds))
	fs.StringVar(&o.color, "color", render.Palette[0].Name, "rain color ("+strings.Join(render.ColorNames(), ", ")+")")
	fs.StringVar(&o.font, "font", render.FontMono.String(), "font family ("+strings.Join(render.FontNames(), ", ")+")")
	fs.BoolVar(&o.noEmoji, "no-emoji", false, "strip emoji from messages")
	fs.BoolVar(&o.shadow, "shadow", false, "glow around head glyphs")
	fs.BoolVar(&o.sound, "sound", false, "chime when a message lands")
	fs.BoolVar(&o.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	fs.StringVar(&o.snapshot, "snapshot", "", "render headless and write a PNG to this path")
	fs.IntVar(&o.ticks, "ticks", 200, "ticks to render in snapshot mode")
	fs.StringVar(&o.size, "size", "1024x576", "snapshot size in pixels, WxH")
	return o
}

// applyFlags copies explicitly set flags over the file configuration
func applyFlags(fs *flag.FlagSet, o *options, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "url":
			cfg.Feed.URL = o.url
		case "speed":
			cfg.Rain.Speed = o.speed
		case "color":
			cfg.Rain.Color = o.color
		case "font":
			cfg.Rain.Font = o.font
		case "no-emoji":
			cfg.Rain.Emoji = !o.noEmoji
		case "shadow":
			cfg.Rain.Shadow = o.shadow
		case "sound":
			cfg.Sound.Enabled = o.sound
		}
	})
}

// loadConfig reads the config file and applies flag overrides
// Without -config a missing default file is not an error
func loadConfig(fs *flag.FlagSet, o *options) (*config.Config, error) {
	path, optional := o.configPath, false
	if path == "" {
		path, optional = config.DefaultPath(), true
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return nil, err
	}
	applyFlags(fs, o, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseSize parses "WxH"
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("size %q: bad width", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: bad height", s)
	}
	return w, h, nil
}
