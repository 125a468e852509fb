package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/bluerain/feed"
	"github.com/lixenwraith/bluerain/input"
	"github.com/lixenwraith/bluerain/rain"
	"github.com/lixenwraith/bluerain/render"
	"github.com/lixenwraith/bluerain/sound"
)

// Validation errors
var (
	ErrInvalidSpeed  = errors.New("invalid speed")
	ErrInvalidColor  = errors.New("invalid color")
	ErrInvalidFont   = errors.New("invalid font")
	ErrInvalidURL    = errors.New("invalid feed url")
	ErrInvalidQueue  = errors.New("invalid queue size")
	ErrInvalidVolume = errors.New("invalid volume")
	ErrUnknownKeys   = errors.New("unknown config keys")
)

// Duration decodes TOML strings such as "10s" or "150ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Rain is the [rain] section
type Rain struct {
	Speed  int    `toml:"speed"`
	Color  string `toml:"color"`
	Font   string `toml:"font"`
	Emoji  bool   `toml:"emoji"`
	Shadow bool   `toml:"shadow"`
}

// Feed is the [feed] section
type Feed struct {
	URL          string   `toml:"url"`
	DialTimeout  Duration `toml:"dial_timeout"`
	ReadLimit    int64    `toml:"read_limit"`
	QueueSize    int      `toml:"queue_size"`
	LineInterval Duration `toml:"line_interval"`
}

// Sound is the [sound] section
type Sound struct {
	Enabled bool     `toml:"enabled"`
	Volume  float64  `toml:"volume"`
	MinGap  Duration `toml:"min_gap"`
}

// Config is the complete file configuration
type Config struct {
	Rain  Rain              `toml:"rain"`
	Feed  Feed              `toml:"feed"`
	Sound Sound             `toml:"sound"`
	Keys  map[string]string `toml:"keys"`
}

// Default returns the built-in configuration
func Default() *Config {
	fc := feed.DefaultConfig()
	sc := sound.DefaultConfig()
	return &Config{
		Rain: Rain{
			Speed: rain.DefaultSpeed,
			Color: render.Palette[0].Name,
			Font:  render.FontMono.String(),
			Emoji: true,
		},
		Feed: Feed{
			URL:          fc.URL,
			DialTimeout:  Duration{fc.DialTimeout},
			ReadLimit:    fc.ReadLimit,
			QueueSize:    fc.QueueSize,
			LineInterval: Duration{fc.LineInterval},
		},
		Sound: Sound{
			Enabled: sc.Enabled,
			Volume:  sc.Volume,
			MinGap:  Duration{sc.MinGap},
		},
	}
}

// DefaultPath returns the per-user config location, empty when unknown
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bluerain", "config.toml")
}

// Load reads path over the defaults
// When optional is set a missing file yields the defaults without error
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("load config %s: %w: %s", path, ErrUnknownKeys, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and names
func (c *Config) Validate() error {
	if !rain.ValidSpeed(c.Rain.Speed) {
		return fmt.Errorf("%w: %d (want one of %v)", ErrInvalidSpeed, c.Rain.Speed, rain.Speeds)
	}
	if _, ok := render.ColorIndex(c.Rain.Color); !ok {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidColor, c.Rain.Color, strings.Join(render.ColorNames(), ", "))
	}
	if _, ok := render.FontByName(c.Rain.Font); !ok {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidFont, c.Rain.Font, strings.Join(render.FontNames(), ", "))
	}
	if !strings.HasPrefix(c.Feed.URL, "ws://") && !strings.HasPrefix(c.Feed.URL, "wss://") {
		return fmt.Errorf("%w: %q (want ws:// or wss://)", ErrInvalidURL, c.Feed.URL)
	}
	if c.Feed.QueueSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidQueue, c.Feed.QueueSize)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("%w: %g (want 0..1)", ErrInvalidVolume, c.Sound.Volume)
	}
	if _, err := input.LoadKeyConfig(c.Keys); err != nil {
		return err
	}
	return nil
}

// Settings converts the [rain] section to the startup settings snapshot
// Invalid names fall back to defaults; call Validate first to reject them
func (c *Config) Settings() rain.Settings {
	s := rain.DefaultSettings()
	if rain.ValidSpeed(c.Rain.Speed) {
		s.TicksPerSecond = c.Rain.Speed
	}
	if i, ok := render.ColorIndex(c.Rain.Color); ok {
		s.ColorIndex = i
	}
	if f, ok := render.FontByName(c.Rain.Font); ok {
		s.Font = f
	}
	s.EmojiVisible = c.Rain.Emoji
	s.ShadowEnabled = c.Rain.Shadow
	return s
}

// FeedConfig converts the [feed] section
func (c *Config) FeedConfig() *feed.Config {
	return &feed.Config{
		URL:          c.Feed.URL,
		DialTimeout:  c.Feed.DialTimeout.Duration,
		ReadLimit:    c.Feed.ReadLimit,
		QueueSize:    c.Feed.QueueSize,
		LineInterval: c.Feed.LineInterval.Duration,
	}
}

// SoundConfig converts the [sound] section
func (c *Config) SoundConfig() *sound.Config {
	return &sound.Config{
		Enabled: c.Sound.Enabled,
		Volume:  c.Sound.Volume,
		MinGap:  c.Sound.MinGap.Duration,
	}
}

// KeyTable returns the default bindings merged with [keys]
func (c *Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}
