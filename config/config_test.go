package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/lixenwraith/bluerain/feed"
	"github.com/lixenwraith/bluerain/input"
	"github.com/lixenwraith/bluerain/rain"
	"github.com/lixenwraith/bluerain/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if diff := cmp.Diff(rain.DefaultSettings(), cfg.Settings()); diff != "" {
		t.Errorf("default settings mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(feed.DefaultConfig(), cfg.FeedConfig()); diff != "" {
		t.Errorf("default feed config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[rain]
speed = 60
color = "pink"
font = "italic"
emoji = false
shadow = true

[feed]
url = "ws://localhost:6008/subscribe"
dial_timeout = "3s"
queue_size = 8

[sound]
enabled = true
min_gap = "120ms"

[keys]
x = "quit"
space = "next_color"
`)
	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := rain.Settings{
		ColorIndex:     3,
		Font:           render.FontItalic,
		TicksPerSecond: 60,
		EmojiVisible:   false,
		ShadowEnabled:  true,
	}
	if diff := cmp.Diff(want, cfg.Settings()); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}

	fc := cfg.FeedConfig()
	if fc.URL != "ws://localhost:6008/subscribe" || fc.DialTimeout != 3*time.Second || fc.QueueSize != 8 {
		t.Errorf("feed config = %+v", fc)
	}
	if fc.ReadLimit != feed.DefaultConfig().ReadLimit {
		t.Errorf("unset read_limit = %d, want default", fc.ReadLimit)
	}

	sc := cfg.SoundConfig()
	if !sc.Enabled || sc.MinGap != 120*time.Millisecond || sc.Volume != 0.4 {
		t.Errorf("sound config = %+v", sc)
	}

	kt, err := cfg.KeyTable()
	if err != nil {
		t.Fatal(err)
	}
	if got := kt.Runes[' ']; got != input.ActionNextColor {
		t.Errorf("space = %v, want next_color", got)
	}
	if got := kt.Runes['p']; got != input.ActionPause {
		t.Errorf("p = %v, want pause kept from defaults", got)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"speed", "[rain]\nspeed = 7\n", ErrInvalidSpeed},
		{"color", "[rain]\ncolor = \"mauve\"\n", ErrInvalidColor},
		{"font", "[rain]\nfont = \"comic\"\n", ErrInvalidFont},
		{"url", "[feed]\nurl = \"http://example.com\"\n", ErrInvalidURL},
		{"queue", "[feed]\nqueue_size = 0\n", ErrInvalidQueue},
		{"volume", "[sound]\nvolume = 2.0\n", ErrInvalidVolume},
		{"unknown key", "[rain]\nsped = 20\n", ErrUnknownKeys},
		{"unknown section", "[colour]\nname = \"blue\"\n", ErrUnknownKeys},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), false)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadBadKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "[keys]\nx = \"launch\"\n"), false)
	if err == nil || !strings.Contains(err.Error(), "unknown action") {
		t.Errorf("Load err = %v, want unknown action", err)
	}
}

func TestLoadBadDuration(t *testing.T) {
	_, err := Load(writeConfig(t, "[feed]\ndial_timeout = \"soon\"\n"), false)
	if err == nil {
		t.Error("Load accepted an unparseable duration")
	}
}

func TestLoadMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := Load(missing, true)
	if err != nil {
		t.Fatalf("optional missing file: %v", err)
	}
	if cfg.Rain.Speed != rain.DefaultSpeed {
		t.Errorf("speed = %d, want default", cfg.Rain.Speed)
	}

	if _, err := Load(missing, false); err == nil {
		t.Error("required missing file should fail")
	}
}
