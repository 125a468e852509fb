package input

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bluerain/engine"
	"github.com/lixenwraith/bluerain/rain"
	"github.com/lixenwraith/bluerain/render"
)

// StatusHideDelay is how long the status line stays up after the last activity
const StatusHideDelay = 1500 * time.Millisecond

// Controls applies user input to the settings snapshot and tracks status-line visibility
// Owned by the main loop goroutine, not safe for concurrent use
type Controls struct {
	settings *rain.Settings
	keys     *KeyTable
	clock    engine.TimeProvider

	lastActivity time.Time
	pinned       bool // status line forced on
}

// NewControls creates controls writing into settings
// Nil keys select DefaultKeyTable, nil clock the system clock
func NewControls(settings *rain.Settings, keys *KeyTable, clock engine.TimeProvider) *Controls {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &Controls{
		settings:     settings,
		keys:         keys,
		clock:        clock,
		lastActivity: clock.Now(),
	}
}

// HandleEvent processes a tcell event and returns true when the user asked to quit
// Key and mouse events count as activity for the status line
func (c *Controls) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		c.Touch()
	}
	return false
}

// HandleKey resolves and applies a key press, returns true on quit
func (c *Controls) HandleKey(key tcell.Key, r rune) bool {
	c.Touch()
	return c.Apply(c.keys.Lookup(key, r))
}

// Apply performs an action on the settings, returns true on quit
func (c *Controls) Apply(a Action) bool {
	s := c.settings
	switch a {
	case ActionSpeed1, ActionSpeed2, ActionSpeed3, ActionSpeed4, ActionSpeed5:
		if slot := a.SpeedSlot(); slot < len(rain.Speeds) {
			s.TicksPerSecond = rain.Speeds[slot]
		}
	case ActionNextColor:
		s.ColorIndex = (s.ColorIndex + 1) % len(render.Palette)
	case ActionNextFont:
		s.Font = s.Font.Next()
	case ActionPause:
		s.Paused = !s.Paused
	case ActionToggleEmoji:
		s.EmojiVisible = !s.EmojiVisible
	case ActionToggleShadow:
		s.ShadowEnabled = !s.ShadowEnabled
	case ActionToggleStatus:
		c.pinned = !c.pinned
	case ActionQuit:
		return true
	}
	return false
}

// Touch records user activity, revealing the status line
func (c *Controls) Touch() {
	c.lastActivity = c.clock.Now()
}

// StatusVisible reports whether the status line should be drawn now
func (c *Controls) StatusVisible() bool {
	if c.pinned {
		return true
	}
	return c.clock.Now().Sub(c.lastActivity) < StatusHideDelay
}

// Pinned reports whether the status line is forced on
func (c *Controls) Pinned() bool {
	return c.pinned
}

// StatusLine describes the current settings followed by extra, usually registry counters
func (c *Controls) StatusLine(extra string) string {
	s := c.settings
	state := "running"
	if s.Paused {
		state = "paused"
	}
	line := fmt.Sprintf(" %s | speed %d/s | %s | %s | emoji %s | shadow %s",
		state, s.TicksPerSecond, s.ColorName(), s.Font, onOff(s.EmojiVisible), onOff(s.ShadowEnabled))
	if extra != "" {
		line += " | " + extra
	}
	return line
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
