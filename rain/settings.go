package rain

import (
	"time"

	"github.com/lixenwraith/bluerain/engine"
	"github.com/lixenwraith/bluerain/render"
)

// Speeds are the selectable logical tick rates in ticks per second
var Speeds = []int{5, 10, 20, 30, 60}

// DefaultSpeed is the tick rate used when none is configured
const DefaultSpeed = 20

// FadeAlpha is the opacity of the black overlay composited every tick
const FadeAlpha = 0.06

// Settings is the tunables snapshot owned by the UI layer
// The engine reads it on every call and never mutates it
type Settings struct {
	ColorIndex     int // index into render.Palette
	Font           render.Font
	TicksPerSecond int
	Paused         bool
	EmojiVisible   bool
	ShadowEnabled  bool
}

// DefaultSettings mirrors the startup state of the controls
func DefaultSettings() Settings {
	return Settings{
		ColorIndex:     0,
		Font:           render.FontMono,
		TicksPerSecond: DefaultSpeed,
		EmojiVisible:   true,
	}
}

// Color returns the active rain color
func (s Settings) Color() render.RGB {
	if s.ColorIndex < 0 || s.ColorIndex >= len(render.Palette) {
		return render.Palette[0].RGB
	}
	return render.Palette[s.ColorIndex].RGB
}

// ColorName returns the active rain color name
func (s Settings) ColorName() string {
	if s.ColorIndex < 0 || s.ColorIndex >= len(render.Palette) {
		return render.Palette[0].Name
	}
	return render.Palette[s.ColorIndex].Name
}

// Interval returns the logical tick interval
func (s Settings) Interval() time.Duration {
	return engine.Interval(s.TicksPerSecond)
}

// SpeedIndex returns the position of the tick rate in Speeds, -1 when not listed
func (s Settings) SpeedIndex() int {
	return speedIndex(s.TicksPerSecond)
}

// ValidSpeed reports whether rate is one of Speeds
func ValidSpeed(rate int) bool {
	return speedIndex(rate) >= 0
}

func speedIndex(rate int) int {
	for i, v := range Speeds {
		if v == rate {
			return i
		}
	}
	return -1
}
