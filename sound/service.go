package sound

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/bluerain/engine"
	"github.com/lixenwraith/bluerain/status"
)

// Config controls the landing chime
type Config struct {
	Enabled bool
	Volume  float64       // linear gain, 1 = unchanged
	MinGap  time.Duration // minimum spacing between chimes
}

// DefaultConfig returns a muted chime at moderate volume
func DefaultConfig() *Config {
	return &Config{
		Enabled: false,
		Volume:  0.4,
		MinGap:  60 * time.Millisecond,
	}
}

// Service plays a short tone when a message lands in a column
// A missing audio device disables the service instead of failing startup
type Service struct {
	config *Config
	clock  engine.TimeProvider

	mu       sync.Mutex
	lastPlay time.Time
	ready    bool

	disabled atomic.Bool

	// play and closer are swapped out in tests
	play   func(beep.Streamer)
	open   func() error
	closer func()

	statPlayed  *atomic.Int64
	statLimited *atomic.Int64
}

// NewService creates the sound service, nil config selects defaults
func NewService(cfg *Config, clock engine.TimeProvider, reg *status.Registry) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Service{
		config: cfg,
		clock:  clock,
		play:   func(s beep.Streamer) { speaker.Play(s) },
		open: func() error {
			return speaker.Init(sampleRate, sampleRate.N(time.Second/10))
		},
		closer:      speaker.Close,
		statPlayed:  reg.Int("sound.played"),
		statLimited: reg.Int("sound.limited"),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "sound"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// Opens the speaker only when enabled; a device failure disables sound without error
func (s *Service) Init(args ...any) error {
	if !s.config.Enabled {
		s.disabled.Store(true)
		return nil
	}
	if err := s.open(); err != nil {
		log.Printf("sound: disabled: %v", err)
		s.disabled.Store(true)
		return nil
	}
	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		s.closer()
		s.ready = false
	}
	s.disabled.Store(true)
	return nil
}

// Disabled reports whether chimes are silent
func (s *Service) Disabled() bool {
	return s.disabled.Load()
}

// Chime plays the tone for col, returns false when muted or rate limited
func (s *Service) Chime(col int) bool {
	if s.disabled.Load() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return false
	}
	now := s.clock.Now()
	if !s.lastPlay.IsZero() && now.Sub(s.lastPlay) < s.config.MinGap {
		s.statLimited.Add(1)
		return false
	}

	tone, err := newChime(Pitch(col), s.config.Volume)
	if err != nil {
		log.Printf("sound: chime: %v", err)
		return false
	}
	s.lastPlay = now
	s.play(tone)
	s.statPlayed.Add(1)
	return true
}
