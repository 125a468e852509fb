package sound

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/bluerain/engine"
	"github.com/lixenwraith/bluerain/status"
)

func TestPitch(t *testing.T) {
	tests := []struct {
		col  int
		want float64
	}{
		{0, 440},
		{3, 440 * math.Pow(2, 7.0/12)},
		{5, 880},
		{10, 440},
		{-5, 880},
	}
	for _, tt := range tests {
		if got := Pitch(tt.col); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Pitch(%d) = %f, want %f", tt.col, got, tt.want)
		}
	}
}

func TestPitchRisesWithinScale(t *testing.T) {
	for col := 1; col < len(pentatonic)*octaves; col++ {
		if Pitch(col) <= Pitch(col-1) {
			t.Errorf("Pitch(%d) = %f not above Pitch(%d) = %f", col, Pitch(col), col-1, Pitch(col-1))
		}
	}
}

// newTestService returns an enabled service with the device stubbed out
func newTestService(t *testing.T, clock engine.TimeProvider) (*Service, *[]beep.Streamer) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Enabled = true
	s := NewService(cfg, clock, status.NewRegistry())
	played := &[]beep.Streamer{}
	s.open = func() error { return nil }
	s.closer = func() {}
	s.play = func(st beep.Streamer) { *played = append(*played, st) }
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return s, played
}

func TestChimeRateLimit(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	s, played := newTestService(t, clock)

	if !s.Chime(0) {
		t.Fatal("first chime should play")
	}
	clock.Advance(30 * time.Millisecond)
	if s.Chime(1) {
		t.Error("chime inside MinGap should be limited")
	}
	clock.Advance(30 * time.Millisecond)
	if !s.Chime(2) {
		t.Error("chime after MinGap should play")
	}
	if len(*played) != 2 {
		t.Errorf("played %d, want 2", len(*played))
	}
}

func TestChimeStreamLength(t *testing.T) {
	s, played := newTestService(t, engine.NewMockTimeProvider(time.Unix(0, 0)))
	s.Chime(4)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := (*played)[0].Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := sampleRate.N(chimeDuration); total != want {
		t.Errorf("chime length = %d samples, want %d", total, want)
	}
}

func TestDisabledIsNoOp(t *testing.T) {
	s := NewService(nil, nil, nil)
	opened := false
	s.open = func() error { opened = true; return nil }
	s.play = func(beep.Streamer) { t.Error("disabled service played") }

	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	if opened {
		t.Error("disabled service opened the speaker")
	}
	if s.Chime(0) {
		t.Error("disabled Chime returned true")
	}
}

func TestDeviceFailureDisables(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	s := NewService(cfg, nil, nil)
	s.open = func() error { return errors.New("no audio device") }

	if err := s.Init(); err != nil {
		t.Fatalf("Init should swallow device errors, got %v", err)
	}
	if !s.Disabled() {
		t.Error("service not disabled after device failure")
	}
}

func TestStopSilences(t *testing.T) {
	s, _ := newTestService(t, engine.NewMockTimeProvider(time.Unix(0, 0)))
	closed := 0
	s.closer = func() { closed++ }
	s.Stop()
	s.Stop()
	if closed != 1 {
		t.Errorf("closer called %d times, want 1", closed)
	}
	if s.Chime(0) {
		t.Error("Chime after Stop returned true")
	}
}
