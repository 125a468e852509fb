package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bluerain/engine"
	"github.com/lixenwraith/bluerain/input"
	"github.com/lixenwraith/bluerain/rain"
	"github.com/lixenwraith/bluerain/render"
	"github.com/lixenwraith/bluerain/status"
)

// newSimApp builds an app over a simulation screen, skipping the tty checks of newApp
func newSimApp(t *testing.T, w, h int) (*app, tcell.SimulationScreen, *engine.MockTimeProvider) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(w, h)

	reg := status.NewRegistry()
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	settings := rain.DefaultSettings()
	surface := render.NewScreenSurface(sim, cellWidth)
	return &app{
		screen:   sim,
		surface:  surface,
		rain:     rain.NewEngine(surface, reg),
		settings: &settings,
		controls: input.NewControls(&settings, nil, clock),
		reg:      reg,
		clock:    clock,
	}, sim, clock
}

func bottomRow(sim tcell.SimulationScreen, w, h int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, h-1)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestAppResize(t *testing.T) {
	a, _, _ := newSimApp(t, 20, 10)
	if n := len(a.rain.Columns()); n != 10 {
		t.Fatalf("columns = %d, want 10", n)
	}
	if quit := a.handleEvent(tcell.NewEventResize(31, 12)); quit {
		t.Fatal("resize reported quit")
	}
	if n := len(a.rain.Columns()); n != 15 {
		t.Errorf("columns after resize = %d, want 15", n)
	}
}

func TestAppStatusLineWhilePaused(t *testing.T) {
	a, sim, clock := newSimApp(t, 80, 6)
	a.settings.Paused = true

	a.frame()
	clock.Advance(50 * time.Millisecond)
	a.frame()
	if row := bottomRow(sim, 80, 6); !strings.Contains(row, "paused") {
		t.Errorf("status row = %q, want paused status", row)
	}

	clock.Advance(input.StatusHideDelay)
	a.frame()
	if row := bottomRow(sim, 80, 6); strings.TrimSpace(row) != "" {
		t.Errorf("status row after auto-hide = %q, want blank", row)
	}
}

func TestAppFrameDrawsRain(t *testing.T) {
	a, sim, clock := newSimApp(t, 20, 10)
	if _, ok := a.rain.OnTextArrived("hey", *a.settings); !ok {
		t.Fatal("text not admitted")
	}

	a.frame()
	clock.Advance(a.settings.Interval())
	a.frame()

	if r, _, _, _ := sim.GetContent(0, 0); r != 'h' {
		t.Errorf("head glyph = %q, want h", r)
	}
}

func TestDriveAndWritePNG(t *testing.T) {
	surface, err := render.NewImageSurface(170, 102, render.DefaultCellSize)
	if err != nil {
		t.Fatal(err)
	}
	defer surface.Close()

	eng := rain.NewEngine(surface, nil)
	texts := make(chan string, 4)
	texts <- "digital rain"
	texts <- "bluesky"

	s := rain.DefaultSettings()
	s.TicksPerSecond = 60
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := drive(ctx, eng, texts, s, 6); err != nil {
		t.Fatalf("drive: %v", err)
	}

	path := filepath.Join(t.TempDir(), "rain.png")
	if err := writePNG(surface, path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 170 || b.Dy() != 102 {
		t.Errorf("png bounds = %v", b)
	}
}

func TestDriveStopsOnCancel(t *testing.T) {
	surface, err := render.NewImageSurface(34, 34, render.DefaultCellSize)
	if err != nil {
		t.Fatal(err)
	}
	defer surface.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := drive(ctx, rain.NewEngine(surface, nil), nil, rain.DefaultSettings(), 1000); err == nil {
		t.Error("drive ignored cancellation")
	}
}
