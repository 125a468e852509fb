package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bluerain/config"
	"github.com/lixenwraith/bluerain/core"
	"github.com/lixenwraith/bluerain/engine"
	"github.com/lixenwraith/bluerain/feed"
	"github.com/lixenwraith/bluerain/input"
	"github.com/lixenwraith/bluerain/rain"
	"github.com/lixenwraith/bluerain/render"
	"github.com/lixenwraith/bluerain/sound"
	"github.com/lixenwraith/bluerain/status"
	"golang.org/x/term"
)

// frameInterval is the presentation callback period, independent of the logical tick rate
const frameInterval = time.Second / 60

// cellWidth is the number of terminal columns per rain lane, so wide glyphs fit
const cellWidth = 2

// app is the interactive terminal front end
// Everything runs on the goroutine calling run; other goroutines only send on channels
type app struct {
	screen   tcell.Screen
	surface  *render.ScreenSurface
	rain     *rain.Engine
	settings *rain.Settings
	controls *input.Controls
	feed     *feed.Service
	sound    *sound.Service
	reg      *status.Registry
	clock    engine.TimeProvider

	overlay string
}

func newApp(cfg *config.Config, feedSvc *feed.Service, soundSvc *sound.Service, reg *status.Registry) (*app, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, errors.New("stdout is not a terminal (use -snapshot for headless output)")
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	settings := cfg.Settings()
	clock := engine.NewMonotonicTimeProvider()
	surface := render.NewScreenSurface(screen, cellWidth)

	return &app{
		screen:   screen,
		surface:  surface,
		rain:     rain.NewEngine(surface, reg),
		settings: &settings,
		controls: input.NewControls(&settings, keys, clock),
		feed:     feedSvc,
		sound:    soundSvc,
		reg:      reg,
		clock:    clock,
	}, nil
}

func (a *app) close() {
	a.screen.Fini()
	core.SetCrashCleanup(nil)
}

// run is the owner loop; it returns when the user quits
func (a *app) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	feedDone := a.feed.Done()
	for {
		select {
		case ev := <-events:
			if a.handleEvent(ev) {
				return
			}

		case text := <-a.feed.Texts():
			if col, ok := a.rain.OnTextArrived(text, *a.settings); ok {
				a.sound.Chime(col)
			}

		case <-feedDone:
			log.Printf("feed: ended, state %s", a.reg.String("feed.state").Load())
			feedDone = nil

		case <-ticker.C:
			a.frame()
		}
	}
}

// handleEvent returns true when the user asked to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	if ev, ok := ev.(*tcell.EventResize); ok {
		w, h := ev.Size()
		a.rain.OnResize(w, h)
		a.screen.Sync()
		log.Printf("resize: %dx%d, %d columns", w, h, a.surface.Layout().Columns())
		return false
	}
	return a.controls.HandleEvent(ev)
}

// frame runs one presentation callback
// The status line is refreshed even while paused, when the engine presents nothing
func (a *app) frame() {
	overlay := ""
	if a.controls.StatusVisible() {
		overlay = a.controls.StatusLine(a.reg.Format(statusKeys...))
	}
	a.surface.SetOverlay(overlay)

	rendered := a.rain.Frame(a.clock.Now(), *a.settings)
	if !rendered && overlay != a.overlay {
		a.surface.Present()
	}
	a.overlay = overlay
}
