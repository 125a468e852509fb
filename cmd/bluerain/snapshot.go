package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/lixenwraith/bluerain/config"
	"github.com/lixenwraith/bluerain/feed"
	"github.com/lixenwraith/bluerain/rain"
	"github.com/lixenwraith/bluerain/render"
	"github.com/lixenwraith/bluerain/status"
)

// runSnapshot renders ticks logical ticks into a raster and writes it as PNG
// Messages arrive from the feed in real time; an interrupt writes what has been drawn so far
func runSnapshot(cfg *config.Config, feedSvc *feed.Service, reg *status.Registry, path string, width, height, ticks int) error {
	surface, err := render.NewImageSurface(width, height, render.DefaultCellSize)
	if err != nil {
		return err
	}
	defer surface.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	eng := rain.NewEngine(surface, reg)
	if err := drive(ctx, eng, feedSvc.Texts(), cfg.Settings(), ticks); err != nil {
		log.Printf("snapshot: %v", err)
	}
	return writePNG(surface, path)
}

// drive feeds texts to eng and presents frames until ticks have rendered
func drive(ctx context.Context, eng *rain.Engine, texts <-chan string, s rain.Settings, ticks int) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for done := 0; done < ticks; {
		select {
		case <-ctx.Done():
			return fmt.Errorf("stopped after %d of %d ticks", done, ticks)
		case text := <-texts:
			eng.OnTextArrived(text, s)
		case now := <-ticker.C:
			if eng.Frame(now, s) {
				done++
			}
		}
	}
	return nil
}

func writePNG(surface *render.ImageSurface, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := surface.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return nil
}
