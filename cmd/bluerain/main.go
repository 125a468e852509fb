package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/bluerain/config"
	"github.com/lixenwraith/bluerain/core"
	"github.com/lixenwraith/bluerain/feed"
	"github.com/lixenwraith/bluerain/service"
	"github.com/lixenwraith/bluerain/sound"
	"github.com/lixenwraith/bluerain/status"
)

// statusKeys are the counters shown on the status line
var statusKeys = []string{"feed.state", "feed.received", "rain.admitted", "rain.dropped", "rain.tps"}

func main() {
	// Terminal is restored by the registered cleanup before the report
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("bluerain", flag.ContinueOnError)
	opts := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(fs, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bluerain: %v\n", err)
		return 1
	}

	reg := status.NewRegistry()
	feedSvc, soundSvc := newServices(cfg, opts.stdin, reg)

	hub := service.NewHub()
	for _, svc := range []service.Service{feedSvc, soundSvc} {
		if err := hub.Register(svc); err != nil {
			fmt.Fprintf(os.Stderr, "bluerain: %v\n", err)
			return 1
		}
	}
	if err := hub.InitAll(); err != nil {
		fmt.Fprintf(os.Stderr, "bluerain: %v\n", err)
		return 1
	}

	if opts.snapshot != "" {
		w, h, err := parseSize(opts.size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bluerain: %v\n", err)
			return 1
		}
		if err := hub.StartAll(); err != nil {
			fmt.Fprintf(os.Stderr, "bluerain: %v\n", err)
			return 1
		}
		defer hub.StopAll()

		if err := runSnapshot(cfg, feedSvc, reg, opts.snapshot, w, h, opts.ticks); err != nil {
			fmt.Fprintf(os.Stderr, "bluerain: %v\n", err)
			return 1
		}
		return 0
	}

	a, err := newApp(cfg, feedSvc, soundSvc, reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bluerain: %v\n", err)
		return 1
	}
	if err := hub.StartAll(); err != nil {
		a.close()
		fmt.Fprintf(os.Stderr, "bluerain: %v\n", err)
		return 1
	}
	a.run()
	a.close()
	hub.StopAll()

	if err := feedSvc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "bluerain: feed: %v\n", err)
	}
	return 0
}

// newServices builds the feed and sound services from configuration
func newServices(cfg *config.Config, stdin bool, reg *status.Registry) (*feed.Service, *sound.Service) {
	var src feed.Source
	if stdin {
		src = feed.NewLineSource(os.Stdin, cfg.Feed.LineInterval.Duration)
	} else {
		src = feed.NewClient(cfg.FeedConfig())
	}
	return feed.NewService(src, cfg.Feed.QueueSize, reg), sound.NewService(cfg.SoundConfig(), nil, reg)
}
