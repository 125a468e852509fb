package feed

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/bluerain/core"
	"github.com/lixenwraith/bluerain/status"
)

// Feed states published under "feed.state"
const (
	StateIdle       = "idle"
	StateConnecting = "connecting"
	StateLive       = "live"
	StateClosed     = "closed"
	StateError      = "error"
)

// Service runs a Source in the background and hands texts to the owner goroutine
// Delivery never blocks: when the channel is full the text is shed and counted
type Service struct {
	source Source
	out    chan string

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	statReceived *atomic.Int64
	statShed     *atomic.Int64
	statSkipped  *atomic.Int64
	statState    *status.AtomicString

	errMu sync.Mutex
	err   error
}

// NewService creates a feed service for source
// A nil registry gets a private one
func NewService(source Source, queueSize int, reg *status.Registry) *Service {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if queueSize < 1 {
		queueSize = 1
	}
	s := &Service{
		source:       source,
		out:          make(chan string, queueSize),
		done:         make(chan struct{}),
		statReceived: reg.Int("feed.received"),
		statShed:     reg.Int("feed.shed"),
		statSkipped:  reg.Int("feed.skipped"),
		statState:    reg.String("feed.state"),
	}
	s.statState.Store(StateIdle)
	if c, ok := source.(*Client); ok && c.OnSkip == nil {
		c.OnSkip = func(err error) {
			s.statSkipped.Add(1)
			log.Printf("feed: skipped message: %v", err)
		}
	}
	return s
}

// Name implements service.Service
func (s *Service) Name() string {
	return "feed"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
func (s *Service) Init(args ...any) error {
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.statState.Store(StateConnecting)

	core.Go(func() {
		defer close(s.done)
		err := s.source.Run(ctx, s.deliver)
		switch {
		case err != nil:
			log.Printf("feed: %v", err)
			s.setErr(err)
			s.statState.Store(StateError)
		default:
			log.Printf("feed: closed")
			s.statState.Store(StateClosed)
		}
	})
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	s.once.Do(func() {
		if s.cancel == nil {
			return
		}
		s.cancel()
		<-s.done
	})
	return nil
}

// Texts returns the delivery channel read by the owner goroutine
func (s *Service) Texts() <-chan string {
	return s.out
}

// Done is closed when the source has ended
func (s *Service) Done() <-chan struct{} {
	return s.done
}

// Err returns the error that ended the source, if any
func (s *Service) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

func (s *Service) setErr(err error) {
	s.errMu.Lock()
	s.err = err
	s.errMu.Unlock()
}

func (s *Service) deliver(text string) {
	s.statReceived.Add(1)
	if s.statState.Load() != StateLive {
		s.statState.Store(StateLive)
	}
	select {
	case s.out <- text:
	default:
		s.statShed.Add(1)
	}
}
