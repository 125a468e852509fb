package engine

import "time"

// Scheduler decouples the presentation refresh cadence from the logical tick rate
// Presentation callbacks arrive as fast as the display refreshes; only some of them admit a tick
//
// The tick baseline is rebased by the remainder of the elapsed time rather than snapped to the
// callback time, so tick boundaries stay on a fixed grid and drift does not accumulate
type Scheduler struct {
	lastTick time.Time
	started  bool
	ticks    uint64
}

// NewScheduler creates a scheduler whose baseline is set by the first callback
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Interval returns the tick interval for a rate in ticks per second, zero for invalid rates
func Interval(ticksPerSecond int) time.Duration {
	if ticksPerSecond <= 0 {
		return 0
	}
	return time.Second / time.Duration(ticksPerSecond)
}

// Reset makes the next callback establish a new baseline
func (s *Scheduler) Reset() {
	s.started = false
}

// Frame is called on every presentation callback and reports whether a logical tick is due
// At most one tick is admitted per callback; the rate is read fresh on every call
func (s *Scheduler) Frame(now time.Time, ticksPerSecond int) bool {
	if !s.started {
		s.lastTick = now
		s.started = true
		return false
	}

	interval := Interval(ticksPerSecond)
	if interval == 0 {
		return false
	}

	elapsed := now.Sub(s.lastTick)
	if elapsed < interval {
		return false
	}

	s.lastTick = now.Add(-(elapsed % interval))
	s.ticks++
	return true
}

// LastTick returns the baseline of the most recent admitted tick
func (s *Scheduler) LastTick() time.Time {
	return s.lastTick
}

// Ticks returns the number of admitted ticks
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}
