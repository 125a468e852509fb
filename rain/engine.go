package rain

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/bluerain/engine"
	"github.com/lixenwraith/bluerain/render"
	"github.com/lixenwraith/bluerain/status"
)

// tpsWeight is the smoothing weight of the measured tick rate
const tpsWeight = 0.1

// Engine owns the lanes and drives them from presentation callbacks, text arrivals and resizes
// Not safe for concurrent use: all calls must come from one goroutine, each running to completion
type Engine struct {
	columns   Columns
	surface   render.Surface
	renderer  *Renderer
	scheduler *engine.Scheduler
	font      render.Font

	lastRender time.Time

	statAdmitted *atomic.Int64
	statDropped  *atomic.Int64
	statIgnored  *atomic.Int64
	statTicks    *atomic.Int64
	statColumns  *atomic.Int64
	statTPS      *status.AtomicFloat
}

// NewEngine creates an engine sized to the surface, all lanes idle
// A nil registry gets a private one
func NewEngine(surface render.Surface, reg *status.Registry) *Engine {
	if reg == nil {
		reg = status.NewRegistry()
	}
	e := &Engine{
		surface:      surface,
		renderer:     NewRenderer(surface),
		scheduler:    engine.NewScheduler(),
		font:         render.FontMono,
		statAdmitted: reg.Int("rain.admitted"),
		statDropped:  reg.Int("rain.dropped"),
		statIgnored:  reg.Int("rain.ignored"),
		statTicks:    reg.Int("rain.ticks"),
		statColumns:  reg.Int("rain.columns"),
		statTPS:      reg.Float("rain.tps"),
	}
	surface.SetFont(e.font)
	e.columns = NewColumns(surface.Layout().Columns())
	e.statColumns.Store(int64(len(e.columns)))
	return e
}

// OnTextArrived offers a message to the lanes
// While paused the text is ignored, never queued for later
// Returns the receiving lane index, or false when the text was not placed
func (e *Engine) OnTextArrived(text string, s Settings) (int, bool) {
	if s.Paused {
		e.statIgnored.Add(1)
		return -1, false
	}
	i, ok := e.columns.Admit(text)
	if ok {
		e.statAdmitted.Add(1)
	} else {
		e.statDropped.Add(1)
	}
	return i, ok
}

// OnResize applies new viewport dimensions, keeping lane state by index
func (e *Engine) OnResize(width, height int) {
	e.surface.Resize(width, height)
	e.surface.SetFont(e.font)
	e.columns = e.columns.Resize(e.surface.Layout().Columns())
	e.statColumns.Store(int64(len(e.columns)))
}

// Frame handles one presentation callback and reports whether a tick was rendered
// While paused the scheduler keeps its timing but nothing moves
func (e *Engine) Frame(now time.Time, s Settings) bool {
	if !e.scheduler.Frame(now, s.TicksPerSecond) {
		return false
	}
	if s.Paused {
		e.lastRender = time.Time{}
		return false
	}

	if s.Font != e.font {
		e.font = s.Font
		e.surface.SetFont(s.Font)
	}

	e.renderer.Tick(e.columns, s)
	e.surface.Present()

	e.statTicks.Add(1)
	if !e.lastRender.IsZero() {
		if dt := now.Sub(e.lastRender); dt > 0 {
			e.statTPS.Smooth(float64(time.Second)/float64(dt), tpsWeight)
		}
	}
	e.lastRender = now
	return true
}

// Columns returns a copy of the lane state
func (e *Engine) Columns() Columns {
	return e.columns.Clone()
}

// Surface returns the drawing target
func (e *Engine) Surface() render.Surface {
	return e.surface
}
