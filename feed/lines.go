package feed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// maxLineSize bounds a single line read from a line source
const maxLineSize = 64 * 1024

// LineSource delivers each non-blank line of a reader as one message
// Used for offline runs: piping a file or another program into the rain
type LineSource struct {
	r        io.Reader
	interval time.Duration
}

// NewLineSource creates a source pacing lines by interval, zero means no pacing
func NewLineSource(r io.Reader, interval time.Duration) *LineSource {
	return &LineSource{r: r, interval: interval}
}

// Run implements Source, returning nil at end of input
func (s *LineSource) Run(ctx context.Context, deliver func(text string)) error {
	sc := bufio.NewScanner(s.r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	var pace *time.Ticker
	if s.interval > 0 {
		pace = time.NewTicker(s.interval)
		defer pace.Stop()
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if pace != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-pace.C:
			}
		} else if ctx.Err() != nil {
			return nil
		}
		deliver(line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read lines: %w", err)
	}
	return nil
}
