package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	sampleRate = beep.SampleRate(44100)

	chimeDuration = 60 * time.Millisecond
	chimeRelease  = 45 * time.Millisecond

	// baseFrequency is A4; columns climb a pentatonic scale from here
	baseFrequency = 440.0
)

// pentatonic semitone offsets within one octave
var pentatonic = [...]int{0, 2, 4, 7, 9}

// octaves spanned before the scale wraps back to baseFrequency
const octaves = 2

// Pitch maps a column index to a frequency on a two-octave pentatonic scale
func Pitch(col int) float64 {
	if col < 0 {
		col = -col
	}
	step := col % (len(pentatonic) * octaves)
	octave := step / len(pentatonic)
	semitone := pentatonic[step%len(pentatonic)] + 12*octave
	return baseFrequency * math.Pow(2, float64(semitone)/12)
}

// newChime builds a short decaying sine tone at freq
func newChime(freq, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	tone := beep.Take(sampleRate.N(chimeDuration), sine)
	shaped := &release{
		streamer: tone,
		total:    sampleRate.N(chimeDuration),
		release:  sampleRate.N(chimeRelease),
	}
	if volume <= 0 {
		return &effects.Volume{Streamer: shaped, Base: 2, Silent: true}, nil
	}
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: math.Log2(volume)}, nil
}

// release fades the tail of a stream linearly to silence
type release struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func (r *release) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.streamer.Stream(samples)
	start := r.total - r.release
	for i := 0; i < n; i++ {
		if r.position >= start && r.release > 0 {
			vol := float64(r.total-r.position) / float64(r.release)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		r.position++
	}
	return n, ok
}

func (r *release) Err() error { return r.streamer.Err() }
