package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// release fades the tail of a finite streamer linearly to silence
type release struct {
	streamer beep.Streamer
	position int
	total    int
	start    int
}

// newRelease wraps s, which must end after duration, fading over its last fade
func newRelease(s beep.Streamer, duration, fade time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &release{
		streamer: s,
		total:    total,
		start:    max(total-rate.N(fade), 0),
	}
}

func (r *release) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if r.position >= r.total {
			return i, false
		}
		if r.position >= r.start {
			vol := float64(r.total-r.position) / float64(r.total-r.start)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		r.position++
	}
	return n, ok
}

func (r *release) Err() error {
	return r.streamer.Err()
}
