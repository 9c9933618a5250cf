package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/impact/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// ImpactPlayer voices collision impulses as short clicks
// Every method is safe to call before Initialize or after Cleanup; they do nothing then
type ImpactPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastPlay    time.Time
	now         func() time.Time
}

// NewImpactPlayer creates a player; the speaker is not touched until Initialize
func NewImpactPlayer() *ImpactPlayer {
	return &ImpactPlayer{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
func (p *ImpactPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayImpact queues one click for an impulse of the given strength
// Returns false when the player is idle, the impulse is zero, or the previous click is too recent
func (p *ImpactPlayer) PlayImpact(strength float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || strength <= 0 {
		return false
	}
	now := p.now()
	if now.Sub(p.lastPlay) < parameter.MinImpactGap {
		return false
	}

	s, err := impactStreamer(sampleRate, strength)
	if err != nil {
		return false
	}
	p.lastPlay = now

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Cleanup silences the mixer and releases the speaker
func (p *ImpactPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}

// impactStreamer builds the click for one impulse: pitch and loudness rise with strength
func impactStreamer(sr beep.SampleRate, strength float64) (beep.Streamer, error) {
	s := impactLevel(strength)

	tone, err := generators.SineTone(sr, parameter.ImpactFreqBase+parameter.ImpactFreqSpan*s)
	if err != nil {
		return nil, err
	}

	click := newRelease(beep.Take(sr.N(parameter.ImpactSoundDuration), tone),
		parameter.ImpactSoundDuration, parameter.ImpactSoundRelease, sr)

	return &effects.Volume{
		Streamer: click,
		Base:     2,
		Volume:   parameter.ImpactVolumeFloor * (1 - s),
	}, nil
}

// impactLevel maps an impulse onto [0, 1] against the reference strength
func impactLevel(strength float64) float64 {
	return min(max(strength/parameter.ImpactStrengthRef, 0), 1)
}
