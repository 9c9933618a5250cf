package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
		if total > int(sampleRate) {
			t.Fatal("impact streamer did not terminate")
		}
	}
	return total, peak
}

func TestImpactStreamerLength(t *testing.T) {
	s, err := impactStreamer(sampleRate, 5)
	if err != nil {
		t.Fatalf("impactStreamer: %v", err)
	}
	n, _ := drain(t, s)
	if want := sampleRate.N(60 * time.Millisecond); n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
}

func TestImpactStreamerLouderWhenStronger(t *testing.T) {
	weak, err := impactStreamer(sampleRate, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	strong, err := impactStreamer(sampleRate, 20)
	if err != nil {
		t.Fatal(err)
	}

	_, pw := drain(t, weak)
	_, ps := drain(t, strong)
	if pw <= 0 {
		t.Fatalf("Expected audible weak impact, got peak %v", pw)
	}
	if ps <= pw {
		t.Errorf("Expected strong impact peak %v above weak %v", ps, pw)
	}
	if ps > 1 {
		t.Errorf("Expected peak within [-1, 1], got %v", ps)
	}
}

func TestReleaseEndsSilent(t *testing.T) {
	const n = 100
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	r := &release{streamer: src, total: n, start: n / 2}

	buf := make([][2]float64, n*2)
	got, ok := r.Stream(buf)
	if ok {
		t.Error("Expected release to end the stream")
	}
	if got != n {
		t.Fatalf("Expected %d samples, got %d", n, got)
	}
	if buf[0][0] != 1 {
		t.Errorf("Expected full volume before the fade, got %v", buf[0][0])
	}
	if last := buf[got-1][0]; last <= 0 || last > 0.1 {
		t.Errorf("Expected near-silent final sample, got %v", last)
	}
}

func TestImpactLevel(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{5, 0.5},
		{10, 1},
		{1000, 1},
	}
	for _, tt := range tests {
		if got := impactLevel(tt.in); got != tt.want {
			t.Errorf("impactLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestImpactPlayerGracefulDegradation verifies calls are safe without an audio device
func TestImpactPlayerGracefulDegradation(t *testing.T) {
	p := NewImpactPlayer()
	if p.PlayImpact(5) {
		t.Error("Expected PlayImpact to be a no-op before Initialize")
	}
	p.Cleanup()
}

func TestImpactPlayerRateLimit(t *testing.T) {
	p := NewImpactPlayer()
	if err := p.Initialize(); err != nil {
		t.Skipf("Sound initialization failed (expected in test environment): %v", err)
	}
	defer p.Cleanup()

	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return clock }

	if !p.PlayImpact(3) {
		t.Fatal("Expected first impact to play")
	}
	if p.PlayImpact(3) {
		t.Error("Expected immediate second impact to be dropped")
	}
	if p.PlayImpact(0) {
		t.Error("Expected zero impulse to be ignored")
	}
	clock = clock.Add(time.Second)
	if !p.PlayImpact(3) {
		t.Error("Expected impact after the gap to play")
	}
}
