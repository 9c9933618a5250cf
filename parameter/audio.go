package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Impact Sound
const (
	ImpactSoundDuration = 60 * time.Millisecond
	ImpactSoundRelease  = 40 * time.Millisecond

	// ImpactFreqBase is the pitch of the weakest impact, ImpactFreqSpan is added at full strength
	ImpactFreqBase = 220.0
	ImpactFreqSpan = 660.0

	// ImpactStrengthRef is the impulse heard at full volume
	ImpactStrengthRef = 10.0

	// ImpactVolumeFloor is the beep effects.Volume level (base 2) of the weakest audible impact
	ImpactVolumeFloor = -4.0

	// MinImpactGap between consecutive impact sounds
	MinImpactGap = 30 * time.Millisecond
)
