package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
)

// Audio Defaults
const (
	AudioEnabled = false
	AudioVolume  = 0.5

	// MinSoundGap between consecutive unlock clicks
	MinSoundGap = 50 * time.Millisecond
)

// Unlock Click
const (
	UnlockSoundFrequency = 1320.0
	UnlockSoundDuration  = 45 * time.Millisecond
	UnlockSoundAttack    = 2 * time.Millisecond
	UnlockSoundRelease   = 35 * time.Millisecond

	// UnlockSoundMaxBoost caps the extra gain when several markers release in one tick
	UnlockSoundMaxBoost = 1.5
)
