package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/enc-timer/constant"
)

// SoundManager plays unlock clicks through a shared mixer
// Every method is safe to call before Initialize or after a failed one
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	minGap      time.Duration
	lastPlay    time.Time
	initialized bool
}

// NewSoundManager creates a sound manager with the given master volume (0..1)
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(constant.AudioSampleRate),
		volume: min(max(volume, 0), 1),
		minGap: constant.MinSoundGap,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds; beep has no speaker close, clearing the mixer silences it
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayUnlock queues a click for count released markers
func (sm *SoundManager) PlayUnlock(count int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || count <= 0 || !sm.admit(time.Now()) {
		return
	}

	s := CreateUnlockSound(sm.rate, sm.volume, count)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// admit enforces the minimum gap between clicks, caller holds the lock
func (sm *SoundManager) admit(now time.Time) bool {
	if !sm.lastPlay.IsZero() && now.Sub(sm.lastPlay) < sm.minGap {
		return false
	}
	sm.lastPlay = now
	return true
}
