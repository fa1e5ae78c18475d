package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/enc-timer/constant"
)

// WaveType selects the oscillator waveform
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// at returns the waveform value for a phase in [0, 1)
func (w WaveType) at(phase float64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// NewOscillator streams freq Hz of the given wave for duration, then drains
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	left := rate.N(duration)
	step := freq / float64(rate)
	var phase float64

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n := min(len(samples), left)
		for i := range n {
			v := wave.at(phase)
			samples[i] = [2]float64{v, v}
			_, phase = math.Modf(phase + step)
		}
		left -= n
		return n, n > 0
	})
}

// gainAt is the linear attack/release envelope at sample pos of total
func gainAt(pos, total, attack, release int) float64 {
	g := 1.0
	if pos < attack {
		g = float64(pos) / float64(attack)
	}
	if tail := total - pos; release > 0 && tail <= release {
		g = math.Min(g, float64(tail)/float64(release))
	}
	return g
}

// NewEnvelope shapes s over duration with linear attack and release ramps and cuts it off afterwards
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total, a, r := rate.N(duration), rate.N(attack), rate.N(release)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n, ok := s.Stream(samples[:min(len(samples), total-pos)])
		for i := range n {
			g := gainAt(pos, total, a, r)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero gain is silent
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// CreateUnlockSound generates a short wooden click, louder when several markers release at once
func CreateUnlockSound(rate beep.SampleRate, volume float64, count int) beep.Streamer {
	d := constant.UnlockSoundDuration
	body := NewOscillator(constant.UnlockSoundFrequency, d, WaveSine, rate)
	transient := NewOscillator(0, d/3, WaveNoise, rate)

	layers := []beep.Streamer{
		newVolume(NewEnvelope(body, d, constant.UnlockSoundAttack, constant.UnlockSoundRelease, rate), 0.7),
		newVolume(NewEnvelope(transient, d/3, 0, d/3, rate), 0.2),
	}
	if overtone, err := generators.SineTone(rate, constant.UnlockSoundFrequency*2); err == nil {
		layers = append(layers, newVolume(NewEnvelope(beep.Take(rate.N(d), overtone), d, constant.UnlockSoundAttack, constant.UnlockSoundRelease, rate), 0.1))
	}

	return newVolume(beep.Mix(layers...), unlockGain(volume, count))
}

// unlockGain raises the click by 10% per extra marker up to the boost cap
func unlockGain(volume float64, count int) float64 {
	boost := math.Min(1+0.1*float64(max(count-1, 0)), constant.UnlockSoundMaxBoost)
	return volume * boost
}
