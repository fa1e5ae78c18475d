package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples and ok, got %d %v", n, ok)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if val := samples[i][0]; val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorFinite verifies the oscillator stops after its duration
func TestOscillatorFinite(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 10*time.Millisecond, WaveNoise, rate)

	total, _ := drain(osc)
	if total != rate.N(10*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(10*time.Millisecond), total)
	}
}

// TestEnvelopeRamps verifies attack starts silent and release ends near silence
func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 20 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, d, 5*time.Millisecond, 5*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(d))
	n, _ := env.Stream(samples)
	if n != len(samples) {
		t.Fatalf("Expected %d samples, got %d", len(samples), n)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	mid := samples[n/2][0]
	if mid != 1.0 {
		t.Errorf("Expected full volume in sustain, got %f", mid)
	}
	if last := samples[n-1][0]; last > 0.01 {
		t.Errorf("Expected release to approach zero, got %f", last)
	}
}

// TestNewVolumeSilent verifies zero gain produces silence
func TestNewVolumeSilent(t *testing.T) {
	osc := NewOscillator(440.0, 10*time.Millisecond, WaveSine, beep.SampleRate(44100))
	_, peak := drain(newVolume(osc, 0))
	if peak != 0 {
		t.Errorf("Expected silence, got peak %f", peak)
	}
}

// TestCreateUnlockSound verifies the click is short and audible
func TestCreateUnlockSound(t *testing.T) {
	rate := beep.SampleRate(44100)

	total, peak := drain(CreateUnlockSound(rate, 0.5, 1))
	if total == 0 || total > rate.N(100*time.Millisecond) {
		t.Errorf("Unexpected click length %d", total)
	}
	if peak <= 0 {
		t.Fatal("Expected audible click")
	}

	_, muted := drain(CreateUnlockSound(rate, 0, 4))
	if muted != 0 {
		t.Errorf("Expected silence at zero volume, got %f", muted)
	}
}

// TestUnlockGain verifies batch boost and its cap
func TestUnlockGain(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{0, 0.5},
		{1, 0.5},
		{3, 0.6},
		{6, 0.75},
		{50, 0.75},
	}
	for _, tt := range tests {
		if got := unlockGain(0.5, tt.count); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("unlockGain(0.5, %d) = %f, want %f", tt.count, got, tt.want)
		}
	}
}
