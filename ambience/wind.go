// Package ambience plays a wind sound whose loudness follows the scene's
// wind strength.
package ambience

import (
	"math"
	"math/rand"
)

const (
	// cutoff is the low-pass coefficient that turns white noise into a rumble
	cutoff = 0.02
	// glide is how fast the gain follows a new strength, per sample
	glide = 0.0005
	// noiseGain restores loudness lost in the low-pass
	noiseGain = 6.0
)

// Wind generates low-passed noise. It implements beep.Streamer.
type Wind struct {
	rng    *rand.Rand
	low    [2]float64
	gain   float64
	target float64
	gust   float64
	rate   float64
}

// NewWind creates a wind generator for the given sample rate
func NewWind(sampleRate int, rng *rand.Rand) *Wind {
	return &Wind{rng: rng, rate: float64(sampleRate)}
}

// SetStrength sets the target loudness in [0, 1]
func (w *Wind) SetStrength(s float64) {
	w.target = math.Max(0, math.Min(1, s))
}

// Stream fills samples with stereo wind noise
func (w *Wind) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		w.gain += (w.target - w.gain) * glide
		w.gust += 0.4 / w.rate
		swell := 0.75 + 0.25*math.Sin(2*math.Pi*w.gust)
		for ch := range w.low {
			white := w.rng.Float64()*2 - 1
			w.low[ch] += cutoff * (white - w.low[ch])
			v := w.low[ch] * noiseGain * w.gain * swell
			samples[i][ch] = math.Max(-1, math.Min(1, v))
		}
	}
	return len(samples), true
}

// Err always returns nil
func (w *Wind) Err() error {
	return nil
}
