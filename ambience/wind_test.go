package ambience

import (
	"math/rand"
	"testing"
)

func TestWindSamplesInRange(t *testing.T) {
	tests := []struct {
		name     string
		strength float64
	}{
		{"calm", 0.1},
		{"breeze", 0.5},
		{"gale", 1},
		{"clamped", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWind(44100, rand.New(rand.NewSource(1)))
			w.SetStrength(tt.strength)
			buf := make([][2]float64, 4096)
			for round := 0; round < 20; round++ {
				n, ok := w.Stream(buf)
				if !ok || n != len(buf) {
					t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, len(buf))
				}
				for i, s := range buf {
					for ch, v := range s {
						if v < -1 || v > 1 {
							t.Fatalf("round %d sample %d channel %d = %f out of range", round, i, ch, v)
						}
					}
				}
			}
			if w.Err() != nil {
				t.Fatalf("Err = %v", w.Err())
			}
		})
	}
}

func TestWindSilentAtZeroStrength(t *testing.T) {
	w := NewWind(44100, rand.New(rand.NewSource(2)))
	buf := make([][2]float64, 2048)
	w.Stream(buf)
	for i, s := range buf {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
}

func TestWindGainGlides(t *testing.T) {
	w := NewWind(44100, rand.New(rand.NewSource(3)))
	w.SetStrength(1)
	buf := make([][2]float64, 1)
	w.Stream(buf)
	first := w.gain
	if first <= 0 || first >= 0.01 {
		t.Fatalf("gain after one sample = %f, want a small step toward 1", first)
	}
	big := make([][2]float64, 44100)
	w.Stream(big)
	if w.gain < 0.99 {
		t.Fatalf("gain after one second = %f, want close to 1", w.gain)
	}
}

func TestNilPlayerIsSafe(t *testing.T) {
	var p *Player
	p.SetStrength(0.5)
	p.Close()
}
