package ambience

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player owns the speaker and the wind streamer
type Player struct {
	mu      sync.Mutex
	wind    *Wind
	playing bool
}

// Start initializes the speaker and begins playing wind at volume in [0, 1]
func Start(volume float64) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	p := &Player{
		wind:    NewWind(int(sampleRate), rand.New(rand.NewSource(time.Now().UnixNano()))),
		playing: true,
	}
	speaker.Play(newVolume(p.wind, volume))
	return p, nil
}

// SetStrength changes the wind loudness; safe to call every tick
func (p *Player) SetStrength(s float64) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return
	}
	speaker.Lock()
	p.wind.SetStrength(s)
	speaker.Unlock()
}

// Close stops playback
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return
	}
	speaker.Clear()
	p.playing = false
}

// newVolume wraps s in a volume effect; math.Log2(0) is -Inf, so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
