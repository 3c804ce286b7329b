// Package synth plays audio.Sfx tones through the system speaker with beep.
package synth

import (
	"fmt"
	"math"
	"sync"
	"time"

	"go-arena-survival/internal/audio"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes short sine tones into one speaker stream.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer opens the speaker. On error the game should fall back to
// audio.NopPlayer.
func NewPlayer() (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p, nil
}

// Play queues the tone of s. Unknown effects are ignored.
func (p *Player) Play(s audio.Sfx) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	tone, ok := audio.ToneFor(s)
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, tone.Frequency)
	if err != nil {
		return
	}
	streamer := beep.Take(sampleRate.N(tone.Duration), sine)

	speaker.Lock()
	p.mixer.Add(withVolume(streamer, tone.Volume))
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
