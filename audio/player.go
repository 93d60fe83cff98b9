// Package audio plays short synthesised cues for editor feedback.
// Without an audio device every call is a silent no-op.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues into the speaker
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
}

// NewPlayer creates a player; nothing is audible until Initialize succeeds
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		volume:  clampVolume(volume),
		enabled: true,
	}
}

// Initialize opens the speaker; safe to call more than once
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the mixer and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Play queues c; no-op when disabled or not initialised
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.enabled || p.volume == 0 {
		return
	}
	s := NewCueStreamer(c, p.volume, sampleRate)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetVolume changes the master volume for subsequent cues
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = clampVolume(v)
	p.mu.Unlock()
}

// SetEnabled mutes or unmutes the player
func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	p.enabled = enabled
	p.mu.Unlock()
}

// Volume returns the master volume
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Active reports whether cues will be heard
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && p.enabled && p.volume > 0
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
