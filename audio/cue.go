package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
)

// Cue is a short feedback sound
type Cue uint8

const (
	CueSelect   Cue = iota // colour chosen from the palette
	CueFill                // bucket fill painted something
	CueBoundary            // undo, redo or size change past its limit
	CuePick                // colour sampled from the canvas

	cueCount
)

var cueNames = [cueCount]string{"select", "fill", "boundary", "pick"}

func (c Cue) String() string {
	if c >= cueCount {
		return fmt.Sprintf("cue(%d)", uint8(c))
	}
	return cueNames[c]
}

// cueSpec describes the synthesis of one cue
type cueSpec struct {
	start, end float64 // Hz
	duration   time.Duration
	attack     time.Duration
	release    time.Duration
	wave       Wave
	gain       float64
}

var cueSpecs = [cueCount]cueSpec{
	CueSelect:   {start: 880, end: 880, duration: 80 * time.Millisecond, attack: 5 * time.Millisecond, release: 60 * time.Millisecond, wave: WaveSine, gain: 0.5},
	CueFill:     {start: 300, end: 900, duration: 180 * time.Millisecond, attack: 10 * time.Millisecond, release: 80 * time.Millisecond, wave: WaveSine, gain: 0.5},
	CueBoundary: {start: 120, end: 110, duration: 150 * time.Millisecond, attack: 5 * time.Millisecond, release: 50 * time.Millisecond, wave: WaveSaw, gain: 0.3},
	CuePick:     {start: 660, end: 990, duration: 60 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, wave: WaveSquare, gain: 0.2},
}

// Duration returns how long the cue plays
func (c Cue) Duration() time.Duration {
	return cueSpecs[c].duration
}

// NewCueStreamer synthesises c at the given master volume
func NewCueStreamer(c Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	if c >= cueCount {
		panic(fmt.Sprintf("audio: unknown cue %d", uint8(c)))
	}
	spec := cueSpecs[c]
	osc := NewTone(spec.start, spec.end, spec.duration, spec.wave, rate)
	shaped := NewEnvelope(osc, spec.duration, spec.attack, spec.release, rate)
	return newVolume(shaped, volume*spec.gain)
}
