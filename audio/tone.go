package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave defines oscillator shapes
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a finite oscillator whose frequency glides linearly from start to end
type tone struct {
	start, end float64
	phase      float64
	length     int
	pos        int
	wave       Wave
	rate       beep.SampleRate
}

// NewTone creates a streamer of the given duration gliding from start to end Hz
func NewTone(start, end float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{start: start, end: end, length: rate.N(d), wave: wave, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			val = 1.0
			if t.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (t.phase - 0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := t.start + (t.end-t.start)*float64(t.pos)/float64(t.length)
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope applies a linear attack and release to a finite stream
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, whose length is d, with attack and release ramps
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; remaining < e.release {
			vol = max(float64(remaining)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at a linear volume; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
