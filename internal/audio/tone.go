// Package audio turns simulation signals into short synthesized tones
// played through the system speaker with gopxl/beep.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Waveform defines oscillator wave shapes.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
	WaveSaw
	WaveSquare
)

// Tone is a single decaying note.
type Tone struct {
	Freq     float64 // Hz
	Duration time.Duration
	Wave     Waveform
	Gain     float64 // Peak amplitude in (0, 1]
}

// oscillator generates a periodic wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64 // Cycles, kept in [0, 1)
	position int
	total    int
	wave     Waveform
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration worth of the wave.
func NewOscillator(freq float64, duration time.Duration, wave Waveform, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:  freq,
		total: rate.N(duration),
		wave:  wave,
		rate:  rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decayFloor is the level a note fades to at its end.
const decayFloor = 0.0001

// decay fades a stream exponentially from full level to decayFloor.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

// NewDecay shapes s with an exponential fade lasting duration.
func NewDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: max(1, rate.N(duration))}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	k := math.Log(decayFloor) / float64(d.total)
	for i := 0; i < n; i++ {
		vol := math.Exp(k * float64(d.position))
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream linearly by gain. Zero gain is silent.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Streamer renders the tone at the given sample rate.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(t.Freq, t.Duration, t.Wave, rate)
	return newVolume(NewDecay(osc, t.Duration, rate), t.Gain)
}
