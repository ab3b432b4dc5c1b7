package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/wave-rider/internal/games/waverider/sim"
)

const sampleRate = beep.SampleRate(44100)

// Voices per signal, sounded together. Time up stays silent: the win
// raised on the same tick carries the jingle.
var tones = map[sim.Signal][]Tone{
	sim.SignalSplash:  {{Freq: 600, Duration: 120 * time.Millisecond, Wave: WaveSine, Gain: 0.18}},
	sim.SignalCollect: {{Freq: 1200, Duration: 60 * time.Millisecond, Wave: WaveTriangle, Gain: 0.12}},
	sim.SignalHit:     {{Freq: 160, Duration: 160 * time.Millisecond, Wave: WaveSaw, Gain: 0.22}},
	sim.SignalWin: {
		{Freq: 880, Duration: 200 * time.Millisecond, Wave: WaveSine, Gain: 0.2},
		{Freq: 1100, Duration: 180 * time.Millisecond, Wave: WaveSine, Gain: 0.16},
	},
	sim.SignalGameOver: {{Freq: 160, Duration: 160 * time.Millisecond, Wave: WaveSaw, Gain: 0.22}},
}

// TonesFor returns the voices played for a signal.
func TonesFor(sig sim.Signal) []Tone {
	return tones[sig]
}

// DefaultSplashGap is the minimum spacing between splash sounds.
// Splash fires on every tick the jump is held.
const DefaultSplashGap = 150 * time.Millisecond

// Player is a sim.SignalSink that plays tones through the speaker.
// Emit never blocks on audio: it hands a streamer to the mixer and
// returns. A Player that was never initialized, or is disabled, is silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	enabled     bool
	initialized bool
	splashGap   time.Duration
	lastSplash  time.Time

	now   func() time.Time
	queue func(beep.Streamer)
}

// NewPlayer creates an enabled, uninitialized player.
func NewPlayer() *Player {
	p := &Player{
		mixer:     &beep.Mixer{},
		enabled:   true,
		splashGap: DefaultSplashGap,
		now:       time.Now,
	}
	p.queue = p.enqueue
	return p
}

// Init opens the speaker. Calling it again is a no-op.
func (p *Player) Init() error {
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

// SetEnabled turns sound on or off.
func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	p.enabled = on
	p.mu.Unlock()
}

// Enabled reports whether sound is on.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Toggle flips the sound setting and returns the new value.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !p.enabled
	return p.enabled
}

// Emit plays the tones for sig.
func (p *Player) Emit(sig sim.Signal) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	if sig == sim.SignalSplash {
		now := p.now()
		if !p.lastSplash.IsZero() && now.Sub(p.lastSplash) < p.splashGap {
			return
		}
		p.lastSplash = now
	}

	notes := TonesFor(sig)
	if len(notes) == 0 {
		return
	}
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		streamers = append(streamers, n.Streamer(sampleRate))
	}
	p.queue(beep.Mix(streamers...))
}

func (p *Player) enqueue(s beep.Streamer) {
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
