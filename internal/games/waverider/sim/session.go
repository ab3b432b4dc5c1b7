// Package sim is the Wave Rider simulation: a procedural ocean surface,
// a rider that follows it, shells and whirlpools that drift in from the
// right and a score/lives/clock state machine.
//
// The package is pure. It has no terminal, window, audio or storage
// dependencies; a driver calls Session.Step once per frame with elapsed
// time and an input snapshot and renders the returned Frame.
package sim

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/wave-rider/internal/config"
	"github.com/vovakirdan/wave-rider/internal/core"
)

// ErrInvalidElapsed is returned for a negative or non-finite tick duration.
var ErrInvalidElapsed = errors.New("sim: elapsed time must be finite and non-negative")

// Options configures a session.
type Options struct {
	Mode   Mode
	Config config.WaveRiderConfig
	Seed   int64
	Sink   SignalSink // May be nil
}

// Session composes the wave, rider, spawner, registry and game state and
// advances them together. It is not safe for concurrent use; each driver
// owns its own session.
type Session struct {
	mode       Mode
	cfg        config.WaveRiderConfig
	sink       SignalSink
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	field    WaveField
	viewW    float64
	viewH    float64
	clock    float64
	state    *GameState
	rider    *Rider
	spawner  *Spawner
	registry *Registry

	frame   Frame
	signals []Signal
}

// NewSession builds a Playing session sized to the configured viewport.
func NewSession(opts Options) (*Session, error) {
	cfg := opts.Config
	field, err := NewWaveField(cfg.Viewport.Width, cfg.Viewport.Height, cfg.Wave)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	s := &Session{
		mode:       opts.Mode,
		cfg:        cfg,
		sink:       opts.Sink,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		field:      field,
		viewW:      cfg.Viewport.Width,
		viewH:      cfg.Viewport.Height,
		spawner:    NewSpawner(cfg.Spawner, rng),
		registry:   NewRegistry(cfg.Shells, cfg.Whirlpools),
	}
	s.Restart()
	return s, nil
}

// Restart starts a new run in the same mode and viewport. The random
// source carries on, so consecutive runs see different spawns.
func (s *Session) Restart() {
	s.clock = 0
	s.state = NewGameState(s.mode, s.cfg.Gameplay.Lives, s.cfg.Gameplay.TimeLimit)
	s.spawner.Reset()
	s.registry.Reset()
	if s.rider == nil {
		s.rider = NewRider(s.cfg.Player, s.field)
	} else {
		s.rider.Place(s.field)
	}
	s.signals = s.signals[:0]
	s.frame = s.buildFrame()
}

// SetSink replaces the signal sink. A nil sink discards signals.
func (s *Session) SetSink(sink SignalSink) {
	s.sink = sink
}

// Step advances the session by one tick.
//
// Invalid input is rejected before anything changes. Once the session has
// ended every later Step returns the final frame untouched.
func (s *Session) Step(in TickInput) (Frame, error) {
	dt := in.Elapsed
	if dt < 0 || !core.IsFinite(dt) {
		return s.frame, ErrInvalidElapsed
	}
	resized := in.ViewportW != s.viewW || in.ViewportH != s.viewH
	field := s.field
	if resized {
		f, err := NewWaveField(in.ViewportW, in.ViewportH, s.cfg.Wave)
		if err != nil {
			return s.frame, err
		}
		field = f
	}

	if s.state.Ended() {
		s.frame.Signals = nil
		return s.frame, nil
	}

	if resized {
		s.field = field
		s.viewW, s.viewH = in.ViewportW, in.ViewportH
		s.rider.Clamp(s.viewW, s.viewH)
	}

	s.signals = s.signals[:0]
	s.clock += dt

	if s.rider.Update(dt, s.clock, in.Input, s.field, s.viewH) {
		s.emit(SignalSplash)
	}

	s.spawner.Update(dt, s.clock, s.field, s.registry)

	speed := s.difficulty.Speed(s.state.Score(), s.clock)
	contact := s.registry.Update(dt, speed, s.rider.Pos(), s.viewH)

	for i := 0; i < contact.Collected; i++ {
		if s.state.AddScore(s.cfg.Shells.Points) {
			s.emit(SignalCollect)
		}
	}
	for i := 0; i < contact.Hits; i++ {
		s.state.LoseLife()
		s.rider.Knockback(s.cfg.Whirlpools.Knockback, s.viewW)
		s.emit(SignalHit)
	}

	switch s.state.Advance(dt) {
	case ReasonGameOver:
		s.emit(SignalGameOver)
	case ReasonTimeUp:
		s.emit(SignalTimeUp)
		s.emit(SignalWin)
	}

	s.frame = s.buildFrame()
	return s.frame, nil
}

func (s *Session) emit(sig Signal) {
	s.signals = append(s.signals, sig)
	if s.sink != nil {
		s.sink.Emit(sig)
	}
}

func (s *Session) buildFrame() Frame {
	layers := s.cfg.Wave.RenderLayers
	if len(layers) == 0 {
		layers = []config.RenderLayerConfig{{}}
	}
	waves := make([][]core.Vec2, len(layers))
	for i, l := range layers {
		waves[i] = s.field.Sample(l, s.clock, s.cfg.Wave.SampleStep)
	}

	shells := make([]core.Vec2, 0, len(s.registry.Shells()))
	for _, sh := range s.registry.Shells() {
		shells = append(shells, sh.Pos())
	}
	pools := make([]WhirlpoolView, 0, len(s.registry.Whirlpools()))
	for _, w := range s.registry.Whirlpools() {
		pools = append(pools, WhirlpoolView{X: w.X, Y: w.Y, Scale: w.Scale, Hit: w.Hit})
	}

	var signals []Signal
	if len(s.signals) > 0 {
		signals = append([]Signal(nil), s.signals...)
	}

	return Frame{
		Waves:      waves,
		Player:     PlayerView{X: s.rider.X, Y: s.rider.Y, Rotation: s.rider.Rotation},
		Shells:     shells,
		Whirlpools: pools,
		Signals:    signals,
		HUD:        s.HUD(),
	}
}

// HUD returns the current read-only state.
func (s *Session) HUD() HUD {
	return HUD{
		Score:      s.state.Score(),
		Lives:      s.state.Lives(),
		TimeLeft:   s.state.TimeLeft(),
		Phase:      s.state.Phase(),
		Reason:     s.state.Reason(),
		FinalScore: s.state.FinalScore(),
	}
}

// Frame returns the frame produced by the most recent tick.
func (s *Session) Frame() Frame { return s.frame }

func (s *Session) Mode() Mode               { return s.mode }
func (s *Session) Score() int               { return s.state.Score() }
func (s *Session) Lives() int               { return s.state.Lives() }
func (s *Session) TimeLeft() float64        { return s.state.TimeLeft() }
func (s *Session) Phase() Phase             { return s.state.Phase() }
func (s *Session) Reason() EndReason        { return s.state.Reason() }
func (s *Session) FinalScore() int          { return s.state.FinalScore() }
func (s *Session) Clock() float64           { return s.clock }
func (s *Session) Viewport() (w, h float64) { return s.viewW, s.viewH }

// Field returns the wave surface for the current viewport.
func (s *Session) Field() WaveField { return s.field }

// Registry exposes the live entities. Callers must treat it as read-only.
func (s *Session) Registry() *Registry { return s.registry }

// Rider exposes the player's board. Callers must treat it as read-only.
func (s *Session) Rider() *Rider { return s.rider }
