// Package waverider adapts the Wave Rider simulation to the arcade
// platform: it registers the Endless and Time Attack modes, binds the
// YAML configuration and difficulty presets, and draws frames into the
// terminal screen buffer.
package waverider

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/wave-rider/internal/config"
	"github.com/vovakirdan/wave-rider/internal/core"
	"github.com/vovakirdan/wave-rider/internal/games/waverider/sim"
	"github.com/vovakirdan/wave-rider/internal/registry"
)

// Registered game ids. Scores are stored under these.
const (
	EndlessID = "waverider"
	TimedID   = "waverider_timed"
)

// ErrUnknownMode is returned by ParseMode for names it does not know.
var ErrUnknownMode = errors.New("unknown mode")

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config file's own difficulty block.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig resolves the active configuration: the YAML chain, then the
// difficulty preset. A broken config file falls back to the defaults.
func LoadConfig() config.WaveRiderConfig {
	cfg, err := config.LoadWaveRider(configPath)
	if err != nil {
		cfg = config.DefaultWaveRiderConfig()
	}
	if difficultyPreset != "" {
		config.ApplyWaveRiderPreset(&cfg, difficultyPreset)
	}
	return cfg
}

func init() {
	registry.Register(registry.GameInfo{ID: EndlessID, Title: "Wave Rider", Alias: "endless", Order: 1},
		func() registry.Game { return New(sim.ModeEndless) })
	registry.Register(registry.GameInfo{ID: TimedID, Title: "Wave Rider: Time Attack", Alias: "timed", Order: 2},
		func() registry.Game { return New(sim.ModeTimed) })
}

// ParseMode accepts a mode name as typed on the command line or a
// registry id.
func ParseMode(name string) (sim.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "endless", EndlessID:
		return sim.ModeEndless, nil
	case "timed", "time-attack", "time_attack", TimedID:
		return sim.ModeTimed, nil
	}
	return sim.ModeEndless, fmt.Errorf("%w %q (want endless or timed)", ErrUnknownMode, name)
}

// ModeID returns the registry id for a mode.
func ModeID(mode sim.Mode) string {
	if mode == sim.ModeTimed {
		return TimedID
	}
	return EndlessID
}

// Game implements registry.Game on top of a sim.Session.
type Game struct {
	mode    sim.Mode
	runtime core.RuntimeConfig
	cfg     config.WaveRiderConfig
	session *sim.Session
	sink    sim.SignalSink
	frame   sim.Frame
	paused  bool
	err     error // Set when the session could not be built

	hitFlash float64 // Seconds left on the rider's hit highlight
	splash   float64 // Seconds left on the foam under the board
}

// New creates a Wave Rider game in the given mode.
func New(mode sim.Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ModeID(g.mode)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == sim.ModeTimed {
		return "Wave Rider: Time Attack"
	}
	return "Wave Rider"
}

// Mode returns the session mode.
func (g *Game) Mode() sim.Mode {
	return g.mode
}

// SetSink attaches a listener (usually audio) to the session's signals.
func (g *Game) SetSink(sink sim.SignalSink) {
	g.sink = sink
	if g.session != nil {
		g.session.SetSink(sink)
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig()
	g.paused = false
	g.hitFlash = 0
	g.splash = 0

	session, err := sim.NewSession(sim.Options{
		Mode:   g.mode,
		Config: g.cfg,
		Seed:   runtime.Seed,
		Sink:   g.sink,
	})
	g.session, g.err = session, err
	if err == nil {
		g.frame = session.Frame()
	}
}

// Session exposes the underlying simulation, nil until Reset succeeds.
func (g *Game) Session() *sim.Session {
	return g.session
}

// Viewport returns the logical world size the session runs in.
func (g *Game) Viewport() (w, h float64) {
	return g.cfg.Viewport.Width, g.cfg.Viewport.Height
}

// Frame returns the most recent simulation frame.
func (g *Game) Frame() sim.Frame {
	return g.frame
}

// Step advances the game by elapsed seconds.
func (g *Game) Step(in core.InputFrame, elapsed float64) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State(), Err: g.err}
	}

	if g.session.Phase() == sim.PhaseEnded {
		if in.Has(core.ActionRestart) {
			g.session.Restart()
			g.frame = g.session.Frame()
			g.hitFlash, g.splash = 0, 0
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	frame, err := g.session.Step(sim.TickInput{
		Elapsed:   elapsed,
		Input:     Controls(in),
		ViewportW: g.cfg.Viewport.Width,
		ViewportH: g.cfg.Viewport.Height,
	})
	if err != nil {
		return core.StepResult{State: g.State(), Err: err}
	}
	g.frame = frame

	g.hitFlash = max(0, g.hitFlash-elapsed)
	g.splash = max(0, g.splash-elapsed)

	events := make([]string, 0, len(frame.Signals))
	for _, sig := range frame.Signals {
		switch sig {
		case sim.SignalHit:
			g.hitFlash = 0.4
		case sim.SignalSplash:
			g.splash = 0.15
		}
		events = append(events, sig.String())
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Controls converts a platform input frame into rider controls.
func Controls(in core.InputFrame) sim.Controls {
	return sim.Controls{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump) || in.Has(core.ActionUp),
		Tilt:  core.ClampF(in.Tilt, -1, 1),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: true, Reason: "config error"}
	}
	hud := g.session.HUD()
	return core.GameState{
		Score:    hud.Score,
		Lives:    hud.Lives,
		TimeLeft: hud.TimeLeft,
		Clock:    g.session.Clock(),
		GameOver: hud.Phase == sim.PhaseEnded,
		Reason:   hud.Reason.String(),
		Paused:   g.paused,
	}
}
