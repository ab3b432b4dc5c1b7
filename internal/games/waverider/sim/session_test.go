package sim

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/wave-rider/internal/config"
)

const tick = 1.0 / 60

// quietConfig disables random spawns so tests can place entities by hand.
func quietConfig() config.WaveRiderConfig {
	cfg := config.DefaultWaveRiderConfig()
	cfg.Spawner.ShellChance = 0
	cfg.Spawner.WhirlpoolChance = 0
	return cfg
}

func newTestSession(t *testing.T, mode Mode, cfg config.WaveRiderConfig, sink SignalSink) *Session {
	t.Helper()
	s, err := NewSession(Options{Mode: mode, Config: cfg, Seed: 1, Sink: sink})
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	return s
}

func idle(dt float64) TickInput {
	return TickInput{Elapsed: dt, ViewportW: 960, ViewportH: 540}
}

func TestNewSessionRejectsInvalidViewport(t *testing.T) {
	cfg := config.DefaultWaveRiderConfig()
	cfg.Viewport.Width = 0

	if _, err := NewSession(Options{Config: cfg}); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("NewSession() error = %v, expected ErrInvalidViewport", err)
	}
}

func TestSessionStepRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		in   TickInput
		err  error
	}{
		{"negative elapsed", TickInput{Elapsed: -0.1, ViewportW: 960, ViewportH: 540}, ErrInvalidElapsed},
		{"NaN elapsed", TickInput{Elapsed: math.NaN(), ViewportW: 960, ViewportH: 540}, ErrInvalidElapsed},
		{"infinite elapsed", TickInput{Elapsed: math.Inf(1), ViewportW: 960, ViewportH: 540}, ErrInvalidElapsed},
		{"zero width", TickInput{Elapsed: tick, ViewportW: 0, ViewportH: 540}, ErrInvalidViewport},
		{"negative height", TickInput{Elapsed: tick, ViewportW: 960, ViewportH: -1}, ErrInvalidViewport},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, ModeTimed, quietConfig(), nil)
			before := s.Frame()

			_, err := s.Step(tc.in)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Step() error = %v, expected %v", err, tc.err)
			}
			if s.Clock() != 0 || s.TimeLeft() != 60 {
				t.Errorf("rejected tick advanced the clock: clock=%v timeLeft=%v", s.Clock(), s.TimeLeft())
			}
			if !reflect.DeepEqual(s.Frame(), before) {
				t.Error("rejected tick changed the frame")
			}

			if _, err := s.Step(idle(tick)); err != nil {
				t.Errorf("valid Step() after rejection failed: %v", err)
			}
		})
	}
}

func TestSessionTimedRunEndsWithTimeUp(t *testing.T) {
	var got []Signal
	sink := SinkFunc(func(sig Signal) { got = append(got, sig) })
	s := newTestSession(t, ModeTimed, quietConfig(), sink)

	var last Frame
	ticks := 0
	for s.Phase() == PhasePlaying && ticks < 4000 {
		if s.Clock() > 30 && s.Score() == 0 {
			r := s.Rider()
			s.Registry().AddShell(r.X+5, r.Y)
		}
		f, err := s.Step(idle(tick))
		if err != nil {
			t.Fatalf("Step() error: %v", err)
		}
		if s.Lives() != 3 {
			t.Fatalf("lost a life without whirlpools")
		}
		last = f
		ticks++
	}

	if s.Reason() != ReasonTimeUp {
		t.Fatalf("Reason() = %v, expected time up", s.Reason())
	}
	if s.Clock() < 60-1e-9 || s.Clock() > 60+tick+1e-9 {
		t.Errorf("ended at clock %v, expected the tick reaching 60s", s.Clock())
	}
	if s.FinalScore() != 15 || s.FinalScore() != s.Score() {
		t.Errorf("FinalScore() = %d, Score() = %d, expected both 15", s.FinalScore(), s.Score())
	}
	if s.TimeLeft() != 0 {
		t.Errorf("TimeLeft() = %v, expected 0", s.TimeLeft())
	}
	want := []Signal{SignalTimeUp, SignalWin}
	if !reflect.DeepEqual(last.Signals, want) {
		t.Errorf("final frame signals = %v, expected %v", last.Signals, want)
	}
	if n := len(got); n < 2 || !reflect.DeepEqual(got[n-2:], want) {
		t.Errorf("sink tail = %v, expected %v", got, want)
	}
}

func TestSessionShellNearStationaryRider(t *testing.T) {
	s := newTestSession(t, ModeEndless, quietConfig(), nil)
	r := s.Rider()
	s.Registry().AddShell(r.X+10, r.Y)

	f, err := s.Step(idle(tick))
	if err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	if s.Score() != 15 {
		t.Errorf("Score() = %d, expected 15", s.Score())
	}
	if !reflect.DeepEqual(f.Signals, []Signal{SignalCollect}) {
		t.Errorf("Signals = %v, expected [collect]", f.Signals)
	}

	f, _ = s.Step(idle(tick))
	if len(f.Shells) != 0 {
		t.Errorf("collected shell still present next tick: %v", f.Shells)
	}
	if s.Score() != 15 {
		t.Errorf("Score() = %d on the next tick, expected 15", s.Score())
	}
}

func TestSessionLastLifeWhirlpool(t *testing.T) {
	cfg := quietConfig()
	cfg.Gameplay.Lives = 1
	s := newTestSession(t, ModeEndless, cfg, nil)
	r := s.Rider()
	startX := r.X
	s.Registry().AddWhirlpool(r.X, r.Y)

	f, err := s.Step(idle(tick))
	if err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	if s.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", s.Lives())
	}
	if s.Phase() != PhaseEnded || s.Reason() != ReasonGameOver {
		t.Errorf("phase=%v reason=%v, expected ended by game over on the same tick", s.Phase(), s.Reason())
	}
	if !reflect.DeepEqual(f.Signals, []Signal{SignalHit, SignalGameOver}) {
		t.Errorf("Signals = %v, expected [hit game_over]", f.Signals)
	}
	if r.X != startX-60 {
		t.Errorf("rider X = %v after hit, expected knockback to %v", r.X, startX-60)
	}
}

func TestSessionGameOverBeatsTimeUp(t *testing.T) {
	cfg := quietConfig()
	cfg.Gameplay.Lives = 1
	cfg.Gameplay.TimeLimit = tick
	s := newTestSession(t, ModeTimed, cfg, nil)
	r := s.Rider()
	s.Registry().AddWhirlpool(r.X, r.Y)

	f, err := s.Step(idle(tick))
	if err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	if s.TimeLeft() != 0 {
		t.Fatalf("TimeLeft() = %v, expected the clock to expire on this tick", s.TimeLeft())
	}
	if s.Reason() != ReasonGameOver {
		t.Errorf("Reason() = %v, expected game over", s.Reason())
	}
	for _, sig := range f.Signals {
		if sig == SignalTimeUp || sig == SignalWin {
			t.Errorf("unexpected %v signal alongside game over", sig)
		}
	}
}

func TestSessionFrozenAfterEnd(t *testing.T) {
	cfg := quietConfig()
	cfg.Gameplay.Lives = 1
	emitted := 0
	s := newTestSession(t, ModeTimed, cfg, SinkFunc(func(Signal) { emitted++ }))
	r := s.Rider()
	s.Registry().AddWhirlpool(r.X, r.Y)
	s.Registry().AddShell(800, 200)

	if _, err := s.Step(idle(tick)); err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	if s.Phase() != PhaseEnded {
		t.Fatal("session should have ended")
	}

	end := s.Frame()
	hud := s.HUD()
	clock := s.Clock()
	before := emitted

	for i := 0; i < 120; i++ {
		in := idle(0.1)
		in.Input = Controls{Left: true, Jump: true}
		f, err := s.Step(in)
		if err != nil {
			t.Fatalf("Step() error: %v", err)
		}
		if len(f.Signals) != 0 {
			t.Fatalf("signals after end: %v", f.Signals)
		}
	}

	if s.HUD() != hud || s.Clock() != clock {
		t.Errorf("state changed after end: %+v -> %+v", hud, s.HUD())
	}
	after := s.Frame()
	if !reflect.DeepEqual(after.Shells, end.Shells) || after.Player != end.Player {
		t.Error("entities or rider moved after end")
	}
	if emitted != before {
		t.Errorf("sink received %d signals after end", emitted-before)
	}
}

func TestSessionRestart(t *testing.T) {
	cfg := quietConfig()
	s := newTestSession(t, ModeTimed, cfg, nil)
	r := s.Rider()
	s.Registry().AddShell(r.X, r.Y)
	s.Registry().AddWhirlpool(r.X, r.Y)
	s.Registry().AddShell(900, 100)

	for i := 0; i < 30; i++ {
		if _, err := s.Step(idle(tick)); err != nil {
			t.Fatalf("Step() error: %v", err)
		}
	}
	if s.Score() == 0 || s.Lives() == 3 {
		t.Fatalf("setup failed: score=%d lives=%d", s.Score(), s.Lives())
	}

	s.Restart()
	if s.Score() != 0 || s.Lives() != 3 || s.TimeLeft() != 60 || s.Clock() != 0 {
		t.Errorf("after restart score=%d lives=%d timeLeft=%v clock=%v",
			s.Score(), s.Lives(), s.TimeLeft(), s.Clock())
	}
	if s.Phase() != PhasePlaying || s.Mode() != ModeTimed {
		t.Errorf("after restart phase=%v mode=%v", s.Phase(), s.Mode())
	}
	if len(s.Registry().Shells()) != 0 || len(s.Registry().Whirlpools()) != 0 {
		t.Error("restart should clear entities")
	}
	if s.Rider().X != 240 {
		t.Errorf("rider X = %v after restart, expected 240", s.Rider().X)
	}
}

func TestSessionMonotonicScoreAndLives(t *testing.T) {
	cfg := config.DefaultWaveRiderConfig()
	cfg.Spawner.WhirlpoolInterval = 1
	cfg.Spawner.WhirlpoolChance = 0.6
	s := newTestSession(t, ModeEndless, cfg, nil)
	rng := rand.New(rand.NewSource(5))

	score, lives := s.Score(), s.Lives()
	for i := 0; i < 20000 && s.Phase() == PhasePlaying; i++ {
		in := idle(tick)
		in.Input = Controls{
			Left:  rng.Intn(3) == 0,
			Right: rng.Intn(3) == 0,
			Jump:  rng.Intn(4) == 0,
			Tilt:  rng.Float64()*2 - 1,
		}
		f, err := s.Step(in)
		if err != nil {
			t.Fatalf("Step() error: %v", err)
		}
		if s.Score() < score {
			t.Fatalf("score decreased from %d to %d", score, s.Score())
		}
		if s.Lives() > lives {
			t.Fatalf("lives increased from %d to %d", lives, s.Lives())
		}
		if s.Lives() == 0 && s.Phase() != PhaseEnded {
			t.Fatal("zero lives without ending on the same tick")
		}
		if f.Player.X < 24 || f.Player.X > 936 || f.Player.Y < 24 || f.Player.Y > 516 {
			t.Fatalf("rider out of bounds: %+v", f.Player)
		}
		score, lives = s.Score(), s.Lives()
	}
}

func TestSessionDeterministic(t *testing.T) {
	run := func() []Frame {
		s, err := NewSession(Options{Mode: ModeTimed, Config: config.DefaultWaveRiderConfig(), Seed: 2024})
		if err != nil {
			t.Fatalf("NewSession() error: %v", err)
		}
		frames := make([]Frame, 0, 1200)
		for i := 0; i < 1200; i++ {
			in := idle(tick)
			in.Input.Right = i%200 < 100
			in.Input.Jump = i%90 < 10
			f, err := s.Step(in)
			if err != nil {
				t.Fatalf("Step() error: %v", err)
			}
			frames = append(frames, f)
		}
		return frames
	}

	if !reflect.DeepEqual(run(), run()) {
		t.Error("equal seeds and inputs produced different frames")
	}
}

func TestSessionSplashWhileJumpHeld(t *testing.T) {
	var got []Signal
	s := newTestSession(t, ModeEndless, quietConfig(), SinkFunc(func(sig Signal) { got = append(got, sig) }))

	for i := 0; i < 5; i++ {
		in := idle(tick)
		in.Input.Jump = true
		if _, err := s.Step(in); err != nil {
			t.Fatalf("Step() error: %v", err)
		}
	}
	if len(got) != 5 {
		t.Fatalf("got %d signals, expected 5 splashes", len(got))
	}
	for _, sig := range got {
		if sig != SignalSplash {
			t.Errorf("unexpected signal %v", sig)
		}
	}
}

func TestSessionFollowsViewportResize(t *testing.T) {
	s := newTestSession(t, ModeEndless, quietConfig(), nil)

	f, err := s.Step(TickInput{Elapsed: tick, ViewportW: 480, ViewportH: 270})
	if err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	surface := f.Waves[0]
	if last := surface[len(surface)-1].X; last != 480 {
		t.Errorf("last wave sample x = %v, expected 480", last)
	}
	if f.Player.X > 480-24 || f.Player.Y > 270-24 {
		t.Errorf("rider outside resized viewport: %+v", f.Player)
	}
	if w, h := s.Viewport(); w != 480 || h != 270 {
		t.Errorf("Viewport() = %vx%v, expected 480x270", w, h)
	}
}

func TestSessionFrameLayers(t *testing.T) {
	s := newTestSession(t, ModeEndless, quietConfig(), nil)
	f, err := s.Step(idle(tick))
	if err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	if len(f.Waves) != 3 {
		t.Errorf("got %d wave layers, expected 3", len(f.Waves))
	}
	if !math.IsInf(f.HUD.TimeLeft, 1) {
		t.Errorf("endless HUD TimeLeft = %v, expected +Inf", f.HUD.TimeLeft)
	}
}

func TestSessionTinyViewportKeepsRiderInBounds(t *testing.T) {
	s := newTestSession(t, ModeEndless, quietConfig(), nil)

	for i := 0; i < 30; i++ {
		f, err := s.Step(TickInput{Elapsed: tick, Input: Controls{Right: i%2 == 0, Jump: true}, ViewportW: 10, ViewportH: 10})
		if err != nil {
			t.Fatalf("Step() error: %v", err)
		}
		p := f.Player
		if p.X < 0 || p.X > 10 || p.Y < 0 || p.Y > 10 {
			t.Fatalf("tick %d: player at (%v, %v) outside the 10x10 viewport", i, p.X, p.Y)
		}
	}
}
