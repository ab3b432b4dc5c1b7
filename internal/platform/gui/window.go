// Package gui runs Wave Rider in a desktop window with ebiten. Unlike the
// terminal frontend it polls real key state every frame and reads the
// first gamepad's stick as tilt.
package gui

import (
	"errors"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/wave-rider/internal/core"
	"github.com/vovakirdan/wave-rider/internal/games/waverider"
	"github.com/vovakirdan/wave-rider/internal/games/waverider/sim"
	"github.com/vovakirdan/wave-rider/internal/platform/gui/shapes"
	"github.com/vovakirdan/wave-rider/internal/storage"
)

// maxFrameGap caps elapsed time after the window was dragged or minimised.
const maxFrameGap = 250 * time.Millisecond

var (
	skyColor     = color.RGBA{R: 12, G: 20, B: 38, A: 255}
	foamColor    = color.RGBA{R: 220, G: 240, B: 255, A: 255}
	boardColor   = color.RGBA{R: 240, G: 130, B: 40, A: 255}
	riderColor   = color.RGBA{R: 250, G: 220, B: 180, A: 255}
	shellColor   = color.RGBA{R: 255, G: 210, B: 70, A: 255}
	poolColor    = color.RGBA{R: 150, G: 110, B: 230, A: 255}
	poolHitColor = color.RGBA{R: 235, G: 60, B: 60, A: 255}
	flashColor   = color.RGBA{R: 200, G: 30, B: 30, A: 70}
	panelColor   = color.RGBA{R: 0, G: 0, B: 0, A: 170}
)

// Sound is the audio switch toggled with M.
type Sound interface {
	Toggle() bool
	Enabled() bool
}

// Options configures a window session.
type Options struct {
	Mode    sim.Mode
	Runtime core.RuntimeConfig
	Store   *storage.Store
	Sound   Sound
	Sink    sim.SignalSink
	Logger  *log.Logger
	Scale   float64 // Window size relative to the logical viewport
}

// Window is the ebiten.Game driving one Wave Rider game.
type Window struct {
	game     *waverider.Game
	store    *storage.Store
	sound    Sound
	logger   *log.Logger
	width    int
	height   int
	last     time.Time
	state    core.GameState
	saved    bool
	hitFlash float64
}

// New creates a window session for the given mode.
func New(opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	game := waverider.New(opts.Mode)
	game.SetSink(opts.Sink)
	game.Reset(opts.Runtime)
	w, h := game.Viewport()

	return &Window{
		game:   game,
		store:  opts.Store,
		sound:  opts.Sound,
		logger: logger,
		width:  int(w),
		height: int(h),
		state:  game.State(),
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	win := New(opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(win.game.Title())
	ebiten.SetWindowSize(int(float64(win.width)*scale), int(float64(win.height)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	err := ebiten.RunGame(win)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update polls input and advances the game by the measured frame time.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && (w.state.GameOver || w.state.Paused) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && w.sound != nil {
		w.logger.Info("sound toggled", "enabled", w.sound.Toggle())
	}

	now := time.Now()
	elapsed := 1.0 / float64(ebiten.TPS())
	if !w.last.IsZero() {
		elapsed = min(now.Sub(w.last), maxFrameGap).Seconds()
	}
	w.last = now

	result := w.game.Step(pollInput(), elapsed)
	if result.Err != nil {
		w.logger.Warn("tick rejected", "error", result.Err)
		return nil
	}
	w.state = result.State

	w.hitFlash = max(0, w.hitFlash-elapsed)
	for _, ev := range result.Events {
		if ev == sim.SignalHit.String() {
			w.hitFlash = 0.3
		}
	}

	if !w.state.GameOver {
		w.saved = false
	} else if !w.saved {
		w.saveRun()
		w.saved = true
	}
	return nil
}

// pollInput reads held keys and the first gamepad into an input frame.
func pollInput() core.InputFrame {
	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		in.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		id := ids[0]
		in.Tilt = shapes.Tilt(ebiten.GamepadAxisValue(id, 0))
		if ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton0) {
			in.Set(core.ActionJump)
		}
		// Start pauses a running game and restarts a finished one.
		if inpututil.IsGamepadButtonJustPressed(id, ebiten.GamepadButton7) {
			in.Set(core.ActionPause)
			in.Set(core.ActionRestart)
		}
	}
	return in
}

func (w *Window) saveRun() {
	w.logger.Info("run ended",
		"mode", w.game.ID(),
		"score", w.state.Score,
		"reason", w.state.Reason,
		"duration", w.state.Clock,
	)
	if w.store == nil || w.state.Score <= 0 {
		return
	}
	if _, err := w.store.SaveRun(storage.Run{
		GameID:   w.game.ID(),
		Score:    w.state.Score,
		Reason:   w.state.Reason,
		Duration: w.state.Clock,
	}); err != nil {
		w.logger.Warn("could not save run", "error", err)
	}
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	frame := w.game.Frame()

	w.drawSea(screen, frame)
	for _, s := range frame.Shells {
		vector.FillCircle(screen, float32(s.X), float32(s.Y), shapes.ShellRadius, shellColor, true)
		vector.StrokeCircle(screen, float32(s.X), float32(s.Y), shapes.ShellRadius, 1.5, foamColor, true)
	}
	for _, p := range frame.Whirlpools {
		c := poolColor
		if p.Hit {
			c = poolHitColor
		}
		for _, r := range shapes.PoolRings(p) {
			vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(r), 2, c, true)
		}
	}
	w.drawRider(screen, frame.Player)

	if w.hitFlash > 0 {
		vector.FillRect(screen, 0, 0, float32(w.width), float32(w.height), flashColor, false)
	}

	ebitenutil.DebugPrintAt(screen, shapes.HUDLine(frame.HUD), 12, 10)
	ebitenutil.DebugPrintAt(screen, w.game.Title(), w.width-140, 10)

	switch {
	case frame.HUD.Phase == sim.PhaseEnded:
		w.drawPanel(screen, shapes.EndBanner(frame.HUD))
	case w.state.Paused:
		w.drawPanel(screen, []string{"PAUSED", "P: Resume   Esc: Quit"})
	}
}

// drawSea fills the wave layers back to front and outlines the surface.
func (w *Window) drawSea(screen *ebiten.Image, frame sim.Frame) {
	for i := len(frame.Waves) - 1; i >= 0; i-- {
		poly := shapes.WaterBody(frame.Waves[i], float64(w.height))
		if poly == nil {
			continue
		}
		var path vector.Path
		path.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			path.LineTo(float32(p.X), float32(p.Y))
		}
		path.Close()

		op := &vector.DrawPathOptions{AntiAlias: true}
		op.ColorScale.ScaleWithColor(shapes.LayerColor(i, len(frame.Waves)))
		vector.FillPath(screen, &path, &vector.FillOptions{}, op)
	}

	if len(frame.Waves) == 0 {
		return
	}
	surface := frame.Waves[0]
	for i := 1; i < len(surface); i++ {
		a, b := surface[i-1], surface[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, foamColor, true)
	}
}

func (w *Window) drawRider(screen *ebiten.Image, p sim.PlayerView) {
	corners := shapes.Board(p)
	var path vector.Path
	path.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, c := range corners[1:] {
		path.LineTo(float32(c.X), float32(c.Y))
	}
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(boardColor)
	vector.FillPath(screen, &path, &vector.FillOptions{}, op)

	head := shapes.Head(p)
	vector.FillCircle(screen, float32(head.X), float32(head.Y), shapes.RiderRadius, riderColor, true)
}

func (w *Window) drawPanel(screen *ebiten.Image, lines []string) {
	const lineH, panelW = 18, 260
	panelH := len(lines)*lineH + 24
	x := (w.width - panelW) / 2
	y := (w.height - panelH) / 2

	vector.FillRect(screen, float32(x), float32(y), panelW, float32(panelH), panelColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), panelW, float32(panelH), 1, foamColor, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+16, y+12+i*lineH)
	}
}

// Layout keeps the logical viewport regardless of the window size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}
