package waverider

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/wave-rider/internal/core"
	"github.com/vovakirdan/wave-rider/internal/games/waverider/sim"
)

// Visual characters for rendering
const (
	SurfaceChar   = '≈'
	SwellChar     = '~'
	WaterChar     = '░'
	ShellChar     = '@'
	WhirlpoolChar = '◎'
	SwirlChar     = '∘'
	RiderChar     = 'o'
	FoamChar      = '*'
	LifeChar      = '♥'
)

// Minimum terminal size the scene can be drawn in.
const (
	MinWidth  = 30
	MinHeight = 10
)

// viewMapper converts world units to terminal cells.
type viewMapper struct {
	sx, sy float64
}

func newViewMapper(dst *core.Screen, worldW, worldH float64) viewMapper {
	return viewMapper{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()) / worldH,
	}
}

func (m viewMapper) col(x float64) int { return int(math.Floor(x * m.sx)) }
func (m viewMapper) row(y float64) int { return int(math.Floor(y * m.sy)) }

// worldX returns the world x at the centre of a column.
func (m viewMapper) worldX(col int) float64 { return (float64(col) + 0.5) / m.sx }

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		dst.DrawTextCentered(dst.Height()/2, "Wave Rider could not start")
		if g.err != nil {
			dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		}
		return
	}
	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	w, h := g.session.Viewport()
	m := newViewMapper(dst, w, h)

	g.drawSea(dst, m)
	g.drawShells(dst, m)
	g.drawWhirlpools(dst, m)
	g.drawRider(dst, m)
	g.drawHUD(dst)

	switch {
	case g.frame.HUD.Phase == sim.PhaseEnded:
		g.drawEndOverlay(dst)
	case g.paused:
		drawPanel(dst, core.ColorDim, "PAUSED", "", "P: Resume  Q: Quit")
	}
}

// drawSea fills the water body and draws the swells and the riding surface.
func (g *Game) drawSea(dst *core.Screen, m viewMapper) {
	waves := g.frame.Waves
	if len(waves) == 0 {
		return
	}

	for col := 0; col < dst.Width(); col++ {
		x := m.worldX(col)
		top := m.row(SurfaceAt(waves[0], x))

		dst.DrawVLineColored(col, top+1, dst.Height()-top-1, WaterChar, core.ColorWater)

		for i := len(waves) - 1; i >= 1; i-- {
			if r := m.row(SurfaceAt(waves[i], x)); r > top {
				dst.SetColored(col, r, SwellChar, core.ColorSwell)
			}
		}
		dst.SetColored(col, top, SurfaceChar, core.ColorSurface)
	}
}

func (g *Game) drawShells(dst *core.Screen, m viewMapper) {
	for _, s := range g.frame.Shells {
		dst.SetColored(m.col(s.X), m.row(s.Y), ShellChar, core.ColorShell)
	}
}

func (g *Game) drawWhirlpools(dst *core.Screen, m viewMapper) {
	for _, w := range g.frame.Whirlpools {
		color := core.ColorWhirlpool
		if w.Hit {
			color = core.ColorAlert
		}
		cx, cy := m.col(w.X), m.row(w.Y)

		// The ring widens with the whirlpool's growth.
		reach := max(1, int(math.Round(w.Scale*m.sx*24)))
		for dx := 1; dx <= reach; dx++ {
			dst.SetColored(cx-dx, cy, SwirlChar, color)
			dst.SetColored(cx+dx, cy, SwirlChar, color)
		}
		dst.SetColored(cx, cy, WhirlpoolChar, color)
	}
}

// BoardGlyph returns the board character for a rotation in radians.
// Negative rotation lifts the nose.
func BoardGlyph(rotation float64) rune {
	switch {
	case rotation < -0.03:
		return '/'
	case rotation > 0.03:
		return '\\'
	default:
		return '='
	}
}

func (g *Game) drawRider(dst *core.Screen, m viewMapper) {
	p := g.frame.Player
	cx, cy := m.col(p.X), m.row(p.Y)

	color := core.ColorRider
	if g.hitFlash > 0 {
		color = core.ColorAlert
	}

	board := BoardGlyph(p.Rotation)
	for dx := -1; dx <= 1; dx++ {
		dst.SetColored(cx+dx, cy, board, color)
	}
	dst.SetColored(cx, cy-1, RiderChar, color)

	if g.splash > 0 {
		dst.SetColored(cx-2, cy+1, FoamChar, core.ColorFoam)
		dst.SetColored(cx+2, cy+1, FoamChar, core.ColorFoam)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := g.frame.HUD
	lives := strings.Repeat(string(LifeChar), max(0, hud.Lives))
	text := fmt.Sprintf(" Score: %d  Lives: %s  Time: %s ", hud.Score, lives, FormatTime(hud.TimeLeft))
	dst.DrawTextColored(0, 0, text, core.ColorHUD)

	title := " " + g.Title() + " "
	dst.DrawTextColored(dst.Width()-len([]rune(title)), 0, title, core.ColorDim)
}

func (g *Game) drawEndOverlay(dst *core.Screen) {
	hud := g.frame.HUD
	heading := "GAME OVER"
	if hud.Reason == sim.ReasonTimeUp {
		heading = "TIME UP"
	}
	drawPanel(dst, core.ColorAlert, heading,
		fmt.Sprintf("Final score: %d", hud.FinalScore),
		"R: Restart  B: Menu  Q: Quit")
}

// drawPanel draws a centered box with up to three lines of text.
func drawPanel(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 6
	height := len(lines) + 2

	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		x := box.X + (width-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, color)
	}
}

// FormatTime renders the HUD clock: whole seconds, ∞ when untimed.
func FormatTime(timeLeft float64) string {
	if math.IsInf(timeLeft, 1) {
		return "∞"
	}
	return fmt.Sprintf("%d", int(math.Floor(math.Max(0, timeLeft))))
}

// SurfaceAt interpolates a sampled polyline at world x. Points outside
// the sampled range take the nearest end value.
func SurfaceAt(pts []core.Vec2, x float64) float64 {
	if len(pts) == 0 {
		return 0
	}
	if x <= pts[0].X {
		return pts[0].Y
	}
	last := pts[len(pts)-1]
	if x >= last.X {
		return last.Y
	}

	// Samples are evenly spaced except for the final one.
	step := pts[1].X - pts[0].X
	i := min(int((x-pts[0].X)/step), len(pts)-2)
	for i > 0 && pts[i].X > x {
		i--
	}
	for i < len(pts)-2 && pts[i+1].X < x {
		i++
	}
	a, b := pts[i], pts[i+1]
	t := (x - a.X) / (b.X - a.X)
	return a.Y + (b.Y-a.Y)*t
}
