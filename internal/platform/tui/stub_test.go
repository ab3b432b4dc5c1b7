package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wave-rider/internal/core"
	"github.com/vovakirdan/wave-rider/internal/registry"
)

const stubID = "tui_stub"

// scriptedGame ends after a fixed number of steps and records its inputs.
type scriptedGame struct {
	id       string
	endAfter int
	state    core.GameState
	resets   int
	elapsed  []float64
	inputs   []core.InputFrame
}

func init() {
	registry.Register(registry.GameInfo{ID: stubID, Title: "Scripted"}, func() registry.Game {
		return &scriptedGame{id: stubID, endAfter: 3}
	})
}

func (g *scriptedGame) ID() string    { return g.id }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Lives: 1}
}

func (g *scriptedGame) Step(in core.InputFrame, elapsed float64) core.StepResult {
	g.inputs = append(g.inputs, in)
	g.elapsed = append(g.elapsed, elapsed)
	if g.state.GameOver {
		return core.StepResult{State: g.state}
	}
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.state.Paused {
		return core.StepResult{State: g.state}
	}
	g.state.Score += 10
	g.state.Clock += elapsed
	if len(g.elapsed) >= g.endAfter {
		g.state.GameOver = true
		g.state.Reason = "game over"
	}
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState { return g.state }

type fakeSound struct{ on bool }

func (s *fakeSound) Toggle() bool  { s.on = !s.on; return s.on }
func (s *fakeSound) Enabled() bool { return s.on }

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
