package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wave-rider/internal/core"
	"github.com/vovakirdan/wave-rider/internal/registry"
	"github.com/vovakirdan/wave-rider/internal/storage"
)

// Sound is the audio switch exposed to the player (M key).
type Sound interface {
	Toggle() bool
	Enabled() bool
}

// GameModel is the Bubble Tea model for a single running game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	sound      Sound
	keyMapper  *KeyMapper
	keys       *heldKeys
	loop       uint64
	lastTick   time.Time
	gameState  core.GameState
	embedded   bool // Owned by a SessionModel; back/quit never end the program
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for the current ending
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sound Sound) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	game.Reset(cfg)

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		sound:     sound,
		keyMapper: NewKeyMapper(),
		keys:      newHeldKeys(defaultHoldWindow),
		loop:      newTickLoop(),
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "m":
		if m.sound != nil {
			m.sound.Toggle()
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, m.exit()
	}

	switch action {
	case core.ActionBack:
		// Esc pauses a running game; a second press (or B) leaves it.
		if m.gameState.GameOver || m.gameState.Paused || msg.String() == "b" {
			m.backToMenu = true
			return m, m.exit()
		}
		m.keys.Press(core.ActionPause, time.Now())
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.keys.Press(action, time.Now())
		}
	default:
		m.keys.Press(action, time.Now())
	}

	return m, nil
}

func (m GameModel) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// handleTick advances the game by the wall time since the previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	elapsed := frameElapsed(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.game.Step(m.keys.Frame(now), elapsed)
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveRun records a finished run. Empty runs are not kept.
func (m GameModel) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Reason:   m.gameState.Reason,
		Duration: m.gameState.Clock,
	})
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".waverider", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state observed at the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// BackToMenu returns true if the player left the game.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the player asked to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run plays a single game until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sound Sound) error {
	p := tea.NewProgram(
		NewGameModel(game, store, cfg, sound),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
