package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wave-rider/internal/core"
	"github.com/vovakirdan/wave-rider/internal/registry"
	"github.com/vovakirdan/wave-rider/internal/storage"
)

// MenuItemKind says what selecting a menu entry does.
type MenuItemKind int

const (
	MenuItemGame MenuItemKind = iota
	MenuItemScores
	MenuItemSound
	MenuItemHelp
	MenuItemQuit
)

// MenuItem is a selectable line in the menu.
type MenuItem struct {
	Kind   MenuItemKind
	GameID string
	Title  string
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("45"))
	menuCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))
	menuBestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))
	menuDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

var howToPlay = []string{
	"Ride the swell, collect shells, dodge whirlpools.",
	"",
	"Left/Right, A/D   paddle along the wave",
	"Space, W, Up      lift off the crest (hold)",
	"P                 pause",
	"R                 restart after the run ends",
	"M                 toggle sound",
	"B / Esc           back to the menu",
	"",
	"Shells are worth points. A whirlpool costs a life",
	"and throws you back. Time Attack ends when the",
	"clock runs out; Endless ends with your last life.",
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	sound          Sound
	keyMapper      *KeyMapper
	best           map[string]int
	showHelp       bool
	quitting       bool
	selected       *MenuItem // Set when the player picks a game mode
	openScoreboard bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, sound Sound) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+4)
	best := make(map[string]int, len(games))

	for _, g := range games {
		items = append(items, MenuItem{Kind: MenuItemGame, GameID: g.ID, Title: g.Title})
		if store != nil {
			if score, err := store.HighScore(g.ID); err == nil {
				best[g.ID] = score
			}
		}
	}
	items = append(items,
		MenuItem{Kind: MenuItemScores, Title: "High Scores"},
		MenuItem{Kind: MenuItemSound, Title: "Sound"},
		MenuItem{Kind: MenuItemHelp, Title: "How to Play"},
		MenuItem{Kind: MenuItemQuit, Title: "Quit"},
	)

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		sound:     sound,
		keyMapper: NewKeyMapper(),
		best:      best,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.showHelp {
		switch action {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionNone:
		default:
			m.showHelp = false
		}
		return m, nil
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		return m.activate(m.items[m.cursor])

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSound:
		m.toggleSound()

	case MenuActionHelp:
		m.showHelp = true
	}

	return m, nil
}

func (m MenuModel) activate(item MenuItem) (tea.Model, tea.Cmd) {
	switch item.Kind {
	case MenuItemGame:
		m.selected = &item
		return m, tea.Quit
	case MenuItemScores:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuItemSound:
		m.toggleSound()
	case MenuItemHelp:
		m.showHelp = true
	case MenuItemQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *MenuModel) toggleSound() {
	if m.sound != nil {
		m.sound.Toggle()
	}
}

// itemLabel returns the text shown for an entry.
func (m MenuModel) itemLabel(item MenuItem) string {
	switch item.Kind {
	case MenuItemGame:
		if best := m.best[item.GameID]; best > 0 {
			return fmt.Sprintf("%s  %s", item.Title, menuBestStyle.Render(fmt.Sprintf("best %d", best)))
		}
	case MenuItemSound:
		switch {
		case m.sound == nil:
			return item.Title + ": unavailable"
		case m.sound.Enabled():
			return item.Title + ": On"
		default:
			return item.Title + ": Off"
		}
	}
	return item.Title
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("~  W A V E   R I D E R  ~"), m.width))
	b.WriteString("\n\n")

	if m.showHelp {
		for _, line := range howToPlay {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render("Any key: Back  |  Q: Quit"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	for i, item := range m.items {
		line := "  " + m.itemLabel(item)
		if i == m.cursor {
			line = menuCursorStyle.Render("> ") + m.itemLabel(item)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  M: Sound  |  ?: Help  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected game entry, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring styled text by
// its printed cell width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
