package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wave-rider/internal/registry"
	"github.com/vovakirdan/wave-rider/internal/storage"
)

const maxScores = 100

// Board colors shared with the menu palette.
var (
	boardTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	boardMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")).Padding(0, 1)
	boardTab    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	boardFrame  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("24")).Padding(0, 1)
)

// scoreKeys are the scoreboard bindings; they double as the help bar.
type scoreKeys struct {
	Scroll key.Binding
	Mode   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Mode, k.Back, k.Quit}
}

func (k scoreKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var boardKeys = scoreKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
	Mode:   key.NewBinding(key.WithKeys("left", "h", "right", "l", "tab", "shift+tab"), key.WithHelp("←/→", "mode")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel lists the recorded runs of one mode at a time.
type ScoreboardModel struct {
	modes  []registry.GameInfo
	mode   int
	store  *storage.Store
	scores []storage.ScoreEntry
	stats  storage.Stats
	table  table.Model
	help   help.Model
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the board on the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newScoreTable(width, height)
	m.reload()
	return m
}

// newScoreTable sizes the run table to the terminal; spare width goes to
// the date column.
func newScoreTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "End", Width: 9},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 12 + min(8, max(0, width-53))},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, height-10)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("24")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("24"))
	t.SetStyles(s)
	return t
}

// reload fetches runs and totals for the selected mode.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, storage.Stats{}
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.Stats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(s.Score),
			s.Reason,
			formatDuration(s.Duration),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle moves the mode selection by delta, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	if n := len(m.modes); n > 0 {
		m.mode = (m.mode + delta + n) % n
		m.reload()
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, boardKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Mode):
			switch msg.String() {
			case "left", "h", "shift+tab":
				m.cycle(-1)
			default:
				m.cycle(1)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = newScoreTable(m.width, m.height)
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = boardActive.Render(g.Title)
		} else {
			tabs[i] = boardTab.Render(g.Title)
		}
	}

	body := boardMuted.Italic(true).Padding(1, 2).
		Render("No runs recorded yet.\nCatch some waves to set a high score!")
	if len(m.scores) > 0 {
		body = m.table.View()
	}

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		center(boardTitle.Render("HIGH SCORES")),
		"",
		center(strings.Join(tabs, " ")),
		center(boardMuted.Render(m.statsLine())),
		"",
		center(boardFrame.Render(body)),
		"",
		boardMuted.Render(m.help.View(boardKeys)),
	)
}

// statsLine summarizes the selected mode.
func (m ScoreboardModel) statsLine() string {
	if m.stats.Runs == 0 {
		return "No runs yet"
	}
	return fmt.Sprintf("Runs: %d  Best: %d  Average: %.0f  Time on the water: %s",
		m.stats.Runs, m.stats.Best, m.stats.Average, m.stats.TotalPlayed.Round(time.Second))
}

// formatDuration renders a run length as m:ss.
func formatDuration(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the board standalone. It reports whether the user
// left with back rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
