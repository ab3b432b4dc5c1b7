package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wave-rider/internal/audio"
	"github.com/vovakirdan/wave-rider/internal/games/waverider"
	"github.com/vovakirdan/wave-rider/internal/platform/tui"
	"github.com/vovakirdan/wave-rider/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Wave Rider with the main menu",
	Long: `Start the interactive menu: Endless, Time Attack, High Scores,
Sound and How to Play. After a run you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  M            - Toggle sound
  ?            - How to play
  Q            - Quit

Examples:
  waverider menu
  waverider menu --fps 30
  waverider menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	waverider.SetConfigPath(flagConfig)
	waverider.SetDifficultyPreset(flagDifficulty)

	player := openAudio(newLogger("waverider"))
	defer player.Close()

	store := openStore()
	runErr := tui.RunSession(tui.SessionOptions{
		Store:   store,
		Config:  runtimeConfig(),
		Sound:   player,
		Prepare: attachAudio(player),
	})
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running menu: %v", runErr)
	}
}

// attachAudio wires the player into every game the session starts.
func attachAudio(player *audio.Player) func(registry.Game) {
	return func(g registry.Game) {
		if wg, ok := g.(*waverider.Game); ok {
			wg.SetSink(player)
		}
	}
}
