package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wave-rider/internal/games/waverider"
	"github.com/vovakirdan/wave-rider/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [endless|timed]",
	Short: "Play Wave Rider in the terminal",
	Long: `Start a run in the given mode (endless by default).

Controls:
  Left/Right, A/D  - Paddle along the wave
  Space/Up/W       - Lift off the crest (hold)
  P/Esc            - Pause
  R                - Restart (after the run ends)
  M                - Toggle sound
  B                - Back
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - Start at lowest difficulty, more lives
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty, fewer lives
  fixed  - No progression, stays at config's initial level

Examples:
  waverider play
  waverider play timed --difficulty hard
  waverider play --config ./calm-sea.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd, windowCmd, simCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
	for _, cmd := range []*cobra.Command{playCmd, menuCmd, windowCmd} {
		cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	}
}

func runPlay(_ *cobra.Command, args []string) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	mode, err := waverider.ParseMode(name)
	if err != nil {
		fail("%v", err)
	}

	waverider.SetConfigPath(flagConfig)
	waverider.SetDifficultyPreset(flagDifficulty)

	player := openAudio(newLogger("waverider"))
	defer player.Close()

	game := waverider.New(mode)
	game.SetSink(player)

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig(), player)
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
