package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wave-rider/internal/games/waverider"
	"github.com/vovakirdan/wave-rider/internal/games/waverider/sim"
	"github.com/vovakirdan/wave-rider/internal/platform/gui"
)

var (
	flagWindowMode  string
	flagWindowScale float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play Wave Rider in a desktop window",
	Long: `Open a desktop window. Keys are read as truly held, and the left
stick of the first gamepad steers with analog tilt.

Controls:
  Left/Right, A/D  - Paddle (or left stick)
  Space/Up/W       - Lift off the crest (or gamepad A)
  P/Esc            - Pause (or Start)
  R                - Restart after the run ends (or Start)
  M                - Toggle sound
  Esc (paused/ended), Q - Close

Examples:
  waverider window
  waverider window --mode timed --scale 1.5`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagWindowMode, "mode", "endless", "Mode: endless or timed")
	windowCmd.Flags().Float64Var(&flagWindowScale, "scale", 1, "Window size relative to the 960x540 playfield")
}

func runWindow(_ *cobra.Command, _ []string) {
	mode, err := waverider.ParseMode(flagWindowMode)
	if err != nil {
		fail("%v", err)
	}

	waverider.SetConfigPath(flagConfig)
	waverider.SetDifficultyPreset(flagDifficulty)

	logger := newLogger("waverider-window")
	player := openAudio(logger)
	defer player.Close()

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if err := gui.Run(gui.Options{
		Mode:    mode,
		Runtime: runtimeConfig(),
		Store:   store,
		Sound:   player,
		Sink:    sim.MultiSink{player, signalLog(logger)},
		Logger:  logger,
		Scale:   flagWindowScale,
	}); err != nil {
		fail("running window: %v", err)
	}
}

// signalLog reports session signals: run endings at info, the rest at
// debug. Splash fires every held tick and is left out.
func signalLog(logger *log.Logger) sim.SinkFunc {
	return func(s sim.Signal) {
		switch {
		case s.Terminal():
			logger.Info("signal", "name", s)
		case s != sim.SignalSplash:
			logger.Debug("signal", "name", s)
		}
	}
}
