package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/wave-rider/internal/audio"
	"github.com/vovakirdan/wave-rider/internal/core"
	"github.com/vovakirdan/wave-rider/internal/storage"
)

// Shared per-command game flags.
var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
	})
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// openStore opens the scores database; the game runs without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openAudio starts the speaker. Without a sound device the player stays
// silent but still works as a switch.
func openAudio(logger *log.Logger) *audio.Player {
	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable", "error", err)
	}
	player.SetEnabled(!flagMute)
	return player
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
