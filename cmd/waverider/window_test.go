package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wave-rider/internal/games/waverider/sim"
)

func TestSignalLog(t *testing.T) {
	tests := []struct {
		name   string
		level  log.Level
		signal sim.Signal
		logged bool
	}{
		{"game over at info", log.InfoLevel, sim.SignalGameOver, true},
		{"win at info", log.InfoLevel, sim.SignalWin, true},
		{"hit hidden at info", log.InfoLevel, sim.SignalHit, false},
		{"hit at debug", log.DebugLevel, sim.SignalHit, true},
		{"splash never", log.DebugLevel, sim.SignalSplash, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.New(&buf)
			logger.SetLevel(tc.level)

			signalLog(logger).Emit(tc.signal)
			if got := strings.Contains(buf.String(), tc.signal.String()); got != tc.logged {
				t.Errorf("logged = %v, expected %v; output %q", got, tc.logged, buf.String())
			}
		})
	}
}
