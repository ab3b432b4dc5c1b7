// Package tui provides the Bubble Tea integration for Wave Rider.
// It handles the terminal UI loop, input mapping, and the menu/game flow.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameGap caps the elapsed time fed to the simulation after a stall
// (suspended terminal, slow SSH link).
const maxFrameGap = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// tick loop that produced it; a game model ignores ticks from older loops.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var tickLoops atomic.Uint64

// newTickLoop returns a fresh tick loop id.
func newTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// frameElapsed returns the seconds between two ticks. The first tick
// (zero last) is assumed to take one nominal interval.
func frameElapsed(last, now time.Time, tickRate int) float64 {
	if last.IsZero() {
		return tickInterval(tickRate).Seconds()
	}
	d := now.Sub(last)
	if d < 0 {
		d = 0
	}
	return min(d, maxFrameGap).Seconds()
}
