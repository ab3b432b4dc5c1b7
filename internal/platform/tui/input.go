package tui

import (
	"time"

	"github.com/vovakirdan/wave-rider/internal/core"
)

// defaultHoldWindow is how long a key press counts as held. Terminals
// only report presses and auto-repeat, so a key stays down while its
// repeats keep arriving inside the window.
const defaultHoldWindow = 180 * time.Millisecond

// heldKeys turns a stream of key presses into level-triggered actions.
type heldKeys struct {
	window  time.Duration
	until   map[core.Action]time.Time
	pending []core.Action
}

func newHeldKeys(window time.Duration) *heldKeys {
	if window <= 0 {
		window = defaultHoldWindow
	}
	return &heldKeys{
		window: window,
		until:  make(map[core.Action]time.Time),
	}
}

// Press records a key press at now.
func (h *heldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionUp:
		h.until[a] = now.Add(h.window)
		// Opposite directions cancel each other so a reversal is immediate.
		switch a {
		case core.ActionLeft:
			delete(h.until, core.ActionRight)
		case core.ActionRight:
			delete(h.until, core.ActionLeft)
		}
	default:
		h.pending = append(h.pending, a)
	}
}

// Frame builds the input for a tick at now and consumes one-shot actions.
func (h *heldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, until := range h.until {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	for _, a := range h.pending {
		frame.Set(a)
	}
	h.pending = h.pending[:0]
	return frame
}

// Release drops every held and pending action.
func (h *heldKeys) Release() {
	clear(h.until)
	h.pending = h.pending[:0]
}
