package sim

// Signal is a discrete notification for audio/UI collaborators.
// Signals carry no payload; listeners read whatever context they need
// from the session.
type Signal int

const (
	SignalSplash   Signal = iota + 1 // Jump held this tick
	SignalCollect                    // A shell was collected
	SignalHit                        // A whirlpool struck the rider
	SignalWin                        // The clock ran out with the rider afloat
	SignalTimeUp                     // Timed run ended by the clock
	SignalGameOver                   // Lives exhausted
)

// String returns the signal name used in logs and events.
func (s Signal) String() string {
	switch s {
	case SignalSplash:
		return "splash"
	case SignalCollect:
		return "collect"
	case SignalHit:
		return "hit"
	case SignalWin:
		return "win"
	case SignalTimeUp:
		return "time_up"
	case SignalGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the signal marks the end of a session.
func (s Signal) Terminal() bool {
	return s == SignalWin || s == SignalTimeUp || s == SignalGameOver
}

// SignalSink receives signals as they are raised.
// Implementations must return promptly; the tick does not wait on them.
type SignalSink interface {
	Emit(Signal)
}

// SinkFunc adapts a plain function to SignalSink.
type SinkFunc func(Signal)

// Emit calls f(s).
func (f SinkFunc) Emit(s Signal) {
	f(s)
}

// MultiSink fans a signal out to several sinks in order. Nil entries are skipped.
type MultiSink []SignalSink

// Emit delivers s to every sink.
func (m MultiSink) Emit(s Signal) {
	for _, sink := range m {
		if sink != nil {
			sink.Emit(s)
		}
	}
}
