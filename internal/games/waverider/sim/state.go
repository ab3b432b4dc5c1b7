package sim

import "math"

// Mode selects how a session can end.
type Mode int

const (
	ModeEndless Mode = iota // Ends only when lives run out
	ModeTimed               // Also ends when the clock reaches zero
)

// String returns the mode name shown in menus.
func (m Mode) String() string {
	if m == ModeTimed {
		return "Time Attack"
	}
	return "Endless"
}

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseEnded {
		return "ended"
	}
	return "playing"
}

// EndReason tells why a session ended.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonTimeUp
	ReasonGameOver
)

// String returns the reason as shown on the end overlay and stored with scores.
func (r EndReason) String() string {
	switch r {
	case ReasonTimeUp:
		return "time up"
	case ReasonGameOver:
		return "game over"
	default:
		return ""
	}
}

// GameState holds score, lives and the countdown, and owns the
// Playing -> Ended transition. Score and lives only move while Playing.
type GameState struct {
	mode       Mode
	score      int
	lives      int
	timeLeft   float64
	phase      Phase
	reason     EndReason
	finalScore int
}

// NewGameState creates a fresh Playing state.
// Endless sessions get an infinite clock.
func NewGameState(mode Mode, lives int, timeLimit float64) *GameState {
	timeLeft := math.Inf(1)
	if mode == ModeTimed {
		timeLeft = timeLimit
	}
	return &GameState{
		mode:     mode,
		lives:    lives,
		timeLeft: timeLeft,
		phase:    PhasePlaying,
	}
}

func (g *GameState) Mode() Mode        { return g.mode }
func (g *GameState) Score() int        { return g.score }
func (g *GameState) Lives() int        { return g.lives }
func (g *GameState) Phase() Phase      { return g.phase }
func (g *GameState) Reason() EndReason { return g.reason }
func (g *GameState) FinalScore() int   { return g.finalScore }
func (g *GameState) Playing() bool     { return g.phase == PhasePlaying }
func (g *GameState) Ended() bool       { return g.phase == PhaseEnded }

// TimeLeft returns the remaining seconds, floored at zero.
func (g *GameState) TimeLeft() float64 {
	return math.Max(0, g.timeLeft)
}

// AddScore adds points while Playing. Non-positive amounts are ignored.
// Reports whether the score changed.
func (g *GameState) AddScore(points int) bool {
	if !g.Playing() || points <= 0 {
		return false
	}
	g.score += points
	return true
}

// LoseLife removes one life while Playing, never going below zero.
// Reports whether a life was lost.
func (g *GameState) LoseLife() bool {
	if !g.Playing() || g.lives <= 0 {
		return false
	}
	g.lives--
	return true
}

// Advance runs the clock and evaluates the end conditions for one tick.
// It returns the reason when the state transitioned to Ended on this call,
// and ReasonNone otherwise.
//
// When the clock expires on the same tick the last life is lost, the
// session ends as GameOver.
func (g *GameState) Advance(dt float64) EndReason {
	if !g.Playing() {
		return ReasonNone
	}

	timeUp := false
	if g.mode == ModeTimed {
		g.timeLeft -= dt
		timeUp = g.timeLeft <= 0
	}
	dead := g.lives <= 0

	switch {
	case dead:
		g.end(ReasonGameOver)
	case timeUp:
		g.end(ReasonTimeUp)
	default:
		return ReasonNone
	}
	return g.reason
}

func (g *GameState) end(reason EndReason) {
	g.phase = PhaseEnded
	g.reason = reason
	g.finalScore = g.score
}
