// Package registry is the catalogue of playable modes. Each mode registers
// a factory and its menu metadata from an init function; frontends list,
// look up and create modes by ID or short alias.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/wave-rider/internal/core"
)

// Game is one playable mode as seen by a frontend. Implementations keep
// Bubble Tea and ebiten out; a driver feeds actions and measured time and
// reads back state and a character frame.
type Game interface {
	ID() string    // Storage key
	Title() string // Display name

	// Reset starts a fresh run; it is also how a frontend restarts.
	Reset(cfg core.RuntimeConfig)

	// Step advances by elapsed wall seconds with the actions held this tick.
	Step(in core.InputFrame, elapsed float64) core.StepResult

	// Render draws into dst, which the caller has cleared.
	Render(dst *core.Screen)

	State() core.GameState
}

// ErrUnknownGame is returned by Create for names that match no mode.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string // Storage key, also accepted on the command line
	Title string // Menu and scoreboard label
	Alias string // Optional short command-line name, e.g. "timed"
	Order int    // Menu position; ties sort by ID
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
	aliases = make(map[string]string) // alias -> id
)

// Register adds a mode. It is meant for init functions and panics on an
// empty ID or on an ID or alias that is already taken.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty game id")
	}
	if _, taken := resolve(info.ID); taken {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Alias != "" {
		if _, taken := resolve(info.Alias); taken {
			panic(fmt.Sprintf("registry: alias %q already registered", info.Alias))
		}
		aliases[info.Alias] = info.ID
	}
	if info.Title == "" {
		info.Title = info.ID
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// resolve maps an ID or alias to its entry. Callers hold mu.
func resolve(name string) (entry, bool) {
	if e, ok := entries[name]; ok {
		return e, true
	}
	if id, ok := aliases[name]; ok {
		return entries[id], true
	}
	return entry{}, false
}

// List returns every mode in menu order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup finds a mode by ID or alias.
func Lookup(name string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := resolve(name)
	return e.info, ok
}

// Create instantiates a mode by ID or alias.
func Create(name string) (Game, error) {
	mu.RLock()
	e, ok := resolve(name)
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, name)
	}
	return e.factory(), nil
}
