// Package registry is the catalogue of playable toys. Each toy package
// registers a factory from init(), so the platform can list and create
// toys without importing them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bounce-arcade/internal/core"
)

// Game is the contract between a toy and the platform. Implementations
// hold pure simulation state; the platform owns timing, input mapping and
// terminal output.
type Game interface {
	// ID returns the identifier used on the command line and in the
	// score database.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Controls lists the key bindings shown in help screens.
	Controls() []Control

	// Reset starts a fresh round sized to the runtime config. It is also
	// how a terminal resize reaches the toy.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by toys that can follow a terminal resize
// without a full Reset, keeping the values the user tuned live.
type Resizer interface {
	Resize(cfg core.RuntimeConfig)
}

// Control describes one key binding.
type Control struct {
	Key  string
	Help string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID       string
	Title    string
	Controls []Control
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory. It panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	factories[id] = f
	infos[id] = GameInfo{ID: id, Title: g.Title(), Controls: g.Controls()}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Info returns metadata for one game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
