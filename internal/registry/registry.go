// Package registry keeps the puzzle variants the platform can launch.
// Variants register a factory from init(), so the CLI, menu and SSH
// server can list and build them by id without importing each one.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// Game is what the platform drives on every tick.
// Implementations hold no terminal state; input arrives as an InputFrame
// and output is drawn into a core.Screen.
type Game interface {
	// ID is the stable identifier used on the command line and in storage
	// (e.g. "tiles", "tiles_swap").
	ID() string

	// Title is the human-readable name shown in menus.
	Title() string

	// Reset starts a fresh shuffled puzzle for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the input collected since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst. The screen is cleared by the game itself.
	Render(dst *core.Screen)

	// State reports moves, elapsed time and the solved/paused flags.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new variant instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id. It panics on duplicates.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered variant sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := lo.MapToSlice(titles, func(id, title string) GameInfo {
		return GameInfo{ID: id, Title: title}
	})
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// IDs returns the registered ids in sorted order.
func IDs() []string {
	return lo.Map(List(), func(info GameInfo, _ int) string { return info.ID })
}

// Create builds the variant registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
