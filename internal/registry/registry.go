// Package registry keeps the set of playable 2048 modes.
// Modes register in init() under an ID and any number of short aliases,
// so front-ends can list and start them by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// ErrUnknownMode is returned when no mode matches an ID or alias.
var ErrUnknownMode = errors.New("registry: unknown mode")

// Game is what the front-ends drive. Implementations hold pure game logic;
// input mapping, timing and drawing to a real terminal live in the platform.
type Game interface {
	// ID is the stable identifier stored in the results log ("2048", "2048_endless").
	ID() string
	Title() string

	// Reset starts a fresh game. Called at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions pressed during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID      string
	Title   string
	Aliases []string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
	aliases = make(map[string]string)
)

// Register adds a mode under id and the given aliases.
// It panics if the id or any alias is already taken.
func Register(id string, f Factory, alias ...string) {
	mu.Lock()
	defer mu.Unlock()

	if _, taken := entries[id]; taken {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	if _, taken := aliases[id]; taken {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	for _, a := range alias {
		_, isID := entries[a]
		_, isAlias := aliases[a]
		if isID || isAlias || a == id {
			panic(fmt.Sprintf("registry: alias %q already registered", a))
		}
	}

	entries[id] = entry{
		factory: f,
		info:    GameInfo{ID: id, Title: f().Title(), Aliases: alias},
	}
	for _, a := range alias {
		aliases[a] = id
	}
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Resolve maps an ID or alias to the registered ID.
func Resolve(name string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return resolveLocked(name)
}

func resolveLocked(name string) (string, bool) {
	if _, ok := entries[name]; ok {
		return name, true
	}
	id, ok := aliases[name]
	return id, ok
}

// Create starts a new game by ID or alias.
func Create(name string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	id, ok := resolveLocked(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, name)
	}
	return entries[id].factory(), nil
}

// Exists reports whether name is a registered ID or alias.
func Exists(name string) bool {
	_, ok := Resolve(name)
	return ok
}
