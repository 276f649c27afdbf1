// Package agent provides placeholder automated players and a driver that
// plays them against each other through the public game API.
//
// Agents register themselves in init() functions, so the CLI can list and
// instantiate them by id without hardcoded dependencies.
package agent

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/Abdur667/CS182-Final/internal/game"
)

// Agent chooses moves for one seat. Agents only read the game; the Runner
// applies their choices.
type Agent interface {
	// ID returns the registry id (e.g. "random").
	ID() string

	// Placement picks a settlement node and a road edge touching it for the
	// opening draft. ok is false when no legal pair is left.
	Placement(g *game.Game) (node, edge int, ok bool)

	// Build picks at most one purchase for the current turn.
	Build(g *game.Game) (Move, bool)
}

// Info describes a registered agent.
type Info struct {
	ID          string
	Description string
}

// Factory creates an agent that draws randomness from rng.
type Factory func(rng *rand.Rand) Agent

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds an agent factory. Panics if id is already registered.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("agent: %q already registered", id))
	}
	factories[id] = f
	descriptions[id] = description
}

// List returns all registered agents sorted by id.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Description: descriptions[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the agent registered under id.
func Create(id string, rng *rand.Rand) (Agent, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("agent: unknown agent %q", id)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	return f(rng), nil
}

// Exists reports whether an agent with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
