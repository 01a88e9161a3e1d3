// Package registry provides a global registry of snake game modes.
// Modes register themselves in init() functions, allowing the CLI and the
// menu to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Mode is a named variation of the game. Configure adjusts a loaded config
// before a game of this mode starts; nil leaves it untouched.
type Mode struct {
	ID          string // Used for CLI arguments and score storage
	Title       string
	Description string
	Configure   func(cfg *config.SnakeConfig)
}

// Apply returns a copy of cfg adjusted for this mode.
func (m Mode) Apply(cfg config.SnakeConfig) config.SnakeConfig {
	if m.Configure != nil {
		m.Configure(&cfg)
	}
	return cfg
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID          string
	Title       string
	Description string
}

var (
	modes = make(map[string]Mode)
	mu    sync.RWMutex
)

// Register adds a mode to the registry.
// Typically called from an init() function.
// Panics if a mode with the same ID is already registered.
func Register(m Mode) {
	mu.Lock()
	defer mu.Unlock()

	if m.ID == "" {
		panic("registry: mode with empty id")
	}
	if _, exists := modes[m.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", m.ID))
	}
	modes[m.ID] = m
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(modes))
	for _, m := range modes {
		result = append(result, ModeInfo{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get looks up a mode by its ID.
// Returns an error if the mode ID is not registered.
func Get(id string) (Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := modes[id]
	if !ok {
		return Mode{}, fmt.Errorf("registry: unknown mode %q", id)
	}
	return m, nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
