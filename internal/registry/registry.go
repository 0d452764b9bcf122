// Package registry provides a global registry for game mode factories.
// Modes register themselves in init() functions under a fixed menu index,
// allowing the console to discover and instantiate them without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/trainboard/internal/game"
	"github.com/vovakirdan/trainboard/internal/input"
)

// Mode is the event surface every game mode implements. Modes hold only
// their own bookkeeping (scores, timers, menu cursor); everything on the
// board lives in game.State.
type Mode interface {
	// Restart resets the round: trains, platforms, score and display.
	Restart(s *game.State)

	// Tick runs once per main loop iteration before trains advance.
	Tick(s *game.State)

	// Input reacts to a debounced button edge.
	Input(e input.Event, s *game.State)

	// TrainAdvanced is called after train i actually moved.
	TrainAdvanced(i int, s *game.State)
}

// Info contains metadata about a registered mode.
type Info struct {
	Index int
	Label string // three characters, shown on the digit display
	Title string
}

// Factory creates a new instance of a mode.
type Factory func() Mode

// UnknownLabel is shown for an index with no mode.
const UnknownLabel = "wat"

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[int]entry)
	mu      sync.RWMutex
)

// Register adds a mode factory under index.
// Typically called from a mode's init() function.
// Panics if the index is taken or the label is not three characters.
func Register(index int, label, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[index]; exists {
		panic(fmt.Sprintf("registry: mode %d already registered", index))
	}
	if len(label) != 3 {
		panic(fmt.Sprintf("registry: label %q must be three characters", label))
	}

	entries[index] = entry{
		info:    Info{Index: index, Label: label, Title: title},
		factory: f,
	}
}

// List returns all registered modes sorted by index.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Index < result[j].Index
	})

	return result
}

// Create instantiates the mode registered under index.
func Create(index int) (Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[index]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %d", index)
	}

	return e.factory(), nil
}

// Lookup returns the metadata of index.
func Lookup(index int) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[index]
	return e.info, ok
}

// Label returns the display label of index, or UnknownLabel.
func Label(index int) string {
	if info, ok := Lookup(index); ok {
		return info.Label
	}
	return UnknownLabel
}

// ByLabel finds a mode by its label.
func ByLabel(label string) (Info, bool) {
	for _, info := range List() {
		if info.Label == label {
			return info, true
		}
	}
	return Info{}, false
}

// Exists checks if a mode is registered under index.
func Exists(index int) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[index]
	return ok
}
