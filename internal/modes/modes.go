// Package modes dispatches board events to the active game mode.
package modes

import (
	"github.com/vovakirdan/trainboard/internal/game"
	"github.com/vovakirdan/trainboard/internal/input"
	"github.com/vovakirdan/trainboard/internal/registry"
)

// Menu indices of the built-in modes.
const (
	MenuIndex     = 0
	FreeplayIndex = 1
	SnakeIndex    = 2
	TimedIndex    = 3
	SettingsIndex = 4
)

// Dispatcher owns the active mode and forwards events to it.
type Dispatcher struct {
	index int
	mode  registry.Mode
}

// Select creates mode index and restarts it on s.
func (d *Dispatcher) Select(index int, s *game.State) error {
	m, err := registry.Create(index)
	if err != nil {
		return err
	}
	d.index = index
	d.mode = m
	m.Restart(s)
	return nil
}

// Index returns the menu index of the active mode.
func (d *Dispatcher) Index() int { return d.index }

// Label returns the display label of the active mode.
func (d *Dispatcher) Label() string { return registry.Label(d.index) }

// Active reports whether a mode has been selected.
func (d *Dispatcher) Active() bool { return d.mode != nil }

// Mode returns the active mode.
func (d *Dispatcher) Mode() registry.Mode { return d.mode }

func (d *Dispatcher) Restart(s *game.State) {
	if d.mode != nil {
		d.mode.Restart(s)
	}
}

func (d *Dispatcher) Tick(s *game.State) {
	if d.mode != nil {
		d.mode.Tick(s)
	}
}

func (d *Dispatcher) Input(e input.Event, s *game.State) {
	if d.mode != nil {
		d.mode.Input(e, s)
	}
}

func (d *Dispatcher) TrainAdvanced(i int, s *game.State) {
	if d.mode != nil {
		d.mode.TrainAdvanced(i, s)
	}
}
