// Package menu is the attract mode: demo trains roam the board while the
// player picks a game with the direction buttons.
package menu

import (
	"github.com/vovakirdan/trainboard/internal/entity"
	"github.com/vovakirdan/trainboard/internal/game"
	"github.com/vovakirdan/trainboard/internal/input"
	"github.com/vovakirdan/trainboard/internal/led"
	"github.com/vovakirdan/trainboard/internal/modes"
	"github.com/vovakirdan/trainboard/internal/registry"
	"github.com/vovakirdan/trainboard/internal/track"
)

// SpawnChance is the per-tick chance (out of 65536) that an empty platform
// gets cargo.
const SpawnChance = 50

const (
	firstIndex = modes.FreeplayIndex
	lastIndex  = modes.SettingsIndex
)

type demoTrain struct {
	loc   track.Location
	dir   track.Direction
	cars  int
	speed uint8
}

var demoTrains = []demoTrain{
	{0x00, track.Anode, 3, 20},
	{0x60, track.Anode, 2, 15},
}

// Mode is the menu.
type Mode struct {
	selected int
}

// New returns a menu with the first game selected.
func New() *Mode {
	return &Mode{selected: firstIndex}
}

func init() {
	registry.Register(modes.MenuIndex, registry.UnknownLabel, "Menu", func() registry.Mode {
		return New()
	})
}

// Selected returns the highlighted menu index.
func (m *Mode) Selected() int { return m.selected }

func (m *Mode) Restart(s *game.State) {
	s.Reset()
	for _, d := range demoTrains {
		s.AddTrain(d.loc, d.dir, entity.Empty(), d.cars, d.cars, d.speed)
	}
	m.show(s)
}

func (m *Mode) show(s *game.State) {
	s.SetDisplay(game.Text(registry.Label(m.selected)))
}

func (m *Mode) Tick(s *game.State) {
	s.SpawnCargo(SpawnChance, func() entity.Cargo { return entity.Have(led.SolidBright) }, nil)
}

func (m *Mode) Input(e input.Event, s *game.State) {
	if e.Kind != input.Pressed {
		return
	}
	switch e.Button {
	case input.Up:
		m.selected++
		if m.selected > lastIndex {
			m.selected = firstIndex
		}
		m.show(s)
	case input.Down:
		m.selected--
		if m.selected < firstIndex {
			m.selected = lastIndex
		}
		m.show(s)
	case input.Right:
		s.TargetMode = m.selected
		s.Cue = game.CueSelect
	}
}

func (m *Mode) TrainAdvanced(i int, s *game.State) {
	t := s.Train(i)
	prev := t.Previous()

	for j := range s.Switches {
		sw := &s.Switches[j]
		if sw.Location() == t.Caboose() {
			continue
		}
		for _, dir := range []track.Direction{track.Anode, track.Cathode} {
			if loc, ok := sw.ActiveLocation(dir); ok && loc == prev {
				if s.Rand.Bool() {
					s.ToggleSwitch(j)
				}
				break
			}
		}
	}

	s.Deliver(t)
}
