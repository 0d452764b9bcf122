// Package snake turns the train into a snake: every cargo collected adds a
// car, and running the engine into its own cars ends the round.
package snake

import (
	"github.com/vovakirdan/trainboard/internal/entity"
	"github.com/vovakirdan/trainboard/internal/game"
	"github.com/vovakirdan/trainboard/internal/input"
	"github.com/vovakirdan/trainboard/internal/led"
	"github.com/vovakirdan/trainboard/internal/modes"
	"github.com/vovakirdan/trainboard/internal/registry"
	"github.com/vovakirdan/trainboard/internal/track"
)

const (
	SpawnChance = 50
	Speed       = 20
	// OverBlinkTicks is how long each of "ded" and the score stays up
	// after game over.
	OverBlinkTicks = 100
)

// StartLocation is where the engine appears on restart.
const StartLocation track.Location = 0x20

// Mode is snake.
type Mode struct {
	tick      uint64
	overTicks int
}

func New() *Mode { return &Mode{} }

func init() {
	registry.Register(modes.SnakeIndex, "snk", "Snake", func() registry.Mode {
		return New()
	})
}

func (m *Mode) Restart(s *game.State) {
	s.Reset()
	s.AddTrain(StartLocation, track.Anode, entity.Empty(), 1, entity.MaxCars, Speed)
	m.tick = 0
	m.overTicks = 0
	s.SetScore(1)
}

func (m *Mode) Tick(s *game.State) {
	m.tick++
	if s.Over {
		m.overTicks++
		if (m.overTicks/OverBlinkTicks)%2 == 0 {
			s.SetDisplay(game.Text("ded"))
		} else {
			s.SetDisplay(game.Score(s.Score))
		}
		return
	}
	s.SpawnCargo(SpawnChance, func() entity.Cargo { return entity.Have(led.SolidBright) }, nil)
}

func (m *Mode) Input(e input.Event, s *game.State) {
	if e.Kind != input.Pressed {
		return
	}
	if s.Over {
		m.Restart(s)
		return
	}
	if i, ok := e.TrackPressed(); ok {
		s.ToggleSwitch(i)
	}
}

func (m *Mode) TrainAdvanced(i int, s *game.State) {
	if s.Over {
		return
	}
	t := s.Train(i)

	front := t.Front()
	for j := 1; j < t.Len(); j++ {
		if t.Car(j).Loc == front {
			t.SetSpeed(0)
			m.overTicks = 0
			s.GameOver("ded")
			return
		}
	}

	if _, _, ok := s.Deliver(t); ok {
		t.AddCar(entity.Empty(), s.Rand)
		s.SetScore(uint16(t.Len()))
		s.Cue = game.CuePickup
	}
}

// Snapshot captures the round for determinism checks.
type Snapshot struct {
	Tick  uint64
	Score uint16
	Len   int
	Front track.Location
	Over  bool
}

// Snapshot returns the current round state.
func (m *Mode) Snapshot(s *game.State) Snapshot {
	snap := Snapshot{Tick: m.tick, Score: s.Score, Over: s.Over}
	if len(s.Trains()) > 0 {
		t := s.Train(0)
		snap.Len = t.Len()
		snap.Front = t.Front()
	}
	return snap
}
