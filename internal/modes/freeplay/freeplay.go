// Package freeplay is the relaxed mode: one engine, switches under the
// player's control, a point for every cargo collected.
package freeplay

import (
	"github.com/vovakirdan/trainboard/internal/entity"
	"github.com/vovakirdan/trainboard/internal/game"
	"github.com/vovakirdan/trainboard/internal/input"
	"github.com/vovakirdan/trainboard/internal/modes"
	"github.com/vovakirdan/trainboard/internal/registry"
	"github.com/vovakirdan/trainboard/internal/track"
)

const (
	SpawnChance = 50
	StartSpeed  = 10
	SpeedStep   = 5
	MinSpeed    = 5
	MaxSpeed    = 50
)

// StartLocation is where the engine appears on restart.
const StartLocation track.Location = 0x20

// Mode is free play.
type Mode struct {
	score uint16
}

func New() *Mode { return &Mode{} }

func init() {
	registry.Register(modes.FreeplayIndex, "ply", "Free play", func() registry.Mode {
		return New()
	})
}

func (m *Mode) Restart(s *game.State) {
	s.Reset()
	s.AddTrain(StartLocation, track.Anode, entity.Empty(), 1, 1, StartSpeed)
	m.score = 0
	s.SetScore(m.score)
}

func (m *Mode) Tick(s *game.State) {
	s.SpawnCargo(SpawnChance, func() entity.Cargo { return entity.Have(s.RandomBlink()) }, nil)
}

func (m *Mode) Input(e input.Event, s *game.State) {
	if i, ok := e.TrackPressed(); ok {
		s.ToggleSwitch(i)
		return
	}
	if e.Kind != input.Pressed || len(s.Trains()) == 0 {
		return
	}
	t := s.Train(0)
	switch e.Button {
	case input.Left:
		if t.Speed() >= MinSpeed+SpeedStep {
			t.SetSpeed(t.Speed() - SpeedStep)
		}
	case input.Right:
		if t.Speed()+SpeedStep <= MaxSpeed {
			t.SetSpeed(t.Speed() + SpeedStep)
		}
	}
}

func (m *Mode) TrainAdvanced(i int, s *game.State) {
	if _, _, ok := s.Deliver(s.Train(i)); ok {
		m.score++
		s.SetScore(m.score)
		s.Cue = game.CuePickup
	}
}
