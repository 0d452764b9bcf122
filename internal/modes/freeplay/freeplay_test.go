package freeplay

import (
	"testing"

	"github.com/vovakirdan/trainboard/internal/entity"
	"github.com/vovakirdan/trainboard/internal/game"
	"github.com/vovakirdan/trainboard/internal/input"
	"github.com/vovakirdan/trainboard/internal/led"
	"github.com/vovakirdan/trainboard/internal/rng"
	"github.com/vovakirdan/trainboard/internal/track"
)

func newState() *game.State {
	r := rng.New(9)
	return game.NewState(game.NewArena(r), game.DefaultSettings(), r)
}

// step runs one tick in main loop order and reports how many trains moved.
func step(m *Mode, s *game.State) int {
	m.Tick(s)
	moved := 0
	for i, t := range s.Trains() {
		if t.Advance(s) {
			moved++
			m.TrainAdvanced(i, s)
		}
	}
	s.Animate()
	return moved
}

func TestAdvanceAfterTenTicks(t *testing.T) {
	s := newState()
	m := New()
	m.Restart(s)

	train := s.Train(0)
	if train.Front() != 0x20 || train.Speed() != 10 {
		t.Fatalf("start = (%s, %d), expected (0x20, 10)", train.Front(), train.Speed())
	}

	for tick := 1; tick <= 9; tick++ {
		if step(m, s) != 0 {
			t.Fatalf("train moved on tick %d", tick)
		}
	}
	if step(m, s) != 1 {
		t.Fatal("train did not move on tick 10")
	}
	if train.Front() != 0x21 {
		t.Errorf("Front() = %s, expected 0x21", train.Front())
	}
}

func TestPickupScores(t *testing.T) {
	s := newState()
	m := New()
	m.Restart(s)

	s.Platforms[3].SetCargo(entity.Have(led.Blink1)) // next to 0x24
	train := s.Train(0)
	train.SetSpeed(entity.MaxSpeed)

	for train.Front() != 0x24 {
		if train.Advance(s) {
			m.TrainAdvanced(0, s)
		}
	}
	if s.Score != 1 || s.Display != game.Score(1) {
		t.Errorf("score = %d display = %v, expected 1", s.Score, s.Display)
	}
	if !s.Platforms[3].Cargo().IsEmpty() {
		t.Error("platform kept its cargo")
	}
	if s.Cue != game.CuePickup {
		t.Errorf("Cue = %v, expected pickup", s.Cue)
	}
}

func TestTrackButtonTogglesSwitch(t *testing.T) {
	s := newState()
	m := New()
	m.Restart(s)

	before, _ := s.Switches[0].ActiveLocation(track.Anode)
	m.Input(input.Press(input.Track(0)), s)
	after, _ := s.Switches[0].ActiveLocation(track.Anode)
	if before == after {
		t.Errorf("switch 0 stayed on %s", after)
	}
}

func TestSpeedButtons(t *testing.T) {
	s := newState()
	m := New()
	m.Restart(s)
	train := s.Train(0)

	for i := 0; i < 20; i++ {
		m.Input(input.Press(input.Right), s)
	}
	if train.Speed() != MaxSpeed {
		t.Errorf("Speed() = %d, expected %d", train.Speed(), MaxSpeed)
	}
	for i := 0; i < 20; i++ {
		m.Input(input.Press(input.Left), s)
	}
	if train.Speed() != MinSpeed {
		t.Errorf("Speed() = %d, expected %d", train.Speed(), MinSpeed)
	}
}
