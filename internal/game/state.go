// Package game holds the board-wide aggregate that modes mutate: settings,
// trains, platforms, switches and the digit display.
package game

import (
	"github.com/vovakirdan/trainboard/internal/entity"
	"github.com/vovakirdan/trainboard/internal/led"
	"github.com/vovakirdan/trainboard/internal/rng"
	"github.com/vovakirdan/trainboard/internal/track"
)

// MaxTrains is the number of trains that can run at once.
const MaxTrains = 3

// Cue is a sound request from a mode, played by the console if the
// buzzer is enabled.
type Cue uint8

const (
	CueNone Cue = iota
	CueBeep
	CuePickup
	CueDeliver
	CueSelect
	CueGameOver
)

// State is shared by the active mode and the console.
type State struct {
	// TargetMode is set by the menu to request a mode change. Negative
	// means no request.
	TargetMode int
	Over       bool
	Redraw     bool
	Display    Display
	Score      uint16
	Cue        Cue

	Settings Settings
	// SettingsDirty asks the console to persist Settings.
	SettingsDirty bool

	Rand rng.Source

	Platforms *[track.NumPlatforms]entity.Platform
	Switches  *[track.NumSwitches]entity.Switch

	cars      []entity.Car
	carsUsed  int
	trains    [MaxTrains]*entity.Train
	numTrains int
	phase     uint8

	switchAt [track.NumLocations]int8
}

// NewState takes the arena's storage and builds the aggregate.
func NewState(arena *Arena, settings Settings, r rng.Source) *State {
	s := &State{
		TargetMode: -1,
		Settings:   settings,
		Rand:       r,
		Platforms:  arena.TakePlatforms(),
		Switches:   arena.TakeSwitches(),
		cars:       arena.TakeCars(),
		Redraw:     true,
	}
	for i := range s.switchAt {
		s.switchAt[i] = -1
	}
	for i := range s.Switches {
		s.switchAt[s.Switches[i].Location()] = int8(i)
	}
	return s
}

// Reset clears trains, cargo and flags ahead of a mode restart.
func (s *State) Reset() {
	s.ClearTrains()
	for i := range s.Platforms {
		s.Platforms[i].Clear()
		s.Platforms[i].SetPhaseSpeed(entity.MinPhaseSpeed)
	}
	s.Over = false
	s.Score = 0
	s.Cue = CueNone
	s.TargetMode = -1
	s.SetDisplay(Display{})
	s.Redraw = true
}

// SetDisplay changes the display and flags a redraw when it differs.
func (s *State) SetDisplay(d Display) {
	if s.Display != d {
		s.Display = d
		s.Redraw = true
	}
}

// SetScore records the score and shows it.
func (s *State) SetScore(n uint16) {
	s.Score = n
	s.SetDisplay(Score(n))
}

// GameOver ends the round and shows text.
func (s *State) GameOver(text string) {
	s.Over = true
	s.Cue = CueGameOver
	s.SetDisplay(Text(text))
}

// AddTrain starts a train of n cars at loc with room for maxCars. It
// returns false when no train slot or car storage is left.
func (s *State) AddTrain(loc track.Location, dir track.Direction, cargo entity.Cargo, n, maxCars int, speed uint8) (*entity.Train, bool) {
	if s.numTrains >= MaxTrains || maxCars < 1 || s.carsUsed+maxCars > len(s.cars) {
		return nil, false
	}
	storage := s.cars[s.carsUsed : s.carsUsed+maxCars]
	t := entity.NewTrain(storage, maxCars, loc, cargo, speed)
	t.SetDirection(dir)
	t.InitCars(cargo, n, maxCars, s.Rand)

	s.carsUsed += maxCars
	s.trains[s.numTrains] = t
	s.numTrains++
	s.Redraw = true
	return t, true
}

// RemoveTrain deactivates the last train.
func (s *State) RemoveTrain() {
	if s.numTrains == 0 {
		return
	}
	s.numTrains--
	t := s.trains[s.numTrains]
	s.carsUsed -= t.MaxCars()
	s.trains[s.numTrains] = nil
	s.Redraw = true
}

// ClearTrains removes every train.
func (s *State) ClearTrains() {
	for s.numTrains > 0 {
		s.RemoveTrain()
	}
}

// Trains returns the active trains in storage order.
func (s *State) Trains() []*entity.Train {
	return s.trains[:s.numTrains]
}

// Train returns train i.
func (s *State) Train(i int) *entity.Train {
	return s.trains[i]
}

// Route implements entity.Router: switches decide the branch on their
// active sides, other forks are a coin flip.
func (s *State) Route(loc track.Location, dir track.Direction) (track.Location, track.Direction) {
	if sw, ok := s.SwitchAt(loc); ok {
		if switched, active := sw.Switched(dir); active {
			return track.NextVia(loc, dir, switched)
		}
	}
	return track.Next(loc, dir, s.Rand)
}

// SwitchAt returns the switch at loc.
func (s *State) SwitchAt(loc track.Location) (*entity.Switch, bool) {
	if !loc.Valid() || s.switchAt[loc] < 0 {
		return nil, false
	}
	return &s.Switches[s.switchAt[loc]], true
}

// ToggleSwitch toggles switch i. Out of range indices are ignored.
func (s *State) ToggleSwitch(i int) {
	if i < 0 || i >= len(s.Switches) {
		return
	}
	s.Switches[i].Toggle()
	s.Redraw = true
}

// Occupied reports whether any train has a car at loc.
func (s *State) Occupied(loc track.Location) bool {
	for _, t := range s.Trains() {
		if t.AtLocation(loc) {
			return true
		}
	}
	return false
}

// SpawnCargo gives every empty platform a num/65536 chance to receive the
// cargo built by newCargo. It returns the indices that were filled.
func (s *State) SpawnCargo(num uint16, newCargo func() entity.Cargo, out []int) []int {
	for i := range s.Platforms {
		p := &s.Platforms[i]
		if !p.Cargo().IsEmpty() {
			continue
		}
		if rng.Chance(s.Rand, num) {
			p.SetCargo(newCargo())
			s.Redraw = true
			out = append(out, i)
		}
	}
	return out
}

// Deliver hands platform cargo to t if its engine is next to a loaded
// platform. It returns the platform index and the cargo taken.
func (s *State) Deliver(t *entity.Train) (int, entity.Cargo, bool) {
	one := []*entity.Train{t}
	for i := range s.Platforms {
		if c, ok := s.Platforms[i].Serve(one); ok {
			s.Redraw = true
			return i, c, true
		}
	}
	return -1, entity.Empty(), false
}

// PlatformsUnder appends the platforms whose adjacent track holds a car of t.
func (s *State) PlatformsUnder(t *entity.Train, out []int) []int {
	for i := range s.Platforms {
		if t.AtLocation(s.Platforms[i].Adjacent()) {
			out = append(out, i)
		}
	}
	return out
}

// RandomEmptyPlatform picks a uniformly random empty platform not next to
// any train.
func (s *State) RandomEmptyPlatform() (int, bool) {
	var candidates [track.NumPlatforms]int
	n := 0
	for i := range s.Platforms {
		p := &s.Platforms[i]
		if p.Cargo().IsEmpty() && !s.Occupied(p.Adjacent()) {
			candidates[n] = i
			n++
		}
	}
	if n == 0 {
		return -1, false
	}
	return candidates[s.Rand.Index(n)], true
}

// RandomBlink picks one of the blink patterns.
func (s *State) RandomBlink() led.Pattern {
	return led.BlinkPatterns[s.Rand.Index(len(led.BlinkPatterns))]
}

// Phase is the shared car animation phase.
func (s *State) Phase() uint8 { return s.phase }

// Animate advances the car phase and every switch and platform.
func (s *State) Animate() {
	s.phase++
	for i := range s.Switches {
		s.Switches[i].Animate()
	}
	for i := range s.Platforms {
		s.Platforms[i].Animate()
	}
}
