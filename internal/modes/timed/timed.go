// Package timed is the delivery mode: cargo appears on platforms with a
// deadline, the player stops the train next to it to load, then delivers
// it to the platform that asks for it.
package timed

import (
	"github.com/vovakirdan/trainboard/internal/entity"
	"github.com/vovakirdan/trainboard/internal/fault"
	"github.com/vovakirdan/trainboard/internal/game"
	"github.com/vovakirdan/trainboard/internal/input"
	"github.com/vovakirdan/trainboard/internal/modes"
	"github.com/vovakirdan/trainboard/internal/registry"
	"github.com/vovakirdan/trainboard/internal/rng"
	"github.com/vovakirdan/trainboard/internal/track"
)

const (
	TimerTicks  = 8000
	HurryTicks  = 3000
	PanicTicks  = 1000
	MaxTimers   = 3
	SpawnChance = 20
	SpeedInc    = 5
	MaxSpeed    = 15
	StartCars   = 3
	MaxCars     = 5
)

// StartLocation is where the engine appears on restart.
const StartLocation track.Location = 0x20

// growAt lists the scores at which the train gains a car.
var growAt = [...]uint16{3, 10, 20}

// Timer is the deadline of one platform's cargo.
type Timer struct {
	Platform  int
	TicksLeft uint16
}

// Mode is timed delivery.
type Mode struct {
	timers  [MaxTimers]Timer
	nTimers int
	score   uint16
	tick    uint64

	under []int
	wants []entity.Cargo
}

func New() *Mode {
	return &Mode{
		under: make([]int, 0, track.NumPlatforms),
		wants: make([]entity.Cargo, 0, track.NumPlatforms),
	}
}

func init() {
	registry.Register(modes.TimedIndex, "tme", "Time", func() registry.Mode {
		return New()
	})
}

// Timers returns the live timers.
func (m *Mode) Timers() []Timer { return m.timers[:m.nTimers] }

func (m *Mode) Restart(s *game.State) {
	s.Reset()
	s.AddTrain(StartLocation, track.Anode, entity.Empty(), StartCars, MaxCars, 0)
	m.nTimers = 0
	m.wants = m.wants[:0]
	m.score = 0
	m.tick = 0
	s.SetScore(0)
}

func (m *Mode) addTimer(platform int) bool {
	if m.nTimers >= MaxTimers {
		return false
	}
	m.timers[m.nTimers] = Timer{Platform: platform, TicksLeft: TimerTicks}
	m.nTimers++
	return true
}

// removeTimer drops the timer of platform. Every loaded platform has a
// timer, so a missing one is a fault.
func (m *Mode) removeTimer(platform int) {
	for i := 0; i < m.nTimers; i++ {
		if m.timers[i].Platform == platform {
			copy(m.timers[i:], m.timers[i+1:m.nTimers])
			m.nTimers--
			return
		}
	}
	fault.Raise(fault.CodeUnknownTimer, "no timer for platform %d", platform)
}

// Spawn places cargo on platform and starts its timer.
func (m *Mode) Spawn(s *game.State, platform int, c entity.Cargo) bool {
	if !m.addTimer(platform) {
		return false
	}
	p := &s.Platforms[platform]
	p.SetCargo(c)
	p.SetPhaseSpeed(entity.MinPhaseSpeed)
	s.Redraw = true
	return true
}

func (m *Mode) Tick(s *game.State) {
	if s.Over {
		return
	}
	m.tick++

	for i := 0; i < m.nTimers; i++ {
		tm := &m.timers[i]
		if tm.TicksLeft > 0 {
			tm.TicksLeft--
		}
		switch tm.TicksLeft {
		case HurryTicks:
			s.Platforms[tm.Platform].SetPhaseSpeed(2)
		case PanicTicks:
			s.Platforms[tm.Platform].SetPhaseSpeed(3)
		case 0:
			s.Train(0).SetSpeed(0)
			s.GameOver("ovr")
			return
		}
	}

	if t := s.Train(0); t.Speed() == 0 {
		m.serve(s, t)
	}
	m.placeWants(s)

	for i := range s.Platforms {
		if m.nTimers >= MaxTimers {
			break
		}
		if !s.Platforms[i].Cargo().IsEmpty() || !rng.Chance(s.Rand, SpawnChance) {
			continue
		}
		m.Spawn(s, i, entity.Have(s.RandomBlink()))
	}
}

// serve exchanges cargo between the stopped train and the platforms
// alongside it.
func (m *Mode) serve(s *game.State, t *entity.Train) {
	m.under = s.PlatformsUnder(t, m.under[:0])

	for _, i := range m.under {
		p := &s.Platforms[i]
		c := p.Cargo()
		switch c.Kind {
		case entity.CargoHave:
			if t.LoadCargo(c) {
				p.Clear()
				m.removeTimer(i)
				m.wants = append(m.wants, entity.Want(c.Pattern))
				s.Cue = game.CuePickup
				s.Redraw = true
			}
		case entity.CargoWant:
			if t.UnloadCargo(entity.Have(c.Pattern)) {
				p.Clear()
				m.removeTimer(i)
				m.score++
				s.SetScore(m.score)
				s.Cue = game.CueDeliver
				for _, g := range growAt {
					if m.score == g {
						t.AddCar(entity.Empty(), s.Rand)
					}
				}
			}
		}
	}
}

// placeWants puts remembered drop-off requests on random free platforms.
// Requests that do not fit yet are kept for a later tick.
func (m *Mode) placeWants(s *game.State) {
	placed := 0
	for _, w := range m.wants {
		i, ok := s.RandomEmptyPlatform()
		if !ok || !m.Spawn(s, i, w) {
			break
		}
		placed++
	}
	m.wants = append(m.wants[:0], m.wants[placed:]...)
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
		return
	}
	t := s.Train(0)
	switch e.Button {
	case input.Left:
		if t.Speed() >= SpeedInc {
			t.SetSpeed(t.Speed() - SpeedInc)
		}
	case input.Right:
		if t.Speed()+SpeedInc <= MaxSpeed {
			t.SetSpeed(t.Speed() + SpeedInc)
		}
	}
}

func (m *Mode) TrainAdvanced(int, *game.State) {}

// Snapshot captures the round for determinism checks.
type Snapshot struct {
	Tick   uint64
	Score  uint16
	Timers []Timer
	Over   bool
}

// Snapshot returns the current round state.
func (m *Mode) Snapshot(s *game.State) Snapshot {
	return Snapshot{
		Tick:   m.tick,
		Score:  m.score,
		Timers: append([]Timer(nil), m.Timers()...),
		Over:   s.Over,
	}
}
