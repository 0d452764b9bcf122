package entity

import (
	"github.com/vovakirdan/trainboard/internal/fault"
	"github.com/vovakirdan/trainboard/internal/led"
	"github.com/vovakirdan/trainboard/internal/track"
)

// Sink receives staged LED values.
type Sink interface {
	Set(i int, v uint8)
}

// arm is the routing state of one side of a switch.
type arm struct {
	active   bool // the side has two branches
	switched bool // fork branch selected
	primary  track.Location
	fork     track.Location
	last     uint8
}

// Switch is a controllable fork. Each side with two branches selects one of
// them; a switch with both sides active is a cross.
type Switch struct {
	loc   track.Location
	phase uint8
	arms  [2]arm
	force bool
}

// NewSwitch builds the switch at loc, picking the initial branch of every
// active side with coin.
func NewSwitch(loc track.Location, coin track.Coin) Switch {
	s := Switch{loc: loc, force: true}
	for _, dir := range []track.Direction{track.Anode, track.Cathode} {
		primary, _ := track.NextVia(loc, dir, false)
		fork, _ := track.NextVia(loc, dir, true)
		a := arm{primary: primary, fork: track.None}
		if fork != primary {
			a.active = true
			a.fork = fork
			a.switched = coin.Bool()
		}
		s.arms[dir] = a
	}
	return s
}

// Location returns the fork node.
func (s *Switch) Location() track.Location { return s.loc }

// Phase returns the fade animation phase.
func (s *Switch) Phase() uint8 { return s.phase }

// Active reports whether side dir has a choice to make.
func (s *Switch) Active(dir track.Direction) bool { return s.arms[dir].active }

// IsCross reports whether both sides are switchable.
func (s *Switch) IsCross() bool { return s.arms[track.Anode].active && s.arms[track.Cathode].active }

// Switched returns the branch selection of side dir; ok is false when the
// side has no fork.
func (s *Switch) Switched(dir track.Direction) (switched, ok bool) {
	a := s.arms[dir]
	return a.switched, a.active
}

// SetSwitched forces the selection of an active side.
func (s *Switch) SetSwitched(dir track.Direction, switched bool) {
	if s.arms[dir].active {
		s.arms[dir].switched = switched
		s.force = true
	}
}

// Arms returns the two branches of side dir. fork is None without a fork.
func (s *Switch) Arms(dir track.Direction) (primary, fork track.Location) {
	return s.arms[dir].primary, s.arms[dir].fork
}

// ActiveLocation returns the branch trains take leaving through dir.
func (s *Switch) ActiveLocation(dir track.Direction) (track.Location, bool) {
	a := s.arms[dir]
	if !a.active {
		return track.None, false
	}
	if a.switched {
		return a.fork, true
	}
	return a.primary, true
}

// inactiveLocation returns the branch not currently selected on side dir.
func (s *Switch) inactiveLocation(dir track.Direction) track.Location {
	a := s.arms[dir]
	if a.switched {
		return a.primary
	}
	return a.fork
}

// Toggle moves the switch to its next state. A single-sided switch flips;
// a cross cycles (t,t) -> (f,t) -> (f,f) -> (t,f) -> (t,t) as
// (anode, cathode).
func (s *Switch) Toggle() {
	an := &s.arms[track.Anode]
	ca := &s.arms[track.Cathode]
	switch {
	case an.active && ca.active:
		if an.switched == ca.switched {
			an.switched = !an.switched
		} else {
			ca.switched = !ca.switched
		}
	case an.active:
		an.switched = !an.switched
	case ca.active:
		ca.switched = !ca.switched
	default:
		fault.Raise(fault.CodeNoSwitch, "switch %s has no active direction", s.loc)
	}
	s.force = true
}

// Animate advances the fade phase by one tick.
func (s *Switch) Animate() {
	s.phase++
}

// Render stages the arm LEDs: the selected arm fades between half and full
// brightness, the other arm is dark. Arms occupied by a train are left to
// the train. It reports whether any arm value changed since the last render.
func (s *Switch) Render(sink Sink, brightness uint8, occupied func(track.Location) bool) bool {
	changed := false
	level := led.Fade1.PWM(s.phase, brightness>>1, brightness)

	for _, dir := range []track.Direction{track.Anode, track.Cathode} {
		a := &s.arms[dir]
		if !a.active {
			continue
		}
		if off := s.inactiveLocation(dir); !occupied(off) {
			sink.Set(int(off), 0)
		}
		on, _ := s.ActiveLocation(dir)
		if !occupied(on) {
			sink.Set(int(on), level)
		}
		if s.force || a.last != level {
			changed = true
		}
		a.last = level
	}
	s.force = false
	return changed
}
