package entity

import (
	"github.com/vovakirdan/trainboard/internal/core"
	"github.com/vovakirdan/trainboard/internal/track"
)

// Phase speed bounds for platform animation.
const (
	MinPhaseSpeed = 1
	MaxPhaseSpeed = 3
)

// Platform is a station slot next to one track node.
type Platform struct {
	loc        track.Location
	adjacent   track.Location
	cargo      Cargo
	phase      uint8
	phaseSpeed uint8
}

// NewPlatform builds the platform at loc. It faults if loc is not a
// platform node.
func NewPlatform(loc track.Location) Platform {
	return Platform{
		loc:        loc,
		adjacent:   track.AdjacentTrack(loc),
		phaseSpeed: MinPhaseSpeed,
	}
}

func (p *Platform) Location() track.Location { return p.loc }
func (p *Platform) Adjacent() track.Location { return p.adjacent }
func (p *Platform) Cargo() Cargo             { return p.cargo }
func (p *Platform) Phase() uint8             { return p.phase }
func (p *Platform) PhaseSpeed() uint8        { return p.phaseSpeed }

// SetCargo places c on the platform and restarts its animation.
func (p *Platform) SetCargo(c Cargo) {
	p.cargo = c
	p.phase = 0
}

// Clear empties the platform.
func (p *Platform) Clear() { p.cargo = Empty() }

// SetPhaseSpeed sets how fast the cargo animation runs, clamped to
// [MinPhaseSpeed, MaxPhaseSpeed].
func (p *Platform) SetPhaseSpeed(k uint8) {
	p.phaseSpeed = core.Clamp(k, MinPhaseSpeed, MaxPhaseSpeed)
}

// Animate advances the phase by the phase speed.
func (p *Platform) Animate() {
	p.phase += p.phaseSpeed
}

// Brightness is the platform LED value at the current phase.
func (p *Platform) Brightness() uint8 {
	return p.cargo.PlatformBrightness(p.phase)
}

// Serve hands the cargo to the first train whose engine sits on the
// adjacent track node. It returns the cargo that was taken.
func (p *Platform) Serve(trains []*Train) (Cargo, bool) {
	if p.cargo.IsEmpty() {
		return Empty(), false
	}
	for _, t := range trains {
		if t != nil && t.Front() == p.adjacent {
			c := p.cargo
			p.Clear()
			return c, true
		}
	}
	return Empty(), false
}
