package game

import (
	"github.com/vovakirdan/trainboard/internal/entity"
	"github.com/vovakirdan/trainboard/internal/fault"
	"github.com/vovakirdan/trainboard/internal/track"
)

// Arena owns the statically sized entity storage. Each array can be taken
// exactly once.
type Arena struct {
	platforms [track.NumPlatforms]entity.Platform
	switches  [track.NumSwitches]entity.Switch
	cars      [entity.MaxCars]entity.Car

	platformsTaken bool
	switchesTaken  bool
	carsTaken      bool
}

// NewArena builds every platform and switch on the board. Initial switch
// positions come from coin.
func NewArena(coin track.Coin) *Arena {
	a := &Arena{}
	for i, loc := range track.PlatformLocations() {
		a.platforms[i] = entity.NewPlatform(loc)
	}
	for i, loc := range track.SwitchLocations() {
		a.switches[i] = entity.NewSwitch(loc, coin)
	}
	return a
}

// TakePlatforms hands out the platform array.
func (a *Arena) TakePlatforms() *[track.NumPlatforms]entity.Platform {
	if a.platformsTaken {
		fault.Raise(fault.CodeResourceTaken, "platforms already taken")
	}
	a.platformsTaken = true
	return &a.platforms
}

// TakeSwitches hands out the switch array.
func (a *Arena) TakeSwitches() *[track.NumSwitches]entity.Switch {
	if a.switchesTaken {
		fault.Raise(fault.CodeResourceTaken, "switches already taken")
	}
	a.switchesTaken = true
	return &a.switches
}

// TakeCars hands out the car storage shared by all trains.
func (a *Arena) TakeCars() []entity.Car {
	if a.carsTaken {
		fault.Raise(fault.CodeResourceTaken, "cars already taken")
	}
	a.carsTaken = true
	return a.cars[:]
}
