// Package entity holds the things that live on the board: cargo, switches,
// platforms and trains. Entities never reference each other by pointer;
// they share track locations, and the game state mediates between them.
package entity

import "github.com/vovakirdan/trainboard/internal/led"

// CargoKind tags a Cargo value.
type CargoKind uint8

const (
	CargoEmpty CargoKind = iota
	CargoHave
	CargoWant
)

// CarEmptyLevel is the dim glow of a car carrying nothing.
const CarEmptyLevel = led.YellowMax - 92

// Cargo is a symbolic payload. Have is something to pick up, Want is a
// request for a matching Have to be dropped off.
type Cargo struct {
	Kind    CargoKind
	Pattern led.Pattern
}

// Empty returns the absence of cargo.
func Empty() Cargo { return Cargo{} }

// Have returns a pick-up cargo with pattern p.
func Have(p led.Pattern) Cargo { return Cargo{Kind: CargoHave, Pattern: p} }

// Want returns a drop-off request for pattern p.
func Want(p led.Pattern) Cargo { return Cargo{Kind: CargoWant, Pattern: p} }

// IsEmpty reports whether c carries nothing.
func (c Cargo) IsEmpty() bool { return c.Kind == CargoEmpty }

// PlatformBrightness is the red platform LED value for c at phase.
func (c Cargo) PlatformBrightness(phase uint8) uint8 {
	switch c.Kind {
	case CargoHave:
		return c.Pattern.PWM(phase, led.RedMin, led.RedMax)
	case CargoWant:
		return c.Pattern.PWM(phase, led.RedMax/2, led.RedMin/2)
	default:
		return 0
	}
}

// CarBrightness is the yellow car LED value for c at phase.
func (c Cargo) CarBrightness(phase uint8) uint8 {
	switch c.Kind {
	case CargoHave:
		return c.Pattern.PWM(phase, led.YellowMin, led.YellowMax)
	case CargoWant:
		return led.YellowMin
	default:
		return CarEmptyLevel
	}
}

func (c Cargo) String() string {
	switch c.Kind {
	case CargoHave:
		return "have(" + c.Pattern.String() + ")"
	case CargoWant:
		return "want(" + c.Pattern.String() + ")"
	default:
		return "empty"
	}
}
