// Package led turns animation state into PWM bytes and keeps the shadow
// copy of the LED matrix so that only changed cells reach the driver.
package led

// Pattern is one of the animation shapes an LED can follow.
type Pattern uint8

const (
	SolidBright Pattern = iota
	Blink1
	Blink2
	Blink3
	Fade1
)

// Colour limits used for platform (red) and car (yellow) LEDs.
const (
	RedMin    = 30
	RedMax    = 80
	YellowMin = 80
	YellowMax = 255
)

// BlinkPatterns are the patterns cargo can be spawned with at random.
var BlinkPatterns = [...]Pattern{Blink1, Blink2, Blink3}

func (p Pattern) String() string {
	switch p {
	case SolidBright:
		return "solid"
	case Blink1:
		return "blink1"
	case Blink2:
		return "blink2"
	case Blink3:
		return "blink3"
	case Fade1:
		return "fade1"
	default:
		return "unknown"
	}
}

// PWM returns the LED byte for the given animation phase.
// min is the "off" level of a blink; Fade1 sweeps from max down to min and back.
func (p Pattern) PWM(phase, min, max uint8) uint8 {
	switch p {
	case Blink1:
		if phase%64 <= 11 {
			return min
		}
		return max
	case Blink2:
		switch m := phase % 64; {
		case m <= 7:
			return min
		case m <= 15:
			return max
		case m <= 23:
			return min
		default:
			return max
		}
	case Blink3:
		switch m := phase % 64; {
		case m <= 5, m >= 12 && m <= 17, m >= 24 && m <= 29:
			return min
		default:
			return max
		}
	case Fade1:
		h := int(phase)
		if h >= 128 {
			h = 255 - h
		}
		v := int(max) + h*(int(min)-int(max))/127
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	default:
		return max
	}
}
