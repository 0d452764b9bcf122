package core

// Color is the hue of an LED cell. Intensity is carried separately.
type Color uint8

const (
	ColorDefault Color = iota
	ColorYellow        // track LEDs: cars and switch arms
	ColorRed           // platform LEDs
	ColorGray          // frame and labels
)

func (c Color) String() string {
	switch c {
	case ColorYellow:
		return "yellow"
	case ColorRed:
		return "red"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}
