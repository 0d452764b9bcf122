package game

import "fmt"

// DisplayKind tags a Display value.
type DisplayKind uint8

const (
	DisplayNone DisplayKind = iota
	DisplayScore
	DisplayText
)

// Display is what the 3-digit display should show.
type Display struct {
	Kind  DisplayKind
	Score uint16
	Text  [3]byte
}

// Score shows n right aligned, truncated to its last three digits.
func Score(n uint16) Display {
	return Display{Kind: DisplayScore, Score: n}
}

// Text shows the first three bytes of s, space padded.
func Text(s string) Display {
	d := Display{Kind: DisplayText, Text: [3]byte{' ', ' ', ' '}}
	copy(d.Text[:], s)
	return d
}

// Digits returns the score as shown by the display.
func (d Display) Digits() uint16 {
	return d.Score % 1000
}

func (d Display) String() string {
	switch d.Kind {
	case DisplayScore:
		return fmt.Sprintf("%3d", d.Digits())
	case DisplayText:
		return string(d.Text[:])
	default:
		return "   "
	}
}
