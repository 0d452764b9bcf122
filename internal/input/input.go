// Package input models the 12-button panel: eight track buttons and four
// direction buttons, a debouncer turning raw levels into edge events, and a
// simulated button matrix for hosts without real switches.
package input

import "fmt"

// Button is a logical button index.
type Button uint8

const (
	NumTrackButtons = 8
	NumButtons      = 12
)

// Direction buttons follow the track buttons.
const (
	Up Button = iota + NumTrackButtons
	Down
	Left
	Right
)

// Track returns track button i.
func Track(i int) Button { return Button(i) }

// IsTrack reports whether b is one of the track buttons.
func (b Button) IsTrack() bool { return b < NumTrackButtons }

// Index is the track button number of b.
func (b Button) Index() int { return int(b) }

func (b Button) String() string {
	switch b {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	if b.IsTrack() {
		return fmt.Sprintf("track%d", int(b))
	}
	return fmt.Sprintf("button%d", int(b))
}

// Kind is the edge an Event reports.
type Kind uint8

const (
	Pressed Kind = iota
	Released
)

// Event is a debounced button edge.
type Event struct {
	Kind   Kind
	Button Button
}

// Press returns the pressed edge of b.
func Press(b Button) Event { return Event{Kind: Pressed, Button: b} }

// Release returns the released edge of b.
func Release(b Button) Event { return Event{Kind: Released, Button: b} }

// IsPress reports whether e is a pressed edge of b.
func (e Event) IsPress(b Button) bool { return e.Kind == Pressed && e.Button == b }

// TrackPressed returns the track button index of a pressed track edge.
func (e Event) TrackPressed() (int, bool) {
	if e.Kind == Pressed && e.Button.IsTrack() {
		return e.Button.Index(), true
	}
	return -1, false
}

func (e Event) String() string {
	if e.Kind == Pressed {
		return e.Button.String() + " pressed"
	}
	return e.Button.String() + " released"
}

// Source yields events once per tick.
type Source interface {
	Poll(out []Event) []Event
}
