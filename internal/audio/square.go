// Package audio is the piezo tone generator: a square wave that flips a
// fixed number of times, like the compare-match interrupt toggling the
// buzzer pin until its budget runs out.
package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Square is a square wave streamer with a toggle budget.
type Square struct {
	level   float64
	half    int // samples per half period
	pos     int
	toggles int
}

// NewSquare returns a wave of freq Hz lasting d, swinging between
// +volume and -volume.
func NewSquare(freq uint16, d time.Duration, volume float64, rate beep.SampleRate) *Square {
	if freq == 0 {
		return &Square{}
	}
	half := int(rate) / (2 * int(freq))
	if half < 1 {
		half = 1
	}
	toggles := int(2 * int64(freq) * d.Nanoseconds() / int64(time.Second))
	return &Square{level: volume, half: half, toggles: toggles}
}

// Toggles returns how many level flips remain.
func (s *Square) Toggles() int { return s.toggles }

func (s *Square) Stream(samples [][2]float64) (n int, ok bool) {
	if s.toggles <= 0 {
		return 0, false
	}
	for i := range samples {
		if s.toggles <= 0 {
			return i, true
		}
		samples[i][0] = s.level
		samples[i][1] = s.level

		s.pos++
		if s.pos >= s.half {
			s.pos = 0
			s.level = -s.level
			s.toggles--
		}
	}
	return len(samples), true
}

func (s *Square) Err() error { return nil }
