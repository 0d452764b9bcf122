package console

import (
	"github.com/vovakirdan/trainboard/internal/entity"
	"github.com/vovakirdan/trainboard/internal/game"
)

// render composes the LED frame from entity state and pushes what changed.
// It reports whether anything visible changed this tick.
func (c *Console) render() bool {
	s := c.state
	set := &s.Settings
	changed := s.Redraw

	c.frame.Reset()

	for _, p := range s.Platforms {
		c.frame.Set(int(p.Location()), set.ScalePlatform(p.Brightness()))
	}

	for i := range s.Switches {
		if s.Switches[i].Render(&c.frame, set.SwitchBrightness(), s.Occupied) {
			changed = true
		}
	}

	// Trains go last so they cover switch arms they sit on.
	for _, t := range s.Trains() {
		for i, car := range t.Cars() {
			v := car.Cargo.CarBrightness(entity.CarPhase(s.Phase(), i))
			c.frame.Set(int(car.Loc), set.ScaleCar(v))
		}
	}

	n, err := c.frame.Flush(c.leds)
	if n > 0 {
		changed = true
	}
	if err != nil {
		if msg := err.Error(); msg != c.ledErr {
			c.ledErr = msg
			c.logger.Warn("LED write failed", "error", err)
		}
	} else {
		c.ledErr = ""
	}

	if lvl := set.DigitBrightness(); lvl != c.intensity {
		if err := c.digits.SetIntensity(lvl); err != nil {
			c.logger.Warn("digit intensity failed", "error", err)
		} else {
			c.intensity = lvl
			changed = true
		}
	}

	if !c.shownOK || s.Display != c.shown {
		if err := c.pushDisplay(s.Display); err != nil {
			c.logger.Warn("digit write failed", "error", err)
		} else {
			c.shown = s.Display
			c.shownOK = true
			changed = true
		}
	}
	s.Redraw = false
	return changed
}

func (c *Console) pushDisplay(d game.Display) error {
	switch d.Kind {
	case game.DisplayScore:
		return c.digits.DisplayNumber(d.Digits())
	case game.DisplayText:
		return c.digits.DisplayASCII(d.Text)
	default:
		return c.digits.DisplayASCII([3]byte{' ', ' ', ' '})
	}
}
