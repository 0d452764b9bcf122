package console

import (
	"github.com/vovakirdan/trainboard/internal/fault"
	"github.com/vovakirdan/trainboard/internal/game"
)

var errText = [3]byte{'e', 'r', 'r'}

// enterFault stops the board, re-initialises the digit display and starts
// the fault display on it.
func (c *Console) enterFault(f *fault.Fault) {
	c.fault = f
	c.faultTicks = 0
	c.logger.Error("board fault", "code", int(f.Code), "msg", f.Msg, "mode", c.disp.Label())

	if c.buzzer != nil {
		if err := c.buzzer.Tone(0, 0); err != nil {
			c.logger.Warn("tone failed", "error", err)
		}
	}
	if err := c.digits.Init(); err != nil {
		c.logger.Warn("digit init failed", "error", err)
	}
	if err := c.digits.SetIntensity(game.MaxDigitLevel); err != nil {
		c.logger.Warn("digit intensity failed", "error", err)
	}
	c.showFault()
}

// faultTick alternates "err" and the fault code.
func (c *Console) faultTick() {
	c.faultTicks++
	if c.faultTicks%FaultBlinkTicks == 0 {
		c.showFault()
	}
}

func (c *Console) showFault() {
	var err error
	if (c.faultTicks/FaultBlinkTicks)%2 == 0 {
		err = c.digits.DisplayASCII(errText)
	} else {
		err = c.digits.DisplayNumber(uint16(c.fault.Code))
	}
	if err != nil {
		c.logger.Warn("digit write failed", "error", err)
	}
}
