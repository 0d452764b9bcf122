package console

import (
	"time"

	"github.com/vovakirdan/trainboard/internal/game"
)

type tone struct {
	freq uint16
	dur  time.Duration
}

var cueTones = map[game.Cue]tone{
	game.CueBeep:     {2000, 40 * time.Millisecond},
	game.CuePickup:   {1500, 60 * time.Millisecond},
	game.CueDeliver:  {2500, 120 * time.Millisecond},
	game.CueSelect:   {1000, 80 * time.Millisecond},
	game.CueGameOver: {400, 400 * time.Millisecond},
}

// playCue sounds cue if the buzzer is enabled.
func (c *Console) playCue(cue game.Cue) {
	if cue == game.CueNone || c.buzzer == nil || !c.state.Settings.Buzzer() {
		return
	}
	t, ok := cueTones[cue]
	if !ok {
		return
	}
	if err := c.buzzer.Tone(t.freq, t.dur); err != nil {
		c.logger.Warn("tone failed", "error", err)
	}
}
