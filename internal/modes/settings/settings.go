// Package settings adjusts the display brightness levels and the buzzer.
// Changes are previewed live on a demo train and cargo.
package settings

import (
	"fmt"

	"github.com/vovakirdan/trainboard/internal/entity"
	"github.com/vovakirdan/trainboard/internal/game"
	"github.com/vovakirdan/trainboard/internal/input"
	"github.com/vovakirdan/trainboard/internal/modes"
	"github.com/vovakirdan/trainboard/internal/registry"
	"github.com/vovakirdan/trainboard/internal/track"
)

// SpawnChance is the per-tick chance (out of 65536) of preview cargo.
const SpawnChance = 300

// Mode is the settings editor.
type Mode struct {
	cur game.Setting
}

func New() *Mode { return &Mode{} }

func init() {
	registry.Register(modes.SettingsIndex, "set", "Settings", func() registry.Mode {
		return New()
	})
}

// Current returns the setting being edited.
func (m *Mode) Current() game.Setting { return m.cur }

func (m *Mode) Restart(s *game.State) {
	s.Reset()
	s.AddTrain(0x00, track.Anode, entity.Empty(), 3, 3, 20)
	m.cur = game.DigitBrightness
	m.show(s)
}

func (m *Mode) show(s *game.State) {
	s.SetDisplay(game.Text(fmt.Sprintf("%s%d", m.cur, s.Settings.Level(m.cur))))
}

func (m *Mode) Tick(s *game.State) {
	s.SpawnCargo(SpawnChance, func() entity.Cargo {
		if s.Rand.Bool() {
			return entity.Want(s.RandomBlink())
		}
		return entity.Have(s.RandomBlink())
	}, nil)
}

func (m *Mode) Input(e input.Event, s *game.State) {
	if e.Kind != input.Pressed {
		return
	}
	if e.Button.IsTrack() {
		on := !s.Settings.Buzzer()
		s.Settings.SetBuzzer(on)
		s.SettingsDirty = true
		s.Redraw = true
		if on {
			s.Cue = game.CueBeep
		}
		return
	}

	switch e.Button {
	case input.Down:
		m.cur = (m.cur + 1) % game.NumSettings
	case input.Up:
		m.cur = (m.cur + game.NumSettings - 1) % game.NumSettings
	case input.Left:
		if s.Settings.Dec(m.cur) {
			s.SettingsDirty = true
		}
	case input.Right:
		if s.Settings.Inc(m.cur) {
			s.SettingsDirty = true
		}
	}
	m.show(s)
}

func (m *Mode) TrainAdvanced(i int, s *game.State) {
	s.Deliver(s.Train(i))
}
