package settings

import (
	"testing"

	"github.com/vovakirdan/trainboard/internal/game"
	"github.com/vovakirdan/trainboard/internal/input"
	"github.com/vovakirdan/trainboard/internal/rng"
)

func newState() *game.State {
	r := rng.New(5)
	return game.NewState(game.NewArena(r), game.DefaultSettings(), r)
}

func TestSettingsNavigation(t *testing.T) {
	s := newState()
	m := New()
	m.Restart(s)

	if got := s.Display.String(); got != "DB1" {
		t.Fatalf("initial display = %q, expected %q", got, "DB1")
	}

	steps := []struct {
		button input.Button
		want   string
	}{
		{input.Right, "DB2"},
		{input.Right, "DB3"},
		{input.Down, "TB5"},
		{input.Right, "TB5"},
		{input.Left, "TB4"},
		{input.Down, "PB3"},
		{input.Down, "YB2"},
		{input.Down, "DB3"},
		{input.Up, "YB2"},
	}
	for i, st := range steps {
		m.Input(input.Press(st.button), s)
		if got := s.Display.String(); got != st.want {
			t.Fatalf("step %d (%s): display = %q, expected %q", i, st.button, got, st.want)
		}
	}

	if !s.SettingsDirty {
		t.Error("SettingsDirty = false after level changes")
	}
	if got := s.Settings.Bytes(); got != [game.SettingsSize]byte{3, 4, 3, 2, 0} {
		t.Errorf("Bytes() = %v", got)
	}
}

func TestNoChangeAtBounds(t *testing.T) {
	s := newState()
	m := New()
	m.Restart(s)
	m.Input(input.Press(input.Down), s) // car brightness, already at max

	m.Input(input.Press(input.Right), s)
	if s.SettingsDirty {
		t.Error("SettingsDirty set by a clamped increment")
	}
}

func TestTrackButtonTogglesBuzzer(t *testing.T) {
	s := newState()
	m := New()
	m.Restart(s)
	s.Redraw = false

	m.Input(input.Press(input.Track(3)), s)
	if !s.Settings.Buzzer() || s.Cue != game.CueBeep || !s.SettingsDirty {
		t.Errorf("after press: buzzer=%v cue=%v dirty=%v", s.Settings.Buzzer(), s.Cue, s.SettingsDirty)
	}
	if !s.Redraw {
		t.Error("Redraw = false after the buzzer toggle")
	}

	s.Cue = game.CueNone
	m.Input(input.Press(input.Track(3)), s)
	if s.Settings.Buzzer() || s.Cue != game.CueNone {
		t.Errorf("after second press: buzzer=%v cue=%v", s.Settings.Buzzer(), s.Cue)
	}
}

func TestReleaseIgnored(t *testing.T) {
	s := newState()
	m := New()
	m.Restart(s)
	m.Input(input.Release(input.Right), s)
	if got := s.Display.String(); got != "DB1" {
		t.Errorf("display = %q after a release", got)
	}
}
