package timed

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/trainboard/internal/entity"
	"github.com/vovakirdan/trainboard/internal/fault"
	"github.com/vovakirdan/trainboard/internal/game"
	"github.com/vovakirdan/trainboard/internal/input"
	"github.com/vovakirdan/trainboard/internal/led"
	"github.com/vovakirdan/trainboard/internal/rng"
)

// quietSource never takes a fork, never spawns and always picks the first
// candidate.
type quietSource struct{}

func (quietSource) Bool() bool    { return false }
func (quietSource) U8() uint8     { return 0xFF }
func (quietSource) U16() uint16   { return 0xFFFF }
func (quietSource) Index(int) int { return 0 }

func newState(r rng.Source) *game.State {
	return game.NewState(game.NewArena(r), game.DefaultSettings(), r)
}

func step(m *Mode, s *game.State) {
	m.Tick(s)
	for i, t := range s.Trains() {
		if t.Advance(s) {
			m.TrainAdvanced(i, s)
		}
	}
	s.Animate()
}

func TestStartsStopped(t *testing.T) {
	s := newState(quietSource{})
	m := New()
	m.Restart(s)

	train := s.Train(0)
	if train.Len() != StartCars || train.MaxCars() != MaxCars || train.Speed() != 0 {
		t.Errorf("train = len %d max %d speed %d", train.Len(), train.MaxCars(), train.Speed())
	}
}

func TestDeadlineEscalates(t *testing.T) {
	s := newState(quietSource{})
	m := New()
	m.Restart(s)

	if !m.Spawn(s, 5, entity.Have(led.Blink1)) {
		t.Fatal("Spawn() rejected")
	}
	p := &s.Platforms[5]

	checks := map[int]uint8{
		1:    1,
		4999: 1,
		5000: 2,
		6999: 2,
		7000: 3,
		7999: 3,
	}
	for tick := 1; tick <= TimerTicks; tick++ {
		step(m, s)
		if want, ok := checks[tick]; ok && p.PhaseSpeed() != want {
			t.Errorf("tick %d: PhaseSpeed() = %d, expected %d", tick, p.PhaseSpeed(), want)
		}
		if tick < TimerTicks && s.Over {
			t.Fatalf("game over early at tick %d", tick)
		}
	}

	if !s.Over {
		t.Fatal("Over = false when the timer ran out")
	}
	if got := s.Display.String(); got != "ovr" {
		t.Errorf("display = %q, expected %q", got, "ovr")
	}

	m.Input(input.Press(input.Left), s)
	if s.Over || len(m.Timers()) != 0 {
		t.Error("input during game over did not restart")
	}
}

func TestLoadAndDeliver(t *testing.T) {
	s := newState(quietSource{})
	m := New()
	m.Restart(s)
	train := s.Train(0)

	// Platform 2 sits next to 0x1F, under the second car.
	m.Spawn(s, 2, entity.Have(led.Blink2))
	step(m, s)

	if !s.Platforms[2].Cargo().IsEmpty() {
		t.Fatal("cargo was not loaded")
	}
	if !train.Carries(entity.Have(led.Blink2)) {
		t.Fatal("train does not carry the loaded cargo")
	}
	want := []Timer{{Platform: 0, TicksLeft: TimerTicks}}
	if diff := cmp.Diff(want, m.Timers()); diff != "" {
		t.Fatalf("timers diff (-want +got):\n%s", diff)
	}
	if s.Platforms[0].Cargo() != entity.Want(led.Blink2) {
		t.Fatalf("platform 0 = %v, expected want(blink2)", s.Platforms[0].Cargo())
	}

	// Drive round to platform 0 (next to 0x03) and stop.
	train.SetSpeed(entity.MaxSpeed)
	for train.Front() != 0x03 {
		train.Advance(s)
	}
	train.SetSpeed(0)
	step(m, s)

	if s.Score != 1 || s.Display != game.Score(1) {
		t.Errorf("score = %d display = %v, expected 1", s.Score, s.Display)
	}
	if len(m.Timers()) != 0 {
		t.Errorf("timers = %v, expected none", m.Timers())
	}
	if train.Carries(entity.Have(led.Blink2)) {
		t.Error("cargo still on the train after delivery")
	}
}

func TestRemoveUnknownTimerFaults(t *testing.T) {
	m := New()
	defer func() {
		f, ok := fault.Recover(recover())
		if !ok || f.Code != fault.CodeUnknownTimer {
			t.Errorf("recovered %v, expected fault 403", f)
		}
	}()
	m.removeTimer(7)
}

func TestSpeedButtons(t *testing.T) {
	s := newState(quietSource{})
	m := New()
	m.Restart(s)
	train := s.Train(0)

	steps := []struct {
		button input.Button
		want   uint8
	}{
		{input.Right, 5},
		{input.Right, 10},
		{input.Right, 15},
		{input.Right, 15},
		{input.Left, 10},
		{input.Left, 5},
		{input.Left, 0},
		{input.Left, 0},
	}
	for i, st := range steps {
		m.Input(input.Press(st.button), s)
		if train.Speed() != st.want {
			t.Fatalf("step %d: Speed() = %d, expected %d", i, train.Speed(), st.want)
		}
	}
}

func TestTimerInvariants(t *testing.T) {
	r := rng.New(2024)
	s := newState(r)
	m := New()
	m.Restart(s)

	buttons := []input.Button{input.Left, input.Right, input.Track(0), input.Track(5)}
	prev := map[int]uint16{}
	for tick := 0; tick < 30000; tick++ {
		if r.Index(200) == 0 {
			m.Input(input.Press(buttons[r.Index(len(buttons))]), s)
			prev = map[int]uint16{}
		}
		wasOver := s.Over
		step(m, s)
		if wasOver {
			continue
		}

		timers := m.Timers()
		if len(timers) > MaxTimers {
			t.Fatalf("tick %d: %d timers", tick, len(timers))
		}
		cur := map[int]uint16{}
		for _, tm := range timers {
			if s.Platforms[tm.Platform].Cargo().IsEmpty() {
				t.Fatalf("tick %d: timer on empty platform %d", tick, tm.Platform)
			}
			if last, ok := prev[tm.Platform]; ok && tm.TicksLeft >= last && tm.TicksLeft != TimerTicks {
				t.Fatalf("tick %d: timer %d went from %d to %d", tick, tm.Platform, last, tm.TicksLeft)
			}
			if tm.TicksLeft == 0 && !s.Over {
				t.Fatalf("tick %d: expired timer without game over", tick)
			}
			cur[tm.Platform] = tm.TicksLeft
		}
		prev = cur
	}
}
