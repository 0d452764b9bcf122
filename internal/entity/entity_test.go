package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/trainboard/internal/fault"
	"github.com/vovakirdan/trainboard/internal/led"
	"github.com/vovakirdan/trainboard/internal/track"
)

type fixedCoin bool

func (c fixedCoin) Bool() bool { return bool(c) }

func expectFault(t *testing.T, code fault.Code, fn func()) {
	t.Helper()
	defer func() {
		f, ok := fault.Recover(recover())
		if !ok {
			t.Fatalf("expected fault %d, got none", code)
		}
		if f.Code != code {
			t.Fatalf("fault code = %d, expected %d", f.Code, code)
		}
	}()
	fn()
}

func TestCargoBrightness(t *testing.T) {
	tests := []struct {
		name     string
		cargo    Cargo
		phase    uint8
		platform uint8
		car      uint8
	}{
		{"empty", Empty(), 0, 0, CarEmptyLevel},
		{"have solid", Have(led.SolidBright), 0, led.RedMax, led.YellowMax},
		{"have blink low", Have(led.Blink1), 0, led.RedMin, led.YellowMin},
		{"have blink high", Have(led.Blink1), 20, led.RedMax, led.YellowMax},
		{"want solid", Want(led.SolidBright), 0, led.RedMin / 2, led.YellowMin},
		{"want blink low", Want(led.Blink1), 0, led.RedMax / 2, led.YellowMin},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cargo.PlatformBrightness(tc.phase); got != tc.platform {
				t.Errorf("PlatformBrightness() = %d, expected %d", got, tc.platform)
			}
			if got := tc.cargo.CarBrightness(tc.phase); got != tc.car {
				t.Errorf("CarBrightness() = %d, expected %d", got, tc.car)
			}
		})
	}
}

func TestSwitchConstruction(t *testing.T) {
	s := NewSwitch(0x08, fixedCoin(false))
	if !s.Active(track.Anode) || s.Active(track.Cathode) {
		t.Fatalf("Active() = (%v, %v), expected (true, false)", s.Active(track.Anode), s.Active(track.Cathode))
	}
	if s.IsCross() {
		t.Error("IsCross() = true for a single sided switch")
	}
	primary, fork := s.Arms(track.Anode)
	if primary != 0x09 || fork != 0x7C {
		t.Errorf("Arms(anode) = (%s, %s), expected (0x09, 0x7C)", primary, fork)
	}
	if _, fork := s.Arms(track.Cathode); fork != track.None {
		t.Errorf("Arms(cathode) fork = %s, expected none", fork)
	}
	if loc, ok := s.ActiveLocation(track.Anode); !ok || loc != 0x09 {
		t.Errorf("ActiveLocation(anode) = (%s, %v), expected (0x09, true)", loc, ok)
	}
	if _, ok := s.ActiveLocation(track.Cathode); ok {
		t.Error("ActiveLocation(cathode) reported a branch")
	}

	s.Toggle()
	if loc, _ := s.ActiveLocation(track.Anode); loc != 0x7C {
		t.Errorf("after Toggle ActiveLocation(anode) = %s, expected 0x7C", loc)
	}
}

func TestSwitchCrossCycle(t *testing.T) {
	s := NewSwitch(0x54, fixedCoin(true))
	if !s.IsCross() {
		t.Fatal("IsCross() = false for 0x54")
	}

	state := func() [2]bool {
		a, _ := s.Switched(track.Anode)
		c, _ := s.Switched(track.Cathode)
		return [2]bool{a, c}
	}

	want := [][2]bool{
		{true, true},
		{false, true},
		{false, false},
		{true, false},
		{true, true},
	}
	var got [][2]bool
	got = append(got, state())
	for i := 0; i < 4; i++ {
		s.Toggle()
		got = append(got, state())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cross cycle diff (-want +got):\n%s", diff)
	}
}

func TestSwitchToggleWithoutForkFaults(t *testing.T) {
	s := NewSwitch(0x20, fixedCoin(false))
	expectFault(t, fault.CodeNoSwitch, s.Toggle)
}

type mapSink map[int]uint8

func (m mapSink) Set(i int, v uint8) { m[i] = v }

func TestSwitchRender(t *testing.T) {
	s := NewSwitch(0x08, fixedCoin(false))
	free := func(track.Location) bool { return false }

	sink := mapSink{}
	if !s.Render(sink, 100, free) {
		t.Error("first Render() reported no change")
	}
	if sink[0x09] != 100 {
		t.Errorf("active arm = %d, expected 100", sink[0x09])
	}
	if v, ok := sink[0x7C]; !ok || v != 0 {
		t.Errorf("inactive arm = (%d, %v), expected (0, true)", v, ok)
	}

	// Same phase, same brightness: nothing new to report.
	if s.Render(mapSink{}, 100, free) {
		t.Error("repeated Render() reported a change")
	}

	// A train on the active arm keeps the switch off that cell.
	occupied := func(l track.Location) bool { return l == 0x09 }
	sink = mapSink{}
	s.Render(sink, 100, occupied)
	if _, ok := sink[0x09]; ok {
		t.Error("Render() wrote an occupied arm")
	}

	for i := 0; i < 64; i++ {
		s.Animate()
	}
	sink = mapSink{}
	if !s.Render(sink, 100, free) {
		t.Error("Render() after animation reported no change")
	}
	if v := sink[0x09]; v < 50 || v > 100 {
		t.Errorf("faded arm = %d, expected within [50, 100]", v)
	}
}

func TestPlatformServe(t *testing.T) {
	p := NewPlatform(0x89)
	if p.Adjacent() != 0x34 {
		t.Fatalf("Adjacent() = %s, expected 0x34", p.Adjacent())
	}

	train := NewTrain(make([]Car, 4), 4, 0x33, Empty(), 0)
	if _, ok := p.Serve([]*Train{train}); ok {
		t.Error("Serve() on an empty platform took cargo")
	}

	p.SetCargo(Have(led.Blink2))
	if _, ok := p.Serve([]*Train{train}); ok {
		t.Error("Serve() handed cargo to a train that is not adjacent")
	}

	train2 := NewTrain(make([]Car, 4), 4, 0x34, Empty(), 0)
	c, ok := p.Serve([]*Train{train, train2})
	if !ok || c != Have(led.Blink2) {
		t.Errorf("Serve() = (%v, %v), expected (have(blink2), true)", c, ok)
	}
	if !p.Cargo().IsEmpty() {
		t.Error("platform still holds cargo after Serve()")
	}
}

func TestPlatformPhaseSpeed(t *testing.T) {
	p := NewPlatform(0x84)
	tests := []struct {
		in, want uint8
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 3}, {9, 3},
	}
	for _, tc := range tests {
		p.SetPhaseSpeed(tc.in)
		if got := p.PhaseSpeed(); got != tc.want {
			t.Errorf("SetPhaseSpeed(%d) -> %d, expected %d", tc.in, got, tc.want)
		}
	}

	p.SetPhaseSpeed(3)
	p.Animate()
	p.Animate()
	if p.Phase() != 6 {
		t.Errorf("Phase() = %d, expected 6", p.Phase())
	}
}

func TestNewPlatformOnTrackFaults(t *testing.T) {
	expectFault(t, fault.CodeNotTrack, func() { NewPlatform(0x20) })
}
