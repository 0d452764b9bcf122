package input

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func scan(pressed ...Button) [NumButtons]bool {
	var low [NumButtons]bool
	for _, b := range pressed {
		low[b] = true
	}
	return low
}

func TestDebouncerEdges(t *testing.T) {
	var d Debouncer
	steps := []struct {
		low  [NumButtons]bool
		want []Event
	}{
		{scan(), nil},
		{scan(Up), []Event{Press(Up)}},
		{scan(Up), nil},
		{scan(), []Event{Release(Up)}},
		// Lockout swallows bounces.
		{scan(Up), nil},
		{scan(), nil},
		{scan(Up), nil},
		{scan(Up), []Event{Press(Up)}},
		{scan(), []Event{Release(Up)}},
	}

	for i, st := range steps {
		got := d.Update(st.low, nil)
		if diff := cmp.Diff(st.want, got); diff != "" {
			t.Fatalf("scan %d diff (-want +got):\n%s", i, diff)
		}
	}
}

func TestDebouncerIndependentButtons(t *testing.T) {
	var d Debouncer
	got := d.Update(scan(Track(3), Left), nil)
	want := []Event{Press(Track(3)), Press(Left)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff (-want +got):\n%s", diff)
	}
}

func TestDebouncerHeld(t *testing.T) {
	var d Debouncer
	for i := 0; i <= HoldCycles; i++ {
		d.Update(scan(Right), nil)
	}
	if !d.Held(Right) {
		t.Error("Held() = false after HoldCycles polls")
	}
	if d.Held(Left) {
		t.Error("Held(left) = true without a press")
	}
}

func TestPanelPressRelease(t *testing.T) {
	p := NewPanel(2)
	p.Press(Down)

	var got []Event
	for i := 0; i < 6; i++ {
		got = p.Poll(got)
	}
	want := []Event{Press(Down), Release(Down)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff (-want +got):\n%s", diff)
	}
}

func TestEventHelpers(t *testing.T) {
	if i, ok := Press(Track(5)).TrackPressed(); !ok || i != 5 {
		t.Errorf("TrackPressed() = (%d, %v), expected (5, true)", i, ok)
	}
	if _, ok := Press(Up).TrackPressed(); ok {
		t.Error("TrackPressed() accepted a direction button")
	}
	if _, ok := Release(Track(1)).TrackPressed(); ok {
		t.Error("TrackPressed() accepted a release")
	}
	if got := Press(Left).String(); got != "left pressed" {
		t.Errorf("String() = %q", got)
	}
}
