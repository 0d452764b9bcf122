package fault

import (
	"errors"
	"testing"
)

func TestRaiseRecover(t *testing.T) {
	var got *Fault
	func() {
		defer func() {
			f, ok := Recover(recover())
			if !ok {
				t.Fatal("Recover() did not return a fault")
			}
			got = f
		}()
		Raise(CodeNoSwitch, "switch at %d", 8)
	}()

	if got.Code != CodeNoSwitch {
		t.Errorf("Code = %d, expected %d", got.Code, CodeNoSwitch)
	}
	if got.Error() != "fault 301: switch at 8" {
		t.Errorf("Error() = %q", got.Error())
	}
}

func TestRecoverIgnoresOtherPanics(t *testing.T) {
	tests := []struct {
		name string
		val  any
	}{
		{"nil", nil},
		{"string", "boom"},
		{"plain error", errors.New("boom")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := Recover(tc.val); ok {
				t.Errorf("Recover(%v) reported a fault", tc.val)
			}
		})
	}
}
