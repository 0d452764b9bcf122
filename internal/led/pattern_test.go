package led

import "testing"

var boundaryPhases = []uint8{0, 5, 11, 12, 63, 127, 128, 255}

func TestPatternTruthTable(t *testing.T) {
	const lo, hi = RedMin, RedMax

	tests := []struct {
		pattern Pattern
		want    []uint8 // one per boundary phase
	}{
		{SolidBright, []uint8{hi, hi, hi, hi, hi, hi, hi, hi}},
		{Blink1, []uint8{lo, lo, lo, hi, hi, hi, lo, hi}},
		{Blink2, []uint8{lo, lo, hi, hi, hi, hi, lo, hi}},
		{Blink3, []uint8{lo, lo, hi, lo, hi, hi, lo, hi}},
		{Fade1, []uint8{80, 79, 76, 76, 56, 30, 30, 80}},
	}

	for _, tc := range tests {
		t.Run(tc.pattern.String(), func(t *testing.T) {
			for i, phase := range boundaryPhases {
				if got := tc.pattern.PWM(phase, lo, hi); got != tc.want[i] {
					t.Errorf("PWM(%d, %d, %d) = %d, expected %d", phase, lo, hi, got, tc.want[i])
				}
			}
		})
	}
}

func TestFadeInvertedRange(t *testing.T) {
	// Want cargo on a platform fades between RedMax/2 and RedMin/2.
	want := []uint8{15, 15, 17, 17, 27, 40, 40, 15}
	for i, phase := range boundaryPhases {
		if got := Fade1.PWM(phase, RedMax/2, RedMin/2); got != want[i] {
			t.Errorf("Fade1.PWM(%d) = %d, expected %d", phase, got, want[i])
		}
	}
}

func TestPatternWithinRange(t *testing.T) {
	patterns := []Pattern{SolidBright, Blink1, Blink2, Blink3, Fade1}
	bounds := [][2]uint8{{0, 0}, {0, 255}, {30, 80}, {80, 255}, {100, 100}}

	for _, p := range patterns {
		for _, b := range bounds {
			for phase := 0; phase < 256; phase++ {
				v := p.PWM(uint8(phase), b[0], b[1])
				if v < b[0] || v > b[1] {
					t.Fatalf("%s.PWM(%d, %d, %d) = %d, outside range", p, phase, b[0], b[1], v)
				}
				if again := p.PWM(uint8(phase), b[0], b[1]); again != v {
					t.Fatalf("%s.PWM(%d) not deterministic", p, phase)
				}
			}
		}
	}
}

func TestBlinkStartsLow(t *testing.T) {
	for _, p := range BlinkPatterns {
		if got := p.PWM(0, 10, 200); got != 10 {
			t.Errorf("%s.PWM(0) = %d, expected min", p, got)
		}
	}
	if got := SolidBright.PWM(0, 10, 200); got != 200 {
		t.Errorf("SolidBright.PWM(0) = %d, expected max", got)
	}
}
