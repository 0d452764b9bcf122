// Package device declares the hardware the console drives: the 144-LED PWM
// controller, the 3-digit display and the piezo buzzer.
package device

import (
	"context"
	"time"
)

// WakeDelay is how long the LED controller needs after leaving sleep.
const WakeDelay = 10 * time.Millisecond

// LEDDriver is the PWM LED controller.
type LEDDriver interface {
	SetLEDPWM(index, value uint8) error
	ShowFrame(frame uint8) error
	Clear() error
	Sleep(on bool) error
}

// DigitDisplay is the 3-digit 7-segment display. Init reprograms the
// controller from scratch and leaves it blank.
type DigitDisplay interface {
	Init() error
	DisplayNumber(n uint16) error
	DisplayASCII(text [3]byte) error
	SetIntensity(level uint8) error
}

// Buzzer plays square wave tones. A zero frequency silences it.
type Buzzer interface {
	Tone(freqHz uint16, d time.Duration) error
}

// StartLEDs wakes the controller, waits WakeDelay and shows a blank frame.
func StartLEDs(ctx context.Context, d LEDDriver) error {
	if err := d.Sleep(false); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(WakeDelay):
	}
	if err := d.Clear(); err != nil {
		return err
	}
	return d.ShowFrame(0)
}
