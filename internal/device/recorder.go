package device

import (
	"fmt"
	"sync"
	"time"
)

// LEDRecorder is an in-memory LEDDriver.
type LEDRecorder struct {
	mu     sync.Mutex
	values [256]uint8
	writes int
	asleep bool
	// Fail, when set, is returned by every PWM write.
	Fail error
}

func (r *LEDRecorder) SetLEDPWM(index, value uint8) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	r.values[index] = value
	r.writes++
	return nil
}

func (r *LEDRecorder) ShowFrame(uint8) error { return nil }

func (r *LEDRecorder) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = [256]uint8{}
	return nil
}

func (r *LEDRecorder) Sleep(on bool) error {
	r.mu.Lock()
	r.asleep = on
	r.mu.Unlock()
	return nil
}

// Value returns the last PWM byte written to index.
func (r *LEDRecorder) Value(index uint8) uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[index]
}

// Writes returns the number of accepted PWM writes.
func (r *LEDRecorder) Writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

// DigitRecorder is an in-memory DigitDisplay. It keeps every shown value.
type DigitRecorder struct {
	mu        sync.Mutex
	history   []string
	intensity uint8
	inits     int
	Fail      error
}

func (r *DigitRecorder) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	r.inits++
	r.intensity = 0
	r.history = append(r.history, "   ")
	return nil
}

func (r *DigitRecorder) DisplayNumber(n uint16) error {
	return r.show(fmt.Sprintf("%3d", n%1000))
}

func (r *DigitRecorder) DisplayASCII(text [3]byte) error {
	return r.show(string(text[:]))
}

func (r *DigitRecorder) show(s string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	r.history = append(r.history, s)
	return nil
}

func (r *DigitRecorder) SetIntensity(level uint8) error {
	r.mu.Lock()
	r.intensity = level
	r.mu.Unlock()
	return nil
}

// Shown returns the current text, or "" if nothing was shown.
func (r *DigitRecorder) Shown() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return ""
	}
	return r.history[len(r.history)-1]
}

// History returns everything shown so far.
func (r *DigitRecorder) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

func (r *DigitRecorder) Intensity() uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.intensity
}

// Inits returns how many times the display was initialised.
func (r *DigitRecorder) Inits() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inits
}

// Tone is one recorded buzzer request.
type Tone struct {
	Freq     uint16
	Duration time.Duration
}

// ToneRecorder is an in-memory Buzzer.
type ToneRecorder struct {
	mu    sync.Mutex
	tones []Tone
	// Fail, when set, is returned by every request.
	Fail error
}

func (r *ToneRecorder) Tone(freqHz uint16, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	r.tones = append(r.tones, Tone{Freq: freqHz, Duration: d})
	return nil
}

// Tones returns the recorded requests.
func (r *ToneRecorder) Tones() []Tone {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Tone(nil), r.tones...)
}
