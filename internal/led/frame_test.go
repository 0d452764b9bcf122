package led

import (
	"errors"
	"testing"
)

type recordingWriter struct {
	writes map[uint8]uint8
	calls  int
	failAt int // fail on this call number (1-based), 0 = never
}

func (w *recordingWriter) SetLEDPWM(index, value uint8) error {
	w.calls++
	if w.failAt != 0 && w.calls == w.failAt {
		return errors.New("i2c nack")
	}
	if w.writes == nil {
		w.writes = map[uint8]uint8{}
	}
	w.writes[index] = value
	return nil
}

func TestFrameFlushCoalesces(t *testing.T) {
	var f Frame
	w := &recordingWriter{}

	f.Set(3, 100)
	f.Set(7, 50)
	n, err := f.Flush(w)
	if err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("first Flush() wrote %d cells, expected 2", n)
	}

	// Same values again: nothing to send.
	f.Set(3, 100)
	f.Set(7, 50)
	n, _ = f.Flush(w)
	if n != 0 {
		t.Errorf("repeat Flush() wrote %d cells, expected 0", n)
	}

	f.Reset()
	if !f.Dirty() {
		t.Error("frame should be dirty after Reset with lit cells shown")
	}
	n, _ = f.Flush(w)
	if n != 2 || w.writes[3] != 0 || w.writes[7] != 0 {
		t.Errorf("Reset flush wrote %d cells, writes=%v", n, w.writes)
	}
}

func TestFrameFlushStopsOnError(t *testing.T) {
	var f Frame
	w := &recordingWriter{failAt: 2}

	f.Set(1, 10)
	f.Set(2, 20)
	f.Set(3, 30)

	n, err := f.Flush(w)
	if err == nil {
		t.Fatal("Flush() should report the driver error")
	}
	if n != 1 {
		t.Errorf("Flush() wrote %d cells before failing, expected 1", n)
	}
	if f.Shown(1) != 10 || f.Shown(2) != 0 {
		t.Errorf("shadow = [%d %d], expected [10 0]", f.Shown(1), f.Shown(2))
	}

	// The retry picks up the unsent cells.
	n, err = f.Flush(w)
	if err != nil || n != 2 {
		t.Errorf("retry Flush() = (%d, %v), expected (2, nil)", n, err)
	}
}

func TestFrameBounds(t *testing.T) {
	var f Frame
	f.Set(-1, 5)
	f.Set(NumLEDs, 5)
	if f.Get(-1) != 0 || f.Get(NumLEDs) != 0 || f.Dirty() {
		t.Error("out-of-range Set should be ignored")
	}
}
