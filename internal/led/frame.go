package led

// NumLEDs is the size of the LED matrix; LED i shows track location i.
const NumLEDs = 144

// PWMWriter is the part of the LED driver the frame needs.
type PWMWriter interface {
	SetLEDPWM(index, value uint8) error
}

// Frame is the target image of the matrix plus a shadow of what the driver
// currently shows. Flush sends only the cells that differ.
type Frame struct {
	target [NumLEDs]uint8
	shown  [NumLEDs]uint8
}

// Set stages a value for LED i. Out-of-range indices are ignored.
func (f *Frame) Set(i int, v uint8) {
	if i < 0 || i >= NumLEDs {
		return
	}
	f.target[i] = v
}

// Get returns the staged value for LED i.
func (f *Frame) Get(i int) uint8 {
	if i < 0 || i >= NumLEDs {
		return 0
	}
	return f.target[i]
}

// Shown returns the value last sent to the driver for LED i.
func (f *Frame) Shown(i int) uint8 {
	if i < 0 || i >= NumLEDs {
		return 0
	}
	return f.shown[i]
}

// Reset stages every LED off.
func (f *Frame) Reset() {
	f.target = [NumLEDs]uint8{}
}

// Forget marks the driver as blank, e.g. after the chip was cleared.
func (f *Frame) Forget() {
	f.shown = [NumLEDs]uint8{}
}

// Dirty reports whether any staged cell differs from the shadow.
func (f *Frame) Dirty() bool {
	return f.target != f.shown
}

// Flush writes changed cells and returns how many were written. The shadow
// only advances for cells the driver accepted; the first error stops the
// flush and is returned.
func (f *Frame) Flush(w PWMWriter) (int, error) {
	writes := 0
	for i := range f.target {
		if f.target[i] == f.shown[i] {
			continue
		}
		if err := w.SetLEDPWM(uint8(i), f.target[i]); err != nil {
			return writes, err
		}
		f.shown[i] = f.target[i]
		writes++
	}
	return writes, nil
}
