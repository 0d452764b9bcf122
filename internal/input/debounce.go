package input

// Debounce timing in polls.
const (
	PressCycles    = 1
	DebounceCycles = 3
	// HoldCycles is reserved for long-press detection.
	HoldCycles = 20
)

type keyState struct {
	down    bool
	low     uint8
	lockout uint8
	held    uint16
}

// Debouncer turns raw button levels into press and release edges. A press
// is reported after PressCycles consecutive low reads. A release is
// reported on the first high read after that, followed by DebounceCycles
// polls during which the button is ignored.
type Debouncer struct {
	keys [NumButtons]keyState
}

// Update consumes one scan. low[i] is true while button i is held.
func (d *Debouncer) Update(low [NumButtons]bool, out []Event) []Event {
	for i := range d.keys {
		k := &d.keys[i]
		b := Button(i)

		if k.lockout > 0 {
			k.lockout--
			continue
		}

		if low[i] {
			if k.down {
				if k.held < HoldCycles {
					k.held++
				}
				continue
			}
			k.low++
			if k.low >= PressCycles {
				k.down = true
				k.low = 0
				k.held = 0
				out = append(out, Press(b))
			}
			continue
		}

		k.low = 0
		if k.down {
			k.down = false
			k.lockout = DebounceCycles
			out = append(out, Release(b))
		}
	}
	return out
}

// Held reports whether b has been down for at least HoldCycles polls.
func (d *Debouncer) Held(b Button) bool {
	k := d.keys[b]
	return k.down && k.held >= HoldCycles
}
