package input

import "sync"

// Panel is a simulated button matrix. Press holds a button low for a fixed
// number of polls; the result is fed through a Debouncer like a real scan.
type Panel struct {
	mu     sync.Mutex
	hold   int
	remain [NumButtons]int
	deb    Debouncer
}

// NewPanel returns a panel whose presses last hold polls.
func NewPanel(hold int) *Panel {
	if hold < PressCycles {
		hold = PressCycles
	}
	return &Panel{hold: hold}
}

// Press pulls b low. Pressing a held button extends the hold.
func (p *Panel) Press(b Button) {
	if int(b) >= NumButtons {
		return
	}
	p.mu.Lock()
	p.remain[b] = p.hold
	p.mu.Unlock()
}

// Poll scans the matrix once and appends debounced events.
func (p *Panel) Poll(out []Event) []Event {
	p.mu.Lock()
	var low [NumButtons]bool
	for i := range p.remain {
		if p.remain[i] > 0 {
			low[i] = true
			p.remain[i]--
		}
	}
	p.mu.Unlock()
	return p.deb.Update(low, out)
}
