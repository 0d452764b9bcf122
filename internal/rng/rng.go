// Package rng provides the deterministic pseudo-random generator shared by
// the main loop and the tone interrupt. It is a 32-bit LCG; every request
// takes the lock, which stands in for the device's critical section.
package rng

import "sync"

const (
	multiplier = 1664525
	increment  = 1013904223
)

// Source is the set of draws the game core needs.
type Source interface {
	Bool() bool
	U8() uint8
	U16() uint16
	Index(n int) int
}

// LCG is a linear congruential generator safe for concurrent use.
type LCG struct {
	mu    sync.Mutex
	state uint32
}

// New creates a generator with the given seed.
func New(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Seed resets the generator state.
func (g *LCG) Seed(seed uint32) {
	g.mu.Lock()
	g.state = seed
	g.mu.Unlock()
}

// Stir mixes extra entropy into the state without resetting it.
// The console calls it once per tick with the tick counter.
func (g *LCG) Stir(v uint32) {
	g.mu.Lock()
	g.state ^= v
	g.state = g.state*multiplier + increment
	g.mu.Unlock()
}

func (g *LCG) next() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = g.state*multiplier + increment
	return g.state
}

// Bool returns the top bit of the next state.
func (g *LCG) Bool() bool {
	return g.next()>>31 == 1
}

// U8 returns the top byte of the next state.
func (g *LCG) U8() uint8 {
	return uint8(g.next() >> 24)
}

// U16 returns the top half of the next state.
func (g *LCG) U16() uint16 {
	return uint16(g.next() >> 16)
}

// Index returns a value in [0, n). n must be in (0, 65536].
func (g *LCG) Index(n int) int {
	if n <= 0 {
		return 0
	}
	return int(g.U16()) % n
}

// Chance reports true with probability about num/65535.
func Chance(s Source, num uint16) bool {
	return s.U16() < num
}

var (
	defaultOnce sync.Once
	defaultLCG  *LCG
)

// Default returns the process-wide generator, seeded with 1 until reseeded.
func Default() *LCG {
	defaultOnce.Do(func() {
		defaultLCG = New(1)
	})
	return defaultLCG
}
