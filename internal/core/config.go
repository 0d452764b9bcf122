package core

// RuntimeConfig is what the simulator needs to start a console.
type RuntimeConfig struct {
	TickRate  int    // console ticks per second
	Seed      uint32 // 0 means seed from the clock in the platform layer
	StartMode int    // menu index to boot into
	PressHold int    // polls a simulated key holds its button down
}

// DefaultConfig returns the board's native settings.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate:  100,
		Seed:      0,
		StartMode: 0,
		PressHold: 4,
	}
}
