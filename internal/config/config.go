// Package config loads the trainboard YAML configuration.
package config

import "fmt"

// Config is the top-level host configuration.
type Config struct {
	TickRate  int         `yaml:"tick_rate"`  // Hz
	Seed      uint32      `yaml:"seed"`       // 0 = time based
	StartMode int         `yaml:"start_mode"` // menu index
	DBPath    string      `yaml:"db_path"`
	Audio     AudioConfig `yaml:"audio"`
	Log       LogConfig   `yaml:"log"`
	Board     BoardConfig `yaml:"board"`
}

// AudioConfig controls the piezo emulation.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

// LogConfig controls the logger and its optional serial sink.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	SerialPort string `yaml:"serial_port"`
	SerialBaud int    `yaml:"serial_baud"`
}

// BoardConfig holds simulated button panel parameters.
type BoardConfig struct {
	PressHoldTicks int `yaml:"press_hold_ticks"`
}

// Default returns the hard-coded configuration.
func Default() Config {
	return Config{
		TickRate:  100,
		Seed:      0,
		StartMode: 0,
		DBPath:    "~/.trainboard/trainboard.db",
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
		},
		Log: LogConfig{
			Level:      "info",
			SerialBaud: 115200,
		},
		Board: BoardConfig{
			PressHoldTicks: 4,
		},
	}
}

// Validate rejects values the console cannot run with.
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > 1000 {
		return fmt.Errorf("config: tick_rate %d out of range (1-1000)", c.TickRate)
	}
	if c.StartMode < 0 {
		return fmt.Errorf("config: start_mode %d is negative", c.StartMode)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume %.2f out of range (0-1)", c.Audio.Volume)
	}
	if c.Board.PressHoldTicks < 1 {
		return fmt.Errorf("config: board.press_hold_ticks must be at least 1")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log.level %q", c.Log.Level)
	}
	return nil
}
