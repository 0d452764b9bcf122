package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trainboard/internal/audio"
	"github.com/vovakirdan/trainboard/internal/config"
	"github.com/vovakirdan/trainboard/internal/core"
	"github.com/vovakirdan/trainboard/internal/device"
	"github.com/vovakirdan/trainboard/internal/logging"
	"github.com/vovakirdan/trainboard/internal/registry"
	"github.com/vovakirdan/trainboard/internal/rng"
	"github.com/vovakirdan/trainboard/internal/storage"
)

// loadConfig reads the config file and applies the global flags that were
// set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("mode") {
		idx, err := parseMode(flagMode)
		if err != nil {
			return cfg, err
		}
		cfg.StartMode = idx
	}
	return cfg, cfg.Validate()
}

// parseMode accepts a mode label or a menu index.
func parseMode(s string) (int, error) {
	if info, ok := registry.ByLabel(s); ok {
		return info.Index, nil
	}
	idx, err := strconv.Atoi(s)
	if err != nil || !registry.Exists(idx) {
		return 0, fmt.Errorf("unknown mode %q (run 'trainboard list')", s)
	}
	return idx, nil
}

// runtimeConfig converts the file config to what the simulator needs.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rc := core.RuntimeConfig{
		TickRate:  cfg.TickRate,
		Seed:      cfg.Seed,
		StartMode: cfg.StartMode,
		PressHold: cfg.Board.PressHoldTicks,
	}
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = uint32(time.Now().UnixNano())
	}
	return rc
}

// newRand returns the console RNG. The process-wide generator is reseeded
// so nothing else draws from an unseeded stream.
func newRand(seed uint32) *rng.LCG {
	r := rng.Default()
	r.Seed(seed)
	return r
}

// openLogger builds the logger on stderr, honouring the serial sink.
func openLogger(cfg config.Config) (*log.Logger, io.Closer, error) {
	return logging.Open(cfg.Log, nil)
}

// openFileLogger logs to trainboard.log next to the database, for hosts
// that own the terminal.
func openFileLogger(cfg config.Config) (*log.Logger, io.Closer, error) {
	dir := filepath.Dir(config.ExpandHome(cfg.DBPath))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "trainboard.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, closer, err := logging.Open(cfg.Log, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, multiCloser{closer, f}, nil
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var errs []error
	for _, c := range m {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// openStore opens the database at the configured path.
func openStore(cfg config.Config) (*storage.Store, error) {
	return storage.Open(cfg.DBPath)
}

// openBuzzer returns the speaker-backed piezo, or nil when audio is off or
// the speaker is unavailable. A missing speaker is not fatal.
func openBuzzer(cfg config.Config, logger *log.Logger) device.Buzzer {
	if !cfg.Audio.Enabled {
		return nil
	}
	p, err := audio.NewPiezo(cfg.Audio.SampleRate, cfg.Audio.Volume)
	if err != nil {
		logger.Warn("audio unavailable, running silent", "error", err)
		return nil
	}
	return p
}
