// Package logging builds the console's charmbracelet logger, optionally
// mirrored to a serial port.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/albenik/go-serial/v2"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trainboard/internal/config"
)

// Prefix tags every log line.
const Prefix = "trainboard"

// New returns a logger writing to w at the configured level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}), nil
}

// Open builds the logger from cfg writing to w, or stderr when w is nil.
// When a serial port is configured the output is also written there; the
// returned closer releases it and is never nil.
func Open(cfg config.LogConfig, w io.Writer) (*log.Logger, io.Closer, error) {
	if w == nil {
		w = os.Stderr
	}
	var closer io.Closer = nopCloser{}

	if cfg.SerialPort != "" {
		port, err := serial.Open(cfg.SerialPort, serial.WithBaudrate(cfg.SerialBaud))
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open serial port %s: %w", cfg.SerialPort, err)
		}
		w = io.MultiWriter(w, port)
		closer = port
	}

	logger, err := New(w, cfg.Level)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
