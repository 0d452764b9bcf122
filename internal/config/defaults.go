package config

import (
	_ "embed"
)

//go:embed defaults/trainboard.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
