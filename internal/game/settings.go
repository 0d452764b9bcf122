package game

import "fmt"

// Setting selects one adjustable level.
type Setting uint8

const (
	DigitBrightness Setting = iota
	CarBrightness
	PlatformBrightness
	SwitchBrightness
)

// NumSettings is the number of adjustable levels.
const NumSettings = 4

// BrightnessLevels is the size of the LED brightness tables.
const BrightnessLevels = 6

// MaxDigitLevel is the brightest digit display intensity.
const MaxDigitLevel = 9

// SettingsSize is the number of persisted bytes.
const SettingsSize = 5

var (
	redLevels    = [BrightnessLevels]uint8{0, 28, 37, 60, 90, 127}
	yellowLevels = [BrightnessLevels]uint8{0, 50, 100, 150, 200, 255}
)

var defaultBytes = [SettingsSize]byte{1, 5, 3, 2, 0}

// String returns the two letter code shown on the digit display.
func (s Setting) String() string {
	switch s {
	case DigitBrightness:
		return "DB"
	case CarBrightness:
		return "TB"
	case PlatformBrightness:
		return "PB"
	case SwitchBrightness:
		return "YB"
	default:
		return fmt.Sprintf("?%d", uint8(s))
	}
}

// Max returns the highest level of s.
func (s Setting) Max() uint8 {
	if s == DigitBrightness {
		return MaxDigitLevel
	}
	return BrightnessLevels - 1
}

// Settings holds the brightness levels and the buzzer flag.
type Settings struct {
	levels [NumSettings]uint8
	buzzer bool
}

// DefaultSettings returns the factory levels {1, 5, 3, 2} with the buzzer off.
func DefaultSettings() Settings {
	return LoadSettings(defaultBytes[:])
}

// LoadSettings decodes persisted bytes. Out of range levels fall back to
// their defaults; missing bytes are treated as defaults.
func LoadSettings(b []byte) Settings {
	var s Settings
	for i := 0; i < NumSettings; i++ {
		v := defaultBytes[i]
		if i < len(b) && b[i] <= Setting(i).Max() {
			v = b[i]
		}
		s.levels[i] = v
	}
	if len(b) > NumSettings {
		s.buzzer = b[NumSettings] != 0
	}
	return s
}

// Bytes encodes s for persistence.
func (s Settings) Bytes() [SettingsSize]byte {
	var b [SettingsSize]byte
	copy(b[:], s.levels[:])
	if s.buzzer {
		b[NumSettings] = 1
	}
	return b
}

// Level returns the stored level of k.
func (s *Settings) Level(k Setting) uint8 { return s.levels[k] }

// Inc raises k by one step. It reports whether the level changed.
func (s *Settings) Inc(k Setting) bool {
	if s.levels[k] >= k.Max() {
		return false
	}
	s.levels[k]++
	return true
}

// Dec lowers k by one step. It reports whether the level changed.
func (s *Settings) Dec(k Setting) bool {
	if s.levels[k] == 0 {
		return false
	}
	s.levels[k]--
	return true
}

func (s *Settings) Buzzer() bool           { return s.buzzer }
func (s *Settings) SetBuzzer(on bool)      { s.buzzer = on }
func (s *Settings) DigitBrightness() uint8 { return s.levels[DigitBrightness] }

func (s *Settings) CarBrightness() uint8 {
	return yellowLevels[s.levels[CarBrightness]]
}

func (s *Settings) PlatformBrightness() uint8 {
	return redLevels[s.levels[PlatformBrightness]]
}

func (s *Settings) SwitchBrightness() uint8 {
	return yellowLevels[s.levels[SwitchBrightness]]
}

// ScaleCar gates a car LED value by the car brightness.
func (s *Settings) ScaleCar(v uint8) uint8 {
	return scale(v, s.CarBrightness(), yellowLevels[BrightnessLevels-1])
}

// ScalePlatform gates a platform LED value by the platform brightness.
func (s *Settings) ScalePlatform(v uint8) uint8 {
	return scale(v, s.PlatformBrightness(), redLevels[BrightnessLevels-1])
}

func scale(v, level, top uint8) uint8 {
	return uint8(uint16(v) * uint16(level) / uint16(top))
}

// SettingsStore persists the encoded settings bytes.
type SettingsStore interface {
	LoadSettings() ([]byte, error)
	SaveSettings(b []byte) error
}
