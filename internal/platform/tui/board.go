package tui

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/trainboard/internal/core"
	"github.com/vovakirdan/trainboard/internal/track"
)

// Board layout.
const (
	ledsPerRow = 12
	cellWidth  = 2
	boardW     = ledsPerRow*cellWidth + 3
	boardH     = track.NumLocations/ledsPerRow + 2
	digitsH    = 3
	ScreenW    = boardW
	ScreenH    = boardH + digitsH
)

// Board is the terminal stand-in for the LED matrix driver and the
// 3-digit display. LEDs are drawn as a 12x12 grid in index order.
type Board struct {
	mu        sync.Mutex
	leds      [track.NumLocations]uint8
	digits    [3]byte
	intensity uint8
	asleep    bool
	frame     uint8
}

// NewBoard returns a sleeping board with a blank display.
func NewBoard() *Board {
	return &Board{digits: [3]byte{' ', ' ', ' '}, asleep: true}
}

func (b *Board) SetLEDPWM(index, value uint8) error {
	if int(index) >= track.NumLocations {
		return fmt.Errorf("board: led %d out of range", index)
	}
	b.mu.Lock()
	b.leds[index] = value
	b.mu.Unlock()
	return nil
}

func (b *Board) ShowFrame(f uint8) error {
	b.mu.Lock()
	b.frame = f
	b.mu.Unlock()
	return nil
}

func (b *Board) Clear() error {
	b.mu.Lock()
	b.leds = [track.NumLocations]uint8{}
	b.mu.Unlock()
	return nil
}

func (b *Board) Sleep(on bool) error {
	b.mu.Lock()
	b.asleep = on
	b.mu.Unlock()
	return nil
}

func (b *Board) Init() error {
	b.mu.Lock()
	b.digits = [3]byte{' ', ' ', ' '}
	b.intensity = 0
	b.mu.Unlock()
	return nil
}

func (b *Board) DisplayNumber(n uint16) error {
	var text [3]byte
	copy(text[:], fmt.Sprintf("%3d", n%1000))
	return b.DisplayASCII(text)
}

func (b *Board) DisplayASCII(text [3]byte) error {
	b.mu.Lock()
	b.digits = text
	b.mu.Unlock()
	return nil
}

func (b *Board) SetIntensity(level uint8) error {
	if level > 15 {
		return fmt.Errorf("board: intensity %d out of range", level)
	}
	b.mu.Lock()
	b.intensity = level
	b.mu.Unlock()
	return nil
}

// LED returns the PWM value last written to index i.
func (b *Board) LED(i int) uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.leds[i]
}

// Digits returns the text on the display.
func (b *Board) Digits() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.digits[:])
}

// Asleep reports whether the LED driver is in software shutdown.
func (b *Board) Asleep() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.asleep
}

// Draw lays the board out on s.
func (b *Board) Draw(s *core.Screen) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s.Clear()
	s.DrawBox(core.NewRect(0, 0, boardW, boardH), core.ColorGray)

	for i, v := range b.leds {
		x := 2 + (i%ledsPerRow)*cellWidth
		y := 1 + i/ledsPerRow

		color := core.ColorYellow
		if track.KindOf(track.Location(i)) == track.KindPlatform {
			color = core.ColorRed
		}
		if b.asleep {
			v = 0
		}
		glyph := '·'
		if v > 0 {
			glyph = '●'
		}
		s.Set(x, y, core.Cell{Rune: glyph, Color: color, Level: v})
	}

	top := boardH
	w := 7
	x0 := (boardW - w) / 2
	s.DrawBox(core.NewRect(x0, top, w, digitsH), core.ColorGray)
	// The MAX7219 has 16 intensity steps; spread them over a byte.
	level := b.intensity*16 + 15
	for i, ch := range b.digits {
		s.Set(x0+2+i, top+1, core.Cell{Rune: rune(ch), Color: core.ColorRed, Level: level})
	}
}
