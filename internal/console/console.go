// Package console is the board's main loop: it polls buttons, runs the
// active mode, advances trains and pushes the result to the LED matrix,
// the digit display and the buzzer.
package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trainboard/internal/device"
	"github.com/vovakirdan/trainboard/internal/fault"
	"github.com/vovakirdan/trainboard/internal/game"
	"github.com/vovakirdan/trainboard/internal/input"
	"github.com/vovakirdan/trainboard/internal/led"
	"github.com/vovakirdan/trainboard/internal/modes"
	"github.com/vovakirdan/trainboard/internal/rng"
)

// FaultBlinkTicks is how long "err" and the fault code each stay up.
const FaultBlinkTicks = 60

// ScoreSink records finished rounds.
type ScoreSink interface {
	SaveScore(mode string, score int) (int64, error)
}

// Options configures a Console. LEDs, Digits and Input are required.
type Options struct {
	LEDs   device.LEDDriver
	Digits device.DigitDisplay
	Buzzer device.Buzzer
	Input  input.Source

	Rand     *rng.LCG
	Settings game.SettingsStore
	Scores   ScoreSink
	Logger   *log.Logger

	StartMode int
}

// Console owns the game state and the drivers.
type Console struct {
	state *game.State
	disp  modes.Dispatcher
	rand  *rng.LCG

	leds   device.LEDDriver
	digits device.DigitDisplay
	buzzer device.Buzzer
	input  input.Source

	settings game.SettingsStore
	scores   ScoreSink
	logger   *log.Logger

	frame     led.Frame
	shown     game.Display
	shownOK   bool
	intensity uint8
	events    []input.Event
	wasOver   bool
	ledErr    string

	fault      *fault.Fault
	faultTicks int

	ticks uint64
}

// New builds the console, loading persisted settings when a store is given.
func New(opts Options) (*Console, error) {
	if opts.LEDs == nil || opts.Digits == nil || opts.Input == nil {
		return nil, fmt.Errorf("console: LEDs, digits and input are required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := opts.Rand
	if r == nil {
		r = rng.Default()
	}

	settings := game.DefaultSettings()
	if opts.Settings != nil {
		b, err := opts.Settings.LoadSettings()
		if err != nil {
			return nil, fmt.Errorf("console: cannot load settings: %w", err)
		}
		if len(b) > 0 {
			settings = game.LoadSettings(b)
		}
	}

	c := &Console{
		rand:     r,
		leds:     opts.LEDs,
		digits:   opts.Digits,
		buzzer:   opts.Buzzer,
		input:    opts.Input,
		settings: opts.Settings,
		scores:   opts.Scores,
		logger:   logger,
		events:   make([]input.Event, 0, input.NumButtons),
	}
	c.state = game.NewState(game.NewArena(r), settings, r)

	if err := c.disp.Select(opts.StartMode, c.state); err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	return c, nil
}

// Boot brings up the drivers. It must run before the first Tick.
func (c *Console) Boot(ctx context.Context) error {
	if err := device.StartLEDs(ctx, c.leds); err != nil {
		return fmt.Errorf("console: cannot start LEDs: %w", err)
	}
	c.frame.Forget()
	if err := c.digits.Init(); err != nil {
		return fmt.Errorf("console: cannot start digits: %w", err)
	}
	c.intensity = c.state.Settings.DigitBrightness()
	if err := c.digits.SetIntensity(c.intensity); err != nil {
		return fmt.Errorf("console: cannot set digit intensity: %w", err)
	}
	c.logger.Info("board ready", "mode", c.disp.Label())
	return nil
}

// State exposes the game state, mainly for rendering hosts and tests.
func (c *Console) State() *game.State { return c.state }

// ModeIndex returns the menu index of the running mode.
func (c *Console) ModeIndex() int { return c.disp.Index() }

// ModeLabel returns the display label of the running mode.
func (c *Console) ModeLabel() string { return c.disp.Label() }

// Fault returns the fault that stopped the board, if any.
func (c *Console) Fault() *fault.Fault { return c.fault }

// Ticks returns the number of ticks run.
func (c *Console) Ticks() uint64 { return c.ticks }

// LED returns the value last sent to LED i.
func (c *Console) LED(i int) uint8 { return c.frame.Shown(i) }

// SelectMode switches to mode index.
func (c *Console) SelectMode(index int) error {
	if c.fault != nil {
		return c.fault
	}
	if err := c.disp.Select(index, c.state); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	c.wasOver = false
	c.logger.Info("mode selected", "mode", c.disp.Label(), "index", index)
	return nil
}

// Tick runs one main loop iteration. A fault raised anywhere in the tick
// stops the board; from then on Tick only animates the fault display.
func (c *Console) Tick() {
	if c.fault != nil {
		c.faultTick()
		return
	}
	defer func() {
		if r := recover(); r != nil {
			f, ok := fault.Recover(r)
			if !ok {
				panic(r)
			}
			c.enterFault(f)
		}
	}()
	c.step()
}

func (c *Console) step() {
	s := c.state
	c.ticks++
	c.rand.Stir(uint32(c.ticks))

	c.events = c.input.Poll(c.events[:0])
	for _, e := range c.events {
		c.disp.Input(e, s)
	}

	c.disp.Tick(s)
	for i, t := range s.Trains() {
		if t.Advance(s) {
			c.disp.TrainAdvanced(i, s)
		}
	}
	s.Animate()

	if target := s.TargetMode; target >= 0 {
		s.TargetMode = -1
		c.playCue(s.Cue)
		if err := c.SelectMode(target); err != nil {
			c.logger.Warn("cannot select mode", "index", target, "error", err)
		}
	}

	if c.render() {
		c.playCue(s.Cue)
	}
	s.Cue = game.CueNone

	c.persistSettings()
	c.checkGameOver()
}

func (c *Console) persistSettings() {
	s := c.state
	if !s.SettingsDirty {
		return
	}
	s.SettingsDirty = false
	if c.settings == nil {
		return
	}
	b := s.Settings.Bytes()
	if err := c.settings.SaveSettings(b[:]); err != nil {
		c.logger.Warn("cannot save settings", "error", err)
	}
}

func (c *Console) checkGameOver() {
	s := c.state
	if s.Over == c.wasOver {
		return
	}
	c.wasOver = s.Over
	if !s.Over {
		return
	}
	c.logger.Info("game over", "mode", c.disp.Label(), "score", s.Score)
	if c.scores == nil {
		return
	}
	if _, err := c.scores.SaveScore(c.disp.Label(), int(s.Score)); err != nil {
		c.logger.Warn("cannot save score", "error", err)
	}
}

// Run ticks at rate Hz until ctx is done.
func (c *Console) Run(ctx context.Context, rate int) error {
	if rate <= 0 {
		return fmt.Errorf("console: invalid tick rate %d", rate)
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Tick()
		}
	}
}
