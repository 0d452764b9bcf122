package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trainboard/internal/console"
	"github.com/vovakirdan/trainboard/internal/device"
	"github.com/vovakirdan/trainboard/internal/input"
	"github.com/vovakirdan/trainboard/internal/track"
)

var (
	flagTicks    int
	flagPress    []string
	flagRealtime bool
	flagNoStore  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the console headless",
	Long: `Run the console against recording drivers and print where it ended up.

Button presses are scheduled with --press TICK:BUTTON, where BUTTON is
1-8 for the track buttons or up, down, left, right.

Examples:
  trainboard run --ticks 500
  trainboard run --mode 0 --ticks 300 --press 10:up --press 50:right
  trainboard run --ticks 200 --realtime`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Number of ticks to run")
	runCmd.Flags().StringArrayVar(&flagPress, "press", nil, "Scheduled press TICK:BUTTON (repeatable)")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Tick at the configured rate instead of as fast as possible")
	runCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not load or save settings and scores")
}

// press is a button scheduled for a tick.
type press struct {
	tick   int
	button input.Button
}

func parsePresses(specs []string) ([]press, error) {
	out := make([]press, 0, len(specs))
	for _, spec := range specs {
		at, name, ok := strings.Cut(spec, ":")
		if !ok {
			return nil, fmt.Errorf("press %q: expected TICK:BUTTON", spec)
		}
		tick, err := strconv.Atoi(at)
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("press %q: bad tick", spec)
		}
		b, err := parseButton(name)
		if err != nil {
			return nil, fmt.Errorf("press %q: %w", spec, err)
		}
		out = append(out, press{tick: tick, button: b})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].tick < out[j].tick })
	return out, nil
}

func parseButton(name string) (input.Button, error) {
	switch strings.ToLower(name) {
	case "up":
		return input.Up, nil
	case "down":
		return input.Down, nil
	case "left":
		return input.Left, nil
	case "right":
		return input.Right, nil
	}
	n, err := strconv.Atoi(name)
	if err != nil || n < 1 || n > input.NumTrackButtons {
		return 0, fmt.Errorf("unknown button %q", name)
	}
	return input.Track(n - 1), nil
}

// scheduledPanel presses buttons on the panel when their tick comes up.
type scheduledPanel struct {
	panel   *input.Panel
	presses []press
	polls   int
}

func (s *scheduledPanel) Poll(out []input.Event) []input.Event {
	for len(s.presses) > 0 && s.presses[0].tick <= s.polls {
		s.panel.Press(s.presses[0].button)
		s.presses = s.presses[1:]
	}
	s.polls++
	return s.panel.Poll(out)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rc := runtimeConfig(cfg)
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive")
	}

	presses, err := parsePresses(flagPress)
	if err != nil {
		return err
	}

	logger, logCloser, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	leds := &device.LEDRecorder{}
	digits := &device.DigitRecorder{}
	tones := &device.ToneRecorder{}
	panel := &scheduledPanel{panel: input.NewPanel(rc.PressHold), presses: presses}

	opts := console.Options{
		LEDs:      leds,
		Digits:    digits,
		Buzzer:    tones,
		Input:     panel,
		Rand:      newRand(rc.Seed),
		Logger:    logger,
		StartMode: rc.StartMode,
	}
	if !flagNoStore {
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		opts.Settings = store
		opts.Scores = store
	}

	c, err := console.New(opts)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := c.Boot(ctx); err != nil {
		return err
	}

	if flagRealtime {
		d := time.Duration(flagTicks) * time.Second / time.Duration(rc.TickRate)
		runCtx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		if err := c.Run(runCtx, rc.TickRate); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
	} else {
		for i := 0; i < flagTicks; i++ {
			c.Tick()
		}
	}

	lit := 0
	for i := 0; i < track.NumLocations; i++ {
		if leds.Value(uint8(i)) > 0 {
			lit++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed     %d\n", rc.Seed)
	fmt.Fprintf(out, "ticks    %d\n", c.Ticks())
	fmt.Fprintf(out, "mode     %s\n", c.ModeLabel())
	fmt.Fprintf(out, "display  [%s]\n", digits.Shown())
	fmt.Fprintf(out, "score    %d\n", c.State().Score)
	fmt.Fprintf(out, "lit      %d/%d LEDs (%d writes)\n", lit, track.NumLocations, leds.Writes())
	fmt.Fprintf(out, "tones    %d\n", len(tones.Tones()))
	if f := c.Fault(); f != nil {
		fmt.Fprintf(out, "fault    %d (%s)\n", f.Code, f.Msg)
	}
	return nil
}
