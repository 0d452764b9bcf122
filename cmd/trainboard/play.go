package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trainboard/internal/console"
	"github.com/vovakirdan/trainboard/internal/input"
	"github.com/vovakirdan/trainboard/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on the simulated board",
	Long: `Start the console on the terminal board.

Controls:
  1-8          - Track buttons (toggle switches, buzzer in settings)
  Arrows/WASD  - Up, down, left, right buttons
  Esc/M        - Back to the menu
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  trainboard play
  trainboard play --mode snk --seed 42
  trainboard play --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs a terminal; use 'trainboard run' for headless runs")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rc := runtimeConfig(cfg)

	logger, logCloser, err := openFileLogger(cfg)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	board := tui.NewBoard()
	panel := input.NewPanel(rc.PressHold)

	opts := console.Options{
		LEDs:      board,
		Digits:    board,
		Input:     panel,
		Rand:      newRand(rc.Seed),
		Settings:  store,
		Scores:    store,
		Logger:    logger,
		StartMode: rc.StartMode,
	}
	if bz := openBuzzer(cfg, logger); bz != nil {
		opts.Buzzer = bz
	}

	c, err := console.New(opts)
	if err != nil {
		return err
	}
	logger.Info("starting simulator", "seed", rc.Seed, "fps", rc.TickRate, "session", store.Session())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return tui.Run(ctx, c, board, panel, rc, logger)
}
