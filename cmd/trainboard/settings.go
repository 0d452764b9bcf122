package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trainboard/internal/game"
)

var flagReset bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or reset brightness and buzzer settings",
	Long: `Print the five stored setting bytes as the settings mode shows them.
Change them on the board in the settings mode; use --reset to write the
defaults back.`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&flagReset, "reset", false, "Write the default settings")
}

func runSettings(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagReset {
		b := game.DefaultSettings().Bytes()
		if err := store.SaveSettings(b[:]); err != nil {
			return err
		}
	}

	raw, err := store.LoadSettings()
	if err != nil {
		return err
	}
	s := game.LoadSettings(raw)

	out := cmd.OutOrStdout()
	for k := game.Setting(0); k < game.NumSettings; k++ {
		fmt.Fprintf(out, "  %s%d  (max %d)\n", k, s.Level(k), k.Max())
	}
	buzzer := "off"
	if s.Buzzer() {
		buzzer = "on"
	}
	fmt.Fprintf(out, "  buzzer %s\n", buzzer)
	fmt.Fprintf(out, "  raw    % x\n", raw)
	return nil
}
