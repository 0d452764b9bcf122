package main

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trainboard/internal/track"
)

var (
	flagCheck   bool
	flagNoColor bool
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Dump or check the track graph",
	Long: `Print every location of the track table with its neighbors.
Platforms are red, switches yellow.

With --check, verify the table instead: neighbors in range, platforms
attached to one track node, reciprocal edges and full reachability.`,
	Args: cobra.NoArgs,
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().BoolVar(&flagCheck, "check", false, "Verify table invariants")
	graphCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

var (
	stylePlatform = color.Style{color.FgRed, color.OpBold}
	styleSwitch   = color.Style{color.FgYellow, color.OpBold}
	styleNone     = color.Style{color.FgGray}
	styleOK       = color.Style{color.FgGreen}
)

func runGraph(cmd *cobra.Command, args []string) error {
	if flagNoColor {
		color.Disable()
	}
	out := cmd.OutOrStdout()

	if flagCheck {
		if err := track.Check(); err != nil {
			return fmt.Errorf("track table is invalid:\n%w", err)
		}
		fmt.Fprintln(out, styleOK.Sprintf("track table ok: %d locations, %d platforms, %d switches",
			track.NumLocations, track.NumPlatforms, track.NumSwitches))
		return nil
	}

	switchIndex := make(map[track.Location]int, track.NumSwitches)
	for i, loc := range track.SwitchLocations() {
		switchIndex[loc] = i
	}

	fmt.Fprintf(out, "  %-5s  %-10s  %-6s  %-6s  %-6s  %-6s\n", "LOC", "KIND", "ANODE", "CATH", "ANODE2", "CATH2")
	for i := 0; i < track.NumLocations; i++ {
		loc := track.Location(i)

		if track.KindOf(loc) == track.KindPlatform {
			line := fmt.Sprintf("  %-5s  %-10s  %-6s", loc, "platform", track.AdjacentTrack(loc))
			fmt.Fprintln(out, stylePlatform.Sprint(line))
			continue
		}

		a, a2 := track.Neighbors(loc, track.Anode)
		c, c2 := track.Neighbors(loc, track.Cathode)
		kind := "track"
		if idx, ok := switchIndex[loc]; ok {
			kind = fmt.Sprintf("switch %d", idx+1)
		}
		if track.IsFork(loc) {
			line := fmt.Sprintf("  %-5s  %-10s  %-6s  %-6s  %-6s  %-6s", loc, kind, a, c, a2, c2)
			fmt.Fprintln(out, styleSwitch.Sprint(line))
			continue
		}
		dash := styleNone.Sprint(fmt.Sprintf("%-6s", "-"))
		fmt.Fprintf(out, "  %-5s  %-10s  %-6s  %-6s  %s  %s\n", loc, kind, a, c, dash, dash)
	}
	return nil
}
