package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trainboard/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game modes",
	Long:  `Shows the modes in menu order with the label the digit display uses.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	infos := registry.List()

	if len(infos) == 0 {
		fmt.Fprintln(out, "No modes available.")
		return
	}

	fmt.Fprintf(out, "  %-5s  %-5s  %s\n", "INDEX", "LABEL", "Title")
	fmt.Fprintf(out, "  %-5s  %-5s  %s\n", "-----", "-----", "-----")
	for _, info := range infos {
		fmt.Fprintf(out, "  %-5d  %-5s  %s\n", info.Index, info.Label, info.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'trainboard play --mode <label>' to boot straight into a mode.")
}
