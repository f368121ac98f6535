package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/golden-snake/internal/platform/tui"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render("Key bindings"))
	fmt.Fprintln(out)

	for _, group := range tui.DefaultKeyMap().FullHelp() {
		for _, b := range group {
			h := b.Help()
			fmt.Fprintf(out, "  %-8s %s\n", h.Key, h.Desc)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Restart only works once the round is over.")
}
