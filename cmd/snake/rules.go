package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/golden-snake/internal/config"
)

var flagYAML bool

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the constants the game runs with",
	Long: `Prints the board size, tick rate and the apple and golden apple
parameters. The values are built in and cannot be changed.`,
	Args: cobra.NoArgs,
	Run:  runRules,
}

func init() {
	rulesCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the constants as YAML")
}

func runRules(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", err)
	}

	if flagYAML {
		data, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			return
		}
		fmt.Fprint(out, string(data))
		return
	}

	rows := rulesRows(cfg)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 24},
			{Title: "Value", Width: 16},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)
	s := table.DefaultStyles()
	s.Selected = s.Cell
	t.SetStyles(s)

	fmt.Fprintln(out, headerStyle.Render("Rules"))
	fmt.Fprintln(out, t.View())
}

// rulesRows lists the constants as table rows.
func rulesRows(cfg config.SnakeConfig) []table.Row {
	b := cfg.Board
	g := cfg.Golden
	return []table.Row{
		{"Board", fmt.Sprintf("%dx%d cells", b.Width/b.CellSize, b.Height/b.CellSize)},
		{"Cell size", fmt.Sprintf("%dpx", b.CellSize)},
		{"Tick rate", fmt.Sprintf("%d/s", cfg.TickRate)},
		{"Apple growth", fmt.Sprintf("+%d", cfg.Apple.Growth)},
		{"Apple points", fmt.Sprintf("+%d", cfg.Apple.Points)},
		{"Golden growth", fmt.Sprintf("+%d", g.Growth)},
		{"Golden points", fmt.Sprintf("+%d", g.Points)},
		{"Golden blinks after", g.BlinkAfter.String()},
		{"Golden expires after", g.ExpireAfter.String()},
		{"Golden spawn cooldown", g.SpawnCooldown.String()},
		{"Golden spawn chance", fmt.Sprintf("%.0f%% per tick", g.SpawnChance*100)},
	}
}
