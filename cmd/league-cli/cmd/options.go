package cmd

import (
	"os"
	"sort"

	"dynasty-backend/services/options"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(optionsCmd)
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Prints the team/player option matrix.",
	Run: func(cmd *cobra.Command, args []string) {
		grid, err := client.FetchGrid(cmd.Context(), config.Gids.Options)
		if err != nil {
			fatal(err)
		}

		m := options.Parse(grid)

		names := make([]string, 0, len(m.ByPlayerYear))
		for name := range m.ByPlayerYear {
			names = append(names, name)
		}
		sort.Strings(names)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)

		header := table.Row{"Player"}
		for _, y := range m.Years {
			header = append(header, y)
		}
		t.AppendHeader(header)

		for _, name := range names {
			row := table.Row{name}
			for _, y := range m.Years {
				row = append(row, options.Label(m.ByPlayerYear[name][y]))
			}
			t.AppendRow(row)
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
