package cmd

import (
	"fmt"
	"os"

	"dynasty-backend/lib/sheetutil"
	"dynasty-backend/services/history"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var historyBand string

func init() {
	historyCmd.Flags().StringVar(&historyBand, "band", "", "band to show: a year, Total, or Records (default: newest year)")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Prints the league history table for one band of seasons.",
	Run: func(cmd *cobra.Command, args []string) {
		grid, err := client.FetchGridRaw(cmd.Context(), config.Gids.History)
		if err != nil {
			fatal(err)
		}

		parsed, ok := history.Parse(grid)
		if !ok {
			fatal(fmt.Errorf("history sheet needs at least a category row and a header row"))
		}

		band := historyBand
		if band == "" {
			if len(parsed.Years) > 0 {
				band = parsed.Years[0]
			} else {
				band = "Total"
			}
		}

		idxs := parsed.BandIndices(band)
		if len(idxs) == 0 {
			fatal(fmt.Errorf("no columns found for band %q", band))
		}
		headers := parsed.BandHeaders(band, idxs)

		cols := append([]history.Column(nil), parsed.BaseCols...)
		for _, idx := range idxs {
			c := parsed.AllCols[idx]
			c.Header = headers[idx]
			cols = append(cols, c)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)

		headerRow := table.Row{}
		for _, c := range cols {
			headerRow = append(headerRow, c.Header)
		}
		t.AppendHeader(headerRow)

		for _, rec := range parsed.Data {
			row := table.Row{}
			for _, c := range cols {
				v := rec[c.Key]
				if history.IsRecordPercentHeader(c.Header) {
					v = sheetutil.FormatTenthsPercent(v)
				}
				row = append(row, v)
			}
			t.AppendRow(row)
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
