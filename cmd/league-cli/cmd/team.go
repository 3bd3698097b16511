package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"dynasty-backend/services/history"
	"dynasty-backend/services/teamsheet"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(teamCmd)
}

var teamCmd = &cobra.Command{
	Use:   "team <name>",
	Short: "Prints a team's roster, GM, waiver cap hits, draft picks and history.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		teamName := args[0]
		cat := loadCatalog(cmd)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)

		header := table.Row{"Player", "Pos", "G"}
		for _, y := range cat.SalaryYears {
			header = append(header, y)
		}
		t.AppendHeader(header)

		for _, p := range cat.Players {
			if p.Team != teamName {
				continue
			}
			row := table.Row{p.Name, p.Position, fmt.Sprintf("%.0f", p.Games)}
			for _, y := range cat.SalaryYears {
				row = append(row, fmt.Sprintf("%.0f", p.SalaryByYear[y]))
			}
			t.AppendRow(row)
		}

		t.SetStyle(table.StyleRounded)
		t.Render()

		// free-form team tab: GM, waivers, draft picks
		if gid, ok := config.TeamSheets[teamName]; ok {
			rows, err := client.FetchCSV(cmd.Context(), gid)
			if err != nil {
				fatal(err)
			}

			current := time.Now().Year()
			years := []int{current, current + 1, current + 2, current + 3}
			sheet := teamsheet.Parse(rows, years)

			if sheet.GM != "" {
				fmt.Println("\nGM:", sheet.GM)
			}

			if len(sheet.WaiverByYear) > 0 {
				fmt.Println("\nwaiver cap hits:")
				var ws []int
				for y := range sheet.WaiverByYear {
					ws = append(ws, y)
				}
				sort.Ints(ws)
				for _, y := range ws {
					fmt.Printf("  %d: %.1fm\n", y, sheet.WaiverByYear[y])
				}
			}

			fmt.Println("\ndraft picks:")
			pt := table.NewWriter()
			pt.SetOutputMirror(os.Stdout)
			pt.AppendHeader(table.Row{"Year", "Round A", "Round B"})
			for _, y := range years {
				picks := sheet.PicksByYear[y]
				pt.AppendRow(table.Row{strconv.Itoa(y), strings.Join(picks.A, "\n"), strings.Join(picks.B, "\n")})
			}
			pt.SetStyle(table.StyleRounded)
			pt.Render()
		}

		// history summary, resolved fuzzily against the history sheet
		grid, err := client.FetchGridRaw(cmd.Context(), config.Gids.History)
		if err != nil {
			fatal(err)
		}
		if parsed, ok := history.Parse(grid); ok {
			summaries := history.SummaryByTeam(parsed)
			if sum, ok := history.BestTeamMatch(summaries, teamName); ok {
				fmt.Println("\nhistory:")
				fmt.Println("  awards:", orDash(sum.Awards))
				fmt.Println("  best record:", orDash(sum.BestRecordW))
				fmt.Println("  best fpts/g adjusted:", orDash(sum.BestFptsAdjusted))
				fmt.Println("  best playoffs:", orDash(sum.BestPlayoffs))
			}
		}
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
