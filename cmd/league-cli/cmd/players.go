package cmd

import (
	"fmt"
	"os"
	"time"

	"dynasty-backend/services/catalog"
	"dynasty-backend/services/query"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var playersFlags struct {
	teams     []string
	position  string
	search    string
	metric    string
	topN      int
	minAge    float64
	maxAge    float64
	minGames  float64
	maxSalary float64
	ironmen   string
}

func init() {
	f := playersCmd.Flags()
	f.StringSliceVar(&playersFlags.teams, "team", nil, "restrict to one or more owner teams")
	f.StringVar(&playersFlags.position, "position", "", "position filter (substring match)")
	f.StringVar(&playersFlags.search, "search", "", "player name filter (substring match)")
	f.StringVar(&playersFlags.metric, "metric", "fpg", "ranking metric: fpts, fpg, fp$, fpg$")
	f.IntVar(&playersFlags.topN, "top", 10, "number of rows to show")
	f.Float64Var(&playersFlags.minAge, "min-age", 0, "minimum age")
	f.Float64Var(&playersFlags.maxAge, "max-age", 0, "maximum age (0 = unbounded)")
	f.Float64Var(&playersFlags.minGames, "min-games", 0, "minimum games played")
	f.Float64Var(&playersFlags.maxSalary, "max-salary", 0, "maximum current salary (0 = unbounded)")
	f.StringVar(&playersFlags.ironmen, "ironmen", "", "ironmen mode: pct10 or closestLeader")

	rootCmd.AddCommand(playersCmd)
}

func loadCatalog(cmd *cobra.Command) catalog.Catalog {
	grid, err := client.FetchGrid(cmd.Context(), config.Gids.Players)
	if err != nil {
		fatal(err)
	}
	cat, err := catalog.ParsePlayers(catalog.ParseTable(grid), time.Now())
	if err != nil {
		fatal(err)
	}
	for _, w := range cat.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	return cat
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Ranks players from the master sheet by a fantasy metric.",
	Run: func(cmd *cobra.Command, args []string) {
		cat := loadCatalog(cmd)

		res := query.Run(cat.Players, query.Filter{
			Teams:     playersFlags.teams,
			Position:  playersFlags.position,
			Search:    playersFlags.search,
			MinAge:    playersFlags.minAge,
			MaxAge:    playersFlags.maxAge,
			MinGames:  playersFlags.minGames,
			MaxSalary: playersFlags.maxSalary,
			Metric:    query.Metric(playersFlags.metric),
			TopN:      playersFlags.topN,
			Ironmen:   query.IronmenMode(playersFlags.ironmen),
		})

		if res.GamesThreshold > 0 {
			fmt.Printf("games threshold: %.0f (leader: %.0f)\n", res.GamesThreshold, res.GamesLeader)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Player", "Owner", "Pos", "Age", "G", "Salary", playersFlags.metric})

		for i, p := range res.Players {
			var metric float64
			switch query.Metric(playersFlags.metric) {
			case query.MetricFpts:
				metric = p.FP.Fpts
			case query.MetricFptsPerDollar:
				metric = p.FP.FptsPerDollar
			case query.MetricFptsPerGamePerDollar:
				metric = p.FP.FptsPerGamePerDollar
			default:
				metric = p.FP.FptsPerGame
			}
			t.AppendRow(table.Row{
				i + 1, p.Name, p.Team, p.Position,
				fmt.Sprintf("%.0f", p.Age),
				fmt.Sprintf("%.0f", p.Games),
				fmt.Sprintf("%.0f", p.SalaryNow),
				fmt.Sprintf("%.3f", metric),
			})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
