package cmd

import (
	"fmt"
	"os"
	"strings"

	"dynasty-backend/services/catalog"
	"dynasty-backend/services/trade"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var tradeReceives []string

func init() {
	tradeCmd.Flags().StringArrayVar(&tradeReceives, "receives", nil,
		`what a team receives, as "Team=Player A,Player B" (repeat per team)`)
	tradeCmd.MarkFlagRequired("receives")

	rootCmd.AddCommand(tradeCmd)
}

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Simulates a trade and prints its cap and production impact.",
	Run: func(cmd *cobra.Command, args []string) {
		receives := map[string][]string{}
		for _, spec := range tradeReceives {
			team, names, ok := strings.Cut(spec, "=")
			if !ok {
				fatal(fmt.Errorf("invalid --receives %q, want Team=Player,...", spec))
			}
			for _, name := range strings.Split(names, ",") {
				name = strings.TrimSpace(name)
				if name != "" {
					receives[strings.TrimSpace(team)] = append(receives[strings.TrimSpace(team)], name)
				}
			}
		}

		cat := loadCatalog(cmd)
		payroll := catalog.PayrollByYear(cat.Players, cat.SalaryYears, nil)

		res := trade.Simulate(trade.Request{
			Receives: receives,
			Catalog:  cat.Players,
			Years:    cat.SalaryYears,
			Payroll:  payroll,
		})

		for _, m := range res.Missing {
			fmt.Fprintf(os.Stderr, "warning: %q receives unknown player %q\n", m.Team, m.Name)
		}

		for _, ti := range res.Teams {
			fmt.Printf("\n%s  (in %d, out %d)\n", ti.Team, len(ti.Incoming), len(ti.Outgoing))

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Year", "Net Salary", "New Payroll", "Over Cap"})

			for _, y := range cat.SalaryYears {
				impact := ti.SalaryImpactByYear[y]
				newPayroll := ""
				if impact.NewPayroll != nil {
					newPayroll = fmt.Sprintf("%.0f", *impact.NewPayroll)
				}
				overCap := ""
				if impact.OverCap {
					overCap = "OVER"
				}
				t.AppendRow(table.Row{y, fmt.Sprintf("%+.0f", impact.Net), newPayroll, overCap})
			}

			t.SetStyle(table.StyleRounded)
			t.Render()

			fmt.Printf("fpts %+.1f  fpts/g %+.2f  fpts/$ %+.4f  fpts/g/$ %+.6f\n",
				ti.FPNet.Fpts, ti.FPNet.FptsPerGame, ti.FPNet.FptsPerDollar, ti.FPNet.FptsPerGamePerDollar)
		}
	},
}
