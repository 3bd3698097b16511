package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"dynasty-backend/services/catalog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var payrollYear string

func init() {
	payrollCmd.Flags().StringVar(&payrollYear, "year", "", "show a single salary year (default: all)")
	rootCmd.AddCommand(payrollCmd)
}

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Prints each team's salary totals and cap space per year.",
	Run: func(cmd *cobra.Command, args []string) {
		cat := loadCatalog(cmd)

		years := cat.SalaryYears
		if payrollYear != "" {
			years = []string{payrollYear}
		}
		payroll := catalog.PayrollByYear(cat.Players, years, nil)

		teams := make([]string, 0, len(payroll))
		for t := range payroll {
			teams = append(teams, t)
		}
		sort.Strings(teams)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)

		header := table.Row{"Team"}
		for _, y := range years {
			header = append(header, y)
		}
		if len(years) == 1 {
			header = append(header, "Cap Space")
		}
		t.AppendHeader(header)

		for _, team := range teams {
			row := table.Row{team}
			for _, y := range years {
				row = append(row, fmt.Sprintf("%.0f", payroll[team][y]))
			}
			if len(years) == 1 {
				row = append(row, fmt.Sprintf("%.0f", catalog.CapLimit-payroll[team][years[0]]))
			}
			t.AppendRow(row)
		}

		t.SetStyle(table.StyleRounded)
		t.Render()

		fmt.Println("cap limit:", strconv.Itoa(catalog.CapLimit))
	},
}
