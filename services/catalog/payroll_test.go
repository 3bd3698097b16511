package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func payrollPlayers() []Player {
	return []Player{
		{Name: "A", Team: "Ducks", SalaryByYear: map[string]float64{"2025": 10, "2026": 12}},
		{Name: "B", Team: "Ducks", SalaryByYear: map[string]float64{"2025": 5}},
		{Name: "C", Team: "Samarina", SalaryByYear: map[string]float64{"2025": 7, "2026": 7}},
		{Name: "D", Team: "", SalaryByYear: map[string]float64{"2025": 3}},
	}
}

func TestPayrollByYear(t *testing.T) {
	years := []string{"2025", "2026"}
	payroll := PayrollByYear(payrollPlayers(), years, []string{"Expansion"})

	require.Equal(t, float64(15), payroll["Ducks"]["2025"])
	require.Equal(t, float64(12), payroll["Ducks"]["2026"])
	require.Equal(t, float64(7), payroll["Samarina"]["2026"])

	// teamless players land in a visible bucket instead of vanishing
	require.Equal(t, float64(3), payroll["UNASSIGNED"]["2025"])

	// seeded teams exist with zero totals
	require.Equal(t, float64(0), payroll["Expansion"]["2025"])

	// conservation: every salary dollar lands in exactly one bucket
	var fromPlayers, fromPayroll float64
	for _, p := range payrollPlayers() {
		for _, y := range years {
			fromPlayers += p.SalaryByYear[y]
		}
	}
	for _, byYear := range payroll {
		for _, v := range byYear {
			fromPayroll += v
		}
	}
	require.Equal(t, fromPlayers, fromPayroll)
}

func TestPayrollWithWaivers(t *testing.T) {
	years := []string{"2025"}
	payroll := PayrollWithWaivers(payrollPlayers(), years, map[string]map[string]float64{
		"Ducks":     {"2025": 2.5},
		"GhostTeam": {"2025": 1},
	})

	// waiver hits are stored in millions
	require.Equal(t, float64(15+2_500_000), payroll["Ducks"]["2025"])
	// waiver-only teams still show up, seeded by the waiver map
	require.Equal(t, float64(1_000_000), payroll["GhostTeam"]["2025"])
}

func TestWaiverDollars(t *testing.T) {
	require.Equal(t, float64(2_500_000), WaiverDollars(2.5))
	require.Equal(t, float64(0), WaiverDollars(0))
}
