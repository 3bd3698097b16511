package trade

import (
	"testing"

	"dynasty-backend/services/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func tradeCatalog() []catalog.Player {
	return []catalog.Player{
		{
			ID: "p1", Name: "A. Example", Team: "Ducks",
			SalaryByYear: map[string]float64{"2025": 10, "2026": 11},
			FP:           catalog.FP{Fpts: 1000, FptsPerGame: 25},
		},
		{
			ID: "p2", Name: "B. Sample", Team: "Samarina",
			SalaryByYear: map[string]float64{"2025": 6, "2026": 6},
			FP:           catalog.FP{Fpts: 700, FptsPerGame: 20},
		},
		{
			ID: "p3", Name: "C. Cheap", Team: "Samarina",
			SalaryByYear: map[string]float64{"2025": 2},
			FP:           catalog.FP{Fpts: 100, FptsPerGame: 5},
		},
	}
}

func TestSimulate(t *testing.T) {
	res := Simulate(Request{
		Receives: map[string][]string{
			"Ducks":    {"b. sample", "C. Cheap"},
			"Samarina": {"A. Example"},
		},
		Catalog: tradeCatalog(),
		Years:   []string{"2025", "2026"},
	})

	require.Empty(t, res.Missing)
	require.Len(t, res.Moves, 3)
	require.Len(t, res.Teams, 2)

	// teams come back sorted by id
	require.Equal(t, "Ducks", res.Teams[0].Team)
	require.Equal(t, "Samarina", res.Teams[1].Team)

	ducks := res.Teams[0]
	require.Equal(t, float64(6+2-10), ducks.SalaryImpactByYear["2025"].Net)
	require.Equal(t, float64(6+0-11), ducks.SalaryImpactByYear["2026"].Net)
	require.Equal(t, float64(700+100-1000), ducks.FPNet.Fpts)
	require.Equal(t, float64(20+5-25), ducks.FPNet.FptsPerGame)

	// zero-sum: what one side gains the other loses
	samarina := res.Teams[1]
	for _, y := range []string{"2025", "2026"} {
		require.Equal(t, float64(0),
			ducks.SalaryImpactByYear[y].Net+samarina.SalaryImpactByYear[y].Net, "year %s", y)
	}
	require.Equal(t, float64(0), ducks.FPNet.Fpts+samarina.FPNet.Fpts)
}

func TestSimulateMissingPlayers(t *testing.T) {
	res := Simulate(Request{
		Receives: map[string][]string{
			"Ducks": {"Nobody Known", "B. Sample"},
		},
		Catalog: tradeCatalog(),
		Years:   []string{"2025"},
	})

	// the typo is reported, the rest of the trade still computes
	require.Equal(t, []MissingAsset{{Team: "Ducks", Name: "Nobody Known"}}, res.Missing)
	require.Len(t, res.Moves, 1)
	require.Equal(t, float64(6), findTeam(t, res, "Ducks").SalaryImpactByYear["2025"].Net)
}

func TestSimulatePayrollProjection(t *testing.T) {
	payroll := catalog.Payroll{
		"Ducks":    {"2025": 199_999_999},
		"Samarina": {"2025": 50},
	}

	res := Simulate(Request{
		Receives: map[string][]string{
			"Ducks": {"B. Sample"},
		},
		Catalog: tradeCatalog(),
		Years:   []string{"2025"},
		Payroll: payroll,
	})

	ducks := findTeam(t, res, "Ducks")
	impact := ducks.SalaryImpactByYear["2025"]
	require.NotNil(t, impact.NewPayroll)
	require.Equal(t, float64(200_000_005), *impact.NewPayroll)
	require.True(t, impact.OverCap)

	samarina := findTeam(t, res, "Samarina")
	impact = samarina.SalaryImpactByYear["2025"]
	require.NotNil(t, impact.NewPayroll)
	require.Equal(t, float64(44), *impact.NewPayroll)
	require.False(t, impact.OverCap)
}

func TestSimulateDeterministic(t *testing.T) {
	req := Request{
		Receives: map[string][]string{
			"Ducks":    {"B. Sample"},
			"Samarina": {"A. Example"},
		},
		Catalog: tradeCatalog(),
		Years:   []string{"2025", "2026"},
	}

	first := Simulate(req)
	second := Simulate(req)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatal(diff)
	}
}

func findTeam(t *testing.T, res Result, team string) TeamImpact {
	t.Helper()
	for _, ti := range res.Teams {
		if ti.Team == team {
			return ti
		}
	}
	t.Fatalf("team %q not in result", team)
	return TeamImpact{}
}
