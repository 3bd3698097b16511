package catalog

import (
	"dynasty-backend/lib/sheetutil"
)

// league-wide ceiling on a team's total salary for one year
const CapLimit = 200_000_000

// Payroll is teamId -> year -> total salary.
type Payroll map[string]map[string]float64

// PayrollByYear sums per-year salaries into per-team buckets. Pure
// function of its inputs: callers re-run it freely with post-trade
// what-if slices. `seed` pre-creates teams that must appear even with
// zero player contributions (e.g. teams known only from a waiver
// sheet); they are never dropped.
func PayrollByYear(players []Player, years []string, seed []string) Payroll {
	out := Payroll{}

	bucket := func(team string) map[string]float64 {
		b, ok := out[team]
		if !ok {
			b = make(map[string]float64, len(years))
			for _, y := range years {
				b[y] = 0
			}
			out[team] = b
		}
		return b
	}

	for _, t := range seed {
		t = sheetutil.Clean(t)
		if t != "" {
			bucket(t)
		}
	}

	for _, p := range players {
		team := sheetutil.Clean(p.Team)
		if team == "" {
			team = "UNASSIGNED"
		}
		b := bucket(team)
		for _, y := range years {
			b[y] += p.SalaryByYear[y]
		}
	}

	return out
}

// WaiverDollars converts a waiver cap hit stored in millions (the way
// team sheets record it) into dollars.
func WaiverDollars(millions float64) float64 {
	return millions * 1_000_000
}

// PayrollWithWaivers is PayrollByYear plus each team's waiver cap hits
// (waiversByTeam values are in millions, per the team-sheet parser).
func PayrollWithWaivers(players []Player, years []string, waiversByTeam map[string]map[string]float64) Payroll {
	var seed []string
	for t := range waiversByTeam {
		seed = append(seed, t)
	}
	out := PayrollByYear(players, years, seed)

	for team, byYear := range waiversByTeam {
		team = sheetutil.Clean(team)
		b, ok := out[team]
		if !ok {
			continue
		}
		for _, y := range years {
			b[y] += WaiverDollars(byYear[y])
		}
	}
	return out
}
