// Package trade simulates proposed player movement between teams
// without touching the underlying catalog.
package trade

import (
	"sort"

	"dynasty-backend/lib/sheetutil"
	"dynasty-backend/services/catalog"
)

// Request describes a proposed trade: for each receiving team, the
// player names it receives (as typed by the trade builder, so names
// resolve fuzzily and may fail to resolve at all).
type Request struct {
	Receives map[string][]string
	Catalog  []catalog.Player
	// salary years to evaluate (usually current season onward)
	Years []string
	// optional: current payroll per team per year; enables the
	// projected-payroll / over-cap flags
	Payroll catalog.Payroll
	// cap ceiling; defaults to catalog.CapLimit when zero
	Cap float64
}

type Move struct {
	PlayerID string
	Name     string
	FromTeam string
	ToTeam   string
}

// MissingAsset is a received name that resolved to no catalog player.
// It is reported, not fatal: trade builders type names interactively
// and one typo must not abort the whole simulation.
type MissingAsset struct {
	Team string
	Name string
}

type FPDelta struct {
	Fpts                 float64
	FptsPerGame          float64
	FptsPerDollar        float64
	FptsPerGamePerDollar float64
}

type YearImpact struct {
	Net float64
	// projected payroll after the trade; nil when no payroll was given
	NewPayroll *float64
	OverCap    bool
}

// TeamImpact is the full effect of the trade on one touched team.
type TeamImpact struct {
	Team     string
	Incoming []catalog.Player
	Outgoing []catalog.Player
	// year -> incoming minus outgoing salary
	SalaryImpactByYear map[string]YearImpact
	FPIncoming         FPDelta
	FPOutgoing         FPDelta
	FPNet              FPDelta
}

type Result struct {
	Moves   []Move
	Missing []MissingAsset
	// sorted by team id for deterministic output
	Teams []TeamImpact
}

// Simulate computes salary-cap and fantasy-production impact per
// touched team. Deterministic: same request, same result. A player
// listed as both incoming and outgoing for one team (multi-team trade
// chains) contributes on both sides; nothing deduplicates by identity.
func Simulate(req Request) Result {
	cap := req.Cap
	if cap == 0 {
		cap = catalog.CapLimit
	}

	byName := make(map[string]catalog.Player, len(req.Catalog))
	for _, p := range req.Catalog {
		key := sheetutil.NormFuzzy(p.Name)
		if _, ok := byName[key]; !ok {
			byName[key] = p
		}
	}

	var res Result

	// deterministic iteration over the request map
	teams := make([]string, 0, len(req.Receives))
	for t := range req.Receives {
		teams = append(teams, t)
	}
	sort.Strings(teams)

	for _, toTeam := range teams {
		for _, raw := range req.Receives[toTeam] {
			p, ok := byName[sheetutil.NormFuzzy(raw)]
			if !ok {
				res.Missing = append(res.Missing, MissingAsset{Team: toTeam, Name: raw})
				continue
			}
			res.Moves = append(res.Moves, Move{
				PlayerID: p.ID,
				Name:     p.Name,
				FromTeam: p.Team,
				ToTeam:   toTeam,
			})
		}
	}

	impacts := map[string]*TeamImpact{}
	touch := func(team string) *TeamImpact {
		ti, ok := impacts[team]
		if !ok {
			ti = &TeamImpact{
				Team:               team,
				SalaryImpactByYear: map[string]YearImpact{},
			}
			impacts[team] = ti
		}
		return ti
	}

	for _, mv := range res.Moves {
		p := byName[sheetutil.NormFuzzy(mv.Name)]
		touch(mv.ToTeam).Incoming = append(touch(mv.ToTeam).Incoming, p)
		touch(mv.FromTeam).Outgoing = append(touch(mv.FromTeam).Outgoing, p)
	}

	for _, ti := range impacts {
		for _, y := range req.Years {
			var in, out float64
			for _, p := range ti.Incoming {
				in += p.SalaryByYear[y]
			}
			for _, p := range ti.Outgoing {
				out += p.SalaryByYear[y]
			}

			impact := YearImpact{Net: in - out}
			if base, ok := req.Payroll[ti.Team]; ok {
				if current, ok := base[y]; ok {
					projected := current + impact.Net
					impact.NewPayroll = &projected
					impact.OverCap = projected > cap
				}
			}
			ti.SalaryImpactByYear[y] = impact
		}

		ti.FPIncoming = sumFP(ti.Incoming)
		ti.FPOutgoing = sumFP(ti.Outgoing)
		ti.FPNet = FPDelta{
			Fpts:                 ti.FPIncoming.Fpts - ti.FPOutgoing.Fpts,
			FptsPerGame:          ti.FPIncoming.FptsPerGame - ti.FPOutgoing.FptsPerGame,
			FptsPerDollar:        ti.FPIncoming.FptsPerDollar - ti.FPOutgoing.FptsPerDollar,
			FptsPerGamePerDollar: ti.FPIncoming.FptsPerGamePerDollar - ti.FPOutgoing.FptsPerGamePerDollar,
		}
	}

	touched := make([]string, 0, len(impacts))
	for t := range impacts {
		touched = append(touched, t)
	}
	sort.Strings(touched)
	for _, t := range touched {
		res.Teams = append(res.Teams, *impacts[t])
	}

	return res
}

func sumFP(players []catalog.Player) FPDelta {
	var d FPDelta
	for _, p := range players {
		d.Fpts += p.FP.Fpts
		d.FptsPerGame += p.FP.FptsPerGame
		d.FptsPerDollar += p.FP.FptsPerDollar
		d.FptsPerGamePerDollar += p.FP.FptsPerGamePerDollar
	}
	return d
}
