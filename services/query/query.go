// Package query runs ad-hoc filters over the player catalog: the stat
// explorer behind the CLI's players command. Everything is pure; the
// caller owns fetching and parsing.
package query

import (
	"math"
	"sort"
	"strings"

	"dynasty-backend/lib/sheetutil"
	"dynasty-backend/services/catalog"
)

type Metric string

const (
	MetricFpts                 Metric = "fpts"
	MetricFptsPerGame          Metric = "fpg"
	MetricFptsPerDollar        Metric = "fp$"
	MetricFptsPerGamePerDollar Metric = "fpg$"
)

func metricValue(p catalog.Player, m Metric) float64 {
	switch m {
	case MetricFpts:
		return p.FP.Fpts
	case MetricFptsPerDollar:
		return p.FP.FptsPerDollar
	case MetricFptsPerGamePerDollar:
		return p.FP.FptsPerGamePerDollar
	default:
		return p.FP.FptsPerGame
	}
}

type IronmenMode string

const (
	// no ironmen logic; MinGames applies as given
	IronmenOff IronmenMode = ""
	// games threshold forced to the 90th percentile of eligible players
	IronmenPct10 IronmenMode = "pct10"
	// top players by games, closest to the games leader
	IronmenClosestLeader IronmenMode = "closestLeader"
)

// closestLeader widens TopN to at least this many rows
const closestLeaderMinRows = 15

type Filter struct {
	// empty = all teams
	Teams    []string
	Position string
	Search   string
	MinAge   float64
	// 0 = unbounded
	MaxAge float64
	// ignored when Ironmen is set
	MinGames float64
	// 0 = unbounded; compared against SalaryNow
	MaxSalary float64
	Metric    Metric
	TopN      int
	Ironmen   IronmenMode
}

// Result carries the ranked players plus the derived ironmen numbers
// for display.
type Result struct {
	Players []catalog.Player
	// 90th percentile games threshold; only set in pct10 mode
	GamesThreshold float64
	// max games among eligible players; set in either ironmen mode
	GamesLeader float64
}

// passes everything except the games constraint, which the ironmen
// modes derive from the eligible pool itself
func passNonGames(p catalog.Player, f Filter) bool {
	if p.Name == "" {
		return false
	}

	if len(f.Teams) > 0 {
		found := false
		for _, t := range f.Teams {
			if p.Team == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if q := sheetutil.Norm(f.Search); q != "" {
		if !strings.Contains(sheetutil.Norm(p.Name), q) {
			return false
		}
	}

	if pos := sheetutil.Norm(f.Position); pos != "" {
		if !strings.Contains(sheetutil.Norm(p.Position), pos) {
			return false
		}
	}

	if f.MinAge > 0 && p.Age < f.MinAge {
		return false
	}
	if f.MaxAge > 0 && p.Age > f.MaxAge {
		return false
	}
	if f.MaxSalary > 0 && p.SalaryNow > f.MaxSalary {
		return false
	}

	return true
}

// Percentile90 is the nearest-rank 90th percentile.
func Percentile90(values []float64) float64 {
	arr := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			arr = append(arr, v)
		}
	}
	if len(arr) == 0 {
		return 0
	}
	sort.Float64s(arr)
	idx := int(math.Ceil(0.9*float64(len(arr)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(arr) {
		idx = len(arr) - 1
	}
	return arr[idx]
}

// Run filters, ranks and truncates the catalog. Stable given the same
// inputs; ties resolve by source order.
func Run(players []catalog.Player, f Filter) Result {
	var eligible []catalog.Player
	for _, p := range players {
		if passNonGames(p, f) {
			eligible = append(eligible, p)
		}
	}

	var res Result
	for _, p := range eligible {
		if p.Games > res.GamesLeader {
			res.GamesLeader = p.Games
		}
	}

	filtered := eligible
	switch f.Ironmen {
	case IronmenPct10:
		games := make([]float64, len(eligible))
		for i, p := range eligible {
			games[i] = p.Games
		}
		res.GamesThreshold = Percentile90(games)
		filtered = nil
		for _, p := range eligible {
			if p.Games >= res.GamesThreshold {
				filtered = append(filtered, p)
			}
		}
	case IronmenClosestLeader:
		// keep everyone; ranking by games does the selection
	default:
		if f.MinGames > 0 {
			filtered = nil
			for _, p := range eligible {
				if p.Games >= f.MinGames {
					filtered = append(filtered, p)
				}
			}
		}
	}

	ranked := append([]catalog.Player(nil), filtered...)
	if f.Ironmen == IronmenClosestLeader {
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].Games != ranked[j].Games {
				return ranked[i].Games > ranked[j].Games
			}
			return metricValue(ranked[i], f.Metric) > metricValue(ranked[j], f.Metric)
		})
	} else {
		sort.SliceStable(ranked, func(i, j int) bool {
			return metricValue(ranked[i], f.Metric) > metricValue(ranked[j], f.Metric)
		})
	}

	n := f.TopN
	if n <= 0 {
		n = 10
	}
	if n > 200 {
		n = 200
	}
	if f.Ironmen == IronmenClosestLeader && n < closestLeaderMinRows {
		n = closestLeaderMinRows
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	res.Players = ranked[:n]
	return res
}
