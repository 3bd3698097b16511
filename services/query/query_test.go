package query

import (
	"fmt"
	"testing"

	"dynasty-backend/services/catalog"

	"github.com/stretchr/testify/require"
)

func queryPlayers() []catalog.Player {
	// 20 players with games 1..20 and fpg descending with games
	var out []catalog.Player
	for i := 1; i <= 20; i++ {
		out = append(out, catalog.Player{
			Name:      fmt.Sprintf("Player %02d", i),
			Team:      "Ducks",
			Position:  "PG",
			Age:       float64(20 + i%10),
			Games:     float64(i),
			SalaryNow: float64(i) * 1_000_000,
			FP:        catalog.FP{FptsPerGame: float64(i)},
		})
	}
	return out
}

func TestPercentile90(t *testing.T) {
	var vals []float64
	for i := 1; i <= 20; i++ {
		vals = append(vals, float64(i))
	}
	// nearest rank: ceil(0.9*20) = 18th value
	require.Equal(t, float64(18), Percentile90(vals))

	require.Equal(t, float64(0), Percentile90(nil))
	require.Equal(t, float64(7), Percentile90([]float64{7}))
}

func TestRunBasicFilters(t *testing.T) {
	players := queryPlayers()

	res := Run(players, Filter{Search: "player 05", TopN: 10})
	require.Len(t, res.Players, 1)
	require.Equal(t, "Player 05", res.Players[0].Name)

	res = Run(players, Filter{Teams: []string{"Nobody"}, TopN: 10})
	require.Empty(t, res.Players)

	res = Run(players, Filter{MaxSalary: 3_000_000, TopN: 10})
	require.Len(t, res.Players, 3)

	// ranked by the metric, best first
	res = Run(players, Filter{TopN: 5, Metric: MetricFptsPerGame})
	require.Len(t, res.Players, 5)
	require.Equal(t, "Player 20", res.Players[0].Name)
}

func TestRunIronmenPct10(t *testing.T) {
	res := Run(queryPlayers(), Filter{Ironmen: IronmenPct10, TopN: 200})

	require.Equal(t, float64(18), res.GamesThreshold)
	require.Equal(t, float64(20), res.GamesLeader)
	// only players at or above the threshold survive
	require.Len(t, res.Players, 3)
	for _, p := range res.Players {
		require.GreaterOrEqual(t, p.Games, res.GamesThreshold)
	}

	// manual MinGames is ignored in ironmen mode
	withMin := Run(queryPlayers(), Filter{Ironmen: IronmenPct10, MinGames: 1000, TopN: 200})
	require.Len(t, withMin.Players, 3)
}

func TestRunIronmenClosestLeader(t *testing.T) {
	res := Run(queryPlayers(), Filter{Ironmen: IronmenClosestLeader, TopN: 5})

	// TopN widens to at least 15 and ranking flips to games
	require.Len(t, res.Players, 15)
	require.Equal(t, float64(20), res.Players[0].Games)
	for i := 1; i < len(res.Players); i++ {
		require.GreaterOrEqual(t, res.Players[i-1].Games, res.Players[i].Games)
	}
}
