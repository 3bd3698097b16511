package history

import (
	"github.com/antzucaro/matchr"

	"dynasty-backend/lib/sheetutil"
)

// TeamSummary is the per-team digest shown on team pages: career awards
// plus the team's best single-season marks.
type TeamSummary struct {
	Team             string
	Awards           string
	BestRecordW      string
	BestFptsAdjusted string
	BestPlayoffs     string
}

// SummaryByTeam extracts one summary per team, keyed by the normalized
// team name. The Best columns resolve by header text; when any of the
// three is missing (blank headers happen on this sheet) the last 3
// columns stand in positionally, matching the Records band inference.
func SummaryByTeam(p Parsed) map[string]TeamSummary {
	teamKey := FindColKey(p.AllCols, "Team")
	awardsKey := FindColKey(p.AllCols, "Champs / Finals")
	if awardsKey == "" {
		awardsKey = FindColKey(p.AllCols, "Champs/Finals")
	}

	bestRecordKey := FindColKey(p.AllCols, "Best Record W%")
	bestFptsKey := FindColKey(p.AllCols, "Best Fpts/G Adjusted")
	bestPlayoffsKey := FindColKey(p.AllCols, "Best Playoffs")
	bestKeysOk := bestRecordKey != "" && bestFptsKey != "" && bestPlayoffsKey != ""

	var last3 []string
	if !bestKeysOk && len(p.AllCols) >= 3 {
		for _, c := range p.AllCols[len(p.AllCols)-3:] {
			last3 = append(last3, c.Key)
		}
	}

	out := map[string]TeamSummary{}
	if teamKey == "" {
		return out
	}
	for _, row := range p.Data {
		team := row[teamKey]
		if team == "" {
			continue
		}

		var bestRecord, bestFpts, bestPlayoffs string
		if bestRecordKey != "" {
			bestRecord = row[bestRecordKey]
		}
		if bestFptsKey != "" {
			bestFpts = row[bestFptsKey]
		}
		if bestPlayoffsKey != "" {
			bestPlayoffs = row[bestPlayoffsKey]
		}

		if !bestKeysOk && len(last3) == 3 {
			if bestRecord == "" {
				bestRecord = row[last3[0]]
			}
			if bestFpts == "" {
				bestFpts = row[last3[1]]
			}
			if bestPlayoffs == "" {
				bestPlayoffs = row[last3[2]]
			}
		}

		sum := TeamSummary{
			Team:             team,
			BestFptsAdjusted: bestFpts,
			BestPlayoffs:     bestPlayoffs,
		}
		if awardsKey != "" {
			sum.Awards = row[awardsKey]
		}
		if bestRecord != "" {
			sum.BestRecordW = sheetutil.FormatTenthsPercent(bestRecord)
		}
		out[sheetutil.NormHeader(team)] = sum
	}
	return out
}

const teamMatchThreshold = 0.85

// BestTeamMatch resolves a free-form team name against the summary map:
// exact normalized hit first, then the closest JaroWinkler match over
// the threshold. Team names drift across sheets ("Ducks" vs "The
// Ducks"), so exact-only lookups miss real teams.
func BestTeamMatch(summaries map[string]TeamSummary, team string) (TeamSummary, bool) {
	key := sheetutil.NormHeader(team)
	if s, ok := summaries[key]; ok {
		return s, true
	}

	var best TeamSummary
	bestScore := 0.0
	for k, s := range summaries {
		score := matchr.JaroWinkler(key, k, false)
		if score > bestScore {
			bestScore = score
			best = s
		}
	}
	if bestScore >= teamMatchThreshold {
		return best, true
	}
	return TeamSummary{}, false
}
