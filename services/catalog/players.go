package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"dynasty-backend/lib/sheetutil"
)

// ErrMissingHeader is returned when the master sheet lacks a column
// the catalog cannot exist without. Callers surface it as a load
// failure; the rest of the application stays usable.
var ErrMissingHeader = errors.New("catalog: required header not found")

type FP struct {
	Fpts                 float64
	FptsPerGame          float64
	FptsPerDollar        float64
	FptsPerGamePerDollar float64
}

type Player struct {
	// external Fantrax code when the sheet has one, else "row-<n>"
	ID       string
	Name     string
	Team     string
	Position string
	// year "YYYY" -> salary. years absent from the block mean an
	// implicit zero salary, not missing data.
	SalaryByYear map[string]float64
	// salary for the current (next unplayed) season
	SalaryNow float64
	Games     float64
	// from the "Age Next offseason" column; 0 when the sheet lacks it
	Age float64
	FP  FP
}

type Catalog struct {
	// source row order, no implicit sort
	Players []Player
	// ascending salary years discovered in the header row
	SalaryYears []string
	// next unplayed season, inferred from "<year> Rank" headers
	CurrentSeason int
	// non-blocking notes about suspicious cells (e.g. a non-empty
	// salary that parsed to zero)
	Warnings []string
}

var rankHeaderRegex = regexp.MustCompile(`(?i)^(\d{4})\s+Rank$`)

// DeduceCurrentSeason infers the next unplayed season as one year past
// the latest year that has a "<year> Rank" column. The sheet gains a
// rank column only once a season has been played, so the newest one
// pins the calendar. Falls back to the wall-clock year.
func DeduceCurrentSeason(headers []string, now time.Time) int {
	last := 0
	for _, h := range headers {
		m := rankHeaderRegex.FindStringSubmatch(sheetutil.Clean(h))
		if m == nil {
			continue
		}
		y, err := strconv.Atoi(m[1])
		if err == nil && y > last {
			last = y
		}
	}
	if last == 0 {
		return now.Year()
	}
	return last + 1
}

// how many consecutive non-year columns the salary block scan tolerates
// before concluding the block has ended
const salaryBlockMaxMisses = 5

// ExtractSalaryYears finds the salary-year columns. Preferred: locate
// the "Contract Years" marker column and scan forward, tolerating up
// to salaryBlockMaxMisses stray separator columns. Fallback when no
// marker exists: first occurrence of every bare 4-digit-year header in
// document order. Returns ascending years and a year -> header key map.
func ExtractSalaryYears(headers []string) ([]string, map[string]string) {
	contractIdx := sheetutil.FindIndex(headers, "Contract Years (next season)")
	if contractIdx == -1 {
		contractIdx = sheetutil.FindIndex(headers, "Contract Years")
	}

	var years []string
	keyByYear := map[string]string{}

	if contractIdx == -1 {
		for _, h := range headers {
			if !sheetutil.IsYear(h) {
				continue
			}
			y := sheetutil.Clean(h)
			if _, ok := keyByYear[y]; !ok {
				keyByYear[y] = h
				years = append(years, y)
			}
		}
		sortYears(years)
		return years, keyByYear
	}

	misses := 0
	for i := contractIdx + 1; i < len(headers); i++ {
		if sheetutil.IsYear(headers[i]) {
			y := sheetutil.Clean(headers[i])
			years = append(years, y)
			keyByYear[y] = headers[i]
			misses = 0
			continue
		}
		misses++
		if misses > salaryBlockMaxMisses && len(years) > 0 {
			break
		}
	}

	sortYears(years)
	return years, keyByYear
}

func sortYears(years []string) {
	sort.Slice(years, func(i, j int) bool {
		a, _ := strconv.Atoi(years[i])
		b, _ := strconv.Atoi(years[j])
		return a < b
	})
}

// ParsePlayers builds the Player catalog from a parsed master table.
// `now` only matters when no "<year> Rank" header exists.
func ParsePlayers(table Table, now time.Time) (Catalog, error) {
	playerKey := findKey(table.Headers, "player")
	ownerKey := findKey(table.Headers, "current owner")
	if playerKey == "" {
		return Catalog{}, fmt.Errorf("%w: %q", ErrMissingHeader, "Player")
	}
	if ownerKey == "" {
		return Catalog{}, fmt.Errorf("%w: %q", ErrMissingHeader, "Current Owner")
	}
	posKey := findKey(table.Headers, "position")

	years, salaryKeyByYear := ExtractSalaryYears(table.Headers)
	season := DeduceCurrentSeason(table.Headers, now)
	seasonKey := strconv.Itoa(season)

	// FP headers are a stable sheet convention, matched by exact text
	// rather than fuzzily.
	fptsKey := exactKey(table.Headers, "Fpts")
	fpgKey := exactKey(table.Headers, "Fpts/G")
	fpDollarKey := exactKey(table.Headers, "Fpts/$")
	fpgDollarKey := exactKey(table.Headers, "Fpts/G/$")
	gamesKey := exactKey(table.Headers, "G")
	ageKey := sheetutil.FindHeader(table.Headers, "Age Next offseason")

	// the code column sits at the trailing edge of the sheet, so scan
	// from the end in case an unrelated column shares the label
	fantraxKey := ""
	for i := len(table.Headers) - 1; i >= 0; i-- {
		if sheetutil.Norm(table.Headers[i]) == "fantrax code" {
			fantraxKey = table.Headers[i]
			break
		}
	}

	out := Catalog{
		SalaryYears:   years,
		CurrentSeason: season,
	}

	for r, row := range table.Rows {
		name := row[playerKey]
		if name == "" {
			continue
		}

		salaryByYear := make(map[string]float64, len(years))
		for _, y := range years {
			raw := row[salaryKeyByYear[y]]
			v := sheetutil.ParseSalary(raw)
			if raw != "" && v == 0 {
				out.Warnings = append(out.Warnings, fmt.Sprintf(
					"player %q: salary %s is %q, treated as 0", name, y, raw,
				))
			}
			salaryByYear[y] = v
		}

		id := ""
		if fantraxKey != "" {
			id = row[fantraxKey]
		}
		if id == "" {
			id = fmt.Sprintf("row-%d", r+1)
		}

		p := Player{
			ID:           id,
			Name:         name,
			Team:         row[ownerKey],
			SalaryByYear: salaryByYear,
			SalaryNow:    salaryByYear[seasonKey],
			FP: FP{
				Fpts:                 sheetutil.ParseNumber(row[fptsKey]),
				FptsPerGame:          sheetutil.ParseNumber(row[fpgKey]),
				FptsPerDollar:        sheetutil.ParseNumber(row[fpDollarKey]),
				FptsPerGamePerDollar: sheetutil.ParseNumber(row[fpgDollarKey]),
			},
			Games: sheetutil.ParseNumber(row[gamesKey]),
		}
		if posKey != "" {
			p.Position = row[posKey]
		}
		if ageKey != "" {
			p.Age = sheetutil.ParseNumber(row[ageKey])
		}

		// the per-dollar figures are precomputed in the sheet and
		// trusted as-is; only the per-game rate gets a fallback so
		// older snapshots without the column still chart
		if fpgKey == "" && p.Games > 0 {
			p.FP.FptsPerGame = p.FP.Fpts / p.Games
		}

		out.Players = append(out.Players, p)
	}

	return out, nil
}

// Teams lists the distinct owner strings across players, sorted.
func (c Catalog) Teams() []string {
	seen := map[string]bool{}
	var teams []string
	for _, p := range c.Players {
		t := sheetutil.Clean(p.Team)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		teams = append(teams, t)
	}
	sort.Strings(teams)
	return teams
}

// PlayerByName resolves a player via the shared fuzzy identity rule.
func (c Catalog) PlayerByName(name string) (Player, bool) {
	target := sheetutil.NormFuzzy(name)
	for _, p := range c.Players {
		if sheetutil.NormFuzzy(p.Name) == target {
			return p, true
		}
	}
	return Player{}, false
}

func findKey(headers []string, normalized string) string {
	for _, h := range headers {
		if sheetutil.Norm(h) == normalized {
			return h
		}
	}
	return ""
}

func exactKey(headers []string, label string) string {
	for _, h := range headers {
		if sheetutil.Clean(h) == label {
			return h
		}
	}
	return ""
}
