package catalog

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var masterGrid = [][]string{
	{"DYNASTY LEAGUE", "", "", "", "", "", "", "", "", "", "", "", "", ""},
	{
		"Player", "Current Owner", "Position", "Age Next offseason", "G",
		"Fpts", "Fpts/G", "Fpts/$", "Fpts/G/$",
		"Contract Years (next season)", "2025", "2026", "2027",
		"2024 Rank", "Fantrax code",
	},
	{
		"A. Example", "Ducks", "PG", "24", "70",
		"3500", "50", "0.0003", "0.000004",
		"3", "12,000,000", "13,000,000", "14,000,000",
		"1", "HASH01",
	},
	{
		"B. Sample", "Samarina", "C", "31", "50",
		"2000", "40", "0.0002", "0.000004",
		"2", "9,500,000", "9,500,000", "",
		"2", "",
	},
	{"", "", "", "", "", "", "", "", "", "", "", "", "", "", ""},
	{
		"C. Waived", "", "SF", "28", "10",
		"100", "10", "0.0001", "0.000001",
		"1", "X", "", "",
		"3", "HASH03",
	},
}

func testNow() time.Time {
	return time.Date(2031, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func TestParseTable(t *testing.T) {
	table := ParseTable(masterGrid)

	// separator rows with a blank Player cell are dropped outright
	require.Len(t, table.Rows, 3)
	require.Equal(t, "A. Example", table.Rows[0]["Player"])
	require.Equal(t, "C. Waived", table.Rows[2]["Player"])
}

func TestParsePlayers(t *testing.T) {
	cat, err := ParsePlayers(ParseTable(masterGrid), testNow())
	require.NoError(t, err)

	// season pinned by the newest "<year> Rank" header, not the clock
	require.Equal(t, 2025, cat.CurrentSeason)
	require.Equal(t, []string{"2025", "2026", "2027"}, cat.SalaryYears)
	require.Len(t, cat.Players, 3)

	a := cat.Players[0]
	require.Equal(t, "HASH01", a.ID)
	require.Equal(t, "Ducks", a.Team)
	require.Equal(t, "PG", a.Position)
	require.Equal(t, float64(24), a.Age)
	require.Equal(t, float64(70), a.Games)
	require.Equal(t, float64(12000000), a.SalaryByYear["2025"])
	require.Equal(t, float64(12000000), a.SalaryNow)
	require.Equal(t, float64(50), a.FP.FptsPerGame)

	// no Fantrax code -> synthetic row id
	require.Equal(t, "row-2", cat.Players[1].ID)
	// absent years parse as zero salary
	require.Equal(t, float64(0), cat.Players[1].SalaryByYear["2027"])

	// the non-empty unparsable salary becomes 0 plus a warning
	require.Equal(t, float64(0), cat.Players[2].SalaryByYear["2025"])
	require.Len(t, cat.Warnings, 1)
	require.Contains(t, cat.Warnings[0], "C. Waived")
}

func TestParsePlayersIdempotent(t *testing.T) {
	first, err := ParsePlayers(ParseTable(masterGrid), testNow())
	require.NoError(t, err)
	second, err := ParsePlayers(ParseTable(masterGrid), testNow())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatal(diff)
	}
}

func TestParsePlayersMissingHeader(t *testing.T) {
	grid := [][]string{
		{"banner"},
		{"Name", "Current Owner"},
		{"someone", "Ducks"},
	}
	_, err := ParsePlayers(ParseTable(grid), testNow())
	require.ErrorIs(t, err, ErrMissingHeader)
	require.Contains(t, err.Error(), "Player")

	grid[1] = []string{"Player", "Owner"}
	_, err = ParsePlayers(ParseTable(grid), testNow())
	require.ErrorIs(t, err, ErrMissingHeader)
	require.Contains(t, err.Error(), "Current Owner")
}

func TestDeduceCurrentSeason(t *testing.T) {
	require.Equal(t, 2027, DeduceCurrentSeason([]string{"2024 Rank", "2026 Rank", "Player"}, testNow()))
	// no rank headers -> wall clock
	require.Equal(t, 2031, DeduceCurrentSeason([]string{"Player", "2025"}, testNow()))
}

func TestExtractSalaryYears(t *testing.T) {
	// scan tolerates separator columns after the anchor but gives up
	// once six in a row miss
	headers := []string{
		"Player", "Contract Years", "2025", "2026",
		"a", "b", "2027",
		"c", "d", "e", "f", "g", "h", "2030",
	}
	years, keyByYear := ExtractSalaryYears(headers)
	require.Equal(t, []string{"2025", "2026", "2027"}, years)
	require.Equal(t, "2025", keyByYear["2025"])

	// no anchor -> first occurrence of each bare year, sorted ascending
	years, _ = ExtractSalaryYears([]string{"2027", "Player", "2025", "2027"})
	require.Equal(t, []string{"2025", "2027"}, years)
}

func TestPlayerByName(t *testing.T) {
	cat, err := ParsePlayers(ParseTable(masterGrid), testNow())
	require.NoError(t, err)

	p, ok := cat.PlayerByName("a example")
	require.True(t, ok)
	require.Equal(t, "A. Example", p.Name)

	_, ok = cat.PlayerByName("nobody")
	require.False(t, ok)

	require.Equal(t, []string{"Ducks", "Samarina"}, cat.Teams())
}
