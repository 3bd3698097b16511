package teamsheet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var years = []int{2025, 2026, 2027, 2028}

func labeledSheet() [][]string {
	return [][]string{
		{"DUCKS", "", "", "", "", ""},
		{"GM: Jane Doe", "", "", "", "", ""},
		{"", "Waiver", "$2.5m", "", "1m", ""},
		{"", "", "2025", "2026", "2027", "2028"},
		{"", "Picks", "", "", "", ""},
		{"", "Ducks - A", "x", "x", "", ""},
		{"", "Gators - B", "", "✓", "yes", ""},
		{"", "Ducks - A", "x", "", "", ""},
		{"", "Samarina", "x", "", "", ""},
	}
}

func TestExtractGM(t *testing.T) {
	require.Equal(t, "Jane Doe", ExtractGM(labeledSheet()))
	require.Equal(t, "", ExtractGM([][]string{{"no gm here"}}))
}

func TestExtractWaivers(t *testing.T) {
	got := ExtractWaivers(labeledSheet(), years)
	// blanks between amounts are skipped, order maps to years
	expected := map[int]float64{2025: 2.5, 2026: 1}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatal(diff)
	}

	require.Empty(t, ExtractWaivers([][]string{{"nothing"}}, years))
}

func TestLabeledYearColumns(t *testing.T) {
	got := LabeledYearColumns(labeledSheet(), 4, years)
	expected := map[int]int{2: 2025, 3: 2026, 4: 2027, 5: 2028}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatal(diff)
	}

	// years outside the allowed window are ignored
	none := LabeledYearColumns([][]string{{"2010", "1999"}}, 0, years)
	require.Empty(t, none)
}

func TestInferYearColumnsFromMarks(t *testing.T) {
	sheet := [][]string{
		{"", "Picks", "", "", "", ""},
		{"", "Ducks - A", "x", "x", "", ""},
		{"", "Gators - B", "x", "", "yes", ""},
		{"", "Other - A", "x", "1", "", "true"},
	}
	got := InferYearColumnsFromMarks(sheet, 0, years)
	// most-marked columns win, then map to years in column order
	expected := map[int]int{2: 2025, 3: 2026, 4: 2027, 5: 2028}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestExtractPicks(t *testing.T) {
	got := ExtractPicks(labeledSheet(), years)

	// duplicate "Ducks - A" rows collapse per year and round
	require.Equal(t, []string{"Ducks"}, got[2025].A)
	require.Equal(t, []string{"Ducks"}, got[2026].A)
	require.Equal(t, []string{"Gators"}, got[2026].B)
	require.Equal(t, []string{"Gators"}, got[2027].B)

	// rows without a round suffix are not picks
	require.Empty(t, got[2025].B)
	require.Empty(t, got[2028].A)
}

func TestSplitPickName(t *testing.T) {
	team, round := SplitPickName("Ducks - A")
	require.Equal(t, "Ducks", team)
	require.Equal(t, "A", round)

	team, round = SplitPickName("Gators-b")
	require.Equal(t, "Gators", team)
	require.Equal(t, "B", round)

	team, round = SplitPickName("Samarina")
	require.Equal(t, "Samarina", team)
	require.Equal(t, "", round)
}

func TestParse(t *testing.T) {
	sheet := Parse(labeledSheet(), years)
	require.Equal(t, "Jane Doe", sheet.GM)
	require.Equal(t, 2.5, sheet.WaiverByYear[2025])
	require.Equal(t, []string{"Ducks"}, sheet.PicksByYear[2025].A)
}
