package sheetutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestUniqueKeys(t *testing.T) {
	keys := UniqueKeys([]string{"Player", "2024", "2024", "Player", "2024"})
	expected := []string{"Player", "2024", "2024_2", "Player_2", "2024_3"}
	if diff := cmp.Diff(expected, keys); diff != "" {
		t.Fatal(diff)
	}
}

func TestDisplayLabels(t *testing.T) {
	raw := []string{"Player", "2024", "2024", "Notes_1"}
	keys := UniqueKeys(raw)
	labels := DisplayLabels(raw, keys)

	require.Equal(t, "Player", labels["Player"])
	require.Equal(t, "2024", labels["2024"])
	// the repeated year column is the cumulative one
	require.Equal(t, "salaries till 2024", labels["2024_2"])
	// non-numeric bases never get the cumulative label
	require.Equal(t, "Notes", labels["Notes_1"])
}

func TestFindIndex(t *testing.T) {
	headers := []string{"Player", "Current Owner", "Position"}
	require.Equal(t, 1, FindIndex(headers, "current owner"))
	require.Equal(t, -1, FindIndex(headers, "Salary"))
}

func TestFindHeader(t *testing.T) {
	headers := []string{"Player", "Current Owner", "Age Next offseason", "Fpts/G"}

	// exact beats everything
	require.Equal(t, "Fpts/G", FindHeader(headers, "Fpts/G"))
	// normalized match
	require.Equal(t, "Current Owner", FindHeader(headers, "current owner"))
	// fuzzy match tolerates small typos
	require.Equal(t, "Age Next offseason", FindHeader(headers, "Age Next offseson"))
	// nothing close enough -> ""
	require.Equal(t, "", FindHeader(headers, "Salary Cap Hit"))
	// first candidate that hits wins
	require.Equal(t, "Current Owner", FindHeader(headers, "Owner Team", "Current Owner"))
}
