package gviz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `/*O_o*/
google.visualization.Query.setResponse({"table":{"cols":[{"label":""},{"label":""},{"label":""}],"rows":[` +
	`{"c":[{"v":"Player"},{"v":"2024"},{"v":"2025"}]},` +
	`{"c":[{"v":"A. Example"},{"v":12000000.0,"f":"12,000,000"},null]},` +
	`{"c":[{"v":"B. Sample"},{"v":0.0,"f":""},{"v":true}]}` +
	`]}});`

func TestUnwrapResponse(t *testing.T) {
	payload, err := unwrapResponse(sampleResponse)
	require.NoError(t, err)
	require.Len(t, payload.Table.Rows, 3)

	_, err = unwrapResponse(`{"table":{}}`)
	require.Error(t, err)

	_, err = unwrapResponse(`setResponse(not json);`)
	require.Error(t, err)
}

func TestPayloadToGridCellModes(t *testing.T) {
	payload, err := unwrapResponse(sampleResponse)
	require.NoError(t, err)

	formatted := payloadToGrid(payload, PreferFormatted)
	expected := [][]string{
		{"Player", "2024", "2025"},
		{"A. Example", "12,000,000", ""},
		{"B. Sample", "", "true"},
	}
	if diff := cmp.Diff(expected, formatted); diff != "" {
		t.Fatal(diff)
	}

	raw := payloadToGrid(payload, PreferRaw)
	expectedRaw := [][]string{
		{"Player", "2024", "2025"},
		{"A. Example", "12000000", ""},
		{"B. Sample", "0", "true"},
	}
	if diff := cmp.Diff(expectedRaw, raw); diff != "" {
		t.Fatal(diff)
	}
}

func TestPayloadToGridPadsWidth(t *testing.T) {
	payload, err := unwrapResponse(
		`setResponse({"table":{"cols":[{"label":""}],"rows":[{"c":[{"v":"a"},{"v":"b"},{"v":"c"}]},{"c":[{"v":"d"}]}]}});`,
	)
	require.NoError(t, err)

	grid := payloadToGrid(payload, PreferFormatted)
	require.Len(t, grid[0], 3)
	require.Len(t, grid[1], 3)
	require.Equal(t, "", grid[1][1])
}

func TestFillForward(t *testing.T) {
	in := []string{"", "2023", "", "", "Total", "", ""}
	expected := []string{"", "2023", "2023", "2023", "Total", "Total", "Total"}
	if diff := cmp.Diff(expected, FillForward(in)); diff != "" {
		t.Fatal(diff)
	}
}

func TestParseCSV(t *testing.T) {
	text := "a,b,c\n\"x,y\",\"he said \"\"hi\"\"\",z\nlast"
	expected := [][]string{
		{"a", "b", "c"},
		{"x,y", `he said "hi"`, "z"},
		{"last"},
	}
	if diff := cmp.Diff(expected, ParseCSV(text)); diff != "" {
		t.Fatal(diff)
	}

	// quoted newline stays inside the cell
	multi := ParseCSV("\"a\nb\",c\n")
	require.Equal(t, "a\nb", multi[0][0])
	require.Equal(t, "c", multi[0][1])
}
