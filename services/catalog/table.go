// Package catalog turns the master player sheet into Player entities
// and derives per-team payroll from them.
package catalog

import (
	"dynasty-backend/lib/sheetutil"
)

// Table is the master sheet reshaped into string-keyed records. Header
// text lives in row index 1 of the raw grid and data starts at row 2;
// row 0 is a decorative banner the sheet's maintainers keep around.
type Table struct {
	// unique header keys, in column order ("Player", "2024", "2024_2", ...)
	Headers []string
	// unique key -> label fit for display ("2024_2" -> "salaries till 2024")
	DisplayMap map[string]string
	// one record per kept data row, unique header key -> cell text
	Rows []Row
}

type Row map[string]string

const (
	headerRowIndex    = 1
	dataStartRowIndex = 2
)

// ParseTable reshapes the raw master grid. Rows whose Player cell is
// blank are dropped here, not merely hidden: they are separator rows
// in the sheet and carry no entity.
func ParseTable(grid [][]string) Table {
	if len(grid) <= dataStartRowIndex {
		return Table{DisplayMap: map[string]string{}}
	}

	raw := make([]string, len(grid[headerRowIndex]))
	for i, h := range grid[headerRowIndex] {
		raw[i] = sheetutil.Clean(h)
	}

	headers := sheetutil.UniqueKeys(raw)
	displayMap := sheetutil.DisplayLabels(raw, headers)

	playerIdx := sheetutil.FindIndex(headers, "Player")

	var rows []Row
	for _, line := range grid[dataStartRowIndex:] {
		row := make(Row, len(headers))
		for i, key := range headers {
			if i < len(line) {
				row[key] = sheetutil.Clean(line[i])
			} else {
				row[key] = ""
			}
		}
		if playerIdx != -1 && row[headers[playerIdx]] == "" {
			continue
		}
		rows = append(rows, row)
	}

	return Table{
		Headers:    headers,
		DisplayMap: displayMap,
		Rows:       rows,
	}
}
