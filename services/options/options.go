// Package options parses the player-options matrix: a sheet whose
// header row sits somewhere in the first few rows, with a "Player"
// label column and one column per contract year holding T (team option)
// or P (player option) marks.
package options

import (
	"sort"
	"strings"

	"dynasty-backend/lib/sheetutil"
)

// Matrix indexes option codes by normalized player name and year.
type Matrix struct {
	// normalized player -> year -> "T" | "P"
	ByPlayerYear map[string]map[string]string
	// ascending years discovered in the header row
	Years []string
	// source column index of the player label column
	PlayerCol int
	// source row index of the header row; -1 when none was found
	HeaderRow int
}

const (
	playerColScanRows = 5
	headerScanRows    = 10
	minYearColumns    = 3
)

func cellAt(grid [][]string, r, c int) string {
	if r < len(grid) && c < len(grid[r]) {
		return sheetutil.Clean(grid[r][c])
	}
	return ""
}

func gridWidth(grid [][]string) int {
	w := 0
	for _, row := range grid {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// detectPlayerCol scans the first few rows for a cell literally reading
// "player". Column 0 is the fallback when the label is absent.
func detectPlayerCol(grid [][]string, width int) int {
	rows := len(grid)
	if rows > playerColScanRows {
		rows = playerColScanRows
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < width; c++ {
			if strings.ToLower(cellAt(grid, r, c)) == "player" {
				return c
			}
		}
	}
	return 0
}

// findHeaderRow finds the first of the leading rows whose player cell
// reads "player" and which carries enough year cells to be the matrix
// header rather than a stray label.
func findHeaderRow(grid [][]string, playerCol, width int) int {
	rows := len(grid)
	if rows > headerScanRows {
		rows = headerScanRows
	}
	for r := 0; r < rows; r++ {
		if strings.ToLower(cellAt(grid, r, playerCol)) != "player" {
			continue
		}
		years := 0
		for c := 0; c < width; c++ {
			if c == playerCol {
				continue
			}
			if sheetutil.AsYear(cellAt(grid, r, c)) != "" {
				years++
			}
		}
		if years >= minYearColumns {
			return r
		}
	}
	return -1
}

// Parse builds the matrix from a raw sheet grid. A grid without a
// recognizable header row yields an empty matrix, not an error: the
// options tab is optional league bookkeeping.
func Parse(grid [][]string) Matrix {
	width := gridWidth(grid)
	playerCol := detectPlayerCol(grid, width)
	headerRow := findHeaderRow(grid, playerCol, width)

	m := Matrix{
		ByPlayerYear: map[string]map[string]string{},
		PlayerCol:    playerCol,
		HeaderRow:    headerRow,
	}
	if headerRow < 0 {
		return m
	}

	colToYear := map[int]string{}
	seen := map[string]bool{}
	for c := 0; c < width; c++ {
		y := sheetutil.AsYear(cellAt(grid, headerRow, c))
		if y == "" {
			continue
		}
		colToYear[c] = y
		if !seen[y] {
			seen[y] = true
			m.Years = append(m.Years, y)
		}
	}
	sort.Strings(m.Years)

	for r := range grid {
		if r == headerRow {
			continue
		}
		player := cellAt(grid, r, playerCol)
		if player == "" || strings.ToLower(player) == "player" {
			continue
		}

		key := sheetutil.Norm(player)
		for c, y := range colToYear {
			v := strings.ToUpper(cellAt(grid, r, c))
			if v != "T" && v != "P" {
				continue
			}
			if m.ByPlayerYear[key] == nil {
				m.ByPlayerYear[key] = map[string]string{}
			}
			m.ByPlayerYear[key][y] = v
		}
	}

	return m
}

// Lookup returns the option code for a player and year, "" when none.
func (m Matrix) Lookup(playerName, year string) string {
	return m.ByPlayerYear[sheetutil.Norm(playerName)][sheetutil.Clean(year)]
}

// Label spells out an option code for display.
func Label(code string) string {
	switch code {
	case "T":
		return "Team Option"
	case "P":
		return "Player Option"
	}
	return ""
}
