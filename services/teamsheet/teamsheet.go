// Package teamsheet parses the per-team CSV tabs. These sheets are
// hand-maintained and freeform, so everything here is positional
// scanning rather than header resolution: a GM line, a waiver row, and
// a draft-pick block anchored on a "Picks" cell.
package teamsheet

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"dynasty-backend/lib/sheetutil"
)

// TeamSheet holds everything the team tab contributes beyond the master
// catalog. Waiver amounts are in millions, the way the sheet writes
// them.
type TeamSheet struct {
	GM           string
	WaiverByYear map[int]float64
	PicksByYear  map[int]Rounds
}

// Rounds lists pick origin teams per draft round.
type Rounds struct {
	A []string
	B []string
}

var gmRegex = regexp.MustCompile(`(?i)gm:\s*(.*)`)

// ExtractGM finds the last cell containing a "GM:" label anywhere on
// the sheet and returns the trailing name.
func ExtractGM(rows [][]string) string {
	found := ""
	for _, row := range rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), "gm:") {
				found = cell
			}
		}
	}
	if found == "" {
		return ""
	}
	m := gmRegex.FindStringSubmatch(found)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ExtractWaivers maps the non-blank cells after the "Waiver" label to
// the given years in order. Blank gaps between amounts are tolerated;
// a blank year means no waiver cap hit.
func ExtractWaivers(rows [][]string, years []int) map[int]float64 {
	out := map[int]float64{}

	for _, row := range rows {
		idx := -1
		for c, cell := range row {
			if strings.ToLower(sheetutil.Clean(cell)) == "waiver" {
				idx = c
				break
			}
		}
		if idx < 0 {
			continue
		}

		offset := 0
		for i := idx + 1; i < len(row) && offset < len(years); i++ {
			raw := sheetutil.Clean(row[i])
			if raw == "" {
				continue
			}
			cleaned := strings.TrimSpace(strings.NewReplacer("$", "", "m", "").Replace(raw))
			v, err := strconv.ParseFloat(cleaned, 64)
			if err != nil {
				continue
			}
			out[years[offset]] = v
			offset++
		}
		return out
	}

	return out
}

var pickYearRegex = regexp.MustCompile(`\b(20\d{2})\b`)

func isMarked(cell string) bool {
	switch strings.ToLower(sheetutil.Clean(cell)) {
	case "x", "✓", "1", "yes", "y", "true":
		return true
	}
	return false
}

func findPicksAnchor(rows [][]string) (row, col int) {
	for r, cells := range rows {
		for c, cell := range cells {
			if strings.ToLower(sheetutil.Clean(cell)) == "picks" {
				return r, c
			}
		}
	}
	return -1, -1
}

// LabeledYearColumns is the preferred pick-column discovery: scan the
// rows around the picks anchor (two above through three below) for
// cells carrying a 4-digit year within the allowed set. The first row
// yielding any hit wins.
func LabeledYearColumns(rows [][]string, picksRow int, years []int) map[int]int {
	allowed := map[int]bool{}
	for _, y := range years {
		allowed[y] = true
	}

	for _, idx := range []int{picksRow - 2, picksRow - 1, picksRow, picksRow + 1, picksRow + 2, picksRow + 3} {
		if idx < 0 || idx >= len(rows) {
			continue
		}
		out := map[int]int{}
		for c, cell := range rows[idx] {
			m := pickYearRegex.FindStringSubmatch(sheetutil.Clean(cell))
			if m == nil {
				continue
			}
			y, _ := strconv.Atoi(m[1])
			if allowed[y] {
				out[c] = y
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return map[int]int{}
}

// mark-frequency window below the anchor for the fallback inference
const markScanRows = 50

// InferYearColumnsFromMarks is the fallback when no year labels exist:
// count marks per column in the window below the anchor, take the
// top-N most marked columns, and assign years to them left to right.
// Assumes the sheet lays pick columns out in ascending year order.
func InferYearColumnsFromMarks(rows [][]string, picksRow int, years []int) map[int]int {
	counts := map[int]int{}
	end := picksRow + 1 + markScanRows
	if end > len(rows) {
		end = len(rows)
	}
	for r := picksRow + 1; r < end; r++ {
		for c, cell := range rows[r] {
			if isMarked(cell) {
				counts[c]++
			}
		}
	}

	cols := make([]int, 0, len(counts))
	for c := range counts {
		cols = append(cols, c)
	}
	// most marks first; ties by column order for determinism
	sort.Slice(cols, func(i, j int) bool {
		if counts[cols[i]] != counts[cols[j]] {
			return counts[cols[i]] > counts[cols[j]]
		}
		return cols[i] < cols[j]
	})
	if len(cols) > len(years) {
		cols = cols[:len(years)]
	}
	sort.Ints(cols)

	out := map[int]int{}
	for i, c := range cols {
		out[c] = years[i]
	}
	return out
}

var pickRoundRegex = regexp.MustCompile(`\s*-\s*([A-Za-z])\s*$`)

// SplitPickName splits "<origin team> - A" into the team and its round
// letter. Names without a round suffix return round "".
func SplitPickName(raw string) (team, round string) {
	s := sheetutil.Clean(raw)
	m := pickRoundRegex.FindStringSubmatch(s)
	if m == nil {
		return s, ""
	}
	return strings.TrimSpace(pickRoundRegex.ReplaceAllString(s, "")), strings.ToUpper(m[1])
}

// ExtractPicks reads the pick block under the anchor: each row names a
// pick in the anchor column and marks the years it applies to. Picks
// de-duplicate per year and round.
func ExtractPicks(rows [][]string, years []int) map[int]Rounds {
	grouped := map[int]map[string]map[string]bool{}
	for _, y := range years {
		grouped[y] = map[string]map[string]bool{"A": {}, "B": {}}
	}

	picksRow, picksCol := findPicksAnchor(rows)
	if picksRow < 0 {
		return finishPicks(grouped, years)
	}
	nameCol := picksCol
	if nameCol < 0 {
		nameCol = 1
	}

	yearByCol := LabeledYearColumns(rows, picksRow, years)
	if len(yearByCol) == 0 {
		yearByCol = InferYearColumnsFromMarks(rows, picksRow, years)
	}
	if len(yearByCol) == 0 {
		return finishPicks(grouped, years)
	}

	for r := picksRow + 1; r < len(rows); r++ {
		row := rows[r]
		name := ""
		if nameCol < len(row) {
			name = sheetutil.Clean(row[nameCol])
		}
		if name == "" || strings.ToLower(name) == "picks" {
			continue
		}

		team, round := SplitPickName(name)
		if round != "A" && round != "B" {
			continue
		}

		for c, y := range yearByCol {
			if c < len(row) && isMarked(row[c]) {
				grouped[y][round][team] = true
			}
		}
	}

	return finishPicks(grouped, years)
}

func finishPicks(grouped map[int]map[string]map[string]bool, years []int) map[int]Rounds {
	out := map[int]Rounds{}
	for _, y := range years {
		var r Rounds
		for team := range grouped[y]["A"] {
			r.A = append(r.A, team)
		}
		for team := range grouped[y]["B"] {
			r.B = append(r.B, team)
		}
		sort.Strings(r.A)
		sort.Strings(r.B)
		out[y] = r
	}
	return out
}

// Parse runs the full team-sheet extraction.
func Parse(rows [][]string, years []int) TeamSheet {
	return TeamSheet{
		GM:           ExtractGM(rows),
		WaiverByYear: ExtractWaivers(rows, years),
		PicksByYear:  ExtractPicks(rows, years),
	}
}
