// Package history parses the league history sheet: row 0 carries band
// categories (years plus Total/Records), row 1 the column headers, and
// data starts at row 2.
package history

import (
	"regexp"
	"sort"
	"strconv"

	"dynasty-backend/lib/sheetutil"
)

// Column ties a unique row-record key to its header text, source index
// and resolved category band.
type Column struct {
	Idx      int
	Key      string
	Header   string
	Category string
}

type SpecialBands struct {
	TotalIdxs   []int
	RecordsIdxs []int
}

type Parsed struct {
	// descending, newest season first
	Years    []string
	BaseCols []Column
	AllCols  []Column
	// row records keyed by Column.Key, in sheet order
	Data       []map[string]string
	BaseCount  int
	Categories []string
	HeadersRow []string
	RawCatRow  []string
	Special    SpecialBands
}

// base columns are identified by this literal header subsequence; when
// the sheet drifts, four leading columns is the safe assumption
var baseHeaderSeqs = [][]string{
	{"division", "conference", "team", "champs / finals"},
	{"division", "conference", "team", "champs/finals"},
}

const defaultBaseCount = 4

// BaseCount finds the index one past the last header of the known base
// subsequence. Headers between the sequence entries are tolerated.
func BaseCount(headers []string) int {
	normed := make([]string, len(headers))
	for i, h := range headers {
		normed[i] = sheetutil.NormHeader(h)
	}
	for _, seq := range baseHeaderSeqs {
		idx := 0
		for i, h := range normed {
			if h == seq[idx] {
				idx++
			}
			if idx == len(seq) {
				return i + 1
			}
		}
	}
	return defaultBaseCount
}

// contains a 4-digit year anywhere, unlike sheetutil.IsYear which wants
// the whole cell to be one
var bandYearRegex = regexp.MustCompile(`\b\d{4}\b`)

func isYearLabel(v string) bool   { return bandYearRegex.MatchString(v) }
func isTotalBand(v string) bool   { return sheetutil.Norm(v) == "total" }
func isRecordsBand(v string) bool { return sheetutil.Norm(v) == "records" }

// BuildCategories resolves the raw category row into one category per
// column. A year label anchors a 3-wide band: it claims its own column
// plus blank neighbors at i-1 and i+1. Columns still blank afterwards
// inherit the last non-year category to their left. Base columns stay
// uncategorized.
func BuildCategories(rawCatRow []string, baseCount int) []string {
	raw := make([]string, len(rawCatRow))
	for i, v := range rawCatRow {
		raw[i] = sheetutil.Clean(v)
	}
	out := make([]string, len(raw))

	for i := baseCount; i < len(raw); i++ {
		if raw[i] != "" && !isYearLabel(raw[i]) {
			out[i] = raw[i]
		}
	}

	for i, v := range raw {
		if !isYearLabel(v) {
			continue
		}
		if i >= baseCount {
			out[i] = v
		}
		if left := i - 1; left >= baseCount && raw[left] == "" {
			out[left] = v
		}
		if right := i + 1; right < len(raw) && right >= baseCount && raw[right] == "" {
			out[right] = v
		}
	}

	lastNonYear := ""
	for i := baseCount; i < len(out); i++ {
		if out[i] != "" && !isYearLabel(out[i]) {
			lastNonYear = out[i]
		}
		if out[i] == "" && lastNonYear != "" {
			out[i] = lastNonYear
		}
	}

	return out
}

// InferSpecialBands places Total and Records purely by position: the
// Records triple is the last 3 columns and Total the 3 before those.
// When the sheet is too narrow for a full triple past the base columns,
// the band is reported empty rather than partial.
func InferSpecialBands(colCount, baseCount int) SpecialBands {
	triple := func(start int) []int {
		var idxs []int
		for i := start; i < start+3; i++ {
			if i >= baseCount && i < colCount {
				idxs = append(idxs, i)
			}
		}
		if len(idxs) != 3 {
			return nil
		}
		return idxs
	}
	return SpecialBands{
		TotalIdxs:   triple(colCount - 6),
		RecordsIdxs: triple(colCount - 3),
	}
}

func findBandAnchor(rawCatRow []string, band string, baseCount int) int {
	b := sheetutil.Clean(band)
	for i := baseCount; i < len(rawCatRow); i++ {
		if sheetutil.Clean(rawCatRow[i]) == b {
			return i
		}
	}
	return -1
}

// BandIndices resolves a band selection to column indices. Year bands
// center on the raw anchor cell (anchor-1, anchor, anchor+1); when the
// raw row lost the anchor (merged-cell export quirk) the first matching
// resolved category starts the triple instead. Total/Records come from
// the positional inference. Anything else matches resolved categories,
// capped at 3 columns.
func (p Parsed) BandIndices(band string) []int {
	if band == "" {
		return nil
	}

	if isYearLabel(band) {
		anchor := findBandAnchor(p.RawCatRow, band, p.BaseCount)
		if anchor < 0 {
			first := -1
			for i := p.BaseCount; i < len(p.Categories); i++ {
				if sheetutil.Clean(p.Categories[i]) == sheetutil.Clean(band) {
					first = i
					break
				}
			}
			if first < 0 {
				return nil
			}
			return clampIdxs([]int{first, first + 1, first + 2}, p.BaseCount, len(p.Categories))
		}
		return clampIdxs([]int{anchor - 1, anchor, anchor + 1}, p.BaseCount, len(p.Categories))
	}

	if isTotalBand(band) {
		return p.Special.TotalIdxs
	}
	if isRecordsBand(band) {
		return p.Special.RecordsIdxs
	}

	var idxs []int
	for i := p.BaseCount; i < len(p.Categories); i++ {
		if sheetutil.Clean(p.Categories[i]) == sheetutil.Clean(band) {
			idxs = append(idxs, i)
		}
	}
	if len(idxs) > 3 {
		idxs = idxs[:3]
	}
	return idxs
}

func clampIdxs(idxs []int, lo, hi int) []int {
	var out []int
	for _, i := range idxs {
		if i >= lo && i < hi {
			out = append(out, i)
		}
	}
	return out
}

// BandHeaders returns the header row with band columns relabeled for
// display: year bands read Record W% / Fpts/G Adjusted / Playoffs, the
// Total band ends in Playoffs Appearances, the Records band carries the
// Best prefix.
func (p Parsed) BandHeaders(band string, idxs []int) []string {
	headers := append([]string(nil), p.HeadersRow...)

	var labels []string
	switch {
	case isTotalBand(band):
		labels = []string{"Record W%", "Fpts/G Adjusted", "Playoffs Appearances"}
	case isRecordsBand(band):
		labels = []string{"Best Record W%", "Best Fpts/G Adjusted", "Best Playoffs"}
	default:
		labels = []string{"Record W%", "Fpts/G Adjusted", "Playoffs"}
	}

	for k, idx := range idxs {
		if idx < 0 || idx >= len(headers) {
			continue
		}
		if k < len(labels) {
			headers[idx] = labels[k]
		}
	}
	return headers
}

// IsRecordPercentHeader marks columns whose cells hold tenths-of-percent
// integers and render via sheetutil.FormatTenthsPercent.
func IsRecordPercentHeader(header string) bool {
	h := sheetutil.NormHeader(header)
	return h == "record w%" || h == "best record w%"
}

// Parse reads the full history grid. Rows after the first whose base
// columns are all blank are discarded: the sheet keeps scratch notes
// below the table and nothing there is data.
func Parse(grid [][]string) (Parsed, bool) {
	if len(grid) < 2 {
		return Parsed{}, false
	}

	colCount := len(grid[0])
	if len(grid[1]) > colCount {
		colCount = len(grid[1])
	}

	at := func(row []string, i int) string {
		if i < len(row) {
			return sheetutil.Clean(row[i])
		}
		return ""
	}

	rawCatRow := make([]string, colCount)
	headersRow := make([]string, colCount)
	for i := 0; i < colCount; i++ {
		rawCatRow[i] = at(grid[0], i)
		headersRow[i] = at(grid[1], i)
	}

	baseCount := BaseCount(headersRow)
	categories := BuildCategories(rawCatRow, baseCount)
	keys := sheetutil.UniqueKeys(headersRow)

	cols := make([]Column, colCount)
	for i := 0; i < colCount; i++ {
		header := headersRow[i]
		if header == "" {
			header = keys[i]
		}
		cols[i] = Column{Idx: i, Key: keys[i], Header: header, Category: categories[i]}
	}

	n := baseCount
	if n > len(cols) {
		n = len(cols)
	}

	p := Parsed{
		BaseCols:   cols[:n],
		AllCols:    cols,
		BaseCount:  baseCount,
		Categories: categories,
		HeadersRow: headersRow,
		RawCatRow:  rawCatRow,
		Special:    InferSpecialBands(colCount, baseCount),
	}

	seen := map[string]bool{}
	for _, c := range cols[min(baseCount, len(cols)):] {
		y := sheetutil.Clean(c.Category)
		if y != "" && isYearLabel(y) && !seen[y] {
			seen[y] = true
			p.Years = append(p.Years, y)
		}
	}
	sort.Slice(p.Years, func(i, j int) bool {
		a, _ := strconv.Atoi(p.Years[i])
		b, _ := strconv.Atoi(p.Years[j])
		return a > b
	})

	for r := 2; r < len(grid); r++ {
		row := make([]string, colCount)
		anything, baseAnything := false, false
		for i := 0; i < colCount; i++ {
			row[i] = at(grid[r], i)
			if row[i] != "" {
				anything = true
				if i < baseCount {
					baseAnything = true
				}
			}
		}
		if !anything || !baseAnything {
			break
		}

		rec := make(map[string]string, len(cols))
		for _, c := range cols {
			rec[c.Key] = row[c.Idx]
		}
		p.Data = append(p.Data, rec)
	}

	return p, true
}

// FindColKey resolves a header name to its record key within cols.
func FindColKey(cols []Column, headerName string) string {
	target := sheetutil.NormHeader(headerName)
	for _, c := range cols {
		if sheetutil.NormHeader(c.Header) == target {
			return c.Key
		}
	}
	return ""
}
