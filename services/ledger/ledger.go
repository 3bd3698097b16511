// Package ledger segments the flat transaction sheet into grouped
// Transaction records. Many raw rows can belong to one logical
// transaction: a row starts a new block exactly when its date cell is
// non-empty, and every following row with a blank date belongs to that
// block.
package ledger

import (
	"sort"

	"dynasty-backend/lib/sheetutil"
)

// RawRow is one sheet row in its 9 positional fields. Any field may be
// blank on continuation rows.
type RawRow struct {
	Date    string
	Type    string
	TeamA   string
	AssetA  string
	SalaryA string
	Rookie  string
	TeamB   string
	AssetB  string
	SalaryB string
}

func rawRowFromCells(cells []string) RawRow {
	at := func(i int) string {
		if i < len(cells) {
			return sheetutil.Clean(cells[i])
		}
		return ""
	}
	return RawRow{
		Date:    at(0),
		Type:    at(1),
		TeamA:   at(2),
		AssetA:  at(3),
		SalaryA: at(4),
		Rookie:  at(5),
		TeamB:   at(6),
		AssetB:  at(7),
		SalaryB: at(8),
	}
}

// Line is a RawRow annotated with its resolved transaction id and the
// block attributes carried forward from the block's head row.
type Line struct {
	// sequential block id; -1 marks noise rows seen before the first
	// dated row, which consumers must skip
	TxID     int
	RowIndex int

	Date  string
	Type  string
	TeamA string
	TeamB string

	AssetA  string
	SalaryA string
	Rookie  string
	AssetB  string
	SalaryB string
}

// Annotate folds over the rows with a fresh local accumulator: the
// last seen date/type/teams carry forward inside a block, and a
// non-blank date increments the block counter. Never keeps state
// between calls.
func Annotate(rows []RawRow) []Line {
	var lastDate, lastType, lastTeamA, lastTeamB string
	txId := -1

	out := make([]Line, 0, len(rows))
	for idx, r := range rows {
		if r.Date != "" {
			txId++
			lastDate = r.Date
		}
		if r.Type != "" {
			lastType = r.Type
		}
		if r.TeamA != "" {
			lastTeamA = r.TeamA
		}
		if r.TeamB != "" {
			lastTeamB = r.TeamB
		}

		out = append(out, Line{
			TxID:     txId,
			RowIndex: idx,
			Date:     lastDate,
			Type:     lastType,
			TeamA:    lastTeamA,
			TeamB:    lastTeamB,
			AssetA:   r.AssetA,
			SalaryA:  r.SalaryA,
			Rookie:   r.Rookie,
			AssetB:   r.AssetB,
			SalaryB:  r.SalaryB,
		})
	}
	return out
}

// AnnotateGrid is Annotate over a raw sheet grid.
func AnnotateGrid(grid [][]string) []Line {
	rows := make([]RawRow, len(grid))
	for i, cells := range grid {
		rows[i] = rawRowFromCells(cells)
	}
	return Annotate(rows)
}

// Transaction is one grouped block. Block attributes come from the
// head line; Lines keep the original row order.
type Transaction struct {
	TxID   int
	Date   string
	Type   string
	TeamA  string
	TeamB  string
	Rookie string
	Lines  []Line
}

// Group collects annotated lines into Transactions. Lines tagged with
// a negative TxID (noise before the first dated row) are discarded.
// Lines inside a group keep row order; groups are ordered by ledger
// recency, newest date first.
func Group(lines []Line) []Transaction {
	byId := map[int][]Line{}
	for _, l := range lines {
		if l.TxID < 0 {
			continue
		}
		byId[l.TxID] = append(byId[l.TxID], l)
	}

	out := make([]Transaction, 0, len(byId))
	for id, group := range byId {
		sort.Slice(group, func(i, j int) bool {
			return group[i].RowIndex < group[j].RowIndex
		})
		head := group[0]
		out = append(out, Transaction{
			TxID:   id,
			Date:   head.Date,
			Type:   head.Type,
			TeamA:  head.TeamA,
			TeamB:  head.TeamB,
			Rookie: head.Rookie,
			Lines:  group,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a := sheetutil.DateKey(out[i].Date)
		b := sheetutil.DateKey(out[j].Date)
		if a != b {
			return a > b
		}
		return out[i].TxID > out[j].TxID
	})
	return out
}

// Involves reports whether a player appears as an asset on any line of
// the transaction, under the shared fuzzy identity rule. A single
// trade can move several players across several lines, so the head
// line alone is not enough.
func (t Transaction) Involves(playerName string) bool {
	target := sheetutil.NormFuzzy(playerName)
	if target == "" {
		return false
	}
	for _, l := range t.Lines {
		if sheetutil.NormFuzzy(l.AssetA) == target || sheetutil.NormFuzzy(l.AssetB) == target {
			return true
		}
	}
	return false
}

func (t Transaction) IsTrade() bool {
	return sheetutil.CanonType(t.Type) == "trade"
}
