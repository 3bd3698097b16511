package ledger

import (
	"dynasty-backend/lib/sheetutil"
)

// View is one team's reading of a transaction.
type View struct {
	Sent     []string
	Received []string
}

func assetLabel(asset, salary string) string {
	if asset == "" {
		return ""
	}
	if salary != "" {
		return asset + " (" + salary + ")"
	}
	return asset
}

// InvolvesTeam reports whether the given team is a party to the
// transaction: always when it is teamA, and additionally when it is
// teamB of a trade (waivers and buy-outs only have one side).
func (t Transaction) InvolvesTeam(team string) bool {
	key := sheetutil.NormFuzzy(team)
	if sheetutil.NormFuzzy(t.TeamA) == key {
		return true
	}
	return t.IsTrade() && sheetutil.NormFuzzy(t.TeamB) == key
}

// Perspective frames the transaction from one team's point of view.
// The ledger stores trades asymmetrically: column A assets leave
// teamA, column B assets leave teamB. When the viewing team is teamB
// of a trade, sent and received swap.
func (t Transaction) Perspective(team string) View {
	viewingAsB := t.IsTrade() && sheetutil.NormFuzzy(t.TeamB) == sheetutil.NormFuzzy(team)

	var v View
	for _, l := range t.Lines {
		a := assetLabel(l.AssetA, l.SalaryA)
		b := assetLabel(l.AssetB, l.SalaryB)

		if viewingAsB {
			a, b = b, a
		}
		if a != "" {
			v.Sent = append(v.Sent, a)
		}
		if b != "" {
			v.Received = append(v.Received, b)
		}
	}
	return v
}

// FilterByType keeps transactions whose canonicalized type matches,
// so "Buy-out", "Buy–out" and "Buy out" all select the same rows.
func FilterByType(txs []Transaction, typ string) []Transaction {
	target := sheetutil.CanonType(typ)
	var out []Transaction
	for _, t := range txs {
		if sheetutil.CanonType(t.Type) == target {
			out = append(out, t)
		}
	}
	return out
}

// CountByType tallies transactions under their canonical type key.
func CountByType(txs []Transaction) map[string]int {
	out := map[string]int{}
	for _, t := range txs {
		out[sheetutil.CanonType(t.Type)]++
	}
	return out
}

// ForTeam keeps transactions the given team is a party to.
func ForTeam(txs []Transaction, team string) []Transaction {
	var out []Transaction
	for _, t := range txs {
		if t.InvolvesTeam(team) {
			out = append(out, t)
		}
	}
	return out
}

// ForPlayer keeps transactions naming the player on any asset line.
func ForPlayer(txs []Transaction, playerName string) []Transaction {
	var out []Transaction
	for _, t := range txs {
		if t.Involves(playerName) {
			out = append(out, t)
		}
	}
	return out
}
