package cmd

import (
	"os"
	"strings"

	"dynasty-backend/services/ledger"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var txFlags struct {
	team   string
	typ    string
	player string
	limit  int
}

func init() {
	f := transactionsCmd.Flags()
	f.StringVar(&txFlags.team, "team", "", "only transactions involving this team")
	f.StringVar(&txFlags.typ, "type", "", "only transactions of this type (trade, waiver, buy-out)")
	f.StringVar(&txFlags.player, "player", "", "only transactions involving this player")
	f.IntVar(&txFlags.limit, "limit", 25, "max transactions to print (0 = all)")

	rootCmd.AddCommand(transactionsCmd)
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Prints the transaction ledger, newest first.",
	Run: func(cmd *cobra.Command, args []string) {
		grid, err := client.FetchGrid(cmd.Context(), config.Gids.Transactions)
		if err != nil {
			fatal(err)
		}

		txs := ledger.Group(ledger.AnnotateGrid(grid))
		if txFlags.typ != "" {
			txs = ledger.FilterByType(txs, txFlags.typ)
		}
		if txFlags.team != "" {
			txs = ledger.ForTeam(txs, txFlags.team)
		}
		if txFlags.player != "" {
			txs = ledger.ForPlayer(txs, txFlags.player)
		}
		if txFlags.limit > 0 && len(txs) > txFlags.limit {
			txs = txs[:txFlags.limit]
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Date", "Type", "Team A", "Sent", "Team B", "Received"})

		for _, tx := range txs {
			view := tx.Perspective(tx.TeamA)
			teamB := tx.TeamB
			if !tx.IsTrade() {
				teamB = ""
			}
			t.AppendRow(table.Row{
				tx.Date, tx.Type, tx.TeamA,
				strings.Join(view.Sent, "\n"),
				teamB,
				strings.Join(view.Received, "\n"),
			})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
