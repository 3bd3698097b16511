package cmd

import (
	"context"
	"fmt"
	"os"

	"dynasty-backend/lib/configutil"
	"dynasty-backend/lib/gviz"
	"dynasty-backend/lib/telemetry"

	"github.com/dgraph-io/badger/v4"
	"github.com/spf13/cobra"
)

// Config is read from league.json5 (searched upward from the working
// directory, with .local. overrides).
type Config struct {
	SpreadsheetId string `json:"spreadsheet_id"`
	Gids          struct {
		Players      string `json:"players"`
		Transactions string `json:"transactions"`
		History      string `json:"history"`
		Options      string `json:"options"`
	} `json:"gids"`
	// team name -> gid of its free-form team tab
	TeamSheets map[string]string `json:"team_sheets"`
	// badger directory for grid snapshots; empty disables caching
	CachePath string `json:"cache_path"`
}

var (
	verbose bool
	config  Config
	client  *gviz.Client

	cacheDb *badger.DB
	tel     telemetry.Telemetry
)

var rootCmd = &cobra.Command{
	Use:   "league-cli",
	Short: "league-cli reads the dynasty league spreadsheet and reports on rosters, payrolls and trades.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)

		var err error
		// telemetry.json5 is optional, without it the noop providers stay
		tel, err = telemetry.SetupFromEnv(cmd.Context(), "league-cli")
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("setup telemetry: %w", err)
		}
		if err == nil {
			telemetry.InstrumentPerfStats(cmd.Context())
		}

		config, err = configutil.ReadRecursively[Config]("league.json5")
		if err != nil {
			return fmt.Errorf("read league.json5: %w", err)
		}
		if config.SpreadsheetId == "" {
			return fmt.Errorf("league.json5 is missing spreadsheet_id")
		}

		var opts []gviz.Option
		if config.CachePath != "" {
			cacheDb, err = badger.Open(
				badger.DefaultOptions(config.CachePath).WithLogger(nil),
			)
			if err != nil {
				return fmt.Errorf("open snapshot cache: %w", err)
			}
			opts = append(opts, gviz.WithCache(cacheDb))
		}

		client = gviz.NewClient(config.SpreadsheetId, opts...)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cacheDb != nil {
			cacheDb.Close()
		}
		tel.Shutdown(context.Background())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
