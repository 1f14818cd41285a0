package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minsu-k/go-lol-metrics/internal/report"
	"github.com/minsu-k/go-lol-metrics/internal/storage"
)

var showPUUID string

var showCmd = &cobra.Command{
	Use:   "show <match-id-prefix>",
	Short: "Show a stored decision report",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showPUUID, "puuid", "", "disambiguate when several players of the match are stored")
}

func runShow(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	r, err := db.GetReport(args[0], showPUUID)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}
	if r == nil {
		return fmt.Errorf("no report found for match prefix %q", args[0])
	}

	report.PrintDecisionReport(os.Stdout, r)
	return nil
}
